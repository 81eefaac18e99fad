package campaigning

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metamocks "github.com/masterphelps/killscale-api/infrastructure/integrator/meta/mocks"
	"github.com/masterphelps/killscale-api/infrastructure/repository/mocks"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/internal/domain"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func int64Ptr(v int64) *int64 {
	return &v
}

func newTestService(t *testing.T) (*Service, *metamocks.MockMetaIntegrator, *mocks.MockConnectionRepository, *mocks.MockCampaignCreationRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockMeta := metamocks.NewMockMetaIntegrator(ctrl)
	mockConnRepo := mocks.NewMockConnectionRepository(ctrl)
	mockCreationRepo := mocks.NewMockCampaignCreationRepository(ctrl)

	service := &Service{
		cfg:                        &config.Config{},
		metaService:                mockMeta,
		connectionRepository:       mockConnRepo,
		campaignCreationRepository: mockCreationRepo,
		nowFunc:                    time.Now,
	}

	return service, mockMeta, mockConnRepo, mockCreationRepo
}

func validConnection() *domain.Connection {
	return &domain.Connection{
		ID:             "conn_1",
		UserID:         "user_1",
		AdAccountID:    "act_123",
		AccessToken:    "token_valido",
		TokenExpiresAt: timePtr(time.Now().Add(24 * time.Hour)),
		Active:         true,
	}
}

func TestService_ListCampaigns(t *testing.T) {
	service, mockMeta, mockConnRepo, mockCreationRepo := newTestService(t)

	mockConnRepo.EXPECT().
		GetMetaConnection("user_1", "act_123").
		Return(validConnection(), nil)

	mockMeta.EXPECT().
		GetCampaigns(gomock.Any(), "token_valido", "act_123").
		Return([]*domain.CombinedCampaign{
			{ID: "camp_b", Name: "Black Friday", Status: domain.EntityStatusPaused},
			{ID: "camp_a", Name: "Aquecimento", Status: domain.EntityStatusActive},
			{ID: "camp_c", Name: "Natal", Status: domain.EntityStatusActive},
		}, nil)

	mockCreationRepo.EXPECT().
		ListByUserAndAccount("user_1", "act_123").
		Return([]*domain.CampaignCreation{
			{ID: "cr_1", CampaignID: "camp_b", Name: "Black Friday"},
		}, nil)

	campaigns, err := service.ListCampaigns(context.Background(), "user_1", "act_123")
	require.NoError(t, err)
	require.Len(t, campaigns, 3)

	// Ativas primeiro, em ordem alfabética; pausadas depois
	assert.Equal(t, "camp_a", campaigns[0].ID)
	assert.Equal(t, "camp_c", campaigns[1].ID)
	assert.Equal(t, "camp_b", campaigns[2].ID)

	// Campanha criada pelo Studio carrega o registro de criação
	assert.Nil(t, campaigns[0].Creation)
	assert.False(t, campaigns[0].CreatedByStudio)
	require.NotNil(t, campaigns[2].Creation)
	assert.Equal(t, "cr_1", campaigns[2].Creation.ID)
	assert.True(t, campaigns[2].CreatedByStudio)
}

func TestService_ListCampaigns_TokenExpirado(t *testing.T) {
	service, _, mockConnRepo, _ := newTestService(t)

	expired := validConnection()
	expired.TokenExpiresAt = timePtr(time.Now().Add(-1 * time.Hour))

	mockConnRepo.EXPECT().
		GetMetaConnection("user_1", "act_123").
		Return(expired, nil)

	campaigns, err := service.ListCampaigns(context.Background(), "user_1", "act_123")
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.Nil(t, campaigns)
}

func TestService_ListAudiences(t *testing.T) {
	service, mockMeta, mockConnRepo, _ := newTestService(t)

	mockConnRepo.EXPECT().
		GetMetaConnection("user_1", "act_123").
		Return(validConnection(), nil)

	mockMeta.EXPECT().
		GetCustomAudiences(gomock.Any(), "token_valido", "act_123").
		Return([]*domain.CustomAudience{
			{ID: "aud_1", Name: "Compradores 30d", DeliveryStatus: &domain.DeliveryStatus{Code: 200}},
			{ID: "aud_2", Name: "Audiência pequena", DeliveryStatus: &domain.DeliveryStatus{Code: 410}},
			{ID: "aud_3", Name: "Sem status", ApproximateCount: int64Ptr(1500)},
		}, nil)

	audiences, err := service.ListAudiences(context.Background(), "user_1", "act_123")
	require.NoError(t, err)

	// Audiências com delivery_status >= 400 são removidas
	require.Len(t, audiences, 2)
	assert.Equal(t, "aud_1", audiences[0].ID)
	assert.Equal(t, "aud_3", audiences[1].ID)
}
