package launching

import (
	"context"
	"errors"
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

func int64Ptr(v int64) *int64 {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func newTestService(t *testing.T) (*Service, *metamocks.MockMetaIntegrator, *mocks.MockConnectionRepository, *mocks.MockCampaignCreationRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockMeta := metamocks.NewMockMetaIntegrator(ctrl)
	mockConnRepo := mocks.NewMockConnectionRepository(ctrl)
	mockCreationRepo := mocks.NewMockCampaignCreationRepository(ctrl)

	cfg := &config.Config{}
	cfg.BulkDispatch.MaxConcurrent = 3

	service := &Service{
		cfg:                        cfg,
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

func TestService_BulkUpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.BulkStatusRequest
		setup    func(mockMeta *metamocks.MockMetaIntegrator, mockConnRepo *mocks.MockConnectionRepository)
		validate func(t *testing.T, report *domain.BulkOperationReport, err error)
	}{
		{
			name: "Lista vazia - deve retornar erro de validação sem consultar a conexão",
			req: &domain.BulkStatusRequest{
				UserID:      "user_1",
				AdAccountID: "act_123",
				Entities:    []domain.BulkEntity{},
				Status:      domain.EntityStatusPaused,
			},
			setup: func(mockMeta *metamocks.MockMetaIntegrator, mockConnRepo *mocks.MockConnectionRepository) {},
			validate: func(t *testing.T, report *domain.BulkOperationReport, err error) {
				assert.ErrorIs(t, err, ErrEmptyEntityList)
				assert.Nil(t, report)
			},
		},
		{
			name: "Token expirado - deve falhar antes de qualquer chamada ao Graph API",
			req: &domain.BulkStatusRequest{
				UserID:      "user_1",
				AdAccountID: "act_123",
				Entities: []domain.BulkEntity{
					{ID: "camp_1", Type: domain.EntityTypeCampaign},
				},
				Status: domain.EntityStatusPaused,
			},
			setup: func(mockMeta *metamocks.MockMetaIntegrator, mockConnRepo *mocks.MockConnectionRepository) {
				expired := validConnection()
				expired.TokenExpiresAt = timePtr(time.Now().Add(-1 * time.Hour))

				mockConnRepo.EXPECT().
					GetMetaConnection("user_1", "act_123").
					Return(expired, nil)
			},
			validate: func(t *testing.T, report *domain.BulkOperationReport, err error) {
				assert.ErrorIs(t, err, ErrTokenExpired)
				assert.Nil(t, report)
			},
		},
		{
			name: "Conexão inexistente - deve retornar erro específico",
			req: &domain.BulkStatusRequest{
				UserID:      "user_1",
				AdAccountID: "act_999",
				Entities: []domain.BulkEntity{
					{ID: "camp_1", Type: domain.EntityTypeCampaign},
				},
				Status: domain.EntityStatusPaused,
			},
			setup: func(mockMeta *metamocks.MockMetaIntegrator, mockConnRepo *mocks.MockConnectionRepository) {
				mockConnRepo.EXPECT().
					GetMetaConnection("user_1", "act_999").
					Return(nil, nil)
			},
			validate: func(t *testing.T, report *domain.BulkOperationReport, err error) {
				assert.ErrorIs(t, err, ErrConnectionNotFound)
				assert.Nil(t, report)
			},
		},
		{
			name: "Falha parcial - itens com erro não interrompem os demais",
			req: &domain.BulkStatusRequest{
				UserID:      "user_1",
				AdAccountID: "act_123",
				Entities: []domain.BulkEntity{
					{ID: "camp_1", Type: domain.EntityTypeCampaign},
					{ID: "adset_1", Type: domain.EntityTypeAdSet},
					{ID: "ad_1", Type: domain.EntityTypeAd},
				},
				Status: domain.EntityStatusPaused,
			},
			setup: func(mockMeta *metamocks.MockMetaIntegrator, mockConnRepo *mocks.MockConnectionRepository) {
				mockConnRepo.EXPECT().
					GetMetaConnection("user_1", "act_123").
					Return(validConnection(), nil)

				mockMeta.EXPECT().
					UpdateStatus(gomock.Any(), "token_valido", "camp_1", domain.EntityStatusPaused).
					Return(nil)
				mockMeta.EXPECT().
					UpdateStatus(gomock.Any(), "token_valido", "adset_1", domain.EntityStatusPaused).
					Return(errors.New("(#100) Invalid parameter"))
				mockMeta.EXPECT().
					UpdateStatus(gomock.Any(), "token_valido", "ad_1", domain.EntityStatusPaused).
					Return(nil)
			},
			validate: func(t *testing.T, report *domain.BulkOperationReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, 3, report.Total)
				assert.Equal(t, 2, report.Succeeded)
				assert.Equal(t, 1, report.Failed)

				// A ordem dos resultados segue a ordem das entidades da requisição
				assert.True(t, report.Results[0].Success)
				assert.False(t, report.Results[1].Success)
				assert.Equal(t, "(#100) Invalid parameter", report.Results[1].Error)
				assert.True(t, report.Results[2].Success)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockMeta, mockConnRepo, _ := newTestService(t)
			tt.setup(mockMeta, mockConnRepo)

			report, err := service.BulkUpdateStatus(context.Background(), tt.req)
			tt.validate(t, report, err)
		})
	}
}

func TestService_BulkDelete(t *testing.T) {
	service, mockMeta, mockConnRepo, mockCreationRepo := newTestService(t)

	mockConnRepo.EXPECT().
		GetMetaConnection("user_1", "act_123").
		Return(validConnection(), nil)

	mockMeta.EXPECT().
		DeleteEntity(gomock.Any(), "token_valido", "camp_1").
		Return(nil)
	mockMeta.EXPECT().
		DeleteEntity(gomock.Any(), "token_valido", "ad_1").
		Return(errors.New("(#10) Permission denied"))

	// Campanha excluída com sucesso também sai de campaign_creations
	mockCreationRepo.EXPECT().
		DeleteByCampaignID("camp_1").
		Return(nil)

	report, err := service.BulkDelete(context.Background(), &domain.BulkDeleteRequest{
		UserID:      "user_1",
		AdAccountID: "act_123",
		Entities: []domain.BulkEntity{
			{ID: "camp_1", Type: domain.EntityTypeCampaign},
			{ID: "ad_1", Type: domain.EntityTypeAd},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
}

func TestService_BulkScaleBudgets(t *testing.T) {
	tests := []struct {
		name     string
		req      *domain.BulkBudgetScaleRequest
		setup    func(mockMeta *metamocks.MockMetaIntegrator, mockConnRepo *mocks.MockConnectionRepository)
		validate func(t *testing.T, report *domain.BulkOperationReport, err error)
	}{
		{
			name: "Fator inválido - deve retornar erro de validação",
			req: &domain.BulkBudgetScaleRequest{
				UserID:      "user_1",
				AdAccountID: "act_123",
				Entities: []domain.BulkEntity{
					{ID: "camp_1", Type: domain.EntityTypeCampaign, DailyBudget: int64Ptr(1000)},
				},
				Factor: 0,
			},
			setup: func(mockMeta *metamocks.MockMetaIntegrator, mockConnRepo *mocks.MockConnectionRepository) {},
			validate: func(t *testing.T, report *domain.BulkOperationReport, err error) {
				assert.ErrorIs(t, err, ErrInvalidScaleFactor)
				assert.Nil(t, report)
			},
		},
		{
			name: "Escala de orçamento diário - arredonda para o centavo com aritmética decimal",
			req: &domain.BulkBudgetScaleRequest{
				UserID:      "user_1",
				AdAccountID: "act_123",
				Entities: []domain.BulkEntity{
					// 1055 centavos * 1.2 = 1266 centavos
					{ID: "camp_1", Type: domain.EntityTypeCampaign, DailyBudget: int64Ptr(1055)},
				},
				Factor: 1.2,
			},
			setup: func(mockMeta *metamocks.MockMetaIntegrator, mockConnRepo *mocks.MockConnectionRepository) {
				mockConnRepo.EXPECT().
					GetMetaConnection("user_1", "act_123").
					Return(validConnection(), nil)

				mockMeta.EXPECT().
					UpdateBudget(gomock.Any(), "token_valido", "camp_1", int64Ptr(1266), nil).
					Return(nil)
			},
			validate: func(t *testing.T, report *domain.BulkOperationReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, report.Succeeded)
				assert.Equal(t, int64(1055), *report.Results[0].OldBudget)
				assert.Equal(t, int64(1266), *report.Results[0].NewBudget)
			},
		},
		{
			name: "Entidade sem orçamento próprio - falha individual sem chamada ao Meta",
			req: &domain.BulkBudgetScaleRequest{
				UserID:      "user_1",
				AdAccountID: "act_123",
				Entities: []domain.BulkEntity{
					{ID: "adset_1", Type: domain.EntityTypeAdSet},
				},
				Factor: 1.5,
			},
			setup: func(mockMeta *metamocks.MockMetaIntegrator, mockConnRepo *mocks.MockConnectionRepository) {
				mockConnRepo.EXPECT().
					GetMetaConnection("user_1", "act_123").
					Return(validConnection(), nil)
			},
			validate: func(t *testing.T, report *domain.BulkOperationReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, report.Failed)
				assert.Equal(t, "entity has no budget of its own", report.Results[0].Error)
			},
		},
		{
			name: "Orçamento abaixo do mínimo após a escala - falha individual",
			req: &domain.BulkBudgetScaleRequest{
				UserID:      "user_1",
				AdAccountID: "act_123",
				Entities: []domain.BulkEntity{
					// 150 centavos * 0.5 = 75 centavos, abaixo do mínimo de 100
					{ID: "camp_1", Type: domain.EntityTypeCampaign, DailyBudget: int64Ptr(150)},
				},
				Factor: 0.5,
			},
			setup: func(mockMeta *metamocks.MockMetaIntegrator, mockConnRepo *mocks.MockConnectionRepository) {
				mockConnRepo.EXPECT().
					GetMetaConnection("user_1", "act_123").
					Return(validConnection(), nil)
			},
			validate: func(t *testing.T, report *domain.BulkOperationReport, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, report.Failed)
				assert.Equal(t, "scaled budget below the minimum allowed", report.Results[0].Error)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockMeta, mockConnRepo, _ := newTestService(t)
			tt.setup(mockMeta, mockConnRepo)

			report, err := service.BulkScaleBudgets(context.Background(), tt.req)
			tt.validate(t, report, err)
		})
	}
}

func TestService_BulkDuplicate(t *testing.T) {
	service, mockMeta, mockConnRepo, _ := newTestService(t)

	mockConnRepo.EXPECT().
		GetMetaConnection("user_1", "act_123").
		Return(validConnection(), nil)

	// A duplicação é sequencial, então as chamadas acontecem na ordem da lista
	gomock.InOrder(
		mockMeta.EXPECT().
			Duplicate(gomock.Any(), "token_valido", "camp_1", " - Copy", true).
			Return("camp_1_copy", nil),
		mockMeta.EXPECT().
			Duplicate(gomock.Any(), "token_valido", "adset_1", " - Copy", false).
			Return("", errors.New("(#80004) There have been too many calls")),
		mockMeta.EXPECT().
			Duplicate(gomock.Any(), "token_valido", "ad_1", " - Copy", false).
			Return("ad_1_copy", nil),
	)

	report, err := service.BulkDuplicate(context.Background(), &domain.BulkDuplicateRequest{
		UserID:      "user_1",
		AdAccountID: "act_123",
		NameSuffix:  " - Copy",
		Entities: []domain.BulkEntity{
			{ID: "camp_1", Type: domain.EntityTypeCampaign},
			{ID: "adset_1", Type: domain.EntityTypeAdSet},
			{ID: "ad_1", Type: domain.EntityTypeAd},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, "camp_1_copy", report.Results[0].CopyID)
	assert.Empty(t, report.Results[1].CopyID)
	assert.Equal(t, "ad_1_copy", report.Results[2].CopyID)
}

func TestService_BulkDuplicate_CancelamentoInterrompeOLote(t *testing.T) {
	service, mockMeta, mockConnRepo, _ := newTestService(t)

	mockConnRepo.EXPECT().
		GetMetaConnection("user_1", "act_123").
		Return(validConnection(), nil)

	ctx, cancel := context.WithCancel(context.Background())

	// O contexto é cancelado durante o primeiro item; os demais são
	// reportados como falha sem nenhuma chamada nova ao Graph API
	mockMeta.EXPECT().
		Duplicate(gomock.Any(), "token_valido", "camp_1", "", true).
		DoAndReturn(func(_ context.Context, _, _, _ string, _ bool) (string, error) {
			cancel()
			return "camp_1_copy", nil
		})

	report, err := service.BulkDuplicate(ctx, &domain.BulkDuplicateRequest{
		UserID:      "user_1",
		AdAccountID: "act_123",
		Entities: []domain.BulkEntity{
			{ID: "camp_1", Type: domain.EntityTypeCampaign},
			{ID: "adset_1", Type: domain.EntityTypeAdSet},
			{ID: "ad_1", Type: domain.EntityTypeAd},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 2, report.Failed)
	assert.True(t, report.Results[0].Success)
	assert.Equal(t, context.Canceled.Error(), report.Results[1].Error)
	assert.Equal(t, context.Canceled.Error(), report.Results[2].Error)
}
