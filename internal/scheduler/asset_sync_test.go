package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metamocks "github.com/masterphelps/killscale-api/infrastructure/integrator/meta/mocks"
	repomocks "github.com/masterphelps/killscale-api/infrastructure/repository/mocks"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/internal/domain"
)

func strPtr(v string) *string {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

func newTestSyncService(t *testing.T) (*AssetSyncService, *repomocks.MockConnectionRepository, *repomocks.MockAdDataRepository, *metamocks.MockMetaIntegrator) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockConnectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	mockAdDataRepo := repomocks.NewMockAdDataRepository(ctrl)
	mockMeta := metamocks.NewMockMetaIntegrator(ctrl)

	service := &AssetSyncService{
		config: AssetSyncConfig{
			LookbackDays:      7,
			MaxConcurrentJobs: 2,
			SyncEnabled:       true,
		},
		appConfig:            &config.Config{},
		connectionRepository: mockConnectionRepo,
		adDataRepository:     mockAdDataRepo,
		metaService:          mockMeta,
		nowFunc:              time.Now,
		requestDelay:         func() {},
	}

	return service, mockConnectionRepo, mockAdDataRepo, mockMeta
}

func TestAssetSyncService_SyncAllAccounts(t *testing.T) {
	service, mockConnectionRepo, mockAdDataRepo, mockMeta := newTestSyncService(t)

	now := time.Now()
	active := &domain.Connection{
		ID:          "conn_1",
		UserID:      "user_1",
		AdAccountID: "act_123",
		AccessToken: "token_valido",
		Active:      true,
	}
	expired := &domain.Connection{
		ID:             "conn_2",
		UserID:         "user_2",
		AdAccountID:    "act_456",
		AccessToken:    "token_vencido",
		Active:         true,
		TokenExpiresAt: timePtr(now.Add(-time.Hour)),
	}

	mockConnectionRepo.EXPECT().
		ListActiveMetaConnections().
		Return([]*domain.Connection{active, expired}, nil)

	// A conexão expirada nunca chega ao Graph API
	mockMeta.EXPECT().
		GetAdInsights(gomock.Any(), "token_valido", "act_123", gomock.Any(), gomock.Any()).
		Return([]*domain.AdDataEntry{
			{AdAccountID: "act_123", AdID: "ad_1", Date: now, Spend: 40},
			{AdAccountID: "act_123", AdID: "ad_2", Date: now, Spend: 60},
		}, nil)

	mockAdDataRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(entry *domain.AdDataEntry) error {
			assert.Equal(t, "user_1", entry.UserID)
			return nil
		}).
		Times(2)

	mockAdDataRepo.EXPECT().
		ListAdIDsMissingMedia("act_123").
		Return([]string{"ad_1"}, nil)

	mockMeta.EXPECT().
		GetAd(gomock.Any(), "token_valido", "ad_1").
		Return(&domain.Ad{
			ID: "ad_1",
			Creative: &domain.Creative{
				ID:           "cr_1",
				VideoID:      strPtr("vid_99"),
				ThumbnailURL: strPtr("https://cdn.example.com/thumb.jpg"),
			},
		}, nil)

	mockAdDataRepo.EXPECT().
		UpdateMediaForAd("ad_1", "vid_99", domain.MediaTypeVideo, strPtr("https://cdn.example.com/thumb.jpg")).
		Return(nil)

	service.syncAllAccounts("manual")

	assert.False(t, service.lastSyncCompletedAt.IsZero())

	// Os horários da última execução saem pelo mesmo acessor usado pela rota
	// de status, que lê os campos sob o mutex
	status := service.GetStatus()
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	assert.False(t, status["sync_running"].(bool))
}

func TestAssetSyncService_SyncAllAccounts_FalhaDePersistenciaNaoInterrompe(t *testing.T) {
	service, mockConnectionRepo, mockAdDataRepo, mockMeta := newTestSyncService(t)

	connection := &domain.Connection{
		ID:          "conn_1",
		UserID:      "user_1",
		AdAccountID: "act_123",
		AccessToken: "token_valido",
		Active:      true,
	}

	mockConnectionRepo.EXPECT().
		ListActiveMetaConnections().
		Return([]*domain.Connection{connection}, nil)

	mockMeta.EXPECT().
		GetAdInsights(gomock.Any(), "token_valido", "act_123", gomock.Any(), gomock.Any()).
		Return([]*domain.AdDataEntry{
			{AdAccountID: "act_123", AdID: "ad_1", Date: time.Now()},
			{AdAccountID: "act_123", AdID: "ad_2", Date: time.Now()},
		}, nil)

	// A primeira gravação falha e a segunda ainda acontece
	gomock.InOrder(
		mockAdDataRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(assert.AnError),
		mockAdDataRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil),
	)

	mockAdDataRepo.EXPECT().
		ListAdIDsMissingMedia("act_123").
		Return([]string{}, nil)

	service.syncAllAccounts("cron")
}

func TestAssetSyncService_SyncAllAccounts_JaEmAndamento(t *testing.T) {
	service, _, _, _ := newTestSyncService(t)

	service.syncRunning = true

	// Nenhuma expectativa registrada: a segunda execução deve ser ignorada
	service.syncAllAccounts("manual")

	assert.True(t, service.lastSyncStartedAt.IsZero())
}

func TestMediaIdentity(t *testing.T) {
	tests := []struct {
		name         string
		ad           *domain.Ad
		expectedHash string
		expectedType domain.MediaType
	}{
		{
			name: "Criativo de vídeo usa o ID do vídeo",
			ad: &domain.Ad{Creative: &domain.Creative{
				VideoID:   strPtr("vid_1"),
				MediaHash: strPtr("hash_img"),
			}},
			expectedHash: "vid_1",
			expectedType: domain.MediaTypeVideo,
		},
		{
			name: "Criativo de imagem usa o hash da imagem",
			ad: &domain.Ad{Creative: &domain.Creative{
				MediaHash: strPtr("hash_img"),
			}},
			expectedHash: "hash_img",
			expectedType: domain.MediaTypeImage,
		},
		{
			name:         "Anúncio sem criativo não tem identidade",
			ad:           &domain.Ad{},
			expectedHash: "",
		},
		{
			name:         "Anúncio nulo não tem identidade",
			ad:           nil,
			expectedHash: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, mediaType := mediaIdentity(tt.ad)
			require.Equal(t, tt.expectedHash, hash)
			if tt.expectedHash != "" {
				assert.Equal(t, tt.expectedType, mediaType)
			}
		})
	}
}

func TestAssetSyncService_GetStatus(t *testing.T) {
	service, _, _, _ := newTestSyncService(t)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, 7, status["sync_lookback_days"])
	assert.Equal(t, false, status["sync_running"])
}
