package insighting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	openaimocks "github.com/masterphelps/killscale-api/infrastructure/integrator/openai/mocks"
	repomocks "github.com/masterphelps/killscale-api/infrastructure/repository/mocks"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/internal/domain"
	studiomocks "github.com/masterphelps/killscale-api/internal/usecases/studio/mocks"
)

func newTestService(t *testing.T) (*Service, *studiomocks.MockLibrarian, *openaimocks.MockClient, *repomocks.MockAIInsightRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockLibrarian := studiomocks.NewMockLibrarian(ctrl)
	mockOpenAI := openaimocks.NewMockClient(ctrl)
	mockInsightRepo := repomocks.NewMockAIInsightRepository(ctrl)

	service := &Service{
		cfg:                 &config.Config{},
		librarian:           mockLibrarian,
		openaiClient:        mockOpenAI,
		aiInsightRepository: mockInsightRepo,
		nowFunc:             time.Now,
	}

	return service, mockLibrarian, mockOpenAI, mockInsightRepo
}

func TestService_GetCreativeInsights_CacheValido(t *testing.T) {
	service, _, _, mockInsightRepo := newTestService(t)

	cached := &domain.CreativeInsights{
		AdAccountID: "act_123",
		Summary:     "Vídeos curtos seguram melhor a atenção",
		GeneratedAt: time.Now().Add(-2 * time.Hour),
	}

	mockInsightRepo.EXPECT().
		GetByAccount("act_123").
		Return(cached, nil)

	insights, err := service.GetCreativeInsights(context.Background(), &domain.CreativeInsightsRequest{
		UserID:      "user_1",
		AdAccountID: "act_123",
	})

	require.NoError(t, err)
	assert.Equal(t, cached, insights)
}

func TestService_GetCreativeInsights_CacheExpiradoGeraNovo(t *testing.T) {
	service, mockLibrarian, mockOpenAI, mockInsightRepo := newTestService(t)

	stale := &domain.CreativeInsights{
		AdAccountID: "act_123",
		Summary:     "resumo antigo",
		GeneratedAt: time.Now().Add(-25 * time.Hour),
	}

	mockInsightRepo.EXPECT().
		GetByAccount("act_123").
		Return(stale, nil)

	mockOpenAI.EXPECT().
		IsConfigured().
		Return(true)

	mockLibrarian.EXPECT().
		ListAssets("user_1", "act_123", gomock.Any(), gomock.Any()).
		Return([]*domain.StudioAsset{
			{MediaHash: "hash_a", Name: "video_promo.mp4", MediaType: domain.MediaTypeVideo, Spend: 120, Revenue: 300, ROAS: 2.5},
		}, nil)

	mockOpenAI.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"summary": "Invista mais no video_promo", "stage_insights": [{"stage": "hook", "insight": "Os 3 primeiros segundos prendem bem"}], "biggest_win": "video_promo.mp4", "biggest_opportunity": "Testar variações do gancho"}`, nil)

	mockInsightRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(insights *domain.CreativeInsights) error {
			assert.Equal(t, "act_123", insights.AdAccountID)
			assert.Equal(t, "Invista mais no video_promo", insights.Summary)
			return nil
		})

	insights, err := service.GetCreativeInsights(context.Background(), &domain.CreativeInsightsRequest{
		UserID:      "user_1",
		AdAccountID: "act_123",
	})

	require.NoError(t, err)
	assert.Equal(t, "Invista mais no video_promo", insights.Summary)
	require.Len(t, insights.StageInsights, 1)
	assert.Equal(t, domain.FunnelStageHook, insights.StageInsights[0].Stage)
	assert.Equal(t, "video_promo.mp4", insights.BiggestWin)
}

func TestService_GetCreativeInsights_RefreshIgnoraCache(t *testing.T) {
	service, mockLibrarian, mockOpenAI, mockInsightRepo := newTestService(t)

	// Com refresh o cache nem é consultado
	mockOpenAI.EXPECT().
		IsConfigured().
		Return(true)

	mockLibrarian.EXPECT().
		ListAssets("user_1", "act_123", gomock.Any(), gomock.Any()).
		Return([]*domain.StudioAsset{
			{MediaHash: "hash_a", Name: "banner.png", Spend: 80},
		}, nil)

	mockOpenAI.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`{"summary": "novo resumo", "stage_insights": [], "biggest_win": "", "biggest_opportunity": ""}`, nil)

	mockInsightRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		Return(nil)

	insights, err := service.GetCreativeInsights(context.Background(), &domain.CreativeInsightsRequest{
		UserID:      "user_1",
		AdAccountID: "act_123",
		Refresh:     true,
	})

	require.NoError(t, err)
	assert.Equal(t, "novo resumo", insights.Summary)
}

func TestService_GetCreativeInsights_GastoInsuficiente(t *testing.T) {
	service, mockLibrarian, mockOpenAI, mockInsightRepo := newTestService(t)

	mockInsightRepo.EXPECT().
		GetByAccount("act_123").
		Return(nil, nil)

	mockOpenAI.EXPECT().
		IsConfigured().
		Return(true)

	mockLibrarian.EXPECT().
		ListAssets("user_1", "act_123", gomock.Any(), gomock.Any()).
		Return([]*domain.StudioAsset{
			{MediaHash: "hash_a", Spend: 12.5},
			{MediaHash: "hash_b", Spend: 20},
		}, nil)

	insights, err := service.GetCreativeInsights(context.Background(), &domain.CreativeInsightsRequest{
		UserID:      "user_1",
		AdAccountID: "act_123",
	})

	assert.ErrorIs(t, err, ErrInsufficientData)
	assert.Nil(t, insights)
}

func TestParseInsights(t *testing.T) {
	t.Run("JSON embrulhado em cerca de código", func(t *testing.T) {
		insights, err := parseInsights("```json\n{\"summary\": \"ok\", \"stage_insights\": []}\n```")
		require.NoError(t, err)
		assert.Equal(t, "ok", insights.Summary)
	})

	t.Run("Resposta sem summary é inválida", func(t *testing.T) {
		_, err := parseInsights(`{"stage_insights": []}`)
		assert.ErrorIs(t, err, ErrLLMResponse)
	})

	t.Run("Resposta não JSON é inválida", func(t *testing.T) {
		_, err := parseInsights("desculpe, não consigo ajudar com isso")
		assert.ErrorIs(t, err, ErrLLMResponse)
	})
}
