package studio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/masterphelps/killscale-api/infrastructure/repository/mocks"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func newTestService(t *testing.T) (*Service, *mocks.MockAdDataRepository, *mocks.MockStarredAssetRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAdDataRepo := mocks.NewMockAdDataRepository(ctrl)
	mockStarredRepo := mocks.NewMockStarredAssetRepository(ctrl)

	service := &Service{
		cfg:                    &config.Config{},
		adDataRepository:       mockAdDataRepo,
		starredAssetRepository: mockStarredRepo,
		scorer:                 NewSpendWeightedScorer(),
	}

	return service, mockAdDataRepo, mockStarredRepo
}

func day(d int) time.Time {
	return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestService_ListAssets_AgregacaoPorMediaHash(t *testing.T) {
	service, mockAdDataRepo, mockStarredRepo := newTestService(t)

	entries := []*domain.AdDataEntry{
		// Mesmo criativo usado em dois anúncios de campanhas diferentes
		{
			AdAccountID: "act_123", CampaignID: "camp_1", AdSetID: "adset_1", AdID: "ad_1",
			MediaHash: "hash_a", MediaType: domain.MediaTypeVideo, MediaName: "video_promo.mp4",
			Date: day(1), Spend: 40, Revenue: 120, Impressions: 10000, Clicks: 200,
			VideoViews: 5000, ThruPlays: 1200, Video3sViews: 3000, VideoCompletions: 800,
			HookScore: floatPtr(80), HoldScore: floatPtr(60), ClickScore: floatPtr(70), ConvertScore: floatPtr(90),
			FatigueScore: floatPtr(30),
		},
		{
			AdAccountID: "act_123", CampaignID: "camp_2", AdSetID: "adset_2", AdID: "ad_2",
			MediaHash: "hash_a", MediaType: domain.MediaTypeVideo, MediaName: "video_promo.mp4",
			Date: day(2), Spend: 60, Revenue: 90, Impressions: 20000, Clicks: 100,
			VideoViews: 8000, ThruPlays: 1800, Video3sViews: 5000, VideoCompletions: 1000,
			HookScore: floatPtr(40), HoldScore: floatPtr(50), ClickScore: floatPtr(30), ConvertScore: floatPtr(20),
			FatigueScore: floatPtr(70),
		},
		// Criativo de imagem abaixo do gasto mínimo para scores
		{
			AdAccountID: "act_123", CampaignID: "camp_1", AdSetID: "adset_1", AdID: "ad_3",
			MediaHash: "hash_b", MediaType: domain.MediaTypeImage, MediaName: "banner.png",
			Date: day(1), Spend: 10, Revenue: 5, Impressions: 2000, Clicks: 40,
			HookScore: floatPtr(55),
		},
		// Linha ainda não enriquecida com media hash não vira asset
		{
			AdAccountID: "act_123", CampaignID: "camp_3", AdSetID: "adset_3", AdID: "ad_4",
			MediaHash: "", Date: day(1), Spend: 99,
		},
	}

	mockAdDataRepo.EXPECT().
		GetByAccountAndDateRange("act_123", day(1), day(7)).
		Return(entries, nil)

	mockStarredRepo.EXPECT().
		ListStarred("user_1", "act_123").
		Return(map[string]bool{"hash_a": true}, nil)

	assets, err := service.ListAssets("user_1", "act_123", day(1), day(7))
	require.NoError(t, err)
	require.Len(t, assets, 2)

	// Ordenação por gasto decrescente
	video := assets[0]
	image := assets[1]

	assert.Equal(t, "hash_a", video.MediaHash)
	assert.Equal(t, float64(100), video.Spend)
	assert.Equal(t, float64(210), video.Revenue)
	assert.InDelta(t, 2.1, video.ROAS, 0.0001)
	assert.Equal(t, int64(30000), video.Impressions)
	assert.InDelta(t, 1.0, video.CTR, 0.0001) // 300 cliques / 30000 impressões
	assert.Equal(t, 2, video.AdCount)
	assert.Equal(t, 2, video.CampaignCount)
	assert.Equal(t, 2, video.DaysActive)
	assert.True(t, video.Starred)

	// Métricas de vídeo: thumbstop = 8000/30000, hold = 3000/8000
	assert.InDelta(t, 26.6667, video.ThumbstopRate, 0.001)
	assert.InDelta(t, 37.5, video.HoldRate, 0.001)

	// Scores ponderados por gasto: hook = (80*40 + 40*60) / 100 = 56
	require.NotNil(t, video.Scores.Hook)
	assert.InDelta(t, 56.0, *video.Scores.Hook, 0.0001)
	require.NotNil(t, video.ScoreBands)
	assert.Equal(t, domain.ScoreBandGood, video.ScoreBands.Hook)

	// Fadiga ponderada: (30*40 + 70*60) / 100 = 54 -> warning
	require.NotNil(t, video.FatigueScore)
	assert.InDelta(t, 54.0, *video.FatigueScore, 0.0001)
	assert.Equal(t, domain.FatigueStatusWarning, video.FatigueStatus)

	// Abaixo do gasto mínimo: sem scores, fadiga fresh
	assert.Equal(t, "hash_b", image.MediaHash)
	assert.Nil(t, image.Scores.Hook)
	assert.Nil(t, image.ScoreBands)
	assert.Nil(t, image.FatigueScore)
	assert.Equal(t, domain.FatigueStatusFresh, image.FatigueStatus)
	assert.False(t, image.Starred)
}

func TestService_ListAssets_PeriodoInvalido(t *testing.T) {
	service, _, _ := newTestService(t)

	assets, err := service.ListAssets("user_1", "act_123", day(7), day(1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Nil(t, assets)
}

func TestService_GetAssetDailyMetrics(t *testing.T) {
	service, mockAdDataRepo, _ := newTestService(t)

	mockAdDataRepo.EXPECT().
		GetByMediaHash("act_123", "hash_a").
		Return([]*domain.AdDataEntry{
			// Dois anúncios no mesmo dia somam na mesma linha da série
			{AdID: "ad_1", MediaHash: "hash_a", Date: day(2), Spend: 30, Revenue: 60, Impressions: 1000, Clicks: 20},
			{AdID: "ad_2", MediaHash: "hash_a", Date: day(2), Spend: 20, Revenue: 40, Impressions: 1000, Clicks: 30},
			{AdID: "ad_1", MediaHash: "hash_a", Date: day(1), Spend: 10, Revenue: 5, Impressions: 500, Clicks: 5},
		}, nil)

	daily, err := service.GetAssetDailyMetrics("act_123", "hash_a")
	require.NoError(t, err)
	require.Len(t, daily, 2)

	// Série em ordem cronológica
	assert.Equal(t, day(1), daily[0].Date)
	assert.Equal(t, float64(10), daily[0].Spend)

	assert.Equal(t, day(2), daily[1].Date)
	assert.Equal(t, float64(50), daily[1].Spend)
	assert.Equal(t, float64(100), daily[1].Revenue)
	assert.InDelta(t, 2.0, daily[1].ROAS, 0.0001)
	assert.InDelta(t, 2.5, daily[1].CTR, 0.0001) // 50 cliques / 2000 impressões
}

func TestService_GetAssetAudiencePerformance(t *testing.T) {
	service, mockAdDataRepo, _ := newTestService(t)

	mockAdDataRepo.EXPECT().
		GetByMediaHash("act_123", "hash_a").
		Return([]*domain.AdDataEntry{
			{AdSetID: "adset_1", MediaHash: "hash_a", Date: day(1), Spend: 30, Revenue: 90, Impressions: 1000},
			{AdSetID: "adset_1", MediaHash: "hash_a", Date: day(2), Spend: 20, Revenue: 10, Impressions: 800},
			{AdSetID: "adset_2", MediaHash: "hash_a", Date: day(1), Spend: 80, Revenue: 400, Impressions: 5000},
		}, nil)

	performances, err := service.GetAssetAudiencePerformance("act_123", "hash_a")
	require.NoError(t, err)
	require.Len(t, performances, 2)

	// Ordenado por gasto decrescente
	assert.Equal(t, "adset_2", performances[0].AudienceName)
	assert.InDelta(t, 5.0, performances[0].ROAS, 0.0001)

	assert.Equal(t, "adset_1", performances[1].AudienceName)
	assert.Equal(t, float64(50), performances[1].Spend)
	assert.InDelta(t, 2.0, performances[1].ROAS, 0.0001)
}

func TestService_SetStarred(t *testing.T) {
	service, _, mockStarredRepo := newTestService(t)

	mockStarredRepo.EXPECT().
		SetStarred("user_1", "act_123", "hash_a", true).
		Return(nil)

	err := service.SetStarred("user_1", "act_123", "hash_a", true)
	assert.NoError(t, err)

	err = service.SetStarred("user_1", "act_123", "", true)
	assert.ErrorIs(t, err, ErrMediaHashRequired)
}
