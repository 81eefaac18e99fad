package studio

import (
	"errors"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/masterphelps/killscale-api/infrastructure/repository"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/internal/domain"
)

// Erros específicos para o contexto do Studio
var (
	ErrAccountIDRequired = errors.New("ad account ID is required")
	ErrMediaHashRequired = errors.New("media hash is required")
	ErrInvalidDateRange  = errors.New("start date must not be after end date")
)

// Librarian expõe a biblioteca de assets criativos agregados por media hash
type Librarian interface {
	ListAssets(userID, adAccountID string, startDate, endDate time.Time) ([]*domain.StudioAsset, error)
	GetAssetDailyMetrics(adAccountID, mediaHash string) ([]*domain.DailyMetrics, error)
	GetAssetAudiencePerformance(adAccountID, mediaHash string) ([]*domain.AudiencePerformance, error)
	SetStarred(userID, adAccountID, mediaHash string, starred bool) error
}

type Service struct {
	cfg                    *config.Config
	adDataRepository       repository.AdDataRepository
	starredAssetRepository repository.StarredAssetRepository
	scorer                 Scorer
}

func NewService(
	cfg *config.Config,
	adDataRepo repository.AdDataRepository,
	starredAssetRepo repository.StarredAssetRepository,
	scorer Scorer,
) Librarian {
	if scorer == nil {
		scorer = NewSpendWeightedScorer()
	}

	return &Service{
		cfg:                    cfg,
		adDataRepository:       adDataRepo,
		starredAssetRepository: starredAssetRepo,
		scorer:                 scorer,
	}
}

// ListAssets agrega as linhas de ad_data do período por media hash e devolve
// a biblioteca ordenada por gasto
func (s *Service) ListAssets(userID, adAccountID string, startDate, endDate time.Time) ([]*domain.StudioAsset, error) {
	if adAccountID == "" {
		return nil, ErrAccountIDRequired
	}

	if startDate.After(endDate) {
		return nil, ErrInvalidDateRange
	}

	entries, err := s.adDataRepository.GetByAccountAndDateRange(adAccountID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	starred, err := s.starredAssetRepository.ListStarred(userID, adAccountID)
	if err != nil {
		// A curadoria é enriquecimento: sem ela, a biblioteca sai sem estrelas
		logrus.WithFields(logrus.Fields{
			"account_id": adAccountID,
			"error":      err.Error(),
		}).Warn("studio: failed to load starred assets")
		starred = nil
	}

	groups := make(map[string][]*domain.AdDataEntry)
	for _, entry := range entries {
		if entry.MediaHash == "" {
			// Linhas ainda não enriquecidas com o criativo não formam asset
			continue
		}
		groups[entry.MediaHash] = append(groups[entry.MediaHash], entry)
	}

	assets := make([]*domain.StudioAsset, 0, len(groups))
	for mediaHash, group := range groups {
		asset := s.buildAsset(mediaHash, group)
		asset.Starred = starred[mediaHash]
		assets = append(assets, asset)
	}

	sort.SliceStable(assets, func(i, j int) bool {
		return assets[i].Spend > assets[j].Spend
	})

	return assets, nil
}

// buildAsset monta o StudioAsset a partir das linhas de um mesmo media hash
func (s *Service) buildAsset(mediaHash string, entries []*domain.AdDataEntry) *domain.StudioAsset {
	asset := &domain.StudioAsset{
		ID:        mediaHash,
		MediaHash: mediaHash,
	}

	adIDs := make(map[string]bool)
	adSetIDs := make(map[string]bool)
	campaignIDs := make(map[string]bool)
	activeDates := make(map[string]bool)

	var latest *domain.AdDataEntry

	for _, entry := range entries {
		asset.Spend += entry.Spend
		asset.Revenue += entry.Revenue
		asset.Impressions += entry.Impressions
		asset.Clicks += entry.Clicks
		asset.VideoViews += entry.VideoViews
		asset.ThruPlays += entry.ThruPlays
		asset.WatchTime += entry.WatchTime

		adIDs[entry.AdID] = true
		adSetIDs[entry.AdSetID] = true
		campaignIDs[entry.CampaignID] = true

		if entry.Spend > 0 {
			activeDates[entry.Date.Format(time.DateOnly)] = true
		}

		if asset.FirstSeenAt == nil || entry.Date.Before(*asset.FirstSeenAt) {
			date := entry.Date
			asset.FirstSeenAt = &date
		}
		if asset.LastSeenAt == nil || entry.Date.After(*asset.LastSeenAt) {
			date := entry.Date
			asset.LastSeenAt = &date
		}

		if latest == nil || entry.Date.After(latest.Date) {
			latest = entry
		}
	}

	// Identidade do asset vem da linha mais recente
	if latest != nil {
		asset.MediaType = latest.MediaType
		asset.Name = latest.MediaName
		asset.ThumbnailURL = latest.ThumbnailURL
		asset.StorageURL = latest.StorageURL
		asset.Width = latest.Width
		asset.Height = latest.Height
		asset.FileSize = latest.FileSize
		asset.SyncedAt = latest.UpdatedAt
	}

	asset.AdCount = len(adIDs)
	asset.AdSetCount = len(adSetIDs)
	asset.CampaignCount = len(campaignIDs)
	asset.DaysActive = len(activeDates)

	s.computeDerivedMetrics(asset, entries)
	s.computeScores(asset, entries)

	return asset
}

func (s *Service) computeDerivedMetrics(asset *domain.StudioAsset, entries []*domain.AdDataEntry) {
	if asset.Spend > 0 {
		asset.ROAS = asset.Revenue / asset.Spend
	}

	if asset.Impressions > 0 {
		asset.CTR = float64(asset.Clicks) / float64(asset.Impressions) * 100
		asset.CPM = asset.Spend / float64(asset.Impressions) * 1000
	}

	if asset.Clicks > 0 {
		asset.CPC = asset.Spend / float64(asset.Clicks)
	}

	if asset.MediaType != domain.MediaTypeVideo {
		return
	}

	var video3s, completions int64
	for _, entry := range entries {
		video3s += entry.Video3sViews
		completions += entry.VideoCompletions
	}

	if asset.Impressions > 0 {
		asset.ThumbstopRate = float64(video3s) / float64(asset.Impressions) * 100
	}

	if video3s > 0 {
		asset.HoldRate = float64(asset.ThruPlays) / float64(video3s) * 100
	}

	if asset.VideoViews > 0 {
		asset.CompletionRate = float64(completions) / float64(asset.VideoViews) * 100
	}
}

// computeScores aplica o scorer apenas quando o gasto agregado atinge o
// mínimo; abaixo disso os scores ficam nulos e a fadiga fica "fresh"
func (s *Service) computeScores(asset *domain.StudioAsset, entries []*domain.AdDataEntry) {
	asset.FatigueStatus = domain.FatigueStatusFresh

	if asset.Spend < domain.MinScoredSpend {
		return
	}

	scores, fatigue := s.scorer.Score(entries)
	asset.Scores = scores
	asset.FatigueScore = fatigue

	if fatigue != nil {
		asset.FatigueStatus = domain.FatigueStatusForScore(*fatigue)
	}

	bands := &domain.ScoreBands{}
	hasBand := false

	if scores.Hook != nil {
		bands.Hook = domain.BandForScore(*scores.Hook)
		hasBand = true
	}
	if scores.Hold != nil {
		bands.Hold = domain.BandForScore(*scores.Hold)
		hasBand = true
	}
	if scores.Click != nil {
		bands.Click = domain.BandForScore(*scores.Click)
		hasBand = true
	}
	if scores.Convert != nil {
		bands.Convert = domain.BandForScore(*scores.Convert)
		hasBand = true
	}

	if hasBand {
		asset.ScoreBands = bands
	}
}

// GetAssetDailyMetrics devolve a série diária de um asset para os gráficos
// de tendência
func (s *Service) GetAssetDailyMetrics(adAccountID, mediaHash string) ([]*domain.DailyMetrics, error) {
	if mediaHash == "" {
		return nil, ErrMediaHashRequired
	}

	entries, err := s.adDataRepository.GetByMediaHash(adAccountID, mediaHash)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*domain.DailyMetrics)
	for _, entry := range entries {
		key := entry.Date.Format(time.DateOnly)

		metrics, ok := byDate[key]
		if !ok {
			metrics = &domain.DailyMetrics{Date: entry.Date}
			byDate[key] = metrics
		}

		metrics.Spend += entry.Spend
		metrics.Revenue += entry.Revenue
		metrics.Impressions += entry.Impressions
		metrics.Clicks += entry.Clicks
	}

	daily := make([]*domain.DailyMetrics, 0, len(byDate))
	for _, metrics := range byDate {
		if metrics.Spend > 0 {
			metrics.ROAS = metrics.Revenue / metrics.Spend
		}
		if metrics.Impressions > 0 {
			metrics.CTR = float64(metrics.Clicks) / float64(metrics.Impressions) * 100
		}
		daily = append(daily, metrics)
	}

	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date.Before(daily[j].Date)
	})

	return daily, nil
}

// GetAssetAudiencePerformance agrupa a performance do asset por conjunto de
// anúncios. O nome exibido é o ID do conjunto; o frontend resolve o nome a
// partir da hierarquia que já tem em memória.
func (s *Service) GetAssetAudiencePerformance(adAccountID, mediaHash string) ([]*domain.AudiencePerformance, error) {
	if mediaHash == "" {
		return nil, ErrMediaHashRequired
	}

	entries, err := s.adDataRepository.GetByMediaHash(adAccountID, mediaHash)
	if err != nil {
		return nil, err
	}

	byAdSet := make(map[string]*domain.AudiencePerformance)
	for _, entry := range entries {
		perf, ok := byAdSet[entry.AdSetID]
		if !ok {
			perf = &domain.AudiencePerformance{AudienceName: entry.AdSetID}
			byAdSet[entry.AdSetID] = perf
		}

		perf.Spend += entry.Spend
		perf.Revenue += entry.Revenue
		perf.Impressions += entry.Impressions
	}

	performances := make([]*domain.AudiencePerformance, 0, len(byAdSet))
	for _, perf := range byAdSet {
		if perf.Spend > 0 {
			perf.ROAS = perf.Revenue / perf.Spend
		}
		performances = append(performances, perf)
	}

	sort.SliceStable(performances, func(i, j int) bool {
		return performances[i].Spend > performances[j].Spend
	})

	return performances, nil
}

// SetStarred marca ou desmarca um asset na curadoria do usuário
func (s *Service) SetStarred(userID, adAccountID, mediaHash string, starred bool) error {
	if mediaHash == "" {
		return ErrMediaHashRequired
	}

	return s.starredAssetRepository.SetStarred(userID, adAccountID, mediaHash, starred)
}
