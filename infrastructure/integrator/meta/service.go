package meta

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/masterphelps/killscale-api/infrastructure/integrator/meta/domain"
	"github.com/masterphelps/killscale-api/infrastructure/integrator/meta/metaclient"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/internal/domain"
)

type MetaIntegrator interface {
	GetCampaigns(ctx context.Context, accessToken, accountID string) ([]*domain.CombinedCampaign, error)
	GetAdSets(ctx context.Context, accessToken, campaignID string) ([]*domain.AdSet, error)
	GetAds(ctx context.Context, accessToken, adSetID string) ([]*domain.Ad, error)
	GetAd(ctx context.Context, accessToken, adID string) (*domain.Ad, error)
	GetCustomAudiences(ctx context.Context, accessToken, accountID string) ([]*domain.CustomAudience, error)
	GetAdInsights(ctx context.Context, accessToken, accountID string, since, until time.Time) ([]*domain.AdDataEntry, error)
	UpdateStatus(ctx context.Context, accessToken, entityID string, status domain.EntityStatus) error
	DeleteEntity(ctx context.Context, accessToken, entityID string) error
	UpdateBudget(ctx context.Context, accessToken, entityID string, dailyBudget, lifetimeBudget *int64) error
	Duplicate(ctx context.Context, accessToken, entityID, renameSuffix string, deepCopy bool) (string, error)
}

type MetaService struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) MetaIntegrator {
	return &MetaService{
		cfg:    cfg,
		Client: client,
	}
}

// GetCampaigns busca e converte as campanhas de uma conta
func (s *MetaService) GetCampaigns(ctx context.Context, accessToken, accountID string) ([]*domain.CombinedCampaign, error) {
	campaigns, err := s.Client.GetCampaignsByAccountID(ctx, accessToken, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("meta: failed to get campaigns for ad account")
		return nil, err
	}

	result := make([]*domain.CombinedCampaign, 0, len(campaigns))
	for i := range campaigns {
		result = append(result, factoryCampaign(&campaigns[i]))
	}

	return result, nil
}

// GetAdSets busca e converte os conjuntos de anúncios de uma campanha
func (s *MetaService) GetAdSets(ctx context.Context, accessToken, campaignID string) ([]*domain.AdSet, error) {
	adSets, err := s.Client.GetAdSetsByCampaignID(ctx, accessToken, campaignID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Error("meta: failed to get ad sets for campaign")
		return nil, err
	}

	result := make([]*domain.AdSet, 0, len(adSets))
	for i := range adSets {
		a := adSets[i]
		result = append(result, &domain.AdSet{
			ID:               a.ID,
			CampaignID:       a.CampaignID,
			Name:             a.Name,
			Status:           domain.EntityStatus(a.Status),
			DailyBudget:      parseBudget(a.DailyBudget),
			LifetimeBudget:   parseBudget(a.LifetimeBudget),
			OptimizationGoal: a.OptimizationGoal,
		})
	}

	return result, nil
}

// GetAds busca e converte os anúncios de um conjunto
func (s *MetaService) GetAds(ctx context.Context, accessToken, adSetID string) ([]*domain.Ad, error) {
	ads, err := s.Client.GetAdsByAdSetID(ctx, accessToken, adSetID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adset_id": adSetID,
			"error":    err.Error(),
		}).Error("meta: failed to get ads for ad set")
		return nil, err
	}

	result := make([]*domain.Ad, 0, len(ads))
	for i := range ads {
		result = append(result, factoryAd(&ads[i]))
	}

	return result, nil
}

// GetAd busca um anúncio isolado com o criativo embutido
func (s *MetaService) GetAd(ctx context.Context, accessToken, adID string) (*domain.Ad, error) {
	ad, err := s.Client.GetAdByID(ctx, accessToken, adID)
	if err != nil {
		return nil, err
	}
	return factoryAd(ad), nil
}

// GetCustomAudiences busca as audiências da conta já convertidas
func (s *MetaService) GetCustomAudiences(ctx context.Context, accessToken, accountID string) ([]*domain.CustomAudience, error) {
	audiences, err := s.Client.GetCustomAudiencesByAccountID(ctx, accessToken, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("meta: failed to get custom audiences for ad account")
		return nil, err
	}

	result := make([]*domain.CustomAudience, 0, len(audiences))
	for i := range audiences {
		a := audiences[i]

		var deliveryStatus *domain.DeliveryStatus
		if a.DeliveryStatus != nil {
			deliveryStatus = &domain.DeliveryStatus{
				Code:        a.DeliveryStatus.Code,
				Description: a.DeliveryStatus.Description,
			}
		}

		count := a.ApproximateCount
		result = append(result, &domain.CustomAudience{
			ID:               a.ID,
			Name:             a.Name,
			Subtype:          a.Subtype,
			ApproximateCount: &count,
			DeliveryStatus:   deliveryStatus,
		})
	}

	return result, nil
}

// GetAdInsights busca insights por anúncio/dia e converte em entradas de ad_data
func (s *MetaService) GetAdInsights(ctx context.Context, accessToken, accountID string, since, until time.Time) ([]*domain.AdDataEntry, error) {
	insights, err := s.Client.GetAdInsightsByAccountID(ctx, accessToken, accountID, since, until)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("meta: failed to get ad insights for ad account")
		return nil, err
	}

	entries := make([]*domain.AdDataEntry, 0, len(insights))
	for i := range insights {
		entry := factoryAdDataEntry(&insights[i])
		if entry != nil {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

func (s *MetaService) UpdateStatus(ctx context.Context, accessToken, entityID string, status domain.EntityStatus) error {
	return s.Client.UpdateStatus(ctx, accessToken, entityID, string(status))
}

func (s *MetaService) DeleteEntity(ctx context.Context, accessToken, entityID string) error {
	return s.Client.DeleteEntity(ctx, accessToken, entityID)
}

func (s *MetaService) UpdateBudget(ctx context.Context, accessToken, entityID string, dailyBudget, lifetimeBudget *int64) error {
	return s.Client.UpdateBudget(ctx, accessToken, entityID, dailyBudget, lifetimeBudget)
}

// Duplicate cria uma cópia pausada da entidade e retorna o ID da cópia
func (s *MetaService) Duplicate(ctx context.Context, accessToken, entityID, renameSuffix string, deepCopy bool) (string, error) {
	return s.Client.Duplicate(ctx, accessToken, entityID, metaclient.DuplicateOptions{
		RenameSuffix: renameSuffix,
		DeepCopy:     deepCopy,
	})
}

func factoryCampaign(c *metadomain.Campaign) *domain.CombinedCampaign {
	dailyBudget := parseBudget(c.DailyBudget)
	lifetimeBudget := parseBudget(c.LifetimeBudget)

	return &domain.CombinedCampaign{
		ID:             c.ID,
		Name:           c.Name,
		Status:         domain.EntityStatus(c.Status),
		Objective:      c.Objective,
		DailyBudget:    dailyBudget,
		LifetimeBudget: lifetimeBudget,
		BudgetType:     domain.ClassifyBudget(dailyBudget, lifetimeBudget),
	}
}

func factoryAd(a *metadomain.Ad) *domain.Ad {
	ad := &domain.Ad{
		ID:      a.ID,
		AdSetID: a.AdSetID,
		Name:    a.Name,
		Status:  domain.EntityStatus(a.Status),
	}

	if a.Creative != nil {
		creative := &domain.Creative{ID: a.Creative.ID}

		if a.Creative.ImageHash != "" {
			hash := a.Creative.ImageHash
			creative.MediaHash = &hash
		}
		if a.Creative.ThumbnailURL != "" {
			thumb := a.Creative.ThumbnailURL
			creative.ThumbnailURL = &thumb
		}
		if a.Creative.URLTags != "" {
			tags := a.Creative.URLTags
			creative.URLTags = &tags
		}
		if a.Creative.VideoID != "" {
			videoID := a.Creative.VideoID
			creative.VideoID = &videoID
		}
		if link := creativeLink(a.Creative); link != "" {
			creative.LinkURL = &link
		}

		ad.Creative = creative
	}

	return ad
}

// creativeLink extrai o link de destino do object_story_spec (link_data ou video_data)
func creativeLink(c *metadomain.Creative) string {
	if c.ObjectStorySpec == nil {
		return ""
	}
	if c.ObjectStorySpec.LinkData != nil && c.ObjectStorySpec.LinkData.Link != "" {
		return c.ObjectStorySpec.LinkData.Link
	}
	if c.ObjectStorySpec.VideoData != nil && c.ObjectStorySpec.VideoData.CallToAction != nil {
		return c.ObjectStorySpec.VideoData.CallToAction.Value.Link
	}
	return ""
}

func factoryAdDataEntry(in *metadomain.AdInsight) *domain.AdDataEntry {
	date, err := time.Parse(time.DateOnly, in.DateStart)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id":      in.AdID,
			"date_start": in.DateStart,
			"error":      err.Error(),
		}).Warn("meta: error converting insight date")
		return nil
	}

	entry := &domain.AdDataEntry{
		AdAccountID: in.AccountID,
		CampaignID:  in.CampaignID,
		AdSetID:     in.AdSetID,
		AdID:        in.AdID,
		MediaName:   in.AdName,
		Date:        date,
		Spend:       parseFloat(in.Spend, "spend", in.AdID),
		Impressions: parseInt(in.Impressions, "impressions", in.AdID),
		Clicks:      parseInt(in.Clicks, "clicks", in.AdID),
	}

	// Receita atribuída: valor das conversões de compra do pixel
	entry.Revenue = parseFloat(metadomain.ActionValue(in.ActionValues, "offsite_conversion.fb_pixel_purchase"), "revenue", in.AdID)

	entry.VideoViews = parseInt(in.VideoPlayActions.First(), "video_views", in.AdID)
	entry.ThruPlays = parseInt(in.VideoThruplayWatched.First(), "thruplays", in.AdID)
	entry.Video3sViews = parseInt(in.Video3SecWatched.First(), "video_3s_views", in.AdID)
	entry.VideoCompletions = parseInt(in.VideoP100Watched.First(), "video_completions", in.AdID)
	entry.WatchTime = parseFloat(in.VideoAvgTimeWatched.First(), "watch_time", in.AdID)

	if entry.VideoViews > 0 {
		entry.MediaType = domain.MediaTypeVideo
	} else {
		entry.MediaType = domain.MediaTypeImage
	}

	return entry
}

func parseBudget(value string) *int64 {
	if value == "" {
		return nil
	}

	cents, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"budget_value": value,
			"error":        err.Error(),
		}).Warn("meta: error converting budget to integer")
		return nil
	}

	return &cents
}

func parseFloat(value, field, adID string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("meta: error converting value to float")
	}

	return parsed
}

func parseInt(value, field, adID string) int64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_id": adID,
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("meta: error converting value to integer")
	}

	return parsed
}
