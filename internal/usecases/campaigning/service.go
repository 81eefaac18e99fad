package campaigning

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/masterphelps/killscale-api/infrastructure/integrator/meta"
	"github.com/masterphelps/killscale-api/infrastructure/repository"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/internal/domain"
)

// Campaigner expõe a hierarquia campanha > conjunto > anúncio e as audiências
// da conta, sempre com dados ao vivo do Meta
type Campaigner interface {
	ListCampaigns(ctx context.Context, userID, adAccountID string) ([]*domain.CombinedCampaign, error)
	ListAdSets(ctx context.Context, userID, adAccountID, campaignID string) ([]*domain.AdSet, error)
	ListAds(ctx context.Context, userID, adAccountID, adSetID string) ([]*domain.Ad, error)
	ListAudiences(ctx context.Context, userID, adAccountID string) ([]*domain.CustomAudience, error)
}

type Service struct {
	cfg                        *config.Config
	metaService                meta.MetaIntegrator
	connectionRepository       repository.ConnectionRepository
	campaignCreationRepository repository.CampaignCreationRepository

	nowFunc func() time.Time
}

func NewService(
	cfg *config.Config,
	metaService meta.MetaIntegrator,
	connectionRepo repository.ConnectionRepository,
	campaignCreationRepo repository.CampaignCreationRepository,
) Campaigner {
	return &Service{
		cfg:                        cfg,
		metaService:                metaService,
		connectionRepository:       connectionRepo,
		campaignCreationRepository: campaignCreationRepo,
		nowFunc:                    time.Now,
	}
}

func (s *Service) resolveToken(userID, adAccountID string) (string, error) {
	if adAccountID == "" {
		return "", ErrAccountIDRequired
	}

	connection, err := s.connectionRepository.GetMetaConnection(userID, adAccountID)
	if err != nil {
		return "", err
	}

	if connection == nil {
		return "", ErrConnectionNotFound
	}

	if !connection.Active {
		return "", ErrConnectionInactive
	}

	if connection.TokenExpired(s.nowFunc()) {
		return "", ErrTokenExpired
	}

	return connection.AccessToken, nil
}

// ListCampaigns busca as campanhas no Meta, casa com os registros de
// campaign_creations e ordena com as ativas primeiro
func (s *Service) ListCampaigns(ctx context.Context, userID, adAccountID string) ([]*domain.CombinedCampaign, error) {
	accessToken, err := s.resolveToken(userID, adAccountID)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.metaService.GetCampaigns(ctx, accessToken, adAccountID)
	if err != nil {
		return nil, err
	}

	creations, err := s.campaignCreationRepository.ListByUserAndAccount(userID, adAccountID)
	if err != nil {
		// A junção com campaign_creations é enriquecimento, não requisito:
		// a lista do Meta ainda é devolvida
		logrus.WithFields(logrus.Fields{
			"account_id": adAccountID,
			"error":      err.Error(),
		}).Warn("campaigning: failed to load campaign creations")
		creations = nil
	}

	creationsByCampaign := make(map[string]*domain.CampaignCreation, len(creations))
	for _, creation := range creations {
		creationsByCampaign[creation.CampaignID] = creation
	}

	for _, campaign := range campaigns {
		if creation, ok := creationsByCampaign[campaign.ID]; ok {
			campaign.Creation = creation
			campaign.CreatedByStudio = true
		}
	}

	domain.SortCampaigns(campaigns)

	return campaigns, nil
}

// ListAdSets busca os conjuntos de anúncios de uma campanha
func (s *Service) ListAdSets(ctx context.Context, userID, adAccountID, campaignID string) ([]*domain.AdSet, error) {
	accessToken, err := s.resolveToken(userID, adAccountID)
	if err != nil {
		return nil, err
	}

	return s.metaService.GetAdSets(ctx, accessToken, campaignID)
}

// ListAds busca os anúncios de um conjunto
func (s *Service) ListAds(ctx context.Context, userID, adAccountID, adSetID string) ([]*domain.Ad, error) {
	accessToken, err := s.resolveToken(userID, adAccountID)
	if err != nil {
		return nil, err
	}

	return s.metaService.GetAds(ctx, accessToken, adSetID)
}

// ListAudiences busca as audiências da conta, removendo as que não podem
// ser usadas em campanhas novas (delivery_status >= 400)
func (s *Service) ListAudiences(ctx context.Context, userID, adAccountID string) ([]*domain.CustomAudience, error) {
	accessToken, err := s.resolveToken(userID, adAccountID)
	if err != nil {
		return nil, err
	}

	audiences, err := s.metaService.GetCustomAudiences(ctx, accessToken, adAccountID)
	if err != nil {
		return nil, err
	}

	return domain.FilterUsableAudiences(audiences), nil
}
