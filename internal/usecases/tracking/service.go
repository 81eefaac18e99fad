package tracking

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/masterphelps/killscale-api/infrastructure/integrator/meta"
	"github.com/masterphelps/killscale-api/infrastructure/repository"
	"github.com/masterphelps/killscale-api/internal/cache"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/internal/domain"
)

// Erros específicos para o contexto de rastreamento
var (
	ErrEmptyAdList        = errors.New("ad ID list is empty")
	ErrConnectionNotFound = errors.New("meta connection not found")
	ErrConnectionInactive = errors.New("meta connection is inactive")
	ErrTokenExpired       = errors.New("meta connection token expired")
)

// Tracker verifica a presença dos parâmetros UTM nos criativos dos anúncios
type Tracker interface {
	SyncUTMStatus(ctx context.Context, req *domain.SyncUTMStatusRequest) (*domain.SyncUTMStatusResponse, error)
}

type Service struct {
	cfg                  *config.Config
	metaService          meta.MetaIntegrator
	connectionRepository repository.ConnectionRepository

	// statusCache evita refazer chamadas ao Graph API para anúncios já
	// inspecionados dentro da janela de TTL
	statusCache *cache.TTLCache[*domain.UTMStatus]

	nowFunc func() time.Time
}

func NewService(
	cfg *config.Config,
	metaService meta.MetaIntegrator,
	connectionRepo repository.ConnectionRepository,
) Tracker {
	ttl := time.Duration(cfg.TrackingCache.TTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Service{
		cfg:                  cfg,
		metaService:          metaService,
		connectionRepository: connectionRepo,
		statusCache:          cache.NewTTLCache[*domain.UTMStatus](ttl),
		nowFunc:              time.Now,
	}
}

func (s *Service) resolveToken(userID, adAccountID string) (string, error) {
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

// SyncUTMStatus inspeciona os anúncios solicitados de forma incremental:
// anúncios dentro da janela de cache não geram nova chamada ao Graph API
func (s *Service) SyncUTMStatus(ctx context.Context, req *domain.SyncUTMStatusRequest) (*domain.SyncUTMStatusResponse, error) {
	if len(req.AdIDs) == 0 {
		return nil, ErrEmptyAdList
	}

	accessToken, err := s.resolveToken(req.UserID, req.AdAccountID)
	if err != nil {
		return nil, err
	}

	response := &domain.SyncUTMStatusResponse{
		AdAccountID: req.AdAccountID,
		Statuses:    make(map[string]*domain.UTMStatus, len(req.AdIDs)),
	}

	for _, adID := range req.AdIDs {
		cacheKey := req.AdAccountID + ":" + adID

		if status, ok := s.statusCache.Get(cacheKey); ok {
			response.Statuses[adID] = status
			response.FromCache++
			continue
		}

		ad, err := s.metaService.GetAd(ctx, accessToken, adID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"ad_id": adID,
				"error": err.Error(),
			}).Warn("tracking: failed to fetch ad for utm inspection")

			response.Statuses[adID] = &domain.UTMStatus{
				AdID:  adID,
				State: domain.UTMStateUnknown,
			}
			continue
		}

		status := inspectAd(ad)

		// Estado desconhecido fica fora do cache: um criativo enriquecido
		// depois volta a ser inspecionado na próxima sincronização
		if status.State != domain.UTMStateUnknown {
			s.statusCache.Set(cacheKey, status)
		}

		response.Statuses[adID] = status
		response.Synced++
	}

	return response, nil
}

// inspectAd determina o estado de rastreamento a partir das url_tags e da
// URL de destino do criativo
func inspectAd(ad *domain.Ad) *domain.UTMStatus {
	status := &domain.UTMStatus{
		AdID:  ad.ID,
		State: domain.UTMStateUnknown,
	}

	if ad.Creative == nil {
		return status
	}

	params := make(map[string]bool)

	if ad.Creative.URLTags != nil {
		collectParams(*ad.Creative.URLTags, params)
	}

	if ad.Creative.LinkURL != nil {
		if parsed, err := url.Parse(*ad.Creative.LinkURL); err == nil {
			for key := range parsed.Query() {
				params[key] = true
			}
		}
	}

	if ad.Creative.URLTags == nil && ad.Creative.LinkURL == nil {
		return status
	}

	missing := make([]string, 0)
	for _, required := range domain.RequiredUTMParams {
		if !params[required] {
			missing = append(missing, required)
		}
	}

	if len(missing) == 0 {
		status.State = domain.UTMStateTracked
		return status
	}

	status.State = domain.UTMStateUntracked
	status.Missing = missing

	return status
}

// collectParams interpreta url_tags como uma query string solta
// ("utm_source=fb&utm_medium=paid")
func collectParams(tags string, params map[string]bool) {
	parsed, err := url.ParseQuery(tags)
	if err != nil {
		return
	}

	for key := range parsed {
		params[key] = true
	}
}
