package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/masterphelps/killscale-api/infrastructure/integrator/meta"
	"github.com/masterphelps/killscale-api/infrastructure/repository"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/internal/domain"
	"github.com/masterphelps/killscale-api/pkg/metrics"
)

// AssetSyncConfig representa a configuração do sincronizador de métricas de criativos
type AssetSyncConfig struct {
	CronSchedule        string
	LookbackDays        int
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// AssetSyncService gerencia o agendamento e execução da sincronização diária de
// métricas de anúncios do Meta para a tabela ad_data
type AssetSyncService struct {
	scheduler            *gocron.Scheduler
	config               AssetSyncConfig
	appConfig            *config.Config
	connectionRepository repository.ConnectionRepository
	adDataRepository     repository.AdDataRepository
	metaService          meta.MetaIntegrator
	metrics              *metrics.Metrics
	syncRunning          bool
	syncMutex            sync.Mutex
	lastSyncStartedAt    time.Time
	lastSyncCompletedAt  time.Time

	nowFunc      func() time.Time
	requestDelay func()
}

// NewAssetSyncService cria uma nova instância do serviço de sincronização de criativos
func NewAssetSyncService(
	connectionRepo repository.ConnectionRepository,
	adDataRepo repository.AdDataRepository,
	metaService meta.MetaIntegrator,
	m *metrics.Metrics,
	appConfig *config.Config,
) *AssetSyncService {
	syncConfig := AssetSyncConfig{
		CronSchedule:        appConfig.AssetSync.CronSchedule,
		LookbackDays:        appConfig.AssetSync.LookbackDays,
		RequestDelaySeconds: appConfig.AssetSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.AssetSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.AssetSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"lookback_days":         syncConfig.LookbackDays,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Configuração do sincronizador de criativos carregada")

	service := &AssetSyncService{
		scheduler:            scheduler,
		config:               syncConfig,
		appConfig:            appConfig,
		connectionRepository: connectionRepo,
		adDataRepository:     adDataRepo,
		metaService:          metaService,
		metrics:              m,
		syncRunning:          false,
		nowFunc:              time.Now,
	}

	service.requestDelay = func() {
		time.Sleep(time.Duration(syncConfig.RequestDelaySeconds) * time.Second)
	}

	return service
}

// Start inicia o agendador
func (s *AssetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de criativos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização de criativos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllAccounts("cron")
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de criativos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de criativos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllAccounts sincroniza as métricas de criativos de todas as conexões ativas
func (s *AssetSyncService) syncAllAccounts(trigger string) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de criativos já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	startTime := s.nowFunc()
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de criativos para todas as conexões ativas")

	connections, err := s.connectionRepository.ListActiveMetaConnections()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar conexões para sincronização de criativos")
		s.recordSyncRun("error", trigger, time.Since(startTime))
		return
	}

	if len(connections) == 0 {
		logrus.Info("Nenhuma conexão ativa encontrada para sincronização de criativos")
		s.recordSyncRun("success", trigger, time.Since(startTime))
		return
	}

	since := startTime.AddDate(0, 0, -s.config.LookbackDays)
	until := startTime

	logrus.WithFields(logrus.Fields{
		"connections": len(connections),
		"start_date":  since.Format(time.DateOnly),
		"end_date":    until.Format(time.DateOnly),
	}).Info("Período para sincronização de criativos")

	s.processConnections(connections, since, until)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":    duration.String(),
		"connections": len(connections),
		"days":        s.config.LookbackDays,
	}).Info("Sincronização de criativos concluída")

	s.recordSyncRun("success", trigger, duration)

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = s.nowFunc()
	s.syncMutex.Unlock()
}

// processConnections processa as conexões com um número limitado de workers
func (s *AssetSyncService) processConnections(connections []*domain.Connection, since, until time.Time) {
	maxConcurrent := s.config.MaxConcurrentJobs
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	semaphore := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for _, connection := range connections {
		// Conexões com token vencido não conseguem consultar o Graph API
		if connection.TokenExpired(s.nowFunc()) {
			logrus.WithFields(logrus.Fields{
				"connection_id": connection.ID,
				"account_id":    connection.AdAccountID,
			}).Warn("Conexão com token expirado. Pulando.")
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(conn *domain.Connection) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"connection_id": conn.ID,
				"account_id":    conn.AdAccountID,
				"account_name":  conn.AdAccountName,
			}).Info("Processando criativos para conexão")

			s.processConnection(conn, since, until)
		}(connection)
	}

	wg.Wait()
}

// processConnection sincroniza os insights por anúncio/dia da conta e, em
// seguida, enriquece os anúncios que ainda não têm identidade de mídia
func (s *AssetSyncService) processConnection(conn *domain.Connection, since, until time.Time) {
	ctx := context.Background()

	entries, err := s.metaService.GetAdInsights(ctx, conn.AccessToken, conn.AdAccountID, since, until)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"connection_id": conn.ID,
			"account_id":    conn.AdAccountID,
			"error":         err.Error(),
		}).Error("Erro ao obter insights do Meta para conexão")
		return
	}

	saved := 0
	for _, entry := range entries {
		entry.UserID = conn.UserID

		if err := s.adDataRepository.SaveOrUpdate(entry); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": conn.AdAccountID,
				"ad_id":      entry.AdID,
				"date":       entry.Date.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("Erro ao salvar métricas do anúncio no banco de dados")
			continue
		}
		saved++
	}

	logrus.WithFields(logrus.Fields{
		"account_id": conn.AdAccountID,
		"entries":    saved,
	}).Info("Métricas de anúncios salvas com sucesso para conexão")

	if s.metrics != nil {
		s.metrics.RecordSyncEntries(conn.AdAccountID, saved)
	}

	s.enrichMissingMedia(ctx, conn)
}

// enrichMissingMedia busca o criativo dos anúncios sem media hash e grava a
// identidade de mídia (hash, tipo e thumbnail) em todas as linhas do anúncio
func (s *AssetSyncService) enrichMissingMedia(ctx context.Context, conn *domain.Connection) {
	adIDs, err := s.adDataRepository.ListAdIDsMissingMedia(conn.AdAccountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": conn.AdAccountID,
			"error":      err.Error(),
		}).Error("Erro ao listar anúncios sem identidade de mídia")
		return
	}

	if len(adIDs) == 0 {
		return
	}

	logrus.WithFields(logrus.Fields{
		"account_id": conn.AdAccountID,
		"ads":        len(adIDs),
	}).Info("Enriquecendo anúncios sem identidade de mídia")

	for _, adID := range adIDs {
		ad, err := s.metaService.GetAd(ctx, conn.AccessToken, adID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": conn.AdAccountID,
				"ad_id":      adID,
				"error":      err.Error(),
			}).Warn("Erro ao buscar criativo do anúncio. Pulando.")
			s.requestDelay()
			continue
		}

		mediaHash, mediaType := mediaIdentity(ad)
		if mediaHash == "" {
			s.requestDelay()
			continue
		}

		var thumbnailURL *string
		if ad.Creative != nil {
			thumbnailURL = ad.Creative.ThumbnailURL
		}

		if err := s.adDataRepository.UpdateMediaForAd(adID, mediaHash, mediaType, thumbnailURL); err != nil {
			logrus.WithFields(logrus.Fields{
				"account_id": conn.AdAccountID,
				"ad_id":      adID,
				"error":      err.Error(),
			}).Error("Erro ao gravar identidade de mídia do anúncio")
		}

		// Aguardar antes da próxima requisição para evitar sobrecarga na API
		s.requestDelay()
	}
}

// mediaIdentity resolve o identificador do criativo: hash da imagem quando
// existe, senão o ID do vídeo
func mediaIdentity(ad *domain.Ad) (string, domain.MediaType) {
	if ad == nil || ad.Creative == nil {
		return "", ""
	}

	if ad.Creative.VideoID != nil && *ad.Creative.VideoID != "" {
		return *ad.Creative.VideoID, domain.MediaTypeVideo
	}

	if ad.Creative.MediaHash != nil && *ad.Creative.MediaHash != "" {
		return *ad.Creative.MediaHash, domain.MediaTypeImage
	}

	return "", ""
}

func (s *AssetSyncService) recordSyncRun(status, trigger string, duration time.Duration) {
	if s.metrics != nil {
		s.metrics.RecordSyncRun(status, trigger, duration)
	}
}

// TriggerManualSync inicia manualmente uma sincronização de criativos
func (s *AssetSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de criativos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de criativos")
	go s.syncAllAccounts("manual")
}

// GetStatus retorna o status atual do agendador
func (s *AssetSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	startedAt := s.lastSyncStartedAt
	completedAt := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"sync_running":           running,
		"last_sync_started_at":   startedAt,
		"last_sync_completed_at": completedAt,
	}
}
