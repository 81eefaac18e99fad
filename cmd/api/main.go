package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/masterphelps/killscale-api/infrastructure/database/postgres"
	"github.com/masterphelps/killscale-api/infrastructure/integrator/meta"
	"github.com/masterphelps/killscale-api/infrastructure/integrator/meta/metaclient"
	"github.com/masterphelps/killscale-api/infrastructure/integrator/openai"
	"github.com/masterphelps/killscale-api/infrastructure/repository"
	"github.com/masterphelps/killscale-api/internal/api"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/internal/scheduler"
	"github.com/masterphelps/killscale-api/internal/usecases/campaigning"
	"github.com/masterphelps/killscale-api/internal/usecases/connecting"
	"github.com/masterphelps/killscale-api/internal/usecases/insighting"
	"github.com/masterphelps/killscale-api/internal/usecases/launching"
	"github.com/masterphelps/killscale-api/internal/usecases/studio"
	"github.com/masterphelps/killscale-api/internal/usecases/tracking"
	"github.com/masterphelps/killscale-api/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	connectionRepo := repository.NewConnectionRepository(pgConn)
	adDataRepo := repository.NewAdDataRepository(pgConn)
	campaignCreationRepo := repository.NewCampaignCreationRepository(pgConn)
	starredAssetRepo := repository.NewStarredAssetRepository(pgConn)
	aiInsightRepo := repository.NewAIInsightRepository(pgConn)

	m := metrics.New()

	metaClient := metaclient.NewClient(cfg, m)
	metaIntegrator := meta.New(cfg, metaClient)

	openaiClient := openai.NewClient(cfg)

	campaignService := campaigning.NewService(cfg, metaIntegrator, connectionRepo, campaignCreationRepo)
	launchService := launching.NewService(cfg, metaIntegrator, connectionRepo, campaignCreationRepo, m)
	studioService := studio.NewService(cfg, adDataRepo, starredAssetRepo, nil)
	trackingService := tracking.NewService(cfg, metaIntegrator, connectionRepo)
	insightService := insighting.NewService(cfg, studioService, openaiClient, aiInsightRepo, m)
	connectionService := connecting.NewService(connectionRepo)

	// Inicializa o agendador de sincronização de criativos
	assetSyncService := scheduler.NewAssetSyncService(
		connectionRepo,
		adDataRepo,
		metaIntegrator,
		m,
		cfg,
	)

	if err := assetSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de criativos")
	} else {
		logrus.Info("Agendador de sincronização de criativos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		campaignService,
		launchService,
		studioService,
		trackingService,
		insightService,
		connectionService,
		assetSyncService,
		m,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
