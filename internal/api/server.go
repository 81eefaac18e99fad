package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/masterphelps/killscale-api/internal/api/handler"
	"github.com/masterphelps/killscale-api/internal/api/handler/router"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/internal/scheduler"
	"github.com/masterphelps/killscale-api/internal/usecases/campaigning"
	"github.com/masterphelps/killscale-api/internal/usecases/connecting"
	"github.com/masterphelps/killscale-api/internal/usecases/insighting"
	"github.com/masterphelps/killscale-api/internal/usecases/launching"
	"github.com/masterphelps/killscale-api/internal/usecases/studio"
	"github.com/masterphelps/killscale-api/internal/usecases/tracking"
	"github.com/masterphelps/killscale-api/pkg/metrics"
	"github.com/masterphelps/killscale-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	campaignService campaigning.Campaigner,
	launchService launching.Launcher,
	studioService studio.Librarian,
	trackingService tracking.Tracker,
	insightService insighting.Insighter,
	connectionService connecting.Connector,
	assetSyncService *scheduler.AssetSyncService,
	m *metrics.Metrics,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		AssetSyncService: assetSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Campaigns(campaignService)...),
		router.WithRoutes(handler.BulkOperations(launchService)...),
		router.WithRoutes(handler.StudioAssets(studioService)...),
		router.WithRoutes(handler.UTMTracking(trackingService)...),
		router.WithRoutes(handler.AIInsights(insightService)...),
		router.WithRoutes(handler.Connections(connectionService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(m),
		middleware.Cors(),
		middleware.AuthMiddleware(config.Auth.SupabaseJWTSecret),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
