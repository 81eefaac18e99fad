package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/masterphelps/killscale-api/internal/api/handler/router"
	"github.com/masterphelps/killscale-api/internal/usecases/campaigning"
	"github.com/masterphelps/killscale-api/internal/usecases/connecting"
	"github.com/masterphelps/killscale-api/internal/usecases/insighting"
	"github.com/masterphelps/killscale-api/internal/usecases/launching"
	"github.com/masterphelps/killscale-api/internal/usecases/studio"
	"github.com/masterphelps/killscale-api/internal/usecases/tracking"
	"github.com/masterphelps/killscale-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Campaigns(service campaigning.Campaigner) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:account_id/campaigns",
			Method:  http.MethodGet,
			Handler: ListCampaigns(service),
		},
		{
			Path:    "/v1/campaigns/:id/adsets",
			Method:  http.MethodGet,
			Handler: ListAdSets(service),
		},
		{
			Path:    "/v1/adsets/:id/ads",
			Method:  http.MethodGet,
			Handler: ListAds(service),
		},
		{
			Path:    "/v1/accounts/:account_id/audiences",
			Method:  http.MethodGet,
			Handler: ListAudiences(service),
		},
	}
}

func BulkOperations(service launching.Launcher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/bulk/status",
			Method:  http.MethodPost,
			Handler: BulkUpdateStatus(service),
		},
		{
			Path:    "/v1/bulk/delete",
			Method:  http.MethodPost,
			Handler: BulkDelete(service),
		},
		{
			Path:    "/v1/bulk/scale-budgets",
			Method:  http.MethodPost,
			Handler: BulkScaleBudgets(service),
		},
		{
			Path:    "/v1/bulk/duplicate",
			Method:  http.MethodPost,
			Handler: BulkDuplicate(service),
		},
	}
}

func StudioAssets(service studio.Librarian) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:account_id/assets",
			Method:  http.MethodGet,
			Handler: ListAssets(service),
		},
		{
			Path:    "/v1/accounts/:account_id/assets/:media_hash/daily",
			Method:  http.MethodGet,
			Handler: GetAssetDailyMetrics(service),
		},
		{
			Path:    "/v1/accounts/:account_id/assets/:media_hash/audiences",
			Method:  http.MethodGet,
			Handler: GetAssetAudiencePerformance(service),
		},
		{
			Path:    "/v1/accounts/:account_id/assets/:media_hash/starred",
			Method:  http.MethodPut,
			Handler: SetAssetStarred(service),
		},
	}
}

func UTMTracking(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/utm/sync",
			Method:  http.MethodPost,
			Handler: SyncUTMStatus(service),
		},
	}
}

// AIInsights expõe a análise de criativos por IA, exclusiva do plano Pro
func AIInsights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:account_id/ai-insights",
			Method:      http.MethodGet,
			Handler:     GetCreativeInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ProOnly()},
		},
	}
}

func Connections(service connecting.Connector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/connections/status",
			Method:  http.MethodGet,
			Handler: GetConnectionStatus(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
