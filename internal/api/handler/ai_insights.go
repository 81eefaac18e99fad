package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/masterphelps/killscale-api/internal/domain"
	"github.com/masterphelps/killscale-api/internal/usecases/insighting"
	"github.com/masterphelps/killscale-api/pkg/apiErrors"
	"github.com/masterphelps/killscale-api/pkg/log"
	"github.com/masterphelps/killscale-api/pkg/middleware"
)

// GetCreativeInsights retorna os insights de IA sobre os criativos da conta.
// Com refresh=true o cache de 24 horas é ignorado e uma nova análise é gerada.
func GetCreativeInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("account_id")
		refresh := r.URL.Query().Get("refresh") == "true"

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"refresh":    refresh,
		}).Info("insighting: fetching creative insights for ad account")

		insights, err := service.GetCreativeInsights(r.Context(), &domain.CreativeInsightsRequest{
			UserID:      claims.UserID,
			AdAccountID: accountID,
			Refresh:     refresh,
		})
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("insighting: failed to get creative insights")

			switch {
			case errors.Is(err, insighting.ErrAccountIDRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			case errors.Is(err, insighting.ErrInsufficientData):
				apiErrors.WriteError(w, apiErrors.ErrInsufficientData, err.Error(), nil)
			case errors.Is(err, insighting.ErrLLMUnavailable):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			case errors.Is(err, insighting.ErrLLMResponse):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(insights); err != nil {
			logger.WithField("error", err.Error()).Error("insighting: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
