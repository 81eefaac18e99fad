package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/masterphelps/killscale-api/internal/domain"
	"github.com/masterphelps/killscale-api/internal/usecases/tracking"
	"github.com/masterphelps/killscale-api/pkg/apiErrors"
	"github.com/masterphelps/killscale-api/pkg/log"
	"github.com/masterphelps/killscale-api/pkg/middleware"
)

// SyncUTMStatus inspeciona os criativos dos anúncios pedidos e devolve o
// estado de rastreamento UTM de cada um
func SyncUTMStatus(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		req := &domain.SyncUTMStatusRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid request body", nil)
			return
		}
		req.UserID = claims.UserID

		logger.WithFields(log.Fields{
			"account_id": req.AdAccountID,
			"ads":        len(req.AdIDs),
		}).Info("tracking: syncing utm status for ads")

		response, err := service.SyncUTMStatus(r.Context(), req)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": req.AdAccountID,
				"error":      err.Error(),
			}).Error("tracking: utm sync failed")

			switch {
			case errors.Is(err, tracking.ErrEmptyAdList):
				apiErrors.WriteError(w, apiErrors.ErrEmptyEntityList, err.Error(), nil)
			case errors.Is(err, tracking.ErrConnectionNotFound):
				apiErrors.WriteError(w, apiErrors.ErrConnectionNotFound, err.Error(), nil)
			case errors.Is(err, tracking.ErrConnectionInactive):
				apiErrors.WriteError(w, apiErrors.ErrConnectionInactive, err.Error(), nil)
			case errors.Is(err, tracking.ErrTokenExpired):
				apiErrors.WriteError(w, apiErrors.ErrMetaTokenExpired, apiErrors.MetaTokenExpiredMessage, nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			}
			return
		}

		logger.WithFields(log.Fields{
			"account_id": req.AdAccountID,
			"synced":     response.Synced,
			"from_cache": response.FromCache,
		}).Info("tracking: utm sync finished")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("tracking: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
