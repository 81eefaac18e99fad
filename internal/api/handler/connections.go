package handler

import (
	"encoding/json"
	"net/http"

	"github.com/masterphelps/killscale-api/internal/usecases/connecting"
	"github.com/masterphelps/killscale-api/pkg/apiErrors"
	"github.com/masterphelps/killscale-api/pkg/log"
	"github.com/masterphelps/killscale-api/pkg/middleware"
)

// GetConnectionStatus retorna o estado das conexões do usuário com os
// provedores de anúncio, incluindo a validade de cada token
func GetConnectionStatus(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		status, err := service.GetStatus(claims.UserID)
		if err != nil {
			logger.WithField("error", err.Error()).Error("connections: failed to get connection status")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithField("error", err.Error()).Error("connections: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
