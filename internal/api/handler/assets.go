package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/masterphelps/killscale-api/internal/usecases/studio"
	"github.com/masterphelps/killscale-api/pkg/apiErrors"
	"github.com/masterphelps/killscale-api/pkg/log"
	"github.com/masterphelps/killscale-api/pkg/middleware"
	"github.com/masterphelps/killscale-api/pkg/utils"
)

// Janela padrão da biblioteca quando o cliente não informa o período
const defaultAssetWindowDays = 30

// ListAssets retorna os criativos da conta agregados por identidade de mídia
func ListAssets(service studio.Librarian) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("account_id")

		startDate, endDate, err := parseAssetWindow(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"start_date": r.URL.Query().Get("start_date"),
				"end_date":   r.URL.Query().Get("end_date"),
				"error":      err.Error(),
			}).Warn("studio: invalid date range parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Info("studio: listing creative assets for ad account")

		assets, err := service.ListAssets(claims.UserID, accountID, startDate, endDate)
		if err != nil {
			writeStudioError(w, logger, accountID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(assets); err != nil {
			logger.WithField("error", err.Error()).Error("studio: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetAssetDailyMetrics retorna a série diária de um criativo
func GetAssetDailyMetrics(service studio.Librarian) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if _, ok := middleware.UserFromContext(r.Context()); !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("account_id")
		mediaHash := params.ByName("media_hash")

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"media_hash": mediaHash,
		}).Info("studio: fetching daily metrics for asset")

		daily, err := service.GetAssetDailyMetrics(accountID, mediaHash)
		if err != nil {
			writeStudioError(w, logger, accountID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(daily); err != nil {
			logger.WithField("error", err.Error()).Error("studio: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetAssetAudiencePerformance retorna o desempenho do criativo por conjunto de anúncios
func GetAssetAudiencePerformance(service studio.Librarian) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if _, ok := middleware.UserFromContext(r.Context()); !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("account_id")
		mediaHash := params.ByName("media_hash")

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"media_hash": mediaHash,
		}).Info("studio: fetching audience performance for asset")

		performances, err := service.GetAssetAudiencePerformance(accountID, mediaHash)
		if err != nil {
			writeStudioError(w, logger, accountID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(performances); err != nil {
			logger.WithField("error", err.Error()).Error("studio: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// SetAssetStarred marca ou desmarca um criativo como favorito do usuário
func SetAssetStarred(service studio.Librarian) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		accountID := params.ByName("account_id")
		mediaHash := params.ByName("media_hash")

		body := struct {
			Starred bool `json:"starred"`
		}{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid request body", nil)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"media_hash": mediaHash,
			"starred":    body.Starred,
		}).Info("studio: updating starred flag for asset")

		if err := service.SetStarred(claims.UserID, accountID, mediaHash, body.Starred); err != nil {
			writeStudioError(w, logger, accountID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"media_hash": mediaHash,
			"starred":    body.Starred,
		})
	})
}

// parseAssetWindow resolve o período pedido, caindo na janela padrão de 30
// dias quando os parâmetros não são informados
func parseAssetWindow(r *http.Request) (time.Time, time.Time, error) {
	startParam := r.URL.Query().Get("start_date")
	endParam := r.URL.Query().Get("end_date")

	if startParam == "" && endParam == "" {
		now := time.Now()
		return now.AddDate(0, 0, -defaultAssetWindowDays), now, nil
	}

	startDate, err := utils.ParseDate(startParam)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endDate, err := utils.ParseDate(endParam)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return *startDate, *endDate, nil
}

func writeStudioError(w http.ResponseWriter, logger log.Logger, accountID string, err error) {
	logger.WithFields(log.Fields{
		"account_id": accountID,
		"error":      err.Error(),
	}).Error("studio: request failed")

	switch {
	case errors.Is(err, studio.ErrAccountIDRequired), errors.Is(err, studio.ErrMediaHashRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, studio.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
