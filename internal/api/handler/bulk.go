package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/masterphelps/killscale-api/internal/domain"
	"github.com/masterphelps/killscale-api/internal/usecases/launching"
	"github.com/masterphelps/killscale-api/pkg/apiErrors"
	"github.com/masterphelps/killscale-api/pkg/log"
	"github.com/masterphelps/killscale-api/pkg/middleware"
)

// BulkUpdateStatus pausa ou reativa várias entidades de uma vez
func BulkUpdateStatus(service launching.Launcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		req := &domain.BulkStatusRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid request body", nil)
			return
		}
		req.UserID = claims.UserID

		logger.WithFields(log.Fields{
			"account_id": req.AdAccountID,
			"entities":   len(req.Entities),
			"status":     req.Status,
		}).Info("bulk: updating status for entities")

		report, err := service.BulkUpdateStatus(r.Context(), req)
		if err != nil {
			writeLaunchingError(w, logger, req.AdAccountID, err)
			return
		}

		writeBulkReport(w, logger, report)
	})
}

// BulkDelete remove várias entidades de uma vez
func BulkDelete(service launching.Launcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		req := &domain.BulkDeleteRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid request body", nil)
			return
		}
		req.UserID = claims.UserID

		logger.WithFields(log.Fields{
			"account_id": req.AdAccountID,
			"entities":   len(req.Entities),
		}).Info("bulk: deleting entities")

		report, err := service.BulkDelete(r.Context(), req)
		if err != nil {
			writeLaunchingError(w, logger, req.AdAccountID, err)
			return
		}

		writeBulkReport(w, logger, report)
	})
}

// BulkScaleBudgets aplica um fator multiplicativo ao orçamento de várias entidades
func BulkScaleBudgets(service launching.Launcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		req := &domain.BulkBudgetScaleRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid request body", nil)
			return
		}
		req.UserID = claims.UserID

		logger.WithFields(log.Fields{
			"account_id": req.AdAccountID,
			"entities":   len(req.Entities),
			"factor":     req.Factor,
		}).Info("bulk: scaling budgets for entities")

		report, err := service.BulkScaleBudgets(r.Context(), req)
		if err != nil {
			writeLaunchingError(w, logger, req.AdAccountID, err)
			return
		}

		writeBulkReport(w, logger, report)
	})
}

// BulkDuplicate cria cópias pausadas de várias entidades, em sequência
func BulkDuplicate(service launching.Launcher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		req := &domain.BulkDuplicateRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid request body", nil)
			return
		}
		req.UserID = claims.UserID

		logger.WithFields(log.Fields{
			"account_id": req.AdAccountID,
			"entities":   len(req.Entities),
		}).Info("bulk: duplicating entities")

		report, err := service.BulkDuplicate(r.Context(), req)
		if err != nil {
			writeLaunchingError(w, logger, req.AdAccountID, err)
			return
		}

		writeBulkReport(w, logger, report)
	})
}

func writeBulkReport(w http.ResponseWriter, logger log.Logger, report *domain.BulkOperationReport) {
	logger.WithFields(log.Fields{
		"total":     report.Total,
		"succeeded": report.Succeeded,
		"failed":    report.Failed,
	}).Info("bulk: operation finished")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		logger.WithField("error", err.Error()).Error("bulk: failed to encode report")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeLaunchingError(w http.ResponseWriter, logger log.Logger, accountID string, err error) {
	logger.WithFields(log.Fields{
		"account_id": accountID,
		"error":      err.Error(),
	}).Error("bulk: operation failed")

	switch {
	case errors.Is(err, launching.ErrEmptyEntityList):
		apiErrors.WriteError(w, apiErrors.ErrEmptyEntityList, err.Error(), nil)
	case errors.Is(err, launching.ErrInvalidScaleFactor):
		apiErrors.WriteError(w, apiErrors.ErrInvalidScaleFactor, err.Error(), nil)
	case errors.Is(err, launching.ErrConnectionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrConnectionNotFound, err.Error(), nil)
	case errors.Is(err, launching.ErrConnectionInactive):
		apiErrors.WriteError(w, apiErrors.ErrConnectionInactive, err.Error(), nil)
	case errors.Is(err, launching.ErrTokenExpired):
		apiErrors.WriteError(w, apiErrors.ErrMetaTokenExpired, apiErrors.MetaTokenExpiredMessage, nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
