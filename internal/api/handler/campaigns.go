package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/masterphelps/killscale-api/internal/usecases/campaigning"
	"github.com/masterphelps/killscale-api/pkg/apiErrors"
	"github.com/masterphelps/killscale-api/pkg/log"
	"github.com/masterphelps/killscale-api/pkg/middleware"
)

// ListCampaigns retorna a lista de campanhas da conta, sempre ao vivo do Meta
func ListCampaigns(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("account_id")
		logger.WithField("account_id", accountID).Info("campaigns: fetching campaigns for ad account")

		campaigns, err := service.ListCampaigns(r.Context(), claims.UserID, accountID)
		if err != nil {
			writeCampaigningError(w, logger, accountID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(campaigns); err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("campaigns: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListAdSets retorna os conjuntos de anúncios de uma campanha
func ListAdSets(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		accountID := r.URL.Query().Get("ad_account_id")

		logger.WithFields(log.Fields{
			"account_id":  accountID,
			"campaign_id": campaignID,
		}).Info("campaigns: fetching ad sets for campaign")

		adSets, err := service.ListAdSets(r.Context(), claims.UserID, accountID, campaignID)
		if err != nil {
			writeCampaigningError(w, logger, accountID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(adSets); err != nil {
			logger.WithField("error", err.Error()).Error("campaigns: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListAds retorna os anúncios de um conjunto com o criativo embutido
func ListAds(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		adSetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		accountID := r.URL.Query().Get("ad_account_id")

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"adset_id":   adSetID,
		}).Info("campaigns: fetching ads for ad set")

		ads, err := service.ListAds(r.Context(), claims.UserID, accountID, adSetID)
		if err != nil {
			writeCampaigningError(w, logger, accountID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ads); err != nil {
			logger.WithField("error", err.Error()).Error("campaigns: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListAudiences retorna as audiências utilizáveis da conta
func ListAudiences(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.UserFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingToken, "Authentication required", nil)
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("account_id")
		logger.WithField("account_id", accountID).Info("campaigns: fetching custom audiences for ad account")

		audiences, err := service.ListAudiences(r.Context(), claims.UserID, accountID)
		if err != nil {
			writeCampaigningError(w, logger, accountID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(audiences); err != nil {
			logger.WithField("error", err.Error()).Error("campaigns: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func writeCampaigningError(w http.ResponseWriter, logger log.Logger, accountID string, err error) {
	logger.WithFields(log.Fields{
		"account_id": accountID,
		"error":      err.Error(),
	}).Error("campaigns: request failed")

	switch {
	case errors.Is(err, campaigning.ErrAccountIDRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, campaigning.ErrConnectionNotFound):
		apiErrors.WriteError(w, apiErrors.ErrConnectionNotFound, err.Error(), nil)
	case errors.Is(err, campaigning.ErrConnectionInactive):
		apiErrors.WriteError(w, apiErrors.ErrConnectionInactive, err.Error(), nil)
	case errors.Is(err, campaigning.ErrTokenExpired):
		apiErrors.WriteError(w, apiErrors.ErrMetaTokenExpired, apiErrors.MetaTokenExpiredMessage, nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
	}
}
