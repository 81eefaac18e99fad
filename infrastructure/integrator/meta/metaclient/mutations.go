package metaclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/masterphelps/killscale-api/infrastructure/integrator/meta/domain"
)

// UpdateStatus pausa ou reativa uma entidade (campanha, conjunto ou anúncio)
func (c *MetaClient) UpdateStatus(ctx context.Context, accessToken, entityID, status string) error {
	form := url.Values{}
	form.Set("status", status)
	form.Set("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, entityID)

	_, err := c.do(ctx, "update_status", http.MethodPost, requestURL, form)
	return err
}

// DeleteEntity remove uma entidade definitivamente no Meta
func (c *MetaClient) DeleteEntity(ctx context.Context, accessToken, entityID string) error {
	requestURL := fmt.Sprintf("%s/%s?access_token=%s", c.Cfg.Meta.URL, entityID, url.QueryEscape(accessToken))

	_, err := c.do(ctx, "delete", http.MethodDelete, requestURL, nil)
	return err
}

// UpdateBudget altera o orçamento diário e/ou vitalício de uma entidade.
// Valores em centavos, como o Graph API espera.
func (c *MetaClient) UpdateBudget(ctx context.Context, accessToken, entityID string, dailyBudget, lifetimeBudget *int64) error {
	form := url.Values{}
	form.Set("access_token", accessToken)

	if dailyBudget != nil {
		form.Set("daily_budget", strconv.FormatInt(*dailyBudget, 10))
	}
	if lifetimeBudget != nil {
		form.Set("lifetime_budget", strconv.FormatInt(*lifetimeBudget, 10))
	}

	requestURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, entityID)

	_, err := c.do(ctx, "update_budget", http.MethodPost, requestURL, form)
	return err
}

type DuplicateOptions struct {
	// RenameSuffix é anexado ao nome original da cópia quando informado
	RenameSuffix string
	// DeepCopy copia também os níveis inferiores da hierarquia
	DeepCopy bool
}

// Duplicate cria uma cópia da entidade via endpoint /copies do Graph API.
// Erros de rate limit são repetidos com backoff exponencial, respeitando
// Retry-After quando o upstream informa.
func (c *MetaClient) Duplicate(ctx context.Context, accessToken, entityID string, opts DuplicateOptions) (string, error) {
	form := url.Values{}
	form.Set("access_token", accessToken)
	form.Set("status_option", "PAUSED")

	if opts.DeepCopy {
		form.Set("deep_copy", "true")
	}
	if opts.RenameSuffix != "" {
		renameOptions, _ := json.Marshal(map[string]string{"rename_suffix": opts.RenameSuffix})
		form.Set("rename_options", string(renameOptions))
	}

	requestURL := fmt.Sprintf("%s/%s/copies", c.Cfg.Meta.URL, entityID)

	backoff := time.Second
	var lastErr error

	for attempt := 0; attempt <= c.Cfg.Meta.MaxRetries; attempt++ {
		body, err := c.do(ctx, "copies", http.MethodPost, requestURL, form)
		if err == nil {
			var result metadomain.CopyResult
			if err := json.Unmarshal(body, &result); err != nil {
				logrus.WithError(err).WithField("entity_id", entityID).Error("meta: erro ao decodificar resultado da cópia")
				return "", err
			}
			return result.NewID(), nil
		}

		lastErr = err

		var apiErr *APIError
		if !errors.As(err, &apiErr) || !apiErr.IsRateLimited() {
			return "", err
		}

		// Retry-After do upstream tem prioridade sobre o backoff exponencial
		wait := backoff
		if apiErr.RetryAfter > 0 {
			wait = apiErr.RetryAfter
		}

		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
			"attempt":   attempt + 1,
			"wait":      wait.String(),
		}).Warn("meta: rate limit na duplicação, aguardando para nova tentativa")

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(wait):
		}

		backoff *= 2
	}

	return "", lastErr
}
