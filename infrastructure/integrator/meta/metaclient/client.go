package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	metadomain "github.com/masterphelps/killscale-api/infrastructure/integrator/meta/domain"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/pkg/metrics"
)

type Client interface {
	GetCampaignsByAccountID(ctx context.Context, accessToken, accountID string) ([]metadomain.Campaign, error)
	GetAdSetsByCampaignID(ctx context.Context, accessToken, campaignID string) ([]metadomain.AdSet, error)
	GetAdsByAdSetID(ctx context.Context, accessToken, adSetID string) ([]metadomain.Ad, error)
	GetAdByID(ctx context.Context, accessToken, adID string) (*metadomain.Ad, error)
	GetCustomAudiencesByAccountID(ctx context.Context, accessToken, accountID string) ([]metadomain.CustomAudience, error)
	GetAdInsightsByAccountID(ctx context.Context, accessToken, accountID string, since, until time.Time) ([]metadomain.AdInsight, error)
	UpdateStatus(ctx context.Context, accessToken, entityID, status string) error
	DeleteEntity(ctx context.Context, accessToken, entityID string) error
	UpdateBudget(ctx context.Context, accessToken, entityID string, dailyBudget, lifetimeBudget *int64) error
	Duplicate(ctx context.Context, accessToken, entityID string, opts DuplicateOptions) (string, error)
}

// APIError é um erro do Graph API com a mensagem original preservada.
// A mensagem upstream é repassada sem tradução para o relatório por item.
type APIError struct {
	StatusCode int
	Details    metadomain.ErrorDetails
	RetryAfter time.Duration
}

func (e *APIError) Error() string {
	if e.Details.Message != "" {
		return e.Details.Message
	}
	return fmt.Sprintf("meta: requisição falhou com status %d", e.StatusCode)
}

// IsRateLimited indica se o erro pede espera antes de nova tentativa
func (e *APIError) IsRateLimited() bool {
	resp := metadomain.ErrorResponse{Error: e.Details}
	return e.StatusCode == http.StatusTooManyRequests || resp.IsRateLimited()
}

// IsTokenExpired indica token expirado/revogado no upstream
func (e *APIError) IsTokenExpired() bool {
	resp := metadomain.ErrorResponse{Error: e.Details}
	return resp.IsTokenExpired()
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
	metrics    *metrics.Metrics
	// Token bucket compartilhado por todas as chamadas ao Graph API
	limiter *rate.Limiter
}

func NewClient(cfg *config.Config, m *metrics.Metrics) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		metrics: m,
		limiter: rate.NewLimiter(rate.Limit(cfg.Meta.RateLimit), cfg.Meta.RateBurst),
	}
}

// doGet executa um GET paginado no Graph API e acumula o campo data de todas as
// páginas em out, que deve ser um ponteiro para slice.
func getPaged[T any](ctx context.Context, c *MetaClient, path string, params url.Values, accessToken string) ([]T, error) {
	params.Set("limit", strconv.Itoa(c.Cfg.Meta.PageLimit))
	params.Set("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, path, params.Encode())

	// A operação reportada nas métricas é o último segmento do caminho
	// (campaigns, adsets, ads, customaudiences, insights)
	operation := path[strings.LastIndex(path, "/")+1:]

	all := make([]T, 0)
	for requestURL != "" {
		body, err := c.do(ctx, operation, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, err
		}

		var page struct {
			Data   []T               `json:"data"`
			Paging metadomain.Paging `json:"paging"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			logrus.WithError(err).Error("meta: erro ao decodificar página do Graph API")
			return nil, err
		}

		all = append(all, page.Data...)
		requestURL = page.Paging.Next
	}

	return all, nil
}

// do aplica o rate limiter, executa a requisição e normaliza erros do Graph API
func (c *MetaClient) do(ctx context.Context, operation, method, requestURL string, form url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("meta: limite de requisições excedido: %w", err)
	}

	var bodyReader io.Reader
	if form != nil {
		bodyReader = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		logrus.WithError(err).Error("meta: erro ao criar a requisição")
		return nil, err
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordCall(operation, "error", time.Since(start))
		logrus.WithError(err).Error("meta: erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		c.recordCall(operation, "error", time.Since(start))
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var errResp metadomain.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil {
			apiErr.Details = errResp.Error
		}

		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil {
				apiErr.RetryAfter = time.Duration(seconds) * time.Second
			}
		}

		logrus.WithFields(logrus.Fields{
			"status":       resp.StatusCode,
			"code":         apiErr.Details.Code,
			"fbtrace_id":   apiErr.Details.FBTraceID,
			"rate_limited": apiErr.IsRateLimited(),
		}).Warn("meta: Graph API retornou erro")

		return nil, apiErr
	}

	c.recordCall(operation, "success", time.Since(start))

	return body, nil
}

func (c *MetaClient) recordCall(operation, status string, duration time.Duration) {
	if c.metrics != nil {
		c.metrics.RecordMetaAPICall(operation, status, duration)
	}
}
