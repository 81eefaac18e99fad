package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/pkg/metrics"
)

// Registro único por binário de teste: promauto registra no registry global
var testMetrics = metrics.New()

func newTestClient(serverURL string) Client {
	cfg := &config.Config{}
	cfg.Meta.URL = serverURL
	cfg.Meta.RateLimit = 100
	cfg.Meta.RateBurst = 10
	cfg.Meta.PageLimit = 25
	cfg.Meta.MaxRetries = 1

	return NewClient(cfg, testMetrics)
}

func TestMetaClient_RegistraMetricasDeChamadas(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			w.Write([]byte(`{"success":true}`))
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"Unsupported delete request","code":100}}`))
		default:
			w.Write([]byte(`{"data":[],"paging":{}}`))
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx := context.Background()

	require.NoError(t, client.UpdateStatus(ctx, "token", "camp_1", "PAUSED"))

	_, err := client.GetCampaignsByAccountID(ctx, "token", "123")
	require.NoError(t, err)

	err = client.DeleteEntity(ctx, "token", "camp_1")
	require.Error(t, err)

	assert.Equal(t, float64(1),
		testutil.ToFloat64(testMetrics.MetaAPICalls.WithLabelValues("update_status", "success")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(testMetrics.MetaAPICalls.WithLabelValues("campaigns", "success")))
	assert.Equal(t, float64(1),
		testutil.ToFloat64(testMetrics.MetaAPICalls.WithLabelValues("delete", "error")))
}

func TestMetaClient_SemMetricasNaoFalha(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	cfg := &config.Config{}
	cfg.Meta.URL = server.URL
	cfg.Meta.RateLimit = 100
	cfg.Meta.RateBurst = 10
	cfg.Meta.PageLimit = 25

	client := NewClient(cfg, nil)

	assert.NoError(t, client.UpdateStatus(context.Background(), "token", "camp_1", "ACTIVE"))
}
