package tracking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	metamocks "github.com/masterphelps/killscale-api/infrastructure/integrator/meta/mocks"
	"github.com/masterphelps/killscale-api/infrastructure/repository/mocks"
	"github.com/masterphelps/killscale-api/internal/cache"
	"github.com/masterphelps/killscale-api/internal/config"
	"github.com/masterphelps/killscale-api/internal/domain"
)

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func newTestService(t *testing.T) (*Service, *metamocks.MockMetaIntegrator, *mocks.MockConnectionRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockMeta := metamocks.NewMockMetaIntegrator(ctrl)
	mockConnRepo := mocks.NewMockConnectionRepository(ctrl)

	service := &Service{
		cfg:                  &config.Config{},
		metaService:          mockMeta,
		connectionRepository: mockConnRepo,
		statusCache:          cache.NewTTLCache[*domain.UTMStatus](5 * time.Minute),
		nowFunc:              time.Now,
	}

	return service, mockMeta, mockConnRepo
}

func validConnection() *domain.Connection {
	return &domain.Connection{
		ID:             "conn_1",
		UserID:         "user_1",
		AdAccountID:    "act_123",
		AccessToken:    "token_valido",
		TokenExpiresAt: timePtr(time.Now().Add(24 * time.Hour)),
		Active:         true,
	}
}

func TestInspectAd(t *testing.T) {
	tests := []struct {
		name     string
		ad       *domain.Ad
		expected domain.UTMState
		missing  []string
	}{
		{
			name: "Todos os parâmetros nas url_tags - rastreado",
			ad: &domain.Ad{
				ID: "ad_1",
				Creative: &domain.Creative{
					URLTags: strPtr("utm_source=fb&utm_medium=paid&utm_campaign={{campaign.name}}"),
				},
			},
			expected: domain.UTMStateTracked,
		},
		{
			name: "Parâmetros divididos entre url_tags e link - rastreado",
			ad: &domain.Ad{
				ID: "ad_2",
				Creative: &domain.Creative{
					URLTags: strPtr("utm_source=fb&utm_medium=paid"),
					LinkURL: strPtr("https://loja.com/promo?utm_campaign=blackfriday"),
				},
			},
			expected: domain.UTMStateTracked,
		},
		{
			name: "Parâmetros incompletos - não rastreado com lista do que falta",
			ad: &domain.Ad{
				ID: "ad_3",
				Creative: &domain.Creative{
					URLTags: strPtr("utm_source=fb"),
				},
			},
			expected: domain.UTMStateUntracked,
			missing:  []string{"utm_medium", "utm_campaign"},
		},
		{
			name:     "Anúncio sem criativo - desconhecido",
			ad:       &domain.Ad{ID: "ad_4"},
			expected: domain.UTMStateUnknown,
		},
		{
			name: "Criativo sem url_tags nem link - desconhecido",
			ad: &domain.Ad{
				ID:       "ad_5",
				Creative: &domain.Creative{ID: "cr_5"},
			},
			expected: domain.UTMStateUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := inspectAd(tt.ad)
			assert.Equal(t, tt.expected, status.State)
			assert.Equal(t, tt.missing, status.Missing)
		})
	}
}

func TestService_SyncUTMStatus(t *testing.T) {
	service, mockMeta, mockConnRepo := newTestService(t)

	mockConnRepo.EXPECT().
		GetMetaConnection("user_1", "act_123").
		Return(validConnection(), nil).
		Times(2)

	// Primeira sincronização: os dois anúncios vão ao Graph API
	mockMeta.EXPECT().
		GetAd(gomock.Any(), "token_valido", "ad_1").
		Return(&domain.Ad{
			ID: "ad_1",
			Creative: &domain.Creative{
				URLTags: strPtr("utm_source=fb&utm_medium=paid&utm_campaign=teste"),
			},
		}, nil)
	mockMeta.EXPECT().
		GetAd(gomock.Any(), "token_valido", "ad_2").
		Return(&domain.Ad{
			ID: "ad_2",
			Creative: &domain.Creative{
				URLTags: strPtr("utm_source=fb"),
			},
		}, nil)

	req := &domain.SyncUTMStatusRequest{
		UserID:      "user_1",
		AdAccountID: "act_123",
		AdIDs:       []string{"ad_1", "ad_2"},
	}

	response, err := service.SyncUTMStatus(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, response.Synced)
	assert.Equal(t, 0, response.FromCache)
	assert.Equal(t, domain.UTMStateTracked, response.Statuses["ad_1"].State)
	assert.Equal(t, domain.UTMStateUntracked, response.Statuses["ad_2"].State)

	// Segunda sincronização dentro da janela de cache: nenhuma chamada nova
	response, err = service.SyncUTMStatus(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 0, response.Synced)
	assert.Equal(t, 2, response.FromCache)
}

func TestService_SyncUTMStatus_DesconhecidoNaoEntraNoCache(t *testing.T) {
	service, mockMeta, mockConnRepo := newTestService(t)

	mockConnRepo.EXPECT().
		GetMetaConnection("user_1", "act_123").
		Return(validConnection(), nil).
		Times(2)

	// Anúncio sem criativo inspecionável: as duas sincronizações vão ao
	// Graph API, já que o estado desconhecido não é cacheado
	mockMeta.EXPECT().
		GetAd(gomock.Any(), "token_valido", "ad_1").
		Return(&domain.Ad{ID: "ad_1"}, nil).
		Times(2)

	req := &domain.SyncUTMStatusRequest{
		UserID:      "user_1",
		AdAccountID: "act_123",
		AdIDs:       []string{"ad_1"},
	}

	for i := 0; i < 2; i++ {
		response, err := service.SyncUTMStatus(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 1, response.Synced)
		assert.Equal(t, 0, response.FromCache)
		assert.Equal(t, domain.UTMStateUnknown, response.Statuses["ad_1"].State)
	}
}

func TestService_SyncUTMStatus_ListaVazia(t *testing.T) {
	service, _, _ := newTestService(t)

	response, err := service.SyncUTMStatus(context.Background(), &domain.SyncUTMStatusRequest{
		UserID:      "user_1",
		AdAccountID: "act_123",
	})

	assert.ErrorIs(t, err, ErrEmptyAdList)
	assert.Nil(t, response)
}
