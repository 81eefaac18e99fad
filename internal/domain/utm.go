package domain

// UTMState resume a situação de rastreamento de um anúncio
type UTMState string

const (
	UTMStateTracked   UTMState = "tracked"
	UTMStateUntracked UTMState = "untracked"
	UTMStateUnknown   UTMState = "unknown"
)

// UTMStatus é o resultado da inspeção das url_tags / link URL do criativo
type UTMStatus struct {
	AdID    string   `json:"ad_id"`
	State   UTMState `json:"state"`
	Missing []string `json:"missing,omitempty"`
}

type SyncUTMStatusRequest struct {
	UserID      string   `json:"user_id"`
	AdAccountID string   `json:"ad_account_id"`
	AdIDs       []string `json:"ad_ids"`
}

type SyncUTMStatusResponse struct {
	AdAccountID string                `json:"ad_account_id"`
	Statuses    map[string]*UTMStatus `json:"statuses"`
	// Quantos anúncios vieram do cache sem nova chamada ao Graph API
	FromCache int `json:"from_cache"`
	Synced    int `json:"synced"`
}

// RequiredUTMParams são os parâmetros exigidos para considerar um anúncio rastreado
var RequiredUTMParams = []string{"utm_source", "utm_medium", "utm_campaign"}
