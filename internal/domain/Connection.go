package domain

import (
	"time"
)

type ConnectionProvider string

const (
	ProviderMeta   ConnectionProvider = "meta"
	ProviderGoogle ConnectionProvider = "google"
)

// Connection é o vínculo de um usuário com uma conta de anúncios de um provedor,
// persistido nas tabelas meta_connections / google_connections.
type Connection struct {
	ID             string             `json:"id"`
	UserID         string             `json:"user_id"`
	Provider       ConnectionProvider `json:"provider"`
	AdAccountID    string             `json:"ad_account_id"`
	AdAccountName  string             `json:"ad_account_name"`
	AccessToken    string             `json:"-"`
	TokenExpiresAt *time.Time         `json:"token_expires_at"`
	Active         bool               `json:"active"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// TokenExpired verifica a validade do token no instante informado
func (c *Connection) TokenExpired(now time.Time) bool {
	if c == nil || c.AccessToken == "" {
		return true
	}
	return c.TokenExpiresAt != nil && c.TokenExpiresAt.Before(now)
}

type ConnectionStatusResponse struct {
	Meta   *Connection `json:"meta"`
	Google *Connection `json:"google"`
}
