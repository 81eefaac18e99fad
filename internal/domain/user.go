package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Plan é o plano de assinatura do usuário (gerenciado pelo Supabase/billing)
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// Claims são as claims extraídas do JWT emitido pelo Supabase.
// O serviço não emite tokens; apenas valida os assinados com o JWT secret do projeto.
type Claims struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	Plan   Plan   `json:"plan"`
	jwt.RegisteredClaims
}

// GetSubject implementa jwt.Claims sobre o campo renomeado
func (c *Claims) GetSubject() (string, error) {
	return c.UserID, nil
}
