package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/masterphelps/killscale-api/internal/domain"
	"github.com/masterphelps/killscale-api/pkg/apiErrors"
)

// PlanMiddleware cria um middleware que restringe o acesso com base no plano
// do usuário. allowedPlans é a lista de planos que têm permissão na rota
func PlanMiddleware(allowedPlans []domain.Plan) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, plan := range allowedPlans {
				if userClaims.Plan == plan {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%s, Plano=%s", userClaims.UserID, userClaims.Plan)
				apiErrors.WriteError(w, apiErrors.ErrPlanRequired, "Pro plan required", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ProOnly é um middleware que permite acesso apenas para assinantes do plano Pro
func ProOnly() func(http.Handler) http.Handler {
	return PlanMiddleware([]domain.Plan{domain.PlanPro})
}
