package domain

// DeliveryStatus é o status de entrega reportado pelo Graph API para audiências.
// Códigos >= 400 indicam audiências inutilizáveis (erro ou desativada).
type DeliveryStatus struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

type CustomAudience struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Subtype          string          `json:"subtype"`
	ApproximateCount *int64          `json:"approximate_count"`
	DeliveryStatus   *DeliveryStatus `json:"delivery_status"`
}

// Usable indica se a audiência pode ser oferecida na seleção de públicos
func (a *CustomAudience) Usable() bool {
	if a == nil {
		return false
	}
	return a.DeliveryStatus == nil || a.DeliveryStatus.Code < 400
}

// FilterUsableAudiences remove audiências com delivery_status.code >= 400
func FilterUsableAudiences(audiences []*CustomAudience) []*CustomAudience {
	usable := make([]*CustomAudience, 0, len(audiences))
	for _, audience := range audiences {
		if audience.Usable() {
			usable = append(usable, audience)
		}
	}
	return usable
}
