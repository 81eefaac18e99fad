package metadomain

type DeliveryStatus struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

type CustomAudience struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Subtype          string          `json:"subtype"`
	ApproximateCount int64           `json:"approximate_count_lower_bound"`
	DeliveryStatus   *DeliveryStatus `json:"delivery_status,omitempty"`
}
