package domain

// EntityType identifica o nível da hierarquia do Meta alvo de uma operação em massa
type EntityType string

const (
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeAdSet    EntityType = "adset"
	EntityTypeAd       EntityType = "ad"
)

// BulkEntity é um item selecionado pelo usuário para uma operação em massa
type BulkEntity struct {
	ID             string     `json:"id"`
	Type           EntityType `json:"type"`
	Name           string     `json:"name"`
	DailyBudget    *int64     `json:"daily_budget,omitempty"`
	LifetimeBudget *int64     `json:"lifetime_budget,omitempty"`
}

// HasBudget indica se a entidade carrega orçamento próprio (exigência do scale)
func (e BulkEntity) HasBudget() bool {
	return e.DailyBudget != nil || e.LifetimeBudget != nil
}

type BulkStatusRequest struct {
	UserID      string       `json:"user_id"`
	AdAccountID string       `json:"ad_account_id"`
	Entities    []BulkEntity `json:"entities"`
	Status      EntityStatus `json:"status"`
}

type BulkDeleteRequest struct {
	UserID      string       `json:"user_id"`
	AdAccountID string       `json:"ad_account_id"`
	Entities    []BulkEntity `json:"entities"`
}

type BulkBudgetScaleRequest struct {
	UserID      string       `json:"user_id"`
	AdAccountID string       `json:"ad_account_id"`
	Entities    []BulkEntity `json:"entities"`
	// Fator multiplicativo aplicado ao orçamento atual, ex.: 1.2 para +20%
	Factor float64 `json:"factor"`
}

type DuplicateRequest struct {
	UserID      string     `json:"user_id"`
	AdAccountID string     `json:"ad_account_id"`
	EntityID    string     `json:"entity_id"`
	EntityType  EntityType `json:"entity_type"`
	// Sufixo opcional aplicado ao nome da cópia
	NameSuffix string `json:"name_suffix"`
}

type BulkDuplicateRequest struct {
	UserID      string       `json:"user_id"`
	AdAccountID string       `json:"ad_account_id"`
	Entities    []BulkEntity `json:"entities"`
	NameSuffix  string       `json:"name_suffix"`
}

// BulkItemResult é o resultado por entidade de uma operação em massa.
// Error carrega a mensagem do Graph API sem tradução.
type BulkItemResult struct {
	EntityID   string     `json:"entity_id"`
	EntityType EntityType `json:"entity_type"`
	Success    bool       `json:"success"`
	Error      string     `json:"error,omitempty"`
	// Preenchidos apenas pelo budget scale
	OldBudget *int64 `json:"old_budget,omitempty"`
	NewBudget *int64 `json:"new_budget,omitempty"`
	// Preenchido apenas pela duplicação
	CopyID string `json:"copy_id,omitempty"`
}

// BulkOperationReport é o relatório de falha parcial devolvido ao cliente:
// o front remove do estado apenas as entidades marcadas como sucesso.
type BulkOperationReport struct {
	Total     int              `json:"total"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Results   []BulkItemResult `json:"results"`
}

// NewBulkReport monta o relatório agregando os resultados por item
func NewBulkReport(results []BulkItemResult) *BulkOperationReport {
	report := &BulkOperationReport{
		Total:   len(results),
		Results: results,
	}

	for _, r := range results {
		if r.Success {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}

	return report
}
