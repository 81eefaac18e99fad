package domain

import (
	"sort"
	"time"
)

type EntityStatus string

const (
	EntityStatusActive   EntityStatus = "ACTIVE"
	EntityStatusPaused   EntityStatus = "PAUSED"
	EntityStatusDeleted  EntityStatus = "DELETED"
	EntityStatusArchived EntityStatus = "ARCHIVED"
)

// BudgetType indica onde o orçamento é definido: na campanha (CBO) ou no conjunto (ABO)
type BudgetType string

const (
	BudgetTypeCBO BudgetType = "CBO"
	BudgetTypeABO BudgetType = "ABO"
)

// CombinedCampaign é a campanha do Meta enriquecida com o registro de criação
// do KillScale (campaign_creations), quando houver.
type CombinedCampaign struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Status          EntityStatus      `json:"status"`
	Objective       string            `json:"objective"`
	DailyBudget     *int64            `json:"daily_budget"`
	LifetimeBudget  *int64            `json:"lifetime_budget"`
	BudgetType      BudgetType        `json:"budget_type"`
	CreatedByStudio bool              `json:"created_by_studio"`
	Creation        *CampaignCreation `json:"creation,omitempty"`
}

type AdSet struct {
	ID               string       `json:"id"`
	CampaignID       string       `json:"campaign_id"`
	Name             string       `json:"name"`
	Status           EntityStatus `json:"status"`
	DailyBudget      *int64       `json:"daily_budget"`
	LifetimeBudget   *int64       `json:"lifetime_budget"`
	OptimizationGoal string       `json:"optimization_goal"`
}

type Ad struct {
	ID        string       `json:"id"`
	AdSetID   string       `json:"adset_id"`
	Name      string       `json:"name"`
	Status    EntityStatus `json:"status"`
	Creative  *Creative    `json:"creative,omitempty"`
	UTMStatus *UTMStatus   `json:"utm_status,omitempty"`
}

type Creative struct {
	ID           string  `json:"id"`
	MediaHash    *string `json:"media_hash"`
	ThumbnailURL *string `json:"thumbnail_url"`
	LinkURL      *string `json:"link_url"`
	URLTags      *string `json:"url_tags"`
	VideoID      *string `json:"video_id"`
}

// CampaignCreation é o subconjunto de campanhas criadas pelo próprio Studio,
// persistido na tabela campaign_creations e casado por campaign_id.
type CampaignCreation struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CampaignID  string    `json:"campaign_id"`
	AdAccountID string    `json:"ad_account_id"`
	Name        string    `json:"name"`
	LaunchedAt  time.Time `json:"launched_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClassifyBudget aplica a regra CBO/ABO: qualquer orçamento definido na campanha
// (diário ou vitalício) a torna CBO; caso contrário é ABO.
func ClassifyBudget(dailyBudget, lifetimeBudget *int64) BudgetType {
	if dailyBudget != nil || lifetimeBudget != nil {
		return BudgetTypeCBO
	}
	return BudgetTypeABO
}

// SortCampaigns ordena campanhas com ACTIVE antes de qualquer outro status e,
// dentro do mesmo status, alfabeticamente por nome.
func SortCampaigns(campaigns []*CombinedCampaign) {
	sort.SliceStable(campaigns, func(i, j int) bool {
		iActive := campaigns[i].Status == EntityStatusActive
		jActive := campaigns[j].Status == EntityStatusActive
		if iActive != jActive {
			return iActive
		}
		return campaigns[i].Name < campaigns[j].Name
	})
}
