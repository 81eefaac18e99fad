package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestClassifyBudget(t *testing.T) {
	tests := []struct {
		name           string
		dailyBudget    *int64
		lifetimeBudget *int64
		want           BudgetType
	}{
		{"orçamento diário na campanha", int64Ptr(5000), nil, BudgetTypeCBO},
		{"orçamento vitalício na campanha", nil, int64Ptr(100000), BudgetTypeCBO},
		{"ambos os orçamentos", int64Ptr(5000), int64Ptr(100000), BudgetTypeCBO},
		{"sem orçamento na campanha", nil, nil, BudgetTypeABO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyBudget(tt.dailyBudget, tt.lifetimeBudget))
		})
	}
}

func TestSortCampaigns(t *testing.T) {
	campaigns := []*CombinedCampaign{
		{ID: "c1", Name: "Zebra", Status: EntityStatusActive},
		{ID: "c2", Name: "Alfa", Status: EntityStatusPaused},
		{ID: "c3", Name: "Alfa", Status: EntityStatusActive},
		{ID: "c4", Name: "Beta", Status: EntityStatusArchived},
	}

	SortCampaigns(campaigns)

	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}

	// Ativas primeiro em ordem alfabética, depois as demais também por nome
	assert.Equal(t, []string{"c3", "c1", "c2", "c4"}, ids)
}
