package studio

import (
	"github.com/masterphelps/killscale-api/internal/domain"
)

// Scorer calcula os scores compostos de um asset a partir das linhas diárias
// que o compõem. A implementação padrão pondera os scores do pipeline pelo
// gasto de cada linha, para que dias com investimento maior pesem mais.
type Scorer interface {
	Score(entries []*domain.AdDataEntry) (domain.FunnelScores, *float64)
}

type spendWeightedScorer struct{}

// NewSpendWeightedScorer retorna o scorer padrão do Studio
func NewSpendWeightedScorer() Scorer {
	return &spendWeightedScorer{}
}

func (s *spendWeightedScorer) Score(entries []*domain.AdDataEntry) (domain.FunnelScores, *float64) {
	scores := domain.FunnelScores{
		Hook:    weightedAverage(entries, func(e *domain.AdDataEntry) *float64 { return e.HookScore }),
		Hold:    weightedAverage(entries, func(e *domain.AdDataEntry) *float64 { return e.HoldScore }),
		Click:   weightedAverage(entries, func(e *domain.AdDataEntry) *float64 { return e.ClickScore }),
		Convert: weightedAverage(entries, func(e *domain.AdDataEntry) *float64 { return e.ConvertScore }),
	}

	fatigue := weightedAverage(entries, func(e *domain.AdDataEntry) *float64 { return e.FatigueScore })

	return scores, fatigue
}

// weightedAverage calcula a média ponderada pelo gasto, ignorando linhas sem
// score. Retorna nil quando nenhuma linha tem o score preenchido.
func weightedAverage(entries []*domain.AdDataEntry, pick func(*domain.AdDataEntry) *float64) *float64 {
	var weightedSum, totalWeight float64

	for _, entry := range entries {
		score := pick(entry)
		if score == nil {
			continue
		}

		weight := entry.Spend
		if weight <= 0 {
			// Linhas sem gasto ainda contam, com peso simbólico
			weight = 0.01
		}

		weightedSum += *score * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return nil
	}

	avg := weightedSum / totalWeight
	return &avg
}
