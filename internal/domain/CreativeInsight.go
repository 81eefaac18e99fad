package domain

import (
	"time"
)

// FunnelStage identifica a etapa de funil de um insight gerado por IA
type FunnelStage string

const (
	FunnelStageHook    FunnelStage = "hook"
	FunnelStageHold    FunnelStage = "hold"
	FunnelStageClick   FunnelStage = "click"
	FunnelStageConvert FunnelStage = "convert"
)

// StageInsight é o insight de uma etapa específica do funil
type StageInsight struct {
	Stage   FunnelStage `json:"stage"`
	Insight string      `json:"insight"`
}

// CreativeInsights é o conjunto de insights derivados por LLM para uma conta
type CreativeInsights struct {
	AdAccountID        string         `json:"ad_account_id"`
	Summary            string         `json:"summary"`
	StageInsights      []StageInsight `json:"stage_insights"`
	BiggestWin         string         `json:"biggest_win"`
	BiggestOpportunity string         `json:"biggest_opportunity"`
	GeneratedAt        time.Time      `json:"generated_at"`
}

type CreativeInsightsRequest struct {
	UserID      string `json:"user_id"`
	AdAccountID string `json:"ad_account_id"`
	// Refresh invalida o cache e força nova geração
	Refresh bool `json:"refresh"`
}

// CreativeInsightsTTL é a validade do cache de insights de IA
const CreativeInsightsTTL = 24 * time.Hour

// Valid indica se o insight armazenado ainda está dentro da validade
func (c *CreativeInsights) Valid(now time.Time) bool {
	if c == nil {
		return false
	}
	return now.Sub(c.GeneratedAt) < CreativeInsightsTTL
}
