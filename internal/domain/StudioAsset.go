package domain

import (
	"time"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// ScoreBand é a faixa de cor usada pelo front para os scores compostos
type ScoreBand string

const (
	ScoreBandExcellent ScoreBand = "excellent"
	ScoreBandGood      ScoreBand = "good"
	ScoreBandAverage   ScoreBand = "average"
	ScoreBandWeak      ScoreBand = "weak"
)

type FatigueStatus string

const (
	FatigueStatusFresh     FatigueStatus = "fresh"
	FatigueStatusHealthy   FatigueStatus = "healthy"
	FatigueStatusWarning   FatigueStatus = "warning"
	FatigueStatusFatiguing FatigueStatus = "fatiguing"
	FatigueStatusFatigued  FatigueStatus = "fatigued"
)

// MinScoredSpend é o gasto agregado mínimo (USD) para que os scores compostos
// sejam calculados. Abaixo disso os scores ficam nulos.
const MinScoredSpend = 50.0

// FunnelScores agrupa os quatro scores compostos de funil (0-100).
// Ponteiros porque os scores são nulos enquanto o gasto agregado < MinScoredSpend.
type FunnelScores struct {
	Hook    *float64 `json:"hook"`
	Hold    *float64 `json:"hold"`
	Click   *float64 `json:"click"`
	Convert *float64 `json:"convert"`
}

// StudioAsset é a entidade central do Creative Studio: um registro por media hash,
// agregando todos os anúncios que reutilizam o mesmo criativo.
type StudioAsset struct {
	ID           string    `json:"id"`
	MediaHash    string    `json:"media_hash"`
	MediaType    MediaType `json:"media_type"`
	Name         string    `json:"name"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	StorageURL   *string   `json:"storage_url"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	FileSize     int64     `json:"file_size"`
	SyncedAt     time.Time `json:"synced_at"`

	// Performance agregada entre todos os anúncios que usam o asset
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	ROAS        float64 `json:"roas"`
	CTR         float64 `json:"ctr"`
	CPM         float64 `json:"cpm"`
	CPC         float64 `json:"cpc"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`

	// Métricas específicas de vídeo (zeradas para imagem)
	VideoViews     int64   `json:"video_views"`
	ThruPlays      int64   `json:"thruplays"`
	WatchTime      float64 `json:"watch_time_seconds"`
	ThumbstopRate  float64 `json:"thumbstop_rate"`
	HoldRate       float64 `json:"hold_rate"`
	CompletionRate float64 `json:"completion_rate"`

	Scores     FunnelScores `json:"scores"`
	ScoreBands *ScoreBands  `json:"score_bands"`

	FatigueScore  *float64      `json:"fatigue_score"`
	FatigueStatus FatigueStatus `json:"fatigue_status"`
	DaysActive    int           `json:"days_active"`
	FirstSeenAt   *time.Time    `json:"first_seen_at"`
	LastSeenAt    *time.Time    `json:"last_seen_at"`

	AdCount       int  `json:"ad_count"`
	AdSetCount    int  `json:"adset_count"`
	CampaignCount int  `json:"campaign_count"`
	Starred       bool `json:"starred"`
}

// ScoreBands espelha FunnelScores com a banda de cada score
type ScoreBands struct {
	Hook    ScoreBand `json:"hook"`
	Hold    ScoreBand `json:"hold"`
	Click   ScoreBand `json:"click"`
	Convert ScoreBand `json:"convert"`
}

// BandForScore mapeia um score 0-100 para a banda de exibição.
// Faixas fechadas e sem sobreposição: [75,100] excellent, [50,75) good,
// [25,50) average, [0,25) weak.
func BandForScore(score float64) ScoreBand {
	switch {
	case score >= 75:
		return ScoreBandExcellent
	case score >= 50:
		return ScoreBandGood
	case score >= 25:
		return ScoreBandAverage
	default:
		return ScoreBandWeak
	}
}

// FatigueStatusForScore mapeia o score de fadiga 0-100 para o enum de cinco estados.
// Score maior = mais fadigado.
func FatigueStatusForScore(score float64) FatigueStatus {
	switch {
	case score >= 80:
		return FatigueStatusFatigued
	case score >= 60:
		return FatigueStatusFatiguing
	case score >= 40:
		return FatigueStatusWarning
	case score >= 20:
		return FatigueStatusHealthy
	default:
		return FatigueStatusFresh
	}
}

// IsScored indica se o asset atingiu o gasto mínimo para ter scores calculados
func (a *StudioAsset) IsScored() bool {
	return a != nil && a.Spend >= MinScoredSpend
}
