package domain

import (
	"time"
)

// AdDataEntry é uma linha da tabela ad_data: métricas de um anúncio em um dia,
// alimentada pelo sincronizador de insights do Meta. É a matéria-prima da
// agregação de StudioAsset por media hash.
type AdDataEntry struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"user_id"`
	AdAccountID  string    `json:"ad_account_id"`
	CampaignID   string    `json:"campaign_id"`
	AdSetID      string    `json:"adset_id"`
	AdID         string    `json:"ad_id"`
	MediaHash    string    `json:"media_hash"`
	MediaType    MediaType `json:"media_type"`
	MediaName    string    `json:"media_name"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	StorageURL   *string   `json:"storage_url"`
	Width        int       `json:"width"`
	Height       int       `json:"height"`
	FileSize     int64     `json:"file_size"`
	Date         time.Time `json:"date"`

	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`

	VideoViews       int64   `json:"video_views"`
	ThruPlays        int64   `json:"thruplays"`
	WatchTime        float64 `json:"watch_time_seconds"`
	Video3sViews     int64   `json:"video_3s_views"`
	VideoCompletions int64   `json:"video_completions"`

	// Scores por anúncio calculados pelo pipeline externo; nulos quando o
	// pipeline ainda não processou a linha
	HookScore    *float64 `json:"hook_score"`
	HoldScore    *float64 `json:"hold_score"`
	ClickScore   *float64 `json:"click_score"`
	ConvertScore *float64 `json:"convert_score"`
	FatigueScore *float64 `json:"fatigue_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DailyMetrics é a projeção por dia de um asset, consumida pelos gráficos de tendência
type DailyMetrics struct {
	Date        time.Time `json:"date"`
	Spend       float64   `json:"spend"`
	Revenue     float64   `json:"revenue"`
	ROAS        float64   `json:"roas"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	CTR         float64   `json:"ctr"`
}

// AudiencePerformance é a projeção por público de um asset
type AudiencePerformance struct {
	AudienceName string  `json:"audience_name"`
	Spend        float64 `json:"spend"`
	Revenue      float64 `json:"revenue"`
	ROAS         float64 `json:"roas"`
	Impressions  int64   `json:"impressions"`
}
