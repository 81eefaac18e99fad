package metadomain

// Action é um par tipo/valor das listas actions e action_values do Graph API
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// VideoMetric envolve os campos video_* que o Graph API devolve como lista
// de um único elemento {action_type: "video_view", value: "..."}
type VideoMetric []Action

func (v VideoMetric) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0].Value
}

// AdInsight é a linha de insights por anúncio e dia, com breakdown de vídeo.
// Campos numéricos vêm como strings do Graph API.
type AdInsight struct {
	AdID         string   `json:"ad_id"`
	AdName       string   `json:"ad_name"`
	AdSetID      string   `json:"adset_id"`
	CampaignID   string   `json:"campaign_id"`
	AccountID    string   `json:"account_id"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Clicks       string   `json:"clicks"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`

	VideoPlayActions     VideoMetric `json:"video_play_actions"`
	VideoThruplayWatched VideoMetric `json:"video_thruplay_watched_actions"`
	Video3SecWatched     VideoMetric `json:"video_3_sec_watched_actions"`
	VideoP100Watched     VideoMetric `json:"video_p100_watched_actions"`
	VideoAvgTimeWatched  VideoMetric `json:"video_avg_time_watched_actions"`
}

// ActionValue devolve o valor de um action_type específico da lista informada
func ActionValue(actions []Action, actionType string) string {
	for i := range actions {
		if actions[i].ActionType == actionType {
			return actions[i].Value
		}
	}
	return ""
}
