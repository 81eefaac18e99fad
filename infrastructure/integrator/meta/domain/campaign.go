package metadomain

// Campaign é a campanha como retornada pelo Graph API.
// Orçamentos vêm como strings em centavos.
type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	Objective       string `json:"objective"`
	DailyBudget     string `json:"daily_budget,omitempty"`
	LifetimeBudget  string `json:"lifetime_budget,omitempty"`
}

type AdSet struct {
	ID               string `json:"id"`
	CampaignID       string `json:"campaign_id"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	DailyBudget      string `json:"daily_budget,omitempty"`
	LifetimeBudget   string `json:"lifetime_budget,omitempty"`
	OptimizationGoal string `json:"optimization_goal"`
}

type Ad struct {
	ID       string    `json:"id"`
	AdSetID  string    `json:"adset_id"`
	Name     string    `json:"name"`
	Status   string    `json:"status"`
	Creative *Creative `json:"creative,omitempty"`
}

type Creative struct {
	ID              string           `json:"id"`
	ImageHash       string           `json:"image_hash,omitempty"`
	VideoID         string           `json:"video_id,omitempty"`
	ThumbnailURL    string           `json:"thumbnail_url,omitempty"`
	URLTags         string           `json:"url_tags,omitempty"`
	ObjectStorySpec *ObjectStorySpec `json:"object_story_spec,omitempty"`
}

// ObjectStorySpec carrega o link de destino do criativo (link_data ou video_data)
type ObjectStorySpec struct {
	LinkData  *LinkData  `json:"link_data,omitempty"`
	VideoData *VideoData `json:"video_data,omitempty"`
}

type LinkData struct {
	Link      string `json:"link,omitempty"`
	ImageHash string `json:"image_hash,omitempty"`
}

type VideoData struct {
	VideoID      string        `json:"video_id,omitempty"`
	ImageHash    string        `json:"image_hash,omitempty"`
	CallToAction *CallToAction `json:"call_to_action,omitempty"`
}

type CallToAction struct {
	Type  string `json:"type,omitempty"`
	Value struct {
		Link string `json:"link,omitempty"`
	} `json:"value"`
}

// CopyResult é a resposta do endpoint /copies do Graph API
type CopyResult struct {
	CopiedID      string `json:"copied_campaign_id,omitempty"`
	CopiedAdSetID string `json:"copied_adset_id,omitempty"`
	CopiedAdID    string `json:"copied_ad_id,omitempty"`
	ID            string `json:"id,omitempty"`
	Success       bool   `json:"success"`
}

// NewID resolve o identificador da cópia independente do nível duplicado
func (c CopyResult) NewID() string {
	switch {
	case c.CopiedID != "":
		return c.CopiedID
	case c.CopiedAdSetID != "":
		return c.CopiedAdSetID
	case c.CopiedAdID != "":
		return c.CopiedAdID
	}
	return c.ID
}
