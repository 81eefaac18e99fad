package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	metadomain "github.com/masterphelps/killscale-api/infrastructure/integrator/meta/domain"
)

const adInsightFields = "ad_id,ad_name,adset_id,campaign_id,account_id,spend,impressions,clicks," +
	"actions,action_values,video_play_actions,video_thruplay_watched_actions," +
	"video_3_sec_watched_actions,video_p100_watched_actions,video_avg_time_watched_actions"

// GetAdInsightsByAccountID busca insights por anúncio e por dia para o período,
// incluindo o breakdown de métricas de vídeo usado nos scores de criativo.
func (c *MetaClient) GetAdInsightsByAccountID(ctx context.Context, accessToken, accountID string, since, until time.Time) ([]metadomain.AdInsight, error) {
	params := url.Values{}
	params.Set("fields", adInsightFields)
	params.Set("level", "ad")
	params.Set("time_increment", "1")
	params.Set("time_range", fmt.Sprintf(
		"{\"since\":\"%s\",\"until\":\"%s\"}",
		since.Format(time.DateOnly),
		until.Format(time.DateOnly),
	))

	return getPaged[metadomain.AdInsight](ctx, c, "act_"+accountID+"/insights", params, accessToken)
}
