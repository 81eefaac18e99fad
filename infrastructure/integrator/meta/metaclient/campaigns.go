package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/masterphelps/killscale-api/infrastructure/integrator/meta/domain"
)

const campaignFields = "id,name,status,effective_status,objective,daily_budget,lifetime_budget"

// GetCampaignsByAccountID busca todas as campanhas da conta, percorrendo as páginas
func (c *MetaClient) GetCampaignsByAccountID(ctx context.Context, accessToken, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Set("fields", campaignFields)

	return getPaged[metadomain.Campaign](ctx, c, "act_"+accountID+"/campaigns", params, accessToken)
}
