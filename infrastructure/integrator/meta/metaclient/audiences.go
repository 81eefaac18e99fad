package metaclient

import (
	"context"
	"net/url"

	metadomain "github.com/masterphelps/killscale-api/infrastructure/integrator/meta/domain"
)

const audienceFields = "id,name,subtype,approximate_count_lower_bound,delivery_status"

// GetCustomAudiencesByAccountID busca as audiências personalizadas da conta.
// O filtro de delivery_status é aplicado na camada de caso de uso.
func (c *MetaClient) GetCustomAudiencesByAccountID(ctx context.Context, accessToken, accountID string) ([]metadomain.CustomAudience, error) {
	params := url.Values{}
	params.Set("fields", audienceFields)

	return getPaged[metadomain.CustomAudience](ctx, c, "act_"+accountID+"/customaudiences", params, accessToken)
}
