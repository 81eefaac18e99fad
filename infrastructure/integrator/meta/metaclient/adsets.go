package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	metadomain "github.com/masterphelps/killscale-api/infrastructure/integrator/meta/domain"
)

const (
	adSetFields = "id,campaign_id,name,status,daily_budget,lifetime_budget,optimization_goal"
	adFields    = "id,adset_id,name,status,creative{id,image_hash,video_id,thumbnail_url,url_tags,object_story_spec}"
)

// GetAdSetsByCampaignID busca os conjuntos de anúncios de uma campanha
func (c *MetaClient) GetAdSetsByCampaignID(ctx context.Context, accessToken, campaignID string) ([]metadomain.AdSet, error) {
	params := url.Values{}
	params.Set("fields", adSetFields)

	return getPaged[metadomain.AdSet](ctx, c, campaignID+"/adsets", params, accessToken)
}

// GetAdsByAdSetID busca os anúncios de um conjunto, com o criativo embutido
func (c *MetaClient) GetAdsByAdSetID(ctx context.Context, accessToken, adSetID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Set("fields", adFields)

	return getPaged[metadomain.Ad](ctx, c, adSetID+"/ads", params, accessToken)
}

// GetAdByID busca um anúncio específico com o criativo embutido.
// Usado pela sincronização de UTM para anúncios descobertos incrementalmente.
func (c *MetaClient) GetAdByID(ctx context.Context, accessToken, adID string) (*metadomain.Ad, error) {
	params := url.Values{}
	params.Set("fields", adFields)
	params.Set("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/%s?%s", c.Cfg.Meta.URL, adID, params.Encode())

	body, err := c.do(ctx, "ad", "GET", requestURL, nil)
	if err != nil {
		return nil, err
	}

	var ad metadomain.Ad
	if err := json.Unmarshal(body, &ad); err != nil {
		logrus.WithError(err).WithField("ad_id", adID).Error("meta: erro ao decodificar anúncio")
		return nil, err
	}

	return &ad, nil
}
