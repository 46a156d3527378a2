package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
)

type ResponseAd struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// ListAdsByCampaignID lista os anúncios de uma campanha com os metadados do
// criativo. O conjunto de campos do criativo é mínimo ou detalhado conforme
// detailedCreative, controlando o custo/tamanho do payload.
func (c *MetaClient) ListAdsByCampaignID(accessToken, campaignID string, detailedCreative bool) ([]metadomain.Ad, error) {
	baseURL := fmt.Sprintf("%s/%s/ads", c.Cfg.Meta.URL, campaignID)

	fields := c.Cfg.Meta.AdFieldsMinimal
	if detailedCreative {
		fields = c.Cfg.Meta.AdFieldsDetailed
	}

	params := url.Values{}
	params.Add("fields", fields)
	params.Add("limit", strconv.Itoa(c.Cfg.Meta.PageLimit))
	params.Add("access_token", accessToken)

	body, err := c.doGet(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAd
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if response.Data == nil {
		return make([]metadomain.Ad, 0), nil
	}

	return response.Data, nil
}
