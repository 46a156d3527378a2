package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
)

type ResponseAdCampaign struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// ListCampaignsByAccountID lista as campanhas da conta, limitado a uma única
// página. O segundo retorno informa se a plataforma reportou mais páginas
// além da consultada.
func (c *MetaClient) ListCampaignsByAccountID(accessToken, accountID string) ([]metadomain.Campaign, bool, error) {
	// O nó de conta da plataforma usa o prefixo act_; aceita o ID com ou sem ele
	if !strings.HasPrefix(accountID, "act_") {
		accountID = "act_" + accountID
	}

	baseURL := fmt.Sprintf("%s/%s/campaigns", c.Cfg.Meta.URL, accountID)

	params := url.Values{}
	params.Add("fields", c.Cfg.Meta.CampaignFields)
	params.Add("limit", strconv.Itoa(c.Cfg.Meta.PageLimit))
	params.Add("access_token", accessToken)

	body, err := c.doGet(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, false, err
	}

	var response ResponseAdCampaign
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, false, err
	}

	// Resposta sem "data" equivale a lista vazia, não a uma falha
	if response.Data == nil {
		return make([]metadomain.Campaign, 0), false, nil
	}

	return response.Data, response.Paging.HasNext(), nil
}
