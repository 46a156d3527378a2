package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

type ResponseInsight struct {
	Data   []domain.MetricsRecord `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// GetInsightsByEntityID obtém o registro de métricas de uma campanha ou
// anúncio na janela informada. Ausência de dados retorna nil sem erro: para
// a plataforma, uma entidade sem entrega no período simplesmente não tem
// linhas de insight.
func (c *MetaClient) GetInsightsByEntityID(accessToken, entityID string, window *domain.TimeWindow) (domain.MetricsRecord, error) {
	baseURL := fmt.Sprintf("%s/%s/insights", c.Cfg.Meta.URL, entityID)

	params := url.Values{}
	params.Add("fields", c.Cfg.Meta.InsightFields)
	applyTimeWindow(params, window)
	params.Add("access_token", accessToken)

	body, err := c.doGet(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseInsight
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if len(response.Data) == 0 {
		return nil, nil
	}

	return response.Data[0], nil
}
