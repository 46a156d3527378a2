package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
)

type ResponseAdImage struct {
	Data []metadomain.ImageData `json:"data"`
}

// ListImageRenditionsByHash lista as renderizações disponíveis de uma imagem
// de criativo a partir do hash opaco retornado na consulta primária
func (c *MetaClient) ListImageRenditionsByHash(accessToken, imageHash string) ([]metadomain.ImageRendition, error) {
	// A listagem de imagens é feita no nível do nó /adimages filtrando pelo hash
	baseURL := fmt.Sprintf("%s/adimages", c.Cfg.Meta.URL)

	params := url.Values{}
	params.Add("fields", "hash,images{width,height,source}")
	params.Add("hashes", fmt.Sprintf("[\"%s\"]", imageHash))
	params.Add("access_token", accessToken)

	body, err := c.doGet(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAdImage
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	if len(response.Data) == 0 {
		return make([]metadomain.ImageRendition, 0), nil
	}

	return response.Data[0].Images, nil
}
