package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

type Client interface {
	ListCampaignsByAccountID(accessToken, accountID string) ([]metadomain.Campaign, bool, error)
	ListAdsByCampaignID(accessToken, campaignID string, detailedCreative bool) ([]metadomain.Ad, error)
	GetInsightsByEntityID(accessToken, entityID string, window *domain.TimeWindow) (domain.MetricsRecord, error)
	ListImageRenditionsByHash(accessToken, imageHash string) ([]metadomain.ImageRendition, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	// Limite de tempo por chamada remota: uma branch travada falha sozinha
	// em vez de segurar a agregação inteira
	timeout := time.Duration(cfg.Meta.RequestTimeoutSeconds) * time.Second

	return &MetaClient{
		Cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// doGet executa uma requisição GET e devolve o corpo da resposta
func (c *MetaClient) doGet(requestURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

// handleResponse manipula a resposta HTTP e converte o envelope de erro da
// API em um error
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	errorResp, parseErr := ParseErrorResponse(body)
	if parseErr == nil && errorResp.Error.Message != "" {
		if errorResp.IsTokenExpired() {
			logrus.Warnf("Token expirado detectado pela API Meta. Código: %d, Subcódigo: %d",
				errorResp.Error.Code, errorResp.Error.ErrorSubcode)
		}
		return nil, fmt.Errorf("erro na resposta da API: %s", errorResp.Error.Message)
	}

	return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
}

// ParseErrorResponse tenta parsear um erro da API do Meta
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	err := json.Unmarshal(body, &errorResp)
	if err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// applyTimeWindow adiciona a janela de consulta aos parâmetros: ou o preset
// nomeado da plataforma ou o par {since, until} explícito em JSON. Datas
// malformadas seguem verbatim; a API é a autoridade sobre validade.
func applyTimeWindow(params url.Values, window *domain.TimeWindow) {
	if window == nil {
		return
	}

	if window.Explicit() {
		params.Add("time_range", fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", window.Since, window.Until))
		return
	}

	params.Add("date_preset", window.Preset)
}
