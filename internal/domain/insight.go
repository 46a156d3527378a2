package domain

// MetricsRecord é o registro de métricas de desempenho de uma entidade
// (campanha ou anúncio) em uma janela de tempo. O conjunto de campos não é
// fixo em tempo de compilação: é o que a plataforma remota retornar para os
// campos solicitados, e nenhum campo pode ser assumido como presente.
type MetricsRecord map[string]any

// TimeWindow descreve a janela de consulta de métricas: ou um preset nomeado
// da plataforma (ex.: "last_90d") ou um par explícito {since, until}.
// Imutável após construída; todas as entidades irmãs de uma mesma resposta
// são medidas sobre a mesma janela.
type TimeWindow struct {
	Preset string `json:"preset,omitempty"`
	Since  string `json:"since,omitempty"`
	Until  string `json:"until,omitempty"`
}

// Explicit informa se a janela carrega um par {since, until} explícito
func (w *TimeWindow) Explicit() bool {
	return w.Preset == ""
}

// PerformanceRequest são os parâmetros de uma agregação de desempenho.
// Datas malformadas não são validadas aqui: seguem verbatim para a
// plataforma remota, que é a autoridade sobre validade.
type PerformanceRequest struct {
	PrincipalID      string
	AccountID        string
	StartDate        string
	EndDate          string
	IncludeCreatives bool
}

// PerformanceReport é a árvore agregada de desempenho da conta. Construída
// uma vez por requisição e descartada após a serialização; não há cache.
type PerformanceReport struct {
	Data      []*Campaign `json:"data"`
	Truncated bool        `json:"truncated"`
	Window    *TimeWindow `json:"window,omitempty"`
}
