package aggregating

import (
	"github.com/vfg2006/ad-performance-api/internal/domain"
)

// Aggregator reconstrói a árvore de desempenho de uma conta de anúncios
// (conta → campanhas → anúncios → criativo/insights) consultando a
// plataforma remota em fan-out e consolidando o resultado em uma única
// resposta aninhada.
type Aggregator interface {
	// AggregateAccountPerformance monta a árvore completa para a conta da
	// requisição. A árvore devolvida é tão completa quanto as branches que
	// tiveram sucesso: falhas de enriquecimento degradam o nó, não a resposta.
	AggregateAccountPerformance(req *domain.PerformanceRequest) (*domain.PerformanceReport, error)
}
