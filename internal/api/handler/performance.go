package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/identity"
	"github.com/vfg2006/ad-performance-api/internal/usecases/aggregating"
	"github.com/vfg2006/ad-performance-api/internal/usecases/connecting"
	"github.com/vfg2006/ad-performance-api/pkg/apiErrors"
	"github.com/vfg2006/ad-performance-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetAccountPerformance monta a árvore de desempenho de uma conta de anúncios
// (campanhas, anúncios, criativos e insights) consultando a plataforma remota
func GetAccountPerformance(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		principal, ok := identity.PrincipalFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão inválida", nil)
			return
		}

		accountID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		logger.WithFields(log.Fields{
			"account_id":   accountID,
			"principal_id": principal.ID,
		}).Info("performance: aggregating account performance")

		// As datas seguem verbatim para a plataforma: a validação de formato
		// acontece lá, não aqui
		req := &domain.PerformanceRequest{
			PrincipalID:      principal.ID,
			AccountID:        accountID,
			StartDate:        r.URL.Query().Get("start_date"),
			EndDate:          r.URL.Query().Get("end_date"),
			IncludeCreatives: r.URL.Query().Get("include_creatives") == "true",
		}

		report, err := service.AggregateAccountPerformance(req)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("performance: failed to aggregate account performance")

			writePerformanceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"account_id": accountID,
			"campaigns":  len(report.Data),
			"truncated":  report.Truncated,
		}).Info("performance: account performance aggregated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithFields(log.Fields{
				"account_id": accountID,
				"error":      err.Error(),
			}).Error("performance: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// writePerformanceError traduz os erros fatais da agregação para o envelope
// de erro da API
func writePerformanceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, aggregating.ErrMissingAccountID):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, connecting.ErrNotConnected):
		apiErrors.WriteError(w, apiErrors.ErrPlatformNotConnected, err.Error(), nil)
	case errors.Is(err, connecting.ErrTokenExpired):
		apiErrors.WriteError(w, apiErrors.ErrPlatformTokenExpired, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
	}
}
