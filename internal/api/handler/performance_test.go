package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-performance-api/internal/api/handler/router"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/identity"
	"github.com/vfg2006/ad-performance-api/internal/usecases/aggregating"
	aggregatingmocks "github.com/vfg2006/ad-performance-api/internal/usecases/aggregating/mocks"
	"github.com/vfg2006/ad-performance-api/internal/usecases/connecting"
	"go.uber.org/mock/gomock"
)

func performanceRouter(service aggregating.Aggregator) http.Handler {
	return router.New(
		router.WithRoutes(router.Route{
			Path:    "/v1/adAccounts/:id/performance",
			Method:  http.MethodGet,
			Handler: GetAccountPerformance(service),
		}),
	)
}

func requestWithPrincipal(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	ctx := identity.WithPrincipal(req.Context(), &identity.Principal{
		ID:     "USR01",
		Name:   "Usuário Teste",
		RoleID: identity.RoleClient,
	})
	return req.WithContext(ctx)
}

func TestGetAccountPerformance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAggregator := aggregatingmocks.NewMockAggregator(ctrl)

	mockAggregator.EXPECT().
		AggregateAccountPerformance(gomock.Any()).
		DoAndReturn(func(req *domain.PerformanceRequest) (*domain.PerformanceReport, error) {
			assert.Equal(t, "USR01", req.PrincipalID)
			assert.Equal(t, "act_10001", req.AccountID)
			assert.Equal(t, "2025-03-01", req.StartDate)
			assert.Equal(t, "2025-03-31", req.EndDate)
			assert.True(t, req.IncludeCreatives)

			return &domain.PerformanceReport{
				Data: []*domain.Campaign{
					{ID: "C1", Name: "Campanha 1", Ads: []*domain.Ad{}},
				},
			}, nil
		})

	rec := httptest.NewRecorder()
	req := requestWithPrincipal("/v1/adAccounts/act_10001/performance?start_date=2025-03-01&end_date=2025-03-31&include_creatives=true")

	performanceRouter(mockAggregator).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	// O envelope de sucesso é sempre { "data": [...] }
	var body struct {
		Data []map[string]any `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, "C1", body.Data[0]["id"])
}

func TestGetAccountPerformance_ErrorContract(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Conta de anúncios não informada",
			serviceErr:     aggregating.ErrMissingAccountID,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VAL_002",
		},
		{
			name:           "Plataforma não conectada",
			serviceErr:     connecting.ErrNotConnected,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "AUTH_010",
		},
		{
			name:           "Credencial da plataforma expirada",
			serviceErr:     connecting.ErrTokenExpired,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "AUTH_011",
		},
		{
			name:           "Falha na listagem de campanhas",
			serviceErr:     errors.New("erro na resposta da API: unknown account"),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   "SRV_003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAggregator := aggregatingmocks.NewMockAggregator(ctrl)
			mockAggregator.EXPECT().
				AggregateAccountPerformance(gomock.Any()).
				Return(nil, tt.serviceErr)

			rec := httptest.NewRecorder()
			req := requestWithPrincipal("/v1/adAccounts/act_10001/performance")

			performanceRouter(mockAggregator).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)

			// O envelope de erro é sempre { "error": "...", ... }
			var body map[string]any
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
			assert.Equal(t, tt.expectedCode, body["code"])
		})
	}
}

func TestGetAccountPerformance_WithoutPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma chamada ao agregador é esperada
	mockAggregator := aggregatingmocks.NewMockAggregator(ctrl)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/adAccounts/act_10001/performance", nil)

	performanceRouter(mockAggregator).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
