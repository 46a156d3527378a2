package aggregating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
	metamocks "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/usecases/connecting"
	connectingmocks "github.com/vfg2006/ad-performance-api/internal/usecases/connecting/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{
			DefaultDatePreset:    "last_90d",
			MaxConcurrentFetches: 5,
			PageLimit:            100,
		},
	}
}

func activeCredential() *domain.PlatformCredential {
	return &domain.PlatformCredential{
		ID:          "CRED01",
		PrincipalID: "USR01",
		AccessToken: "tok-123",
		Status:      domain.CredentialStatusActive,
	}
}

func TestService_AggregateAccountPerformance(t *testing.T) {
	reqBase := &domain.PerformanceRequest{
		PrincipalID: "USR01",
		AccountID:   "act_10001",
	}

	tests := []struct {
		name     string
		request  *domain.PerformanceRequest
		setup    func(client *metamocks.MockClient, resolver *connectingmocks.MockResolver)
		validate func(t *testing.T, report *domain.PerformanceReport, err error)
	}{
		{
			name:    "Requisição sem conta de anúncios - erro fatal imediato",
			request: &domain.PerformanceRequest{PrincipalID: "USR01"},
			setup:   func(client *metamocks.MockClient, resolver *connectingmocks.MockResolver) {},
			validate: func(t *testing.T, report *domain.PerformanceReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrMissingAccountID)
			},
		},
		{
			name:    "Plataforma não conectada - erro do resolver propaga intacto",
			request: reqBase,
			setup: func(client *metamocks.MockClient, resolver *connectingmocks.MockResolver) {
				resolver.EXPECT().
					Resolve("USR01").
					Return(nil, connecting.ErrNotConnected)
			},
			validate: func(t *testing.T, report *domain.PerformanceReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, connecting.ErrNotConnected)
			},
		},
		{
			name:    "Credencial expirada - erro do resolver propaga intacto",
			request: reqBase,
			setup: func(client *metamocks.MockClient, resolver *connectingmocks.MockResolver) {
				resolver.EXPECT().
					Resolve("USR01").
					Return(nil, connecting.ErrTokenExpired)
			},
			validate: func(t *testing.T, report *domain.PerformanceReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, connecting.ErrTokenExpired)
			},
		},
		{
			name:    "Falha na listagem de campanhas - fatal para a requisição inteira",
			request: reqBase,
			setup: func(client *metamocks.MockClient, resolver *connectingmocks.MockResolver) {
				resolver.EXPECT().
					Resolve("USR01").
					Return(activeCredential(), nil)

				client.EXPECT().
					ListCampaignsByAccountID("tok-123", "act_10001").
					Return(nil, false, errors.New("erro na resposta da API: unknown account"))
			},
			validate: func(t *testing.T, report *domain.PerformanceReport, err error) {
				assert.Nil(t, report)
				assert.Error(t, err)
			},
		},
		{
			name:    "Árvore completa - ordem da listagem preservada mesmo com latência desigual",
			request: reqBase,
			setup: func(client *metamocks.MockClient, resolver *connectingmocks.MockResolver) {
				resolver.EXPECT().
					Resolve("USR01").
					Return(activeCredential(), nil)

				client.EXPECT().
					ListCampaignsByAccountID("tok-123", "act_10001").
					Return([]metadomain.Campaign{
						{ID: "C1", Name: "Campanha 1"},
						{ID: "C2", Name: "Campanha 2"},
						{ID: "C3", Name: "Campanha 3"},
					}, false, nil)

				// A primeira campanha é a mais lenta: a ordem do resultado não
				// pode depender da ordem de término
				client.EXPECT().
					GetInsightsByEntityID("tok-123", gomock.Any(), gomock.Any()).
					DoAndReturn(func(accessToken, entityID string, window *domain.TimeWindow) (domain.MetricsRecord, error) {
						if entityID == "C1" {
							time.Sleep(50 * time.Millisecond)
						}
						return domain.MetricsRecord{"spend": "10.00"}, nil
					}).
					AnyTimes()

				client.EXPECT().
					ListAdsByCampaignID("tok-123", "C1", false).
					Return([]metadomain.Ad{{ID: "A1", Name: "Anúncio 1"}}, nil)
				client.EXPECT().
					ListAdsByCampaignID("tok-123", "C2", false).
					Return([]metadomain.Ad{{ID: "A2", Name: "Anúncio 2"}}, nil)
				client.EXPECT().
					ListAdsByCampaignID("tok-123", "C3", false).
					Return([]metadomain.Ad{}, nil)
			},
			validate: func(t *testing.T, report *domain.PerformanceReport, err error) {
				assert.NoError(t, err)
				assert.Len(t, report.Data, 3)

				assert.Equal(t, "C1", report.Data[0].ID)
				assert.Equal(t, "C2", report.Data[1].ID)
				assert.Equal(t, "C3", report.Data[2].ID)

				assert.Len(t, report.Data[0].Ads, 1)
				assert.Equal(t, "A1", report.Data[0].Ads[0].ID)
				assert.Equal(t, domain.MetricsRecord{"spend": "10.00"}, report.Data[0].Insights)
				assert.Equal(t, domain.MetricsRecord{"spend": "10.00"}, report.Data[0].Ads[0].Insights)

				assert.Empty(t, report.Data[2].Ads)
				assert.False(t, report.Truncated)
			},
		},
		{
			name:    "Falha na listagem de anúncios - degrada só a campanha afetada",
			request: reqBase,
			setup: func(client *metamocks.MockClient, resolver *connectingmocks.MockResolver) {
				resolver.EXPECT().
					Resolve("USR01").
					Return(activeCredential(), nil)

				client.EXPECT().
					ListCampaignsByAccountID("tok-123", "act_10001").
					Return([]metadomain.Campaign{
						{ID: "C1", Name: "Campanha 1"},
						{ID: "C2", Name: "Campanha 2"},
					}, false, nil)

				client.EXPECT().
					GetInsightsByEntityID("tok-123", gomock.Any(), gomock.Any()).
					Return(domain.MetricsRecord{"clicks": "42"}, nil).
					AnyTimes()

				client.EXPECT().
					ListAdsByCampaignID("tok-123", "C1", false).
					Return([]metadomain.Ad{{ID: "A1"}}, nil)
				client.EXPECT().
					ListAdsByCampaignID("tok-123", "C2", false).
					Return(nil, errors.New("erro na resposta da API: rate limit"))
			},
			validate: func(t *testing.T, report *domain.PerformanceReport, err error) {
				assert.NoError(t, err)
				assert.Len(t, report.Data, 2)

				// C1 intacta
				assert.Equal(t, "C1", report.Data[0].ID)
				assert.Len(t, report.Data[0].Ads, 1)
				assert.NotNil(t, report.Data[0].Insights)

				// C2 degradada: branch vazia, inclusive os insights da campanha
				assert.Equal(t, "C2", report.Data[1].ID)
				assert.NotNil(t, report.Data[1].Ads)
				assert.Empty(t, report.Data[1].Ads)
				assert.Nil(t, report.Data[1].Insights)
			},
		},
		{
			name:    "Falha de insights - anúncios permanecem, métricas nulas",
			request: reqBase,
			setup: func(client *metamocks.MockClient, resolver *connectingmocks.MockResolver) {
				resolver.EXPECT().
					Resolve("USR01").
					Return(activeCredential(), nil)

				client.EXPECT().
					ListCampaignsByAccountID("tok-123", "act_10001").
					Return([]metadomain.Campaign{{ID: "C1"}}, false, nil)

				client.EXPECT().
					GetInsightsByEntityID("tok-123", gomock.Any(), gomock.Any()).
					Return(nil, errors.New("erro na resposta da API: timeout")).
					AnyTimes()

				client.EXPECT().
					ListAdsByCampaignID("tok-123", "C1", false).
					Return([]metadomain.Ad{{ID: "A1"}}, nil)
			},
			validate: func(t *testing.T, report *domain.PerformanceReport, err error) {
				assert.NoError(t, err)
				assert.Len(t, report.Data, 1)

				assert.Nil(t, report.Data[0].Insights)
				assert.Len(t, report.Data[0].Ads, 1)
				assert.Nil(t, report.Data[0].Ads[0].Insights)
			},
		},
		{
			name: "Janela explícita - par de datas repassado verbatim ao cliente",
			request: &domain.PerformanceRequest{
				PrincipalID: "USR01",
				AccountID:   "act_10001",
				StartDate:   "2025-03-01",
				EndDate:     "2025-03-31",
			},
			setup: func(client *metamocks.MockClient, resolver *connectingmocks.MockResolver) {
				resolver.EXPECT().
					Resolve("USR01").
					Return(activeCredential(), nil)

				client.EXPECT().
					ListCampaignsByAccountID("tok-123", "act_10001").
					Return([]metadomain.Campaign{{ID: "C1"}}, false, nil)

				client.EXPECT().
					GetInsightsByEntityID("tok-123", "C1", gomock.Any()).
					DoAndReturn(func(accessToken, entityID string, window *domain.TimeWindow) (domain.MetricsRecord, error) {
						assert.True(t, window.Explicit())
						assert.Equal(t, "2025-03-01", window.Since)
						assert.Equal(t, "2025-03-31", window.Until)
						return domain.MetricsRecord{}, nil
					})

				client.EXPECT().
					ListAdsByCampaignID("tok-123", "C1", false).
					Return([]metadomain.Ad{}, nil)
			},
			validate: func(t *testing.T, report *domain.PerformanceReport, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, report.Window)
				assert.True(t, report.Window.Explicit())
			},
		},
		{
			name:    "Listagem truncada no limite da página - sinalizada no relatório",
			request: reqBase,
			setup: func(client *metamocks.MockClient, resolver *connectingmocks.MockResolver) {
				resolver.EXPECT().
					Resolve("USR01").
					Return(activeCredential(), nil)

				client.EXPECT().
					ListCampaignsByAccountID("tok-123", "act_10001").
					Return([]metadomain.Campaign{{ID: "C1"}}, true, nil)

				client.EXPECT().
					GetInsightsByEntityID("tok-123", gomock.Any(), gomock.Any()).
					Return(domain.MetricsRecord{}, nil).
					AnyTimes()

				client.EXPECT().
					ListAdsByCampaignID("tok-123", "C1", false).
					Return([]metadomain.Ad{}, nil)
			},
			validate: func(t *testing.T, report *domain.PerformanceReport, err error) {
				assert.NoError(t, err)
				assert.True(t, report.Truncated)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := metamocks.NewMockClient(ctrl)
			mockResolver := connectingmocks.NewMockResolver(ctrl)

			tt.setup(mockClient, mockResolver)

			service := &Service{
				cfg:      testConfig(),
				resolver: mockResolver,
				client:   mockClient,
			}

			report, err := service.AggregateAccountPerformance(tt.request)
			tt.validate(t, report, err)
		})
	}
}

func TestService_AggregateAccountPerformance_ResolveCreatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := metamocks.NewMockClient(ctrl)
	mockResolver := connectingmocks.NewMockResolver(ctrl)

	mockResolver.EXPECT().
		Resolve("USR01").
		Return(activeCredential(), nil)

	mockClient.EXPECT().
		ListCampaignsByAccountID("tok-123", "act_10001").
		Return([]metadomain.Campaign{{ID: "C1"}}, false, nil)

	// Insights falham para tudo: a resolução de criativos é independente e
	// deve prosseguir mesmo assim
	mockClient.EXPECT().
		GetInsightsByEntityID("tok-123", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("erro na resposta da API: timeout")).
		AnyTimes()

	// Com criativos habilitados a listagem de anúncios pede os campos
	// detalhados do criativo
	mockClient.EXPECT().
		ListAdsByCampaignID("tok-123", "C1", true).
		Return([]metadomain.Ad{
			{
				ID: "A1",
				Creative: &metadomain.Creative{
					ID:           "CR1",
					ImageHash:    "abc123",
					ThumbnailURL: "https://cdn/thumb.jpg",
				},
			},
			{
				ID: "A2",
				Creative: &metadomain.Creative{
					ID:        "CR2",
					ImageHash: "def456",
				},
			},
			{ID: "A3"},
		}, nil)

	// A escolha é pela maior largura, não pela ordem de chegada
	mockClient.EXPECT().
		ListImageRenditionsByHash("tok-123", "abc123").
		Return([]metadomain.ImageRendition{
			{Width: 400, Height: 400, Source: "https://cdn/400.jpg"},
			{Width: 1200, Height: 1200, Source: "https://cdn/1200.jpg"},
			{Width: 800, Height: 800, Source: "https://cdn/800.jpg"},
		}, nil)

	// Falha na consulta de renderizações degrada só a URL resolvida
	mockClient.EXPECT().
		ListImageRenditionsByHash("tok-123", "def456").
		Return(nil, errors.New("erro na resposta da API: asset indisponível"))

	service := &Service{
		cfg:      testConfig(),
		resolver: mockResolver,
		client:   mockClient,
	}

	report, err := service.AggregateAccountPerformance(&domain.PerformanceRequest{
		PrincipalID:      "USR01",
		AccountID:        "act_10001",
		IncludeCreatives: true,
	})

	assert.NoError(t, err)
	assert.Len(t, report.Data[0].Ads, 3)

	assert.Equal(t, "https://cdn/1200.jpg", report.Data[0].Ads[0].Creative.ResolvedImageURL)
	assert.Equal(t, "https://cdn/thumb.jpg", report.Data[0].Ads[0].Creative.ThumbnailURL)
	assert.Nil(t, report.Data[0].Ads[0].Insights)

	assert.Empty(t, report.Data[0].Ads[1].Creative.ResolvedImageURL)
	assert.Nil(t, report.Data[0].Ads[2].Creative)
}
