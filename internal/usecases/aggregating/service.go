package aggregating

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ad-performance-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ad-performance-api/internal/config"
	"github.com/vfg2006/ad-performance-api/internal/domain"
	"github.com/vfg2006/ad-performance-api/internal/usecases/connecting"
)

type Service struct {
	cfg      *config.Config
	resolver connecting.Resolver
	client   metaclient.Client
}

func NewService(
	cfg *config.Config,
	resolver connecting.Resolver,
	client metaclient.Client,
) Aggregator {
	return &Service{
		cfg:      cfg,
		resolver: resolver,
		client:   client,
	}
}

func (s *Service) AggregateAccountPerformance(
	req *domain.PerformanceRequest,
) (*domain.PerformanceReport, error) {
	if req == nil || req.AccountID == "" {
		return nil, ErrMissingAccountID
	}

	credential, err := s.resolver.Resolve(req.PrincipalID)
	if err != nil {
		return nil, err
	}

	window := BuildTimeWindow(
		req.StartDate,
		req.EndDate,
		s.cfg.Meta.DefaultDatePreset,
	)

	logrus.WithFields(logrus.Fields{
		"account_id":  req.AccountID,
		"explicit":    window.Explicit(),
		"date_preset": window.Preset,
	}).Info("aggregating: building performance tree")

	campaigns, truncated, err := s.fetchCampaigns(
		credential.AccessToken,
		req.AccountID,
		window,
		req.IncludeCreatives,
	)
	if err != nil {
		// A listagem de campanhas é a raiz da árvore: sem ela não há nó
		// para degradar, então a falha é fatal para a requisição inteira
		return nil, errors.Wrap(err, "Erro ao listar as campanhas da conta de anúncios")
	}

	return &domain.PerformanceReport{
		Data:      campaigns,
		Truncated: truncated,
		Window:    window,
	}, nil
}

func (s *Service) fetchCampaigns(
	accessToken string,
	accountID string,
	window *domain.TimeWindow,
	includeCreatives bool,
) ([]*domain.Campaign, bool, error) {
	listing, truncated, err := s.client.ListCampaignsByAccountID(accessToken, accountID)
	if err != nil {
		return nil, false, err
	}

	if truncated {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"page_limit": s.cfg.Meta.PageLimit,
		}).Warn("aggregating: campaign listing truncated at page limit")
	}

	campaigns := make([]*domain.Campaign, len(listing))

	forEachSlot(len(listing), s.cfg.Meta.MaxConcurrentFetches, func(idx int) {
		campaigns[idx] = s.buildCampaign(accessToken, listing[idx], window, includeCreatives)
	})

	return campaigns, truncated, nil
}

func (s *Service) buildCampaign(
	accessToken string,
	listed metadomain.Campaign,
	window *domain.TimeWindow,
	includeCreatives bool,
) *domain.Campaign {
	campaign := &domain.Campaign{
		ID:             listed.ID,
		Name:           listed.Name,
		Objective:      listed.Objective,
		Status:         listed.Status,
		DailyBudget:    listed.DailyBudget,
		LifetimeBudget: listed.LifetimeBudget,
		CreatedTime:    listed.CreatedTime,
		UpdatedTime:    listed.UpdatedTime,
		StartTime:      listed.StartTime,
		StopTime:       listed.StopTime,
		Ads:            make([]*domain.Ad, 0),
	}

	var (
		wg     sync.WaitGroup
		ads    []*domain.Ad
		adsErr error
	)

	// Insights da campanha e listagem de anúncios são enriquecimentos
	// independentes e rodam em paralelo
	wg.Add(2)

	go func() {
		defer wg.Done()
		campaign.Insights = s.fetchInsights(accessToken, listed.ID, window)
	}()

	go func() {
		defer wg.Done()
		ads, adsErr = s.fetchAds(accessToken, listed.ID, window, includeCreatives)
	}()

	wg.Wait()

	if adsErr != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": listed.ID,
			"error":       adsErr.Error(),
		}).Warn("aggregating: failed to list ads for campaign, degrading branch")

		// A branch inteira da campanha fica vazia: sem os anúncios, os
		// insights da campanha deixariam a resposta inconsistente
		campaign.Ads = make([]*domain.Ad, 0)
		campaign.Insights = nil

		return campaign
	}

	campaign.Ads = ads

	return campaign
}

func (s *Service) fetchAds(
	accessToken string,
	campaignID string,
	window *domain.TimeWindow,
	includeCreatives bool,
) ([]*domain.Ad, error) {
	listing, err := s.client.ListAdsByCampaignID(accessToken, campaignID, includeCreatives)
	if err != nil {
		return nil, err
	}

	ads := make([]*domain.Ad, len(listing))

	forEachSlot(len(listing), s.cfg.Meta.MaxConcurrentFetches, func(idx int) {
		ads[idx] = s.buildAd(accessToken, listing[idx], window, includeCreatives)
	})

	return ads, nil
}

func (s *Service) buildAd(
	accessToken string,
	listed metadomain.Ad,
	window *domain.TimeWindow,
	includeCreatives bool,
) *domain.Ad {
	ad := &domain.Ad{
		ID:     listed.ID,
		Name:   listed.Name,
		Status: listed.Status,
	}

	if listed.Creative != nil {
		ad.Creative = &domain.Creative{
			ID:           listed.Creative.ID,
			Name:         listed.Creative.Name,
			ImageHash:    listed.Creative.ImageHash,
			ThumbnailURL: listed.Creative.ThumbnailURL,
		}
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		ad.Insights = s.fetchInsights(accessToken, listed.ID, window)
	}()

	if includeCreatives && ad.Creative != nil && ad.Creative.ImageHash != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ad.Creative.ResolvedImageURL = s.resolveHighResImage(accessToken, ad.Creative.ImageHash)
		}()
	}

	wg.Wait()

	return ad
}

// fetchInsights busca o registro de métricas de uma entidade (campanha ou
// anúncio). Qualquer falha é engolida aqui: insights são enriquecimento e
// degradam para nulo sem afetar o restante da árvore.
func (s *Service) fetchInsights(
	accessToken string,
	entityID string,
	window *domain.TimeWindow,
) domain.MetricsRecord {
	record, err := s.client.GetInsightsByEntityID(accessToken, entityID, window)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"entity_id": entityID,
			"error":     err.Error(),
		}).Warn("aggregating: failed to fetch insights for entity")

		return nil
	}

	return record
}

// resolveHighResImage escolhe a renderização de maior largura entre as
// disponíveis para o hash. A ordenação estável garante escolha determinística
// em caso de empate de largura.
func (s *Service) resolveHighResImage(accessToken, imageHash string) string {
	renditions, err := s.client.ListImageRenditionsByHash(accessToken, imageHash)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"image_hash": imageHash,
			"error":      err.Error(),
		}).Warn("aggregating: failed to list image renditions")

		return ""
	}

	if len(renditions) == 0 {
		return ""
	}

	sort.SliceStable(renditions, func(i, j int) bool {
		return renditions[i].Width > renditions[j].Width
	})

	return renditions[0].Source
}
