package handler

import (
	"net/http"

	"github.com/vfg2006/ad-performance-api/internal/api/handler/router"
	"github.com/vfg2006/ad-performance-api/internal/usecases/aggregating"
	"github.com/vfg2006/ad-performance-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Performance(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/adAccounts/:id/performance",
			Method:      http.MethodGet,
			Handler:     GetAccountPerformance(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
