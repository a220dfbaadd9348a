package handler

import (
	"net/http"

	"github.com/sellkit/listing-assistant-api/internal/api/handler/router"
	"github.com/sellkit/listing-assistant-api/internal/config"
	"github.com/sellkit/listing-assistant-api/internal/usecases/analyzing"
	"github.com/sellkit/listing-assistant-api/internal/usecases/authenticating"
	"github.com/sellkit/listing-assistant-api/internal/usecases/listing"
	"github.com/sellkit/listing-assistant-api/internal/usecases/pricing"
	"github.com/sellkit/listing-assistant-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Pricing(pricer pricing.Pricer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/pricing/estimate",
			Method:      http.MethodPost,
			Handler:     EstimatePrice(pricer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Items(
	analyzer analyzing.Analyzer,
	pricer pricing.Pricer,
	store UploadStore,
	cfg *config.Config,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/items/analyze",
			Method:      http.MethodPost,
			Handler:     AnalyzeItem(analyzer, pricer, store, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Listings(manager listing.Manager, poster MarketplacePoster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/listings",
			Method:      http.MethodPost,
			Handler:     CreateListing(manager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/listings",
			Method:      http.MethodGet,
			Handler:     ListListings(manager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/listings/:id",
			Method:      http.MethodGet,
			Handler:     GetListing(manager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/listings/:id",
			Method:      http.MethodPut,
			Handler:     UpdateListing(manager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/listings/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteListing(manager),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/listings/:id/post",
			Method:      http.MethodPost,
			Handler:     PostListing(manager, poster),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
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
