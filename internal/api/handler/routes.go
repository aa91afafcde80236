package handler

import (
	"net/http"

	"github.com/franbz1/hotel-san-miguel/internal/api/handler/router"
	"github.com/franbz1/hotel-san-miguel/internal/usecases/authenticating"
	"github.com/franbz1/hotel-san-miguel/internal/usecases/reporting"
	"github.com/franbz1/hotel-san-miguel/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
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

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Reports(
	revenueService reporting.RevenueReporter,
	occupancyService reporting.OccupancyReporter,
	closingService reporting.ClosingManager,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reportes/ingresos/diario",
			Method:      http.MethodGet,
			Handler:     GetDailyRevenue(revenueService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGerente()},
		},
		{
			Path:        "/v1/reportes/ingresos/mensual",
			Method:      http.MethodGet,
			Handler:     GetMonthlyRevenue(revenueService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGerente()},
		},
		{
			Path:        "/v1/reportes/facturas",
			Method:      http.MethodGet,
			Handler:     GetInvoicesInRange(revenueService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGerente()},
		},
		{
			Path:        "/v1/reportes/ocupacion",
			Method:      http.MethodGet,
			Handler:     GetOccupancyReport(occupancyService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGerente()},
		},
		{
			Path:        "/v1/reportes/cierres",
			Method:      http.MethodGet,
			Handler:     GetRevenueClosings(closingService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGerente()},
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
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrGerente()},
		},
	}
}
