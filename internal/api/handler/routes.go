package handler

import (
	"net/http"

	"github.com/vfg2006/transaction-dashboard/internal/api/handler/router"
	"github.com/vfg2006/transaction-dashboard/internal/usecases/dashboarding"
)

func Healthcheck(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(service),
		},
	}
}

func Months(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/months",
			Method:  http.MethodGet,
			Handler: ListMonths(service),
		},
	}
}

func Dashboards(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboards",
			Method:  http.MethodPost,
			Handler: CreateDashboard(service),
		},
		{
			Path:    "/v1/dashboards/:id",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboards/:id",
			Method:  http.MethodDelete,
			Handler: CloseDashboard(service),
		},
		{
			Path:    "/v1/dashboards/:id/month",
			Method:  http.MethodPut,
			Handler: SetDashboardMonth(service),
		},
		{
			Path:    "/v1/dashboards/:id/search",
			Method:  http.MethodPut,
			Handler: SetDashboardSearch(service),
		},
		{
			Path:    "/v1/dashboards/:id/transactions/next",
			Method:  http.MethodPost,
			Handler: NextTransactionsPage(service),
		},
		{
			Path:    "/v1/dashboards/:id/transactions/previous",
			Method:  http.MethodPost,
			Handler: PreviousTransactionsPage(service),
		},
		{
			Path:    "/v1/dashboards/:id/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDashboard(service),
		},
	}
}
