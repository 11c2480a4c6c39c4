package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/cafe-report-api/internal/api/handler/router"
	"github.com/vfg2006/cafe-report-api/internal/usecases/dashboard"
	"github.com/vfg2006/cafe-report-api/internal/usecases/syncing"
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

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Dashboard(shell *dashboard.Shell) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/filter",
			Method:  http.MethodGet,
			Handler: GetFilter(shell),
		},
		{
			Path:    "/v1/filter",
			Method:  http.MethodPut,
			Handler: SetFilter(shell),
		},
		{
			Path:    "/v1/overview",
			Method:  http.MethodGet,
			Handler: Overview(shell),
		},
	}
}

func Cafes(hook *syncing.CafeHook) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cafes",
			Method:  http.MethodGet,
			Handler: ListCafes(hook),
		},
		{
			Path:    "/v1/cafes",
			Method:  http.MethodPost,
			Handler: CreateCafe(hook),
		},
		{
			Path:    "/v1/cafes/:id",
			Method:  http.MethodPut,
			Handler: UpdateCafe(hook),
		},
		{
			Path:    "/v1/cafes/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCafe(hook),
		},
		{
			Path:    "/v1/cafes/refetch",
			Method:  http.MethodPost,
			Handler: RefetchCafes(hook),
		},
		{
			Path:    "/v1/cafes/summary",
			Method:  http.MethodGet,
			Handler: CafeSummary(hook),
		},
	}
}

func AdsReports(hook *syncing.AdsReportHook) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ads-reports",
			Method:  http.MethodGet,
			Handler: ListAdsReports(hook),
		},
		{
			Path:    "/v1/ads-reports",
			Method:  http.MethodPost,
			Handler: CreateAdsReport(hook),
		},
		{
			Path:    "/v1/ads-reports/:id",
			Method:  http.MethodPut,
			Handler: UpdateAdsReport(hook),
		},
		{
			Path:    "/v1/ads-reports/:id",
			Method:  http.MethodDelete,
			Handler: DeleteAdsReport(hook),
		},
		{
			Path:    "/v1/ads-reports/refetch",
			Method:  http.MethodPost,
			Handler: RefetchAdsReports(hook),
		},
		{
			Path:    "/v1/ads-reports/summary",
			Method:  http.MethodGet,
			Handler: AdsReportSummary(hook),
		},
	}
}

func ContentReports(hook *syncing.ContentReportHook) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/content-reports",
			Method:  http.MethodGet,
			Handler: ListContentReports(hook),
		},
		{
			Path:    "/v1/content-reports",
			Method:  http.MethodPost,
			Handler: CreateContentReport(hook),
		},
		{
			Path:    "/v1/content-reports/:id",
			Method:  http.MethodPut,
			Handler: UpdateContentReport(hook),
		},
		{
			Path:    "/v1/content-reports/:id",
			Method:  http.MethodDelete,
			Handler: DeleteContentReport(hook),
		},
		{
			Path:    "/v1/content-reports/refetch",
			Method:  http.MethodPost,
			Handler: RefetchContentReports(hook),
		},
		{
			Path:    "/v1/content-reports/summary",
			Method:  http.MethodGet,
			Handler: ContentReportSummary(hook),
		},
	}
}
