package handler

import (
	"net/http"

	"github.com/vfg2006/cafe-report-api/internal/usecases/reporting"
	"github.com/vfg2006/cafe-report-api/internal/usecases/syncing"
)

func ListAdsReports(hook *syncing.AdsReportHook) http.Handler {
	return snapshotHandler(hook.Snapshot)
}

func CreateAdsReport(hook *syncing.AdsReportHook) http.Handler {
	return createHandler(hook.Create)
}

func UpdateAdsReport(hook *syncing.AdsReportHook) http.Handler {
	return updateHandler(hook.Update)
}

func DeleteAdsReport(hook *syncing.AdsReportHook) http.Handler {
	return deleteHandler(hook.Delete)
}

func RefetchAdsReports(hook *syncing.AdsReportHook) http.Handler {
	return refetchHandler(hook.Refetch, hook.Snapshot)
}

// AdsReportSummary retorna os totais e a tabela por plataforma do filtro atual
func AdsReportSummary(hook *syncing.AdsReportHook) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, _ := hook.Filter()
		writeJSON(w, http.StatusOK, reporting.AdsSummary(filter, hook.Snapshot().Items))
	})
}
