package handler

import (
	"net/http"

	"github.com/vfg2006/cafe-report-api/internal/usecases/reporting"
	"github.com/vfg2006/cafe-report-api/internal/usecases/syncing"
)

func ListContentReports(hook *syncing.ContentReportHook) http.Handler {
	return snapshotHandler(hook.Snapshot)
}

func CreateContentReport(hook *syncing.ContentReportHook) http.Handler {
	return createHandler(hook.Create)
}

func UpdateContentReport(hook *syncing.ContentReportHook) http.Handler {
	return updateHandler(hook.Update)
}

func DeleteContentReport(hook *syncing.ContentReportHook) http.Handler {
	return deleteHandler(hook.Delete)
}

func RefetchContentReports(hook *syncing.ContentReportHook) http.Handler {
	return refetchHandler(hook.Refetch, hook.Snapshot)
}

func ContentReportSummary(hook *syncing.ContentReportHook) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, _ := hook.Filter()
		writeJSON(w, http.StatusOK, reporting.ContentSummary(filter, hook.Snapshot().Items))
	})
}
