package handler

import (
	"net/http"

	"github.com/vfg2006/cafe-report-api/internal/usecases/reporting"
	"github.com/vfg2006/cafe-report-api/internal/usecases/syncing"
)

func ListCafes(hook *syncing.CafeHook) http.Handler {
	return snapshotHandler(hook.Snapshot)
}

func CreateCafe(hook *syncing.CafeHook) http.Handler {
	return createHandler(hook.Create)
}

func UpdateCafe(hook *syncing.CafeHook) http.Handler {
	return updateHandler(hook.Update)
}

func DeleteCafe(hook *syncing.CafeHook) http.Handler {
	return deleteHandler(hook.Delete)
}

func RefetchCafes(hook *syncing.CafeHook) http.Handler {
	return refetchHandler(hook.Refetch, hook.Snapshot)
}

// CafeSummary retorna o total de cafés ativos e inativos
func CafeSummary(hook *syncing.CafeHook) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, reporting.CafeSummary(hook.Snapshot().Items))
	})
}
