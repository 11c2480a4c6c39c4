package handler

import (
	"net/http"

	"github.com/vfg2006/cafe-report-api/internal/domain"
	"github.com/vfg2006/cafe-report-api/internal/usecases/dashboard"
)

type filterResponse struct {
	Filter domain.ReportFilter `json:"filter"`
	Title  string              `json:"title"`
}

func newFilterResponse(filter domain.ReportFilter) filterResponse {
	return filterResponse{
		Filter: filter,
		Title:  domain.PeriodTitle(filter.Month, filter.Year),
	}
}

func GetFilter(shell *dashboard.Shell) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, newFilterResponse(shell.Filter()))
	})
}

// SetFilter troca a seleção do painel; os relatórios são buscados de novo se o filtro mudou
func SetFilter(shell *dashboard.Shell) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var filter domain.ReportFilter
		if err := decodeBody(w, r, &filter); err != nil {
			writeError(w, r, err)
			return
		}

		if err := shell.SetFilter(r.Context(), filter); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, newFilterResponse(shell.Filter()))
	})
}

func Overview(shell *dashboard.Shell) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, shell.Overview())
	})
}
