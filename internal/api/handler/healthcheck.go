package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/cafe-report-api/pkg/log"
)

// Pinger é implementado pela conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// HealthcheckHandler responde 200 enquanto o banco (se houver) responde ao ping
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().Format(time.RFC3339)

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("healthcheck: banco indisponível")
				writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Time: now})
				return
			}
		}

		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Time: now})
	})
}
