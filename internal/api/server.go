package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cafe-report-api/internal/api/handler"
	"github.com/vfg2006/cafe-report-api/internal/api/handler/router"
	"github.com/vfg2006/cafe-report-api/internal/config"
	"github.com/vfg2006/cafe-report-api/internal/usecases/dashboard"
	"github.com/vfg2006/cafe-report-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// New monta o servidor HTTP do painel. db pode ser nil quando o armazenamento é em memória.
func New(config *config.Config, shell *dashboard.Shell, db handler.Pinger) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, shell, db),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler retorna o router com a cadeia de middlewares aplicada
func NewHandler(config *config.Config, shell *dashboard.Shell, db handler.Pinger) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Dashboard(shell)...),
		router.WithRoutes(handler.Cafes(shell.Cafes())...),
		router.WithRoutes(handler.AdsReports(shell.AdsReports())...),
		router.WithRoutes(handler.ContentReports(shell.ContentReports())...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

const shutdownTimeout = 15 * time.Second

// Run serve até receber SIGINT/SIGTERM ou o contexto ser cancelado, e então
// desliga o servidor aguardando as requisições em andamento.
func (s Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("server: iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case err, ok := <-serveErr:
		if ok {
			logrus.WithError(err).Error("server: erro ao servir")
			return err
		}
		return nil
	case sig := <-signals:
		logrus.WithField("signal", sig.String()).Info("server: sinal recebido")
	case <-ctx.Done():
		logrus.Info("server: contexto cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("server: desligando")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server: erro ao desligar")
		return err
	}

	logrus.Info("server: desligado")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
