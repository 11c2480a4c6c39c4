package commands

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfg2006/cafe-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/cafe-report-api/infrastructure/repository"
	"github.com/vfg2006/cafe-report-api/infrastructure/repository/memory"
	"github.com/vfg2006/cafe-report-api/internal/api"
	"github.com/vfg2006/cafe-report-api/internal/api/handler"
	"github.com/vfg2006/cafe-report-api/internal/config"
	"github.com/vfg2006/cafe-report-api/internal/domain"
	"github.com/vfg2006/cafe-report-api/internal/usecases/dashboard"
	"github.com/vfg2006/cafe-report-api/internal/usecases/syncing"
	"github.com/vfg2006/cafe-report-api/pkg/log"
	"github.com/vfg2006/cafe-report-api/pkg/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia o servidor HTTP do painel",
	Example: `  cafe-report serve
  cafe-report serve --store memory --port 9000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().String("store", "", "armazenamento dos dados: postgres ou memory")
	serveCmd.Flags().String("port", "", "porta HTTP")
	_ = viper.BindPFlag("store_driver", serveCmd.Flags().Lookup("store"))
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))
}

// gateways reúne os repositórios escolhidos por STORE_DRIVER
type gateways struct {
	cafes   repository.CafeRepository
	ads     repository.AdsReportRepository
	content repository.ContentReportRepository
	db      handler.Pinger
	close   func() error
}

func runServe(ctx context.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return errors.Wrap(err, "carregar configuração")
	}

	log.Configure(cfg.App.LogLevel)

	initial, err := initialFilter(cfg.Filter, time.Now())
	if err != nil {
		return errors.Wrap(err, "filtro inicial")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	gw, err := openGateways(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := gw.close(); err != nil {
			log.L.WithError(err).Warn("serve: erro ao fechar conexão")
		}
	}()

	hookOpts := []syncing.Option{syncing.WithTimeout(cfg.Gateway.Timeout)}
	shell := dashboard.NewShell(
		syncing.NewCafeHook(gw.cafes, hookOpts...),
		syncing.NewAdsReportHook(gw.ads, hookOpts...),
		syncing.NewContentReportHook(gw.content, hookOpts...),
		initial,
	)

	// falha na carga inicial fica registrada nos hooks; o painel sobe mesmo assim
	if err := shell.Start(ctx); err != nil {
		log.L.WithError(err).Warn("serve: carga inicial com erros")
	}

	server, err := api.New(cfg, shell, gw.db)
	if err != nil {
		return errors.Wrap(err, "criar servidor")
	}

	return server.Run(ctx)
}

func openGateways(ctx context.Context, cfg *config.Config) (*gateways, error) {
	if cfg.Gateway.StoreDriver == config.StoreDriverMemory {
		log.L.Warn("serve: usando armazenamento em memória, os dados não são persistidos")

		store := memory.NewStore()
		return &gateways{
			cafes:   store.Cafes(),
			ads:     store.AdsReports(),
			content: store.ContentReports(),
			close:   func() error { return nil },
		}, nil
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "conectar ao PostgreSQL")
	}

	log.L.Info("serve: conexão com PostgreSQL estabelecida")

	return &gateways{
		cafes:   repository.NewCafeRepository(conn),
		ads:     repository.NewAdsReportRepository(conn),
		content: repository.NewContentReportRepository(conn),
		db:      conn,
		close:   conn.Close,
	}, nil
}

// initialFilter usa o mês corrente quando mês ou ano não foram configurados
func initialFilter(cfg config.Filter, now time.Time) (domain.ReportFilter, error) {
	month, year := cfg.DefaultMonth, cfg.DefaultYear
	if month == 0 || year == 0 {
		currentMonth, currentYear := utils.CurrentPeriod(now)
		if month == 0 {
			month = currentMonth
		}
		if year == 0 {
			year = currentYear
		}
	}

	filter := domain.NewReportFilter(cfg.DefaultCafeID, month, year)
	if err := filter.Validate(); err != nil {
		return domain.ReportFilter{}, err
	}
	return filter, nil
}
