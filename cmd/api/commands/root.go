package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfg2006/cafe-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/cafe-report-api/internal/config"
	"github.com/vfg2006/cafe-report-api/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "cafe-report",
	Short: "API do painel de relatórios de marketing dos cafés",
	Long: `cafe-report expõe o painel administrativo dos cafés: cadastro de cafés,
relatórios mensais de anúncios por plataforma e relatórios de conteúdo das redes sociais.

A configuração vem de variáveis de ambiente ou de um arquivo .env
(veja internal/config). As flags sobrescrevem o ambiente.`,
	SilenceUsage: true,
}

// Execute roda o comando raiz
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "nível de log (debug, info, warn, error)")
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// connect carrega a configuração, ajusta o log e abre a conexão com o PostgreSQL
func connect(ctx context.Context) (postgres.Conn, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, errors.Wrap(err, "carregar configuração")
	}

	log.Configure(cfg.App.LogLevel)

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, errors.Wrap(err, "conectar ao PostgreSQL")
	}

	return conn, nil
}
