package commands

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vfg2006/cafe-report-api/pkg/log"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Cria as tabelas cafes, ads_reports e content_reports",
	Long: `Aplica o esquema do banco em uma única transação.
Todas as instruções usam IF NOT EXISTS, então o comando pode ser executado de novo sem efeito.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := connect(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := conn.Migrate(cmd.Context()); err != nil {
			return errors.Wrap(err, "aplicar migrações")
		}

		log.L.Info("migrate: esquema atualizado")
		return nil
	},
}
