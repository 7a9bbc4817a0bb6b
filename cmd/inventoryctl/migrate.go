package main

import (
	"github.com/jhoicas/inventario-vehiculos/internal/infrastructure/postgres"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones embebidas (classification, inventory)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			return postgres.Migrate(cmd.Context(), cfg.DB.ConnectionString(), log)
		},
	}
}
