package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/inventario-vehiculos/internal/application/seed"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var latin1 bool
	cmd := &cobra.Command{
		Use:   "seed <archivo.yaml>",
		Short: "Carga clasificaciones y vehículos desde un YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("abrir seed: %w", err)
			}
			defer f.Close()

			doc, err := seed.Parse(f, latin1)
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				sum, err := seed.NewLoader(a.classifications, a.inventory, a.log).Load(ctx, doc)
				if err != nil {
					return err
				}
				return a.printer.Print(sum)
			})
		},
	}
	cmd.Flags().BoolVar(&latin1, "latin1", false, "El archivo está codificado en ISO-8859-1")
	return cmd
}
