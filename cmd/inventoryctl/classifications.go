package main

import (
	"context"

	"github.com/jhoicas/inventario-vehiculos/internal/application/dto"
	"github.com/spf13/cobra"
)

func classificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "classifications",
		Aliases: []string{"classification", "cls"},
		Short:   "Clasificaciones de vehículos",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Lista las clasificaciones ordenadas por nombre",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, func(ctx context.Context, a *app) error {
					out, err := a.classifications.List(ctx)
					if err != nil {
						return err
					}
					return a.printer.Print(out)
				})
			},
		},
		&cobra.Command{
			Use:   "add <name>",
			Short: "Crea una clasificación (rechaza nombres existentes)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, func(ctx context.Context, a *app) error {
					out, err := a.classifications.Create(ctx, dto.CreateClassificationRequest{Name: args[0]})
					if err != nil {
						return err
					}
					return a.printer.Print(out)
				})
			},
		},
		&cobra.Command{
			Use:   "exists <name>",
			Short: "Indica si existe una clasificación con ese nombre exacto",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, func(ctx context.Context, a *app) error {
					out, err := a.classifications.Exists(ctx, args[0])
					if err != nil {
						return err
					}
					return a.printer.Print(out)
				})
			},
		},
	)
	return cmd
}
