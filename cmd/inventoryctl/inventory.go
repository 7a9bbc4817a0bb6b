package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/inventario-vehiculos/internal/application/dto"
	"github.com/jhoicas/inventario-vehiculos/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func inventoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "Vehículos del inventario",
	}
	cmd.AddCommand(
		inventoryListCmd(),
		inventoryGetCmd(),
		inventoryAddCmd(),
		inventoryUpdateCmd(),
		inventoryDeleteCmd(),
	)
	return cmd
}

func inventoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <classification_id>",
		Short: "Lista los vehículos de una clasificación",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			classificationID, err := parseID("classification_id", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				out, err := a.inventory.ListByClassification(ctx, classificationID)
				if err != nil {
					return err
				}
				return a.printer.Print(out)
			})
		},
	}
}

func inventoryGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <inv_id>",
		Short: "Muestra un vehículo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invID, err := parseID("inv_id", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				out, err := a.inventory.GetByID(ctx, invID)
				if err != nil {
					return err
				}
				if out == nil {
					return fmt.Errorf("vehículo %d: %w", invID, domain.ErrNotFound)
				}
				return a.printer.Print(out)
			})
		},
	}
}

func inventoryAddCmd() *cobra.Command {
	var f vehicleFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Registra un vehículo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := f.request()
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				out, err := a.inventory.Create(ctx, in)
				if err != nil {
					return err
				}
				return a.printer.Print(out)
			})
		},
	}
	f.register(cmd)
	return cmd
}

func inventoryUpdateCmd() *cobra.Command {
	var f vehicleFlags
	cmd := &cobra.Command{
		Use:   "update <inv_id>",
		Short: "Reemplaza todos los campos de un vehículo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invID, err := parseID("inv_id", args[0])
			if err != nil {
				return err
			}
			in, err := f.request()
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				out, err := a.inventory.Update(ctx, dto.UpdateInventoryRequest{ID: invID, InventoryRequest: in})
				if err != nil {
					return err
				}
				return a.printer.Print(out)
			})
		},
	}
	f.register(cmd)
	return cmd
}

func inventoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <inv_id>",
		Short: "Elimina un vehículo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invID, err := parseID("inv_id", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app) error {
				out, err := a.inventory.Delete(ctx, invID)
				if err != nil {
					return err
				}
				return a.printer.Print(out)
			})
		},
	}
}

// vehicleFlags campos de un vehículo como flags (alta y actualización completa).
type vehicleFlags struct {
	make             string
	model            string
	year             int
	description      string
	image            string
	thumbnail        string
	price            string
	miles            int
	color            string
	classificationID int
}

func (f *vehicleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.make, "make", "", "Marca (inv_make)")
	cmd.Flags().StringVar(&f.model, "model", "", "Modelo (inv_model)")
	cmd.Flags().IntVar(&f.year, "year", 0, "Año (inv_year)")
	cmd.Flags().StringVar(&f.description, "description", "", "Descripción (inv_description)")
	cmd.Flags().StringVar(&f.image, "image", "/images/vehicles/no-image.png", "Ruta de la imagen (inv_image)")
	cmd.Flags().StringVar(&f.thumbnail, "thumbnail", "/images/vehicles/no-image-tn.png", "Ruta de la miniatura (inv_thumbnail)")
	cmd.Flags().StringVar(&f.price, "price", "0", "Precio (inv_price)")
	cmd.Flags().IntVar(&f.miles, "miles", 0, "Millaje (inv_miles)")
	cmd.Flags().StringVar(&f.color, "color", "", "Color (inv_color)")
	cmd.Flags().IntVar(&f.classificationID, "classification-id", 0, "Clasificación (classification_id)")
}

func (f *vehicleFlags) request() (dto.InventoryRequest, error) {
	price, err := decimal.NewFromString(f.price)
	if err != nil {
		return dto.InventoryRequest{}, fmt.Errorf("%w: inv_price %q no es numérico", domain.ErrInvalidInput, f.price)
	}
	return dto.InventoryRequest{
		Make:             f.make,
		Model:            f.model,
		Year:             f.year,
		Description:      f.description,
		Image:            f.image,
		Thumbnail:        f.thumbnail,
		Price:            price,
		Miles:            f.miles,
		Color:            f.color,
		ClassificationID: f.classificationID,
	}, nil
}

func parseID(name, s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q debe ser un entero positivo", domain.ErrInvalidInput, name, s)
	}
	return id, nil
}
