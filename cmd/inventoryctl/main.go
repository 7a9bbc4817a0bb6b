// inventoryctl opera el inventario de vehículos directamente sobre PostgreSQL:
// migraciones, clasificaciones, vehículos y carga de seeds.
//
// Configuración por variables de entorno (DATABASE_URL o DB_HOST/DB_PORT/..., LOG_LEVEL, LOG_SQL).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/inventario-vehiculos/internal/application/dto"
	"github.com/jhoicas/inventario-vehiculos/internal/application/usecase"
	"github.com/jhoicas/inventario-vehiculos/internal/domain"
	"github.com/jhoicas/inventario-vehiculos/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-vehiculos/pkg/config"
	"github.com/jhoicas/inventario-vehiculos/pkg/logger"
	"github.com/jhoicas/inventario-vehiculos/pkg/output"
	"github.com/spf13/cobra"
)

var outputFormat string

func main() {
	rootCmd := &cobra.Command{
		Use:           "inventoryctl",
		Short:         "Inventario de vehículos sobre PostgreSQL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "json", "Formato de salida (json|yaml)")

	rootCmd.AddCommand(
		migrateCmd(),
		classificationsCmd(),
		inventoryCmd(),
		seedCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		printError(err)
		os.Exit(1)
	}
}

// app agrupa las dependencias de una invocación. El pool vive lo que dura el comando.
type app struct {
	cfg             *config.Config
	log             *logger.Logger
	pool            *pgxpool.Pool
	classifications *usecase.ClassificationUseCase
	inventory       *usecase.InventoryUseCase
	printer         *output.Printer
}

func newApp(ctx context.Context) (*app, error) {
	format, err := output.ParseFormat(outputFormat)
	if err != nil {
		return nil, err
	}
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, log, cfg.Log.SQL)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}

	classRepo := postgres.NewClassificationRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	return &app{
		cfg:             cfg,
		log:             log,
		pool:            pool,
		classifications: usecase.NewClassificationUseCase(classRepo, txRunner, log),
		inventory:       usecase.NewInventoryUseCase(invRepo, log),
		printer:         output.NewPrinter(format),
	}, nil
}

func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	base := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	log := logger.FromZerolog(base.With().
		Str("app", cfg.App.Name).
		Str("run_id", uuid.NewString()).
		Logger())
	return cfg, log, nil
}

func (a *app) Close() {
	a.pool.Close()
}

// withApp construye las dependencias, aplica DB_QUERY_TIMEOUT_SECONDS al contexto y ejecuta fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.cfg.DB.QueryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.DB.QueryTimeout)
		defer cancel()
	}
	return fn(ctx, a)
}

// errorResponse traduce errores de dominio a un código estable para scripts.
func errorResponse(err error) dto.ErrorResponse {
	code := "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidInput):
		code = "VALIDATION"
	case errors.Is(err, domain.ErrDuplicate):
		code = "DUPLICATE"
	case errors.Is(err, domain.ErrInvalidReference):
		code = "INVALID_REFERENCE"
	case domain.IsDataAccess(err):
		code = "DATA_ACCESS"
	}
	return dto.ErrorResponse{Code: code, Message: err.Error()}
}

func printError(err error) {
	format, ferr := output.ParseFormat(outputFormat)
	if ferr != nil {
		format = output.FormatJSON
	}
	p := output.NewPrinter(format)
	p.SetWriter(os.Stderr)
	if perr := p.Print(errorResponse(err)); perr != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
