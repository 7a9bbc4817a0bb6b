package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"github.com/jhoicas/inventario-vehiculos/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

const versionTable = "schema_version"

// MigrationFS devuelve las migraciones embebidas (classification, inventory).
func MigrationFS() (fs.FS, error) {
	return fs.Sub(migrations, "migrations")
}

// Migrate aplica las migraciones pendientes con jackc/tern sobre una conexión dedicada (no el pool).
func Migrate(ctx context.Context, connString string, log *logger.Logger) error {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return fmt.Errorf("conectar para migrar: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("construir migrador: %w", err)
	}
	subtree, err := MigrationFS()
	if err != nil {
		return fmt.Errorf("leer migraciones embebidas: %w", err)
	}
	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("cargar migraciones: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("versión actual del esquema: %w", err)
	}
	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("migrar: %w", err)
	}

	to := int32(len(m.Migrations))
	if from == to {
		log.Info().Int32("version", to).Msg("esquema al día")
	} else {
		log.Info().Int32("from", from).Int32("to", to).Msg("esquema migrado")
	}
	return nil
}
