package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/inventario-vehiculos/internal/application/usecase"
	"github.com/jhoicas/inventario-vehiculos/internal/domain"
	"github.com/jhoicas/inventario-vehiculos/internal/domain/repository"
)

var _ usecase.ClassificationTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	db TxBeginner
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(db TxBeginner) *TxRunner {
	return &TxRunner{db: db}
}

// maxSerializationAttempts intentos de una transacción que aborta por conflicto de serialización (40001).
const maxSerializationAttempts = 3

// RunClassification inicia una transacción serializable, ejecuta fn con el repo de clasificaciones
// atado a la tx y hace Commit o Rollback. Con SERIALIZABLE, dos altas concurrentes del mismo nombre
// (consulta de existencia + INSERT) no pueden confirmarse ambas; la que aborta con 40001 se reintenta
// y el reintento ve la fila confirmada, de modo que fn devuelve domain.ErrDuplicate.
func (r *TxRunner) RunClassification(ctx context.Context, fn func(repo repository.ClassificationRepository) error) error {
	var err error
	for attempt := 1; attempt <= maxSerializationAttempts; attempt++ {
		err = r.runOnce(ctx, fn)
		if !isSerializationFailure(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}

func (r *TxRunner) runOnce(ctx context.Context, fn func(repo repository.ClassificationRepository) error) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return domain.NewDataAccessError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewClassificationRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return dataAccessError("commit transaction", err)
	}
	return nil
}
