package usecase

import (
	"context"

	"github.com/jhoicas/inventario-vehiculos/internal/domain/repository"
)

// ClassificationTxRunner ejecuta la verificación de existencia y el alta de una clasificación
// en una sola transacción. Lo implementa postgres.TxRunner.
type ClassificationTxRunner interface {
	RunClassification(ctx context.Context, fn func(repo repository.ClassificationRepository) error) error
}
