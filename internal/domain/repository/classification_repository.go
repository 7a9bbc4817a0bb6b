package repository

import (
	"context"

	"github.com/jhoicas/inventario-vehiculos/internal/domain/entity"
)

// ClassificationRepository define el puerto de persistencia para Classification (DIP).
type ClassificationRepository interface {
	List(ctx context.Context) ([]*entity.Classification, error)
	Create(ctx context.Context, name string) (*entity.Classification, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}
