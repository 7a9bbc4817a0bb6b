package repository

import (
	"context"

	"github.com/jhoicas/inventario-vehiculos/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryItem (DIP).
// GetByID y Update devuelven (nil, nil) cuando ninguna fila coincide.
type InventoryRepository interface {
	ListByClassification(ctx context.Context, classificationID int) ([]*entity.InventoryDetail, error)
	GetByID(ctx context.Context, invID int) (*entity.InventoryItem, error)
	Create(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error)
	Delete(ctx context.Context, invID int) (*entity.DeleteResult, error)
}
