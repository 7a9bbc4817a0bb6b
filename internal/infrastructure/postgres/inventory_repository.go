package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/inventario-vehiculos/internal/domain/entity"
	"github.com/jhoicas/inventario-vehiculos/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

const inventoryColumns = `inv_id, inv_make, inv_model, inv_year, inv_description, inv_image,
		inv_thumbnail, inv_price, inv_miles, inv_color, classification_id`

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia para el inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// ListByClassification lista los vehículos de una clasificación junto con su nombre.
func (r *InventoryRepo) ListByClassification(ctx context.Context, classificationID int) ([]*entity.InventoryDetail, error) {
	query := `
		SELECT i.inv_id, i.inv_make, i.inv_model, i.inv_year, i.inv_description, i.inv_image,
			i.inv_thumbnail, i.inv_price, i.inv_miles, i.inv_color, i.classification_id,
			c.classification_name
		FROM public.inventory AS i
		JOIN public.classification AS c ON i.classification_id = c.classification_id
		WHERE i.classification_id = $1
		ORDER BY i.inv_id`
	rows, err := r.q.Query(ctx, query, classificationID)
	if err != nil {
		return nil, dataAccessError("list inventory by classification", err)
	}
	defer rows.Close()
	list := make([]*entity.InventoryDetail, 0)
	for rows.Next() {
		var d entity.InventoryDetail
		if err := rows.Scan(
			&d.ID, &d.Make, &d.Model, &d.Year, &d.Description, &d.Image,
			&d.Thumbnail, &d.Price, &d.Miles, &d.Color, &d.ClassificationID,
			&d.ClassificationName,
		); err != nil {
			return nil, dataAccessError("list inventory by classification", fmt.Errorf("scan inventory: %w", err))
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, dataAccessError("list inventory by classification", err)
	}
	return list, nil
}

// GetByID obtiene un vehículo por inv_id. Devuelve (nil, nil) si no existe.
func (r *InventoryRepo) GetByID(ctx context.Context, invID int) (*entity.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM public.inventory WHERE inv_id = $1`
	item, err := scanInventoryItem(r.q.QueryRow(ctx, query, invID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dataAccessError("get inventory", err)
	}
	return item, nil
}

// Create inserta un vehículo y devuelve la fila persistida (con inv_id generado).
func (r *InventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error) {
	query := `
		INSERT INTO public.inventory (
			inv_make, inv_model, inv_year, inv_description, inv_image,
			inv_thumbnail, inv_price, inv_miles, inv_color, classification_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + inventoryColumns
	created, err := scanInventoryItem(r.q.QueryRow(ctx, query,
		item.Make, item.Model, item.Year, item.Description, item.Image,
		item.Thumbnail, item.Price, item.Miles, item.Color, item.ClassificationID,
	))
	if err != nil {
		return nil, dataAccessError("insert inventory", err)
	}
	return created, nil
}

// Update reemplaza todos los campos mutables del vehículo item.ID y devuelve el estado posterior.
// Devuelve (nil, nil) si ninguna fila coincide.
func (r *InventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error) {
	query := `
		UPDATE public.inventory SET
			inv_make = $1, inv_model = $2, inv_description = $3, inv_image = $4,
			inv_thumbnail = $5, inv_price = $6, inv_year = $7, inv_miles = $8,
			inv_color = $9, classification_id = $10
		WHERE inv_id = $11
		RETURNING ` + inventoryColumns
	updated, err := scanInventoryItem(r.q.QueryRow(ctx, query,
		item.Make, item.Model, item.Description, item.Image,
		item.Thumbnail, item.Price, item.Year, item.Miles,
		item.Color, item.ClassificationID, item.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dataAccessError("update inventory", err)
	}
	return updated, nil
}

// Delete elimina un vehículo por inv_id y devuelve el command tag del driver.
func (r *InventoryRepo) Delete(ctx context.Context, invID int) (*entity.DeleteResult, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM public.inventory WHERE inv_id = $1`, invID)
	if err != nil {
		return nil, dataAccessError("delete inventory", err)
	}
	return &entity.DeleteResult{Command: cmd.String(), RowsAffected: cmd.RowsAffected()}, nil
}

func scanInventoryItem(row pgx.Row) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.Make, &it.Model, &it.Year, &it.Description, &it.Image,
		&it.Thumbnail, &it.Price, &it.Miles, &it.Color, &it.ClassificationID,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
