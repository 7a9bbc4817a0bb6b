package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-vehiculos/internal/domain/entity"
	"github.com/jhoicas/inventario-vehiculos/internal/domain/repository"
)

var _ repository.ClassificationRepository = (*ClassificationRepo)(nil)

// ClassificationRepo implementación del puerto ClassificationRepository sobre PostgreSQL (usable con pool o tx).
type ClassificationRepo struct {
	q Querier
}

// NewClassificationRepository construye el adaptador de persistencia para clasificaciones.
func NewClassificationRepository(q Querier) *ClassificationRepo {
	return &ClassificationRepo{q: q}
}

// List devuelve todas las clasificaciones ordenadas por nombre.
func (r *ClassificationRepo) List(ctx context.Context) ([]*entity.Classification, error) {
	query := `
		SELECT classification_id, classification_name
		FROM public.classification ORDER BY classification_name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, dataAccessError("list classifications", err)
	}
	defer rows.Close()
	list := make([]*entity.Classification, 0)
	for rows.Next() {
		var c entity.Classification
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, dataAccessError("list classifications", fmt.Errorf("scan classification: %w", err))
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, dataAccessError("list classifications", err)
	}
	return list, nil
}

// Create inserta una clasificación y devuelve la fila persistida.
func (r *ClassificationRepo) Create(ctx context.Context, name string) (*entity.Classification, error) {
	query := `
		INSERT INTO public.classification (classification_name)
		VALUES ($1)
		RETURNING classification_id, classification_name`
	var c entity.Classification
	if err := r.q.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name); err != nil {
		return nil, dataAccessError("insert classification", err)
	}
	return &c, nil
}

// ExistsByName indica si hay al menos una clasificación con ese nombre (comparación exacta).
func (r *ClassificationRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM public.classification WHERE classification_name = $1
		)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, dataAccessError("check classification", err)
	}
	return exists, nil
}
