package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/inventario-vehiculos/internal/domain"
	"github.com/jhoicas/inventario-vehiculos/internal/domain/entity"
	"github.com/jhoicas/inventario-vehiculos/internal/domain/repository"
)

// memStore simula las dos tablas con el mismo contrato que los repos PostgreSQL.
type memStore struct {
	mu              sync.Mutex
	classifications map[int]entity.Classification
	inventory       map[int]entity.InventoryItem
	nextClassID     int
	nextInvID       int
	failWith        error // si no es nil, toda operación falla con DataAccessError
}

func newMemStore() *memStore {
	return &memStore{
		classifications: map[int]entity.Classification{},
		inventory:       map[int]entity.InventoryItem{},
	}
}

func (s *memStore) fail(op string) error {
	if s.failWith != nil {
		return domain.NewDataAccessError(op, s.failWith)
	}
	return nil
}

type memClassificationRepo struct{ s *memStore }

var _ repository.ClassificationRepository = memClassificationRepo{}

func (r memClassificationRepo) List(ctx context.Context) ([]*entity.Classification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("list classifications"); err != nil {
		return nil, err
	}
	list := make([]*entity.Classification, 0, len(r.s.classifications))
	for _, c := range r.s.classifications {
		c := c
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r memClassificationRepo) Create(ctx context.Context, name string) (*entity.Classification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("insert classification"); err != nil {
		return nil, err
	}
	r.s.nextClassID++
	c := entity.Classification{ID: r.s.nextClassID, Name: name}
	r.s.classifications[c.ID] = c
	return &c, nil
}

func (r memClassificationRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("check classification"); err != nil {
		return false, err
	}
	for _, c := range r.s.classifications {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type memInventoryRepo struct{ s *memStore }

var _ repository.InventoryRepository = memInventoryRepo{}

func (r memInventoryRepo) ListByClassification(ctx context.Context, classificationID int) ([]*entity.InventoryDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("list inventory by classification"); err != nil {
		return nil, err
	}
	c, ok := r.s.classifications[classificationID]
	list := make([]*entity.InventoryDetail, 0)
	if !ok {
		return list, nil
	}
	for _, it := range r.s.inventory {
		if it.ClassificationID == classificationID {
			list = append(list, &entity.InventoryDetail{InventoryItem: it, ClassificationName: c.Name})
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r memInventoryRepo) GetByID(ctx context.Context, invID int) (*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("get inventory"); err != nil {
		return nil, err
	}
	it, ok := r.s.inventory[invID]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r memInventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("insert inventory"); err != nil {
		return nil, err
	}
	if _, ok := r.s.classifications[item.ClassificationID]; !ok {
		return nil, domain.NewDataAccessError("insert inventory", domain.ErrInvalidReference)
	}
	r.s.nextInvID++
	it := *item
	it.ID = r.s.nextInvID
	r.s.inventory[it.ID] = it
	return &it, nil
}

func (r memInventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) (*entity.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("update inventory"); err != nil {
		return nil, err
	}
	if _, ok := r.s.inventory[item.ID]; !ok {
		return nil, nil
	}
	r.s.inventory[item.ID] = *item
	it := *item
	return &it, nil
}

func (r memInventoryRepo) Delete(ctx context.Context, invID int) (*entity.DeleteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.fail("delete inventory"); err != nil {
		return nil, err
	}
	if _, ok := r.s.inventory[invID]; !ok {
		return &entity.DeleteResult{Command: "DELETE 0"}, nil
	}
	delete(r.s.inventory, invID)
	return &entity.DeleteResult{Command: "DELETE 1", RowsAffected: 1}, nil
}

// recordingTxRunner ejecuta fn sobre el repo en memoria y cuenta las invocaciones.
type recordingTxRunner struct {
	repo  repository.ClassificationRepository
	calls int
}

func (r *recordingTxRunner) RunClassification(ctx context.Context, fn func(repo repository.ClassificationRepository) error) error {
	r.calls++
	return fn(r.repo)
}
