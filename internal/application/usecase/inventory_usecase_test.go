package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-vehiculos/internal/application/dto"
	"github.com/jhoicas/inventario-vehiculos/internal/application/usecase"
	"github.com/jhoicas/inventario-vehiculos/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store           *memStore
	classifications *usecase.ClassificationUseCase
	inventory       *usecase.InventoryUseCase
}

func newFixture() fixture {
	s := newMemStore()
	cuc, _ := newClassificationUC(s)
	return fixture{
		store:           s,
		classifications: cuc,
		inventory:       usecase.NewInventoryUseCase(memInventoryRepo{s: s}, nil),
	}
}

func (f fixture) classification(t *testing.T, name string) int {
	t.Helper()
	c, err := f.classifications.Create(context.Background(), dto.CreateClassificationRequest{Name: name})
	require.NoError(t, err)
	return c.ID
}

func vehicle(classificationID int) dto.InventoryRequest {
	return dto.InventoryRequest{
		Make:             "Ford",
		Model:            "F150",
		Year:             2020,
		Description:      "Pickup de tamaño completo, cabina doble.",
		Image:            "/images/vehicles/f150.jpg",
		Thumbnail:        "/images/vehicles/f150-tn.jpg",
		Price:            decimal.RequireFromString("35999.99"),
		Miles:            12000,
		Color:            "Blue",
		ClassificationID: classificationID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario extremo a extremo
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryUseCase_TruckF150(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	truckID := f.classification(t, "Truck")
	sedanID := f.classification(t, "Sedan")

	_, err := f.inventory.Create(ctx, vehicle(truckID))
	require.NoError(t, err)

	other := vehicle(sedanID)
	other.Make, other.Model = "Honda", "Civic"
	_, err = f.inventory.Create(ctx, other)
	require.NoError(t, err)

	list, err := f.inventory.ListByClassification(ctx, truckID)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Truck", list.ClassificationName)
	for _, it := range list.Items {
		assert.Equal(t, truckID, it.ClassificationID)
		assert.Equal(t, "Truck", it.ClassificationName)
	}
	assert.Equal(t, "Ford", list.Items[0].Make)
	assert.Equal(t, "F150", list.Items[0].Model)
}

func TestInventoryUseCase_ListByClassification_Vacia(t *testing.T) {
	f := newFixture()
	id := f.classification(t, "Custom")

	_, err := f.inventory.ListByClassification(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.inventory.ListByClassification(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta y lectura
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryUseCase_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	in := vehicle(f.classification(t, "Truck"))

	created, err := f.inventory.Create(ctx, in)
	require.NoError(t, err)

	got, err := f.inventory.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, in.Make, got.Make)
	assert.Equal(t, in.Model, got.Model)
	assert.Equal(t, in.Year, got.Year)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, in.Image, got.Image)
	assert.Equal(t, in.Thumbnail, got.Thumbnail)
	assert.True(t, in.Price.Equal(got.Price))
	assert.Equal(t, in.Miles, got.Miles)
	assert.Equal(t, in.Color, got.Color)
	assert.Equal(t, in.ClassificationID, got.ClassificationID)
}

func TestInventoryUseCase_GetByID_NoExiste(t *testing.T) {
	f := newFixture()

	got, err := f.inventory.GetByID(context.Background(), 4242)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestInventoryUseCase_Create_Validacion(t *testing.T) {
	f := newFixture()
	id := f.classification(t, "Truck")

	cases := map[string]func(*dto.InventoryRequest){
		"make corto":        func(in *dto.InventoryRequest) { in.Make = "Fo" },
		"año de 3 dígitos":  func(in *dto.InventoryRequest) { in.Year = 999 },
		"sin descripción":   func(in *dto.InventoryRequest) { in.Description = "  " },
		"sin imagen":        func(in *dto.InventoryRequest) { in.Image = "" },
		"millaje negativo":  func(in *dto.InventoryRequest) { in.Miles = -1 },
		"precio negativo":   func(in *dto.InventoryRequest) { in.Price = decimal.NewFromInt(-1) },
		"sin color":         func(in *dto.InventoryRequest) { in.Color = "" },
		"sin clasificación": func(in *dto.InventoryRequest) { in.ClassificationID = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := vehicle(id)
			mutate(&in)
			out, err := f.inventory.Create(context.Background(), in)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestInventoryUseCase_Precio_AjustadoANumeric11_2(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := f.classification(t, "Truck")

	rechazados := map[string]string{
		"tres decimales":  "19999.999",
		"diez dígitos":    "12345678901",
		"límite superior": "1000000000",
	}
	for name, price := range rechazados {
		t.Run(name, func(t *testing.T) {
			in := vehicle(id)
			in.Price = decimal.RequireFromString(price)
			out, err := f.inventory.Create(ctx, in)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			_, err = f.inventory.Update(ctx, dto.UpdateInventoryRequest{ID: 1, InventoryRequest: in})
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, f.store.inventory)

	for _, price := range []string{"999999999.99", "19999.990", "0"} {
		in := vehicle(id)
		in.Price = decimal.RequireFromString(price)
		created, err := f.inventory.Create(ctx, in)
		require.NoError(t, err, price)
		assert.True(t, in.Price.Equal(created.Price), price)
	}
}

func TestInventoryUseCase_Create_ClasificacionInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.inventory.Create(context.Background(), vehicle(77))
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	assert.True(t, domain.IsDataAccess(err))
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryUseCase_Update_SoloLaFilaObjetivo(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := f.classification(t, "Truck")

	a, err := f.inventory.Create(ctx, vehicle(id))
	require.NoError(t, err)
	b, err := f.inventory.Create(ctx, vehicle(id))
	require.NoError(t, err)

	changed := vehicle(id)
	changed.Color = "Red"
	changed.Miles = 15000
	changed.Price = decimal.NewFromInt(33000)
	updated, err := f.inventory.Update(ctx, dto.UpdateInventoryRequest{ID: a.ID, InventoryRequest: changed})
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, "Red", updated.Color)
	assert.Equal(t, 15000, updated.Miles)

	untouched, err := f.inventory.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, *b, *untouched)
}

func TestInventoryUseCase_Update_NoExiste(t *testing.T) {
	f := newFixture()
	id := f.classification(t, "Truck")

	_, err := f.inventory.Update(context.Background(), dto.UpdateInventoryRequest{ID: 999, InventoryRequest: vehicle(id)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, f.store.inventory, 0)
}

func TestInventoryUseCase_Update_Validacion(t *testing.T) {
	f := newFixture()
	id := f.classification(t, "Truck")

	_, err := f.inventory.Update(context.Background(), dto.UpdateInventoryRequest{ID: 0, InventoryRequest: vehicle(id)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	id := f.classification(t, "Truck")

	a, err := f.inventory.Create(ctx, vehicle(id))
	require.NoError(t, err)
	b, err := f.inventory.Create(ctx, vehicle(id))
	require.NoError(t, err)

	res, err := f.inventory.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.RowsAffected)
	assert.Equal(t, a.ID, res.ID)

	gone, err := f.inventory.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	list, err := f.inventory.ListByClassification(ctx, id)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, b.ID, list.Items[0].ID)

	_, err = f.inventory.Delete(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryUseCase_PropagaDataAccessError(t *testing.T) {
	f := newFixture()
	id := f.classification(t, "Truck")
	f.store.failWith = errors.New("connection reset by peer")
	ctx := context.Background()

	_, err := f.inventory.ListByClassification(ctx, id)
	assert.True(t, domain.IsDataAccess(err))
	_, err = f.inventory.GetByID(ctx, 1)
	assert.True(t, domain.IsDataAccess(err))
	_, err = f.inventory.Create(ctx, vehicle(id))
	assert.True(t, domain.IsDataAccess(err))
	_, err = f.inventory.Update(ctx, dto.UpdateInventoryRequest{ID: 1, InventoryRequest: vehicle(id)})
	assert.True(t, domain.IsDataAccess(err))
	_, err = f.inventory.Delete(ctx, 1)
	assert.True(t, domain.IsDataAccess(err))
}
