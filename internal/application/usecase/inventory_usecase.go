package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/inventario-vehiculos/internal/application/dto"
	"github.com/jhoicas/inventario-vehiculos/internal/domain"
	"github.com/jhoicas/inventario-vehiculos/internal/domain/entity"
	"github.com/jhoicas/inventario-vehiculos/internal/domain/repository"
	"github.com/jhoicas/inventario-vehiculos/pkg/logger"
	"github.com/shopspring/decimal"
)

// InventoryUseCase casos de uso CRUD para el inventario de vehículos.
type InventoryUseCase struct {
	repo     repository.InventoryRepository
	validate *validator.Validate
	log      *logger.Logger
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository, log *logger.Logger) *InventoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InventoryUseCase{repo: repo, validate: newValidator(), log: log}
}

// ListByClassification lista los vehículos de una clasificación.
// Una clasificación sin vehículos se reporta como domain.ErrNotFound.
func (uc *InventoryUseCase) ListByClassification(ctx context.Context, classificationID int) (*dto.InventoryListResponse, error) {
	if classificationID <= 0 {
		return nil, fmt.Errorf("%w: classification_id debe ser mayor que 0", domain.ErrInvalidInput)
	}
	list, err := uc.repo.ListByClassification(ctx, classificationID)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "list_inventory").Int("classification_id", classificationID).Msg("listar inventario por clasificación")
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	out := &dto.InventoryListResponse{
		ClassificationID:   classificationID,
		ClassificationName: list[0].ClassificationName,
		Items:              make([]dto.InventoryDetailResponse, 0, len(list)),
	}
	for _, d := range list {
		out.Items = append(out.Items, dto.InventoryDetailResponse{
			InventoryResponse:  toInventoryResponse(&d.InventoryItem),
			ClassificationName: d.ClassificationName,
		})
	}
	return out, nil
}

// GetByID obtiene un vehículo. Devuelve (nil, nil) si no existe.
func (uc *InventoryUseCase) GetByID(ctx context.Context, invID int) (*dto.InventoryResponse, error) {
	if invID <= 0 {
		return nil, fmt.Errorf("%w: inv_id debe ser mayor que 0", domain.ErrInvalidInput)
	}
	item, err := uc.repo.GetByID(ctx, invID)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "get_inventory").Int("inv_id", invID).Msg("obtener vehículo")
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	resp := toInventoryResponse(item)
	return &resp, nil
}

// Create valida y registra un vehículo nuevo.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.InventoryRequest) (*dto.InventoryResponse, error) {
	in = normalizeInventory(in)
	if err := uc.validateInventory(in); err != nil {
		return nil, err
	}
	item := toInventoryItem(in)
	created, err := uc.repo.Create(ctx, &item)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "add_inventory").Int("classification_id", in.ClassificationID).Msg("crear vehículo")
		return nil, err
	}
	uc.log.Info().Int("inv_id", created.ID).Str("inv_make", created.Make).Str("inv_model", created.Model).Msg("vehículo creado")
	resp := toInventoryResponse(created)
	return &resp, nil
}

// Update reemplaza todos los campos mutables del vehículo. domain.ErrNotFound si el inv_id no existe.
func (uc *InventoryUseCase) Update(ctx context.Context, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	in.InventoryRequest = normalizeInventory(in.InventoryRequest)
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}
	if err := validatePrice(in.InventoryRequest); err != nil {
		return nil, err
	}
	item := toInventoryItem(in.InventoryRequest)
	item.ID = in.ID
	updated, err := uc.repo.Update(ctx, &item)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "update_inventory").Int("inv_id", in.ID).Msg("actualizar vehículo")
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	resp := toInventoryResponse(updated)
	return &resp, nil
}

// Delete elimina un vehículo. domain.ErrNotFound si ninguna fila fue afectada.
func (uc *InventoryUseCase) Delete(ctx context.Context, invID int) (*dto.DeleteInventoryResponse, error) {
	if invID <= 0 {
		return nil, fmt.Errorf("%w: inv_id debe ser mayor que 0", domain.ErrInvalidInput)
	}
	res, err := uc.repo.Delete(ctx, invID)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "delete_inventory").Int("inv_id", invID).Msg("eliminar vehículo")
		return nil, err
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}
	uc.log.Info().Int("inv_id", invID).Msg("vehículo eliminado")
	return &dto.DeleteInventoryResponse{ID: invID, Command: res.Command, RowsAffected: res.RowsAffected}, nil
}

func (uc *InventoryUseCase) validateInventory(in dto.InventoryRequest) error {
	if err := validateStruct(uc.validate, in); err != nil {
		return err
	}
	return validatePrice(in)
}

// maxPrice límite exclusivo de inv_price NUMERIC(11,2).
var maxPrice = decimal.New(1, 9)

// validatePrice exige un precio no negativo que NUMERIC(11,2) almacene sin redondeo.
func validatePrice(in dto.InventoryRequest) error {
	switch {
	case in.Price.IsNegative():
		return fmt.Errorf("%w: inv_price no puede ser negativo", domain.ErrInvalidInput)
	case !in.Price.Equal(in.Price.Round(2)):
		return fmt.Errorf("%w: inv_price admite como máximo 2 decimales", domain.ErrInvalidInput)
	case in.Price.GreaterThanOrEqual(maxPrice):
		return fmt.Errorf("%w: inv_price debe ser menor que %s", domain.ErrInvalidInput, maxPrice)
	}
	return nil
}

func normalizeInventory(in dto.InventoryRequest) dto.InventoryRequest {
	in.Make = strings.TrimSpace(in.Make)
	in.Model = strings.TrimSpace(in.Model)
	in.Description = strings.TrimSpace(in.Description)
	in.Image = strings.TrimSpace(in.Image)
	in.Thumbnail = strings.TrimSpace(in.Thumbnail)
	in.Color = strings.TrimSpace(in.Color)
	return in
}

func toInventoryItem(in dto.InventoryRequest) entity.InventoryItem {
	return entity.InventoryItem{
		Make:             in.Make,
		Model:            in.Model,
		Year:             in.Year,
		Description:      in.Description,
		Image:            in.Image,
		Thumbnail:        in.Thumbnail,
		Price:            in.Price,
		Miles:            in.Miles,
		Color:            in.Color,
		ClassificationID: in.ClassificationID,
	}
}

func toInventoryResponse(it *entity.InventoryItem) dto.InventoryResponse {
	return dto.InventoryResponse{
		ID:               it.ID,
		Make:             it.Make,
		Model:            it.Model,
		Year:             it.Year,
		Description:      it.Description,
		Image:            it.Image,
		Thumbnail:        it.Thumbnail,
		Price:            it.Price,
		Miles:            it.Miles,
		Color:            it.Color,
		ClassificationID: it.ClassificationID,
	}
}
