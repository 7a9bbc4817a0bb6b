package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhoicas/inventario-vehiculos/internal/application/dto"
	"github.com/jhoicas/inventario-vehiculos/internal/domain"
	"github.com/jhoicas/inventario-vehiculos/internal/domain/entity"
	"github.com/jhoicas/inventario-vehiculos/internal/domain/repository"
	"github.com/jhoicas/inventario-vehiculos/pkg/logger"
)

// ClassificationUseCase casos de uso para clasificaciones de vehículos.
type ClassificationUseCase struct {
	repo     repository.ClassificationRepository
	txRunner ClassificationTxRunner // opcional; sin runner el alta usa repo directamente
	validate *validator.Validate
	log      *logger.Logger
}

// NewClassificationUseCase construye el caso de uso. txRunner puede ser nil.
func NewClassificationUseCase(repo repository.ClassificationRepository, txRunner ClassificationTxRunner, log *logger.Logger) *ClassificationUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ClassificationUseCase{
		repo:     repo,
		txRunner: txRunner,
		validate: newValidator(),
		log:      log,
	}
}

// List devuelve todas las clasificaciones ordenadas por nombre.
func (uc *ClassificationUseCase) List(ctx context.Context) (*dto.ClassificationListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "list_classifications").Msg("listar clasificaciones")
		return nil, err
	}
	items := make([]dto.ClassificationResponse, 0, len(list))
	for _, c := range list {
		items = append(items, toClassificationResponse(c))
	}
	return &dto.ClassificationListResponse{Items: items}, nil
}

// Exists indica si ya hay una clasificación con ese nombre exacto (sensible a mayúsculas).
// Recorta espacios igual que Create.
func (uc *ClassificationUseCase) Exists(ctx context.Context, name string) (*dto.ClassificationExistsResponse, error) {
	name = strings.TrimSpace(name)
	exists, err := uc.repo.ExistsByName(ctx, name)
	if err != nil {
		uc.log.Error().Err(err).Str("op", "check_classification").Str("classification_name", name).Msg("verificar clasificación")
		return nil, err
	}
	return &dto.ClassificationExistsResponse{Name: name, Exists: exists}, nil
}

// Create valida el nombre, rechaza duplicados con domain.ErrDuplicate e inserta la clasificación.
func (uc *ClassificationUseCase) Create(ctx context.Context, in dto.CreateClassificationRequest) (*dto.ClassificationResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}

	var created *entity.Classification
	create := func(repo repository.ClassificationRepository) error {
		exists, err := repo.ExistsByName(ctx, in.Name)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicate
		}
		created, err = repo.Create(ctx, in.Name)
		return err
	}

	var err error
	if uc.txRunner != nil {
		err = uc.txRunner.RunClassification(ctx, create)
	} else {
		err = create(uc.repo)
	}
	if err != nil {
		if !errors.Is(err, domain.ErrDuplicate) {
			uc.log.Error().Err(err).Str("op", "add_classification").Str("classification_name", in.Name).Msg("crear clasificación")
		}
		return nil, err
	}
	uc.log.Info().Int("classification_id", created.ID).Str("classification_name", created.Name).Msg("clasificación creada")
	resp := toClassificationResponse(created)
	return &resp, nil
}

func toClassificationResponse(c *entity.Classification) dto.ClassificationResponse {
	return dto.ClassificationResponse{ID: c.ID, Name: c.Name}
}
