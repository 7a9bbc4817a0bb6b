// Package seed carga clasificaciones y vehículos desde un archivo YAML a través de los casos de uso,
// de modo que el alta pasa por las mismas validaciones que el resto de la aplicación.
//
// Formato:
//
//	classifications:
//	  - name: Truck
//	    vehicles:
//	      - inv_make: Ford
//	        inv_model: F150
//	        inv_year: 2020
//	        ...
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/inventario-vehiculos/internal/application/dto"
	"github.com/jhoicas/inventario-vehiculos/internal/application/usecase"
	"github.com/jhoicas/inventario-vehiculos/pkg/logger"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// File documento de seed.
type File struct {
	Classifications []Classification `yaml:"classifications"`
}

// Classification clasificación con sus vehículos. classification_id de cada vehículo se ignora:
// se asigna el de la clasificación creada o existente.
type Classification struct {
	Name     string                 `yaml:"name"`
	Vehicles []dto.InventoryRequest `yaml:"vehicles"`
}

// Summary resultado de una carga.
type Summary struct {
	ClassificationsCreated int `json:"classifications_created" yaml:"classifications_created"`
	ClassificationsReused  int `json:"classifications_reused" yaml:"classifications_reused"`
	VehiclesCreated        int `json:"vehicles_created" yaml:"vehicles_created"`
}

// Parse decodifica el YAML. Con latin1, la entrada se transcodifica desde ISO-8859-1.
func Parse(r io.Reader, latin1 bool) (*File, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decodificar seed: %w", err)
	}
	return &f, nil
}

// Loader aplica un File usando los casos de uso.
type Loader struct {
	classifications *usecase.ClassificationUseCase
	inventory       *usecase.InventoryUseCase
	log             *logger.Logger
}

// NewLoader construye el cargador.
func NewLoader(classifications *usecase.ClassificationUseCase, inventory *usecase.InventoryUseCase, log *logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{classifications: classifications, inventory: inventory, log: log}
}

// Load crea las clasificaciones que falten (reutiliza las existentes por nombre exacto)
// e inserta los vehículos. Se detiene en el primer error; lo ya insertado queda persistido.
func (l *Loader) Load(ctx context.Context, f *File) (*Summary, error) {
	existing, err := l.classifications.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int, len(existing.Items))
	for _, c := range existing.Items {
		ids[c.Name] = c.ID
	}

	sum := &Summary{}
	for _, c := range f.Classifications {
		c.Name = strings.TrimSpace(c.Name)
		id, ok := ids[c.Name]
		if ok {
			sum.ClassificationsReused++
		} else {
			created, err := l.classifications.Create(ctx, dto.CreateClassificationRequest{Name: c.Name})
			if err != nil {
				return sum, fmt.Errorf("clasificación %q: %w", c.Name, err)
			}
			id = created.ID
			ids[created.Name] = id
			sum.ClassificationsCreated++
		}

		for i, v := range c.Vehicles {
			v.ClassificationID = id
			if _, err := l.inventory.Create(ctx, v); err != nil {
				return sum, fmt.Errorf("clasificación %q, vehículo %d: %w", c.Name, i+1, err)
			}
			sum.VehiclesCreated++
		}
	}
	l.log.Info().
		Int("classifications_created", sum.ClassificationsCreated).
		Int("classifications_reused", sum.ClassificationsReused).
		Int("vehicles_created", sum.VehiclesCreated).
		Msg("seed aplicado")
	return sum, nil
}
