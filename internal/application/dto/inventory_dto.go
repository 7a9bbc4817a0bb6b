package dto

import "github.com/shopspring/decimal"

// InventoryRequest campos mutables de un vehículo (alta y reemplazo completo en actualización).
type InventoryRequest struct {
	Make             string          `json:"inv_make" yaml:"inv_make" validate:"required,min=3,max=50"`
	Model            string          `json:"inv_model" yaml:"inv_model" validate:"required,min=3,max=50"`
	Year             int             `json:"inv_year" yaml:"inv_year" validate:"required,gte=1000,lte=9999"`
	Description      string          `json:"inv_description" yaml:"inv_description" validate:"required"`
	Image            string          `json:"inv_image" yaml:"inv_image" validate:"required,max=255"`
	Thumbnail        string          `json:"inv_thumbnail" yaml:"inv_thumbnail" validate:"required,max=255"`
	Price            decimal.Decimal `json:"inv_price" yaml:"inv_price"`
	Miles            int             `json:"inv_miles" yaml:"inv_miles" validate:"gte=0"`
	Color            string          `json:"inv_color" yaml:"inv_color" validate:"required,max=30"`
	ClassificationID int             `json:"classification_id" yaml:"classification_id" validate:"required,gte=1"`
}

// UpdateInventoryRequest reemplaza todos los campos mutables del vehículo ID.
type UpdateInventoryRequest struct {
	ID               int `json:"inv_id" yaml:"inv_id" validate:"required,gte=1"`
	InventoryRequest `yaml:",inline"`
}

// InventoryResponse salida de un vehículo.
type InventoryResponse struct {
	ID               int             `json:"inv_id" yaml:"inv_id"`
	Make             string          `json:"inv_make" yaml:"inv_make"`
	Model            string          `json:"inv_model" yaml:"inv_model"`
	Year             int             `json:"inv_year" yaml:"inv_year"`
	Description      string          `json:"inv_description" yaml:"inv_description"`
	Image            string          `json:"inv_image" yaml:"inv_image"`
	Thumbnail        string          `json:"inv_thumbnail" yaml:"inv_thumbnail"`
	Price            decimal.Decimal `json:"inv_price" yaml:"inv_price"`
	Miles            int             `json:"inv_miles" yaml:"inv_miles"`
	Color            string          `json:"inv_color" yaml:"inv_color"`
	ClassificationID int             `json:"classification_id" yaml:"classification_id"`
}

// InventoryDetailResponse vehículo con el nombre de su clasificación.
type InventoryDetailResponse struct {
	InventoryResponse  `yaml:",inline"`
	ClassificationName string `json:"classification_name" yaml:"classification_name"`
}

// InventoryListResponse vehículos de una clasificación.
type InventoryListResponse struct {
	ClassificationID   int                       `json:"classification_id" yaml:"classification_id"`
	ClassificationName string                    `json:"classification_name" yaml:"classification_name"`
	Items              []InventoryDetailResponse `json:"items" yaml:"items"`
}

// DeleteInventoryResponse resultado de eliminar un vehículo.
type DeleteInventoryResponse struct {
	ID           int    `json:"inv_id" yaml:"inv_id"`
	Command      string `json:"command" yaml:"command"`
	RowsAffected int64  `json:"rows_affected" yaml:"rows_affected"`
}
