package entity

import "github.com/shopspring/decimal"

// InventoryItem representa un vehículo a la venta. Pertenece a exactamente una Classification
// (integridad referencial delegada al esquema).
type InventoryItem struct {
	ID               int
	Make             string
	Model            string
	Year             int
	Description      string
	Image            string // ruta o URL
	Thumbnail        string // ruta o URL
	Price            decimal.Decimal
	Miles            int
	Color            string
	ClassificationID int
}

// InventoryDetail es un vehículo con el nombre de su clasificación (resultado del JOIN).
type InventoryDetail struct {
	InventoryItem
	ClassificationName string
}

// DeleteResult describe el resultado crudo de un DELETE.
type DeleteResult struct {
	Command      string // command tag del driver, ej. "DELETE 1"
	RowsAffected int64
}
