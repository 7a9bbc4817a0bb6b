package dto

// CreateClassificationRequest entrada para crear una clasificación.
// Sin espacios ni caracteres especiales.
type CreateClassificationRequest struct {
	Name string `json:"classification_name" yaml:"classification_name" validate:"required,min=1,max=30,alphanumunicode"`
}

// ClassificationResponse salida de una clasificación.
type ClassificationResponse struct {
	ID   int    `json:"classification_id" yaml:"classification_id"`
	Name string `json:"classification_name" yaml:"classification_name"`
}

// ClassificationListResponse lista de clasificaciones ordenada por nombre.
type ClassificationListResponse struct {
	Items []ClassificationResponse `json:"items" yaml:"items"`
}

// ClassificationExistsResponse resultado de la verificación de duplicados.
type ClassificationExistsResponse struct {
	Name   string `json:"classification_name" yaml:"classification_name"`
	Exists bool   `json:"exists" yaml:"exists"`
}
