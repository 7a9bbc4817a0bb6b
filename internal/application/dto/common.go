package dto

// ErrorResponse cuerpo de error que devuelve la CLI con --output json|yaml.
type ErrorResponse struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}
