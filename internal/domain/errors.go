package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidReference = errors.New("referencia a un recurso inexistente")
)

// DataAccessError envuelve cualquier fallo del ejecutor de consultas (conexión, constraint,
// SQL o parámetros mal formados). Op identifica la operación del repositorio.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// NewDataAccessError construye el error tipado para la operación op.
func NewDataAccessError(op string, err error) *DataAccessError {
	return &DataAccessError{Op: op, Err: err}
}

// IsDataAccess indica si err (o alguno de sus envueltos) es un DataAccessError.
func IsDataAccess(err error) bool {
	var dae *DataAccessError
	return errors.As(err, &dae)
}
