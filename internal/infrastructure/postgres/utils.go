package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/inventario-vehiculos/internal/domain"
)

const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgCode(err) == codeUniqueViolation
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	return pgCode(err) == codeForeignKeyViolation
}

// isSerializationFailure verifica si la transacción abortó por conflicto de serialización (40001).
func isSerializationFailure(err error) bool {
	return pgCode(err) == codeSerializationFailure
}

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// dataAccessError clasifica el error del driver y lo envuelve en domain.DataAccessError.
// Las violaciones de unicidad y de llave foránea quedan alcanzables con errors.Is.
func dataAccessError(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		err = fmt.Errorf("%w: %w", domain.ErrDuplicate, err)
	case isForeignKeyViolation(err):
		err = fmt.Errorf("%w: %w", domain.ErrInvalidReference, err)
	}
	return domain.NewDataAccessError(op, err)
}
