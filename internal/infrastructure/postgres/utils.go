package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que los repositorios traducen a errores de dominio.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// isUniqueViolation constraint único violado: código o par ya registrado.
func isUniqueViolation(err error) bool {
	return hasPgCode(err, codeUniqueViolation)
}

// isForeignKeyViolation FK violada, por ejemplo borrar un componente
// referenciado por un BOM o por un plan.
func isForeignKeyViolation(err error) bool {
	return hasPgCode(err, codeForeignKeyViolation)
}
