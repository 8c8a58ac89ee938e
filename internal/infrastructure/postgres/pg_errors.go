package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de PostgreSQL que los repositorios traducen a errores de dominio.
const pgUniqueViolation = "23505"

// isUniqueViolation reporta si el error proviene de un constraint UNIQUE
// (SKU de producto o código de bodega duplicado).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
