package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/employees-api/internal/domain"
)

// defaultQueryTimeout se aplica si la configuración no define uno.
const defaultQueryTimeout = 5 * time.Second

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503),
// típicamente un DELETE sobre un empleado con filas dependientes.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return strings.Contains(err.Error(), "23503")
}

// opContext acota la operación con el timeout de sentencia configurado.
func opContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// storeErr registra el fallo de almacenamiento con el nombre de la operación y
// sus parámetros, y lo mapea al error de dominio más cercano. El detalle crudo
// del driver no sale de aquí hacia el cliente.
func storeErr(op string, err error, fields ...interface{}) error {
	ev := log.Error().Str("op", op).Err(err)
	for i := 0; i+1 < len(fields); i += 2 {
		ev = ev.Interface(fmt.Sprint(fields[i]), fields[i+1])
	}
	ev.Msg("fallo de almacenamiento")

	switch {
	case errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err):
		return domain.ErrUnavailable
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return domain.ErrConflict
	}
	return fmt.Errorf("%s: %w", op, err)
}
