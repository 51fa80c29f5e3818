package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/employees-api/internal/domain/entity"
	"github.com/jhoicas/employees-api/internal/domain/repository"
)

var _ repository.CredentialRepository = (*CredentialRepo)(nil)

// CredentialRepo implementación del puerto CredentialRepository sobre PostgreSQL.
type CredentialRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewCredentialRepository construye el adaptador de lectura de employee_auth.
func NewCredentialRepository(pool *pgxpool.Pool, timeout time.Duration) *CredentialRepo {
	return &CredentialRepo{pool: pool, timeout: timeout}
}

// FindByEmail busca la credencial por email (case-insensitive) unida al nombre
// del empleado. Devuelve nil sin error si no existe.
func (r *CredentialRepo) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT ea.emp_no, ea.email, ea.password_hash, ea.access,
		       e.first_name, e.last_name
		FROM employee_auth ea
		JOIN employees e ON e.emp_no = ea.emp_no
		WHERE lower(ea.email) = lower($1)
		LIMIT 1`
	var c entity.Credential
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&c.EmpNo, &c.Email, &c.PasswordHash, &c.Access, &c.FirstName, &c.LastName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("find credential by email", err, "email", email)
	}
	return &c, nil
}
