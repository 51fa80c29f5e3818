package repository

import (
	"context"

	"github.com/jhoicas/employees-api/internal/domain/entity"
)

// CredentialRepository define el puerto de lectura de credenciales (employee_auth).
type CredentialRepository interface {
	// FindByEmail busca por email case-insensitive, unido al nombre del empleado.
	// Devuelve nil sin error si no existe.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)
}
