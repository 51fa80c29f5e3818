package repository

import (
	"context"

	"github.com/jhoicas/employees-api/internal/domain/entity"
)

// DepartmentRepository define el puerto de persistencia para el catálogo de departamentos.
type DepartmentRepository interface {
	List(ctx context.Context) ([]entity.Department, error)
}
