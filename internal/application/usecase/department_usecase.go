package usecase

import (
	"context"

	"github.com/jhoicas/employees-api/internal/application/dto"
	"github.com/jhoicas/employees-api/internal/domain/repository"
)

// DepartmentUseCase catálogo de departamentos (solo lectura).
type DepartmentUseCase struct {
	repo repository.DepartmentRepository
}

// NewDepartmentUseCase construye el caso de uso.
func NewDepartmentUseCase(repo repository.DepartmentRepository) *DepartmentUseCase {
	return &DepartmentUseCase{repo: repo}
}

// List devuelve el catálogo ordenado por nombre.
func (uc *DepartmentUseCase) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentResponse, 0, len(rows))
	for _, d := range rows {
		out = append(out, dto.DepartmentResponse{DeptNo: d.DeptNo, DeptName: d.DeptName})
	}
	return out, nil
}
