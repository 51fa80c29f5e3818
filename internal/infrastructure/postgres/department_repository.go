package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/employees-api/internal/domain/entity"
	"github.com/jhoicas/employees-api/internal/domain/repository"
)

var _ repository.DepartmentRepository = (*DepartmentRepo)(nil)

// DepartmentRepo implementación del puerto DepartmentRepository sobre PostgreSQL.
type DepartmentRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewDepartmentRepository construye el adaptador del catálogo de departamentos.
func NewDepartmentRepository(pool *pgxpool.Pool, timeout time.Duration) *DepartmentRepo {
	return &DepartmentRepo{pool: pool, timeout: timeout}
}

// List devuelve el catálogo completo ordenado por nombre.
func (r *DepartmentRepo) List(ctx context.Context) ([]entity.Department, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, "SELECT dept_no, dept_name FROM departments ORDER BY dept_name")
	if err != nil {
		return nil, storeErr("list departments", err)
	}
	defer rows.Close()

	var list []entity.Department
	for rows.Next() {
		var d entity.Department
		if err := rows.Scan(&d.DeptNo, &d.DeptName); err != nil {
			return nil, storeErr("scan department", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
