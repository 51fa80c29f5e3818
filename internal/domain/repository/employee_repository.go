package repository

import (
	"context"

	"github.com/jhoicas/employees-api/internal/domain/entity"
)

// EmployeeFilter filtro validado para el listado de empleados.
// Los campos de texto vacíos se omiten del WHERE; OrderBy/Direction llegan
// ya contrastados contra la allow-list del caso de uso.
type EmployeeFilter struct {
	FirstName string // substring, case-insensitive
	LastName  string // substring, case-insensitive
	Gender    string // M | F exacto
	BirthDate string // YYYY-MM-DD exacto
	HireDate  string // YYYY-MM-DD exacto
	OrderBy   string // emp_no | first_name | last_name | gender | hire_date
	Direction string // asc | desc
	Limit     int    // [1,100]
	Offset    int    // >= 0
}

// EmployeeRepository define el puerto de persistencia para empleados.
// Todas las operaciones reciben contexto y quedan acotadas por el timeout del adaptador.
type EmployeeRepository interface {
	// List ejecuta dos lecturas con el mismo WHERE: COUNT(*) y la página.
	// Devuelve filas, total pre-paginación y error. Las lecturas no van en
	// transacción: bajo escrituras concurrentes total y filas pueden divergir
	// (comportamiento aceptado y documentado).
	List(ctx context.Context, f EmployeeFilter) ([]entity.Employee, int, error)
	GetByID(ctx context.Context, empNo int) (*entity.Employee, error)
	GetFull(ctx context.Context, empNo int) (*entity.EmployeeFull, error)
	Search(ctx context.Context, q string, limit int) ([]entity.Employee, error)
	// ListByDepartment pagina los empleados cuya asignación vigente es deptNo.
	ListByDepartment(ctx context.Context, deptNo string, limit, offset int) ([]entity.Employee, error)
	SalaryHistory(ctx context.Context, empNo int, currentOnly bool) ([]entity.SalaryRecord, error)
	TitleHistory(ctx context.Context, empNo int, currentOnly bool) ([]entity.TitleRecord, error)
	DepartmentHistory(ctx context.Context, empNo int, currentOnly bool) ([]entity.DepartmentAssignment, error)
	// NextEmpNo calcula max(emp_no)+1. No es una reserva transaccional: dos
	// creates concurrentes pueden colisionar y el perdedor recibe ErrDuplicate.
	NextEmpNo(ctx context.Context) (int, error)
	Create(ctx context.Context, e *entity.Employee) error
	Update(ctx context.Context, e *entity.Employee) error
	Delete(ctx context.Context, empNo int) error
}
