package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/employees-api/internal/domain/entity"
	"github.com/jhoicas/employees-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = "e.emp_no, e.birth_date, e.first_name, e.last_name, e.gender, e.hire_date"

// historyLimit tope de filas en historiales temporales.
const historyLimit = 100

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(pool *pgxpool.Pool, timeout time.Duration) *EmployeeRepo {
	return &EmployeeRepo{pool: pool, timeout: timeout}
}

// List ejecuta las dos lecturas del listado con un único WHERE generado:
// COUNT(*) sin paginación y la página ordenada. Las lecturas no van en
// transacción; bajo escrituras concurrentes total y filas pueden divergir
// (comportamiento aceptado, no un bug a corregir en silencio).
func (r *EmployeeRepo) List(ctx context.Context, f repository.EmployeeFilter) ([]entity.Employee, int, error) {
	where, args := buildEmployeeWhere(f)
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	var total int
	countSQL := "SELECT COUNT(*) FROM employees e " + where
	if err := r.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, storeErr("count employees", err, "filter", f)
	}

	pageSQL := fmt.Sprintf(
		"SELECT %s FROM employees e %s %s LIMIT $%d OFFSET $%d",
		employeeColumns, where, orderClause(f.OrderBy, f.Direction), len(args)+1, len(args)+2,
	)
	rows, err := r.pool.Query(ctx, pageSQL, append(args, f.Limit, f.Offset)...)
	if err != nil {
		return nil, 0, storeErr("list employees", err, "filter", f)
	}
	defer rows.Close()

	list, err := scanEmployees(rows)
	if err != nil {
		return nil, 0, storeErr("scan employees", err)
	}
	return list, total, nil
}

// GetByID obtiene la fila cruda del empleado; nil si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, empNo int) (*entity.Employee, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	query := "SELECT " + employeeColumns + " FROM employees e WHERE e.emp_no = $1"
	var e entity.Employee
	err := r.pool.QueryRow(ctx, query, empNo).Scan(
		&e.EmpNo, &e.BirthDate, &e.FirstName, &e.LastName, &e.Gender, &e.HireDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get employee", err, "emp_no", empNo)
	}
	return &e, nil
}

// GetFull arma la vista extendida: left joins de salario, título y
// departamento vigentes vía el sentinel. Un empleado entre asignaciones
// devuelve NULL en esa faceta, nunca error.
func (r *EmployeeRepo) GetFull(ctx context.Context, empNo int) (*entity.EmployeeFull, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT ` + employeeColumns + `,
		       s.salary    AS current_salary,
		       t.title     AS current_title,
		       d.dept_no   AS current_dept_no,
		       d.dept_name AS current_dept_name
		FROM employees e
		LEFT JOIN salaries s  ON s.emp_no = e.emp_no  AND s.to_date  = $2
		LEFT JOIN titles t    ON t.emp_no = e.emp_no  AND t.to_date  = $2
		LEFT JOIN dept_emp de ON de.emp_no = e.emp_no AND de.to_date = $2
		LEFT JOIN departments d ON d.dept_no = de.dept_no
		WHERE e.emp_no = $1
		LIMIT 1`
	var full entity.EmployeeFull
	err := r.pool.QueryRow(ctx, query, empNo, entity.SentinelEndDate).Scan(
		&full.EmpNo, &full.BirthDate, &full.FirstName, &full.LastName, &full.Gender, &full.HireDate,
		&full.CurrentSalary, &full.CurrentTitle, &full.CurrentDeptNo, &full.CurrentDeptName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get employee full", err, "emp_no", empNo)
	}
	return &full, nil
}

// Search busca por nombre, apellido o la concatenación "nombre apellido".
func (r *EmployeeRepo) Search(ctx context.Context, q string, limit int) ([]entity.Employee, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.first_name ILIKE $1
		   OR e.last_name  ILIKE $1
		   OR (e.first_name || ' ' || e.last_name) ILIKE $1
		ORDER BY e.emp_no
		LIMIT $2`
	rows, err := r.pool.Query(ctx, query, "%"+q+"%", limit)
	if err != nil {
		return nil, storeErr("search employees", err, "q", q)
	}
	defer rows.Close()

	list, err := scanEmployees(rows)
	if err != nil {
		return nil, storeErr("scan search employees", err)
	}
	return list, nil
}

// ListByDepartment pagina los empleados con asignación vigente en deptNo.
// La comparación del código es case-insensitive: el catálogo guarda d005 pero
// el llamador puede enviar D005.
func (r *EmployeeRepo) ListByDepartment(ctx context.Context, deptNo string, limit, offset int) ([]entity.Employee, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN dept_emp de ON de.emp_no = e.emp_no
		WHERE upper(de.dept_no) = upper($1)
		  AND de.to_date = $2
		ORDER BY e.emp_no
		LIMIT $3 OFFSET $4`
	rows, err := r.pool.Query(ctx, query, deptNo, entity.SentinelEndDate, limit, offset)
	if err != nil {
		return nil, storeErr("list employees by department", err, "dept_no", deptNo)
	}
	defer rows.Close()

	list, err := scanEmployees(rows)
	if err != nil {
		return nil, storeErr("scan employees by department", err)
	}
	return list, nil
}

// SalaryHistory historial de salarios, más reciente primero; solo la fila
// vigente si currentOnly.
func (r *EmployeeRepo) SalaryHistory(ctx context.Context, empNo int, currentOnly bool) ([]entity.SalaryRecord, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	query := "SELECT salary, from_date, to_date FROM salaries WHERE emp_no = $1"
	args := []interface{}{empNo}
	if currentOnly {
		query += " AND to_date = $2"
		args = append(args, entity.SentinelEndDate)
	}
	query += fmt.Sprintf(" ORDER BY from_date DESC LIMIT %d", historyLimit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("salary history", err, "emp_no", empNo)
	}
	defer rows.Close()

	var list []entity.SalaryRecord
	for rows.Next() {
		var s entity.SalaryRecord
		if err := rows.Scan(&s.Salary, &s.FromDate, &s.ToDate); err != nil {
			return nil, storeErr("scan salary", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// TitleHistory historial de títulos, misma forma temporal que SalaryHistory.
func (r *EmployeeRepo) TitleHistory(ctx context.Context, empNo int, currentOnly bool) ([]entity.TitleRecord, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	query := "SELECT title, from_date, to_date FROM titles WHERE emp_no = $1"
	args := []interface{}{empNo}
	if currentOnly {
		query += " AND to_date = $2"
		args = append(args, entity.SentinelEndDate)
	}
	query += fmt.Sprintf(" ORDER BY from_date DESC LIMIT %d", historyLimit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("title history", err, "emp_no", empNo)
	}
	defer rows.Close()

	var list []entity.TitleRecord
	for rows.Next() {
		var t entity.TitleRecord
		if err := rows.Scan(&t.Title, &t.FromDate, &t.ToDate); err != nil {
			return nil, storeErr("scan title", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// DepartmentHistory historial de departamentos del empleado con nombre resuelto.
func (r *EmployeeRepo) DepartmentHistory(ctx context.Context, empNo int, currentOnly bool) ([]entity.DepartmentAssignment, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT d.dept_no, d.dept_name, de.from_date, de.to_date
		FROM dept_emp de
		JOIN departments d ON d.dept_no = de.dept_no
		WHERE de.emp_no = $1`
	args := []interface{}{empNo}
	if currentOnly {
		query += " AND de.to_date = $2"
		args = append(args, entity.SentinelEndDate)
	}
	query += fmt.Sprintf(" ORDER BY de.from_date DESC LIMIT %d", historyLimit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("department history", err, "emp_no", empNo)
	}
	defer rows.Close()

	var list []entity.DepartmentAssignment
	for rows.Next() {
		var d entity.DepartmentAssignment
		if err := rows.Scan(&d.DeptNo, &d.DeptName, &d.FromDate, &d.ToDate); err != nil {
			return nil, storeErr("scan department assignment", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// NextEmpNo calcula max(emp_no)+1. No es una reserva: dos llamadas concurrentes
// pueden devolver el mismo valor y la inserción perdedora termina en ErrDuplicate.
func (r *EmployeeRepo) NextEmpNo(ctx context.Context) (int, error) {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	var next int
	err := r.pool.QueryRow(ctx, "SELECT COALESCE(MAX(emp_no), 0) + 1 FROM employees").Scan(&next)
	if err != nil {
		return 0, storeErr("next emp_no", err)
	}
	return next, nil
}

// Create persiste un nuevo empleado. emp_no duplicado -> ErrDuplicate.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO employees (emp_no, birth_date, first_name, last_name, gender, hire_date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		e.EmpNo, e.BirthDate, e.FirstName, e.LastName, e.Gender, e.HireDate,
	)
	if err != nil {
		return storeErr("insert employee", err, "emp_no", e.EmpNo)
	}
	return nil
}

// Update reescribe todos los campos del registro (reemplazo completo).
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	query := `
		UPDATE employees
		SET birth_date = $2, first_name = $3, last_name = $4, gender = $5, hire_date = $6
		WHERE emp_no = $1`
	_, err := r.pool.Exec(ctx, query,
		e.EmpNo, e.BirthDate, e.FirstName, e.LastName, e.Gender, e.HireDate,
	)
	if err != nil {
		return storeErr("update employee", err, "emp_no", e.EmpNo)
	}
	return nil
}

// Delete elimina el empleado. Filas dependientes sin cascade -> ErrConflict.
func (r *EmployeeRepo) Delete(ctx context.Context, empNo int) error {
	ctx, cancel := opContext(ctx, r.timeout)
	defer cancel()

	_, err := r.pool.Exec(ctx, "DELETE FROM employees WHERE emp_no = $1", empNo)
	if err != nil {
		return storeErr("delete employee", err, "emp_no", empNo)
	}
	return nil
}

func scanEmployees(rows pgx.Rows) ([]entity.Employee, error) {
	var list []entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.EmpNo, &e.BirthDate, &e.FirstName, &e.LastName, &e.Gender, &e.HireDate); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
