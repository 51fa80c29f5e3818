package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/employees-api/internal/application/dto"
	"github.com/jhoicas/employees-api/internal/domain"
	"github.com/jhoicas/employees-api/internal/domain/entity"
	"github.com/jhoicas/employees-api/internal/domain/repository"
)

// orderableFields allow-list de columnas de ordenamiento del listado.
// Cualquier otro valor se rechaza antes de tocar la base.
var orderableFields = map[string]bool{
	"emp_no":     true,
	"first_name": true,
	"last_name":  true,
	"gender":     true,
	"hire_date":  true,
}

const orderableList = "emp_no, first_name, last_name, gender, hire_date"

var reDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// maxCreateAttempts reintentos ante colisión de emp_no autogenerado.
// Dos creates concurrentes pueden calcular el mismo max+1; el reintento
// recalcula y vuelve a insertar en vez de fallar al primer choque.
const maxCreateAttempts = 3

// EmployeeUseCase casos de uso de empleados: listado filtrado/paginado,
// lecturas temporales (vigente vs. historial) y mutaciones CRUD.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// List valida y normaliza el filtro, y ejecuta las dos lecturas (count + página).
// Toda validación ocurre antes de tocar el repositorio: una petición inválida
// nunca consume conexión del pool.
func (uc *EmployeeUseCase) List(ctx context.Context, in dto.ListEmployeesRequest) (*dto.EmployeeListResponse, error) {
	gender := strings.ToUpper(strings.TrimSpace(in.Gender))
	if gender != "" && gender != "M" && gender != "F" {
		return nil, domain.Invalidf("gender debe ser M o F")
	}
	if in.BirthDate != "" && !reDate.MatchString(in.BirthDate) {
		return nil, domain.Invalidf("birth_date debe ser YYYY-MM-DD")
	}
	if in.HireDate != "" && !reDate.MatchString(in.HireDate) {
		return nil, domain.Invalidf("hire_date debe ser YYYY-MM-DD")
	}

	orderBy := in.OrderBy
	if orderBy == "" {
		orderBy = "emp_no"
	}
	if !orderableFields[orderBy] {
		return nil, domain.Invalidf("orderBy inválido; permitidos: %s", orderableList)
	}
	direction := "asc"
	if strings.EqualFold(in.Direction, "desc") {
		direction = "desc"
	}

	f := repository.EmployeeFilter{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Gender:    gender,
		BirthDate: in.BirthDate,
		HireDate:  in.HireDate,
		OrderBy:   orderBy,
		Direction: direction,
		Limit:     dto.ClampLimit(in.Limit),
		Offset:    dto.ClampOffset(in.Offset),
	}

	rows, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.EmployeeListResponse{
		Rows:   make([]dto.EmployeeResponse, 0, len(rows)),
		Total:  total,
		Limit:  f.Limit,
		Offset: f.Offset,
	}
	for _, e := range rows {
		out.Rows = append(out.Rows, toEmployeeResponse(e))
	}
	return out, nil
}

// GetByID devuelve la fila cruda del empleado o ErrNotFound.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, empNo int) (*dto.EmployeeResponse, error) {
	e, err := uc.repo.GetByID(ctx, empNo)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	resp := toEmployeeResponse(*e)
	return &resp, nil
}

// GetFull devuelve el empleado con salario/título/departamento vigentes (nullables).
func (uc *EmployeeUseCase) GetFull(ctx context.Context, empNo int) (*dto.EmployeeFullResponse, error) {
	e, err := uc.repo.GetFull(ctx, empNo)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.EmployeeFullResponse{
		EmployeeResponse: toEmployeeResponse(e.Employee),
		CurrentSalary:    e.CurrentSalary,
		CurrentTitle:     e.CurrentTitle,
		CurrentDeptNo:    e.CurrentDeptNo,
		CurrentDeptName:  e.CurrentDeptName,
	}, nil
}

// Search búsqueda rápida por nombre, apellido o "nombre apellido".
func (uc *EmployeeUseCase) Search(ctx context.Context, q string, limit int) ([]dto.EmployeeResponse, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, domain.Invalidf("parámetro q requerido")
	}
	rows, err := uc.repo.Search(ctx, q, dto.ClampLimit(limit))
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// ListByDepartment empleados con asignación vigente en el departamento dado.
// El código se normaliza a mayúsculas; el adaptador compara sin distinguir
// mayúsculas, así d005 y D005 son el mismo departamento.
func (uc *EmployeeUseCase) ListByDepartment(ctx context.Context, deptNo string, limit, offset int) ([]dto.EmployeeResponse, error) {
	deptNo = strings.ToUpper(strings.TrimSpace(deptNo))
	if deptNo == "" {
		return nil, domain.Invalidf("dept_no inválido")
	}
	rows, err := uc.repo.ListByDepartment(ctx, deptNo, dto.ClampLimit(limit), dto.ClampOffset(offset))
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(rows))
	for _, e := range rows {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Salaries historial de salarios (vigente únicamente si currentOnly).
func (uc *EmployeeUseCase) Salaries(ctx context.Context, empNo int, currentOnly bool) ([]dto.SalaryResponse, error) {
	rows, err := uc.repo.SalaryHistory(ctx, empNo, currentOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalaryResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, dto.SalaryResponse{
			Salary:   s.Salary,
			FromDate: s.FromDate.Format(entity.DateLayout),
			ToDate:   s.ToDate.Format(entity.DateLayout),
		})
	}
	return out, nil
}

// Titles historial de títulos (vigente únicamente si currentOnly).
func (uc *EmployeeUseCase) Titles(ctx context.Context, empNo int, currentOnly bool) ([]dto.TitleResponse, error) {
	rows, err := uc.repo.TitleHistory(ctx, empNo, currentOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TitleResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, dto.TitleResponse{
			Title:    t.Title,
			FromDate: t.FromDate.Format(entity.DateLayout),
			ToDate:   t.ToDate.Format(entity.DateLayout),
		})
	}
	return out, nil
}

// Departments historial de departamentos del empleado, con nombre resuelto.
func (uc *EmployeeUseCase) Departments(ctx context.Context, empNo int, currentOnly bool) ([]dto.DepartmentAssignmentResponse, error) {
	rows, err := uc.repo.DepartmentHistory(ctx, empNo, currentOnly)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DepartmentAssignmentResponse, 0, len(rows))
	for _, d := range rows {
		out = append(out, dto.DepartmentAssignmentResponse{
			DeptNo:   d.DeptNo,
			DeptName: d.DeptName,
			FromDate: d.FromDate.Format(entity.DateLayout),
			ToDate:   d.ToDate.Format(entity.DateLayout),
		})
	}
	return out, nil
}

// Create valida el cuerpo completo y persiste. Con emp_no explícito no hay
// reintento: un duplicado es Conflict del llamador. Sin emp_no se calcula
// max+1 y se reintenta acotadamente si otro create ganó la carrera.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeCreatedResponse, error) {
	e, err := validateEmployeeFields(in)
	if err != nil {
		return nil, err
	}

	if in.EmpNo != nil {
		if *in.EmpNo <= 0 {
			return nil, domain.Invalidf("emp_no debe ser entero positivo")
		}
		e.EmpNo = *in.EmpNo
		if err := uc.repo.Create(ctx, e); err != nil {
			return nil, err
		}
		return createdResponse(e), nil
	}

	var lastErr error
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		next, err := uc.repo.NextEmpNo(ctx)
		if err != nil {
			return nil, err
		}
		e.EmpNo = next
		lastErr = uc.repo.Create(ctx, e)
		if lastErr == nil {
			return createdResponse(e), nil
		}
		if !errors.Is(lastErr, domain.ErrDuplicate) {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

// Update reemplaza todos los campos del registro (sin patch parcial); el
// destino debe existir. Devuelve el registro releído tras la escritura.
func (uc *EmployeeUseCase) Update(ctx context.Context, empNo int, in dto.CreateEmployeeRequest) (*dto.EmployeeUpdatedResponse, error) {
	e, err := validateEmployeeFields(in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByID(ctx, empNo)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	e.EmpNo = empNo
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(ctx, empNo)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.EmployeeUpdatedResponse{
		OK:      true,
		Message: "Empleado actualizado",
		Data:    toEmployeeResponse(*updated),
	}, nil
}

// Delete elimina el empleado. Si tiene filas dependientes en salaries/titles/
// dept_emp el adaptador devuelve ErrConflict y la fila queda intacta.
func (uc *EmployeeUseCase) Delete(ctx context.Context, empNo int) (*dto.EmployeeDeletedResponse, error) {
	existing, err := uc.repo.GetByID(ctx, empNo)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, empNo); err != nil {
		return nil, err
	}
	return &dto.EmployeeDeletedResponse{OK: true, Deleted: 1}, nil
}

// validateEmployeeFields aplica la validación de create/update: todos los
// campos requeridos, gender M/F, fechas YYYY-MM-DD parseables.
func validateEmployeeFields(in dto.CreateEmployeeRequest) (*entity.Employee, error) {
	gender := strings.ToUpper(strings.TrimSpace(in.Gender))
	required := []struct {
		name, value string
	}{
		{"birth_date", in.BirthDate},
		{"first_name", in.FirstName},
		{"last_name", in.LastName},
		{"gender", gender},
		{"hire_date", in.HireDate},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, domain.Invalidf("falta el campo requerido: %s", r.name)
		}
	}
	if gender != "M" && gender != "F" {
		return nil, domain.Invalidf("gender debe ser M o F")
	}
	if !reDate.MatchString(in.BirthDate) || !reDate.MatchString(in.HireDate) {
		return nil, domain.Invalidf("birth_date y hire_date deben ser YYYY-MM-DD")
	}
	birth, err := time.Parse(entity.DateLayout, in.BirthDate)
	if err != nil {
		return nil, domain.Invalidf("birth_date no es una fecha válida")
	}
	hire, err := time.Parse(entity.DateLayout, in.HireDate)
	if err != nil {
		return nil, domain.Invalidf("hire_date no es una fecha válida")
	}
	return &entity.Employee{
		BirthDate: birth,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Gender:    gender,
		HireDate:  hire,
	}, nil
}

func createdResponse(e *entity.Employee) *dto.EmployeeCreatedResponse {
	return &dto.EmployeeCreatedResponse{
		OK:      true,
		Message: "Empleado creado",
		EmpNo:   e.EmpNo,
		Data:    toEmployeeResponse(*e),
	}
}

func toEmployeeResponse(e entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		EmpNo:     e.EmpNo,
		BirthDate: e.BirthDate.Format(entity.DateLayout),
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Gender:    e.Gender,
		HireDate:  e.HireDate.Format(entity.DateLayout),
	}
}
