package usecase_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/employees-api/internal/application/dto"
	"github.com/jhoicas/employees-api/internal/application/usecase"
	"github.com/jhoicas/employees-api/internal/domain"
	"github.com/jhoicas/employees-api/internal/domain/entity"
	"github.com/jhoicas/employees-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio — en memoria, con contadores para verificar que la
// validación corta antes de tocar la persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeEmployeeRepo struct {
	employees map[int]entity.Employee
	salaries  map[int][]entity.SalaryRecord

	listCalls   int
	createCalls int
	nextCalls   int
	lastFilter  repository.EmployeeFilter
	lastDeptNo  string

	// failCreates hace fallar los próximos N Create con ErrDuplicate,
	// simulando otro proceso ganando la carrera de max+1.
	failCreates int
}

func newFakeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[int]entity.Employee),
		salaries:  make(map[int][]entity.SalaryRecord),
	}
}

func (r *fakeEmployeeRepo) sorted() []entity.Employee {
	out := make([]entity.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EmpNo < out[j].EmpNo })
	return out
}

func (r *fakeEmployeeRepo) List(_ context.Context, f repository.EmployeeFilter) ([]entity.Employee, int, error) {
	r.listCalls++
	r.lastFilter = f
	all := r.sorted()
	total := len(all)
	if f.Offset >= len(all) {
		return nil, total, nil
	}
	all = all[f.Offset:]
	if f.Limit < len(all) {
		all = all[:f.Limit]
	}
	return all, total, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, empNo int) (*entity.Employee, error) {
	if e, ok := r.employees[empNo]; ok {
		return &e, nil
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) GetFull(ctx context.Context, empNo int) (*entity.EmployeeFull, error) {
	e, err := r.GetByID(ctx, empNo)
	if err != nil || e == nil {
		return nil, err
	}
	return &entity.EmployeeFull{Employee: *e}, nil
}

func (r *fakeEmployeeRepo) Search(_ context.Context, _ string, limit int) ([]entity.Employee, error) {
	all := r.sorted()
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeEmployeeRepo) ListByDepartment(_ context.Context, deptNo string, _, _ int) ([]entity.Employee, error) {
	r.lastDeptNo = deptNo
	return r.sorted(), nil
}

func (r *fakeEmployeeRepo) SalaryHistory(_ context.Context, empNo int, currentOnly bool) ([]entity.SalaryRecord, error) {
	rows := r.salaries[empNo]
	if !currentOnly {
		return rows, nil
	}
	for _, s := range rows {
		if entity.IsCurrent(s.ToDate) {
			return []entity.SalaryRecord{s}, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) TitleHistory(_ context.Context, _ int, _ bool) ([]entity.TitleRecord, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) DepartmentHistory(_ context.Context, _ int, _ bool) ([]entity.DepartmentAssignment, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) NextEmpNo(_ context.Context) (int, error) {
	r.nextCalls++
	next := 1
	for no := range r.employees {
		if no >= next {
			next = no + 1
		}
	}
	return next, nil
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.createCalls++
	if r.failCreates > 0 {
		r.failCreates--
		return domain.ErrDuplicate
	}
	if _, ok := r.employees[e.EmpNo]; ok {
		return domain.ErrDuplicate
	}
	r.employees[e.EmpNo] = *e
	return nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.employees[e.EmpNo] = *e
	return nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, empNo int) error {
	if len(r.salaries[empNo]) > 0 {
		return domain.ErrConflict
	}
	delete(r.employees, empNo)
	return nil
}

var _ repository.EmployeeRepository = (*fakeEmployeeRepo)(nil)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(entity.DateLayout, s)
	require.NoError(t, err)
	return d
}

func seedRepo(t *testing.T) *fakeEmployeeRepo {
	t.Helper()
	repo := newFakeRepo()
	repo.employees[10001] = entity.Employee{EmpNo: 10001, BirthDate: mustDate(t, "1990-05-10"), FirstName: "Mary", LastName: "Reyes", Gender: "F", HireDate: mustDate(t, "2020-01-15")}
	repo.employees[10002] = entity.Employee{EmpNo: 10002, BirthDate: mustDate(t, "1985-11-02"), FirstName: "Jorge", LastName: "Castro", Gender: "M", HireDate: mustDate(t, "2018-06-01")}
	repo.employees[10003] = entity.Employee{EmpNo: 10003, BirthDate: mustDate(t, "1992-03-22"), FirstName: "Lucia", LastName: "Mendez", Gender: "F", HireDate: mustDate(t, "2021-09-13")}
	return repo
}

func validBody() dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		BirthDate: "1991-07-07",
		FirstName: "Ana",
		LastName:  "Pardo",
		Gender:    "F",
		HireDate:  "2022-02-02",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List — la validación corta antes de tocar el repositorio
// ──────────────────────────────────────────────────────────────────────────────

func TestList_OrderByInvalido_NoTocaElRepo(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	_, err := uc.List(context.Background(), dto.ListEmployeesRequest{OrderBy: "salary"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "orderBy inválido",
		"el mensaje debe nombrar el parámetro rechazado")
	assert.Contains(t, err.Error(), "emp_no, first_name, last_name, gender, hire_date",
		"el mensaje debe enumerar los valores permitidos")
	assert.Zero(t, repo.listCalls, "una petición inválida no debe consumir conexión")
}

func TestList_GenderInvalido(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	_, err := uc.List(context.Background(), dto.ListEmployeesRequest{Gender: "X"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, repo.listCalls)
}

func TestList_FechaMalFormada(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	_, err := uc.List(context.Background(), dto.ListEmployeesRequest{HireDate: "01/15/2020"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, repo.listCalls)
}

func TestList_ClampsYDefaults(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	out, err := uc.List(context.Background(), dto.ListEmployeesRequest{
		Limit:     500,
		Offset:    -3,
		Direction: "DESC",
	})
	require.NoError(t, err)

	assert.Equal(t, 100, repo.lastFilter.Limit, "limit por encima del máximo se acota a 100")
	assert.Equal(t, 0, repo.lastFilter.Offset, "offset negativo se acota a 0")
	assert.Equal(t, "emp_no", repo.lastFilter.OrderBy, "orderBy vacío cae en emp_no")
	assert.Equal(t, "desc", repo.lastFilter.Direction, "direction se normaliza a minúsculas")
	assert.Equal(t, 100, out.Limit)
}

func TestList_LimitCeroUsaDefault(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	out, err := uc.List(context.Background(), dto.ListEmployeesRequest{})
	require.NoError(t, err)

	assert.Equal(t, 20, out.Limit)
	assert.Equal(t, 3, out.Total, "total es el conteo pre-paginación")
	assert.Len(t, out.Rows, 3)
}

func TestList_PaginacionConsistente(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	page1, err := uc.List(context.Background(), dto.ListEmployeesRequest{Limit: 2, Offset: 0})
	require.NoError(t, err)
	require.Len(t, page1.Rows, 2)
	assert.Equal(t, 10001, page1.Rows[0].EmpNo)
	assert.Equal(t, 10002, page1.Rows[1].EmpNo)
	assert.Equal(t, 3, page1.Total)

	page2, err := uc.List(context.Background(), dto.ListEmployeesRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page2.Rows, 1)
	assert.Equal(t, 10003, page2.Rows[0].EmpNo)
	assert.Equal(t, 3, page2.Total)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create — emp_no explícito vs. autogenerado max+1 con reintento
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AutogeneraMaxMasUno(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	out, err := uc.Create(context.Background(), validBody())
	require.NoError(t, err)

	assert.True(t, out.OK)
	assert.Equal(t, 10004, out.EmpNo, "sin emp_no explícito se asigna max+1")
	assert.Equal(t, "1991-07-07", out.Data.BirthDate, "las fechas salen en YYYY-MM-DD")
}

func TestCreate_EmpNoExplicito(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	no := 20000
	in := validBody()
	in.EmpNo = &no

	out, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 20000, out.EmpNo)
	assert.Zero(t, repo.nextCalls, "con emp_no explícito no se calcula max+1")
}

func TestCreate_EmpNoExplicitoDuplicado_SinReintento(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	no := 10001 // ya existe
	in := validBody()
	in.EmpNo = &no

	_, err := uc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 1, repo.createCalls, "un duplicado explícito es conflicto del llamador, no se reintenta")
}

func TestCreate_ReintentaTrasColisionDeAutoId(t *testing.T) {
	repo := seedRepo(t)
	repo.failCreates = 1 // otro create gana la primera carrera
	uc := usecase.NewEmployeeUseCase(repo)

	out, err := uc.Create(context.Background(), validBody())
	require.NoError(t, err)

	assert.Equal(t, 2, repo.createCalls, "tras la colisión se recalcula y reintenta")
	assert.Equal(t, 2, repo.nextCalls)
	assert.True(t, out.OK)
}

func TestCreate_AgotaReintentos(t *testing.T) {
	repo := seedRepo(t)
	repo.failCreates = 10 // colisión permanente
	uc := usecase.NewEmployeeUseCase(repo)

	_, err := uc.Create(context.Background(), validBody())

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Equal(t, 3, repo.createCalls, "el reintento es acotado, no infinito")
}

func TestCreate_CampoRequeridoFaltante(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	in := validBody()
	in.FirstName = "  "

	_, err := uc.Create(context.Background(), in)

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "first_name", "el mensaje debe nombrar el campo faltante")
	assert.Zero(t, repo.createCalls)
}

func TestCreate_FechaInvalida(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	in := validBody()
	in.BirthDate = "1991-13-45" // pasa la regex, no el parseo

	_, err := uc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, repo.createCalls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Update / Delete / Search
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_NoExiste(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	_, err := uc.Update(context.Background(), 99999, validBody())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_ReemplazaYDevuelveElRegistroReleido(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	in := validBody()
	in.FirstName = "María"

	out, err := uc.Update(context.Background(), 10001, in)
	require.NoError(t, err)

	assert.True(t, out.OK)
	assert.Equal(t, "María", out.Data.FirstName)
	assert.Equal(t, 10001, out.Data.EmpNo, "el emp_no de la ruta manda, no el del cuerpo")
}

func TestDelete_ConRegistrosRelacionados(t *testing.T) {
	repo := seedRepo(t)
	repo.salaries[10001] = []entity.SalaryRecord{
		{Salary: 72000, FromDate: mustDate(t, "2020-01-15"), ToDate: mustDate(t, entity.SentinelEndDate)},
	}
	uc := usecase.NewEmployeeUseCase(repo)

	_, err := uc.Delete(context.Background(), 10001)

	assert.ErrorIs(t, err, domain.ErrConflict, "con historial dependiente el delete no procede")
	_, ok := repo.employees[10001]
	assert.True(t, ok, "la fila debe quedar intacta")
}

func TestDelete_NoExiste(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	_, err := uc.Delete(context.Background(), 99999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El código de departamento llega al puerto en su forma canónica en mayúsculas,
// sin importar cómo lo escriba el llamador: d005 y D005 consultan la misma clave.
func TestListByDepartment_NormalizaDeptNo(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	_, err := uc.ListByDepartment(context.Background(), "  d005  ", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, "D005", repo.lastDeptNo)

	_, err = uc.ListByDepartment(context.Background(), "D005", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, "D005", repo.lastDeptNo,
		"ambas escrituras del código deben producir el mismo valor canónico")
}

func TestListByDepartment_DeptNoVacio(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	_, err := uc.ListByDepartment(context.Background(), "   ", 20, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.lastDeptNo, "la validación corta antes de tocar el repositorio")
}

func TestSearch_QVacio(t *testing.T) {
	repo := seedRepo(t)
	uc := usecase.NewEmployeeUseCase(repo)

	_, err := uc.Search(context.Background(), "   ", 20)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de lecturas temporales
// ──────────────────────────────────────────────────────────────────────────────

func TestSalaries_CurrentOnlyDevuelveSoloElVigente(t *testing.T) {
	repo := seedRepo(t)
	repo.salaries[10001] = []entity.SalaryRecord{
		{Salary: 72000, FromDate: mustDate(t, "2023-01-01"), ToDate: mustDate(t, entity.SentinelEndDate)},
		{Salary: 65000, FromDate: mustDate(t, "2020-01-15"), ToDate: mustDate(t, "2023-01-01")},
	}
	uc := usecase.NewEmployeeUseCase(repo)

	rows, err := uc.Salaries(context.Background(), 10001, true)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, 72000, rows[0].Salary)
	assert.Equal(t, entity.SentinelEndDate, rows[0].ToDate, "el vigente conserva el sentinel en la salida")
}

func TestSalaries_HistorialCompleto(t *testing.T) {
	repo := seedRepo(t)
	repo.salaries[10001] = []entity.SalaryRecord{
		{Salary: 72000, FromDate: mustDate(t, "2023-01-01"), ToDate: mustDate(t, entity.SentinelEndDate)},
		{Salary: 65000, FromDate: mustDate(t, "2020-01-15"), ToDate: mustDate(t, "2023-01-01")},
	}
	uc := usecase.NewEmployeeUseCase(repo)

	rows, err := uc.Salaries(context.Background(), 10001, false)
	require.NoError(t, err)

	assert.Len(t, rows, 2)
}
