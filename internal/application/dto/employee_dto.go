package dto

// ListEmployeesRequest parámetros de GET /employees (fiber QueryParser).
type ListEmployeesRequest struct {
	FirstName string `query:"first_name"`
	LastName  string `query:"last_name"`
	Gender    string `query:"gender"`
	BirthDate string `query:"birth_date"`
	HireDate  string `query:"hire_date"`
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
	OrderBy   string `query:"orderBy"`
	Direction string `query:"direction"`
}

// EmployeeResponse fila de empleado en respuestas JSON (fechas YYYY-MM-DD).
type EmployeeResponse struct {
	EmpNo     int    `json:"emp_no"`
	BirthDate string `json:"birth_date"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	HireDate  string `json:"hire_date"`
}

// EmployeeListResponse contrato del listado: total es el conteo pre-paginación,
// no len(rows).
type EmployeeListResponse struct {
	Rows   []EmployeeResponse `json:"rows"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// EmployeeFullResponse detalle extendido: facetas vigentes nullables.
type EmployeeFullResponse struct {
	EmployeeResponse
	CurrentSalary   *int    `json:"current_salary"`
	CurrentTitle    *string `json:"current_title"`
	CurrentDeptNo   *string `json:"current_dept_no"`
	CurrentDeptName *string `json:"current_dept_name"`
}

// SalaryResponse registro temporal de salario.
type SalaryResponse struct {
	Salary   int    `json:"salary"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

// TitleResponse registro temporal de título.
type TitleResponse struct {
	Title    string `json:"title"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

// DepartmentAssignmentResponse pertenencia a departamento con nombre resuelto.
type DepartmentAssignmentResponse struct {
	DeptNo   string `json:"dept_no"`
	DeptName string `json:"dept_name"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

// DepartmentResponse entrada del catálogo de departamentos.
type DepartmentResponse struct {
	DeptNo   string `json:"dept_no"`
	DeptName string `json:"dept_name"`
}

// CreateEmployeeRequest cuerpo de POST /employees y PUT /employees/{id}.
// EmpNo es opcional solo en create: si viene, se usa tal cual; si no, se asigna max+1.
type CreateEmployeeRequest struct {
	EmpNo     *int   `json:"emp_no,omitempty"`
	BirthDate string `json:"birth_date"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	HireDate  string `json:"hire_date"`
}

// EmployeeCreatedResponse respuesta 201 de create.
type EmployeeCreatedResponse struct {
	OK      bool             `json:"ok"`
	Message string           `json:"message"`
	EmpNo   int              `json:"emp_no"`
	Data    EmployeeResponse `json:"data"`
}

// EmployeeUpdatedResponse respuesta de update con el registro reescrito.
type EmployeeUpdatedResponse struct {
	OK      bool             `json:"ok"`
	Message string           `json:"message"`
	Data    EmployeeResponse `json:"data"`
}

// EmployeeDeletedResponse respuesta de delete.
type EmployeeDeletedResponse struct {
	OK      bool `json:"ok"`
	Deleted int  `json:"deleted"`
}
