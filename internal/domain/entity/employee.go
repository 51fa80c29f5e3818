package entity

import "time"

// SentinelEndDate marca el registro vigente en las tablas versionadas
// (salaries, titles, dept_emp). Es una fecha literal lejana, nunca NULL.
const SentinelEndDate = "9999-01-01"

// DateLayout formato de fecha usado en toda la API (entrada y salida).
const DateLayout = "2006-01-02"

// IsCurrent indica si una fecha de fin corresponde al sentinel de registro vigente.
func IsCurrent(to time.Time) bool {
	return to.Format(DateLayout) == SentinelEndDate
}

// Employee fila de la tabla employees. La propiedad del dato es de la base;
// no existe grafo de objetos en memoria.
type Employee struct {
	EmpNo     int
	BirthDate time.Time
	FirstName string
	LastName  string
	Gender    string // M | F
	HireDate  time.Time
}

// EmployeeFull empleado con sus facetas vigentes resueltas por left join
// contra el sentinel. Cada faceta es nullable: un empleado entre asignaciones
// devuelve nil en esa faceta, no un error.
type EmployeeFull struct {
	Employee
	CurrentSalary   *int
	CurrentTitle    *string
	CurrentDeptNo   *string
	CurrentDeptName *string
}

// SalaryRecord fila de salaries. Las filas de un empleado forman una secuencia
// temporal sin solapes; a lo sumo una vigente (to_date = sentinel).
type SalaryRecord struct {
	Salary   int
	FromDate time.Time
	ToDate   time.Time
}

// TitleRecord fila de titles, misma forma temporal que SalaryRecord.
type TitleRecord struct {
	Title    string
	FromDate time.Time
	ToDate   time.Time
}

// DepartmentAssignment fila de dept_emp con el nombre del departamento resuelto.
type DepartmentAssignment struct {
	DeptNo   string
	DeptName string
	FromDate time.Time
	ToDate   time.Time
}
