package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/employees-api/internal/domain/repository"
)

// employeeWhere acumula los predicados enumerados del filtro con binds
// posicionales. Nunca se concatena entrada del usuario en el SQL: cada valor
// viaja como parámetro.
type employeeWhere struct {
	clauses []string
	args    []interface{}
}

// add agrega un predicado cuyo placeholder se numera según la posición del bind.
// expr debe contener un único verbo %d para el placeholder.
func (w *employeeWhere) add(expr string, value interface{}) {
	w.args = append(w.args, value)
	w.clauses = append(w.clauses, fmt.Sprintf(expr, len(w.args)))
}

// buildEmployeeWhere genera la cláusula WHERE compartida por el COUNT y la
// página del listado. Ambas lecturas deben usar exactamente este texto y estos
// argumentos; es la propiedad que mantiene consistente la paginación.
func buildEmployeeWhere(f repository.EmployeeFilter) (string, []interface{}) {
	var w employeeWhere
	if f.FirstName != "" {
		w.add("e.first_name ILIKE $%d", "%"+f.FirstName+"%")
	}
	if f.LastName != "" {
		w.add("e.last_name ILIKE $%d", "%"+f.LastName+"%")
	}
	if f.Gender != "" {
		w.add("e.gender = $%d", f.Gender)
	}
	if f.BirthDate != "" {
		w.add("e.birth_date = $%d", f.BirthDate)
	}
	if f.HireDate != "" {
		w.add("e.hire_date = $%d", f.HireDate)
	}
	if len(w.clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(w.clauses, " AND "), w.args
}

// orderColumns mapa fijo de campos ordenables a columnas. El caso de uso ya
// validó contra la allow-list; valores fuera del mapa caen en emp_no.
var orderColumns = map[string]string{
	"emp_no":     "e.emp_no",
	"first_name": "e.first_name",
	"last_name":  "e.last_name",
	"gender":     "e.gender",
	"hire_date":  "e.hire_date",
}

// orderClause genera el ORDER BY con emp_no ASC como desempate secundario,
// para que la paginación sea determinista ante valores repetidos.
func orderClause(orderBy, direction string) string {
	col, ok := orderColumns[orderBy]
	if !ok {
		col = "e.emp_no"
	}
	dir := "ASC"
	if strings.EqualFold(direction, "desc") {
		dir = "DESC"
	}
	if col == "e.emp_no" {
		return fmt.Sprintf("ORDER BY e.emp_no %s", dir)
	}
	return fmt.Sprintf("ORDER BY %s %s, e.emp_no ASC", col, dir)
}
