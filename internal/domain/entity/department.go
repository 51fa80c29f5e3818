package entity

// Department catálogo estático de departamentos; no se expone create/update/delete.
type Department struct {
	DeptNo   string // código, ej. "d005"
	DeptName string
}
