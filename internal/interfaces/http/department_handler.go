package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/employees-api/internal/application/usecase"
)

// DepartmentHandler maneja el catálogo de departamentos y sus empleados vigentes.
type DepartmentHandler struct {
	deptUC *usecase.DepartmentUseCase
	empUC  *usecase.EmployeeUseCase
}

// NewDepartmentHandler construye el handler.
func NewDepartmentHandler(deptUC *usecase.DepartmentUseCase, empUC *usecase.EmployeeUseCase) *DepartmentHandler {
	return &DepartmentHandler{deptUC: deptUC, empUC: empUC}
}

// List godoc
// @Summary      Catálogo de departamentos
// @Tags         departments
// @Produce      json
// @Success      200  {array}  dto.DepartmentResponse
// @Router       /departments [get]
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	out, err := h.deptUC.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Employees godoc
// @Summary      Empleados vigentes del departamento (paginado)
// @Tags         departments
// @Produce      json
// @Param        dept_no  path   string  true   "código, ej. d005"
// @Param        limit    query  int     false  "1..100, default 20"
// @Param        offset   query  int     false  ">=0, default 0"
// @Success      200  {array}   dto.EmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /departments/{dept_no}/employees [get]
func (h *DepartmentHandler) Employees(c *fiber.Ctx) error {
	out, err := h.empUC.ListByDepartment(
		c.UserContext(),
		c.Params("dept_no"),
		c.QueryInt("limit", 20),
		c.QueryInt("offset", 0),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
