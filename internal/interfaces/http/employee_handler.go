package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/employees-api/internal/application/dto"
	"github.com/jhoicas/employees-api/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones HTTP de empleados.
// debug habilita el campo detail en errores de create (solo development).
type EmployeeHandler struct {
	uc    *usecase.EmployeeUseCase
	debug bool
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, debug bool) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, debug: debug}
}

// parseEmpNo valida que el id de ruta sea un entero positivo; nunca se coerce
// en silencio.
func parseEmpNo(c *fiber.Ctx) (int, error) {
	empNo, err := strconv.Atoi(c.Params("id"))
	if err != nil || empNo <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "emp_no debe ser entero positivo")
	}
	return empNo, nil
}

// isTrue interpreta el parámetro booleano current: solo "1" y "true" son verdaderos.
func isTrue(v string) bool {
	return v == "1" || v == "true"
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg})
}

// List godoc
// @Summary      Listar empleados con filtros, orden y paginado
// @Tags         employees
// @Produce      json
// @Param        first_name  query  string  false  "substring, case-insensitive"
// @Param        last_name   query  string  false  "substring, case-insensitive"
// @Param        gender      query  string  false  "M o F"
// @Param        birth_date  query  string  false  "YYYY-MM-DD exacto"
// @Param        hire_date   query  string  false  "YYYY-MM-DD exacto"
// @Param        limit       query  int     false  "1..100, default 20"
// @Param        offset      query  int     false  ">=0, default 0"
// @Param        orderBy     query  string  false  "emp_no|first_name|last_name|gender|hire_date"
// @Param        direction   query  string  false  "asc|desc"
// @Success      200  {object}  dto.EmployeeListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	var in dto.ListEmployeesRequest
	if err := c.QueryParser(&in); err != nil {
		return badRequest(c, "parámetros de consulta inválidos")
	}
	out, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set("X-Total-Count", strconv.Itoa(out.Total))
	return c.JSON(out)
}

// Search godoc
// @Summary      Búsqueda rápida por nombre/apellido
// @Tags         employees
// @Produce      json
// @Param        q      query  string  true   "texto a buscar"
// @Param        limit  query  int     false  "1..100, default 20"
// @Success      200  {array}   dto.EmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /employees/search [get]
func (h *EmployeeHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("q"), c.QueryInt("limit", 20))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener empleado por ID
// @Tags         employees
// @Produce      json
// @Param        id  path  int  true  "emp_no"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	empNo, err := parseEmpNo(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.GetByID(c.UserContext(), empNo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetFull godoc
// @Summary      Detalle extendido (salario/título/depto vigentes)
// @Tags         employees
// @Produce      json
// @Param        id  path  int  true  "emp_no"
// @Success      200  {object}  dto.EmployeeFullResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employees/{id}/full [get]
func (h *EmployeeHandler) GetFull(c *fiber.Ctx) error {
	empNo, err := parseEmpNo(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.GetFull(c.UserContext(), empNo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Salary godoc
// @Summary      Salario vigente o historial
// @Tags         employees
// @Produce      json
// @Param        id       path   int     true   "emp_no"
// @Param        current  query  string  false  "1|true = solo vigente"
// @Success      200  {array}   dto.SalaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /employees/{id}/salary [get]
func (h *EmployeeHandler) Salary(c *fiber.Ctx) error {
	empNo, err := parseEmpNo(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	currentOnly := isTrue(c.Query("current"))
	rows, err := h.uc.Salaries(c.UserContext(), empNo, currentOnly)
	if err != nil {
		return respondError(c, err)
	}
	if currentOnly {
		if len(rows) == 0 {
			return c.JSON(nil)
		}
		return c.JSON(rows[0])
	}
	return c.JSON(rows)
}

// Titles godoc
// @Summary      Título vigente o historial
// @Tags         employees
// @Produce      json
// @Param        id       path   int     true   "emp_no"
// @Param        current  query  string  false  "1|true = solo vigente"
// @Success      200  {array}   dto.TitleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /employees/{id}/titles [get]
func (h *EmployeeHandler) Titles(c *fiber.Ctx) error {
	empNo, err := parseEmpNo(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	currentOnly := isTrue(c.Query("current"))
	rows, err := h.uc.Titles(c.UserContext(), empNo, currentOnly)
	if err != nil {
		return respondError(c, err)
	}
	if currentOnly {
		if len(rows) == 0 {
			return c.JSON(nil)
		}
		return c.JSON(rows[0])
	}
	return c.JSON(rows)
}

// Departments godoc
// @Summary      Departamentos del empleado (vigente o historial)
// @Tags         employees
// @Produce      json
// @Param        id       path   int     true   "emp_no"
// @Param        current  query  string  false  "1|true = solo vigente"
// @Success      200  {array}   dto.DepartmentAssignmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /employees/{id}/departments [get]
func (h *EmployeeHandler) Departments(c *fiber.Ctx) error {
	empNo, err := parseEmpNo(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	rows, err := h.uc.Departments(c.UserContext(), empNo, isTrue(c.Query("current")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}

// Create godoc
// @Summary      Crear empleado (emp_no opcional; autogenerado max+1)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201  {object}  dto.EmployeeCreatedResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		status, body := errorBody(err)
		if h.debug && status == fiber.StatusInternalServerError {
			body.Detail = err.Error()
		}
		return c.Status(status).JSON(body)
	}
	c.Set("Location", fmt.Sprintf("/employees/%d", out.EmpNo))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar empleado (reemplazo completo)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "emp_no"
// @Param        body  body  dto.CreateEmployeeRequest  true  "Todos los campos requeridos"
// @Success      200  {object}  dto.EmployeeUpdatedResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	empNo, err := parseEmpNo(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), empNo, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empleado
// @Tags         employees
// @Produce      json
// @Param        id  path  int  true  "emp_no"
// @Success      200  {object}  dto.EmployeeDeletedResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	empNo, err := parseEmpNo(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.Delete(c.UserContext(), empNo)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
