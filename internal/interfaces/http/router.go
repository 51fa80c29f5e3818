package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/employees-api/internal/application/auth"
	"github.com/jhoicas/employees-api/internal/application/dto"
	"github.com/jhoicas/employees-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmployeeUC   *usecase.EmployeeUseCase
	DepartmentUC *usecase.DepartmentUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
	Debug        bool // habilita detail en errores de create
}

// Router registra las rutas de la API. Las respuestas de la API no se cachean.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger())
	app.Use(func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store")
		return c.Next()
	})

	// Auth (público; /me requiere Bearer)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Employees
	empHandler := NewEmployeeHandler(deps.EmployeeUC, deps.Debug)
	employees := app.Group("/employees")
	employees.Get("/", empHandler.List)
	// /search antes que /:id para no colisionar con el parámetro de ruta
	employees.Get("/search", empHandler.Search)
	employees.Get("/:id", empHandler.GetByID)
	employees.Get("/:id/full", empHandler.GetFull)
	employees.Get("/:id/salary", empHandler.Salary)
	employees.Get("/:id/titles", empHandler.Titles)
	employees.Get("/:id/departments", empHandler.Departments)
	employees.Post("/", empHandler.Create)
	employees.Put("/:id", empHandler.Update)
	employees.Delete("/:id", empHandler.Delete)

	// Departments (catálogo, solo lectura)
	deptHandler := NewDepartmentHandler(deps.DepartmentUC, deps.EmployeeUC)
	departments := app.Group("/departments")
	departments.Get("/", deptHandler.List)
	departments.Get("/:dept_no/employees", deptHandler.Employees)

	// Fallback uniforme para rutas no registradas
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Ruta no encontrada"})
	})
}
