package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/employees-api/internal/application/dto"
	"github.com/jhoicas/employees-api/pkg/jwt"
)

const (
	localEmpNo = "auth_emp_no"
	localEmail = "auth_email"
	localName  = "auth_name"
)

// AuthMiddleware valida el Bearer token y carga los claims en locals.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Token requerido"})
		}
		claims, err := jwt.Parse(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Token inválido"})
		}
		c.Locals(localEmpNo, claims.EmpNo)
		c.Locals(localEmail, claims.Email)
		c.Locals(localName, claims.Name)
		return c.Next()
	}
}

// GetEmpNo devuelve el emp_no del token, 0 si no hay sesión.
func GetEmpNo(c *fiber.Ctx) int {
	if v, ok := c.Locals(localEmpNo).(int); ok {
		return v
	}
	return 0
}

// GetEmail devuelve el email del token.
func GetEmail(c *fiber.Ctx) string {
	if v, ok := c.Locals(localEmail).(string); ok {
		return v
	}
	return ""
}

// GetName devuelve el nombre compuesto del token.
func GetName(c *fiber.Ctx) string {
	if v, ok := c.Locals(localName).(string); ok {
		return v
	}
	return ""
}
