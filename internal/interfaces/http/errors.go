package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/employees-api/internal/application/dto"
	"github.com/jhoicas/employees-api/internal/domain"
)

// errorBody mapea un error de dominio al status HTTP y al cuerpo {error}.
// Los 4xx de validación conservan el mensaje (siempre corregible por el
// llamador); los fallos internos devuelven un mensaje genérico sin detalles
// del driver.
func errorBody(err error) (int, dto.ErrorResponse) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		msg := strings.TrimPrefix(err.Error(), domain.ErrInvalidInput.Error()+": ")
		return fiber.StatusBadRequest, dto.ErrorResponse{Error: msg}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Error: "Empleado no encontrado"}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Error: "Conflicto de emp_no"}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Error: "No se puede eliminar: tiene registros relacionados"}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Error: "Credenciales inválidas"}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Error: "Acceso deshabilitado"}
	case errors.Is(err, domain.ErrUnavailable):
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Error: "Servicio no disponible, reintente"}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Error: "Error interno"}
}

// respondError escribe la respuesta de error mapeada.
func respondError(c *fiber.Ctx, err error) error {
	status, body := errorBody(err)
	return c.Status(status).JSON(body)
}
