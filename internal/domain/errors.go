package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Los handlers HTTP los mapean
// a códigos de estado; ningún detalle del driver llega al cliente.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con registros relacionados")
	ErrUnauthorized = errors.New("credenciales inválidas")
	ErrForbidden    = errors.New("acceso deshabilitado")
	ErrUnavailable  = errors.New("almacenamiento no disponible")
)

// Invalidf construye un error de validación con mensaje para el cliente,
// manteniendo errors.Is(err, ErrInvalidInput).
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
