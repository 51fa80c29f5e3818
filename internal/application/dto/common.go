package dto

// ErrorResponse cuerpo de error HTTP: {error: <mensaje>}.
// Detail solo se llena en development (diagnóstico de create); nunca expone
// códigos crudos del driver en producción.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// ClampLimit acota limit a [1,100] con 20 por defecto.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}

// ClampOffset acota offset a >= 0.
func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
