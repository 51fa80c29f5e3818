package entity

// Credential fila de employee_auth unida al nombre del empleado.
// Access usa el sentinel 'Y' para cuentas habilitadas.
type Credential struct {
	EmpNo        int
	Email        string
	PasswordHash string // hash bcrypt; la verificación en texto plano quedó eliminada
	Access       string // 'Y' = habilitado
	FirstName    string
	LastName     string
}

// Enabled indica si la cuenta puede iniciar sesión.
func (c Credential) Enabled() bool {
	return c.Access == "Y"
}
