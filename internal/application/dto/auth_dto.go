package dto

// LoginRequest cuerpo de POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser datos básicos del usuario autenticado.
type AuthUser struct {
	EmpNo int    `json:"emp_no"`
	Email string `json:"email"`
	Name  string `json:"name"` // "first_name last_name"
}

// LoginResponse respuesta de login correcto.
type LoginResponse struct {
	OK    bool     `json:"ok"`
	User  AuthUser `json:"user"`
	Token string   `json:"token,omitempty"`
}
