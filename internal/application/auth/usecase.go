package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/employees-api/internal/application/dto"
	"github.com/jhoicas/employees-api/internal/domain"
	"github.com/jhoicas/employees-api/internal/domain/repository"
	"github.com/jhoicas/employees-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login contra employee_auth.
// La verificación es únicamente bcrypt; la comparación en texto plano del
// sistema anterior quedó eliminada y las cuentas legacy no autentican.
type AuthUseCase struct {
	credRepo repository.CredentialRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(credRepo repository.CredentialRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{credRepo: credRepo, jwtCfg: jwtCfg}
}

// dummyHash se compara cuando el email no existe, para que el costo del
// login no distinga cuentas existentes de inexistentes.
var dummyHash = []byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0CwG/2dYsbeiGkhJ3bCMBoSUxS6")

// Login verifica email/password. Email inexistente y password incorrecto
// producen exactamente el mismo error (anti-enumeración); cuenta con
// access != 'Y' produce ErrForbidden.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.Invalidf("email y password son requeridos")
	}

	cred, err := uc.credRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, domain.ErrUnauthorized
	}
	if !cred.Enabled() {
		return nil, domain.ErrForbidden
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	name := cred.FirstName + " " + cred.LastName
	token, err := jwt.Generate(uc.jwtCfg.Secret, cred.EmpNo, cred.Email, name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		OK:    true,
		User:  dto.AuthUser{EmpNo: cred.EmpNo, Email: cred.Email, Name: name},
		Token: token,
	}, nil
}
