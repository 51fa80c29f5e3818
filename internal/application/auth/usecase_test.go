package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/employees-api/internal/application/auth"
	"github.com/jhoicas/employees-api/internal/application/dto"
	"github.com/jhoicas/employees-api/internal/domain"
	"github.com/jhoicas/employees-api/internal/domain/entity"
	"github.com/jhoicas/employees-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/employees-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "employees-api-test"
	testExpMin = 60
)

// fakeCredRepo credenciales en memoria, indexadas por email en minúsculas.
type fakeCredRepo struct {
	creds map[string]entity.Credential
}

func (r *fakeCredRepo) FindByEmail(_ context.Context, email string) (*entity.Credential, error) {
	if c, ok := r.creds[email]; ok {
		return &c, nil
	}
	return nil, nil
}

var _ repository.CredentialRepository = (*fakeCredRepo)(nil)

func newAuthUC(t *testing.T, creds ...entity.Credential) *auth.AuthUseCase {
	t.Helper()
	repo := &fakeCredRepo{creds: make(map[string]entity.Credential)}
	for _, c := range creds {
		repo.creds[c.Email] = c
	}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
}

func credWithPassword(t *testing.T, password string) entity.Credential {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return entity.Credential{
		EmpNo:        10001,
		Email:        "mary.reyes@empresa.com",
		PasswordHash: string(hash),
		Access:       "Y",
		FirstName:    "Mary",
		LastName:     "Reyes",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_OK_DevuelveUsuarioYToken(t *testing.T) {
	uc := newAuthUC(t, credWithPassword(t, "123456"))

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "mary.reyes@empresa.com",
		Password: "123456",
	})
	require.NoError(t, err)

	assert.True(t, out.OK)
	assert.Equal(t, 10001, out.User.EmpNo)
	assert.Equal(t, "Mary Reyes", out.User.Name, "el nombre es first_name + last_name")
	require.NotEmpty(t, out.Token)

	claims, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err, "el token emitido debe validar con el mismo secret")
	assert.Equal(t, 10001, claims.EmpNo)
	assert.Equal(t, "mary.reyes@empresa.com", claims.Email)
}

func TestLogin_EmailSeNormaliza(t *testing.T) {
	uc := newAuthUC(t, credWithPassword(t, "123456"))

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "  MARY.Reyes@Empresa.com  ",
		Password: "123456",
	})
	require.NoError(t, err)
	assert.Equal(t, 10001, out.User.EmpNo)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newAuthUC(t, credWithPassword(t, "123456"))

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "mary.reyes@empresa.com",
		Password: "equivocado",
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Anti-enumeración: email inexistente y password incorrecto deben producir
// exactamente el mismo error, sin pista de cuál de los dos falló.
func TestLogin_EmailInexistente_MismoErrorQuePasswordMalo(t *testing.T) {
	uc := newAuthUC(t, credWithPassword(t, "123456"))

	_, errNoExiste := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@empresa.com",
		Password: "123456",
	})
	_, errPassMalo := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "mary.reyes@empresa.com",
		Password: "equivocado",
	})

	assert.ErrorIs(t, errNoExiste, domain.ErrUnauthorized)
	assert.Equal(t, errPassMalo, errNoExiste)
}

func TestLogin_CuentaDeshabilitada(t *testing.T) {
	cred := credWithPassword(t, "123456")
	cred.Access = "N"
	uc := newAuthUC(t, cred)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "mary.reyes@empresa.com",
		Password: "123456",
	})

	assert.ErrorIs(t, err, domain.ErrForbidden,
		"cuenta deshabilitada se distingue de credenciales malas")
}

func TestLogin_CamposFaltantes(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "a@b.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un hash que no es bcrypt (p. ej. una cuenta legacy con password en texto
// plano) nunca autentica: la comparación plana quedó eliminada.
func TestLogin_HashLegacyNoBcrypt_Falla(t *testing.T) {
	cred := credWithPassword(t, "123456")
	cred.PasswordHash = "123456" // texto plano del sistema anterior
	uc := newAuthUC(t, cred)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "mary.reyes@empresa.com",
		Password: "123456",
	})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
