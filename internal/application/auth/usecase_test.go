package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Eventos-api/internal/application/dto"
	"github.com/jhoicas/Eventos-api/internal/domain"
	"github.com/jhoicas/Eventos-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Eventos-api/pkg/jwt"
)

// fakeUserRepo repositorio de usuarios en memoria.
type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.users))
	for _, u := range f.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func newTestAuthUC(repo *fakeUserRepo) *AuthUseCase {
	return NewAuthUseCase(repo, JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "eventos-api-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_GuardaHashNoLaContrasena(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuthUC(repo)

	resp, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "secreta123", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "ana", resp.Username)
	assert.Equal(t, "admin", resp.Role)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestRegister_RolPorDefectoEsStaff(t *testing.T) {
	uc := newTestAuthUC(newFakeUserRepo())

	resp, err := uc.Register(dto.RegisterRequest{Username: "luis", Password: "clave"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, resp.Role)
}

func TestRegister_UsernameDuplicado_RetornaErrDuplicate(t *testing.T) {
	uc := newTestAuthUC(newFakeUserRepo())

	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "clave1"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "ana", Password: "clave2"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_RolDesconocido_RetornaErrInvalidInput(t *testing.T) {
	uc := newTestAuthUC(newFakeUserRepo())

	_, err := uc.Register(dto.RegisterRequest{Username: "eva", Password: "clave", Role: "superuser"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateUser_CambiaRolYContrasena(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newTestAuthUC(repo)

	reg, err := uc.Register(dto.RegisterRequest{Username: "luis", Password: "vieja"})
	require.NoError(t, err)

	resp, err := uc.UpdateUser(reg.ID, dto.UpdateUserRequest{Password: "nueva", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.Role)

	stored := repo.users[reg.ID]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva")))

	// Con campos vacíos nada cambia
	resp, err = uc.UpdateUser(reg.ID, dto.UpdateUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, resp.Role)
}

func TestUpdateUser_RolDesconocido_RetornaErrInvalidInput(t *testing.T) {
	uc := newTestAuthUC(newFakeUserRepo())

	reg, err := uc.Register(dto.RegisterRequest{Username: "eva", Password: "clave"})
	require.NoError(t, err)

	_, err = uc.UpdateUser(reg.ID, dto.UpdateUserRequest{Role: "root"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateUser_NoExiste_RetornaErrNotFound(t *testing.T) {
	uc := newTestAuthUC(newFakeUserRepo())

	_, err := uc.UpdateUser("no-existe", dto.UpdateUserRequest{Role: "staff"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteTokenConClaims(t *testing.T) {
	uc := newTestAuthUC(newFakeUserRepo())

	reg, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "secreta123", Role: "admin"})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, reg.ID, resp.User.ID)

	userID, username, role, err := pkgjwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, "ana", username)
	assert.Equal(t, "admin", role)
}

func TestLogin_ContrasenaIncorrecta_RetornaErrUnauthorized(t *testing.T) {
	uc := newTestAuthUC(newFakeUserRepo())

	_, err := uc.Register(dto.RegisterRequest{Username: "ana", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "ana", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioNoExiste_RetornaErrUnauthorized(t *testing.T) {
	uc := newTestAuthUC(newFakeUserRepo())

	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuario inexistente y contraseña incorrecta responden igual")
}
