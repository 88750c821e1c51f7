package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventaplus/ventaplus-api/internal/application/auth"
	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	pkgjwt "github.com/ventaplus/ventaplus-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

type fakeUsuarioRepo struct {
	porEmail map[string]*entity.Usuario
	nextID   int64
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{porEmail: make(map[string]*entity.Usuario)}
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	f.nextID++
	u.ID = f.nextID
	f.porEmail[u.Email] = u
	return nil
}

func (f *fakeUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	u, ok := f.porEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	for _, u := range f.porEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func newUseCase() (*auth.UseCase, *fakeUsuarioRepo) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewUseCase(repo, auth.TokenConfig{
		Secret:     testSecret,
		Issuer:     "ventaplus-test",
		ExpMinutes: 60,
	})
	return uc, repo
}

func TestRegister_EmiteTokenValido(t *testing.T) {
	uc, repo := newUseCase()

	resp, err := uc.Register(dto.RegisterRequest{
		Nombre:   "María",
		Email:    "maria@tienda.pe",
		Password: "secreto123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, repo.porEmail["maria@tienda.pe"].ID, userID,
		"el token debe llevar el id del usuario recién creado")
}

func TestRegister_NoGuardaPasswordEnClaro(t *testing.T) {
	uc, repo := newUseCase()

	_, err := uc.Register(dto.RegisterRequest{
		Nombre:   "María",
		Email:    "maria@tienda.pe",
		Password: "secreto123",
	})
	require.NoError(t, err)

	hash := repo.porEmail["maria@tienda.pe"].PasswordHash
	assert.NotEqual(t, "secreto123", hash)
	assert.NotContains(t, hash, "secreto123")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Register(dto.RegisterRequest{Nombre: "A", Email: "a@b.c", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Nombre: "Otro", Email: "a@b.c", Password: "distinta456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Register(dto.RegisterRequest{Nombre: "A", Email: "a@b.c", Password: "secreto123"})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "a@b.c", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

// Contraseña incorrecta y correo inexistente producen el mismo error para no
// filtrar qué correos están registrados.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.Register(dto.RegisterRequest{Nombre: "A", Email: "a@b.c", Password: "secreto123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.c", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "noexiste@b.c", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
