package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
	"github.com/ventaplus/ventaplus-api/pkg/jwt"
)

// TokenConfig parámetros de firma del JWT emitido en register y login.
type TokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase registro e inicio de sesión. Las contraseñas se guardan con bcrypt
// y nunca salen de esta capa.
type UseCase struct {
	repo  repository.UsuarioRepository
	token TokenConfig
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(repo repository.UsuarioRepository, token TokenConfig) *UseCase {
	return &UseCase{repo: repo, token: token}
}

// Register crea la cuenta y retorna un JWT ya firmado para entrar sin login
// adicional. Retorna ErrEmailAlreadyExists si el correo ya está registrado.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.TokenResponse, error) {
	existente, err := uc.repo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &entity.Usuario{
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := uc.repo.Create(u); err != nil {
		return nil, err
	}

	return uc.emitir(u)
}

// Login verifica las credenciales y retorna un JWT. Credenciales inválidas y
// correo inexistente producen el mismo ErrUnauthorized para no filtrar qué
// correos existen.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	u, err := uc.repo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.emitir(u)
}

func (uc *UseCase) emitir(u *entity.Usuario) (*dto.TokenResponse, error) {
	token, err := jwt.Generate(uc.token.Secret, u.ID, u.Nombre, u.Email, uc.token.Issuer, uc.token.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}
