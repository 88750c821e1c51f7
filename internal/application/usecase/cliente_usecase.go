package usecase

import (
	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// ClienteUseCase casos de uso CRUD para clientes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create crea un cliente del usuario y retorna su id.
func (uc *ClienteUseCase) Create(usuarioID int64, in dto.ClienteRequest) (int64, error) {
	if in.Nombre == "" {
		return 0, domain.ErrInvalidInput
	}
	return uc.repo.Create(&entity.Cliente{
		UsuarioID: usuarioID,
		Nombre:    in.Nombre,
		Contacto:  in.Contacto,
	})
}

// List lista los clientes del usuario, con filtro opcional por nombre.
func (uc *ClienteUseCase) List(usuarioID int64, search string) ([]dto.ClienteResponse, error) {
	clientes, err := uc.repo.List(usuarioID, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, dto.ClienteResponse{
			ID:            c.ID,
			Nombre:        c.Nombre,
			Contacto:      c.Contacto,
			FechaRegistro: c.FechaRegistro,
		})
	}
	return out, nil
}

// Update actualiza un cliente del usuario. Retorna ErrNotFound si no existe.
func (uc *ClienteUseCase) Update(id, usuarioID int64, in dto.ClienteRequest) error {
	if in.Nombre == "" {
		return domain.ErrInvalidInput
	}
	ok, err := uc.repo.Update(&entity.Cliente{
		ID:        id,
		UsuarioID: usuarioID,
		Nombre:    in.Nombre,
		Contacto:  in.Contacto,
	})
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente del usuario.
func (uc *ClienteUseCase) Delete(id, usuarioID int64) error {
	ok, err := uc.repo.Delete(id, usuarioID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
