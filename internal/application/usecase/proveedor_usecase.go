package usecase

import (
	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Create crea un proveedor del usuario y retorna su id.
func (uc *ProveedorUseCase) Create(usuarioID int64, in dto.ProveedorRequest) (int64, error) {
	if in.NombreEmpresa == "" {
		return 0, domain.ErrInvalidInput
	}
	return uc.repo.Create(&entity.Proveedor{
		UsuarioID:      usuarioID,
		NombreEmpresa:  in.NombreEmpresa,
		ContactoNombre: in.ContactoNombre,
		Telefono:       in.Telefono,
		Email:          in.Email,
	})
}

// List lista los proveedores del usuario, con filtro opcional por nombre.
func (uc *ProveedorUseCase) List(usuarioID int64, search string) ([]dto.ProveedorResponse, error) {
	proveedores, err := uc.repo.List(usuarioID, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for _, p := range proveedores {
		out = append(out, dto.ProveedorResponse{
			ID:             p.ID,
			NombreEmpresa:  p.NombreEmpresa,
			ContactoNombre: p.ContactoNombre,
			Telefono:       p.Telefono,
			Email:          p.Email,
		})
	}
	return out, nil
}

// Update actualiza un proveedor del usuario. Retorna ErrNotFound si no existe.
func (uc *ProveedorUseCase) Update(id, usuarioID int64, in dto.ProveedorRequest) error {
	if in.NombreEmpresa == "" {
		return domain.ErrInvalidInput
	}
	ok, err := uc.repo.Update(&entity.Proveedor{
		ID:             id,
		UsuarioID:      usuarioID,
		NombreEmpresa:  in.NombreEmpresa,
		ContactoNombre: in.ContactoNombre,
		Telefono:       in.Telefono,
		Email:          in.Email,
	})
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor del usuario. Retorna ErrReferenced si tiene
// compras asociadas.
func (uc *ProveedorUseCase) Delete(id, usuarioID int64) error {
	ok, err := uc.repo.Delete(id, usuarioID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
