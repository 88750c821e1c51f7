package usecase

import (
	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorías de producto.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Create crea una categoría del usuario. Retorna ErrDuplicate si el nombre ya
// existe para este usuario.
func (uc *CategoriaUseCase) Create(usuarioID int64, in dto.CategoriaRequest) (int64, error) {
	if in.Nombre == "" {
		return 0, domain.ErrInvalidInput
	}
	return uc.repo.Create(&entity.Categoria{
		UsuarioID: usuarioID,
		Nombre:    in.Nombre,
	})
}

// List lista las categorías del usuario.
func (uc *CategoriaUseCase) List(usuarioID int64, search string) ([]dto.CategoriaResponse, error) {
	categorias, err := uc.repo.List(usuarioID, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoriaResponse, 0, len(categorias))
	for _, c := range categorias {
		out = append(out, dto.CategoriaResponse{ID: c.ID, Nombre: c.Nombre})
	}
	return out, nil
}

// Update renombra una categoría del usuario.
func (uc *CategoriaUseCase) Update(id, usuarioID int64, in dto.CategoriaRequest) error {
	if in.Nombre == "" {
		return domain.ErrInvalidInput
	}
	ok, err := uc.repo.Update(&entity.Categoria{
		ID:        id,
		UsuarioID: usuarioID,
		Nombre:    in.Nombre,
	})
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una categoría. Los productos de la categoría quedan con
// categoria_id en NULL (ON DELETE SET NULL), no se borran.
func (uc *CategoriaUseCase) Delete(id, usuarioID int64) error {
	ok, err := uc.repo.Delete(id, usuarioID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
