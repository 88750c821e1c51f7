package usecase

import (
	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos. El stock y el costo
// promedio cambian además vía ventas y compras, no solo por este CRUD.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Create crea un producto del usuario y retorna su id.
func (uc *ProductoUseCase) Create(usuarioID int64, in dto.ProductoRequest) (int64, error) {
	if in.Nombre == "" || in.Stock < 0 {
		return 0, domain.ErrInvalidInput
	}
	p := &entity.Producto{
		UsuarioID:     usuarioID,
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		CostoPromedio: in.CostoPromedio,
		PrecioVenta:   in.PrecioVenta,
		Stock:         in.Stock,
		CategoriaID:   in.CategoriaID,
		ImagenURL:     in.ImagenURL,
	}
	return uc.repo.Create(p)
}

// GetByID obtiene un producto del usuario; nil si no existe o es de otro usuario.
func (uc *ProductoUseCase) GetByID(id, usuarioID int64) (*dto.ProductoResponse, error) {
	p, err := uc.repo.GetByID(id, usuarioID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	resp := toProductoResponse(p)
	return &resp, nil
}

// List lista los productos del usuario, con filtro opcional por nombre.
func (uc *ProductoUseCase) List(usuarioID int64, search string) ([]dto.ProductoResponse, error) {
	productos, err := uc.repo.List(usuarioID, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		resp := toProductoResponse(&p.Producto)
		resp.CategoriaNombre = p.CategoriaNombre
		out = append(out, resp)
	}
	return out, nil
}

// Update actualiza un producto del usuario. Retorna ErrNotFound si no existe.
func (uc *ProductoUseCase) Update(id, usuarioID int64, in dto.ProductoRequest) error {
	if in.Nombre == "" || in.Stock < 0 {
		return domain.ErrInvalidInput
	}
	ok, err := uc.repo.Update(&entity.Producto{
		ID:            id,
		UsuarioID:     usuarioID,
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		CostoPromedio: in.CostoPromedio,
		PrecioVenta:   in.PrecioVenta,
		Stock:         in.Stock,
		CategoriaID:   in.CategoriaID,
		ImagenURL:     in.ImagenURL,
	})
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto del usuario. Retorna ErrNotFound si no existe y
// ErrReferenced si tiene ventas o compras asociadas.
func (uc *ProductoUseCase) Delete(id, usuarioID int64) error {
	ok, err := uc.repo.Delete(id, usuarioID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toProductoResponse(p *entity.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		ID:            p.ID,
		Nombre:        p.Nombre,
		Descripcion:   p.Descripcion,
		CostoPromedio: p.CostoPromedio,
		PrecioVenta:   p.PrecioVenta,
		Stock:         p.Stock,
		CategoriaID:   p.CategoriaID,
		ImagenURL:     p.ImagenURL,
	}
}
