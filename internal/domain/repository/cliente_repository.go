package repository

import "github.com/ventaplus/ventaplus-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente (DIP).
type ClienteRepository interface {
	Create(c *entity.Cliente) (int64, error)
	GetByID(id, usuarioID int64) (*entity.Cliente, error)
	List(usuarioID int64, search string) ([]entity.Cliente, error)
	Update(c *entity.Cliente) (bool, error)
	// Delete retorna domain.ErrReferenced si el cliente tiene registros asociados.
	Delete(id, usuarioID int64) (bool, error)
}

// ProveedorRepository define el puerto de persistencia para Proveedor (DIP).
type ProveedorRepository interface {
	Create(p *entity.Proveedor) (int64, error)
	GetByID(id, usuarioID int64) (*entity.Proveedor, error)
	List(usuarioID int64, search string) ([]entity.Proveedor, error)
	Update(p *entity.Proveedor) (bool, error)
	Delete(id, usuarioID int64) (bool, error)
}

// CategoriaRepository define el puerto de persistencia para Categoria (DIP).
type CategoriaRepository interface {
	Create(c *entity.Categoria) (int64, error)
	GetByID(id, usuarioID int64) (*entity.Categoria, error)
	List(usuarioID int64, search string) ([]entity.Categoria, error)
	Update(c *entity.Categoria) (bool, error)
	Delete(id, usuarioID int64) (bool, error)
}
