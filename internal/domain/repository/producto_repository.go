package repository

import (
	"github.com/shopspring/decimal"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
)

// ProductoConCategoria producto con el nombre de su categoría para listados.
type ProductoConCategoria struct {
	entity.Producto
	CategoriaNombre string
}

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// Todas las operaciones están acotadas al usuario dueño: un id válido de otro
// usuario se comporta igual que un id inexistente.
type ProductoRepository interface {
	Create(p *entity.Producto) (int64, error)
	GetByID(id, usuarioID int64) (*entity.Producto, error)
	// GetForUpdate bloquea la fila del producto (SELECT ... FOR UPDATE) dentro
	// de la transacción del caller; retorna nil si no existe o es de otro usuario.
	GetForUpdate(id, usuarioID int64) (*entity.Producto, error)
	List(usuarioID int64, search string) ([]ProductoConCategoria, error)
	Update(p *entity.Producto) (bool, error)
	Delete(id, usuarioID int64) (bool, error)
	// AjustarStock aplica un delta (negativo en ventas, positivo en compras).
	AjustarStock(id int64, delta int64) error
	UpdateStockYCosto(id, stock int64, costo decimal.Decimal) error
}
