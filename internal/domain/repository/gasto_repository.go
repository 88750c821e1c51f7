package repository

import "github.com/ventaplus/ventaplus-api/internal/domain/entity"

// GastoRepository define el puerto de persistencia para Gasto (DIP).
type GastoRepository interface {
	Create(g *entity.Gasto) (int64, error)
	GetByID(id, usuarioID int64) (*entity.Gasto, error)
	List(usuarioID int64, search string) ([]entity.Gasto, error)
	Update(g *entity.Gasto) (bool, error)
	Delete(id, usuarioID int64) (bool, error)
}
