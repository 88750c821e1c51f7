package sales

import (
	"fmt"

	"github.com/ventaplus/ventaplus-api/internal/domain"
)

// ProductoNoEncontradoError identifica el producto que falló la validación.
// El mensaje no distingue entre "no existe" y "pertenece a otro usuario" para
// no filtrar existencia entre cuentas.
type ProductoNoEncontradoError struct {
	ProductoID int64
}

func (e *ProductoNoEncontradoError) Error() string {
	return fmt.Sprintf("Producto con ID %d no encontrado o no pertenece a este usuario.", e.ProductoID)
}

func (e *ProductoNoEncontradoError) Unwrap() error { return domain.ErrNotFound }

// StockInsuficienteError indica qué producto no tiene stock y cuánto hay.
type StockInsuficienteError struct {
	ProductoID int64
	Disponible int64
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("Stock insuficiente para el producto ID %d. Disponible: %d", e.ProductoID, e.Disponible)
}

func (e *StockInsuficienteError) Unwrap() error { return domain.ErrInsufficientStock }
