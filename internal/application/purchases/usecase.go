package purchases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/application/sales"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/inventory"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con repositorios de
// compra y producto atados a esa tx.
type TxRunner interface {
	RunCompra(ctx context.Context, fn func(
		compraRepo repository.CompraRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}

// UseCase crea compras a proveedor: cabecera, detalles, entrada de stock y
// recálculo del costo promedio ponderado por producto, todo en una transacción.
type UseCase struct {
	txRunner   TxRunner
	compraRepo repository.CompraRepository
}

// NewUseCase construye el caso de uso de compras.
func NewUseCase(txRunner TxRunner, compraRepo repository.CompraRepository) *UseCase {
	return &UseCase{txRunner: txRunner, compraRepo: compraRepo}
}

// Create registra la compra y retorna su id.
func (uc *UseCase) Create(ctx context.Context, usuarioID int64, in dto.CreateCompraRequest) (int64, error) {
	if in.ProveedorID <= 0 || len(in.Productos) == 0 {
		return 0, domain.ErrInvalidInput
	}
	for _, item := range in.Productos {
		if item.ProductoID <= 0 || item.Cantidad <= 0 || item.CostoUnitario.LessThan(decimal.Zero) {
			return 0, domain.ErrInvalidInput
		}
	}

	total := decimal.Zero
	for _, item := range in.Productos {
		total = total.Add(decimal.NewFromInt(item.Cantidad).Mul(item.CostoUnitario))
	}

	var compraID int64
	err := uc.txRunner.RunCompra(ctx, func(
		compraRepo repository.CompraRepository,
		productoRepo repository.ProductoRepository,
	) error {
		id, err := compraRepo.Create(&entity.Compra{
			UsuarioID:   usuarioID,
			ProveedorID: in.ProveedorID,
			TotalCompra: total,
			Fecha:       time.Now(),
		})
		if err != nil {
			return err
		}
		compraID = id

		for _, item := range in.Productos {
			if err := compraRepo.CreateDetalle(&entity.DetalleCompra{
				CompraID:      id,
				ProductoID:    item.ProductoID,
				Cantidad:      item.Cantidad,
				CostoUnitario: item.CostoUnitario,
			}); err != nil {
				return err
			}
			// Entrada de inventario: bloquea la fila, suma stock y recalcula
			// el costo promedio ponderado con el costo de esta entrada.
			p, err := productoRepo.GetForUpdate(item.ProductoID, usuarioID)
			if err != nil {
				return err
			}
			if p == nil {
				return &sales.ProductoNoEncontradoError{ProductoID: item.ProductoID}
			}
			nuevoCosto := inventory.CostoPromedioPonderado(
				decimal.NewFromInt(p.Stock), p.CostoPromedio,
				decimal.NewFromInt(item.Cantidad), item.CostoUnitario,
			)
			if err := productoRepo.UpdateStockYCosto(p.ID, p.Stock+item.Cantidad, nuevoCosto); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return compraID, nil
}

// List lista las compras del usuario con el nombre del proveedor.
func (uc *UseCase) List(usuarioID int64) ([]dto.CompraResumenResponse, error) {
	rows, err := uc.compraRepo.List(usuarioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompraResumenResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CompraResumenResponse{
			ID:          r.ID,
			Fecha:       r.Fecha,
			TotalCompra: r.TotalCompra,
			Proveedor:   r.Proveedor,
		})
	}
	return out, nil
}
