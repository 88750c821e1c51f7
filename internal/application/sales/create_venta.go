package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/ventaplus/ventaplus-api/internal/application/cash"
	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// CreateVentaUseCase crea una venta: valida stock, congela el costo unitario,
// persiste cabecera y detalles, descuenta inventario y registra el ingreso en
// caja, todo en una sola transacción. Si cualquier paso falla no queda venta,
// detalle, cambio de stock ni movimiento de caja.
type CreateVentaUseCase struct {
	txRunner TxRunner
	caja     CajaEngine
}

// NewCreateVentaUseCase construye el caso de uso.
func NewCreateVentaUseCase(txRunner TxRunner, caja CajaEngine) *CreateVentaUseCase {
	return &CreateVentaUseCase{txRunner: txRunner, caja: caja}
}

// CreateVenta ejecuta la secuencia atómica y retorna el id de la nueva venta.
func (uc *CreateVentaUseCase) CreateVenta(ctx context.Context, usuarioID int64, in dto.CreateVentaRequest) (int64, error) {
	if in.ClienteID <= 0 || len(in.Productos) == 0 {
		return 0, domain.ErrInvalidInput
	}
	for _, item := range in.Productos {
		if item.ProductoID <= 0 || item.Cantidad <= 0 {
			return 0, domain.ErrInvalidInput
		}
	}
	if in.CostoEnvio.LessThan(decimal.Zero) {
		return 0, domain.ErrInvalidInput
	}

	var ventaID int64
	err := uc.txRunner.RunVenta(ctx, func(
		productoRepo repository.ProductoRepository,
		ventaRepo repository.VentaRepository,
		cajaRepo repository.CajaRepository,
	) error {
		// 1) Guardia de stock por línea: bloquea la fila del producto (FOR
		// UPDATE) acotada al usuario y captura el costo promedio como snapshot.
		// Cualquier falla aborta la transacción completa.
		costos := make(map[int64]decimal.Decimal, len(in.Productos))
		for _, item := range in.Productos {
			p, err := productoRepo.GetForUpdate(item.ProductoID, usuarioID)
			if err != nil {
				return err
			}
			if p == nil {
				return &ProductoNoEncontradoError{ProductoID: item.ProductoID}
			}
			if item.Cantidad > p.Stock {
				return &StockInsuficienteError{ProductoID: item.ProductoID, Disponible: p.Stock}
			}
			costos[item.ProductoID] = p.CostoPromedio
		}

		// 2) Totales: subtotal = Σ(cantidad × precio_unitario); el precio
		// unitario se confía al caller (descuentos intencionales).
		subtotal := decimal.Zero
		for _, item := range in.Productos {
			subtotal = subtotal.Add(decimal.NewFromInt(item.Cantidad).Mul(item.PrecioUnitario))
		}
		total := subtotal.Add(in.CostoEnvio)

		// 3) Cabecera en estado Pendiente
		clienteID := in.ClienteID
		id, err := ventaRepo.Create(&entity.Venta{
			UsuarioID:  usuarioID,
			ClienteID:  &clienteID,
			Total:      total,
			CostoEnvio: in.CostoEnvio,
			Estado:     entity.EstadoPendiente,
			Fecha:      time.Now(),
		})
		if err != nil {
			return err
		}
		ventaID = id

		// 4) Detalles con el costo congelado + descuento de stock
		for _, item := range in.Productos {
			if err := ventaRepo.CreateDetalle(&entity.DetalleVenta{
				VentaID:              id,
				ProductoID:           item.ProductoID,
				Cantidad:             item.Cantidad,
				PrecioUnitario:       item.PrecioUnitario,
				CostoUnitarioEnVenta: costos[item.ProductoID],
			}); err != nil {
				return err
			}
			if err := productoRepo.AjustarStock(item.ProductoID, -item.Cantidad); err != nil {
				return err
			}
		}

		// 5) Ingreso en caja por el total de la venta
		return uc.caja.AppendInTx(cajaRepo, usuarioID, cash.MovimientoInput{
			Tipo:     entity.MovimientoIngreso,
			Concepto: fmt.Sprintf("Venta #%d", id),
			Monto:    total,
			VentaID:  &id,
		})
	})
	if err != nil {
		return 0, err
	}
	return ventaID, nil
}
