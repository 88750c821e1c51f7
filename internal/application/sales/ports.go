package sales

import (
	"context"

	"github.com/ventaplus/ventaplus-api/internal/application/cash"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repositorios de producto, venta y caja. Garantiza que validación de stock,
// cabecera, detalles, descuento de inventario y movimiento de caja sean
// todo-o-nada.
type TxRunner interface {
	RunVenta(ctx context.Context, fn func(
		productoRepo repository.ProductoRepository,
		ventaRepo repository.VentaRepository,
		cajaRepo repository.CajaRepository,
	) error) error
}

// CajaEngine interfaz para integrar ventas con el libro de caja.
// AppendInTx registra el ingreso usando el repositorio del caller (misma
// transacción). Si retorna error, el caller debe hacer rollback.
type CajaEngine interface {
	AppendInTx(cajaRepo repository.CajaRepository, usuarioID int64, in cash.MovimientoInput) error
}

// ReciboGenerator genera el PDF del recibo de una venta.
type ReciboGenerator interface {
	GenerarRecibo(ctx context.Context, venta *entity.Venta, cliente string, detalles []repository.DetalleConProducto) ([]byte, error)
}
