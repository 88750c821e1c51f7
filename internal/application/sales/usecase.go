package sales

import (
	"context"

	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// VentasUseCase lecturas y cambio de estado de ventas.
type VentasUseCase struct {
	ventaRepo repository.VentaRepository
	recibos   ReciboGenerator
}

// NewVentasUseCase construye el caso de uso de consulta de ventas.
func NewVentasUseCase(ventaRepo repository.VentaRepository, recibos ReciboGenerator) *VentasUseCase {
	return &VentasUseCase{ventaRepo: ventaRepo, recibos: recibos}
}

// List lista las ventas del usuario, más recientes primero, con filtro
// opcional por nombre de cliente o id de venta.
func (uc *VentasUseCase) List(usuarioID int64, search string) ([]dto.VentaResumenResponse, error) {
	rows, err := uc.ventaRepo.List(usuarioID, search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaResumenResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.VentaResumenResponse{
			ID:      r.ID,
			Fecha:   r.Fecha,
			Total:   r.Total,
			Estado:  r.Estado,
			Cliente: r.Cliente,
		})
	}
	return out, nil
}

// GetByID retorna la venta con su detalle completo, o ErrNotFound.
func (uc *VentasUseCase) GetByID(usuarioID, id int64) (*dto.VentaResponse, error) {
	venta, err := uc.ventaRepo.GetByID(id, usuarioID)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	cliente, err := uc.ventaRepo.ClienteNombre(id)
	if err != nil {
		return nil, err
	}
	detalles, err := uc.ventaRepo.GetDetalles(id)
	if err != nil {
		return nil, err
	}
	out := &dto.VentaResponse{
		ID:         venta.ID,
		Fecha:      venta.Fecha,
		Total:      venta.Total,
		Estado:     venta.Estado,
		CostoEnvio: venta.CostoEnvio,
		Cliente:    cliente,
		Detalles:   make([]dto.VentaDetalleItem, 0, len(detalles)),
	}
	for _, d := range detalles {
		out.Detalles = append(out.Detalles, dto.VentaDetalleItem{
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			ProductoNombre: d.ProductoNombre,
		})
	}
	return out, nil
}

// UpdateEstado cambia el estado de la venta según la tabla de transiciones:
// etiqueta desconocida -> ErrInvalidInput; salir de Cancelado -> ErrConflict;
// venta ausente o de otro usuario -> ErrNotFound.
func (uc *VentasUseCase) UpdateEstado(usuarioID, id int64, estado string) error {
	if !entity.EstadoValido(estado) {
		return domain.ErrInvalidInput
	}
	venta, err := uc.ventaRepo.GetByID(id, usuarioID)
	if err != nil {
		return err
	}
	if venta == nil {
		return domain.ErrNotFound
	}
	if !entity.TransicionPermitida(venta.Estado, estado) {
		return domain.ErrConflict
	}
	ok, err := uc.ventaRepo.UpdateEstado(id, usuarioID, estado)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// ReciboPDF genera el recibo en PDF de una venta del usuario.
func (uc *VentasUseCase) ReciboPDF(ctx context.Context, usuarioID, id int64) ([]byte, error) {
	venta, err := uc.ventaRepo.GetByID(id, usuarioID)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	cliente, err := uc.ventaRepo.ClienteNombre(id)
	if err != nil {
		return nil, err
	}
	detalles, err := uc.ventaRepo.GetDetalles(id)
	if err != nil {
		return nil, err
	}
	return uc.recibos.GenerarRecibo(ctx, venta, cliente, detalles)
}
