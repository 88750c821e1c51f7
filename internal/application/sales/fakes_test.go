package sales_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso de ventas. Simulan el comportamiento
// acotado por usuario de los repositorios reales; la atomicidad real se prueba
// contra la base de datos, aquí solo se verifica la secuencia de negocio.

type fakeProductoRepo struct {
	productos map[int64]*entity.Producto
}

func newFakeProductoRepo(ps ...*entity.Producto) *fakeProductoRepo {
	f := &fakeProductoRepo{productos: make(map[int64]*entity.Producto)}
	for _, p := range ps {
		f.productos[p.ID] = p
	}
	return f
}

func (f *fakeProductoRepo) Create(p *entity.Producto) (int64, error) {
	id := int64(len(f.productos) + 1)
	p.ID = id
	f.productos[id] = p
	return id, nil
}

func (f *fakeProductoRepo) GetByID(id, usuarioID int64) (*entity.Producto, error) {
	p, ok := f.productos[id]
	if !ok || p.UsuarioID != usuarioID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductoRepo) GetForUpdate(id, usuarioID int64) (*entity.Producto, error) {
	return f.GetByID(id, usuarioID)
}

func (f *fakeProductoRepo) List(usuarioID int64, search string) ([]repository.ProductoConCategoria, error) {
	return nil, nil
}

func (f *fakeProductoRepo) Update(p *entity.Producto) (bool, error) {
	existente, ok := f.productos[p.ID]
	if !ok || existente.UsuarioID != p.UsuarioID {
		return false, nil
	}
	f.productos[p.ID] = p
	return true, nil
}

func (f *fakeProductoRepo) Delete(id, usuarioID int64) (bool, error) {
	p, ok := f.productos[id]
	if !ok || p.UsuarioID != usuarioID {
		return false, nil
	}
	delete(f.productos, id)
	return true, nil
}

func (f *fakeProductoRepo) AjustarStock(id int64, delta int64) error {
	f.productos[id].Stock += delta
	return nil
}

func (f *fakeProductoRepo) UpdateStockYCosto(id, stock int64, costo decimal.Decimal) error {
	f.productos[id].Stock = stock
	f.productos[id].CostoPromedio = costo
	return nil
}

type fakeVentaRepo struct {
	ventas   map[int64]*entity.Venta
	detalles []entity.DetalleVenta
	clientes map[int64]string
	nextID   int64
}

func newFakeVentaRepo() *fakeVentaRepo {
	return &fakeVentaRepo{
		ventas:   make(map[int64]*entity.Venta),
		clientes: make(map[int64]string),
	}
}

func (f *fakeVentaRepo) Create(v *entity.Venta) (int64, error) {
	f.nextID++
	v.ID = f.nextID
	f.ventas[v.ID] = v
	return v.ID, nil
}

func (f *fakeVentaRepo) CreateDetalle(d *entity.DetalleVenta) error {
	f.detalles = append(f.detalles, *d)
	return nil
}

func (f *fakeVentaRepo) List(usuarioID int64, search string) ([]repository.VentaResumen, error) {
	return nil, nil
}

func (f *fakeVentaRepo) GetByID(id, usuarioID int64) (*entity.Venta, error) {
	v, ok := f.ventas[id]
	if !ok || v.UsuarioID != usuarioID {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVentaRepo) ClienteNombre(ventaID int64) (string, error) {
	if nombre, ok := f.clientes[ventaID]; ok {
		return nombre, nil
	}
	return "Cliente Eliminado", nil
}

func (f *fakeVentaRepo) GetDetalles(ventaID int64) ([]repository.DetalleConProducto, error) {
	var out []repository.DetalleConProducto
	for _, d := range f.detalles {
		if d.VentaID == ventaID {
			out = append(out, repository.DetalleConProducto{
				Cantidad:       d.Cantidad,
				PrecioUnitario: d.PrecioUnitario,
				ProductoNombre: "Producto",
			})
		}
	}
	return out, nil
}

func (f *fakeVentaRepo) UpdateEstado(id, usuarioID int64, estado string) (bool, error) {
	v, ok := f.ventas[id]
	if !ok || v.UsuarioID != usuarioID {
		return false, nil
	}
	v.Estado = estado
	return true, nil
}

type fakeCajaRepo struct {
	movimientos []entity.MovimientoCaja
}

func (f *fakeCajaRepo) LockUsuario(usuarioID int64) error { return nil }

func (f *fakeCajaRepo) UltimoSaldo(usuarioID int64) (decimal.Decimal, error) {
	for i := len(f.movimientos) - 1; i >= 0; i-- {
		if f.movimientos[i].UsuarioID == usuarioID {
			return f.movimientos[i].SaldoResultante, nil
		}
	}
	return decimal.Zero, nil
}

func (f *fakeCajaRepo) Create(m *entity.MovimientoCaja) error {
	m.ID = int64(len(f.movimientos) + 1)
	f.movimientos = append(f.movimientos, *m)
	return nil
}

func (f *fakeCajaRepo) List(usuarioID int64) ([]entity.MovimientoCaja, error) {
	return f.movimientos, nil
}

// fakeVentaTxRunner ejecuta la función con los fakes, sin transacción real.
type fakeVentaTxRunner struct {
	productoRepo *fakeProductoRepo
	ventaRepo    *fakeVentaRepo
	cajaRepo     *fakeCajaRepo
}

func (f *fakeVentaTxRunner) RunVenta(_ context.Context, fn func(
	repository.ProductoRepository,
	repository.VentaRepository,
	repository.CajaRepository,
) error) error {
	return fn(f.productoRepo, f.ventaRepo, f.cajaRepo)
}
