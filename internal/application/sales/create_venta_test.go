package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventaplus/ventaplus-api/internal/application/cash"
	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/application/sales"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
)

const usuarioID = int64(1)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setupCreateVenta(productos ...*entity.Producto) (*sales.CreateVentaUseCase, *fakeVentaTxRunner) {
	tx := &fakeVentaTxRunner{
		productoRepo: newFakeProductoRepo(productos...),
		ventaRepo:    newFakeVentaRepo(),
		cajaRepo:     &fakeCajaRepo{},
	}
	// El motor de caja real funciona sobre cualquier CajaRepository; aquí no
	// necesita txRunner ni repo propios.
	uc := sales.NewCreateVentaUseCase(tx, cash.NewUseCase(nil, nil))
	return uc, tx
}

func TestCreateVenta_Exitosa(t *testing.T) {
	uc, tx := setupCreateVenta(
		&entity.Producto{ID: 10, UsuarioID: usuarioID, Nombre: "Arroz", Stock: 100, CostoPromedio: dec("3.20"), PrecioVenta: dec("4.50")},
		&entity.Producto{ID: 11, UsuarioID: usuarioID, Nombre: "Aceite", Stock: 5, CostoPromedio: dec("7.10"), PrecioVenta: dec("9.50")},
	)

	id, err := uc.CreateVenta(context.Background(), usuarioID, dto.CreateVentaRequest{
		ClienteID:  3,
		CostoEnvio: dec("5.00"),
		Productos: []dto.VentaItemRequest{
			{ProductoID: 10, Cantidad: 2, PrecioUnitario: dec("4.50")},
			{ProductoID: 11, Cantidad: 1, PrecioUnitario: dec("9.00")}, // con descuento
		},
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	// Total = 2*4.50 + 1*9.00 + 5.00 de envío
	venta := tx.ventaRepo.ventas[id]
	require.NotNil(t, venta)
	assert.True(t, venta.Total.Equal(dec("23.00")), "total debe ser 23.00, fue %s", venta.Total)
	assert.Equal(t, entity.EstadoPendiente, venta.Estado, "toda venta nace Pendiente")

	// Stock descontado por línea
	assert.Equal(t, int64(98), tx.productoRepo.productos[10].Stock)
	assert.Equal(t, int64(4), tx.productoRepo.productos[11].Stock)

	// El costo unitario se congela desde el producto, nunca del request
	require.Len(t, tx.ventaRepo.detalles, 2)
	assert.True(t, tx.ventaRepo.detalles[0].CostoUnitarioEnVenta.Equal(dec("3.20")))
	assert.True(t, tx.ventaRepo.detalles[1].CostoUnitarioEnVenta.Equal(dec("7.10")))

	// Ingreso en caja por el total, ligado a la venta
	require.Len(t, tx.cajaRepo.movimientos, 1)
	mov := tx.cajaRepo.movimientos[0]
	assert.Equal(t, entity.MovimientoIngreso, mov.Tipo)
	assert.True(t, mov.Monto.Equal(dec("23.00")))
	require.NotNil(t, mov.VentaID)
	assert.Equal(t, id, *mov.VentaID)
}

func TestCreateVenta_StockInsuficiente_NoDejaRastro(t *testing.T) {
	uc, tx := setupCreateVenta(
		&entity.Producto{ID: 10, UsuarioID: usuarioID, Stock: 100, CostoPromedio: dec("3.20")},
		&entity.Producto{ID: 11, UsuarioID: usuarioID, Stock: 3, CostoPromedio: dec("7.10")},
	)

	_, err := uc.CreateVenta(context.Background(), usuarioID, dto.CreateVentaRequest{
		ClienteID: 3,
		Productos: []dto.VentaItemRequest{
			{ProductoID: 10, Cantidad: 2, PrecioUnitario: dec("4.50")},
			{ProductoID: 11, Cantidad: 4, PrecioUnitario: dec("9.50")},
		},
	})

	var stockErr *sales.StockInsuficienteError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, int64(11), stockErr.ProductoID)
	assert.Equal(t, int64(3), stockErr.Disponible)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La guardia corre antes de escribir nada: ni venta, ni detalle, ni caja,
	// ni stock tocado en la primera línea válida.
	assert.Empty(t, tx.ventaRepo.ventas)
	assert.Empty(t, tx.ventaRepo.detalles)
	assert.Empty(t, tx.cajaRepo.movimientos)
	assert.Equal(t, int64(100), tx.productoRepo.productos[10].Stock)
}

func TestCreateVenta_ProductoDeOtroUsuario_NoEncontrado(t *testing.T) {
	uc, tx := setupCreateVenta(
		&entity.Producto{ID: 10, UsuarioID: 99, Stock: 100, CostoPromedio: dec("3.20")},
	)

	_, err := uc.CreateVenta(context.Background(), usuarioID, dto.CreateVentaRequest{
		ClienteID: 3,
		Productos: []dto.VentaItemRequest{
			{ProductoID: 10, Cantidad: 1, PrecioUnitario: dec("4.50")},
		},
	})

	var notFound *sales.ProductoNoEncontradoError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(10), notFound.ProductoID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, tx.ventaRepo.ventas)
}

func TestCreateVenta_EntradaInvalida(t *testing.T) {
	uc, _ := setupCreateVenta()

	casos := []dto.CreateVentaRequest{
		{ClienteID: 0, Productos: []dto.VentaItemRequest{{ProductoID: 1, Cantidad: 1}}},
		{ClienteID: 3, Productos: nil},
		{ClienteID: 3, Productos: []dto.VentaItemRequest{{ProductoID: 1, Cantidad: 0}}},
		{ClienteID: 3, CostoEnvio: dec("-1"), Productos: []dto.VentaItemRequest{{ProductoID: 1, Cantidad: 1}}},
	}
	for _, in := range casos {
		_, err := uc.CreateVenta(context.Background(), usuarioID, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestCreateVenta_CantidadExactaAlStock_Permitida(t *testing.T) {
	uc, tx := setupCreateVenta(
		&entity.Producto{ID: 10, UsuarioID: usuarioID, Stock: 5, CostoPromedio: dec("1.00")},
	)

	_, err := uc.CreateVenta(context.Background(), usuarioID, dto.CreateVentaRequest{
		ClienteID: 3,
		Productos: []dto.VentaItemRequest{
			{ProductoID: 10, Cantidad: 5, PrecioUnitario: dec("2.00")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), tx.productoRepo.productos[10].Stock, "vender el stock completo deja 0")
}
