package sales_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventaplus/ventaplus-api/internal/application/sales"
	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
)

func setupVentas(estado string) (*sales.VentasUseCase, *fakeVentaRepo) {
	repo := newFakeVentaRepo()
	clienteID := int64(3)
	repo.Create(&entity.Venta{
		UsuarioID: usuarioID,
		ClienteID: &clienteID,
		Total:     dec("23.00"),
		Estado:    estado,
	})
	return sales.NewVentasUseCase(repo, nil), repo
}

func TestUpdateEstado_TransicionValida(t *testing.T) {
	uc, repo := setupVentas(entity.EstadoPendiente)

	require.NoError(t, uc.UpdateEstado(usuarioID, 1, entity.EstadoPagado))
	assert.Equal(t, entity.EstadoPagado, repo.ventas[1].Estado)

	// Pagado -> Pendiente también está permitido (corrección manual)
	require.NoError(t, uc.UpdateEstado(usuarioID, 1, entity.EstadoPendiente))
	assert.Equal(t, entity.EstadoPendiente, repo.ventas[1].Estado)
}

func TestUpdateEstado_CanceladoEsTerminal(t *testing.T) {
	uc, repo := setupVentas(entity.EstadoCancelado)

	err := uc.UpdateEstado(usuarioID, 1, entity.EstadoPagado)
	assert.ErrorIs(t, err, domain.ErrConflict,
		"una venta cancelada no puede salir de Cancelado")
	assert.Equal(t, entity.EstadoCancelado, repo.ventas[1].Estado)
}

func TestUpdateEstado_EtiquetaDesconocida(t *testing.T) {
	uc, _ := setupVentas(entity.EstadoPendiente)

	err := uc.UpdateEstado(usuarioID, 1, "Devuelto")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateEstado_VentaDeOtroUsuario(t *testing.T) {
	uc, _ := setupVentas(entity.EstadoPendiente)

	err := uc.UpdateEstado(99, 1, entity.EstadoPagado)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"una venta ajena se comporta igual que una inexistente")
}

func TestGetByID_ClienteBorrado_MuestraClienteEliminado(t *testing.T) {
	uc, _ := setupVentas(entity.EstadoPendiente)

	venta, err := uc.GetByID(usuarioID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Cliente Eliminado", venta.Cliente)
}

func TestGetByID_NoExiste(t *testing.T) {
	uc, _ := setupVentas(entity.EstadoPendiente)

	_, err := uc.GetByID(usuarioID, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransicionPermitida_Tabla(t *testing.T) {
	assert.True(t, entity.TransicionPermitida(entity.EstadoPendiente, entity.EstadoCancelado))
	assert.True(t, entity.TransicionPermitida(entity.EstadoCompletado, entity.EstadoEnviado))
	assert.False(t, entity.TransicionPermitida(entity.EstadoCancelado, entity.EstadoPendiente))
	assert.False(t, entity.TransicionPermitida(entity.EstadoPendiente, "Reembolsado"))
}
