package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la cabecera de una venta y retorna su id.
func (r *VentaRepo) Create(v *entity.Venta) (int64, error) {
	query := `
		INSERT INTO ventas (usuario_id, cliente_id, total, costo_envio, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		v.UsuarioID, v.ClienteID, v.Total, v.CostoEnvio, v.Estado).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert venta: %w", err)
	}
	return id, nil
}

// CreateDetalle persiste una línea de venta con su snapshot de costo.
func (r *VentaRepo) CreateDetalle(d *entity.DetalleVenta) error {
	query := `
		INSERT INTO detalle_ventas (venta_id, producto_id, cantidad, precio_unitario, costo_unitario_en_venta)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		d.VentaID, d.ProductoID, d.Cantidad, d.PrecioUnitario, d.CostoUnitarioEnVenta)
	if err != nil {
		return fmt.Errorf("insert detalle venta: %w", err)
	}
	return nil
}

// List lista las ventas del usuario con el nombre del cliente,
// filtrando opcionalmente por nombre de cliente.
func (r *VentaRepo) List(usuarioID int64, search string) ([]repository.VentaResumen, error) {
	query := `
		SELECT v.id, v.fecha, v.total, v.estado, COALESCE(c.nombre, 'Cliente Eliminado')
		FROM ventas v
		LEFT JOIN clientes c ON c.id = v.cliente_id
		WHERE v.usuario_id = $1
		  AND ($2 = '' OR COALESCE(c.nombre, 'Cliente Eliminado') ILIKE '%' || $2 || '%')
		ORDER BY v.fecha DESC, v.id DESC`
	rows, err := r.q.Query(context.Background(), query, usuarioID, search)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []repository.VentaResumen
	for rows.Next() {
		var v repository.VentaResumen
		if err := rows.Scan(&v.ID, &v.Fecha, &v.Total, &v.Estado, &v.Cliente); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// GetByID obtiene la cabecera de una venta del usuario; nil si no existe.
func (r *VentaRepo) GetByID(id, usuarioID int64) (*entity.Venta, error) {
	query := `
		SELECT id, usuario_id, cliente_id, total, costo_envio, estado, fecha
		FROM ventas WHERE id = $1 AND usuario_id = $2`
	var v entity.Venta
	err := r.q.QueryRow(context.Background(), query, id, usuarioID).
		Scan(&v.ID, &v.UsuarioID, &v.ClienteID, &v.Total, &v.CostoEnvio, &v.Estado, &v.Fecha)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// ClienteNombre retorna el nombre del cliente de la venta, o "Cliente Eliminado"
// si fue borrado (cliente_id en NULL).
func (r *VentaRepo) ClienteNombre(ventaID int64) (string, error) {
	query := `
		SELECT COALESCE(c.nombre, 'Cliente Eliminado')
		FROM ventas v
		LEFT JOIN clientes c ON c.id = v.cliente_id
		WHERE v.id = $1`
	var nombre string
	err := r.q.QueryRow(context.Background(), query, ventaID).Scan(&nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get cliente de venta: %w", err)
	}
	return nombre, nil
}

// GetDetalles retorna las líneas de la venta con el nombre del producto.
func (r *VentaRepo) GetDetalles(ventaID int64) ([]repository.DetalleConProducto, error) {
	query := `
		SELECT d.cantidad, d.precio_unitario, p.nombre
		FROM detalle_ventas d
		JOIN productos p ON p.id = d.producto_id
		WHERE d.venta_id = $1
		ORDER BY d.id`
	rows, err := r.q.Query(context.Background(), query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("get detalles venta: %w", err)
	}
	defer rows.Close()
	var list []repository.DetalleConProducto
	for rows.Next() {
		var d repository.DetalleConProducto
		if err := rows.Scan(&d.Cantidad, &d.PrecioUnitario, &d.ProductoNombre); err != nil {
			return nil, fmt.Errorf("scan detalle venta: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// UpdateEstado cambia el estado de una venta del usuario; false si no existe.
func (r *VentaRepo) UpdateEstado(id, usuarioID int64, estado string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE ventas SET estado = $3 WHERE id = $1 AND usuario_id = $2`,
		id, usuarioID, estado)
	if err != nil {
		return false, fmt.Errorf("update estado venta: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
