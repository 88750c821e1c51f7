package postgres

import (
	"context"
	"fmt"

	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo implementación del puerto CompraRepository sobre PostgreSQL (usable con pool o tx).
type CompraRepo struct {
	q Querier
}

// NewCompraRepository construye el adaptador de persistencia para compras. Pasar pool o tx (Querier).
func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

// Create persiste la cabecera de una compra y retorna su id.
func (r *CompraRepo) Create(c *entity.Compra) (int64, error) {
	query := `
		INSERT INTO compras (usuario_id, proveedor_id, total_compra)
		VALUES ($1, $2, $3)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		c.UsuarioID, c.ProveedorID, c.TotalCompra).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert compra: %w", err)
	}
	return id, nil
}

// CreateDetalle persiste una línea de compra.
func (r *CompraRepo) CreateDetalle(d *entity.DetalleCompra) error {
	query := `
		INSERT INTO detalle_compras (compra_id, producto_id, cantidad, costo_unitario)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		d.CompraID, d.ProductoID, d.Cantidad, d.CostoUnitario)
	if err != nil {
		return fmt.Errorf("insert detalle compra: %w", err)
	}
	return nil
}

// List lista las compras del usuario con el nombre del proveedor.
func (r *CompraRepo) List(usuarioID int64) ([]repository.CompraResumen, error) {
	query := `
		SELECT co.id, co.fecha, co.total_compra, p.nombre_empresa
		FROM compras co
		JOIN proveedores p ON p.id = co.proveedor_id
		WHERE co.usuario_id = $1
		ORDER BY co.fecha DESC, co.id DESC`
	rows, err := r.q.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()
	var list []repository.CompraResumen
	for rows.Next() {
		var c repository.CompraResumen
		if err := rows.Scan(&c.ID, &c.Fecha, &c.TotalCompra, &c.Proveedor); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
