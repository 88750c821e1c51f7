package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoCols = `id, usuario_id, nombre, descripcion, costo_promedio, precio_venta, stock, categoria_id, imagen_url, created_at`

// Create persiste un nuevo producto y retorna su id.
func (r *ProductoRepo) Create(p *entity.Producto) (int64, error) {
	query := `
		INSERT INTO productos (usuario_id, nombre, descripcion, costo_promedio, precio_venta, stock, categoria_id, imagen_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		p.UsuarioID, p.Nombre, p.Descripcion, p.CostoPromedio, p.PrecioVenta, p.Stock, p.CategoriaID, p.ImagenURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert producto: %w", err)
	}
	return id, nil
}

// GetByID obtiene un producto del usuario; nil si no existe o es de otro usuario.
func (r *ProductoRepo) GetByID(id, usuarioID int64) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE id = $1 AND usuario_id = $2`
	return r.scanOne(query, id, usuarioID)
}

// GetForUpdate bloquea la fila del producto dentro de la transacción actual.
// El lock se mantiene hasta el commit o rollback del caller.
func (r *ProductoRepo) GetForUpdate(id, usuarioID int64) (*entity.Producto, error) {
	query := `SELECT ` + productoCols + ` FROM productos WHERE id = $1 AND usuario_id = $2 FOR UPDATE`
	return r.scanOne(query, id, usuarioID)
}

func (r *ProductoRepo) scanOne(query string, args ...any) (*entity.Producto, error) {
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.UsuarioID, &p.Nombre, &p.Descripcion, &p.CostoPromedio,
		&p.PrecioVenta, &p.Stock, &p.CategoriaID, &p.ImagenURL, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List lista los productos del usuario con el nombre de su categoría,
// filtrando opcionalmente por nombre (ILIKE).
func (r *ProductoRepo) List(usuarioID int64, search string) ([]repository.ProductoConCategoria, error) {
	query := `
		SELECT p.id, p.usuario_id, p.nombre, p.descripcion, p.costo_promedio, p.precio_venta,
		       p.stock, p.categoria_id, p.imagen_url, p.created_at, COALESCE(c.nombre, '')
		FROM productos p
		LEFT JOIN categorias c ON c.id = p.categoria_id
		WHERE p.usuario_id = $1 AND ($2 = '' OR p.nombre ILIKE '%' || $2 || '%')
		ORDER BY p.nombre`
	rows, err := r.q.Query(context.Background(), query, usuarioID, search)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductoConCategoria
	for rows.Next() {
		var p repository.ProductoConCategoria
		if err := rows.Scan(&p.ID, &p.UsuarioID, &p.Nombre, &p.Descripcion, &p.CostoPromedio,
			&p.PrecioVenta, &p.Stock, &p.CategoriaID, &p.ImagenURL, &p.CreatedAt, &p.CategoriaNombre); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un producto del usuario; false si no existe.
func (r *ProductoRepo) Update(p *entity.Producto) (bool, error) {
	query := `
		UPDATE productos
		SET nombre = $3, descripcion = $4, costo_promedio = $5, precio_venta = $6,
		    stock = $7, categoria_id = $8, imagen_url = $9
		WHERE id = $1 AND usuario_id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.UsuarioID, p.Nombre, p.Descripcion, p.CostoPromedio, p.PrecioVenta,
		p.Stock, p.CategoriaID, p.ImagenURL,
	)
	if err != nil {
		return false, fmt.Errorf("update producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un producto del usuario; false si no existe. Retorna
// domain.ErrReferenced si tiene ventas o compras asociadas.
func (r *ProductoRepo) Delete(id, usuarioID int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM productos WHERE id = $1 AND usuario_id = $2`, id, usuarioID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrReferenced
		}
		return false, fmt.Errorf("delete producto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// AjustarStock aplica un delta al stock (negativo en ventas, positivo en compras).
func (r *ProductoRepo) AjustarStock(id int64, delta int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = stock + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("ajustar stock: %w", err)
	}
	return nil
}

// UpdateStockYCosto fija stock y costo promedio (entradas de compra).
func (r *ProductoRepo) UpdateStockYCosto(id, stock int64, costo decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = $2, costo_promedio = $3 WHERE id = $1`, id, stock, costo)
	if err != nil {
		return fmt.Errorf("update stock y costo: %w", err)
	}
	return nil
}
