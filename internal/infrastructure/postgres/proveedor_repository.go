package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ventaplus/ventaplus-api/internal/domain"
	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación del puerto ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create persiste un nuevo proveedor y retorna su id.
func (r *ProveedorRepo) Create(p *entity.Proveedor) (int64, error) {
	query := `
		INSERT INTO proveedores (usuario_id, nombre_empresa, contacto_nombre, telefono, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		p.UsuarioID, p.NombreEmpresa, p.ContactoNombre, p.Telefono, p.Email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert proveedor: %w", err)
	}
	return id, nil
}

// GetByID obtiene un proveedor del usuario; nil si no existe o es de otro usuario.
func (r *ProveedorRepo) GetByID(id, usuarioID int64) (*entity.Proveedor, error) {
	query := `
		SELECT id, usuario_id, nombre_empresa, contacto_nombre, telefono, email
		FROM proveedores WHERE id = $1 AND usuario_id = $2`
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), query, id, usuarioID).
		Scan(&p.ID, &p.UsuarioID, &p.NombreEmpresa, &p.ContactoNombre, &p.Telefono, &p.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// List lista los proveedores del usuario, filtrando opcionalmente por nombre de empresa.
func (r *ProveedorRepo) List(usuarioID int64, search string) ([]entity.Proveedor, error) {
	query := `
		SELECT id, usuario_id, nombre_empresa, contacto_nombre, telefono, email
		FROM proveedores
		WHERE usuario_id = $1 AND ($2 = '' OR nombre_empresa ILIKE '%' || $2 || '%')
		ORDER BY nombre_empresa`
	rows, err := r.q.Query(context.Background(), query, usuarioID, search)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.UsuarioID, &p.NombreEmpresa, &p.ContactoNombre, &p.Telefono, &p.Email); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor del usuario; false si no existe.
func (r *ProveedorRepo) Update(p *entity.Proveedor) (bool, error) {
	query := `
		UPDATE proveedores
		SET nombre_empresa = $3, contacto_nombre = $4, telefono = $5, email = $6
		WHERE id = $1 AND usuario_id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.UsuarioID, p.NombreEmpresa, p.ContactoNombre, p.Telefono, p.Email)
	if err != nil {
		return false, fmt.Errorf("update proveedor: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un proveedor del usuario; false si no existe. Retorna
// domain.ErrReferenced si tiene compras asociadas.
func (r *ProveedorRepo) Delete(id, usuarioID int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM proveedores WHERE id = $1 AND usuario_id = $2`, id, usuarioID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrReferenced
		}
		return false, fmt.Errorf("delete proveedor: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
