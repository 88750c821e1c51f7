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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación del puerto ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un nuevo cliente y retorna su id.
func (r *ClienteRepo) Create(c *entity.Cliente) (int64, error) {
	query := `
		INSERT INTO clientes (usuario_id, nombre, contacto)
		VALUES ($1, $2, $3)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query, c.UsuarioID, c.Nombre, c.Contacto).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert cliente: %w", err)
	}
	return id, nil
}

// GetByID obtiene un cliente del usuario; nil si no existe o es de otro usuario.
func (r *ClienteRepo) GetByID(id, usuarioID int64) (*entity.Cliente, error) {
	query := `
		SELECT id, usuario_id, nombre, contacto, fecha_registro
		FROM clientes WHERE id = $1 AND usuario_id = $2`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id, usuarioID).
		Scan(&c.ID, &c.UsuarioID, &c.Nombre, &c.Contacto, &c.FechaRegistro)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista los clientes del usuario, filtrando opcionalmente por nombre.
func (r *ClienteRepo) List(usuarioID int64, search string) ([]entity.Cliente, error) {
	query := `
		SELECT id, usuario_id, nombre, contacto, fecha_registro
		FROM clientes
		WHERE usuario_id = $1 AND ($2 = '' OR nombre ILIKE '%' || $2 || '%')
		ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, usuarioID, search)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.UsuarioID, &c.Nombre, &c.Contacto, &c.FechaRegistro); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente del usuario; false si no existe.
func (r *ClienteRepo) Update(c *entity.Cliente) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE clientes SET nombre = $3, contacto = $4 WHERE id = $1 AND usuario_id = $2`,
		c.ID, c.UsuarioID, c.Nombre, c.Contacto,
	)
	if err != nil {
		return false, fmt.Errorf("update cliente: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un cliente del usuario; false si no existe. Las ventas del
// cliente quedan con cliente_id en NULL (ON DELETE SET NULL), no se borran.
func (r *ClienteRepo) Delete(id, usuarioID int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM clientes WHERE id = $1 AND usuario_id = $2`, id, usuarioID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrReferenced
		}
		return false, fmt.Errorf("delete cliente: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
