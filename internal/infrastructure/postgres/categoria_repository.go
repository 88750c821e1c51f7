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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación del puerto CategoriaRepository sobre PostgreSQL.
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una categoría. Retorna domain.ErrDuplicate si el nombre ya
// existe para este usuario (UNIQUE (usuario_id, nombre)).
func (r *CategoriaRepo) Create(c *entity.Categoria) (int64, error) {
	query := `
		INSERT INTO categorias (usuario_id, nombre)
		VALUES ($1, $2)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query, c.UsuarioID, c.Nombre).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicate
		}
		return 0, fmt.Errorf("insert categoria: %w", err)
	}
	return id, nil
}

// GetByID obtiene una categoría del usuario; nil si no existe o es de otro usuario.
func (r *CategoriaRepo) GetByID(id, usuarioID int64) (*entity.Categoria, error) {
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(),
		`SELECT id, usuario_id, nombre FROM categorias WHERE id = $1 AND usuario_id = $2`,
		id, usuarioID).Scan(&c.ID, &c.UsuarioID, &c.Nombre)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// List lista las categorías del usuario, filtrando opcionalmente por nombre.
func (r *CategoriaRepo) List(usuarioID int64, search string) ([]entity.Categoria, error) {
	query := `
		SELECT id, usuario_id, nombre
		FROM categorias
		WHERE usuario_id = $1 AND ($2 = '' OR nombre ILIKE '%' || $2 || '%')
		ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, usuarioID, search)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.UsuarioID, &c.Nombre); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update renombra una categoría del usuario; false si no existe.
func (r *CategoriaRepo) Update(c *entity.Categoria) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE categorias SET nombre = $3 WHERE id = $1 AND usuario_id = $2`,
		c.ID, c.UsuarioID, c.Nombre)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update categoria: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina una categoría del usuario; false si no existe. Los productos
// de la categoría quedan con categoria_id en NULL (ON DELETE SET NULL).
func (r *CategoriaRepo) Delete(id, usuarioID int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM categorias WHERE id = $1 AND usuario_id = $2`, id, usuarioID)
	if err != nil {
		return false, fmt.Errorf("delete categoria: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
