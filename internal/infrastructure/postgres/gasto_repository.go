package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

var _ repository.GastoRepository = (*GastoRepo)(nil)

// GastoRepo implementación del puerto GastoRepository sobre PostgreSQL (usable con pool o tx).
type GastoRepo struct {
	q Querier
}

// NewGastoRepository construye el adaptador de persistencia para gastos. Pasar pool o tx (Querier).
func NewGastoRepository(q Querier) *GastoRepo {
	return &GastoRepo{q: q}
}

// Create persiste un nuevo gasto y retorna su id.
func (r *GastoRepo) Create(g *entity.Gasto) (int64, error) {
	query := `
		INSERT INTO gastos (usuario_id, descripcion, monto, fecha, categoria_gasto)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(context.Background(), query,
		g.UsuarioID, g.Descripcion, g.Monto, g.Fecha, g.CategoriaGasto).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert gasto: %w", err)
	}
	return id, nil
}

// GetByID obtiene un gasto del usuario; nil si no existe o es de otro usuario.
func (r *GastoRepo) GetByID(id, usuarioID int64) (*entity.Gasto, error) {
	query := `
		SELECT id, usuario_id, descripcion, monto, fecha, categoria_gasto
		FROM gastos WHERE id = $1 AND usuario_id = $2`
	var g entity.Gasto
	err := r.q.QueryRow(context.Background(), query, id, usuarioID).
		Scan(&g.ID, &g.UsuarioID, &g.Descripcion, &g.Monto, &g.Fecha, &g.CategoriaGasto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto: %w", err)
	}
	return &g, nil
}

// List lista los gastos del usuario, filtrando opcionalmente por descripción.
func (r *GastoRepo) List(usuarioID int64, search string) ([]entity.Gasto, error) {
	query := `
		SELECT id, usuario_id, descripcion, monto, fecha, categoria_gasto
		FROM gastos
		WHERE usuario_id = $1 AND ($2 = '' OR descripcion ILIKE '%' || $2 || '%')
		ORDER BY fecha DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query, usuarioID, search)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()
	var list []entity.Gasto
	for rows.Next() {
		var g entity.Gasto
		if err := rows.Scan(&g.ID, &g.UsuarioID, &g.Descripcion, &g.Monto, &g.Fecha, &g.CategoriaGasto); err != nil {
			return nil, fmt.Errorf("scan gasto: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// Update actualiza un gasto del usuario; false si no existe.
func (r *GastoRepo) Update(g *entity.Gasto) (bool, error) {
	query := `
		UPDATE gastos
		SET descripcion = $3, monto = $4, fecha = $5, categoria_gasto = $6
		WHERE id = $1 AND usuario_id = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		g.ID, g.UsuarioID, g.Descripcion, g.Monto, g.Fecha, g.CategoriaGasto)
	if err != nil {
		return false, fmt.Errorf("update gasto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un gasto del usuario; false si no existe. El movimiento de
// caja del gasto no se toca aquí: el caso de uso registra el ajuste compensatorio.
func (r *GastoRepo) Delete(id, usuarioID int64) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM gastos WHERE id = $1 AND usuario_id = $2`, id, usuarioID)
	if err != nil {
		return false, fmt.Errorf("delete gasto: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
