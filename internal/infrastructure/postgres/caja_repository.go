package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

var _ repository.CajaRepository = (*CajaRepo)(nil)

// CajaRepo implementación del puerto CajaRepository sobre PostgreSQL.
// El libro de caja es append-only: este repo solo inserta y lee.
type CajaRepo struct {
	q Querier
}

// NewCajaRepository construye el adaptador de persistencia para caja. Pasar pool o tx (Querier).
func NewCajaRepository(q Querier) *CajaRepo {
	return &CajaRepo{q: q}
}

// cajaLockNS separa los advisory locks de caja de otros usos de
// pg_advisory_xact_lock en la misma base.
const cajaLockNS = 7001

// LockUsuario toma un advisory lock transaccional por usuario. Dos appends
// concurrentes del mismo usuario se serializan aquí; el lock se libera al
// terminar la transacción. Fuera de una transacción no tiene efecto útil.
func (r *CajaRepo) LockUsuario(usuarioID int64) error {
	_, err := r.q.Exec(context.Background(),
		`SELECT pg_advisory_xact_lock($1, $2)`, cajaLockNS, usuarioID)
	if err != nil {
		return fmt.Errorf("lock caja usuario: %w", err)
	}
	return nil
}

// UltimoSaldo retorna el saldo_resultante del movimiento más reciente del
// usuario, o 0 si el libro está vacío.
func (r *CajaRepo) UltimoSaldo(usuarioID int64) (decimal.Decimal, error) {
	query := `
		SELECT saldo_resultante
		FROM movimientos_caja
		WHERE usuario_id = $1
		ORDER BY id DESC
		LIMIT 1`
	var saldo decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, usuarioID).Scan(&saldo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("get ultimo saldo: %w", err)
	}
	return saldo, nil
}

// Create inserta un movimiento y completa su ID y fecha.
func (r *CajaRepo) Create(m *entity.MovimientoCaja) error {
	query := `
		INSERT INTO movimientos_caja (usuario_id, tipo, concepto, monto, saldo_resultante, venta_id, gasto_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, fecha`
	err := r.q.QueryRow(context.Background(), query,
		m.UsuarioID, m.Tipo, m.Concepto, m.Monto, m.SaldoResultante, m.VentaID, m.GastoID,
	).Scan(&m.ID, &m.Fecha)
	if err != nil {
		return fmt.Errorf("insert movimiento caja: %w", err)
	}
	return nil
}

// List retorna el libro de caja del usuario, del movimiento más reciente al más antiguo.
func (r *CajaRepo) List(usuarioID int64) ([]entity.MovimientoCaja, error) {
	query := `
		SELECT id, usuario_id, tipo, concepto, monto, saldo_resultante, venta_id, gasto_id, fecha
		FROM movimientos_caja
		WHERE usuario_id = $1
		ORDER BY id DESC`
	rows, err := r.q.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list movimientos caja: %w", err)
	}
	defer rows.Close()
	var list []entity.MovimientoCaja
	for rows.Next() {
		var m entity.MovimientoCaja
		if err := rows.Scan(&m.ID, &m.UsuarioID, &m.Tipo, &m.Concepto, &m.Monto,
			&m.SaldoResultante, &m.VentaID, &m.GastoID, &m.Fecha); err != nil {
			return nil, fmt.Errorf("scan movimiento caja: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
