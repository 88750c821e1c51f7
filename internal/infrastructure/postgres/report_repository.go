package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ventaplus/ventaplus-api/internal/domain/entity"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo proyecciones de solo lectura sobre PostgreSQL para dashboard y
// finanzas. Las ventas canceladas no cuentan en ningún agregado.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes. Pasar pool o tx (Querier).
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// rangoArgs convierte el rango en argumentos SQL; nil = sin límite.
func rangoArgs(r repository.RangoFechas) (desde, hasta *time.Time) {
	if !r.Desde.IsZero() {
		desde = &r.Desde
	}
	if !r.Hasta.IsZero() {
		hasta = &r.Hasta
	}
	return desde, hasta
}

// TotalVentas suma el total de ventas no canceladas del rango.
func (r *ReportRepo) TotalVentas(usuarioID int64, rango repository.RangoFechas) (decimal.Decimal, error) {
	desde, hasta := rangoArgs(rango)
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM ventas
		WHERE usuario_id = $1 AND estado <> $2
		  AND ($3::timestamptz IS NULL OR fecha >= $3)
		  AND ($4::timestamptz IS NULL OR fecha <= $4)`
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, usuarioID, entity.EstadoCancelado, desde, hasta).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total ventas: %w", err)
	}
	return total, nil
}

// TotalGastos suma los gastos del rango.
func (r *ReportRepo) TotalGastos(usuarioID int64, rango repository.RangoFechas) (decimal.Decimal, error) {
	desde, hasta := rangoArgs(rango)
	query := `
		SELECT COALESCE(SUM(monto), 0)
		FROM gastos
		WHERE usuario_id = $1
		  AND ($2::timestamptz IS NULL OR fecha >= $2)
		  AND ($3::timestamptz IS NULL OR fecha <= $3)`
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(), query, usuarioID, desde, hasta).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total gastos: %w", err)
	}
	return total, nil
}

// TotalClientes cuenta los clientes del usuario.
func (r *ReportRepo) TotalClientes(usuarioID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM clientes WHERE usuario_id = $1`, usuarioID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("total clientes: %w", err)
	}
	return n, nil
}

// ProductosBajoStock cuenta productos con stock por debajo del umbral.
func (r *ReportRepo) ProductosBajoStock(usuarioID int64, umbral int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM productos WHERE usuario_id = $1 AND stock < $2`,
		usuarioID, umbral).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("productos bajo stock: %w", err)
	}
	return n, nil
}

// VentasPorDia serie diaria de ventas no canceladas del rango.
func (r *ReportRepo) VentasPorDia(usuarioID int64, rango repository.RangoFechas) ([]repository.VentaPorDia, error) {
	desde, hasta := rangoArgs(rango)
	query := `
		SELECT date_trunc('day', fecha) AS dia, COALESCE(SUM(total), 0)
		FROM ventas
		WHERE usuario_id = $1 AND estado <> $2
		  AND ($3::timestamptz IS NULL OR fecha >= $3)
		  AND ($4::timestamptz IS NULL OR fecha <= $4)
		GROUP BY dia
		ORDER BY dia`
	rows, err := r.q.Query(context.Background(), query, usuarioID, entity.EstadoCancelado, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("ventas por dia: %w", err)
	}
	defer rows.Close()
	var list []repository.VentaPorDia
	for rows.Next() {
		var p repository.VentaPorDia
		if err := rows.Scan(&p.Fecha, &p.Total); err != nil {
			return nil, fmt.Errorf("scan venta por dia: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Financiero agregados del rango: ingresos y envío desde las cabeceras de
// venta, costo de productos desde los snapshots de las líneas y gastos desde
// su propia tabla.
func (r *ReportRepo) Financiero(usuarioID int64, rango repository.RangoFechas) (*repository.ResumenFinanciero, error) {
	desde, hasta := rangoArgs(rango)
	query := `
		SELECT COALESCE(SUM(v.total), 0), COALESCE(SUM(v.costo_envio), 0)
		FROM ventas v
		WHERE v.usuario_id = $1 AND v.estado <> $2
		  AND ($3::timestamptz IS NULL OR v.fecha >= $3)
		  AND ($4::timestamptz IS NULL OR v.fecha <= $4)`
	var f repository.ResumenFinanciero
	err := r.q.QueryRow(context.Background(), query, usuarioID, entity.EstadoCancelado, desde, hasta).
		Scan(&f.IngresosBrutos, &f.TotalEnvio)
	if err != nil {
		return nil, fmt.Errorf("resumen financiero ventas: %w", err)
	}

	query = `
		SELECT COALESCE(SUM(d.cantidad * d.costo_unitario_en_venta), 0)
		FROM detalle_ventas d
		JOIN ventas v ON v.id = d.venta_id
		WHERE v.usuario_id = $1 AND v.estado <> $2
		  AND ($3::timestamptz IS NULL OR v.fecha >= $3)
		  AND ($4::timestamptz IS NULL OR v.fecha <= $4)`
	err = r.q.QueryRow(context.Background(), query, usuarioID, entity.EstadoCancelado, desde, hasta).
		Scan(&f.CostoDeProductos)
	if err != nil {
		return nil, fmt.Errorf("resumen financiero costos: %w", err)
	}

	totalGastos, err := r.TotalGastos(usuarioID, rango)
	if err != nil {
		return nil, err
	}
	f.TotalGastos = totalGastos
	return &f, nil
}

// DesglosePorMes ingresos, costos y gastos agrupados por mes (YYYY-MM).
func (r *ReportRepo) DesglosePorMes(usuarioID int64, rango repository.RangoFechas) ([]repository.DesgloseMensual, error) {
	desde, hasta := rangoArgs(rango)
	query := `
		WITH ingresos AS (
			SELECT to_char(date_trunc('month', fecha), 'YYYY-MM') AS mes, SUM(total) AS monto
			FROM ventas
			WHERE usuario_id = $1 AND estado <> $2
			  AND ($3::timestamptz IS NULL OR fecha >= $3)
			  AND ($4::timestamptz IS NULL OR fecha <= $4)
			GROUP BY 1
		), costos AS (
			SELECT to_char(date_trunc('month', v.fecha), 'YYYY-MM') AS mes,
			       SUM(d.cantidad * d.costo_unitario_en_venta) AS monto
			FROM detalle_ventas d
			JOIN ventas v ON v.id = d.venta_id
			WHERE v.usuario_id = $1 AND v.estado <> $2
			  AND ($3::timestamptz IS NULL OR v.fecha >= $3)
			  AND ($4::timestamptz IS NULL OR v.fecha <= $4)
			GROUP BY 1
		), gastos_mes AS (
			SELECT to_char(date_trunc('month', fecha), 'YYYY-MM') AS mes, SUM(monto) AS monto
			FROM gastos
			WHERE usuario_id = $1
			  AND ($3::timestamptz IS NULL OR fecha >= $3)
			  AND ($4::timestamptz IS NULL OR fecha <= $4)
			GROUP BY 1
		)
		SELECT m.mes,
		       COALESCE(i.monto, 0), COALESCE(c.monto, 0), COALESCE(g.monto, 0)
		FROM (
			SELECT mes FROM ingresos
			UNION SELECT mes FROM costos
			UNION SELECT mes FROM gastos_mes
		) m
		LEFT JOIN ingresos i ON i.mes = m.mes
		LEFT JOIN costos c ON c.mes = m.mes
		LEFT JOIN gastos_mes g ON g.mes = m.mes
		ORDER BY m.mes`
	rows, err := r.q.Query(context.Background(), query, usuarioID, entity.EstadoCancelado, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("desglose por mes: %w", err)
	}
	defer rows.Close()
	var list []repository.DesgloseMensual
	for rows.Next() {
		var d repository.DesgloseMensual
		if err := rows.Scan(&d.Mes, &d.Ingresos, &d.Costos, &d.Gastos); err != nil {
			return nil, fmt.Errorf("scan desglose mensual: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}
