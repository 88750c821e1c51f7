package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ventaplus/ventaplus-api/internal/application/dto"
	"github.com/ventaplus/ventaplus-api/internal/domain/repository"
)

// ttlDashboard vida del resumen cacheado; las tarjetas toleran 60 s de atraso.
const ttlDashboard = 60 * time.Second

// umbralBajoStock productos con stock por debajo de este valor cuentan como
// "bajo stock" en el dashboard.
const umbralBajoStock = 5

// DashboardUseCase arma el resumen del dashboard y la serie de ventas por día.
// El caché es opcional: con cache nil cada petición golpea la base de datos.
type DashboardUseCase struct {
	repo  repository.ReportRepository
	cache Cache
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(repo repository.ReportRepository, cache Cache) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, cache: cache}
}

// Summary calcula las tarjetas del dashboard para el rango dado.
// Solo se cachea el caso sin filtro de fechas, que es el que carga la
// pantalla principal.
func (uc *DashboardUseCase) Summary(ctx context.Context, usuarioID int64, r repository.RangoFechas) (*dto.DashboardSummary, error) {
	cacheable := r.Desde.IsZero() && r.Hasta.IsZero()
	key := fmt.Sprintf("dashboard:summary:%d", usuarioID)

	if cacheable && uc.cache != nil {
		if raw, ok := uc.cache.Get(ctx, key); ok {
			var cached dto.DashboardSummary
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	totalVentas, err := uc.repo.TotalVentas(usuarioID, r)
	if err != nil {
		return nil, err
	}
	totalGastos, err := uc.repo.TotalGastos(usuarioID, r)
	if err != nil {
		return nil, err
	}
	totalClientes, err := uc.repo.TotalClientes(usuarioID)
	if err != nil {
		return nil, err
	}
	bajoStock, err := uc.repo.ProductosBajoStock(usuarioID, umbralBajoStock)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummary{
		TotalVentas:        totalVentas,
		TotalGastos:        totalGastos,
		GananciaNeta:       totalVentas.Sub(totalGastos),
		TotalClientes:      totalClientes,
		ProductosBajoStock: bajoStock,
	}

	if cacheable && uc.cache != nil {
		if raw, err := json.Marshal(summary); err == nil {
			uc.cache.Set(ctx, key, raw, ttlDashboard)
		}
	}
	return summary, nil
}

// VentasPorDia retorna la serie diaria de ventas para graficar.
func (uc *DashboardUseCase) VentasPorDia(usuarioID int64, r repository.RangoFechas) ([]dto.VentaPorDia, error) {
	puntos, err := uc.repo.VentasPorDia(usuarioID, r)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VentaPorDia, 0, len(puntos))
	for _, p := range puntos {
		out = append(out, dto.VentaPorDia{
			Fecha: p.Fecha.Format("2006-01-02"),
			Total: p.Total,
		})
	}
	return out, nil
}

// Invalidate borra el resumen cacheado del usuario. Se llama tras operaciones
// que mueven los totales (ventas, gastos).
func (uc *DashboardUseCase) Invalidate(ctx context.Context, usuarioID int64) {
	if uc.cache == nil {
		return
	}
	uc.cache.Delete(ctx, fmt.Sprintf("dashboard:summary:%d", usuarioID))
}
