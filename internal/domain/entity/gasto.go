package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gasto operativo del negocio. Su creación registra un egreso en caja;
// su borrado registra un ajuste compensatorio que revierte ese egreso.
type Gasto struct {
	ID             int64
	UsuarioID      int64
	Descripcion    string
	Monto          decimal.Decimal
	Fecha          time.Time
	CategoriaGasto string
}
