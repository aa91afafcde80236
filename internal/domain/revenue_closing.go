package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueClosing é o fechamento diário de receita gravado pelo agendador
type RevenueClosing struct {
	ID                 string          `json:"id"`
	Fecha              time.Time       `json:"fecha"`
	TotalIngresos      decimal.Decimal `json:"total_ingresos"`
	CantidadFacturas   int             `json:"cantidad_facturas"`
	PromedioPorFactura decimal.Decimal `json:"promedio_por_factura"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
