package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO resumen para la pantalla principal.
type DashboardSummaryDTO struct {
	TotalProducts       int64                   `json:"total_products"`
	TotalInventoryValue decimal.Decimal         `json:"total_inventory_value"`
	LowStockItems       []ProductResponse       `json:"low_stock_items"`
	RecentMovements     []StockMovementResponse `json:"recent_movements"`
}

// ValuationDTO valoración del inventario. Solo el modo "current" está
// implementado: valor a precio actual, sin modos históricos.
type ValuationDTO struct {
	Mode          string          `json:"mode"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalProducts int64           `json:"total_products"`
}
