// Package analytics contiene los casos de uso read-only: resumen del
// dashboard y valoración del inventario.
package analytics

import (
	"context"

	"github.com/tu-usuario/inventario-console/internal/application/dto"
	"github.com/tu-usuario/inventario-console/internal/domain/repository"
)

const dashboardRecentMovements = 50 // movimientos en el widget de actividad reciente

// DashboardUseCase genera el resumen de la pantalla principal: totales,
// productos en stock bajo y movimientos recientes.
//
// Fuente de datos: AnalyticsRepository y StockMovementRepository (consultas
// read-only). No modifica estado.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	movRepo       repository.StockMovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, movRepo repository.StockMovementRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, movRepo: movRepo}
}

// GetSummary construye el DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	totalProducts, totalValue, err := uc.analyticsRepo.GetInventoryTotals(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.analyticsRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := uc.movRepo.ListRecent(dashboardRecentMovements)
	if err != nil {
		return nil, err
	}

	summary := &dto.DashboardSummaryDTO{
		TotalProducts:       totalProducts,
		TotalInventoryValue: totalValue,
		LowStockItems:       make([]dto.ProductResponse, 0, len(lowStock)),
		RecentMovements:     make([]dto.StockMovementResponse, 0, len(recent)),
	}
	for _, p := range lowStock {
		summary.LowStockItems = append(summary.LowStockItems, dto.ToProductResponse(p))
	}
	for _, m := range recent {
		summary.RecentMovements = append(summary.RecentMovements, dto.ToStockMovementResponse(m))
	}
	return summary, nil
}
