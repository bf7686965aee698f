package analytics

import (
	"context"

	"github.com/tu-usuario/inventario-console/internal/application/dto"
	"github.com/tu-usuario/inventario-console/internal/domain"
	"github.com/tu-usuario/inventario-console/internal/domain/entity"
	"github.com/tu-usuario/inventario-console/internal/domain/repository"
)

// ValuationModeCurrent único modo implementado: valor del inventario a precio
// actual. Los modos históricos (FIFO, promedio, etc.) quedan fuera de alcance.
const ValuationModeCurrent = "current"

// ValuationUseCase valoración del inventario.
type ValuationUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	productRepo   repository.ProductRepository
}

// NewValuationUseCase construye el caso de uso.
func NewValuationUseCase(analyticsRepo repository.AnalyticsRepository, productRepo repository.ProductRepository) *ValuationUseCase {
	return &ValuationUseCase{analyticsRepo: analyticsRepo, productRepo: productRepo}
}

// GetValuation retorna los totales actuales. Cualquier modo distinto de
// "current" se rechaza con ErrInvalidInput.
func (uc *ValuationUseCase) GetValuation(ctx context.Context, mode string) (*dto.ValuationDTO, error) {
	if mode == "" {
		mode = ValuationModeCurrent
	}
	if mode != ValuationModeCurrent {
		return nil, domain.ErrInvalidInput
	}
	totalProducts, totalValue, err := uc.analyticsRepo.GetInventoryTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ValuationDTO{
		Mode:          mode,
		TotalValue:    totalValue,
		TotalProducts: totalProducts,
	}, nil
}

// maxReportProducts tope de filas del reporte PDF; la consola es de bajo
// volumen y un reporte más largo no cabe razonablemente en papel.
const maxReportProducts = 1000

// ListProductsForReport lista los productos del reporte de valoración.
func (uc *ValuationUseCase) ListProductsForReport(ctx context.Context) ([]*entity.Product, error) {
	_ = ctx
	return uc.productRepo.List(maxReportProducts, 0)
}
