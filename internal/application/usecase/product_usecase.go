package usecase

import (
	"time"

	"github.com/tu-usuario/inventario-console/internal/application/dto"
	"github.com/tu-usuario/inventario-console/internal/domain"
	"github.com/tu-usuario/inventario-console/internal/domain/entity"
	"github.com/tu-usuario/inventario-console/internal/domain/repository"
)

const productDetailMovements = 25 // movimientos recientes incluidos en el detalle

// ProductUseCase casos de uso CRUD para productos.
// Quantity no se toca aquí: el stock cambia solo vía movimientos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	lotRepo  repository.LotRepository
	movRepo  repository.StockMovementRepository
	ruleRepo repository.ReorderRuleRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	lotRepo repository.LotRepository,
	movRepo repository.StockMovementRepository,
	ruleRepo repository.ReorderRuleRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, lotRepo: lotRepo, movRepo: movRepo, ruleRepo: ruleRepo}
}

// Create crea un nuevo producto. El stock inicial declarado aquí es el punto
// cero del libro de movimientos: los ajustes posteriores quedan auditados.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.LowStockThreshold < 0 || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		Name:              in.Name,
		SKU:               in.SKU,
		Category:          in.Category,
		Price:             in.Price,
		Quantity:          in.Quantity,
		LowStockThreshold: in.LowStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	out := dto.ToProductResponse(product)
	return &out, nil
}

// GetByID obtiene un producto con sus lotes, movimientos recientes y reglas de reposición.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductDetailResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	lots, err := uc.lotRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movRepo.ListByProduct(id, productDetailMovements)
	if err != nil {
		return nil, err
	}
	rules, err := uc.ruleRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	detail := &dto.ProductDetailResponse{
		ProductResponse: dto.ToProductResponse(product),
		Lots:            make([]dto.LotResponse, 0, len(lots)),
		Movements:       make([]dto.StockMovementResponse, 0, len(movements)),
		ReorderRules:    make([]dto.ReorderRuleResponse, 0, len(rules)),
	}
	for _, l := range lots {
		detail.Lots = append(detail.Lots, dto.ToLotResponse(l))
	}
	for _, m := range movements {
		detail.Movements = append(detail.Movements, dto.ToStockMovementResponse(m))
	}
	for _, r := range rules {
		detail.ReorderRules = append(detail.ReorderRules, dto.ToReorderRuleResponse(r))
	}
	return detail, nil
}

// Update actualiza un producto vía patch explícito (punteros nil = no tocar).
// Quantity no es editable por esta vía.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.SKU != nil {
		if *in.SKU == "" {
			return nil, domain.ErrInvalidInput
		}
		if other, _ := uc.repo.GetBySKU(*in.SKU); other != nil && other.ID != id {
			return nil, domain.ErrDuplicate
		}
		product.SKU = *in.SKU
	}
	if in.Category != nil {
		product.Category = in.Category
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.LowStockThreshold != nil {
		if *in.LowStockThreshold < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.LowStockThreshold = *in.LowStockThreshold
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	out := dto.ToProductResponse(product)
	return &out, nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ToProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, HasMore: len(list) == limit},
	}, nil
}

// Delete elimina un producto por ID. Las filas relacionadas (lotes, movimientos,
// reglas) caen por cascada en el esquema.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}
