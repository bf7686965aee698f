package usecase

import (
	"time"

	"github.com/tu-usuario/inventario-console/internal/application/dto"
	"github.com/tu-usuario/inventario-console/internal/domain"
	"github.com/tu-usuario/inventario-console/internal/domain/entity"
	"github.com/tu-usuario/inventario-console/internal/domain/repository"
)

// ReorderRuleUseCase casos de uso para reglas de reposición.
// Las reglas son configuración sugerida: el registrador de movimientos nunca las lee.
type ReorderRuleUseCase struct {
	repo        repository.ReorderRuleRepository
	productRepo repository.ProductRepository
}

// NewReorderRuleUseCase construye el caso de uso.
func NewReorderRuleUseCase(repo repository.ReorderRuleRepository, productRepo repository.ProductRepository) *ReorderRuleUseCase {
	return &ReorderRuleUseCase{repo: repo, productRepo: productRepo}
}

// Upsert crea la regla del producto o reemplaza la existente (una por producto).
// Invariantes: min_stock >= 0, max_stock >= 1, reorder_qty >= 1, min_stock < max_stock.
func (uc *ReorderRuleUseCase) Upsert(in dto.UpsertReorderRuleRequest) (*dto.ReorderRuleResponse, error) {
	if in.ProductID <= 0 || in.MinStock < 0 || in.MaxStock < 1 || in.ReorderQty < 1 {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock >= in.MaxStock {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	now := time.Now()
	existing, err := uc.repo.GetByProduct(in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.MinStock = in.MinStock
		existing.MaxStock = in.MaxStock
		existing.ReorderQty = in.ReorderQty
		existing.SupplierID = in.SupplierID
		existing.UpdatedAt = now
		if err := uc.repo.Update(existing); err != nil {
			return nil, err
		}
		out := dto.ToReorderRuleResponse(existing)
		return &out, nil
	}

	rule := &entity.ReorderRule{
		ProductID:  in.ProductID,
		MinStock:   in.MinStock,
		MaxStock:   in.MaxStock,
		ReorderQty: in.ReorderQty,
		SupplierID: in.SupplierID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(rule); err != nil {
		return nil, err
	}
	out := dto.ToReorderRuleResponse(rule)
	return &out, nil
}

// Patch aplica un patch explícito por campo y re-verifica la invariante
// min_stock < max_stock sobre la regla resultante, no sobre los campos sueltos.
func (uc *ReorderRuleUseCase) Patch(id int64, in dto.PatchReorderRuleRequest) (*dto.ReorderRuleResponse, error) {
	rule, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, nil
	}
	if in.MinStock != nil {
		rule.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		rule.MaxStock = *in.MaxStock
	}
	if in.ReorderQty != nil {
		rule.ReorderQty = *in.ReorderQty
	}
	if in.SupplierID != nil {
		rule.SupplierID = in.SupplierID
	}
	if rule.MinStock < 0 || rule.MaxStock < 1 || rule.ReorderQty < 1 || rule.MinStock >= rule.MaxStock {
		return nil, domain.ErrInvalidInput
	}
	rule.UpdatedAt = time.Now()
	if err := uc.repo.Update(rule); err != nil {
		return nil, err
	}
	out := dto.ToReorderRuleResponse(rule)
	return &out, nil
}

// List lista todas las reglas.
func (uc *ReorderRuleUseCase) List() ([]dto.ReorderRuleResponse, error) {
	rules, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReorderRuleResponse, 0, len(rules))
	for _, r := range rules {
		items = append(items, dto.ToReorderRuleResponse(r))
	}
	return items, nil
}

// Delete elimina una regla por ID.
func (uc *ReorderRuleUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}
