package usecase

import (
	"time"

	"github.com/tu-usuario/inventario-console/internal/application/dto"
	"github.com/tu-usuario/inventario-console/internal/domain"
	"github.com/tu-usuario/inventario-console/internal/domain/entity"
	"github.com/tu-usuario/inventario-console/internal/domain/repository"
)

// LotUseCase casos de uso CRUD para lotes. Quantity del lote cambia solo vía movimientos.
type LotUseCase struct {
	repo        repository.LotRepository
	productRepo repository.ProductRepository
}

// NewLotUseCase construye el caso de uso.
func NewLotUseCase(repo repository.LotRepository, productRepo repository.ProductRepository) *LotUseCase {
	return &LotUseCase{repo: repo, productRepo: productRepo}
}

// Create crea un lote bajo un producto existente.
func (uc *LotUseCase) Create(productID int64, in dto.CreateLotRequest) (*dto.LotResponse, error) {
	if in.LotNumber == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	expiry, err := parseOptionalDate(in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	lot := &entity.Lot{
		ProductID:  productID,
		LotNumber:  in.LotNumber,
		ExpiryDate: expiry,
		Quantity:   in.Quantity,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(lot); err != nil {
		return nil, err
	}
	out := dto.ToLotResponse(lot)
	return &out, nil
}

// ListByProduct lista los lotes de un producto ordenados por vencimiento.
func (uc *LotUseCase) ListByProduct(productID int64) ([]dto.LotResponse, error) {
	lots, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LotResponse, 0, len(lots))
	for _, l := range lots {
		items = append(items, dto.ToLotResponse(l))
	}
	return items, nil
}

// Update actualiza número de lote y vencimiento (patch con punteros). Quantity no es editable.
func (uc *LotUseCase) Update(id int64, in dto.UpdateLotRequest) (*dto.LotResponse, error) {
	lot, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return nil, nil
	}
	if in.LotNumber != nil {
		if *in.LotNumber == "" {
			return nil, domain.ErrInvalidInput
		}
		lot.LotNumber = *in.LotNumber
	}
	if in.ExpiryDate != nil {
		expiry, err := parseOptionalDate(*in.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		lot.ExpiryDate = expiry
	}
	if err := uc.repo.Update(lot); err != nil {
		return nil, err
	}
	out := dto.ToLotResponse(lot)
	return &out, nil
}

// Delete elimina un lote por ID.
func (uc *LotUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// parseOptionalDate acepta RFC 3339 o fecha simple "2006-01-02"; vacío = nil.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
