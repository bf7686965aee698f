package usecase

import (
	"time"

	"github.com/tu-usuario/inventario-console/internal/application/dto"
	"github.com/tu-usuario/inventario-console/internal/domain"
	"github.com/tu-usuario/inventario-console/internal/domain/entity"
	"github.com/tu-usuario/inventario-console/internal/domain/repository"
)

// SupplierUseCase casos de uso para proveedores (datos de referencia).
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor. Email, teléfono y dirección vacíos se guardan como NULL.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		Name:      in.Name,
		Email:     optionalField(in.Email),
		Phone:     optionalField(in.Phone),
		Address:   optionalField(in.Address),
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	out := dto.ToSupplierResponse(supplier)
	return &out, nil
}

// List lista proveedores ordenados por nombre.
func (uc *SupplierUseCase) List() ([]dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		items = append(items, dto.ToSupplierResponse(s))
	}
	return items, nil
}

func optionalField(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
