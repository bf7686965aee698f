package repository

import "github.com/tu-usuario/inventario-console/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	// List lista proveedores ordenados por nombre ascendente.
	List() ([]*entity.Supplier, error)
}
