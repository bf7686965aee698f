package repository

import "github.com/tu-usuario/inventario-console/internal/domain/entity"

// ReorderRuleRepository define el puerto de persistencia para ReorderRule.
// GetByID y GetByProduct retornan (nil, nil) si la regla no existe.
type ReorderRuleRepository interface {
	Create(rule *entity.ReorderRule) error
	GetByID(id int64) (*entity.ReorderRule, error)
	GetByProduct(productID int64) (*entity.ReorderRule, error)
	Update(rule *entity.ReorderRule) error
	// ListByProduct lista las reglas asociadas a un producto (a lo sumo una).
	ListByProduct(productID int64) ([]*entity.ReorderRule, error)
	List() ([]*entity.ReorderRule, error)
	Delete(id int64) error
}
