package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/inventario-console/internal/domain/entity"
	"github.com/tu-usuario/inventario-console/internal/domain/repository"
)

var _ repository.ReorderRuleRepository = (*ReorderRuleRepo)(nil)

// ReorderRuleRepo implementación sobre PostgreSQL (usable con pool o tx).
type ReorderRuleRepo struct {
	q Querier
}

// NewReorderRuleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReorderRuleRepository(q Querier) *ReorderRuleRepo {
	return &ReorderRuleRepo{q: q}
}

const ruleColumns = `id, product_id, min_stock, max_stock, reorder_qty, supplier_id, created_at, updated_at`

// Create persiste una regla y asigna el ID generado.
func (r *ReorderRuleRepo) Create(rule *entity.ReorderRule) error {
	query := `
		INSERT INTO reorder_rules (product_id, min_stock, max_stock, reorder_qty, supplier_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		rule.ProductID, rule.MinStock, rule.MaxStock, rule.ReorderQty,
		rule.SupplierID, rule.CreatedAt, rule.UpdatedAt,
	).Scan(&rule.ID)
	if err != nil {
		return fmt.Errorf("insert reorder rule: %w", err)
	}
	return nil
}

// GetByID obtiene una regla por ID. Retorna (nil, nil) si no existe.
func (r *ReorderRuleRepo) GetByID(id int64) (*entity.ReorderRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM reorder_rules WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByProduct obtiene la regla de un producto (a lo sumo una). Retorna (nil, nil) si no existe.
func (r *ReorderRuleRepo) GetByProduct(productID int64) (*entity.ReorderRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM reorder_rules WHERE product_id = $1`
	return r.scanOne(query, productID)
}

func (r *ReorderRuleRepo) scanOne(query string, arg any) (*entity.ReorderRule, error) {
	var rule entity.ReorderRule
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&rule.ID, &rule.ProductID, &rule.MinStock, &rule.MaxStock,
		&rule.ReorderQty, &rule.SupplierID, &rule.CreatedAt, &rule.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reorder rule: %w", err)
	}
	return &rule, nil
}

// Update actualiza una regla existente.
func (r *ReorderRuleRepo) Update(rule *entity.ReorderRule) error {
	query := `
		UPDATE reorder_rules SET min_stock = $2, max_stock = $3, reorder_qty = $4, supplier_id = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		rule.ID, rule.MinStock, rule.MaxStock, rule.ReorderQty, rule.SupplierID, rule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reorder rule: %w", err)
	}
	return nil
}

// ListByProduct lista las reglas de un producto.
func (r *ReorderRuleRepo) ListByProduct(productID int64) ([]*entity.ReorderRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM reorder_rules WHERE product_id = $1 ORDER BY created_at DESC`
	return r.queryList(query, productID)
}

// List lista todas las reglas ordenadas por fecha de creación descendente.
func (r *ReorderRuleRepo) List() ([]*entity.ReorderRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM reorder_rules ORDER BY created_at DESC`
	return r.queryList(query)
}

func (r *ReorderRuleRepo) queryList(query string, args ...any) ([]*entity.ReorderRule, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reorder rules: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReorderRule
	for rows.Next() {
		var rule entity.ReorderRule
		if err := rows.Scan(&rule.ID, &rule.ProductID, &rule.MinStock, &rule.MaxStock,
			&rule.ReorderQty, &rule.SupplierID, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan reorder rule: %w", err)
		}
		list = append(list, &rule)
	}
	return list, rows.Err()
}

// Delete elimina una regla por ID.
func (r *ReorderRuleRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM reorder_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reorder rule: %w", err)
	}
	return nil
}
