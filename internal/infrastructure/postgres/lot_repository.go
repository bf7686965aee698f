package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/inventario-console/internal/domain"
	"github.com/tu-usuario/inventario-console/internal/domain/entity"
	"github.com/tu-usuario/inventario-console/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación del puerto LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

const lotColumns = `id, product_id, lot_number, expiry_date, quantity, created_at`

// Create persiste un nuevo lote y asigna el ID generado.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (product_id, lot_number, expiry_date, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		lot.ProductID, lot.LotNumber, lot.ExpiryDate, lot.Quantity, lot.CreatedAt,
	).Scan(&lot.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID. Retorna (nil, nil) si no existe.
func (r *LotRepo) GetByID(id int64) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE).
func (r *LotRepo) GetForUpdate(id int64) (*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *LotRepo) scanOne(query string, id int64) (*entity.Lot, error) {
	var l entity.Lot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.ProductID, &l.LotNumber, &l.ExpiryDate, &l.Quantity, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

// ListByProduct lista los lotes de un producto ordenados por vencimiento
// ascendente (NULL al final).
func (r *LotRepo) ListByProduct(productID int64) ([]*entity.Lot, error) {
	query := `SELECT ` + lotColumns + ` FROM lots WHERE product_id = $1 ORDER BY expiry_date ASC NULLS LAST, id ASC`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lot
	for rows.Next() {
		var l entity.Lot
		if err := rows.Scan(&l.ID, &l.ProductID, &l.LotNumber, &l.ExpiryDate, &l.Quantity, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza número de lote y vencimiento. No modifica Quantity.
func (r *LotRepo) Update(lot *entity.Lot) error {
	query := `UPDATE lots SET lot_number = $2, expiry_date = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, lot.ID, lot.LotNumber, lot.ExpiryDate)
	if err != nil {
		return fmt.Errorf("update lot: %w", err)
	}
	return nil
}

// UpdateQuantity fija el stock del lote (usado solo por el registrador de movimientos).
func (r *LotRepo) UpdateQuantity(id int64, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE lots SET quantity = $2 WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update lot quantity: %w", err)
	}
	return nil
}

// Delete elimina un lote por ID.
func (r *LotRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lot: %w", err)
	}
	return nil
}
