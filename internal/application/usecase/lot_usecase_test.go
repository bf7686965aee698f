package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-console/internal/application/dto"
	"github.com/tu-usuario/inventario-console/internal/application/usecase"
	"github.com/tu-usuario/inventario-console/internal/domain"
	"github.com/tu-usuario/inventario-console/internal/domain/entity"
)

type memLotCrudRepo struct {
	lots   map[int64]entity.Lot
	nextID int64
}

func newMemLotCrudRepo() *memLotCrudRepo {
	return &memLotCrudRepo{lots: make(map[int64]entity.Lot), nextID: 1}
}

// Create imita el índice único (product_id, lot_number) de la tabla lots.
func (r *memLotCrudRepo) Create(l *entity.Lot) error {
	for _, existing := range r.lots {
		if existing.ProductID == l.ProductID && existing.LotNumber == l.LotNumber {
			return domain.ErrDuplicate
		}
	}
	l.ID = r.nextID
	r.nextID++
	r.lots[l.ID] = *l
	return nil
}

func (r *memLotCrudRepo) GetByID(id int64) (*entity.Lot, error) {
	l, ok := r.lots[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *memLotCrudRepo) GetForUpdate(id int64) (*entity.Lot, error) { return r.GetByID(id) }

func (r *memLotCrudRepo) ListByProduct(productID int64) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.lots {
		if l.ProductID == productID {
			cp := l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memLotCrudRepo) Update(l *entity.Lot) error                    { r.lots[l.ID] = *l; return nil }
func (r *memLotCrudRepo) UpdateQuantity(id int64, quantity int64) error { return nil }
func (r *memLotCrudRepo) Delete(id int64) error                         { delete(r.lots, id); return nil }

func setupLots(t *testing.T) (*memLotCrudRepo, *usecase.LotUseCase) {
	t.Helper()
	lotRepo := newMemLotCrudRepo()
	productRepo := &fakeProductLookup{products: map[int64]entity.Product{
		1: {ID: 1, Name: "Reactivo X", SKU: "REA-X", Quantity: 0},
	}}
	return lotRepo, usecase.NewLotUseCase(lotRepo, productRepo)
}

func TestLotCreate_ConVencimientoSimple(t *testing.T) {
	_, uc := setupLots(t)

	out, err := uc.Create(1, dto.CreateLotRequest{
		LotNumber:  "L-2026-01",
		ExpiryDate: "2026-12-31",
		Quantity:   30,
	})
	require.NoError(t, err)

	assert.NotZero(t, out.ID)
	require.NotNil(t, out.ExpiryDate, "la fecha simple aaaa-mm-dd debe aceptarse")
	assert.Equal(t, 2026, out.ExpiryDate.Year())
	assert.Equal(t, time.December, out.ExpiryDate.Month())
}

func TestLotCreate_SinVencimiento(t *testing.T) {
	_, uc := setupLots(t)

	out, err := uc.Create(1, dto.CreateLotRequest{LotNumber: "L-1", Quantity: 5})
	require.NoError(t, err)
	assert.Nil(t, out.ExpiryDate, "el vencimiento es opcional")
}

func TestLotCreate_NumeroDeLoteRepetido(t *testing.T) {
	_, uc := setupLots(t)

	_, err := uc.Create(1, dto.CreateLotRequest{LotNumber: "L-1", Quantity: 5})
	require.NoError(t, err)

	_, err = uc.Create(1, dto.CreateLotRequest{LotNumber: "L-1", Quantity: 8})
	require.ErrorIs(t, err, domain.ErrDuplicate, "el número de lote es único por producto")
}

func TestLotCreate_ProductoNoExiste(t *testing.T) {
	_, uc := setupLots(t)

	_, err := uc.Create(99, dto.CreateLotRequest{LotNumber: "L-1"})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestLotCreate_EntradasInvalidas(t *testing.T) {
	_, uc := setupLots(t)

	_, err := uc.Create(1, dto.CreateLotRequest{LotNumber: "", Quantity: 5})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "el número de lote es obligatorio")

	_, err = uc.Create(1, dto.CreateLotRequest{LotNumber: "L-1", Quantity: -1})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "la cantidad inicial no puede ser negativa")

	_, err = uc.Create(1, dto.CreateLotRequest{LotNumber: "L-1", ExpiryDate: "31/12/2026"})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "formato de fecha no soportado")
}

func TestLotUpdate_PatchParcial(t *testing.T) {
	lotRepo, uc := setupLots(t)
	created, err := uc.Create(1, dto.CreateLotRequest{LotNumber: "L-1", ExpiryDate: "2026-06-30", Quantity: 10})
	require.NoError(t, err)

	out, err := uc.Update(created.ID, dto.UpdateLotRequest{LotNumber: str("L-1-REV")})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "L-1-REV", out.LotNumber)
	require.NotNil(t, out.ExpiryDate, "el vencimiento no se toca si no viene en el patch")
	assert.Equal(t, int64(10), lotRepo.lots[created.ID].Quantity, "la cantidad jamás cambia por esta vía")
}

func TestLotUpdate_NoExiste(t *testing.T) {
	_, uc := setupLots(t)

	out, err := uc.Update(99, dto.UpdateLotRequest{LotNumber: str("X")})
	require.NoError(t, err)
	assert.Nil(t, out)
}
