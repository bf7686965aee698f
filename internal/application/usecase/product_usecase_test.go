package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-console/internal/application/dto"
	"github.com/tu-usuario/inventario-console/internal/application/usecase"
	"github.com/tu-usuario/inventario-console/internal/domain"
	"github.com/tu-usuario/inventario-console/internal/domain/entity"
	"github.com/tu-usuario/inventario-console/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[int64]entity.Product
	nextID   int64
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[int64]entity.Product), nextID: 1}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	p.ID = r.nextID
	r.nextID++
	r.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(id int64) (*entity.Product, error) { return r.GetByID(id) }

func (r *memProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) UpdateQuantity(id int64, quantity int64) error {
	p := r.products[id]
	p.Quantity = quantity
	r.products[id] = p
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok {
			cp := p
			out = append(out, &cp)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memProductRepo) Delete(id int64) error { delete(r.products, id); return nil }

type memLotRepo struct{ lots map[int64]entity.Lot }

func (r *memLotRepo) Create(l *entity.Lot) error              { r.lots[l.ID] = *l; return nil }
func (r *memLotRepo) GetByID(id int64) (*entity.Lot, error)   { return nil, nil }
func (r *memLotRepo) GetForUpdate(id int64) (*entity.Lot, error) { return nil, nil }

func (r *memLotRepo) ListByProduct(productID int64) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.lots {
		if l.ProductID == productID {
			cp := l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memLotRepo) Update(l *entity.Lot) error                    { return nil }
func (r *memLotRepo) UpdateQuantity(id int64, quantity int64) error { return nil }
func (r *memLotRepo) Delete(id int64) error                         { return nil }

type memMovementRepo struct{ movements []entity.StockMovement }

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, *m)
	return nil
}

func (r *memMovementRepo) List(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (r *memMovementRepo) ListByProduct(productID int64, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := range r.movements {
		if r.movements[i].ProductID == productID && len(out) < limit {
			m := r.movements[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) ListRecent(limit int) ([]*entity.StockMovement, error) { return nil, nil }

func setupProducts(t *testing.T) (*memProductRepo, *memLotRepo, *memMovementRepo, *usecase.ProductUseCase) {
	t.Helper()
	productRepo := newMemProductRepo()
	lotRepo := &memLotRepo{lots: make(map[int64]entity.Lot)}
	movRepo := &memMovementRepo{}
	ruleRepo := newFakeRuleRepo()
	uc := usecase.NewProductUseCase(productRepo, lotRepo, movRepo, ruleRepo)
	return productRepo, lotRepo, movRepo, uc
}

func str(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_OK(t *testing.T) {
	repo, _, _, uc := setupProducts(t)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:              "Guantes de nitrilo",
		SKU:               "GUA-NIT-M",
		Category:          str("protección"),
		Price:             decimal.NewFromFloat(4.50),
		Quantity:          200,
		LowStockThreshold: 20,
	})
	require.NoError(t, err)

	assert.NotZero(t, out.ID, "el ID debe asignarse al crear")
	assert.Equal(t, int64(200), out.Quantity, "el stock inicial declarado se respeta")
	assert.True(t, out.Price.Equal(decimal.NewFromFloat(4.50)))
	assert.Len(t, repo.products, 1)
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	_, _, _, uc := setupProducts(t)

	_, err := uc.Create(dto.CreateProductRequest{Name: "A", SKU: "DUP-1"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateProductRequest{Name: "B", SKU: "DUP-1"})
	require.ErrorIs(t, err, domain.ErrDuplicate, "el SKU es único en el catálogo")
}

func TestProductCreate_EntradasInvalidas(t *testing.T) {
	_, _, _, uc := setupProducts(t)

	casos := []struct {
		nombre string
		in     dto.CreateProductRequest
	}{
		{"sin nombre", dto.CreateProductRequest{SKU: "X"}},
		{"sin sku", dto.CreateProductRequest{Name: "X"}},
		{"stock negativo", dto.CreateProductRequest{Name: "X", SKU: "X", Quantity: -1}},
		{"umbral negativo", dto.CreateProductRequest{Name: "X", SKU: "X", LowStockThreshold: -1}},
		{"precio negativo", dto.CreateProductRequest{Name: "X", SKU: "X", Price: decimal.NewFromInt(-1)}},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := uc.Create(tc.in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GetByID (detalle)
// ──────────────────────────────────────────────────────────────────────────────

func TestProductGetByID_DetalleCompleto(t *testing.T) {
	_, lotRepo, movRepo, uc := setupProducts(t)

	created, err := uc.Create(dto.CreateProductRequest{Name: "Cajas", SKU: "CAJ-1", Quantity: 10})
	require.NoError(t, err)

	lotRepo.lots[1] = entity.Lot{ID: 1, ProductID: created.ID, LotNumber: "L-1", Quantity: 10}
	movRepo.movements = append(movRepo.movements, entity.StockMovement{
		ID: 1, ProductID: created.ID, Type: entity.MovementTypeIN, Quantity: 10, PreviousQty: 0, NewQty: 10,
	})

	detail, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, created.ID, detail.ID)
	assert.Len(t, detail.Lots, 1, "el detalle incluye los lotes")
	assert.Len(t, detail.Movements, 1, "el detalle incluye los movimientos recientes")
	assert.Empty(t, detail.ReorderRules, "sin reglas configuradas la lista viene vacía, no nil")
	assert.NotNil(t, detail.ReorderRules)
}

func TestProductGetByID_NoExiste(t *testing.T) {
	_, _, _, uc := setupProducts(t)

	detail, err := uc.GetByID(99)
	require.NoError(t, err)
	assert.Nil(t, detail, "un producto inexistente retorna nil sin error")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update (patch)
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_PatchParcial(t *testing.T) {
	repo, _, _, uc := setupProducts(t)
	created, err := uc.Create(dto.CreateProductRequest{
		Name: "Original", SKU: "ORI-1", Price: decimal.NewFromInt(10), Quantity: 5, LowStockThreshold: 2,
	})
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(12)
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Price.Equal(newPrice), "el precio debe cambiar")
	assert.Equal(t, "Original", out.Name, "los campos ausentes no se tocan")
	assert.Equal(t, "ORI-1", out.SKU)
	assert.Equal(t, int64(5), out.Quantity, "el stock jamás cambia por esta vía")
	_ = repo
}

func TestProductUpdate_SKUDeOtroProducto(t *testing.T) {
	_, _, _, uc := setupProducts(t)
	_, err := uc.Create(dto.CreateProductRequest{Name: "A", SKU: "SKU-A"})
	require.NoError(t, err)
	b, err := uc.Create(dto.CreateProductRequest{Name: "B", SKU: "SKU-B"})
	require.NoError(t, err)

	_, err = uc.Update(b.ID, dto.UpdateProductRequest{SKU: str("SKU-A")})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	// Re-enviar el propio SKU no cuenta como duplicado.
	out, err := uc.Update(b.ID, dto.UpdateProductRequest{SKU: str("SKU-B")})
	require.NoError(t, err)
	assert.Equal(t, "SKU-B", out.SKU)
}

func TestProductUpdate_NoExiste(t *testing.T) {
	_, _, _, uc := setupProducts(t)

	out, err := uc.Update(99, dto.UpdateProductRequest{Name: str("X")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_Paginacion(t *testing.T) {
	_, _, _, uc := setupProducts(t)
	for _, sku := range []string{"P-1", "P-2", "P-3"} {
		_, err := uc.Create(dto.CreateProductRequest{Name: sku, SKU: sku})
		require.NoError(t, err)
	}

	page, err := uc.List(2, 0)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.True(t, page.Page.HasMore, "página llena implica has_more")

	page, err = uc.List(2, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.False(t, page.Page.HasMore, "última página incompleta implica has_more=false")
}
