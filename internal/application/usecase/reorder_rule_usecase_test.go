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

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeRuleRepo struct {
	rules  map[int64]entity.ReorderRule
	nextID int64
}

func newFakeRuleRepo() *fakeRuleRepo {
	return &fakeRuleRepo{rules: make(map[int64]entity.ReorderRule), nextID: 1}
}

func (r *fakeRuleRepo) Create(rule *entity.ReorderRule) error {
	rule.ID = r.nextID
	r.nextID++
	r.rules[rule.ID] = *rule
	return nil
}

func (r *fakeRuleRepo) GetByID(id int64) (*entity.ReorderRule, error) {
	rule, ok := r.rules[id]
	if !ok {
		return nil, nil
	}
	return &rule, nil
}

func (r *fakeRuleRepo) GetByProduct(productID int64) (*entity.ReorderRule, error) {
	for _, rule := range r.rules {
		if rule.ProductID == productID {
			cp := rule
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRuleRepo) Update(rule *entity.ReorderRule) error {
	r.rules[rule.ID] = *rule
	return nil
}

func (r *fakeRuleRepo) ListByProduct(productID int64) ([]*entity.ReorderRule, error) {
	var out []*entity.ReorderRule
	for _, rule := range r.rules {
		if rule.ProductID == productID {
			cp := rule
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRuleRepo) List() ([]*entity.ReorderRule, error) {
	var out []*entity.ReorderRule
	for _, rule := range r.rules {
		cp := rule
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRuleRepo) Delete(id int64) error {
	delete(r.rules, id)
	return nil
}

type fakeProductLookup struct {
	products map[int64]entity.Product
}

func (r *fakeProductLookup) Create(p *entity.Product) error { r.products[p.ID] = *p; return nil }

func (r *fakeProductLookup) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductLookup) GetBySKU(sku string) (*entity.Product, error)    { return nil, nil }
func (r *fakeProductLookup) GetForUpdate(id int64) (*entity.Product, error)  { return r.GetByID(id) }
func (r *fakeProductLookup) Update(p *entity.Product) error                  { return nil }
func (r *fakeProductLookup) UpdateQuantity(id int64, quantity int64) error   { return nil }
func (r *fakeProductLookup) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductLookup) Delete(id int64) error                           { return nil }

func setupRules(t *testing.T) (*fakeRuleRepo, *usecase.ReorderRuleUseCase) {
	t.Helper()
	ruleRepo := newFakeRuleRepo()
	productRepo := &fakeProductLookup{products: map[int64]entity.Product{
		1: {ID: 1, Name: "Tornillos M4", SKU: "TOR-M4", Quantity: 100},
	}}
	return ruleRepo, usecase.NewReorderRuleUseCase(ruleRepo, productRepo)
}

func i64(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Upsert
// ──────────────────────────────────────────────────────────────────────────────

func TestUpsert_CreaReglaNueva(t *testing.T) {
	ruleRepo, uc := setupRules(t)

	out, err := uc.Upsert(dto.UpsertReorderRuleRequest{
		ProductID:  1,
		MinStock:   10,
		MaxStock:   100,
		ReorderQty: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.ProductID)
	assert.Equal(t, int64(10), out.MinStock)
	assert.Equal(t, int64(100), out.MaxStock)
	assert.Len(t, ruleRepo.rules, 1, "debe quedar una regla persistida")
}

// Un segundo upsert sobre el mismo producto reemplaza, no duplica.
func TestUpsert_ReemplazaReglaExistente(t *testing.T) {
	ruleRepo, uc := setupRules(t)

	first, err := uc.Upsert(dto.UpsertReorderRuleRequest{ProductID: 1, MinStock: 10, MaxStock: 100, ReorderQty: 50})
	require.NoError(t, err)

	second, err := uc.Upsert(dto.UpsertReorderRuleRequest{ProductID: 1, MinStock: 5, MaxStock: 60, ReorderQty: 25})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "el upsert debe conservar el ID de la regla")
	assert.Len(t, ruleRepo.rules, 1, "a lo sumo una regla por producto")
	assert.Equal(t, int64(5), ruleRepo.rules[first.ID].MinStock)
	assert.Equal(t, int64(60), ruleRepo.rules[first.ID].MaxStock)
}

func TestUpsert_ProductoNoExiste(t *testing.T) {
	_, uc := setupRules(t)

	_, err := uc.Upsert(dto.UpsertReorderRuleRequest{ProductID: 99, MinStock: 10, MaxStock: 100, ReorderQty: 50})
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpsert_InvariantesDeRango(t *testing.T) {
	_, uc := setupRules(t)

	casos := []struct {
		nombre string
		in     dto.UpsertReorderRuleRequest
	}{
		{"min negativo", dto.UpsertReorderRuleRequest{ProductID: 1, MinStock: -1, MaxStock: 100, ReorderQty: 50}},
		{"max cero", dto.UpsertReorderRuleRequest{ProductID: 1, MinStock: 0, MaxStock: 0, ReorderQty: 50}},
		{"reorder cero", dto.UpsertReorderRuleRequest{ProductID: 1, MinStock: 10, MaxStock: 100, ReorderQty: 0}},
		{"min igual a max", dto.UpsertReorderRuleRequest{ProductID: 1, MinStock: 50, MaxStock: 50, ReorderQty: 10}},
		{"min mayor que max", dto.UpsertReorderRuleRequest{ProductID: 1, MinStock: 80, MaxStock: 50, ReorderQty: 10}},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := uc.Upsert(tc.in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Patch
// ──────────────────────────────────────────────────────────────────────────────

func TestPatch_ModificaSoloCamposPresentes(t *testing.T) {
	ruleRepo, uc := setupRules(t)
	created, err := uc.Upsert(dto.UpsertReorderRuleRequest{ProductID: 1, MinStock: 10, MaxStock: 100, ReorderQty: 50, SupplierID: i64(7)})
	require.NoError(t, err)

	out, err := uc.Patch(created.ID, dto.PatchReorderRuleRequest{MinStock: i64(20)})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, int64(20), out.MinStock, "min_stock debe cambiar")
	assert.Equal(t, int64(100), out.MaxStock, "max_stock no debe tocarse")
	assert.Equal(t, int64(50), out.ReorderQty, "reorder_qty no debe tocarse")
	require.NotNil(t, out.SupplierID)
	assert.Equal(t, int64(7), *out.SupplierID, "supplier_id no debe tocarse")
	_ = ruleRepo
}

// La invariante se evalúa sobre la regla resultante, no sobre el campo suelto.
func TestPatch_InvarianteSobreReglaResultante(t *testing.T) {
	ruleRepo, uc := setupRules(t)
	created, err := uc.Upsert(dto.UpsertReorderRuleRequest{ProductID: 1, MinStock: 10, MaxStock: 100, ReorderQty: 50})
	require.NoError(t, err)

	// min_stock 150 es válido por sí solo pero viola min < max con max=100.
	_, err = uc.Patch(created.ID, dto.PatchReorderRuleRequest{MinStock: i64(150)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	// La regla persistida no debe haber cambiado.
	assert.Equal(t, int64(10), ruleRepo.rules[created.ID].MinStock)

	// Subir ambos a la vez sí es coherente.
	out, err := uc.Patch(created.ID, dto.PatchReorderRuleRequest{MinStock: i64(150), MaxStock: i64(300)})
	require.NoError(t, err)
	assert.Equal(t, int64(150), out.MinStock)
	assert.Equal(t, int64(300), out.MaxStock)
}

func TestPatch_ReglaNoExiste(t *testing.T) {
	_, uc := setupRules(t)

	out, err := uc.Patch(404, dto.PatchReorderRuleRequest{MinStock: i64(1)})
	require.NoError(t, err)
	assert.Nil(t, out, "una regla inexistente retorna nil sin error")
}

func TestPatch_ActualizaTimestamp(t *testing.T) {
	ruleRepo, uc := setupRules(t)
	created, err := uc.Upsert(dto.UpsertReorderRuleRequest{ProductID: 1, MinStock: 10, MaxStock: 100, ReorderQty: 50})
	require.NoError(t, err)

	before := time.Now()
	out, err := uc.Patch(created.ID, dto.PatchReorderRuleRequest{ReorderQty: i64(60)})
	require.NoError(t, err)
	assert.False(t, out.UpdatedAt.Before(before), "updated_at debe refrescarse en cada patch")
	_ = ruleRepo
}
