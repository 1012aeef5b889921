package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koajpc/backoffice-api/internal/domain/inventory"
)

// Catálogo de prueba: tres variantes con stock, una agotada, un ítem simple
// que debe ignorarse y una variante sin bloque de inventario.
func fixtureCatalog() []inventory.CatalogItem {
	return []inventory.CatalogItem{
		{
			ID: "101", Type: "variant",
			Name:         "CAMISETA HOMBRE 39900 / 1051399004",
			Inventory:    &inventory.Stock{AvailableQuantity: 10, UnitCost: 15000},
			Price:        []inventory.Price{{Price: 39900}},
			ItemCategory: &inventory.Category{Name: "CAMISETAS"},
		},
		{
			ID: "102", Type: "variant",
			Name:         "JOGGER MUJER 89900 / 10523889900010",
			Inventory:    &inventory.Stock{AvailableQuantity: 4, UnitCost: 30000},
			Price:        []inventory.Price{{Price: 89900}},
			ItemCategory: &inventory.Category{Name: "JOGGERS"},
		},
		{
			ID: "103", Type: "variant",
			Name:         "VESTIDO NIÑA 49900 / 105419499000406",
			Inventory:    &inventory.Stock{AvailableQuantity: 0, UnitCost: 20000},
			Price:        []inventory.Price{{Price: 49900}},
			ItemCategory: &inventory.Category{Name: "VESTIDOS"},
		},
		{
			ID: "104", Type: "variant",
			Name:         "BLUSA DAMA 29900 / 1052639990",
			Inventory:    &inventory.Stock{AvailableQuantity: 2, UnitCost: 10000},
			Price:        []inventory.Price{{Price: 29900}},
			ItemCategory: &inventory.Category{Name: "BLUSAS"},
		},
		{
			// Ítem padre, no variante: nunca aporta al análisis.
			ID: "105", Type: "simple",
			Name:      "CAMISETA HOMBRE 39900",
			Inventory: &inventory.Stock{AvailableQuantity: 99, UnitCost: 99999},
		},
		{
			// Variante sin bloque de inventario: aporte cero, no error.
			ID: "106", Type: "variant",
			Name:  "POLO HOMBRE 45900 / 1051445903",
			Price: []inventory.Price{{Price: 45900}},
		},
	}
}

func TestExecutiveSummary(t *testing.T) {
	a := inventory.NewAnalytics(fixtureCatalog())

	s := a.ExecutiveSummary()

	assert.Equal(t, 4, s.TotalItems)
	assert.Equal(t, 3, s.TotalItemsInStock)
	assert.Equal(t, int64(16), s.TotalUnits)
	assert.Equal(t, int64(290000), s.InventoryValue)
	assert.Equal(t, int64(818400), s.PotentialSaleValue)
	assert.Equal(t, int64(528400), s.ExpectedMargin)
	assert.InDelta(t, 64.57, s.MarginPercent, 0.01)
	assert.InDelta(t, 18125.0, s.AvgUnitCost, 0.01)
	assert.InDelta(t, 51150.0, s.AvgSalePrice, 0.01)
}

func TestExecutiveSummary_CatalogoVacio(t *testing.T) {
	a := inventory.NewAnalytics(nil)

	s := a.ExecutiveSummary()

	assert.Equal(t, 0, s.TotalItems)
	assert.Equal(t, float64(0), s.MarginPercent)
	assert.Equal(t, float64(0), s.AvgUnitCost)
}

func TestByDepartment(t *testing.T) {
	a := inventory.NewAnalytics(fixtureCatalog())

	depts := a.ByDepartment()

	hombre := depts["HOMBRE"]
	require.NotNil(t, hombre)
	assert.Equal(t, 1, hombre.TotalItems)
	assert.Equal(t, int64(10), hombre.TotalUnits)
	assert.Equal(t, int64(150000), hombre.InventoryValue)
	assert.Equal(t, int64(249000), hombre.Margin)
	require.Contains(t, hombre.ByCategory, "CAMISETAS")
	assert.Equal(t, int64(150000), hombre.ByCategory["CAMISETAS"].InventoryValue)

	mujer := depts["MUJER"]
	require.NotNil(t, mujer)
	assert.Equal(t, 2, mujer.TotalItems)
	assert.Equal(t, int64(6), mujer.TotalUnits)
	assert.Equal(t, int64(140000), mujer.InventoryValue)
	assert.Len(t, mujer.ByCategory, 2)

	// Agotado: cuenta como ítem del departamento pero sin unidades ni valor.
	nina := depts["NIÑA"]
	require.NotNil(t, nina)
	assert.Equal(t, 1, nina.TotalItems)
	assert.Equal(t, int64(0), nina.TotalUnits)
	assert.Empty(t, nina.ByCategory)
}

func TestByCategory_OrdenadoPorValor(t *testing.T) {
	a := inventory.NewAnalytics(fixtureCatalog())

	cats := a.ByCategory()
	require.Len(t, cats, 4)

	assert.Equal(t, "CAMISETAS", cats[0].Category)
	assert.Equal(t, int64(150000), cats[0].InventoryValue)
	assert.InDelta(t, 51.72, cats[0].ValuePercent, 0.01)

	assert.Equal(t, "JOGGERS", cats[1].Category)
	assert.Equal(t, "BLUSAS", cats[2].Category)

	// La categoría agotada queda al final con valor cero.
	assert.Equal(t, "VESTIDOS", cats[3].Category)
	assert.Equal(t, int64(0), cats[3].InventoryValue)
	assert.Equal(t, 1, cats[3].TotalItems)
}

func TestBySize_OrdenadoPorUnidades(t *testing.T) {
	a := inventory.NewAnalytics(fixtureCatalog())

	sizes := a.BySize()
	require.Len(t, sizes, 4)

	assert.Equal(t, "L", sizes[0].Size)
	assert.Equal(t, int64(10), sizes[0].TotalUnits)

	assert.Equal(t, "10", sizes[1].Size)
	assert.Equal(t, "ÚNICA", sizes[2].Size)
	assert.Equal(t, "4-6", sizes[3].Size)
}

func TestOutOfStock(t *testing.T) {
	a := inventory.NewAnalytics(fixtureCatalog())

	out := a.OutOfStock()
	require.Len(t, out, 1)

	assert.Equal(t, "103", out[0].ID)
	assert.Equal(t, "VESTIDOS", out[0].Category)
	assert.Equal(t, "NIÑA", out[0].Department)
	assert.Equal(t, float64(49900), out[0].SalePrice)
}

func TestLowStock_OrdenadoPorCantidad(t *testing.T) {
	a := inventory.NewAnalytics(fixtureCatalog())

	low := a.LowStock(5)
	require.Len(t, low, 2)

	assert.Equal(t, "104", low[0].ID)
	assert.Equal(t, int64(2), low[0].Available)
	assert.Equal(t, "102", low[1].ID)
	assert.Equal(t, int64(4), low[1].Available)

	// El umbral es inclusivo y el agotado nunca aparece aquí.
	assert.Empty(t, a.LowStock(1))
}

func TestTopByValue(t *testing.T) {
	a := inventory.NewAnalytics(fixtureCatalog())

	top := a.TopByValue(2)
	require.Len(t, top, 2)

	assert.Equal(t, "101", top[0].ID)
	assert.Equal(t, int64(150000), top[0].InventoryValue)
	assert.Equal(t, int64(399000), top[0].PotentialSaleValue)
	assert.Equal(t, "102", top[1].ID)
}

func TestABCAnalysis(t *testing.T) {
	a := inventory.NewAnalytics(fixtureCatalog())

	abc := a.ABCAnalysis()

	// Valores 150000, 120000 y 20000 sobre 290000: el primero acumula 51.7%
	// (clase A), el segundo cruza el 80% y cae en B, el último en C.
	assert.Equal(t, 1, abc.ClassA.ItemCount)
	assert.Equal(t, int64(150000), abc.ClassA.InventoryValue)
	assert.InDelta(t, 51.72, abc.ClassA.ValuePercent, 0.01)

	assert.Equal(t, 1, abc.ClassB.ItemCount)
	assert.Equal(t, int64(120000), abc.ClassB.InventoryValue)

	assert.Equal(t, 1, abc.ClassC.ItemCount)
	assert.Equal(t, int64(20000), abc.ClassC.InventoryValue)
	assert.InDelta(t, 33.33, abc.ClassC.ItemPercent, 0.01)
}

// Dos ítems con el mismo valor a ambos lados de un umbral: el desempate por
// nombre hace que la clasificación no dependa del orden del catálogo.
func TestABCAnalysis_EmpatesPorNombre(t *testing.T) {
	grande := inventory.CatalogItem{
		ID: "201", Type: "variant",
		Name:         "CHAQUETA HOMBRE 159900 / 1051461599004",
		Inventory:    &inventory.Stock{AvailableQuantity: 8, UnitCost: 100000},
		Price:        []inventory.Price{{Price: 159900}},
		ItemCategory: &inventory.Category{Name: "CHAQUETAS"},
	}
	// Mismo valor (100000) pero nombres distintos.
	empateA := inventory.CatalogItem{
		ID: "202", Type: "variant",
		Name:         "BLUSA MUJER 49900 / 1052404990004",
		Inventory:    &inventory.Stock{AvailableQuantity: 10, UnitCost: 10000},
		Price:        []inventory.Price{{Price: 49900}},
		ItemCategory: &inventory.Category{Name: "BLUSAS"},
	}
	empateB := inventory.CatalogItem{
		ID: "203", Type: "variant",
		Name:         "POLO HOMBRE 59900 / 1051445990004",
		Inventory:    &inventory.Stock{AvailableQuantity: 5, UnitCost: 20000},
		Price:        []inventory.Price{{Price: 59900}},
		ItemCategory: &inventory.Category{Name: "POLOS"},
	}

	// Total 1000000: el grande acumula 80% (clase A); de los dos empatados,
	// BLUSA va primero por nombre y cae en B (90%), POLO cierra en C (100%).
	want := inventory.NewAnalytics([]inventory.CatalogItem{grande, empateA, empateB}).ABCAnalysis()

	assert.Equal(t, 1, want.ClassA.ItemCount)
	assert.Equal(t, int64(800000), want.ClassA.InventoryValue)
	assert.Equal(t, 1, want.ClassB.ItemCount)
	assert.Equal(t, int64(100000), want.ClassB.InventoryValue)
	assert.Equal(t, 1, want.ClassC.ItemCount)
	assert.Equal(t, int64(100000), want.ClassC.InventoryValue)

	// Con los empatados en orden inverso el reporte es idéntico.
	got := inventory.NewAnalytics([]inventory.CatalogItem{empateB, grande, empateA}).ABCAnalysis()
	assert.Equal(t, want, got)
}

func TestCompleteAnalysis(t *testing.T) {
	a := inventory.NewAnalytics(fixtureCatalog())

	full := a.CompleteAnalysis()
	require.NotNil(t, full)

	assert.Equal(t, 4, full.ExecutiveSummary.TotalItems)
	assert.Len(t, full.ByDepartment, 3)
	assert.Len(t, full.OutOfStock, 1)
	assert.Len(t, full.LowStock, 2)
	assert.NotEmpty(t, full.TopByValue)
}
