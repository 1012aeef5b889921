package inventory

import (
	"math"
	"sort"

	"github.com/koajpc/backoffice-api/internal/domain/sku"
)

// ──────────────────────────────────────────────────────────────────────────────
// Análisis de inventario sobre el catálogo de Alegra. Cada reporte se
// recalcula completo sobre el snapshot recibido; no hay estado incremental.
// ──────────────────────────────────────────────────────────────────────────────

const (
	// DefaultLowStockThreshold unidades para considerar bajo stock.
	DefaultLowStockThreshold = 5
	// DefaultTopLimit productos en el top por valor.
	DefaultTopLimit = 20
)

// ExecutiveSummary resumen ejecutivo del inventario.
type ExecutiveSummary struct {
	TotalItems         int     `json:"total_items"`
	TotalItemsInStock  int     `json:"total_items_con_stock"`
	TotalUnits         int64   `json:"total_unidades"`
	InventoryValue     int64   `json:"valor_total_inventario"`
	PotentialSaleValue int64   `json:"valor_potencial_venta"`
	ExpectedMargin     int64   `json:"margen_esperado"`
	MarginPercent      float64 `json:"porcentaje_margen"`
	AvgUnitCost        float64 `json:"costo_promedio_por_unidad"`
	AvgSalePrice       float64 `json:"precio_promedio_venta"`
}

// CategoryBreakdown acumulado de una categoría dentro de un departamento.
type CategoryBreakdown struct {
	TotalItems     int   `json:"total_items"`
	TotalUnits     int64 `json:"total_unidades"`
	InventoryValue int64 `json:"valor_inventario"`
}

// DepartmentBreakdown acumulado de un departamento con su detalle por
// categoría.
type DepartmentBreakdown struct {
	TotalItems         int                           `json:"total_items"`
	TotalUnits         int64                         `json:"total_unidades"`
	InventoryValue     int64                         `json:"valor_inventario"`
	PotentialSaleValue int64                         `json:"valor_potencial_venta"`
	Margin             int64                         `json:"margen"`
	ByCategory         map[string]*CategoryBreakdown `json:"por_categoria"`
}

// CategoryReport fila del reporte por categoría.
type CategoryReport struct {
	Category       string  `json:"categoria"`
	TotalItems     int     `json:"total_items"`
	TotalUnits     int64   `json:"total_unidades"`
	InventoryValue int64   `json:"valor_inventario"`
	ValuePercent   float64 `json:"porcentaje_valor"`
}

// SizeReport fila del reporte por talla.
type SizeReport struct {
	Size           string `json:"talla"`
	TotalUnits     int64  `json:"total_unidades"`
	InventoryValue int64  `json:"valor_inventario"`
	ItemCount      int    `json:"cantidad_items"`
}

// StockAlert producto sin stock o con bajo stock.
type StockAlert struct {
	ID         string  `json:"id"`
	Name       string  `json:"nombre"`
	Category   string  `json:"categoria"`
	Department string  `json:"departamento"`
	Available  int64   `json:"cantidad_disponible,omitempty"`
	SalePrice  float64 `json:"precio_venta"`
}

// TopProduct fila del top por valor en inventario.
type TopProduct struct {
	ID                 string  `json:"id"`
	Name               string  `json:"nombre"`
	Category           string  `json:"categoria"`
	Department         string  `json:"departamento"`
	Quantity           int64   `json:"cantidad"`
	UnitCost           float64 `json:"costo_unitario"`
	SalePrice          float64 `json:"precio_venta"`
	InventoryValue     int64   `json:"valor_inventario"`
	PotentialSaleValue int64   `json:"valor_potencial_venta"`
}

// ABCClass acumulado de una clase del análisis ABC.
type ABCClass struct {
	ItemCount      int     `json:"cantidad_items"`
	ItemPercent    float64 `json:"porcentaje_items"`
	InventoryValue int64   `json:"valor_inventario"`
	ValuePercent   float64 `json:"porcentaje_valor"`
}

// ABCReport clasificación ABC por contribución al valor total.
type ABCReport struct {
	ClassA ABCClass `json:"clase_A"`
	ClassB ABCClass `json:"clase_B"`
	ClassC ABCClass `json:"clase_C"`
}

// CompleteAnalysis todos los reportes de inventario en una sola respuesta.
type CompleteAnalysis struct {
	ExecutiveSummary ExecutiveSummary                `json:"resumen_ejecutivo"`
	ByDepartment     map[string]*DepartmentBreakdown `json:"por_departamento"`
	ByCategory       []CategoryReport                `json:"por_categoria"`
	BySize           []SizeReport                    `json:"por_talla"`
	OutOfStock       []StockAlert                    `json:"productos_sin_stock"`
	LowStock         []StockAlert                    `json:"productos_bajo_stock"`
	TopByValue       []TopProduct                    `json:"top_productos_por_valor"`
	ABC              ABCReport                       `json:"abc_analysis"`
}

// Analytics recorre un snapshot de ítems del catálogo y produce los
// reportes agregados. Cómputo puro, seguro para usar desde varios handlers
// a la vez.
type Analytics struct {
	items []CatalogItem
}

// NewAnalytics construye el analizador sobre el snapshot recibido.
func NewAnalytics(items []CatalogItem) *Analytics {
	return &Analytics{items: items}
}

// CompleteAnalysis ejecuta todos los reportes con los parámetros por
// defecto.
func (a *Analytics) CompleteAnalysis() *CompleteAnalysis {
	return a.CompleteAnalysisWith(DefaultLowStockThreshold, DefaultTopLimit)
}

// CompleteAnalysisWith ejecuta todos los reportes con umbral de stock bajo
// y tamaño del top configurables. Valores no positivos caen al default.
func (a *Analytics) CompleteAnalysisWith(lowStockThreshold int64, topLimit int) *CompleteAnalysis {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}
	if topLimit <= 0 {
		topLimit = DefaultTopLimit
	}
	return &CompleteAnalysis{
		ExecutiveSummary: a.ExecutiveSummary(),
		ByDepartment:     a.ByDepartment(),
		ByCategory:       a.ByCategory(),
		BySize:           a.BySize(),
		OutOfStock:       a.OutOfStock(),
		LowStock:         a.LowStock(lowStockThreshold),
		TopByValue:       a.TopByValue(topLimit),
		ABC:              a.ABCAnalysis(),
	}
}

// ExecutiveSummary totales, margen esperado y promedios por unidad. Solo
// cuentan las unidades con stock positivo.
func (a *Analytics) ExecutiveSummary() ExecutiveSummary {
	var (
		totalItems, itemsInStock      int
		totalUnits                    float64
		inventoryValue, potentialSale float64
	)

	for i := range a.items {
		it := &a.items[i]
		if !it.countable() {
			continue
		}

		qty := it.Inventory.AvailableQuantity
		totalItems++
		if qty > 0 {
			itemsInStock++
			totalUnits += qty
			inventoryValue += qty * it.Inventory.UnitCost
			potentialSale += qty * it.salePrice()
		}
	}

	margin := potentialSale - inventoryValue
	var marginPct, avgCost, avgPrice float64
	if potentialSale > 0 {
		marginPct = margin / potentialSale * 100
	}
	if totalUnits > 0 {
		avgCost = inventoryValue / totalUnits
		avgPrice = potentialSale / totalUnits
	}

	return ExecutiveSummary{
		TotalItems:         totalItems,
		TotalItemsInStock:  itemsInStock,
		TotalUnits:         int64(totalUnits),
		InventoryValue:     int64(inventoryValue),
		PotentialSaleValue: int64(potentialSale),
		ExpectedMargin:     int64(margin),
		MarginPercent:      round2(marginPct),
		AvgUnitCost:        round2(avgCost),
		AvgSalePrice:       round2(avgPrice),
	}
}

// ByDepartment agrupa por departamento derivado del nombre del producto,
// con detalle por categoría dentro de cada departamento.
func (a *Analytics) ByDepartment() map[string]*DepartmentBreakdown {
	departments := make(map[string]*DepartmentBreakdown)

	for i := range a.items {
		it := &a.items[i]
		if it.Type != "variant" {
			continue
		}

		parsed := sku.ParseProductName(it.Name)
		deptName := string(parsed.Department)

		if it.Inventory == nil {
			continue
		}

		qty := it.Inventory.AvailableQuantity
		invValue := qty * it.Inventory.UnitCost
		saleValue := qty * it.salePrice()

		dept, ok := departments[deptName]
		if !ok {
			dept = &DepartmentBreakdown{ByCategory: make(map[string]*CategoryBreakdown)}
			departments[deptName] = dept
		}

		dept.TotalItems++
		if qty > 0 {
			dept.TotalUnits += int64(qty)
			dept.InventoryValue += int64(invValue)
			dept.PotentialSaleValue += int64(saleValue)
			dept.Margin += int64(saleValue - invValue)

			catName := it.categoryName()
			cat, ok := dept.ByCategory[catName]
			if !ok {
				cat = &CategoryBreakdown{}
				dept.ByCategory[catName] = cat
			}
			cat.TotalItems++
			cat.TotalUnits += int64(qty)
			cat.InventoryValue += int64(invValue)
		}
	}

	return departments
}

// ByCategory filas por categoría ordenadas por valor de inventario
// descendente, con nombre como desempate para que el orden sea estable.
func (a *Analytics) ByCategory() []CategoryReport {
	type acc struct {
		items int
		units float64
		value float64
	}
	categories := make(map[string]*acc)
	var totalValue float64

	for i := range a.items {
		it := &a.items[i]
		if !it.countable() {
			continue
		}

		qty := it.Inventory.AvailableQuantity
		value := qty * it.Inventory.UnitCost
		totalValue += value

		catName := it.categoryName()
		c, ok := categories[catName]
		if !ok {
			c = &acc{}
			categories[catName] = c
		}
		c.items++
		c.units += qty
		c.value += value
	}

	result := make([]CategoryReport, 0, len(categories))
	for name, c := range categories {
		var pct float64
		if totalValue > 0 {
			pct = c.value / totalValue * 100
		}
		result = append(result, CategoryReport{
			Category:       name,
			TotalItems:     c.items,
			TotalUnits:     int64(c.units),
			InventoryValue: int64(c.value),
			ValuePercent:   round2(pct),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].InventoryValue != result[j].InventoryValue {
			return result[i].InventoryValue > result[j].InventoryValue
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// BySize filas por talla ordenadas por unidades descendente.
func (a *Analytics) BySize() []SizeReport {
	type acc struct {
		units float64
		value float64
		items int
	}
	sizes := make(map[string]*acc)

	for i := range a.items {
		it := &a.items[i]
		if it.Type != "variant" {
			continue
		}

		parsed := sku.ParseProductName(it.Name)

		if it.Inventory == nil {
			continue
		}

		qty := it.Inventory.AvailableQuantity
		s, ok := sizes[parsed.Size]
		if !ok {
			s = &acc{}
			sizes[parsed.Size] = s
		}
		s.units += qty
		s.value += qty * it.Inventory.UnitCost
		s.items++
	}

	result := make([]SizeReport, 0, len(sizes))
	for name, s := range sizes {
		result = append(result, SizeReport{
			Size:           name,
			TotalUnits:     int64(s.units),
			InventoryValue: int64(s.value),
			ItemCount:      s.items,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalUnits != result[j].TotalUnits {
			return result[i].TotalUnits > result[j].TotalUnits
		}
		return result[i].Size < result[j].Size
	})
	return result
}

// OutOfStock productos con cantidad disponible en cero, en el orden del
// catálogo.
func (a *Analytics) OutOfStock() []StockAlert {
	var out []StockAlert

	for i := range a.items {
		it := &a.items[i]
		if !it.countable() || it.Inventory.AvailableQuantity != 0 {
			continue
		}

		parsed := sku.ParseProductName(it.Name)
		out = append(out, StockAlert{
			ID:         it.ID,
			Name:       it.Name,
			Category:   it.categoryName(),
			Department: string(parsed.Department),
			SalePrice:  it.salePrice(),
		})
	}
	return out
}

// LowStock productos con stock entre 1 y threshold, ordenados por cantidad
// disponible ascendente.
func (a *Analytics) LowStock(threshold int64) []StockAlert {
	var low []StockAlert

	for i := range a.items {
		it := &a.items[i]
		if !it.countable() {
			continue
		}

		qty := int64(it.Inventory.AvailableQuantity)
		if qty <= 0 || qty > threshold {
			continue
		}

		parsed := sku.ParseProductName(it.Name)
		low = append(low, StockAlert{
			ID:         it.ID,
			Name:       it.Name,
			Category:   it.categoryName(),
			Department: string(parsed.Department),
			Available:  qty,
			SalePrice:  it.salePrice(),
		})
	}

	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Available < low[j].Available
	})
	return low
}

// TopByValue los limit productos con mayor valor en inventario.
func (a *Analytics) TopByValue(limit int) []TopProduct {
	var products []TopProduct

	for i := range a.items {
		it := &a.items[i]
		if !it.countable() {
			continue
		}

		qty := it.Inventory.AvailableQuantity
		if qty == 0 {
			continue
		}

		parsed := sku.ParseProductName(it.Name)
		products = append(products, TopProduct{
			ID:                 it.ID,
			Name:               it.Name,
			Category:           it.categoryName(),
			Department:         string(parsed.Department),
			Quantity:           int64(qty),
			UnitCost:           it.Inventory.UnitCost,
			SalePrice:          it.salePrice(),
			InventoryValue:     int64(qty * it.Inventory.UnitCost),
			PotentialSaleValue: int64(qty * it.salePrice()),
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].InventoryValue > products[j].InventoryValue
	})
	if len(products) > limit {
		products = products[:limit]
	}
	return products
}

// ABCAnalysis clasifica los productos por su contribución acumulada al
// valor total: clase A hasta el 80%, B hasta el 95%, C el resto. El ítem
// que cruza un umbral cae en la clase siguiente; los empates en valor se
// resuelven por nombre para que la clasificación no dependa del orden en
// que llegó el catálogo.
func (a *Analytics) ABCAnalysis() ABCReport {
	type prod struct {
		name  string
		value float64
	}
	var products []prod
	var totalValue float64

	for i := range a.items {
		it := &a.items[i]
		if !it.countable() {
			continue
		}

		value := it.Inventory.AvailableQuantity * it.Inventory.UnitCost
		if value == 0 {
			continue
		}
		totalValue += value
		products = append(products, prod{name: it.Name, value: value})
	}

	sort.SliceStable(products, func(i, j int) bool {
		if products[i].value != products[j].value {
			return products[i].value > products[j].value
		}
		return products[i].name < products[j].name
	})

	totalItems := len(products)
	var cumulative float64
	var classA, classB, classC ABCClass

	for _, p := range products {
		cumulative += p.value
		var pct float64
		if totalValue > 0 {
			pct = cumulative / totalValue * 100
		}

		switch {
		case pct <= 80:
			classA.ItemCount++
			classA.InventoryValue += int64(p.value)
		case pct <= 95:
			classB.ItemCount++
			classB.InventoryValue += int64(p.value)
		default:
			classC.ItemCount++
			classC.InventoryValue += int64(p.value)
		}
	}

	finalize := func(c *ABCClass, classValue float64) {
		if totalItems > 0 {
			c.ItemPercent = round2(float64(c.ItemCount) / float64(totalItems) * 100)
		}
		if totalValue > 0 {
			c.ValuePercent = round2(classValue / totalValue * 100)
		}
	}
	finalize(&classA, float64(classA.InventoryValue))
	finalize(&classB, float64(classB.InventoryValue))
	finalize(&classC, float64(classC.InventoryValue))

	return ABCReport{ClassA: classA, ClassB: classB, ClassC: classC}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
