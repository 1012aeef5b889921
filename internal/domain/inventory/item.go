package inventory

// CatalogItem ítem del catálogo tal como lo entrega Alegra. Solo las
// variantes llevan inventario; los bloques inventory/itemCategory pueden
// faltar y el análisis los trata como aporte cero en vez de fallar.
type CatalogItem struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Name         string    `json:"name"`
	Status       string    `json:"status,omitempty"`
	Inventory    *Stock    `json:"inventory,omitempty"`
	Price        []Price   `json:"price,omitempty"`
	ItemCategory *Category `json:"itemCategory,omitempty"`
}

// Stock inventario disponible de una variante.
type Stock struct {
	AvailableQuantity float64 `json:"availableQuantity"`
	UnitCost          float64 `json:"unitCost"`
}

// Price precio de lista de Alegra; el primero de la lista es el vigente.
type Price struct {
	Price float64 `json:"price"`
}

// Category categoría del ítem en Alegra.
type Category struct {
	Name string `json:"name"`
}

const defaultCategory = "SIN CATEGORÍA"

// salePrice primer precio de lista, 0 si no hay.
func (it *CatalogItem) salePrice() float64 {
	if len(it.Price) == 0 {
		return 0
	}
	return it.Price[0].Price
}

// categoryName nombre de la categoría o el marcador por defecto.
func (it *CatalogItem) categoryName() string {
	if it.ItemCategory == nil || it.ItemCategory.Name == "" {
		return defaultCategory
	}
	return it.ItemCategory.Name
}

// countable true para variantes con bloque de inventario presente.
func (it *CatalogItem) countable() bool {
	return it.Type == "variant" && it.Inventory != nil
}
