package entity

import "time"

// Ámbitos de aplicación de un código KOAJ.
const (
	AppliesHombre = "hombre"
	AppliesMujer  = "mujer"
	AppliesNino   = "niño"
	AppliesNina   = "niña"
	AppliesTodos  = "todos"
)

// KoajCode entrada del catálogo de códigos de prenda KOAJ que mantiene la
// tienda para interpretar etiquetas de barras.
type KoajCode struct {
	ID          int64
	Code        string
	Category    string
	Description string
	AppliesTo   string // hombre, mujer, niño, niña, todos
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
