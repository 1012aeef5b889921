package sku

// GuideExample código de muestra con su desglose campo a campo.
type GuideExample struct {
	Barcode        string            `json:"barcode"`
	Breakdown      map[string]string `json:"breakdown"`
	Interpretation map[string]string `json:"interpretation"`
}

// GuideEntry par código/significado para las tablas de referencia.
type GuideEntry struct {
	Code  string `json:"code"`
	Value string `json:"value"`
}

// Guide referencia estática de la estructura de los códigos de barras.
type Guide struct {
	Structure      string       `json:"structure"`
	Example        GuideExample `json:"example"`
	GenderPrefixes []GuideEntry `json:"gender_prefixes"`
	SizeCodes      []GuideEntry `json:"size_codes"`
	Notes          []string     `json:"notes"`
}

// BarcodeGuide devuelve la guía de lectura de los códigos de barras KOAJ.
func BarcodeGuide() Guide {
	return Guide{
		Structure: "10 / GÉNERO / CÓDIGO / PRECIO / TALLA",
		Example: GuideExample{
			Barcode: "1051421099032",
			Breakdown: map[string]string{
				"prefix":        "10",
				"gender":        "51",
				"category_code": "42",
				"price":         "10990",
				"size":          "32",
			},
			Interpretation: map[string]string{
				"prefix":   "Prefijo estándar KOAJ",
				"gender":   "Hombre",
				"category": "Bermudas",
				"price":    "$109.900",
				"size":     "Talla 32",
			},
		},
		GenderPrefixes: []GuideEntry{
			{Code: "1051", Value: "Hombre"},
			{Code: "1052", Value: "Mujer"},
			{Code: "1053", Value: "Niño"},
			{Code: "1054", Value: "Niña"},
		},
		SizeCodes: []GuideEntry{
			{Code: "1", Value: "XS"},
			{Code: "2", Value: "S"},
			{Code: "3", Value: "M"},
			{Code: "4", Value: "L"},
			{Code: "5", Value: "XL"},
			{Code: "6", Value: "2XL"},
			{Code: "28", Value: "Talla 28"},
			{Code: "30", Value: "Talla 30"},
			{Code: "32", Value: "Talla 32"},
			{Code: "34", Value: "Talla 34"},
			{Code: "36", Value: "Talla 36"},
			{Code: "38", Value: "Talla 38"},
			{Code: "40", Value: "Talla 40"},
		},
		Notes: []string{
			"El prefijo 10 es estándar para todos los productos KOAJ",
			"El precio se lee en centenas (10990 = $109.900)",
			"Las tallas numéricas (28-40) se usan principalmente para pantalones",
			"Las tallas alfabéticas (1-6) corresponden a XS-2XL",
		},
	}
}
