package sku

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ──────────────────────────────────────────────────────────────────────────────
// Parser de códigos SKU KOAJ.
//
// Formato: 10 + GÉNERO(51-54) + CÓDIGO_PRENDA + PRECIO(5) + TALLA(1-4)
// Ejemplo: 1052388990010 = 10 + 52 + 38 + 89900 + 010
//
// La gramática no es libre de contexto: el mismo sufijo puede ser talla bajo
// más de una tabla, así que los campos solo se recuperan anclando el prefijo
// fijo por la izquierda y probando tablas de sufijo por la derecha en un
// orden fijo. Un SKU estructuralmente malo es inválido; un SKU bien formado
// cuya talla no casa con ninguna tabla es válido con talla UNKNOWN.
// ──────────────────────────────────────────────────────────────────────────────

const (
	skuPrefix    = "10"
	skuMinLength = 8
	priceDigits  = 5
)

// ParsedSKU resultado de decodificar un código SKU.
type ParsedSKU struct {
	RawCode     string     `json:"sku_code"`
	GenderCode  string     `json:"gender_code"`
	Department  Department `json:"gender"`
	GarmentCode string     `json:"garment_code"`
	GarmentType string     `json:"garment_type"`
	Price       int64      `json:"price"`
	SizeCode    string     `json:"size_code"`
	Size        string     `json:"size"`
	SizeClass   SizeClass  `json:"size_type"`
	IsValid     bool       `json:"is_valid"`
	ErrorReason string     `json:"error,omitempty"`
}

// ParsedProduct resultado de decodificar un nombre completo de producto
// tal como lo entrega Alegra: "CAMISETA MUJER 39900 / 1052399004".
type ParsedProduct struct {
	Size        string     `json:"size"`
	SizeCode    string     `json:"size_code"`
	SKUCode     string     `json:"sku_code"`
	Department  Department `json:"gender"`
	Price       int64      `json:"price"`
	ProductBase string     `json:"product_base"`
	IsValid     bool       `json:"is_valid"`
	ErrorReason string     `json:"error,omitempty"`
}

var (
	digitRunPattern      = regexp.MustCompile(`\d+`)
	trailingPricePattern = regexp.MustCompile(`\s+\d+\s*$`)
)

// ParseProductName separa un nombre de producto en nombre base, precio y SKU,
// y delega la talla al parser de códigos. El departamento del nombre manda;
// el del código de género solo se usa cuando el nombre no lo trae.
func ParseProductName(name string) ParsedProduct {
	parts := strings.Split(name, "/")
	if len(parts) != 2 {
		return ParsedProduct{
			Size:        "UNKNOWN",
			Department:  DeptUnknown,
			ProductBase: name,
			ErrorReason: "Formato de nombre inválido (falta /)",
		}
	}

	namePart := strings.TrimSpace(parts[0])
	code := strings.TrimSpace(parts[1])

	dept := DepartmentFromName(namePart)

	var price int64
	if runs := digitRunPattern.FindAllString(namePart, -1); len(runs) > 0 {
		price, _ = strconv.ParseInt(runs[len(runs)-1], 10, 64)
	}
	base := strings.TrimSpace(trailingPricePattern.ReplaceAllString(namePart, ""))

	parsed := ParseCode(code, dept)

	outDept := dept
	if outDept == DeptUnknown {
		outDept = parsed.Department
	}

	return ParsedProduct{
		Size:        parsed.Size,
		SizeCode:    parsed.SizeCode,
		SKUCode:     code,
		Department:  outDept,
		Price:       price,
		ProductBase: base,
		IsValid:     parsed.IsValid,
		ErrorReason: parsed.ErrorReason,
	}
}

// ParseCode decodifica un código SKU completo. hint es el departamento
// derivado del nombre, usado solo si el código de género no se reconoce.
func ParseCode(code string, hint Department) ParsedSKU {
	if len(code) < skuMinLength {
		return invalidSKU(code, "SKU demasiado corto")
	}
	if !strings.HasPrefix(code, skuPrefix) {
		return invalidSKU(code, "SKU debe empezar con 10")
	}

	genderCode := code[2:4]
	dept, ok := genderCodes[genderCode]
	if !ok {
		dept = hint
		if dept == "" {
			dept = DeptUnknown
		}
	}

	// Talla única: el código reservado puede aparecer en cualquier posición
	// del dígito porque estas referencias no codifican segmento de precio.
	for _, uc := range uniqueSizeCodes {
		if strings.Contains(code, uc) {
			return parseUniqueSize(code, genderCode, dept, uc)
		}
	}

	// Estrategias de sufijo, en orden. La primera tabla que reconozca el
	// sufijo de su longitud gana.
	if size, ok := alphaSizes[code[len(code)-1:]]; ok {
		return parseWithSize(code, genderCode, dept, code[len(code)-1:], size, SizeAlpha)
	}
	if size, ok := numericSizes[code[len(code)-3:]]; ok {
		return parseWithSize(code, genderCode, dept, code[len(code)-3:], size, SizeNumeric)
	}
	if size, ok := numericSizes[code[len(code)-2:]]; ok {
		return parseWithSize(code, genderCode, dept, code[len(code)-2:], size, SizeNumeric)
	}
	if size, ok := kidsSizes[code[len(code)-4:]]; ok {
		return parseWithSize(code, genderCode, dept, code[len(code)-4:], size, SizeKids)
	}

	// Estructura correcta pero ninguna tabla de talla casó: estado aceptado,
	// no un error duro.
	return ParsedSKU{
		RawCode:     code,
		GenderCode:  genderCode,
		Department:  dept,
		GarmentType: "UNKNOWN",
		Size:        "UNKNOWN",
		SizeClass:   SizeUnknown,
		IsValid:     true,
		ErrorReason: "Talla no identificada",
	}
}

// parseWithSize resuelve prenda y precio una vez fijada la talla: los 5
// dígitos anteriores al sufijo son el precio y lo que queda entre el prefijo
// de 4 caracteres y el precio es el código de prenda.
func parseWithSize(code, genderCode string, dept Department, sizeCode, size string, class SizeClass) ParsedSKU {
	middle := code[4 : len(code)-len(sizeCode)]

	var price int64
	garmentCode := middle
	if len(middle) >= priceDigits {
		priceStr := middle[len(middle)-priceDigits:]
		if allDigits(priceStr) {
			price, _ = strconv.ParseInt(priceStr, 10, 64)
			garmentCode = middle[:len(middle)-priceDigits]
		}
	}

	return ParsedSKU{
		RawCode:     code,
		GenderCode:  genderCode,
		Department:  dept,
		GarmentCode: garmentCode,
		GarmentType: GarmentTypeFor(garmentCode),
		Price:       price,
		SizeCode:    sizeCode,
		Size:        size,
		SizeClass:   class,
	}
}

func parseUniqueSize(code, genderCode string, dept Department, garmentCode string) ParsedSKU {
	garmentType, ok := garmentTypes[garmentCode]
	if !ok {
		garmentType = "TALLA UNICA"
	}
	return ParsedSKU{
		RawCode:     code,
		GenderCode:  genderCode,
		Department:  dept,
		GarmentCode: garmentCode,
		GarmentType: garmentType,
		SizeCode:    "U",
		Size:        "ÚNICA",
		SizeClass:   SizeUnique,
	}
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func invalidSKU(code, reason string) ParsedSKU {
	return ParsedSKU{
		RawCode:     code,
		Department:  DeptUnknown,
		GarmentType: "UNKNOWN",
		Size:        "UNKNOWN",
		SizeClass:   SizeUnknown,
		ErrorReason: reason,
	}
}

// DepartmentFromName busca palabras clave de departamento en el nombre. El
// orden importa: NIÑA antes que NIÑO, porque en mayúsculas uno contiene al
// otro como prefijo. Se normaliza a NFC para que la Ñ descompuesta de
// algunos catálogos también case.
func DepartmentFromName(name string) Department {
	upper := strings.ToUpper(norm.NFC.String(name))

	switch {
	case strings.Contains(upper, "NIÑA"):
		return DeptNina
	case strings.Contains(upper, "NIÑO"):
		return DeptNino
	case strings.Contains(upper, "MUJER"), strings.Contains(upper, "DAMA"):
		return DeptMujer
	case strings.Contains(upper, "HOMBRE"), strings.Contains(upper, "CABALLERO"):
		return DeptHombre
	}
	return DeptUnknown
}
