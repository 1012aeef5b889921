package sku

import (
	"sort"
	"strconv"
)

// Department departamento comercial de la prenda según el nombre o el código
// de género del SKU.
type Department string

const (
	DeptHombre  Department = "HOMBRE"
	DeptMujer   Department = "MUJER"
	DeptNino    Department = "NIÑO"
	DeptNina    Department = "NIÑA"
	DeptUnknown Department = "UNKNOWN"
)

// SizeClass familia de tallaje de la prenda.
type SizeClass string

const (
	SizeAlpha   SizeClass = "ALPHA"   // XS, S, M, L, XL
	SizeNumeric SizeClass = "NUMERIC" // 2..38
	SizeUnique  SizeClass = "UNIQUE"  // talla única
	SizeKids    SizeClass = "KIDS"    // rangos 2-4 .. 12-14
	SizeUnknown SizeClass = "UNKNOWN"
)

// genderCodes dígitos 3-4 del SKU.
var genderCodes = map[string]Department{
	"51": DeptHombre,
	"52": DeptMujer,
	"53": DeptNino,
	"54": DeptNina,
}

// garmentTypes tabla completa de tipos de prenda por código.
var garmentTypes = map[string]string{
	// Accesorios
	"55": "MALETAS", "50": "GORRAS", "49": "CINTURONES",
	"48": "MEDIAS", "47": "BOXER",
	// Abrigos
	"46": "CHAQUETAS", "45": "CHALECOS", "32": "BUZO CAPOTA", "31": "FLEECE",
	// Tops (tallas alfabéticas)
	"44": "POLO", "43": "CAMISA MANGA LARGA", "27": "CAMISA MANGA CORTA",
	"40": "BLUSAS", "34": "CROP TOP", "1": "POLO MUJER", "5": "BLUSA NIÑA",
	// Pantalones (tallas numéricas)
	"38": "JOGGER MUJER", "16": "JOGGER HOMBRE", "37": "PANTALON TELA",
	"13": "PANTALON TELA NIÑA", "42": "BERMUDAS", "41": "SHORT",
	"18": "PANTALONETA NIÑO", "66": "SHORT NIÑA", "67": "PANTALONETA MUJER",
	// Jeans (tallas numéricas)
	"26": "BOYFRIEND", "25": "MOMFIT", "24": "BOTA CAMPANA",
	"23": "CARGO", "22": "90s", "20": "JEGGING", "61": "DRILL HOMBRE",
	// Vestidos y faldas
	"36": "VESTIDO", "19": "VESTIDO NIÑA", "62": "VESTIDOS TALLA UNICA",
	"29": "FALDA", "60": "FALDA NIÑA", "65": "FALDA TALLA UNICA",
	// Bodys
	"35": "BODYS", "7": "BODY NIÑA", "6": "BODY NIÑO", "28": "OVEROL",
	// Otros
	"39": "GAFAS", "33": "SOMBRERO", "30": "ZAPATOS", "21": "SET MEDIAS",
	"14": "LEGGIN NIÑA", "12": "BICICLETERO NIÑA",
	"63": "BLUSAS TALLA UNICA", "64": "SUETER TEJIDO TALLA UNICA",
	// Niños
	"17": "POLO NIÑO", "10": "BUZO NIÑO", "11": "CAMISA NIÑO", "8": "BUZO NIÑA",
	// Accesorios KOAJ
	"9": "TERMOS KOAJ", "4": "PINES KOAJ", "3": "BOLSA LICENCIA", "2": "VASOS KOAJ",
	// Especiales
	"15": "BONO REGALO",
}

// alphaSizes sufijo de un dígito para camisetas, polos y blusas.
var alphaSizes = map[string]string{
	"1": "XS",
	"2": "S",
	"3": "M",
	"4": "L",
	"5": "XL",
}

// numericSizes sufijos numéricos para jeans, joggers y pantalones. Se aceptan
// con y sin ceros a la izquierda porque las etiquetas impresas usan ambos.
var numericSizes = map[string]string{
	"002": "2", "004": "4", "006": "6", "008": "8",
	"010": "10", "012": "12", "014": "14", "016": "16",
	"018": "18", "020": "20", "022": "22", "024": "24",
	"026": "26", "028": "28", "030": "30", "032": "32",
	"034": "34", "036": "36", "038": "38",
	"2": "2", "4": "4", "6": "6", "8": "8",
	"10": "10", "12": "12", "14": "14", "16": "16",
	"18": "18", "20": "20", "22": "22", "24": "24",
	"26": "26", "28": "28", "30": "30", "32": "32",
	"34": "34", "36": "36", "38": "38",
}

// kidsSizes rangos de talla infantil.
var kidsSizes = map[string]string{
	"1214": "12-14", "1012": "10-12", "0810": "8-10",
	"0608": "6-8", "0406": "4-6", "0204": "2-4",
}

// uniqueSizeCodes códigos de prenda con talla única. El orden define cuál se
// reporta cuando el SKU contiene más de uno.
var uniqueSizeCodes = []string{"62", "63", "64", "65"}

// Códigos de prenda que usan tallaje numérico.
var (
	jeanCodes     = map[string]bool{"26": true, "25": true, "24": true, "23": true, "22": true, "20": true, "61": true}
	pantalonCodes = map[string]bool{"37": true, "13": true, "38": true, "16": true, "42": true, "41": true, "18": true, "66": true, "67": true}
)

// SizeClassFor clasifica el tallaje que usa una prenda a partir de su código
// y departamento: jeans y pantalones son numéricos, infantil usa rangos y el
// resto talla alfabética.
func SizeClassFor(garmentCode string, dept Department) SizeClass {
	for _, uc := range uniqueSizeCodes {
		if garmentCode == uc {
			return SizeUnique
		}
	}
	if jeanCodes[garmentCode] || pantalonCodes[garmentCode] {
		return SizeNumeric
	}
	if dept == DeptNino || dept == DeptNina {
		return SizeKids
	}
	return SizeAlpha
}

// GarmentTypeFor etiqueta legible del código de prenda, UNKNOWN si no está
// en la tabla.
func GarmentTypeFor(garmentCode string) string {
	if gt, ok := garmentTypes[garmentCode]; ok {
		return gt
	}
	return "UNKNOWN"
}

// GarmentEntry par código/tipo de la tabla de prendas.
type GarmentEntry struct {
	Code string
	Type string
}

// GarmentCatalog devuelve la tabla completa de prendas ordenada por código
// numérico. La usa el seeder del catálogo.
func GarmentCatalog() []GarmentEntry {
	entries := make([]GarmentEntry, 0, len(garmentTypes))
	for code, typ := range garmentTypes {
		entries = append(entries, GarmentEntry{Code: code, Type: typ})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, _ := strconv.Atoi(entries[i].Code)
		b, _ := strconv.Atoi(entries[j].Code)
		return a < b
	})
	return entries
}
