package sku_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/koajpc/backoffice-api/internal/domain/sku"
)

func TestParseCode_TallaAlfabetica(t *testing.T) {
	// 10 + 51 + (sin prenda) + 39900 + 4
	res := sku.ParseCode("1051399004", sku.DeptUnknown)

	assert.True(t, res.IsValid)
	assert.Equal(t, sku.DeptHombre, res.Department)
	assert.Equal(t, "51", res.GenderCode)
	assert.Equal(t, int64(39900), res.Price)
	assert.Equal(t, "4", res.SizeCode)
	assert.Equal(t, "L", res.Size)
	assert.Equal(t, sku.SizeAlpha, res.SizeClass)
}

func TestParseCode_TallaNumericaConCeros(t *testing.T) {
	// 10 + 52 + 38 + 89900 + 010
	res := sku.ParseCode("10523889900010", sku.DeptUnknown)

	assert.True(t, res.IsValid)
	assert.Equal(t, sku.DeptMujer, res.Department)
	assert.Equal(t, "38", res.GarmentCode)
	assert.Equal(t, "JOGGER MUJER", res.GarmentType)
	assert.Equal(t, int64(89900), res.Price)
	assert.Equal(t, "10", res.Size)
	assert.Equal(t, sku.SizeNumeric, res.SizeClass)
}

func TestParseCode_TallaInfantil(t *testing.T) {
	// 10 + 53 + 10 + 35900 + 0406
	res := sku.ParseCode("105310359000406", sku.DeptUnknown)

	assert.True(t, res.IsValid)
	assert.Equal(t, sku.DeptNino, res.Department)
	assert.Equal(t, "10", res.GarmentCode)
	assert.Equal(t, "BUZO NIÑO", res.GarmentType)
	assert.Equal(t, int64(35900), res.Price)
	assert.Equal(t, "4-6", res.Size)
	assert.Equal(t, sku.SizeKids, res.SizeClass)
}

func TestParseCode_TallaUnica(t *testing.T) {
	// El código reservado 62 corta el parseo: sin precio, talla ÚNICA.
	res := sku.ParseCode("1052629990", sku.DeptUnknown)

	assert.True(t, res.IsValid)
	assert.Equal(t, "62", res.GarmentCode)
	assert.Equal(t, "VESTIDOS TALLA UNICA", res.GarmentType)
	assert.Equal(t, int64(0), res.Price)
	assert.Equal(t, "U", res.SizeCode)
	assert.Equal(t, "ÚNICA", res.Size)
	assert.Equal(t, sku.SizeUnique, res.SizeClass)
}

// La gramática es ambigua por diseño: un sufijo que también es talla
// alfabética se resuelve por la primera estrategia. "004" termina en 4 y se
// lee como talla L, nunca como la numérica 4.
func TestParseCode_AlfabeticaGanaSobreNumerica(t *testing.T) {
	res := sku.ParseCode("1052404990004", sku.DeptUnknown)

	assert.Equal(t, "L", res.Size)
	assert.Equal(t, sku.SizeAlpha, res.SizeClass)
}

func TestParseCode_InvalidosDuros(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		reason string
	}{
		{"muy corto", "1051234", "SKU demasiado corto"},
		{"vacío", "", "SKU demasiado corto"},
		{"prefijo incorrecto", "2052388990010", "SKU debe empezar con 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := sku.ParseCode(tt.code, sku.DeptUnknown)
			assert.False(t, res.IsValid)
			assert.Equal(t, tt.reason, res.ErrorReason)
			assert.Equal(t, "UNKNOWN", res.Size)
		})
	}
}

// Estructura correcta pero ninguna tabla de talla casa: estado aceptado con
// talla UNKNOWN, no un error.
func TestParseCode_TallaNoIdentificada(t *testing.T) {
	res := sku.ParseCode("1051449900", sku.DeptUnknown)

	assert.True(t, res.IsValid)
	assert.Equal(t, "UNKNOWN", res.Size)
	assert.Equal(t, sku.SizeUnknown, res.SizeClass)
	assert.Equal(t, "Talla no identificada", res.ErrorReason)
}

func TestParseCode_GeneroDesconocidoUsaPista(t *testing.T) {
	// Género 59 no existe: se usa el departamento derivado del nombre.
	res := sku.ParseCode("10599990012", sku.DeptMujer)

	assert.Equal(t, sku.DeptMujer, res.Department)
	assert.Equal(t, "59", res.GenderCode)
}

func TestParseProductName_Completo(t *testing.T) {
	res := sku.ParseProductName("CAMISETA HOMBRE 39900 / 1051399004")

	assert.True(t, res.IsValid)
	assert.Equal(t, sku.DeptHombre, res.Department)
	assert.Equal(t, int64(39900), res.Price)
	assert.Equal(t, "CAMISETA HOMBRE", res.ProductBase)
	assert.Equal(t, "1051399004", res.SKUCode)
	assert.Equal(t, "L", res.Size)
}

// El departamento del nombre manda sobre el código de género del SKU.
func TestParseProductName_NombreMandaSobreCodigo(t *testing.T) {
	res := sku.ParseProductName("CAMISETA MUJER 39900 / 1051399004")

	assert.Equal(t, sku.DeptMujer, res.Department)
}

func TestParseProductName_SinSeparador(t *testing.T) {
	res := sku.ParseProductName("CAMISETA HOMBRE 39900")

	assert.False(t, res.IsValid)
	assert.Equal(t, "Formato de nombre inválido (falta /)", res.ErrorReason)
	assert.Equal(t, "CAMISETA HOMBRE 39900", res.ProductBase)
	assert.Equal(t, sku.DeptUnknown, res.Department)
}

func TestDepartmentFromName(t *testing.T) {
	tests := []struct {
		name string
		want sku.Department
	}{
		{"VESTIDO NIÑA 49900", sku.DeptNina},
		{"polo niño", sku.DeptNino},
		{"BLUSA DAMA", sku.DeptMujer},
		{"JOGGER MUJER 89900", sku.DeptMujer},
		{"POLO CABALLERO", sku.DeptHombre},
		{"CAMISA HOMBRE", sku.DeptHombre},
		{"GORRA KOAJ", sku.DeptUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sku.DepartmentFromName(tt.name), "nombre %q", tt.name)
	}
}

// La Ñ descompuesta (N + tilde combinante) también debe casar.
func TestDepartmentFromName_NormalizaUnicode(t *testing.T) {
	assert.Equal(t, sku.DeptNina, sku.DepartmentFromName("VESTIDO NIÑA"))
}

func TestSizeClassFor(t *testing.T) {
	assert.Equal(t, sku.SizeNumeric, sku.SizeClassFor("25", sku.DeptMujer))
	assert.Equal(t, sku.SizeNumeric, sku.SizeClassFor("42", sku.DeptHombre))
	assert.Equal(t, sku.SizeUnique, sku.SizeClassFor("62", sku.DeptMujer))
	assert.Equal(t, sku.SizeKids, sku.SizeClassFor("17", sku.DeptNino))
	assert.Equal(t, sku.SizeAlpha, sku.SizeClassFor("44", sku.DeptHombre))
}
