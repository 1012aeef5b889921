package cash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koajpc/backoffice-api/internal/domain"
	"github.com/koajpc/backoffice-api/internal/domain/cash"
)

const umbralMenudo = 2000

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades del Allocator: conservación, cota, exactitud, monotonía y
// determinismo. El desempate prefiere más unidades de menudo en la base.
// ──────────────────────────────────────────────────────────────────────────────

// assertConservacion verifica que Kept[d] + ToDeposit[d] == contado[d] para
// toda denominación, incluyendo las que quedan en cero.
func assertConservacion(t *testing.T, counted cash.DenominationCount, res *cash.AllocationResult) {
	t.Helper()
	for d, q := range counted {
		assert.Equal(t, q, res.Kept[d]+res.ToDeposit[d],
			"conservación por denominación %d", d)
	}
	for d := range res.Kept {
		_, ok := counted[d]
		assert.True(t, ok, "la base no puede inventar denominación %d", d)
	}
}

func TestAllocate_BaseExacta(t *testing.T) {
	a := cash.NewAllocator(umbralMenudo)
	counted := cash.DenominationCount{1000: 5, 2000: 3, 5000: 1}

	res, err := a.Allocate(counted, 10000)
	require.NoError(t, err)

	assert.True(t, res.Exact, "con 5×1000+3×2000+1×5000 existe combinación exacta de 10000")
	assert.Equal(t, int64(0), res.Shortfall)
	assert.Equal(t, int64(10000), res.Kept.Total())
	assertConservacion(t, counted, res)
}

func TestAllocate_EfectivoInsuficiente(t *testing.T) {
	a := cash.NewAllocator(umbralMenudo)
	counted := cash.DenominationCount{1000: 1}

	res, err := a.Allocate(counted, 5000)
	require.NoError(t, err)

	assert.False(t, res.Exact)
	assert.Equal(t, int64(1), res.Kept[1000], "si no alcanza, todo lo contado queda en la base")
	assert.Equal(t, int64(1000), res.Achieved)
	assert.Equal(t, int64(4000), res.Shortfall)
	assert.Equal(t, int64(0), res.ToDeposit.Total())
}

func TestAllocate_ObjetivoCero(t *testing.T) {
	a := cash.NewAllocator(umbralMenudo)
	counted := cash.DenominationCount{1000: 3, 50000: 2}

	res, err := a.Allocate(counted, 0)
	require.NoError(t, err)

	assert.True(t, res.Exact, "objetivo 0 se logra trivialmente con base vacía")
	assert.Equal(t, int64(0), res.Kept.Total())
	assert.Equal(t, counted.Total(), res.ToDeposit.Total(), "todo lo contado se consigna")
	assertConservacion(t, counted, res)
}

func TestAllocate_ConteoVacio(t *testing.T) {
	a := cash.NewAllocator(umbralMenudo)

	res, err := a.Allocate(cash.DenominationCount{}, 8000)
	require.NoError(t, err)

	assert.False(t, res.Exact)
	assert.Equal(t, int64(0), res.Achieved)
	assert.Equal(t, int64(8000), res.Shortfall)
}

func TestAllocate_TotalIgualAlObjetivo(t *testing.T) {
	a := cash.NewAllocator(umbralMenudo)
	counted := cash.DenominationCount{20000: 2, 10000: 1}

	res, err := a.Allocate(counted, 50000)
	require.NoError(t, err)

	assert.True(t, res.Exact)
	assert.Equal(t, int64(50000), res.Achieved)
	assert.Equal(t, int64(0), res.ToDeposit.Total())
}

// El desempate debe preferir menudo en la base: con 10×1000 y 1×10000 ambas
// combinaciones logran 10000 exacto, pero la base debe quedarse con las
// monedas y consignar el billete grande.
func TestAllocate_DesempatePrefiereMenudo(t *testing.T) {
	a := cash.NewAllocator(umbralMenudo)
	counted := cash.DenominationCount{1000: 10, 10000: 1}

	res, err := a.Allocate(counted, 10000)
	require.NoError(t, err)

	assert.True(t, res.Exact)
	assert.Equal(t, int64(10), res.Kept[1000], "la base debe usar las 10 monedas de 1000")
	assert.Equal(t, int64(0), res.Kept[10000])
	assert.Equal(t, int64(1), res.ToDeposit[10000], "el billete de 10000 va a consignación")
}

// Monotonía: con el conteo fijo, subir el objetivo nunca reduce la base lograda.
func TestAllocate_Monotonia(t *testing.T) {
	a := cash.NewAllocator(umbralMenudo)
	counted := cash.DenominationCount{200: 7, 500: 3, 2000: 4, 5000: 2, 20000: 1}

	prev := int64(-1)
	for target := int64(0); target <= 42000; target += 700 {
		res, err := a.Allocate(counted, target)
		require.NoError(t, err)

		assert.LessOrEqual(t, res.Achieved, target, "la base nunca excede el objetivo")
		assert.GreaterOrEqual(t, res.Achieved, prev,
			"subir el objetivo a %d no puede reducir la base", target)
		assertConservacion(t, counted, res)
		prev = res.Achieved
	}
}

// Determinismo: la misma entrada produce siempre la misma partición.
func TestAllocate_Determinista(t *testing.T) {
	a := cash.NewAllocator(umbralMenudo)
	counted := cash.DenominationCount{100: 13, 500: 5, 1000: 9, 2000: 6, 5000: 3, 10000: 2}

	first, err := a.Allocate(counted, 23450)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := a.Allocate(counted, 23450)
		require.NoError(t, err)
		assert.Equal(t, first, again, "corrida %d difiere", i)
	}
}

func TestAllocate_EntradaMalformada(t *testing.T) {
	a := cash.NewAllocator(umbralMenudo)

	_, err := a.Allocate(cash.DenominationCount{1000: -1}, 5000)
	require.Error(t, err, "cantidad negativa debe rechazarse, nunca corregirse en silencio")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = a.Allocate(cash.DenominationCount{1000: 1}, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = a.Allocate(cash.DenominationCount{0: 3}, 1000)
	require.Error(t, err, "denominación no positiva debe rechazarse")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Objetivo no múltiplo de las denominaciones: la base es el mayor alcanzable
// por debajo y el faltante refleja la diferencia real.
func TestAllocate_ObjetivoNoAlcanzable(t *testing.T) {
	a := cash.NewAllocator(umbralMenudo)
	counted := cash.DenominationCount{2000: 10, 5000: 4}

	res, err := a.Allocate(counted, 10500)
	require.NoError(t, err)

	assert.False(t, res.Exact)
	assert.Equal(t, int64(10000), res.Achieved, "mayor combinación posible ≤ 10500")
	assert.Equal(t, int64(500), res.Shortfall)
	assertConservacion(t, counted, res)
}
