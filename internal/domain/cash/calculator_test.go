package cash_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koajpc/backoffice-api/internal/domain/cash"
)

func testConfig() cash.Config {
	return cash.Config{
		TargetBase:           450000,
		SmallChangeThreshold: 2000,
		CoinDenominations:    []int64{50, 100, 200, 500, 1000},
		BillDenominations:    []int64{2000, 5000, 10000, 20000, 50000, 100000},
	}
}

func TestComputeTotals(t *testing.T) {
	c := cash.NewCalculator(testConfig())

	coins := cash.DenominationCount{100: 6, 200: 40, 500: 1}
	bills := cash.DenominationCount{2000: 16, 50000: 12}

	totalCoins, totalBills, totalGeneral := c.ComputeTotals(coins, bills)

	assert.Equal(t, int64(9100), totalCoins)
	assert.Equal(t, int64(632000), totalBills)
	assert.Equal(t, int64(641100), totalGeneral)
}

// Cierre completo con un conteo típico de tienda. La base debe ser exacta y
// el desempate debe meter el máximo menudo posible en ella: con monedas por
// 9100 (≡100 mod 1000) y billetes múltiplos de 1000, la única forma de
// maximizar monedas en la base es soltar una de 100 y dejar 9000 en monedas.
func TestProcessClosing_DiaCompleto(t *testing.T) {
	c := cash.NewCalculator(testConfig())

	coins := cash.DenominationCount{50: 0, 100: 6, 200: 40, 500: 1, 1000: 0}
	bills := cash.DenominationCount{2000: 16, 5000: 7, 10000: 7, 20000: 12, 50000: 12, 100000: 9}

	report, err := c.ProcessClosing(
		coins, bills,
		decimal.NewFromInt(0),     // excedente
		decimal.NewFromInt(13500), // gastos
		decimal.NewFromInt(0),     // préstamos
	)
	require.NoError(t, err)

	assert.Equal(t, int64(9100), report.Totals.TotalCoins)
	assert.Equal(t, int64(1877000), report.Totals.TotalBills)
	assert.Equal(t, int64(1886100), report.Totals.TotalGeneral)
	assert.Equal(t, "$1.886.100", report.Totals.TotalGeneralFormatted)

	assert.True(t, report.Base.ExactBaseObtained)
	assert.Equal(t, int64(450000), report.Base.TotalBase)
	assert.Equal(t, int64(0), report.Base.RemainingForBase)
	assert.Equal(t, int64(9000), report.Base.TotalBaseCoins, "máximo menudo alcanzable en la base")
	assert.Equal(t, int64(441000), report.Base.TotalBaseBills)
	assert.Equal(t, report.Base.TotalBase, report.Base.TotalBaseCoins+report.Base.TotalBaseBills)

	// Conservación global: base + consignación == total contado.
	assert.Equal(t, report.Totals.TotalGeneral,
		report.Base.TotalBase+report.Deposit.TotalBeforeAdjustments)

	// Ajustes: gastos se descuentan de la consignación, el excedente no.
	assert.Equal(t, int64(1436100), report.Deposit.TotalBeforeAdjustments)
	assert.Equal(t, int64(1422600), report.Deposit.FinalDeposit)
	assert.Equal(t, "$1.422.600", report.Deposit.FinalDepositFormatted)

	// Venta esperada: total - excedente - base.
	assert.Equal(t, int64(1436100), report.Adjustments.ExpectedCashSales)
}

// El excedente se excluye de la venta esperada pero NO se descuenta de la
// consignación: físicamente viaja al banco.
func TestProcessClosing_ExcedenteAsimetrico(t *testing.T) {
	c := cash.NewCalculator(testConfig())

	coins := cash.DenominationCount{}
	bills := cash.DenominationCount{50000: 10, 100000: 5}

	report, err := c.ProcessClosing(
		coins, bills,
		decimal.NewFromInt(20000), // excedente
		decimal.NewFromInt(5000),  // gastos
		decimal.NewFromInt(10000), // préstamos
	)
	require.NoError(t, err)

	assert.Equal(t, int64(1000000), report.Totals.TotalGeneral)
	assert.Equal(t, int64(450000), report.Base.TotalBase)
	assert.Equal(t, int64(550000), report.Deposit.TotalBeforeAdjustments)

	// FinalDeposit = 550000 - 5000 - 10000; el excedente de 20000 no resta.
	assert.Equal(t, int64(535000), report.Deposit.FinalDeposit)

	// ExpectedCashSales = 1000000 - 20000 - 450000.
	assert.Equal(t, int64(530000), report.Adjustments.ExpectedCashSales)
	assert.Equal(t, int64(20000), report.Adjustments.Surplus)
	assert.Equal(t, "$20.000", report.Adjustments.SurplusFormatted)
}

// Los ajustes llegan como decimal y se truncan a pesos enteros, nunca se
// redondean hacia arriba.
func TestProcessClosing_AjustesDecimalesTruncados(t *testing.T) {
	c := cash.NewCalculator(testConfig())

	bills := cash.DenominationCount{100000: 10}

	report, err := c.ProcessClosing(
		cash.DenominationCount{}, bills,
		decimal.NewFromFloat(1500.99),
		decimal.NewFromFloat(2300.75),
		decimal.NewFromFloat(999.50),
	)
	require.NoError(t, err)

	assert.Equal(t, int64(1500), report.Adjustments.Surplus)
	assert.Equal(t, int64(2300), report.Adjustments.OperatingExpenses)
	assert.Equal(t, int64(999), report.Adjustments.Loans)
}

// Cuando el efectivo no alcanza para la base, todo queda en caja y el
// faltante se reporta sin inventar plata para consignar.
func TestProcessClosing_BaseIncompleta(t *testing.T) {
	c := cash.NewCalculator(testConfig())

	coins := cash.DenominationCount{500: 4}
	bills := cash.DenominationCount{20000: 3}

	report, err := c.ProcessClosing(
		coins, bills,
		decimal.Zero, decimal.Zero, decimal.Zero,
	)
	require.NoError(t, err)

	assert.False(t, report.Base.ExactBaseObtained)
	assert.Equal(t, int64(62000), report.Base.TotalBase)
	assert.Equal(t, int64(388000), report.Base.RemainingForBase)
	assert.Equal(t, int64(0), report.Deposit.TotalBeforeAdjustments)
	assert.Equal(t, int64(0), report.Deposit.FinalDeposit)
}

// Las denominaciones configuradas aparecen en los mapas de entrada del
// reporte aunque lleguen en cero, para que el cliente pinte la grilla.
func TestProcessClosing_GrillaCompleta(t *testing.T) {
	cfg := testConfig()
	c := cash.NewCalculator(cfg)

	report, err := c.ProcessClosing(
		cash.DenominationCount{100: 2},
		cash.DenominationCount{50000: 9},
		decimal.Zero, decimal.Zero, decimal.Zero,
	)
	require.NoError(t, err)

	for _, d := range cfg.CoinDenominations {
		_, ok := report.InputCoins[d]
		assert.True(t, ok, "monedas de %d deben aparecer aunque estén en cero", d)
	}
	for _, d := range cfg.BillDenominations {
		_, ok := report.InputBills[d]
		assert.True(t, ok, "billetes de %d deben aparecer aunque estén en cero", d)
	}
}

func TestProcessClosing_EntradaInvalida(t *testing.T) {
	c := cash.NewCalculator(testConfig())

	_, err := c.ProcessClosing(
		cash.DenominationCount{100: -3},
		cash.DenominationCount{},
		decimal.Zero, decimal.Zero, decimal.Zero,
	)
	require.Error(t, err)
}
