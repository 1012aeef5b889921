package cash

import (
	"github.com/shopspring/decimal"

	"github.com/koajpc/backoffice-api/pkg/money"
)

// Config parámetros del cierre de caja.
type Config struct {
	TargetBase           int64   // base objetivo que queda en caja
	SmallChangeThreshold int64   // umbral de menudo para el desempate del Allocator
	CoinDenominations    []int64 // denominaciones válidas de monedas
	BillDenominations    []int64 // denominaciones válidas de billetes
}

// Totals totales del efectivo contado.
type Totals struct {
	TotalCoins            int64  `json:"total_monedas"`
	TotalBills            int64  `json:"total_billetes"`
	TotalGeneral          int64  `json:"total_general"`
	TotalGeneralFormatted string `json:"total_general_formatted"`
}

// BaseInfo desglose de la base que queda en caja.
type BaseInfo struct {
	BaseCoins          DenominationCount `json:"base_monedas"`
	BaseBills          DenominationCount `json:"base_billetes"`
	TotalBaseCoins     int64             `json:"total_base_monedas"`
	TotalBaseBills     int64             `json:"total_base_billetes"`
	TotalBase          int64             `json:"total_base"`
	TotalBaseFormatted string            `json:"total_base_formatted"`
	ExactBaseObtained  bool              `json:"exact_base_obtained"`
	RemainingForBase   int64             `json:"restante_para_base"`
}

// DepositInfo desglose del efectivo para consignar.
type DepositInfo struct {
	DepositCoins                    DenominationCount `json:"consignar_monedas"`
	DepositBills                    DenominationCount `json:"consignar_billetes"`
	TotalBeforeAdjustments          int64             `json:"total_consignar_sin_ajustes"`
	TotalBeforeAdjustmentsFormatted string            `json:"total_consignar_sin_ajustes_formatted"`
	FinalDeposit                    int64             `json:"efectivo_para_consignar_final"`
	FinalDepositFormatted           string            `json:"efectivo_para_consignar_final_formatted"`
}

// Adjustments ajustes manuales del día y la venta esperada en efectivo.
type Adjustments struct {
	Surplus                    int64  `json:"excedente"`
	SurplusFormatted           string `json:"excedente_formatted"`
	OperatingExpenses          int64  `json:"gastos_operativos"`
	OperatingExpensesFormatted string `json:"gastos_operativos_formatted"`
	Loans                      int64  `json:"prestamos"`
	LoansFormatted             string `json:"prestamos_formatted"`
	ExpectedCashSales          int64  `json:"venta_efectivo_diaria_alegra"`
	ExpectedCashSalesFormatted string `json:"venta_efectivo_diaria_alegra_formatted"`
}

// ClosingReport reporte completo de un cierre de caja. Se construye una vez
// por petición y no se muta después.
type ClosingReport struct {
	InputCoins  DenominationCount `json:"input_coins"`
	InputBills  DenominationCount `json:"input_bills"`
	Totals      Totals            `json:"totals"`
	Base        BaseInfo          `json:"base"`
	Deposit     DepositInfo       `json:"consignar"`
	Adjustments Adjustments       `json:"adjustments"`
}

// Calculator orquesta el cierre de caja: totales, base vía Allocator,
// ajustes y venta esperada. Todo en pesos enteros; cómputo puro sin I/O.
type Calculator struct {
	cfg       Config
	allocator *Allocator
}

// NewCalculator construye el calculador con la configuración del negocio.
func NewCalculator(cfg Config) *Calculator {
	return &Calculator{
		cfg:       cfg,
		allocator: NewAllocator(cfg.SmallChangeThreshold),
	}
}

// ComputeTotals calcula los totales de monedas, billetes y general.
func (c *Calculator) ComputeTotals(coins, bills DenominationCount) (totalCoins, totalBills, totalGeneral int64) {
	totalCoins = coins.Total()
	totalBills = bills.Total()
	return totalCoins, totalBills, totalCoins + totalBills
}

// ComputeBaseAndDeposit combina monedas y billetes, resuelve la base con el
// Allocator y separa el resultado de vuelta en monedas/billetes para el
// reporte, preservando los totales del asignador.
func (c *Calculator) ComputeBaseAndDeposit(coins, bills DenominationCount) (BaseInfo, DepositInfo, error) {
	combined := Merge(coins, bills)

	alloc, err := c.allocator.Allocate(combined, c.cfg.TargetBase)
	if err != nil {
		return BaseInfo{}, DepositInfo{}, err
	}

	baseCoins := alloc.Kept.Restrict(c.cfg.CoinDenominations)
	baseBills := alloc.Kept.Restrict(c.cfg.BillDenominations)
	depositCoins := alloc.ToDeposit.Restrict(c.cfg.CoinDenominations)
	depositBills := alloc.ToDeposit.Restrict(c.cfg.BillDenominations)

	totalBaseCoins := baseCoins.Total()
	totalBaseBills := baseBills.Total()
	totalDeposit := depositCoins.Total() + depositBills.Total()

	base := BaseInfo{
		BaseCoins:          baseCoins,
		BaseBills:          baseBills,
		TotalBaseCoins:     totalBaseCoins,
		TotalBaseBills:     totalBaseBills,
		TotalBase:          alloc.Achieved,
		TotalBaseFormatted: money.FormatCOP(alloc.Achieved),
		ExactBaseObtained:  alloc.Exact,
		RemainingForBase:   alloc.Shortfall,
	}
	deposit := DepositInfo{
		DepositCoins:                    depositCoins,
		DepositBills:                    depositBills,
		TotalBeforeAdjustments:          totalDeposit,
		TotalBeforeAdjustmentsFormatted: money.FormatCOP(totalDeposit),
	}
	return base, deposit, nil
}

// ApplyAdjustments descuenta gastos operativos y préstamos del efectivo a
// consignar. El excedente NO se descuenta aquí: es plata que nunca hizo
// parte de las ventas y se excluye en ExpectedCashSales, pero sí viaja
// físicamente al banco.
func (c *Calculator) ApplyAdjustments(depositBeforeAdjustments, operatingExpenses, loans int64) int64 {
	return depositBeforeAdjustments - operatingExpenses - loans
}

// ExpectedCashSales venta en efectivo esperada según la fórmula del
// conciliador contable: TOTAL_GENERAL - EXCEDENTE - BASE. Se compara contra
// la venta en efectivo que reporta Alegra.
func (c *Calculator) ExpectedCashSales(totalGeneral, surplus, totalBase int64) int64 {
	return totalGeneral - surplus - totalBase
}

// ProcessClosing ejecuta el cierre completo: totales, base y consignación,
// ajustes y venta esperada. Los ajustes llegan como decimal desde el JSON y
// se truncan a pesos enteros.
func (c *Calculator) ProcessClosing(
	coins, bills DenominationCount,
	surplus, operatingExpenses, loans decimal.Decimal,
) (*ClosingReport, error) {
	totalCoins, totalBills, totalGeneral := c.ComputeTotals(coins, bills)

	base, deposit, err := c.ComputeBaseAndDeposit(coins, bills)
	if err != nil {
		return nil, err
	}

	surplusP := money.ToPesos(surplus)
	expensesP := money.ToPesos(operatingExpenses)
	loansP := money.ToPesos(loans)

	deposit.FinalDeposit = c.ApplyAdjustments(deposit.TotalBeforeAdjustments, expensesP, loansP)
	deposit.FinalDepositFormatted = money.FormatCOP(deposit.FinalDeposit)

	expectedSales := c.ExpectedCashSales(totalGeneral, surplusP, base.TotalBase)

	return &ClosingReport{
		InputCoins: coins.Restrict(c.cfg.CoinDenominations),
		InputBills: bills.Restrict(c.cfg.BillDenominations),
		Totals: Totals{
			TotalCoins:            totalCoins,
			TotalBills:            totalBills,
			TotalGeneral:          totalGeneral,
			TotalGeneralFormatted: money.FormatCOP(totalGeneral),
		},
		Base:    base,
		Deposit: deposit,
		Adjustments: Adjustments{
			Surplus:                    surplusP,
			SurplusFormatted:           money.FormatCOP(surplusP),
			OperatingExpenses:          expensesP,
			OperatingExpensesFormatted: money.FormatCOP(expensesP),
			Loans:                      loansP,
			LoansFormatted:             money.FormatCOP(loansP),
			ExpectedCashSales:          expectedSales,
			ExpectedCashSalesFormatted: money.FormatCOP(expectedSales),
		},
	}, nil
}
