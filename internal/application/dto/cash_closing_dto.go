package dto

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/koajpc/backoffice-api/internal/domain/cash"
)

// CashClosingRequest entrada del cierre de caja. Los conteos llegan con la
// denominación como clave string, tal como los manda el frontend.
type CashClosingRequest struct {
	Date             string           `json:"date" validate:"required"`
	Coins            map[string]int64 `json:"coins"`
	Bills            map[string]int64 `json:"bills"`
	Excedente        decimal.Decimal  `json:"excedente"`
	GastosOperativos decimal.Decimal  `json:"gastos_operativos"`
	Prestamos        decimal.Decimal  `json:"prestamos"`
}

// Validate revisa cantidades y ajustes negativos.
func (r *CashClosingRequest) Validate() error {
	for denom, qty := range r.Coins {
		if qty < 0 {
			return fmt.Errorf("cantidad negativa para moneda de %s: %d", denom, qty)
		}
	}
	for denom, qty := range r.Bills {
		if qty < 0 {
			return fmt.Errorf("cantidad negativa para billete de %s: %d", denom, qty)
		}
	}
	if r.Excedente.IsNegative() {
		return fmt.Errorf("el excedente no puede ser negativo")
	}
	if r.GastosOperativos.IsNegative() {
		return fmt.Errorf("los gastos operativos no pueden ser negativos")
	}
	if r.Prestamos.IsNegative() {
		return fmt.Errorf("los préstamos no pueden ser negativos")
	}
	return nil
}

// NormalizedCoins proyecta el conteo de monedas sobre las denominaciones
// válidas, rellenando ceros y descartando denominaciones desconocidas.
func (r *CashClosingRequest) NormalizedCoins(valid []int64) cash.DenominationCount {
	return normalize(r.Coins, valid)
}

// NormalizedBills igual que NormalizedCoins para billetes.
func (r *CashClosingRequest) NormalizedBills(valid []int64) cash.DenominationCount {
	return normalize(r.Bills, valid)
}

func normalize(counts map[string]int64, valid []int64) cash.DenominationCount {
	result := make(cash.DenominationCount, len(valid))
	for _, d := range valid {
		result[d] = 0
	}
	for key, qty := range counts {
		denom, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		if _, ok := result[denom]; ok && qty > 0 {
			result[denom] = qty
		}
	}
	return result
}

// AlegraErrorInfo detalle del fallo al consultar Alegra en una respuesta
// parcial.
type AlegraErrorInfo struct {
	Error string `json:"error"`
}

// CashClosingResponse respuesta del cierre: el conteo procesado más el
// resumen de ventas de Alegra (o el error si la consulta falló).
type CashClosingResponse struct {
	RequestDatetime string              `json:"request_datetime"`
	RequestDate     string              `json:"request_date"`
	RequestTime     string              `json:"request_time"`
	RequestTZ       string              `json:"request_tz"`
	DateRequested   string              `json:"date_requested"`
	UsernameUsed    string              `json:"username_used"`
	CashCount       *cash.ClosingReport `json:"cash_count"`
	Alegra          any                 `json:"alegra"`
}
