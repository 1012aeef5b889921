// Package money maneja montos en pesos colombianos (COP).
// El COP no usa centavos en retail: todos los montos son enteros.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCOP formatea un monto como pesos colombianos: "$1.234.567".
// Separador de miles "." y sin decimales. El signo va después del "$"
// para montos negativos: "$-1.234".
func FormatCOP(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3 + 2)
	b.WriteByte('$')
	if neg {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// FormatCOPDecimal redondea al peso más cercano y formatea como COP.
func FormatCOPDecimal(amount decimal.Decimal) string {
	return FormatCOP(amount.Round(0).IntPart())
}

// ToPesos trunca un decimal a pesos enteros (sin redondear), igual que
// el backend contable: los centavos nunca entran a la caja.
func ToPesos(amount decimal.Decimal) int64 {
	return amount.IntPart()
}
