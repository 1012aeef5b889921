// Package cash implementa el dominio del cierre de caja: conteo por
// denominación, partición base/consignación y el reporte de cierre.
package cash

import (
	"fmt"
	"sort"

	"github.com/koajpc/backoffice-api/internal/domain"
)

// DenominationCount mapa {denominación: cantidad de unidades}.
type DenominationCount map[int64]int64

// Total devuelve el valor total del conteo (Σ denominación × cantidad).
func (dc DenominationCount) Total() int64 {
	var total int64
	for denom, qty := range dc {
		total += denom * qty
	}
	return total
}

// Units devuelve la cantidad total de unidades físicas (monedas + billetes).
func (dc DenominationCount) Units() int64 {
	var units int64
	for _, qty := range dc {
		units += qty
	}
	return units
}

// Clone copia el conteo.
func (dc DenominationCount) Clone() DenominationCount {
	out := make(DenominationCount, len(dc))
	for d, q := range dc {
		out[d] = q
	}
	return out
}

// Merge combina dos conteos sumando cantidades por denominación.
func Merge(a, b DenominationCount) DenominationCount {
	out := a.Clone()
	for d, q := range b {
		out[d] += q
	}
	return out
}

// Subtract devuelve a - b por denominación. Asume b ⊆ a (cantidades no mayores).
func Subtract(a, b DenominationCount) DenominationCount {
	out := a.Clone()
	for d, q := range b {
		out[d] -= q
	}
	return out
}

// Restrict devuelve el sub-conteo de dc limitado a las denominaciones dadas,
// incluyendo explícitamente los ceros (para reportes completos por denominación).
func (dc DenominationCount) Restrict(denominations []int64) DenominationCount {
	out := make(DenominationCount, len(denominations))
	for _, d := range denominations {
		out[d] = dc[d]
	}
	return out
}

// Validate verifica que todas las denominaciones sean positivas y las
// cantidades no negativas. No corrige nada: entrada malformada es error.
func (dc DenominationCount) Validate() error {
	for denom, qty := range dc {
		if denom <= 0 {
			return fmt.Errorf("denominación %d no positiva: %w", denom, domain.ErrInvalidInput)
		}
		if qty < 0 {
			return fmt.Errorf("cantidad negativa para denominación %d: %w", denom, domain.ErrInvalidInput)
		}
	}
	return nil
}

// sortedDenominations devuelve las denominaciones con cantidad > 0 en orden
// ascendente. El orden fijo hace determinista la reconstrucción del DP.
func (dc DenominationCount) sortedDenominations() []int64 {
	denoms := make([]int64, 0, len(dc))
	for d, q := range dc {
		if q > 0 {
			denoms = append(denoms, d)
		}
	}
	sort.Slice(denoms, func(i, j int) bool { return denoms[i] < denoms[j] })
	return denoms
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
