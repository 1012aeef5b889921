package cash

import (
	"fmt"

	"github.com/koajpc/backoffice-api/internal/domain"
)

// AllocationResult partición del efectivo contado en base (queda en caja)
// y consignación (va al banco). Invariante: para toda denominación d,
// Kept[d] + ToDeposit[d] == contado[d].
type AllocationResult struct {
	Kept      DenominationCount // se queda en caja como base
	ToDeposit DenominationCount // sale a consignación
	Achieved  int64             // valor de la base lograda (≤ objetivo)
	Shortfall int64             // objetivo - Achieved (0 si la base es exacta)
	Exact     bool              // true si Achieved == objetivo
}

// Allocator arma la base de caja resolviendo un subset-sum acotado por las
// cantidades disponibles de cada denominación (knapsack con multiplicidad).
//
// Política de desempate: entre combinaciones que logran el mismo valor de
// base se prefiere la que usa MÁS unidades de menudo (denominación <
// smallChangeThreshold), de modo que la consignación quede dominada por
// billetes grandes, fáciles de empacar. El desempate restante lo fija el
// orden de proceso: denominaciones ascendentes y, a igual objetivo, la menor
// cantidad de unidades de la denominación en curso. El resultado es
// completamente determinista.
type Allocator struct {
	smallChangeThreshold int64
}

// NewAllocator construye el asignador. smallChangeThreshold define qué se
// considera menudo (típicamente $2.000: monedas y el billete más pequeño).
func NewAllocator(smallChangeThreshold int64) *Allocator {
	return &Allocator{smallChangeThreshold: smallChangeThreshold}
}

// Allocate selecciona el sub-multiconjunto del conteo cuyo valor se acerque
// lo más posible al objetivo sin excederlo. Programación dinámica 1-D sobre
// montos alcanzables 0..target, una pasada por denominación respetando su
// cantidad disponible. No hace I/O; solo falla con entrada malformada.
func (a *Allocator) Allocate(counted DenominationCount, target int64) (*AllocationResult, error) {
	if target < 0 {
		return nil, fmt.Errorf("objetivo de base negativo (%d): %w", target, domain.ErrInvalidInput)
	}
	if err := counted.Validate(); err != nil {
		return nil, err
	}

	kept := make(DenominationCount, len(counted))

	// Casos triviales: sin objetivo o sin efectivo, la base queda vacía o
	// se retiene todo lo contado.
	totalCounted := counted.Total()
	if target == 0 || totalCounted == 0 {
		result := &AllocationResult{
			Kept:      kept,
			ToDeposit: counted.Clone(),
			Achieved:  0,
			Shortfall: target,
			Exact:     target == 0,
		}
		return result, nil
	}
	if totalCounted <= target {
		// No alcanza (o alcanza justo): toda la plata contada es la base.
		return &AllocationResult{
			Kept:      counted.Clone(),
			ToDeposit: make(DenominationCount, len(counted)),
			Achieved:  totalCounted,
			Shortfall: target - totalCounted,
			Exact:     totalCounted == target,
		}, nil
	}

	denoms := counted.sortedDenominations()

	// Todos los montos alcanzables son múltiplos del MCD de las
	// denominaciones; escalar reduce la tabla (COP usa múltiplos de 50).
	scale := denoms[0]
	for _, d := range denoms[1:] {
		scale = gcd(scale, d)
	}
	cap64 := target / scale
	capacity := int(cap64)

	const unreachable = int32(-1)

	// prev/cur: máximo de unidades de menudo usadas para alcanzar cada monto.
	// choice[i][s]: unidades de la denominación i usadas en el óptimo de s.
	prev := make([]int32, capacity+1)
	cur := make([]int32, capacity+1)
	for s := 1; s <= capacity; s++ {
		prev[s] = unreachable
	}
	choice := make([][]int32, len(denoms))

	for i, denom := range denoms {
		qty := counted[denom]
		step := int(denom / scale)
		var smallGain int32
		if denom < a.smallChangeThreshold {
			smallGain = 1
		}
		choice[i] = make([]int32, capacity+1)

		for s := 0; s <= capacity; s++ {
			best := unreachable
			bestK := int32(0)
			for k := int64(0); k <= qty && int(k)*step <= s; k++ {
				from := prev[s-int(k)*step]
				if from == unreachable {
					continue
				}
				cand := from + int32(k)*smallGain
				// Estrictamente mayor: a igual menudo gana el k menor,
				// dejando los billetes grandes para la consignación.
				if cand > best {
					best = cand
					bestK = int32(k)
				}
			}
			cur[s] = best
			choice[i][s] = bestK
		}
		prev, cur = cur, prev
	}

	// Mayor monto alcanzable ≤ objetivo.
	bestS := 0
	for s := capacity; s >= 0; s-- {
		if prev[s] != unreachable {
			bestS = s
			break
		}
	}

	// Reconstrucción: recorrer las denominaciones en orden inverso.
	s := bestS
	for i := len(denoms) - 1; i >= 0; i-- {
		k := choice[i][s]
		if k > 0 {
			kept[denoms[i]] = int64(k)
		}
		s -= int(k) * int(denoms[i]/scale)
	}

	achieved := int64(bestS) * scale
	return &AllocationResult{
		Kept:      kept,
		ToDeposit: Subtract(counted, kept),
		Achieved:  achieved,
		Shortfall: target - achieved,
		Exact:     achieved == target,
	}, nil
}
