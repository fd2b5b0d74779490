package rodcut

import (
	"fmt"
	"math"
)

// verifyTol is the relative tolerance used when re-summing witness prices;
// summation order may differ from the engines' right-nested additions.
const verifyTol = 1e-9

// Verify checks res against length and table without trusting the engine:
// every cut is a priced positive length, the cuts sum to length, CutCount
// equals len(Cuts)−1 (0 for no cuts) and MaxValue equals the summed prices.
//
// It does not prove optimality. Errors wrap ErrBadWitness.
func Verify(length int, table PriceTable, res Result) error {
	var (
		sum   int
		value float64
	)
	for i, c := range res.Cuts {
		if c < 1 {
			return fmt.Errorf("%w: cut[%d]=%d is not positive", ErrBadWitness, i, c)
		}
		p, ok := table[c]
		if !ok {
			return fmt.Errorf("%w: cut[%d]=%d has no price", ErrBadWitness, i, c)
		}
		sum += c
		value += p
	}
	if sum != length {
		return fmt.Errorf("%w: cuts sum to %d, want %d", ErrBadWitness, sum, length)
	}

	wantCount := 0
	if len(res.Cuts) > 1 {
		wantCount = len(res.Cuts) - 1
	}
	if res.CutCount != wantCount {
		return fmt.Errorf("%w: cut count %d, want %d", ErrBadWitness, res.CutCount, wantCount)
	}

	if math.Abs(value-res.MaxValue) > verifyTol*math.Max(1, math.Abs(value)) {
		return fmt.Errorf("%w: value %v, cuts are worth %v", ErrBadWitness, res.MaxValue, value)
	}

	return nil
}
