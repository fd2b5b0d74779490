package rodcut

import (
	"fmt"
	"math"
)

// PartitionRod is Partition for a dense price list: prices[i] is the value
// of a segment of length i+1, and lengths beyond len(prices) are unpriced.
func PartitionRod(length int, prices []float64, opts ...Option) (Result, error) {
	return Partition(length, PricesFromSlice(prices), opts...)
}

// Partition returns the maximum value obtainable by cutting a rod of the
// given length into priced segments, together with one optimal witness.
//
// Contract:
//   - length ≥ 0; every key of table is ≥ 1 and every price is finite.
//   - length == 0 always yields Result{MaxValue: 0, Cuts: [], CutCount: 0}.
//   - Both engines return the same MaxValue and the same Cuts: the shortest
//     optimal first piece is taken at every step, which produces the
//     lexicographically smallest non-decreasing optimal sequence.
//
// Errors:
//   - ErrInvalidInput  — negative length, price key < 1, NaN or ±Inf price.
//   - ErrUnsatisfiable — no combination of priced lengths sums to length.
//
// On error the returned Result is the zero value.
//
// Complexity: O(L·M) time, O(L) memory (M = priced lengths ≤ L).
func Partition(length int, table PriceTable, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validate(length, table); err != nil {
		return Result{}, err
	}

	var cells []cell
	switch o.Engine {
	case TopDown:
		cells = topDown(length, table)
	default:
		cells = bottomUp(length, table)
	}

	if !cells[length].ok {
		o.Logger.Debug().
			Stringer("engine", o.Engine).
			Int("length", length).
			Msg("partition unsatisfiable")

		return Result{}, fmt.Errorf("%w: length %d", ErrUnsatisfiable, length)
	}

	res := Result{
		MaxValue: cells[length].value,
		Cuts:     witness(cells, length),
	}
	if len(res.Cuts) > 1 {
		res.CutCount = len(res.Cuts) - 1
	}

	o.Logger.Debug().
		Stringer("engine", o.Engine).
		Int("length", length).
		Float64("value", res.MaxValue).
		Ints("cuts", res.Cuts).
		Msg("partition solved")

	return res, nil
}

// witness walks first-piece pointers from length down to 0.
func witness(cells []cell, length int) []int {
	cuts := make([]int, 0)
	for n := length; n > 0; n -= cells[n].first {
		cuts = append(cuts, cells[n].first)
	}

	return cuts
}

// validate checks the length and every table entry before any work.
func validate(length int, table PriceTable) error {
	if length < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidInput, length)
	}
	for l, p := range table {
		if l < 1 {
			return fmt.Errorf("%w: segment length %d must be ≥ 1", ErrInvalidInput, l)
		}
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("%w: price for length %d is %v", ErrInvalidInput, l, p)
		}
	}

	return nil
}
