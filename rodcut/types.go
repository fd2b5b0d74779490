package rodcut

import (
	"fmt"
	"sort"
)

// PriceTable maps a segment length (≥ 1) to its value. A length without an
// entry cannot be produced.
type PriceTable map[int]float64

// PricesFromSlice builds a PriceTable where prices[i] is the value of a
// segment of length i+1.
func PricesFromSlice(prices []float64) PriceTable {
	t := make(PriceTable, len(prices))
	for i, p := range prices {
		t[i+1] = p
	}

	return t
}

// lengthsUpTo returns the priced lengths ≤ limit in ascending order.
// The ascending order is what makes the shortest first piece win ties.
func (t PriceTable) lengthsUpTo(limit int) []int {
	out := make([]int, 0, len(t))
	for l := range t {
		if l <= limit {
			out = append(out, l)
		}
	}
	sort.Ints(out)

	return out
}

// Engine selects the dynamic-programming strategy.
type Engine int

const (
	// BottomUp fills a results table for lengths 0..L in increasing order.
	BottomUp Engine = iota

	// TopDown evaluates the recurrence recursively with a per-call memo.
	TopDown
)

// String implements fmt.Stringer.
func (e Engine) String() string {
	switch e {
	case BottomUp:
		return "bottom-up"
	case TopDown:
		return "top-down"
	default:
		return fmt.Sprintf("Engine(%d)", int(e))
	}
}

// Result is an optimal partition.
//
//   - MaxValue — total value of the partition.
//   - Cuts     — segment lengths, non-decreasing, summing to the rod length.
//     Empty (never nil) for a zero-length rod.
//   - CutCount — number of cuts made, len(Cuts)−1, or 0 for an empty rod.
type Result struct {
	MaxValue float64
	Cuts     []int
	CutCount int
}

// cell is one finalized sub-result best(n).
//
//   - ok    — false when n cannot be formed from priced lengths.
//   - first — the length of the first piece of the witness (0 for n == 0).
type cell struct {
	value float64
	first int
	ok    bool
}
