// Package rodcut finds the most valuable way to cut a linear resource
// (a rod, a filament spool, a timber beam) into priced integer segments.
//
// 🚀 What is rod cutting?
//
//	Given a length L and a price for each segment length, choose positive
//	segment lengths that sum to L and maximise the total price:
//
//	  best(0) = 0
//	  best(n) = max { price(i) + best(n−i) : 1 ≤ i ≤ n, price(i) defined }
//
//	Lengths without a price entry cannot be cut. When no combination of
//	priced lengths sums to L the instance is unsatisfiable.
//
// ✨ Engines:
//   - BottomUp (default) — tabulates best(0..L) in increasing order.
//   - TopDown            — recursion with a memo keyed by remaining length.
//
// Both engines scan candidate first pieces shortest first and keep the first
// maximum, so among equal-value partitions they return the same witness: the
// lexicographically smallest non-decreasing sequence of segment lengths.
// Memo and table live only for the duration of one call.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fabplan/rodcut"
//
//	res, err := rodcut.PartitionRod(5, []float64{2, 5, 7, 8, 10})
//	// res.MaxValue == 12, res.Cuts == [1 2 2], res.CutCount == 2
//
//	res, err = rodcut.Partition(7, rodcut.PriceTable{3: 4, 5: 9},
//	    rodcut.WithEngine(rodcut.TopDown))
//	// errors.Is(err, rodcut.ErrUnsatisfiable)
//
// Performance:
//
//   - Time:   O(L·M) where M is the number of priced lengths ≤ L
//   - Memory: O(L)
package rodcut
