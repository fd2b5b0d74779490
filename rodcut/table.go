package rodcut

// bottomUp tabulates best(0..length) in increasing order; best(n) reads only
// already finalized cells 0..n−1.
//
// Complexity: O(L·M) time, O(L) memory.
func bottomUp(length int, table PriceTable) []cell {
	var (
		lengths = table.lengthsUpTo(length)
		cells   = make([]cell, length+1)
		n       int
		p       int
		v       float64
		sub     cell
	)
	cells[0] = cell{ok: true}

	for n = 1; n <= length; n++ {
		best := cell{}
		for _, p = range lengths {
			if p > n {
				break
			}
			sub = cells[n-p]
			if !sub.ok {
				continue
			}
			v = table[p] + sub.value
			if !best.ok || v > best.value {
				best = cell{value: v, first: p, ok: true}
			}
		}
		cells[n] = best
	}

	return cells
}
