package rodcut

// memo caches best(n) for a single top-down evaluation. It is created by
// topDown and dropped when the call returns.
type memo struct {
	table   PriceTable
	lengths []int // priced lengths ≤ L, ascending
	cells   []cell
	done    []bool
}

// topDown evaluates best(length) recursively. Each remaining length is
// solved once; later requests hit the memo.
//
// The returned slice holds a finalized cell for every length reachable from
// the root, which is all the witness reconstruction needs.
//
// Complexity: O(L·M) time, O(L) memory and recursion depth.
func topDown(length int, table PriceTable) []cell {
	m := &memo{
		table:   table,
		lengths: table.lengthsUpTo(length),
		cells:   make([]cell, length+1),
		done:    make([]bool, length+1),
	}
	m.cells[0] = cell{ok: true}
	m.done[0] = true
	m.solve(length)

	return m.cells
}

func (m *memo) solve(n int) cell {
	if m.done[n] {
		return m.cells[n]
	}

	var (
		best cell
		sub  cell
		v    float64
	)
	for _, p := range m.lengths {
		if p > n {
			break
		}
		sub = m.solve(n - p)
		if !sub.ok {
			continue
		}
		v = m.table[p] + sub.value
		if !best.ok || v > best.value {
			best = cell{value: v, first: p, ok: true}
		}
	}

	m.cells[n] = best
	m.done[n] = true

	return best
}
