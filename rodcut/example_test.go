package rodcut_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fabplan/rodcut"
)

// ExamplePartitionRod cuts a rod of length 5 with prices for lengths 1..5.
// Several partitions reach 12 ([1,2,2], [2,3], [1,1,3]…); the canonical
// witness is the lexicographically smallest non-decreasing one.
func ExamplePartitionRod() {
	res, err := rodcut.PartitionRod(5, []float64{2, 5, 7, 8, 10})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%g cuts=%v count=%d\n", res.MaxValue, res.Cuts, res.CutCount)
	// Output:
	// value=12 cuts=[1 2 2] count=2
}

// ExamplePartition_engines shows that both engines agree.
func ExamplePartition_engines() {
	table := rodcut.PricesFromSlice([]float64{1, 3, 8})
	for _, e := range []rodcut.Engine{rodcut.BottomUp, rodcut.TopDown} {
		res, _ := rodcut.Partition(3, table, rodcut.WithEngine(e))
		fmt.Printf("%s: value=%g cuts=%v count=%d\n", e, res.MaxValue, res.Cuts, res.CutCount)
	}
	// Output:
	// bottom-up: value=8 cuts=[3] count=0
	// top-down: value=8 cuts=[3] count=0
}

// ExamplePartition_unsatisfiable uses a sparse table that cannot form 7.
func ExamplePartition_unsatisfiable() {
	_, err := rodcut.Partition(7, rodcut.PriceTable{3: 4, 5: 9})
	fmt.Println(errors.Is(err, rodcut.ErrUnsatisfiable))
	// Output:
	// true
}
