// Package batch orders fabrication jobs into capacity-limited batches.
//
// 🚀 What does it do?
//
//	A shared resource (a print bed, an oven, a plotter) can process several
//	jobs at once, but only up to MaxCount jobs and MaxVolume total volume per
//	run. Optimize sorts jobs by priority and packs them greedily:
//	  • lower Priority runs earlier; equal priorities keep input order
//	  • a batch grows while it has room for both count and volume
//	  • a job too large for any batch runs alone instead of being rejected
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fabplan/batch"
//
//	res, err := batch.Optimize(jobs, batch.Limits{MaxVolume: 300, MaxCount: 2})
//	if err != nil {
//	  // errors.Is(err, batch.ErrInvalidInput)
//	}
//	fmt.Println(res.Order, res.TotalTime)
//
// Jobs inside one batch run in parallel, so a batch lasts as long as its
// slowest member; batches run one after another.
//
// Performance:
//
//   - Time:   O(n log n) for the stable sort, O(n) for the packing pass
//   - Memory: O(n)
//
// Untyped records (decoded JSON/YAML, map[string]any) are converted and
// validated at the boundary by JobFromMap, LimitsFromMap and DecodeYAML.
package batch
