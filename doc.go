// Package fabplan is a small toolbox of deterministic planners for
// fabrication workflows: deciding what a shared machine should run next,
// and how to cut stock material for the most value.
//
// 🚀 What is inside?
//
//	batch/  — priority batching under count and volume limits
//	          (stable ordering, oversize jobs isolated, total run time)
//	rodcut/ — optimal rod cutting by dynamic programming
//	          (bottom-up table and top-down memo, one canonical witness)
//
// ✨ Properties:
//
//   - Pure functions – no I/O, no globals, scratch state is per call
//   - Safe for concurrent use from independent goroutines
//   - Strict validation at the boundary; sentinel errors for errors.Is
//   - Optional structured tracing through an injected zerolog.Logger
//
// Quick look:
//
//	res, _ := batch.Optimize(jobs, batch.Limits{MaxVolume: 300, MaxCount: 2})
//	cut, _ := rodcut.PartitionRod(5, []float64{2, 5, 7, 8, 10})
//
// See examples/fabplan for a runnable walkthrough.
package fabplan
