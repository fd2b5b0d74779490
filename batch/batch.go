package batch

import (
	"sort"
)

// Optimize orders jobs into batches under limits and reports the total
// processing time.
//
// Algorithm:
//  1. Stable-sort jobs ascending by Priority (input order breaks ties).
//  2. Open an empty batch. Take the next job while the batch holds fewer than
//     MaxCount jobs and its volume plus the job's volume stays ≤ MaxVolume.
//  3. If the very first job of an empty batch does not fit, it forms a
//     singleton batch on its own. Every batch therefore consumes at least one
//     job and the loop always terminates.
//  4. Batch duration = max member Duration; TotalTime = Σ batch durations.
//
// No job is dropped or duplicated: Order is a permutation of the input IDs.
//
// Errors: ErrInvalidInput (wrapped in *FieldError) for empty or duplicate IDs,
// negative or non-finite Volume/Duration, negative Priority, MaxCount ≤ 0 or
// NaN MaxVolume. Nothing is computed when validation fails.
//
// Complexity: O(n log n) time, O(n) memory.
func Optimize(jobs []Job, limits Limits, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateAll(jobs, limits); err != nil {
		return Result{}, err
	}

	// Copy so the caller's slice keeps its order.
	sorted := make([]Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].Priority < sorted[b].Priority
	})

	res := Result{
		Order:   make([]string, 0, len(sorted)),
		Batches: make([]Batch, 0),
	}

	var (
		i = 0 // next unscheduled job in sorted
		b Batch
	)
	for i < len(sorted) {
		b, i = fill(sorted, i, limits)
		res.Batches = append(res.Batches, b)
		res.Order = append(res.Order, b.JobIDs...)
		res.TotalTime += b.Duration

		o.Logger.Debug().
			Int("batch", len(res.Batches)-1).
			Int("size", len(b.JobIDs)).
			Float64("volume", b.Volume).
			Float64("duration", b.Duration).
			Bool("oversize", b.Volume > limits.MaxVolume).
			Msg("batch formed")
	}

	o.Logger.Debug().
		Int("jobs", len(jobs)).
		Int("batches", len(res.Batches)).
		Float64("total_time", res.TotalTime).
		Msg("schedule complete")

	return res, nil
}

// fill packs one batch starting at sorted[start] and returns it together with
// the index of the first job left for the next batch. The returned index is
// always greater than start when start < len(sorted).
func fill(sorted []Job, start int, limits Limits) (Batch, int) {
	var (
		b   = Batch{JobIDs: make([]string, 0, minInt(limits.MaxCount, len(sorted)-start))}
		j   = start
		job Job
	)
	for j < len(sorted) && len(b.JobIDs) < limits.MaxCount {
		job = sorted[j]
		if b.Volume+job.Volume > limits.MaxVolume {
			if len(b.JobIDs) > 0 {
				break // close the batch; job opens the next one
			}
			// Oversize job on an empty batch: isolate it.
			b.JobIDs = append(b.JobIDs, job.ID)
			b.Volume = job.Volume
			b.Duration = job.Duration
			j++

			break
		}
		b.JobIDs = append(b.JobIDs, job.ID)
		b.Volume += job.Volume
		if job.Duration > b.Duration {
			b.Duration = job.Duration
		}
		j++
	}

	return b, j
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
