package batch

// Job is one unit of work for the shared resource.
//
//   - ID       — caller-supplied identifier, unique within one call.
//   - Volume   — space the job occupies in a batch (≥ 0).
//   - Priority — lower values are scheduled earlier (≥ 0).
//   - Duration — processing time of the job on its own (≥ 0).
type Job struct {
	ID       string  `yaml:"id"`
	Volume   float64 `yaml:"volume"`
	Priority int     `yaml:"priority"`
	Duration float64 `yaml:"duration"`
}

// Limits bounds a single batch.
//
// MaxCount must be positive. MaxVolume may be any non-NaN number; jobs that
// do not fit are isolated as singletons, so even a negative bound terminates.
type Limits struct {
	MaxVolume float64 `yaml:"max_volume"`
	MaxCount  int     `yaml:"max_count"`
}

// Batch is a group of jobs processed together.
//
// Volume is the sum of member volumes and Duration the longest member
// duration. A Batch with Volume > Limits.MaxVolume always has exactly one job.
type Batch struct {
	JobIDs   []string
	Volume   float64
	Duration float64
}

// Result is the outcome of Optimize.
//
//   - Order     — job IDs in processing order (a permutation of the input).
//   - Batches   — the batches in processing order; Order is their concatenation.
//   - TotalTime — Σ Batch.Duration.
type Result struct {
	Order     []string
	Batches   []Batch
	TotalTime float64
}

// Request pairs a job list with its limits; it is the decoded shape of a
// scheduling document (see DecodeYAML).
type Request struct {
	Jobs   []Job
	Limits Limits
}
