package batch

import "math"

// validateAll checks the job list and limits before any scheduling work.
// The first violation wins; jobs are scanned in input order.
//
// Complexity: O(n) time, O(n) extra space for the ID set.
func validateAll(jobs []Job, limits Limits) error {
	if err := validateLimits(limits); err != nil {
		return err
	}

	seen := make(map[string]int, len(jobs))
	var (
		i   int
		job Job
	)
	for i, job = range jobs {
		if err := validateJob(i, job); err != nil {
			return err
		}
		if first, dup := seen[job.ID]; dup {
			return fieldErrorf(i, "id", "duplicate of job[%d] (%q)", first, job.ID)
		}
		seen[job.ID] = i
	}

	return nil
}

// validateLimits rejects a non-positive MaxCount and a NaN MaxVolume.
func validateLimits(limits Limits) error {
	if limits.MaxCount <= 0 {
		return fieldErrorf(-1, "max_count", "must be positive, got %d", limits.MaxCount)
	}
	if math.IsNaN(limits.MaxVolume) {
		return fieldErrorf(-1, "max_volume", "must be a number")
	}

	return nil
}

// validateJob checks a single record in isolation.
func validateJob(i int, job Job) error {
	if job.ID == "" {
		return fieldErrorf(i, "id", "must be non-empty")
	}
	if err := nonNegativeFinite(i, "volume", job.Volume); err != nil {
		return err
	}
	if job.Priority < 0 {
		return fieldErrorf(i, "priority", "must be non-negative, got %d", job.Priority)
	}

	return nonNegativeFinite(i, "duration", job.Duration)
}

func nonNegativeFinite(i int, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fieldErrorf(i, field, "must be finite, got %v", v)
	}
	if v < 0 {
		return fieldErrorf(i, field, "must be non-negative, got %v", v)
	}

	return nil
}
