package batch

import (
	"bytes"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Field aliases accepted by the untyped decoders, in lookup order.
var (
	durationKeys = []string{"duration", "print_time"}
	maxCountKeys = []string{"max_count", "max_items"}
)

// JobFromMap converts an untyped record into a Job. index is reported in
// errors and should be the record's position in its list.
//
// Required keys: id (string), volume (number), priority (integer) and
// duration (number; "print_time" is accepted as an alias). Unknown keys are
// ignored. The returned Job is fully validated.
func JobFromMap(index int, m map[string]any) (Job, error) {
	if m == nil {
		return Job{}, fieldErrorf(index, "record", "is nil")
	}

	var (
		job Job
		err error
	)
	if job.ID, err = stringField(index, m, "id"); err != nil {
		return Job{}, err
	}
	if job.Volume, err = numberField(index, m, "volume"); err != nil {
		return Job{}, err
	}
	if job.Priority, err = intField(index, m, "priority"); err != nil {
		return Job{}, err
	}
	if job.Duration, err = numberField(index, m, durationKeys...); err != nil {
		return Job{}, err
	}
	if err = validateJob(index, job); err != nil {
		return Job{}, err
	}

	return job, nil
}

// LimitsFromMap converts an untyped record into Limits. Required keys:
// max_volume (number) and max_count (integer; "max_items" is an alias).
func LimitsFromMap(m map[string]any) (Limits, error) {
	if m == nil {
		return Limits{}, fieldErrorf(-1, "limits", "is nil")
	}

	var (
		l   Limits
		err error
	)
	if l.MaxVolume, err = numberField(-1, m, "max_volume"); err != nil {
		return Limits{}, err
	}
	if l.MaxCount, err = intField(-1, m, maxCountKeys...); err != nil {
		return Limits{}, err
	}
	if err = validateLimits(l); err != nil {
		return Limits{}, err
	}

	return l, nil
}

// RequestFromMaps converts untyped job records and limits into a validated
// Request, including the cross-record ID uniqueness check.
func RequestFromMaps(jobs []map[string]any, limits map[string]any) (Request, error) {
	var (
		req = Request{Jobs: make([]Job, 0, len(jobs))}
		err error
	)
	if req.Limits, err = LimitsFromMap(limits); err != nil {
		return Request{}, err
	}
	for i, m := range jobs {
		job, err := JobFromMap(i, m)
		if err != nil {
			return Request{}, err
		}
		req.Jobs = append(req.Jobs, job)
	}
	if err = validateAll(req.Jobs, req.Limits); err != nil {
		return Request{}, err
	}

	return req, nil
}

// OptimizeMaps is Optimize for untyped records, e.g. decoded JSON.
func OptimizeMaps(jobs []map[string]any, limits map[string]any, opts ...Option) (Result, error) {
	req, err := RequestFromMaps(jobs, limits)
	if err != nil {
		return Result{}, err
	}

	return Optimize(req.Jobs, req.Limits, opts...)
}

// DecodeYAML parses a scheduling document of the form
//
//	jobs:
//	  - {id: M1, volume: 100, priority: 1, duration: 120}
//	limits: {max_volume: 300, max_count: 2}
//
// Records go through the same checks as RequestFromMaps, so a missing or
// mistyped field is reported as ErrInvalidInput rather than zero-filled.
func DecodeYAML(data []byte) (Request, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Request{}, fieldErrorf(-1, "document", "is empty")
	}

	var doc struct {
		Jobs   []map[string]any `yaml:"jobs"`
		Limits map[string]any   `yaml:"limits"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Request{}, fmt.Errorf("%w: decode document: %v", ErrInvalidInput, err)
	}

	return RequestFromMaps(doc.Jobs, doc.Limits)
}

// lookup returns the value stored under the first present key.
func lookup(m map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v, true
		}
	}

	return nil, false
}

func stringField(index int, m map[string]any, keys ...string) (string, error) {
	v, ok := lookup(m, keys...)
	if !ok {
		return "", fieldErrorf(index, keys[0], "is missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", fieldErrorf(index, keys[0], "must be a string, got %T", v)
	}

	return s, nil
}

func numberField(index int, m map[string]any, keys ...string) (float64, error) {
	v, ok := lookup(m, keys...)
	if !ok {
		return 0, fieldErrorf(index, keys[0], "is missing")
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fieldErrorf(index, keys[0], "must be a number, got %T", v)
	}

	return f, nil
}

func intField(index int, m map[string]any, keys ...string) (int, error) {
	f, err := numberField(index, m, keys...)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fieldErrorf(index, keys[0], "must be an integer, got %v", f)
	}

	return int(f), nil
}

// toFloat accepts the numeric kinds produced by Go literals and by the
// yaml/json decoders. Booleans and strings are not numbers.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
