package rodcut

import "errors"

// Sentinel errors returned by the partitioner.
var (
	// ErrInvalidInput indicates a negative length, a price key below 1 or a
	// non-finite price.
	ErrInvalidInput = errors.New("rodcut: invalid input")

	// ErrUnsatisfiable indicates that no combination of priced segment
	// lengths sums to the requested length.
	ErrUnsatisfiable = errors.New("rodcut: length cannot be formed from priced segments")

	// ErrBadWitness is returned by Verify when a Result is inconsistent with
	// its length or price table.
	ErrBadWitness = errors.New("rodcut: witness does not match result")
)
