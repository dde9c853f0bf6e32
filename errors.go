package parcount

import "errors"

var (
	// ErrInvalidConfig is returned for a worker count below one, a negative
	// sequence length, or any other setting Count cannot honour.
	ErrInvalidConfig = errors.New("parcount: invalid configuration")

	// ErrPartitionBounds is returned when a worker is handed a partition
	// that does not lie inside the input.
	ErrPartitionBounds = errors.New("parcount: partition out of bounds")

	// ErrUnknownDiscipline is returned by ParseDiscipline.
	ErrUnknownDiscipline = errors.New("parcount: unknown discipline")
)
