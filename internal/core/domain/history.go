package domain

import "time"

// Conversion is one recorded CLI conversion, kept in the history store.
type Conversion struct {
	// ID is the unique identifier for the record.
	ID string

	// Input is the raw input text as given.
	Input string

	// InputBase is the base the input was parsed in.
	InputBase int

	// OutputBase is the base the result is expressed in.
	OutputBase int

	// Output is the rendered result string.
	Output string

	// CreatedAt is when the conversion ran.
	CreatedAt time.Time
}
