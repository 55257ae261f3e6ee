// Package domain defines the core entities for radix.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Number: A canonical signed digit sequence in an input base
//   - Digits: A converted digit sequence in an output base
//   - Seq: The flat sequence form, digits mixed with sentinel markers
//   - Options: Conversion options (depth, recurring, exact)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
