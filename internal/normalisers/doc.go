// Package normalisers parses the accepted input forms into a canonical
// domain.Number. Each input form has its own entry point:
//
//   - String: symbol strings such as "FF0.8" or "-0.[3]"
//   - Seq: digit sequences mixing raw values with sentinel tokens
//   - Float: native floats, decomposed exactly via their binary value
//
// All validation errors (invalid base, invalid digit, malformed number)
// are raised here; the converters downstream assume validated input.
package normalisers
