package domain

// DefaultMaxDepth is the fractional digit budget used when no depth is
// given.
const DefaultMaxDepth = 10

// ExactDepthCeiling bounds the fractional expansion in exact mode. By
// pigeonhole a terminating or repeating expansion resolves within
// denominator steps, so in practice the ceiling is only reached for
// pathologically large denominators; hitting it yields a truncated
// result with no recurring marker, exactly like hitting MaxDepth.
const ExactDepthCeiling = 1 << 16

// Options holds the per-conversion knobs. The zero value means exact mode
// with cycle expansion disabled; use DefaultOptions for the conventional
// defaults.
type Options struct {
	// MaxDepth is the fractional digit budget. Zero means exact mode:
	// expand until termination or a detected cycle, bounded by the
	// ceiling.
	MaxDepth int

	// Recurring enables cycle detection and bracketed recurring output.
	// When false the expansion runs through cycles up to the depth bound.
	Recurring bool

	// Exact forces exact mode regardless of MaxDepth.
	Exact bool

	// Ceiling overrides ExactDepthCeiling for this conversion when
	// positive.
	Ceiling int
}

// DefaultOptions returns the conventional defaults: depth 10, recurring
// cycles detected and bracketed.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth, Recurring: true}
}

// Bound returns the effective fractional digit bound.
func (o Options) Bound() int {
	if o.Exact || o.MaxDepth <= 0 {
		if o.Ceiling > 0 {
			return o.Ceiling
		}
		return ExactDepthCeiling
	}
	return o.MaxDepth
}
