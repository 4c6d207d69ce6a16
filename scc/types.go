// Package scc types and options for the Tarjan SCC walk.

package scc

import "errors"

// DefaultMaxDepth bounds the recursive walk when no WithMaxDepth option
// is given. Long simple paths beyond this depth fail with ErrDepthLimit
// rather than risking the host call stack.
const DefaultMaxDepth = 8192

// NoDepthLimit disables the recursion guard entirely; depth is then
// bounded only by the host call stack, which Go cannot recover from.
const NoDepthLimit = -1

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to
	// Components or IsCyclic.
	ErrNilGraph = errors.New("scc: graph is nil")

	// ErrDepthLimit is returned when the recursive SCC walk exceeds the
	// configured depth limit on a sufficiently long path. The graph's
	// persistent state is unaffected.
	ErrDepthLimit = errors.New("scc: recursion depth limit exceeded")
)

// Option configures optional behavior of an SCC computation.
// Use with Components(g, opts...) or IsCyclic(g, opts...).
type Option func(*Options)

// Options holds configurable parameters for one SCC computation.
// Nothing here persists across calls.
type Options struct {
	// Shuffle, if true, randomizes the root iteration order and each
	// vertex's successor iteration order for this call. Results are
	// invariant to the shuffling.
	Shuffle bool

	// Seed selects the deterministic RNG stream used when Shuffle is on.
	// Seed 0 maps to a fixed default seed, keeping defaults reproducible.
	Seed int64

	// MaxDepth bounds the recursion depth of the walk. Exceeding it fails
	// the call with ErrDepthLimit. NoDepthLimit disables the guard.
	MaxDepth int
}

// DefaultOptions returns the Options used when no Option is supplied:
// insertion-order traversal, seed-0 RNG policy, DefaultMaxDepth guard.
func DefaultOptions() Options {
	return Options{
		Shuffle:  false,
		Seed:     0,
		MaxDepth: DefaultMaxDepth,
	}
}

// WithShuffle returns an Option enabling randomized traversal order for
// this call. Root order and per-vertex successor order are both shuffled.
func WithShuffle() Option {
	return func(o *Options) {
		o.Shuffle = true
	}
}

// WithSeed returns an Option selecting the RNG stream for WithShuffle.
// Seed 0 keeps the default deterministic stream.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithMaxDepth returns an Option bounding the recursion depth to limit.
// Pass NoDepthLimit to disable the guard.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}
