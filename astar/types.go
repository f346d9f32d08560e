package astar

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for A* execution.
var (
	// ErrExpansionLimit is returned when WithMaxExpansions is exhausted before
	// the goal is popped. Unlike space.ErrNotFound, a path may still exist.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// TieBreak selects how frontier nodes with equal f are ordered.
// Insertion order always breaks the remaining ties, so every policy is deterministic.
type TieBreak int

const (
	// TieHighG prefers the node with the larger g (deeper, better informed).
	TieHighG TieBreak = iota
	// TieLowG prefers the node with the smaller g.
	TieLowG
	// TieFIFO prefers the node pushed first.
	TieFIFO
	// TieLIFO prefers the node pushed last.
	TieLIFO
)

// String returns the policy name.
func (t TieBreak) String() string {
	switch t {
	case TieHighG:
		return "high-g"
	case TieLowG:
		return "low-g"
	case TieFIFO:
		return "fifo"
	case TieLIFO:
		return "lifo"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// Option configures A* behavior via functional arguments.
type Option func(*Options)

// Options holds the parameters of one A* call.
type Options struct {
	// TieBreak orders nodes with equal f. Default TieHighG.
	TieBreak TieBreak

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit after that many expansions.
	MaxExpansions int

	// OnExpand is called for every expanded state with its g and h.
	OnExpand func(state any, g, h float64)

	// Logger receives one Debug record per expansion when non-nil.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with TieHighG, no expansion limit,
// a no-op OnExpand hook and no logger.
func DefaultOptions() Options {
	return Options{
		TieBreak:      TieHighG,
		MaxExpansions: 0,
		OnExpand:      func(any, float64, float64) {},
	}
}

// WithTieBreak sets the equal-f ordering policy.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		if t < TieHighG || t > TieLIFO {
			o.err = fmt.Errorf("%w: unknown tie-break %d", ErrOptionViolation, int(t))
			return
		}
		o.TieBreak = t
	}
}

// WithMaxExpansions bounds the number of expansions.
//
//	n > 0: limit to n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run for each expanded state.
func WithOnExpand(fn func(state any, g, h float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger enables per-expansion Debug logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
