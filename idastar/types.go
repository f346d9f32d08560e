package idastar

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for IDA* execution.
var (
	// ErrIterationLimit is returned when WithMaxIterations contours ran without
	// reaching the goal. Unlike space.ErrNotFound, a path may still exist.
	ErrIterationLimit = errors.New("idastar: iteration limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("idastar: invalid option supplied")
)

// Option configures IDA* behavior via functional arguments.
type Option func(*Options)

// Options holds the parameters of one IDA* call.
type Options struct {
	// MaxIterations, if > 0, bounds the number of contours.
	MaxIterations int

	// MaxDepth, if > 0, cuts branches deeper than MaxDepth edges.
	MaxDepth int

	// OnContour is called before each contour with its threshold and 1-based index.
	OnContour func(threshold float64, iteration int)

	// OnExpand is called for every expanded state with its g and h.
	OnExpand func(state any, g, h float64)

	// Logger receives Debug records "contour" and "expand" when non-nil.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no limits and no-op hooks.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 0,
		MaxDepth:      0,
		OnContour:     func(float64, int) {},
		OnExpand:      func(any, float64, float64) {},
	}
}

// WithMaxIterations bounds the number of contours.
//
//	n > 0: at most n contours
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithMaxDepth cuts every branch longer than n edges. A cut branch does not
// raise the next threshold, so space.ErrNotFound then means "no path within n edges".
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxDepth = n
	}
}

// WithOnContour registers a callback run at the start of every contour.
func WithOnContour(fn func(threshold float64, iteration int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnContour = fn
		}
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

// WithLogger enables Debug logging of contours and expansions.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
