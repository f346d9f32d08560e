package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/katalvlaran/informed/astar"
	"github.com/katalvlaran/informed/idastar"
	"github.com/katalvlaran/informed/space"
)

const (
	metricsNamespace = "informed"
	tracerName       = "informed.cli"
)

// Search outcomes used as the "outcome" metric label.
const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeLimit    = "limit"
	outcomeError    = "error"
)

// searchMetrics holds the Prometheus metrics of one CLI run.
type searchMetrics struct {
	// SearchesTotal counts searches. Labels: kind, engine, outcome.
	SearchesTotal *prometheus.CounterVec

	// ExpandedStates observes Stats.Expanded per search. Labels: engine.
	ExpandedStates *prometheus.HistogramVec

	// PathCost observes the cost of found paths. Labels: kind.
	PathCost *prometheus.HistogramVec

	// DurationSeconds observes wall time per search. Labels: engine.
	DurationSeconds *prometheus.HistogramVec
}

// newSearchMetrics registers the metrics on reg.
func newSearchMetrics(reg prometheus.Registerer) *searchMetrics {
	factory := promauto.With(reg)

	return &searchMetrics{
		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "searches_total",
			Help:      "Searches run, by problem kind, engine and outcome",
		}, []string{"kind", "engine", "outcome"}),
		ExpandedStates: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "expanded_states",
			Help:      "States expanded per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"engine"}),
		PathCost: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "path_cost",
			Help:      "Cost of the paths found",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"kind"}),
		DurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time per search in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"engine"}),
	}
}

// observe records one finished search.
func (m *searchMetrics) observe(kind, engine, outcome string, stats space.Stats, cost float64, elapsed time.Duration) {
	m.SearchesTotal.WithLabelValues(kind, engine, outcome).Inc()
	m.ExpandedStates.WithLabelValues(engine).Observe(float64(stats.Expanded))
	m.DurationSeconds.WithLabelValues(engine).Observe(elapsed.Seconds())
	if outcome == outcomeFound {
		m.PathCost.WithLabelValues(kind).Observe(cost)
	}
}

// writeMetrics dumps g in the text exposition format.
func writeMetrics(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

// classify maps a search error onto an outcome label.
func classify(err error) string {
	switch {
	case err == nil:
		return outcomeFound
	case errors.Is(err, space.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, astar.ErrExpansionLimit), errors.Is(err, idastar.ErrIterationLimit):
		return outcomeLimit
	default:
		return outcomeError
	}
}

// setupTracing installs a global tracer provider that prints finished spans
// to w. The returned function flushes and shuts it down.
func setupTracing(w io.Writer) (func(context.Context) error, error) {
	exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("init stdout exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

// newLogger builds the run logger. format is "text" or "json".
func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format %q: want text or json", format)
	}
}
