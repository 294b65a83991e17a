package citydetail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/terradart-api/internal/types"
	"github.com/FACorreiaa/terradart-api/pkg/observability"
)

// Callbacks receive each section's outcome as soon as it settles. For a given
// section, OnSuccess or OnError fires first and OnFinally last; across
// sections there is no ordering at all.
type Callbacks struct {
	OnSuccess func(res types.SectionResult)
	OnError   func(section types.Section, message string)
	OnFinally func(section types.Section)
}

// Orchestrator fans out section fetches for one city key and fans their
// outcomes back in through caller-supplied callbacks. Sections have wildly
// different latency (weather is fast, a third-party activity catalog is
// slow); a combined wait would force the fastest section to render at the
// slowest one's pace, so each outcome is delivered independently.
type Orchestrator struct {
	fetchers map[types.Section]Fetcher
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewOrchestrator wires the per-section fetchers against the upstream client.
// metrics may be nil.
func NewOrchestrator(api CityDataAPI, logger *slog.Logger, metrics *observability.Metrics) *Orchestrator {
	return &Orchestrator{
		fetchers: sectionFetchers(api),
		logger:   logger,
		metrics:  metrics,
	}
}

// loadCycle scopes cancellation to one Load call. The mutex serializes
// callback delivery so the caller can merge into its aggregate without its
// own locking, and makes the cancelled check race-free: once cancel runs,
// zero callbacks fire, including for fetches already in flight.
type loadCycle struct {
	mu        sync.Mutex
	cancelled bool
}

// Load starts every requested section concurrently and returns a cancel
// function. Cancellation is cooperative and silent: in-flight requests are
// abandoned, their outcomes discarded without any callback, not even
// OnFinally.
func (o *Orchestrator) Load(ctx context.Context, key types.CityKey, sections []types.Section, cb Callbacks) func() {
	cycleCtx, stop := context.WithCancel(ctx)
	cycle := &loadCycle{}

	if o.metrics != nil {
		o.metrics.LoadsInFlight.Inc()
	}
	var pending sync.WaitGroup
	for _, section := range sections {
		fetch, ok := o.fetchers[section]
		if !ok {
			continue
		}
		pending.Add(1)
		go func(section types.Section, fetch Fetcher) {
			defer pending.Done()
			o.runSection(cycleCtx, cycle, key, section, fetch, cb)
		}(section, fetch)
	}
	go func() {
		pending.Wait()
		if o.metrics != nil {
			o.metrics.LoadsInFlight.Dec()
		}
		stop()
	}()

	return func() {
		cycle.mu.Lock()
		cycle.cancelled = true
		cycle.mu.Unlock()
		stop()
	}
}

func (o *Orchestrator) runSection(ctx context.Context, cycle *loadCycle, key types.CityKey, section types.Section, fetch Fetcher, cb Callbacks) {
	ctx, span := otel.Tracer("CityDetailOrchestrator").Start(ctx, "LoadSection", trace.WithAttributes(
		attribute.String("city.name", key.City),
		attribute.String("section", string(section)),
	))
	defer span.End()

	start := time.Now()
	res, err := o.safeFetch(ctx, key, section, fetch)
	elapsed := time.Since(start)

	if o.metrics != nil {
		outcome := "success"
		if err != nil {
			outcome = "failure"
		}
		o.metrics.SectionDuration.WithLabelValues(string(section), outcome).Observe(elapsed.Seconds())
	}

	cycle.mu.Lock()
	defer cycle.mu.Unlock()

	// The cancelled check comes before anything observable. A section that
	// settles after cancellation is inert.
	if cycle.cancelled {
		span.SetStatus(codes.Ok, "Cycle cancelled, result discarded")
		return
	}

	switch {
	case err == nil:
		span.SetStatus(codes.Ok, "Section loaded")
		if cb.OnSuccess != nil {
			cb.OnSuccess(res)
		}
	case errors.Is(err, context.Canceled):
		// Deliberate abort, not a failure. No callbacks at all.
		span.SetStatus(codes.Ok, "Fetch aborted")
		return
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, "Section fetch failed")
		if o.metrics != nil {
			o.metrics.SectionFailures.WithLabelValues(string(section)).Inc()
		}
		o.logger.WarnContext(ctx, "section fetch failed",
			slog.String("city", key.City),
			slog.String("section", string(section)),
			slog.Duration("duration", elapsed),
			slog.Any("error", err))
		if cb.OnError != nil {
			cb.OnError(section, err.Error())
		}
	}

	if cb.OnFinally != nil {
		cb.OnFinally(section)
	}
}

// safeFetch keeps a panicking fetcher from escaping the load cycle; the
// panic degrades to that section's error.
func (o *Orchestrator) safeFetch(ctx context.Context, key types.CityKey, section types.Section, fetch Fetcher) (res types.SectionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("section %s fetch panicked: %v", section, r)
		}
	}()
	return fetch(ctx, key)
}
