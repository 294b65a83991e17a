package citydetail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/terradart-api/internal/types"
)

// Service exposes the city-detail loader: a combined one-shot aggregate for
// plain JSON callers and a callback-driven Load for the streaming handler.
type Service interface {
	GetCityDetail(ctx context.Context, key types.CityKey, sections []types.Section) (*types.CityDetail, error)
	Load(ctx context.Context, key types.CityKey, sections []types.Section, cb Callbacks) func()
}

type ServiceImpl struct {
	orch   *Orchestrator
	logger *slog.Logger
}

var _ Service = (*ServiceImpl)(nil)

func NewService(orch *Orchestrator, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		orch:   orch,
		logger: logger,
	}
}

// Load starts a load cycle and returns its cancel function. Callback
// delivery is serialized, so callers may merge into a shared aggregate
// without locking.
func (s *ServiceImpl) Load(ctx context.Context, key types.CityKey, sections []types.Section, cb Callbacks) func() {
	return s.orch.Load(ctx, key, sections, cb)
}

// GetCityDetail runs all requested sections and waits for every one to
// settle, returning the merged aggregate. This is the degenerate single-shot
// case of the progressive loader: same fetchers, same merge, no streaming.
// A 404 on the base section means the city does not exist and surfaces as
// types.ErrNotFound so the handler can redirect instead of rendering inline
// errors.
func (s *ServiceImpl) GetCityDetail(ctx context.Context, key types.CityKey, sections []types.Section) (*types.CityDetail, error) {
	ctx, span := otel.Tracer("CityDetailService").Start(ctx, "GetCityDetail", trace.WithAttributes(
		attribute.String("city.name", key.City),
		attribute.Int("sections.count", len(sections)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "GetCityDetail"), slog.String("city", key.City))

	if strings.TrimSpace(key.City) == "" {
		return nil, fmt.Errorf("city name is required: %w", types.ErrBadRequest)
	}
	if len(sections) == 0 {
		sections = types.AllSections()
	}

	agg := types.CityDetail{
		City:    TitleCase(key.City),
		State:   key.State,
		Country: key.Country,
	}
	baseNotFound := false
	settled := make(chan types.Section, len(sections))

	cancel := s.Load(ctx, key, sections, Callbacks{
		OnSuccess: func(res types.SectionResult) {
			agg = Merge(agg, res)
		},
		OnError: func(section types.Section, message string) {
			if section == types.SectionBase && strings.Contains(message, "404") {
				baseNotFound = true
			}
			agg = MergeError(agg, section, message)
		},
		OnFinally: func(section types.Section) {
			settled <- section
		},
	})
	defer cancel()

	for remaining := len(sections); remaining > 0; remaining-- {
		select {
		case <-settled:
		case <-ctx.Done():
			span.SetStatus(codes.Ok, "Load cancelled by caller")
			return nil, ctx.Err()
		}
	}

	if baseNotFound {
		span.SetStatus(codes.Error, "City not found")
		return nil, fmt.Errorf("city %q: %w", key.City, types.ErrNotFound)
	}

	l.InfoContext(ctx, "city detail assembled",
		slog.Int("sections", len(sections)),
		slog.Int("errors", len(agg.Errors)))
	span.SetAttributes(attribute.Int("errors.count", len(agg.Errors)))
	span.SetStatus(codes.Ok, "City detail assembled")

	return &agg, nil
}
