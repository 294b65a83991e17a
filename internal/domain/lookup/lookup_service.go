package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/FACorreiaa/terradart-api/internal/types"
)

// LookupAPI is the slice of the upstream client the lookup service needs.
type LookupAPI interface {
	Countries(ctx context.Context) ([]types.CountryEntry, error)
	States(ctx context.Context, iso2 string) ([]types.StateEntry, error)
	CitiesByCountry(ctx context.Context, iso2 string) ([]types.CityOption, error)
	CitiesByState(ctx context.Context, countryISO2, stateISO2 string) ([]types.CityOption, error)
	CityByRegion(ctx context.Context, region string, capital bool) (*types.RegionCity, error)
}

// Service serves the country/state/city selection lists and the "surprise me"
// region pick. The lists change rarely, so they are cached and concurrent
// cold-cache requests are collapsed into a single upstream call.
type Service interface {
	Countries(ctx context.Context) ([]types.CountryEntry, error)
	States(ctx context.Context, iso2 string) ([]types.StateEntry, error)
	CitiesByCountry(ctx context.Context, iso2 string) ([]types.CityOption, error)
	CitiesByState(ctx context.Context, countryISO2, stateISO2 string) ([]types.CityOption, error)
	CityByRegion(ctx context.Context, region string, capital bool) (*types.RegionCity, error)
}

type ServiceImpl struct {
	api    LookupAPI
	cache  *cache.Cache
	group  singleflight.Group
	logger *slog.Logger
}

var _ Service = (*ServiceImpl)(nil)

func NewService(api LookupAPI, ttl time.Duration, logger *slog.Logger) *ServiceImpl {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &ServiceImpl{
		api:    api,
		cache:  cache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// cached runs fetch under a singleflight keyed by cacheKey and memoizes the
// result. Errors are never cached.
func cached[T any](ctx context.Context, s *ServiceImpl, cacheKey string, fetch func(context.Context) (T, error)) (T, error) {
	if hit, ok := s.cache.Get(cacheKey); ok {
		if value, ok := hit.(T); ok {
			return value, nil
		}
	}

	result, err, _ := s.group.Do(cacheKey, func() (any, error) {
		value, err := fetch(ctx)
		if err != nil {
			return value, err
		}
		s.cache.SetDefault(cacheKey, value)
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}

func (s *ServiceImpl) Countries(ctx context.Context) ([]types.CountryEntry, error) {
	ctx, span := otel.Tracer("LookupService").Start(ctx, "Countries")
	defer span.End()

	countries, err := cached(ctx, s, "countries", s.api.Countries)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Countries lookup failed")
		return nil, fmt.Errorf("fetching countries: %w", err)
	}
	span.SetAttributes(attribute.Int("countries.count", len(countries)))
	return countries, nil
}

func (s *ServiceImpl) States(ctx context.Context, iso2 string) ([]types.StateEntry, error) {
	ctx, span := otel.Tracer("LookupService").Start(ctx, "States", trace.WithAttributes(
		attribute.String("country.iso2", iso2),
	))
	defer span.End()

	iso2 = strings.ToUpper(strings.TrimSpace(iso2))
	if iso2 == "" {
		return nil, fmt.Errorf("country code is required: %w", types.ErrBadRequest)
	}

	states, err := cached(ctx, s, "states:"+iso2, func(ctx context.Context) ([]types.StateEntry, error) {
		return s.api.States(ctx, iso2)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "States lookup failed")
		return nil, fmt.Errorf("fetching states for %s: %w", iso2, err)
	}
	return states, nil
}

func (s *ServiceImpl) CitiesByCountry(ctx context.Context, iso2 string) ([]types.CityOption, error) {
	ctx, span := otel.Tracer("LookupService").Start(ctx, "CitiesByCountry", trace.WithAttributes(
		attribute.String("country.iso2", iso2),
	))
	defer span.End()

	iso2 = strings.ToUpper(strings.TrimSpace(iso2))
	if iso2 == "" {
		return nil, fmt.Errorf("country code is required: %w", types.ErrBadRequest)
	}

	cities, err := cached(ctx, s, "cities:"+iso2, func(ctx context.Context) ([]types.CityOption, error) {
		return s.api.CitiesByCountry(ctx, iso2)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Cities lookup failed")
		return nil, fmt.Errorf("fetching cities for %s: %w", iso2, err)
	}
	return cities, nil
}

func (s *ServiceImpl) CitiesByState(ctx context.Context, countryISO2, stateISO2 string) ([]types.CityOption, error) {
	ctx, span := otel.Tracer("LookupService").Start(ctx, "CitiesByState", trace.WithAttributes(
		attribute.String("country.iso2", countryISO2),
		attribute.String("state.iso2", stateISO2),
	))
	defer span.End()

	countryISO2 = strings.ToUpper(strings.TrimSpace(countryISO2))
	stateISO2 = strings.ToUpper(strings.TrimSpace(stateISO2))
	if countryISO2 == "" || stateISO2 == "" {
		return nil, fmt.Errorf("country and state codes are required: %w", types.ErrBadRequest)
	}

	cities, err := cached(ctx, s, "cities:"+countryISO2+":"+stateISO2, func(ctx context.Context) ([]types.CityOption, error) {
		return s.api.CitiesByState(ctx, countryISO2, stateISO2)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Cities lookup failed")
		return nil, fmt.Errorf("fetching cities for %s/%s: %w", countryISO2, stateISO2, err)
	}
	return cities, nil
}

// CityByRegion intentionally bypasses the cache: the endpoint picks a random
// city per call, and a cached pick would pin "surprise me" to one answer.
func (s *ServiceImpl) CityByRegion(ctx context.Context, region string, capital bool) (*types.RegionCity, error) {
	ctx, span := otel.Tracer("LookupService").Start(ctx, "CityByRegion", trace.WithAttributes(
		attribute.String("region", region),
		attribute.Bool("capital", capital),
	))
	defer span.End()

	region = strings.TrimSpace(region)
	if region == "" {
		return nil, fmt.Errorf("region is required: %w", types.ErrBadRequest)
	}

	city, err := s.api.CityByRegion(ctx, region, capital)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Region city lookup failed")
		return nil, fmt.Errorf("fetching city for region %s: %w", region, err)
	}
	s.logger.DebugContext(ctx, "region city picked",
		slog.String("region", region),
		slog.String("city", city.City),
		slog.Bool("capital", capital))
	return city, nil
}
