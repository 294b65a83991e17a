package citydetail

import (
	"context"

	"github.com/FACorreiaa/terradart-api/internal/normalize"
	"github.com/FACorreiaa/terradart-api/internal/types"
	"github.com/FACorreiaa/terradart-api/internal/upstream"
)

// CityDataAPI is the slice of the upstream client the loader needs.
type CityDataAPI interface {
	CityDetailSection(ctx context.Context, key types.CityKey, section types.Section) (*upstream.DetailResponse, error)
}

// Fetcher loads one section for one key with exactly one upstream request.
type Fetcher func(ctx context.Context, key types.CityKey) (types.SectionResult, error)

// sectionFetchers wires one fetcher per section against the upstream client.
// Each fetcher normalizes its raw section payload and carries over any
// upstream partial-failure entries from the response's errors map.
func sectionFetchers(api CityDataAPI) map[types.Section]Fetcher {
	build := func(section types.Section, fill func(data upstream.DetailData, res *types.SectionResult)) Fetcher {
		return func(ctx context.Context, key types.CityKey) (types.SectionResult, error) {
			resp, err := api.CityDetailSection(ctx, key, section)
			if err != nil {
				return types.SectionResult{Section: section}, err
			}
			res := types.SectionResult{Section: section, Errors: resp.Errors}
			fill(resp.Data, &res)
			return res, nil
		}
	}

	return map[types.Section]Fetcher{
		types.SectionBase: build(types.SectionBase, func(data upstream.DetailData, res *types.SectionResult) {
			res.City = data.City
			res.State = data.State
			res.Country = data.Country
			res.CountryDetails = data.CountryDetails
			res.Coordinates = data.Coordinates
		}),
		types.SectionSummary: build(types.SectionSummary, func(data upstream.DetailData, res *types.SectionResult) {
			res.Summary = data.Summary
		}),
		types.SectionWeather: build(types.SectionWeather, func(data upstream.DetailData, res *types.SectionResult) {
			res.Weather = normalize.Weather(data.Weather)
		}),
		types.SectionActivities: build(types.SectionActivities, func(data upstream.DetailData, res *types.SectionResult) {
			if data.Activities != nil {
				res.Activities = normalize.Activities(data.Activities.Amadeus, data.Activities.Viator)
			}
		}),
		types.SectionPlaces: build(types.SectionPlaces, func(data upstream.DetailData, res *types.SectionResult) {
			res.Places = normalize.Places(data.Places)
		}),
	}
}
