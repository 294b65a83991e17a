package citydetail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/terradart-api/internal/normalize"
	"github.com/FACorreiaa/terradart-api/internal/types"
	"github.com/FACorreiaa/terradart-api/internal/upstream"
)

func newTestService(api CityDataAPI) *ServiceImpl {
	return NewService(NewOrchestrator(api, testLogger(), nil), testLogger())
}

func TestGetCityDetailAssemblesAllSections(t *testing.T) {
	api := &fakeAPI{
		responses: map[types.Section]*upstream.DetailResponse{
			types.SectionBase: {Data: upstream.DetailData{
				City:    "Lisbon",
				Country: "PT",
				CountryDetails: &types.CountryDetails{
					Name:  types.CountryName{Common: "Portugal"},
					Flags: types.CountryFlags{PNG: "https://flags/pt.png"},
				},
				Coordinates: &types.Coordinates{Latitude: 38.72, Longitude: -9.14},
			}},
			types.SectionSummary: {Data: upstream.DetailData{Summary: "Capital of Portugal."}},
			types.SectionWeather: weatherResponse(),
			types.SectionActivities: {Data: upstream.DetailData{Activities: &upstream.ActivityPayloads{
				Amadeus: []normalize.AmadeusActivity{{ID: "a1", Name: "Food Tour"}},
				Viator:  []normalize.ViatorProduct{{ProductCode: "v1", Title: "River Cruise"}},
			}}},
			types.SectionPlaces: {Data: upstream.DetailData{Places: []normalize.FoursquarePlace{
				{FsqPlaceID: "p1", Name: "Time Out Market"},
			}}},
		},
	}
	svc := newTestService(api)

	detail, err := svc.GetCityDetail(context.Background(), types.CityKey{City: "lisbon"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Lisbon", detail.City)
	assert.Equal(t, "PT", detail.Country)
	assert.Equal(t, "Capital of Portugal.", detail.Summary)
	require.NotNil(t, detail.Weather)
	require.Len(t, detail.Activities, 2)
	assert.Equal(t, normalize.SourceAmadeus, detail.Activities[0].Source)
	assert.Equal(t, normalize.SourceViator, detail.Activities[1].Source)
	require.Len(t, detail.Places, 1)
	assert.Empty(t, detail.Errors)
}

func TestGetCityDetailPartialFailureKeepsPage(t *testing.T) {
	api := &fakeAPI{
		responses: map[types.Section]*upstream.DetailResponse{
			types.SectionWeather: weatherResponse(),
		},
		errs: map[types.Section]error{
			types.SectionActivities: &upstream.StatusError{Code: 500},
		},
	}
	svc := newTestService(api)

	detail, err := svc.GetCityDetail(context.Background(), types.CityKey{City: "Lisbon"},
		[]types.Section{types.SectionWeather, types.SectionActivities})

	require.NoError(t, err, "a section failure never fails the whole aggregate")
	assert.NotNil(t, detail.Weather)
	require.Contains(t, detail.Errors, types.SectionActivities)
	assert.Contains(t, detail.Errors[types.SectionActivities], "500")
}

func TestGetCityDetailBaseNotFound(t *testing.T) {
	api := &fakeAPI{
		errs: map[types.Section]error{types.SectionBase: &upstream.StatusError{Code: 404}},
	}
	svc := newTestService(api)

	_, err := svc.GetCityDetail(context.Background(), types.CityKey{City: "atlantis"},
		[]types.Section{types.SectionBase})

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestGetCityDetailBaseServerErrorIsInline(t *testing.T) {
	api := &fakeAPI{
		errs: map[types.Section]error{types.SectionBase: &upstream.StatusError{Code: 500}},
	}
	svc := newTestService(api)

	detail, err := svc.GetCityDetail(context.Background(), types.CityKey{City: "Lisbon"},
		[]types.Section{types.SectionBase})

	require.NoError(t, err, "a 500 on base is an inline section error, not a redirect signal")
	require.Contains(t, detail.Errors, types.SectionBase)
	assert.Contains(t, detail.Errors[types.SectionBase], "500")
}

func TestGetCityDetailRequiresCity(t *testing.T) {
	svc := newTestService(&fakeAPI{})

	_, err := svc.GetCityDetail(context.Background(), types.CityKey{City: "  "}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrBadRequest)
}

func TestGetCityDetailCallerCancellation(t *testing.T) {
	gate := make(chan struct{})
	defer close(gate)
	api := &fakeAPI{gates: map[types.Section]chan struct{}{types.SectionSummary: gate}}
	svc := newTestService(api)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.GetCityDetail(ctx, types.CityKey{City: "Lisbon"}, []types.Section{types.SectionSummary})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
