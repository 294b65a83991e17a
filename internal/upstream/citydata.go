package upstream

import (
	"context"
	"net/url"
	"strings"

	"github.com/FACorreiaa/terradart-api/internal/normalize"
	"github.com/FACorreiaa/terradart-api/internal/types"
)

// ActivityPayloads carries the raw per-provider activity arrays embedded in a
// detail response. Either side may be absent when that provider failed
// upstream; the sibling's data is still usable.
type ActivityPayloads struct {
	Amadeus []normalize.AmadeusActivity `json:"amadeus,omitempty"`
	Viator  []normalize.ViatorProduct   `json:"viator,omitempty"`
}

// DetailData is the data envelope of a city-detail response. Only the fields
// named by the requested includes are populated.
type DetailData struct {
	City           string                       `json:"city,omitempty"`
	State          string                       `json:"state,omitempty"`
	Country        string                       `json:"country,omitempty"`
	CountryDetails *types.CountryDetails        `json:"country_details,omitempty"`
	Coordinates    *types.Coordinates           `json:"coordinates,omitempty"`
	Summary        string                       `json:"summary,omitempty"`
	Weather        *normalize.OpenMeteoPayload  `json:"weather,omitempty"`
	Activities     *ActivityPayloads            `json:"activities,omitempty"`
	Places         []normalize.FoursquarePlace  `json:"places,omitempty"`
}

// DetailResponse is the full city-detail envelope. Errors carries upstream
// partial failures keyed by section name.
type DetailResponse struct {
	Data   DetailData               `json:"data"`
	Errors map[types.Section]string `json:"errors,omitempty"`
}

// CityDetailSection fetches exactly one section of a city's detail via a
// single-element includes parameter. Splitting the includes per call is what
// lets the orchestrator run sections concurrently instead of waiting on one
// coupled response.
func (c *Client) CityDetailSection(ctx context.Context, key types.CityKey, section types.Section) (*DetailResponse, error) {
	query := url.Values{"includes": []string{string(section)}}
	if key.State != "" {
		query.Set("state", key.State)
	}
	if key.Country != "" {
		query.Set("country", key.Country)
	}

	var resp DetailResponse
	path := "/get-city-detail/" + url.PathEscape(strings.TrimSpace(key.City)) + "/"
	if err := c.getJSON(ctx, path, query, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Countries lists all known countries for the selection form.
func (c *Client) Countries(ctx context.Context) ([]types.CountryEntry, error) {
	var out []types.CountryEntry
	if err := c.getJSON(ctx, "/countries/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// States lists the states of a country.
func (c *Client) States(ctx context.Context, iso2 string) ([]types.StateEntry, error) {
	var out []types.StateEntry
	path := "/country/" + url.PathEscape(iso2) + "/states/"
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CitiesByCountry lists a country's cities.
func (c *Client) CitiesByCountry(ctx context.Context, iso2 string) ([]types.CityOption, error) {
	var out []types.CityOption
	path := "/country/" + url.PathEscape(iso2) + "/cities/"
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CitiesByState lists the cities of one state within a country.
func (c *Client) CitiesByState(ctx context.Context, countryISO2, stateISO2 string) ([]types.CityOption, error) {
	var out []types.CityOption
	path := "/country/" + url.PathEscape(countryISO2) + "/state/" + url.PathEscape(stateISO2) + "/cities/"
	if err := c.getJSON(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CityByRegion returns a single random city for a region, or the regional
// capital when capital is set. Backs the "surprise me" entry point.
func (c *Client) CityByRegion(ctx context.Context, region string, capital bool) (*types.RegionCity, error) {
	var query url.Values
	if capital {
		query = url.Values{"capital": []string{"true"}}
	}
	var out types.RegionCity
	path := "/get-city/region/" + url.PathEscape(region) + "/"
	if err := c.getJSON(ctx, path, query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
