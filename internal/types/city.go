package types

// CityKey identifies one city lookup. State and Country are optional
// disambiguators; State is a name, Country an ISO alpha-2 code. Two keys with
// equal fields still belong to distinct load cycles; cancellation tracks the
// in-flight cycle, not key equality.
type CityKey struct {
	City    string `json:"city" validate:"required"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty" validate:"omitempty,len=2"`
}

// Coordinates is the city center point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CountryName holds the localized country names we surface.
type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official,omitempty"`
}

// CountryFlags holds the flag image plus its alt text.
type CountryFlags struct {
	PNG string `json:"png"`
	Alt string `json:"alt,omitempty"`
}

// CountryDetails is the country metadata attached to the base section.
type CountryDetails struct {
	Name  CountryName  `json:"name"`
	Flags CountryFlags `json:"flags"`
}

// CityDetail is the progressively populated aggregate for one city view.
// Sections write disjoint field sets, so a later merge never reverts a field
// populated by an earlier one. Errors grows monotonically within a load
// cycle; a key recorded there stays until the next full reload.
type CityDetail struct {
	City           string             `json:"city"`
	State          string             `json:"state,omitempty"`
	Country        string             `json:"country,omitempty"`
	CountryDetails *CountryDetails    `json:"country_details,omitempty"`
	Coordinates    *Coordinates       `json:"coordinates,omitempty"`
	Summary        string             `json:"summary,omitempty"`
	Weather        *Weather           `json:"weather,omitempty"`
	Activities     []Activity         `json:"activities,omitempty"`
	Places         []Place            `json:"places,omitempty"`
	Errors         map[Section]string `json:"errors,omitempty"`
}

// CityOption is one entry in the city lookup lists used by the selection form.
type CityOption struct {
	Name      string  `json:"name"`
	StateCode string  `json:"state_code,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// CountryEntry is one entry in the country lookup list.
type CountryEntry struct {
	Name string `json:"name"`
	ISO2 string `json:"iso2"`
}

// StateEntry is one entry in the state lookup list for a country.
type StateEntry struct {
	Name      string `json:"name"`
	StateCode string `json:"state_code,omitempty"`
}

// RegionCity is the "surprise me" result for a region.
type RegionCity struct {
	City   string `json:"city"`
	Region string `json:"region,omitempty"`
}
