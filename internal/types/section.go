package types

// Section names one independently fetchable slice of a city's detail data.
type Section string

const (
	SectionBase       Section = "base"
	SectionSummary    Section = "summary"
	SectionWeather    Section = "weather"
	SectionActivities Section = "activities"
	SectionPlaces     Section = "places"
)

// AllSections is the default section set for a full city load, in preferred
// start order. Completion order carries no guarantee.
func AllSections() []Section {
	return []Section{SectionBase, SectionSummary, SectionWeather, SectionActivities, SectionPlaces}
}

// ValidSection reports whether s is one of the known sections.
func ValidSection(s Section) bool {
	switch s {
	case SectionBase, SectionSummary, SectionWeather, SectionActivities, SectionPlaces:
		return true
	}
	return false
}

// SectionResult is the uniform outcome of one section fetch: at most one
// populated fragment for that section plus any error entries the upstream
// response carried. A failed fetch is converted into an Errors entry keyed by
// the section name rather than propagated.
type SectionResult struct {
	Section Section `json:"section"`

	// base
	City           string          `json:"city,omitempty"`
	State          string          `json:"state,omitempty"`
	Country        string          `json:"country,omitempty"`
	CountryDetails *CountryDetails `json:"country_details,omitempty"`
	Coordinates    *Coordinates    `json:"coordinates,omitempty"`

	// summary
	Summary string `json:"summary,omitempty"`

	// weather
	Weather *Weather `json:"weather,omitempty"`

	// activities
	Activities []Activity `json:"activities,omitempty"`

	// places
	Places []Place `json:"places,omitempty"`

	Errors map[Section]string `json:"errors,omitempty"`
}
