package types

// PlaceHours is the opening-hours summary for a place.
type PlaceHours struct {
	Display string `json:"display,omitempty"`
	OpenNow bool   `json:"open_now"`
}

// Place is the canonical point-of-interest shape for the places section.
// Photos hold full, fetchable URLs.
type Place struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Categories  []string    `json:"categories,omitempty"`
	Description string      `json:"description,omitempty"`
	Photos      []string    `json:"photos,omitempty"`
	Rating      *float64    `json:"rating,omitempty"`
	Hours       *PlaceHours `json:"hours,omitempty"`
	Location    string      `json:"location,omitempty"`
	Tel         string      `json:"tel,omitempty"`
	Website     string      `json:"website,omitempty"`
}
