package types

// Price is a display-ready price: the amount is already formatted to two
// decimal places.
type Price struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currency_code"`
}

// Activity is the canonical bookable-activity shape, regardless of which
// provider supplied it. Source names the provider for attribution.
type Activity struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"short_description,omitempty"`
	Description      string   `json:"description,omitempty"`
	BookingLink      string   `json:"booking_link,omitempty"`
	Pictures         []string `json:"pictures,omitempty"`
	Price            *Price   `json:"price,omitempty"`
	MinimumDuration  string   `json:"minimum_duration,omitempty"`
	Rating           *float64 `json:"rating,omitempty"`
	ReviewCount      *int     `json:"review_count,omitempty"`
	Source           string   `json:"source"`
}
