package normalize

import (
	"fmt"
	"strconv"

	"github.com/FACorreiaa/terradart-api/internal/types"
)

// Provider source tags attached to normalized activities.
const (
	SourceAmadeus = "amadeus"
	SourceViator  = "viator"
)

const defaultCurrencyCode = "USD"

// AmadeusPrice is the price object on an Amadeus Tours & Activities record.
type AmadeusPrice struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// AmadeusActivity is the raw Amadeus Tours & Activities shape.
type AmadeusActivity struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	ShortDescription string        `json:"shortDescription"`
	Description      string        `json:"description"`
	BookingLink      string        `json:"bookingLink"`
	Pictures         []string      `json:"pictures"`
	Price            *AmadeusPrice `json:"price"`
	MinimumDuration  string        `json:"minimumDuration"`
	Rating           string        `json:"rating"`
}

// Activities concatenates both activity providers into one ordered sequence,
// Amadeus first as the preferred provider. A nil slice from one provider is
// skipped so a sibling provider's results still populate the section.
func Activities(amadeus []AmadeusActivity, viator []ViatorProduct) []types.Activity {
	if len(amadeus) == 0 && len(viator) == 0 {
		return nil
	}
	out := make([]types.Activity, 0, len(amadeus)+len(viator))
	for _, a := range amadeus {
		out = append(out, AmadeusToActivity(a))
	}
	for _, p := range viator {
		out = append(out, ViatorToActivity(p))
	}
	return out
}

// AmadeusToActivity maps one raw Amadeus record into the canonical shape.
// Missing or malformed fields degrade to zero values; normalization never
// fails the whole record over one attribute.
func AmadeusToActivity(a AmadeusActivity) types.Activity {
	act := types.Activity{
		ID:               a.ID,
		Name:             a.Name,
		ShortDescription: a.ShortDescription,
		Description:      a.Description,
		BookingLink:      a.BookingLink,
		Pictures:         a.Pictures,
		MinimumDuration:  a.MinimumDuration,
		Source:           SourceAmadeus,
	}
	if a.Price != nil {
		if amount, err := strconv.ParseFloat(a.Price.Amount, 64); err == nil {
			act.Price = formatPrice(amount, a.Price.CurrencyCode)
		}
	}
	if rating, err := strconv.ParseFloat(a.Rating, 64); err == nil {
		act.Rating = &rating
	}
	return act
}

// formatPrice renders the amount fixed to two decimal places, defaulting the
// currency to USD when the provider omits it.
func formatPrice(amount float64, currency string) *types.Price {
	if currency == "" {
		currency = defaultCurrencyCode
	}
	return &types.Price{
		Amount:       fmt.Sprintf("%.2f", amount),
		CurrencyCode: currency,
	}
}
