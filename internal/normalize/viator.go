package normalize

import (
	"fmt"

	"github.com/FACorreiaa/terradart-api/internal/types"
)

// preferredImageWidth is the widest picture variant we will pick when a
// narrower one is available; card layouts never render wider than this.
const preferredImageWidth = 720

// ViatorImageVariant is one sized rendition of a product photo.
type ViatorImageVariant struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ViatorImage is one product photo with its sized variants.
type ViatorImage struct {
	IsCover  bool                 `json:"isCover"`
	Variants []ViatorImageVariant `json:"variants"`
}

// ViatorDuration exposes either a fixed minute count or a from/to range.
type ViatorDuration struct {
	FixedDurationInMinutes      *int `json:"fixedDurationInMinutes"`
	VariableDurationFromMinutes *int `json:"variableDurationFromMinutes"`
	VariableDurationToMinutes   *int `json:"variableDurationToMinutes"`
}

// ViatorReviews is the aggregated review block on a product.
type ViatorReviews struct {
	CombinedAverageRating float64 `json:"combinedAverageRating"`
	TotalReviews          int     `json:"totalReviews"`
}

// ViatorPriceSummary carries the from-price for a product.
type ViatorPriceSummary struct {
	FromPrice float64 `json:"fromPrice"`
}

// ViatorPricing is the pricing block on a product.
type ViatorPricing struct {
	Summary  *ViatorPriceSummary `json:"summary"`
	Currency string              `json:"currency"`
}

// ViatorProduct is the raw Viator catalog product shape.
type ViatorProduct struct {
	ProductCode string          `json:"productCode"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ProductURL  string          `json:"productUrl"`
	Reviews     *ViatorReviews  `json:"reviews"`
	Pricing     *ViatorPricing  `json:"pricing"`
	Duration    *ViatorDuration `json:"duration"`
	Images      []ViatorImage   `json:"images"`
}

// ViatorToActivity maps one raw Viator product into the canonical shape.
func ViatorToActivity(p ViatorProduct) types.Activity {
	act := types.Activity{
		ID:              p.ProductCode,
		Name:            p.Title,
		Description:     p.Description,
		BookingLink:     p.ProductURL,
		MinimumDuration: formatDuration(p.Duration),
		Source:          SourceViator,
	}
	if pic := coverPicture(p.Images); pic != "" {
		act.Pictures = []string{pic}
	}
	if p.Reviews != nil {
		rating := p.Reviews.CombinedAverageRating
		count := p.Reviews.TotalReviews
		act.Rating = &rating
		act.ReviewCount = &count
	}
	if p.Pricing != nil && p.Pricing.Summary != nil {
		act.Price = formatPrice(p.Pricing.Summary.FromPrice, p.Pricing.Currency)
	}
	return act
}

// coverPicture selects the cover-flagged image (first image if none is
// flagged), then the best-fitting variant of it.
func coverPicture(images []ViatorImage) string {
	if len(images) == 0 {
		return ""
	}
	img := images[0]
	for _, candidate := range images {
		if candidate.IsCover {
			img = candidate
			break
		}
	}
	return pickVariant(img.Variants)
}

// pickVariant returns the narrowest variant whose width does not exceed the
// preference threshold, falling back to the widest available when every
// variant exceeds it.
func pickVariant(variants []ViatorImageVariant) string {
	var best, widest *ViatorImageVariant
	for i := range variants {
		v := &variants[i]
		if widest == nil || v.Width > widest.Width {
			widest = v
		}
		if v.Width > preferredImageWidth {
			continue
		}
		if best == nil || v.Width > best.Width {
			best = v
		}
	}
	if best != nil {
		return best.URL
	}
	if widest != nil {
		return widest.URL
	}
	return ""
}

// formatDuration renders a duration block as a human string: a fixed count
// as "<H>h <M>m" with zero components dropped, an hour-aligned range as
// "<fromH>-<toH>h", a mixed range as "<from> - <to>", a single bound alone,
// and nothing when both bounds are absent.
func formatDuration(d *ViatorDuration) string {
	if d == nil {
		return ""
	}
	if d.FixedDurationInMinutes != nil {
		return formatMinutes(*d.FixedDurationInMinutes)
	}
	from, to := d.VariableDurationFromMinutes, d.VariableDurationToMinutes
	switch {
	case from != nil && to != nil:
		if *from%60 == 0 && *to%60 == 0 {
			return fmt.Sprintf("%d-%dh", *from/60, *to/60)
		}
		return formatMinutes(*from) + " - " + formatMinutes(*to)
	case from != nil:
		return formatMinutes(*from)
	case to != nil:
		return formatMinutes(*to)
	}
	return ""
}

func formatMinutes(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	h, m := minutes/60, minutes%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
