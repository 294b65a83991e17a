package normalize

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestFormatDuration(t *testing.T) {
	t.Run("fixed durations", func(t *testing.T) {
		cases := map[int]string{
			45:  "45m",
			60:  "1h",
			90:  "1h 30m",
			150: "2h 30m",
		}
		for minutes, want := range cases {
			got := formatDuration(&ViatorDuration{FixedDurationInMinutes: intPtr(minutes)})
			assert.Equal(t, want, got, "fixed %d minutes", minutes)
		}
	})

	t.Run("range with whole-hour bounds collapses to hour span", func(t *testing.T) {
		d := &ViatorDuration{
			VariableDurationFromMinutes: intPtr(60),
			VariableDurationToMinutes:   intPtr(120),
		}
		assert.Equal(t, "1-2h", formatDuration(d))
	})

	t.Run("mixed range formats both bounds", func(t *testing.T) {
		d := &ViatorDuration{
			VariableDurationFromMinutes: intPtr(50),
			VariableDurationToMinutes:   intPtr(130),
		}
		assert.Equal(t, "50m - 2h 10m", formatDuration(d))
	})

	t.Run("single bound formats alone", func(t *testing.T) {
		assert.Equal(t, "2h", formatDuration(&ViatorDuration{VariableDurationFromMinutes: intPtr(120)}))
		assert.Equal(t, "45m", formatDuration(&ViatorDuration{VariableDurationToMinutes: intPtr(45)}))
	})

	t.Run("absent duration yields nothing", func(t *testing.T) {
		assert.Empty(t, formatDuration(nil))
		assert.Empty(t, formatDuration(&ViatorDuration{}))
	})
}

func TestPickVariant(t *testing.T) {
	variantsOf := func(widths ...int) []ViatorImageVariant {
		out := make([]ViatorImageVariant, 0, len(widths))
		for _, w := range widths {
			out = append(out, ViatorImageVariant{URL: urlForWidth(w), Width: w})
		}
		return out
	}

	t.Run("widest variant within the preference threshold wins", func(t *testing.T) {
		got := pickVariant(variantsOf(320, 480, 720, 1080))
		assert.Equal(t, urlForWidth(720), got)
	})

	t.Run("falls back to widest when all exceed the threshold", func(t *testing.T) {
		got := pickVariant(variantsOf(1080, 1440))
		assert.Equal(t, urlForWidth(1440), got)
	})

	t.Run("empty variants yield nothing", func(t *testing.T) {
		assert.Empty(t, pickVariant(nil))
	})
}

func urlForWidth(w int) string {
	return "https://cdn.example.com/img-" + strconv.Itoa(w)
}

func TestCoverPicture(t *testing.T) {
	images := []ViatorImage{
		{Variants: []ViatorImageVariant{{URL: "first", Width: 480}}},
		{IsCover: true, Variants: []ViatorImageVariant{{URL: "cover", Width: 480}}},
	}

	t.Run("prefers the cover-flagged image", func(t *testing.T) {
		assert.Equal(t, "cover", coverPicture(images))
	})

	t.Run("falls back to the first image when none is flagged", func(t *testing.T) {
		assert.Equal(t, "first", coverPicture(images[:1]))
	})
}

func TestViatorToActivity(t *testing.T) {
	product := ViatorProduct{
		ProductCode: "5010SYDNEY",
		Title:       "Sydney Harbour Cruise",
		Description: "Two hours on the water.",
		ProductURL:  "https://www.viator.com/tours/5010SYDNEY",
		Reviews:     &ViatorReviews{CombinedAverageRating: 4.5, TotalReviews: 1200},
		Pricing:     &ViatorPricing{Summary: &ViatorPriceSummary{FromPrice: 35.5}, Currency: "EUR"},
		Duration:    &ViatorDuration{FixedDurationInMinutes: intPtr(120)},
		Images: []ViatorImage{
			{IsCover: true, Variants: []ViatorImageVariant{{URL: "https://img/720", Width: 720}, {URL: "https://img/1080", Width: 1080}}},
		},
	}

	act := ViatorToActivity(product)

	assert.Equal(t, "5010SYDNEY", act.ID)
	assert.Equal(t, "Sydney Harbour Cruise", act.Name)
	assert.Equal(t, SourceViator, act.Source)
	assert.Equal(t, "2h", act.MinimumDuration)
	assert.Equal(t, []string{"https://img/720"}, act.Pictures)
	require.NotNil(t, act.Price)
	assert.Equal(t, "35.50", act.Price.Amount)
	assert.Equal(t, "EUR", act.Price.CurrencyCode)
	require.NotNil(t, act.Rating)
	assert.InDelta(t, 4.5, *act.Rating, 0.001)
	require.NotNil(t, act.ReviewCount)
	assert.Equal(t, 1200, *act.ReviewCount)
}

func TestViatorToActivityDegradesOnMissingBlocks(t *testing.T) {
	act := ViatorToActivity(ViatorProduct{ProductCode: "X", Title: "Bare"})

	assert.Equal(t, "X", act.ID)
	assert.Nil(t, act.Price)
	assert.Nil(t, act.Rating)
	assert.Empty(t, act.MinimumDuration)
	assert.Empty(t, act.Pictures)
}
