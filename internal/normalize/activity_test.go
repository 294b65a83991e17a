package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmadeusToActivity(t *testing.T) {
	raw := AmadeusActivity{
		ID:               "23642",
		Name:             "Tram 28 Food Tour",
		ShortDescription: "Eat your way across Lisbon.",
		Description:      "<p>Full description with <b>rich text</b>.</p>",
		BookingLink:      "https://b2c.mla.cloud/c/abc",
		Pictures:         []string{"https://img/1.jpg", "https://img/2.jpg"},
		Price:            &AmadeusPrice{Amount: "30.5", CurrencyCode: "EUR"},
		MinimumDuration:  "3h",
		Rating:           "4.2",
	}

	act := AmadeusToActivity(raw)

	assert.Equal(t, "23642", act.ID)
	assert.Equal(t, SourceAmadeus, act.Source)
	assert.Equal(t, "3h", act.MinimumDuration)
	assert.Equal(t, raw.Pictures, act.Pictures)
	require.NotNil(t, act.Price)
	assert.Equal(t, "30.50", act.Price.Amount)
	assert.Equal(t, "EUR", act.Price.CurrencyCode)
	require.NotNil(t, act.Rating)
	assert.InDelta(t, 4.2, *act.Rating, 0.001)
}

func TestAmadeusToActivityDegradesGracefully(t *testing.T) {
	act := AmadeusToActivity(AmadeusActivity{
		ID:     "1",
		Name:   "No extras",
		Price:  &AmadeusPrice{Amount: "not-a-number"},
		Rating: "",
	})

	assert.Nil(t, act.Price, "malformed amount drops the price, not the record")
	assert.Nil(t, act.Rating)
	assert.Equal(t, "No extras", act.Name)
}

func TestFormatPriceDefaultsCurrency(t *testing.T) {
	price := formatPrice(12, "")
	assert.Equal(t, "12.00", price.Amount)
	assert.Equal(t, "USD", price.CurrencyCode)
}

func TestActivitiesConcatenatesProviders(t *testing.T) {
	amadeus := []AmadeusActivity{{ID: "a1", Name: "Amadeus One"}}
	viator := []ViatorProduct{{ProductCode: "v1", Title: "Viator One"}}

	t.Run("preferred provider first, no dedup", func(t *testing.T) {
		got := Activities(amadeus, viator)
		require.Len(t, got, 2)
		assert.Equal(t, SourceAmadeus, got[0].Source)
		assert.Equal(t, SourceViator, got[1].Source)
	})

	t.Run("one failed provider still yields the sibling's results", func(t *testing.T) {
		got := Activities(nil, viator)
		require.Len(t, got, 1)
		assert.Equal(t, "v1", got[0].ID)
	})

	t.Run("both absent yields nil", func(t *testing.T) {
		assert.Nil(t, Activities(nil, nil))
	})
}
