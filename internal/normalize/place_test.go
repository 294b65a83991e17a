package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaces(t *testing.T) {
	rating := 8.7
	raw := []FoursquarePlace{
		{
			FsqPlaceID:  "4b0588f9f964a520f28e22e3",
			Name:        "Time Out Market",
			Categories:  []FoursquareCategory{{Name: "Food Hall"}, {Name: "Market"}},
			Description: "Food hall in a historic market building.",
			Photos: []FoursquarePhoto{
				{Prefix: "https://fastly.4sqi.net/img/general/", Suffix: "/123_photo.jpg"},
			},
			Rating:   &rating,
			Hours:    &FoursquareHours{Display: "Open until 12:00 AM", OpenNow: true},
			Location: &FoursquareLocation{FormattedAddress: "Av. 24 de Julho 49, Lisboa"},
			Tel:      "+351 21 395 1274",
			Website:  "https://www.timeoutmarket.com",
		},
	}

	places := Places(raw)
	require.Len(t, places, 1)
	p := places[0]

	assert.Equal(t, "4b0588f9f964a520f28e22e3", p.ID)
	assert.Equal(t, []string{"Food Hall", "Market"}, p.Categories)
	assert.Equal(t, []string{"https://fastly.4sqi.net/img/general/original/123_photo.jpg"}, p.Photos)
	require.NotNil(t, p.Hours)
	assert.True(t, p.Hours.OpenNow)
	assert.Equal(t, "Av. 24 de Julho 49, Lisboa", p.Location)
}

func TestPlacesSkipsIncompletePhotoPairs(t *testing.T) {
	places := Places([]FoursquarePlace{{
		FsqPlaceID: "x",
		Photos:     []FoursquarePhoto{{Prefix: "https://p/"}, {Suffix: "/s.jpg"}},
	}})

	require.Len(t, places, 1)
	assert.Empty(t, places[0].Photos)
}

func TestPlacesEmptyInput(t *testing.T) {
	assert.Nil(t, Places(nil))
}
