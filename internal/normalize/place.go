package normalize

import "github.com/FACorreiaa/terradart-api/internal/types"

// photoSizeToken is the size segment joined between a photo's prefix and
// suffix to form a fetchable URL.
const photoSizeToken = "original"

// FoursquareCategory is one category on a raw place record.
type FoursquareCategory struct {
	Name string `json:"name"`
}

// FoursquarePhoto is the prefix/suffix pair the provider returns instead of
// a full photo URL.
type FoursquarePhoto struct {
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

// FoursquareHours is the raw opening-hours block.
type FoursquareHours struct {
	Display string `json:"display"`
	OpenNow bool   `json:"open_now"`
}

// FoursquareLocation is the raw location block.
type FoursquareLocation struct {
	FormattedAddress string `json:"formatted_address"`
}

// FoursquarePlace is the raw venue shape from the location-data provider.
type FoursquarePlace struct {
	FsqPlaceID  string               `json:"fsq_place_id"`
	Name        string               `json:"name"`
	Categories  []FoursquareCategory `json:"categories"`
	Description string               `json:"description"`
	Photos      []FoursquarePhoto    `json:"photos"`
	Rating      *float64             `json:"rating"`
	Hours       *FoursquareHours     `json:"hours"`
	Location    *FoursquareLocation  `json:"location"`
	Tel         string               `json:"tel"`
	Website     string               `json:"website"`
}

// Places maps the raw venue list into the canonical shape, preserving order.
func Places(raw []FoursquarePlace) []types.Place {
	if len(raw) == 0 {
		return nil
	}
	out := make([]types.Place, 0, len(raw))
	for _, p := range raw {
		out = append(out, placeToPlace(p))
	}
	return out
}

func placeToPlace(p FoursquarePlace) types.Place {
	place := types.Place{
		ID:          p.FsqPlaceID,
		Name:        p.Name,
		Description: p.Description,
		Rating:      p.Rating,
		Tel:         p.Tel,
		Website:     p.Website,
	}
	for _, c := range p.Categories {
		if c.Name != "" {
			place.Categories = append(place.Categories, c.Name)
		}
	}
	for _, photo := range p.Photos {
		if photo.Prefix == "" || photo.Suffix == "" {
			continue
		}
		place.Photos = append(place.Photos, photo.Prefix+photoSizeToken+photo.Suffix)
	}
	if p.Hours != nil {
		place.Hours = &types.PlaceHours{Display: p.Hours.Display, OpenNow: p.Hours.OpenNow}
	}
	if p.Location != nil {
		place.Location = p.Location.FormattedAddress
	}
	return place
}
