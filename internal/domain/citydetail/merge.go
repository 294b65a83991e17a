package citydetail

import "github.com/FACorreiaa/terradart-api/internal/types"

// Merge folds one section result into the aggregate and returns the updated
// copy. Fields present in the incoming result overwrite; absent fields are
// left untouched. Sections write disjoint field sets, so they can merge in
// any completion order and land on the same aggregate.
func Merge(agg types.CityDetail, res types.SectionResult) types.CityDetail {
	if res.City != "" {
		agg.City = res.City
	}
	if res.State != "" {
		agg.State = res.State
	}
	if res.Country != "" {
		agg.Country = res.Country
	}
	if res.CountryDetails != nil {
		agg.CountryDetails = res.CountryDetails
	}
	if res.Coordinates != nil {
		agg.Coordinates = res.Coordinates
	}
	if res.Summary != "" {
		agg.Summary = res.Summary
	}
	if res.Weather != nil {
		agg.Weather = res.Weather
	}
	if res.Activities != nil {
		agg.Activities = res.Activities
	}
	if res.Places != nil {
		agg.Places = res.Places
	}
	for section, detail := range res.Errors {
		agg.Errors = mergeErrors(agg.Errors, section, detail)
	}
	return agg
}

// MergeError records one section's failure. Error keys accumulate
// monotonically: prior sections' entries are preserved and nothing removes a
// key until the next full reload builds a fresh aggregate.
func MergeError(agg types.CityDetail, section types.Section, message string) types.CityDetail {
	agg.Errors = mergeErrors(agg.Errors, section, message)
	return agg
}

func mergeErrors(existing map[types.Section]string, section types.Section, detail string) map[types.Section]string {
	merged := make(map[types.Section]string, len(existing)+1)
	for k, v := range existing {
		merged[k] = v
	}
	merged[section] = detail
	return merged
}
