package aggregator

import "github.com/BerylCAtieno/country-profile-aggregator/internal/models"

// Merge assembles the composite result from the outcome of each step.
func Merge(
	profile models.Profile,
	geo models.Optional[models.GeoInfo],
	rates models.Optional[models.RateInfo],
	news []models.NewsItem,
) models.AggregateResult {
	if news == nil {
		news = []models.NewsItem{}
	}
	return models.AggregateResult{
		Profile: profile,
		Geo:     geo,
		Rates:   rates,
		News:    news,
	}
}
