package models

// AggregateResult is the composite response. Profile is always set; the other
// fields degrade independently.
type AggregateResult struct {
	Profile Profile            `json:"user"`
	Geo     Optional[GeoInfo]  `json:"country"`
	Rates   Optional[RateInfo] `json:"exchangeRates"`
	News    []NewsItem         `json:"news"`
}
