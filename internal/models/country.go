package models

// NotAvailable is the display value used for any field an upstream left out.
const NotAvailable = "N/A"

// Currency names the money used in a country.
type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// GeoInfo is the normalized country metadata for a profile's country.
type GeoInfo struct {
	CountryName       string   `json:"countryName"`
	Capital           string   `json:"capital"`
	OfficialLanguages string   `json:"officialLanguages"`
	Currency          Currency `json:"currency"`
	FlagURL           string   `json:"flag"`
}

// HasCurrency reports whether a currency code was resolved.
func (g GeoInfo) HasCurrency() bool {
	return g.Currency.Code != "" && g.Currency.Code != NotAvailable
}

// RateInfo holds conversion rates from a base currency to the fixed targets.
// Rates are pre-formatted with two decimals, or NotAvailable.
type RateInfo struct {
	BaseCurrencyCode string `json:"baseCurrency"`
	USDRate          string `json:"usd"`
	KZTRate          string `json:"kzt"`
}
