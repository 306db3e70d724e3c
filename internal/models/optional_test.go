package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalGet(t *testing.T) {
	v, ok := Some(42).Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = None[int]().Get()
	assert.False(t, ok)

	var zero Optional[string]
	assert.False(t, zero.Present())
}

func TestAggregateResultJSON(t *testing.T) {
	result := AggregateResult{
		Profile: Profile{FirstName: "Ana", Country: "Japan"},
		Geo:     Some(GeoInfo{CountryName: "Japan", Currency: Currency{Code: "JPY", Name: "Japanese yen"}}),
		Rates:   None[RateInfo](),
		News:    []NewsItem{},
	}

	raw, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Nil(t, decoded["exchangeRates"])
	assert.Equal(t, []any{}, decoded["news"])
	country, ok := decoded["country"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Japan", country["countryName"])
	user, ok := decoded["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ana", user["firstName"])
}

func TestGeoInfoHasCurrency(t *testing.T) {
	assert.True(t, GeoInfo{Currency: Currency{Code: "EUR"}}.HasCurrency())
	assert.False(t, GeoInfo{Currency: Currency{Code: NotAvailable}}.HasCurrency())
	assert.False(t, GeoInfo{}.HasCurrency())
}

func TestNewsItemImageNull(t *testing.T) {
	raw, err := json.Marshal(NewsItem{Title: "t", Description: "d", SourceURL: "#"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t","image":null,"description":"d","sourceUrl":"#"}`, string(raw))
}
