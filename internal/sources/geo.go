package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/BerylCAtieno/country-profile-aggregator/internal/models"
)

const geoSource = "geo"

// GeoClient looks up country metadata by name.
type GeoClient struct {
	client  *http.Client
	baseURL string
}

func NewGeoClient(client *http.Client, baseURL string) *GeoClient {
	return &GeoClient{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// LookupCountry returns the first country matching name, in source order.
// Zero matches, including a 404, is ErrCountryNotFound.
func (c *GeoClient) LookupCountry(ctx context.Context, name string) (models.GeoInfo, error) {
	endpoint := c.baseURL + "/name/" + url.PathEscape(name)

	body, err := getJSON(ctx, c.client, geoSource, endpoint)
	if err != nil {
		var upstreamErr *UpstreamError
		if errors.As(err, &upstreamErr) && upstreamErr.StatusCode == http.StatusNotFound {
			return models.GeoInfo{}, fmt.Errorf("%w: %q", ErrCountryNotFound, name)
		}
		return models.GeoInfo{}, err
	}

	if !gjson.ValidBytes(body) {
		return models.GeoInfo{}, fmt.Errorf("%s: malformed body", geoSource)
	}
	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return models.GeoInfo{}, fmt.Errorf("%s: expected an array of countries", geoSource)
	}
	matches := root.Array()
	if len(matches) == 0 {
		return models.GeoInfo{}, fmt.Errorf("%w: %q", ErrCountryNotFound, name)
	}

	return normalizeCountry(matches[0]), nil
}

// normalizeCountry maps a raw country record. Objects are walked with gjson so
// that language and currency keys keep the order the source sent them in.
func normalizeCountry(country gjson.Result) models.GeoInfo {
	info := models.GeoInfo{
		CountryName: firstNonEmpty(
			country.Get("name.common").String(),
			country.Get("name.official").String(),
		),
		Capital: firstNonEmpty(country.Get("capital.0").String()),
		FlagURL: firstNonEmpty(
			country.Get("flags.png").String(),
			country.Get("flags.svg").String(),
		),
		OfficialLanguages: models.NotAvailable,
		Currency:          models.Currency{Code: models.NotAvailable, Name: models.NotAvailable},
	}

	if languages := country.Get("languages"); languages.IsObject() {
		var names []string
		languages.ForEach(func(_, value gjson.Result) bool {
			names = append(names, value.String())
			return true
		})
		if len(names) > 0 {
			info.OfficialLanguages = strings.Join(names, ", ")
		}
	}

	if currencies := country.Get("currencies"); currencies.IsObject() {
		currencies.ForEach(func(code, value gjson.Result) bool {
			info.Currency = models.Currency{
				Code: firstNonEmpty(code.String()),
				Name: firstNonEmpty(value.Get("name").String()),
			}
			return false
		})
	}

	return info
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return models.NotAvailable
}
