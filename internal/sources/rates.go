package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/BerylCAtieno/country-profile-aggregator/internal/models"
)

const ratesSource = "rates"

// Fixed conversion targets.
const (
	TargetUSD = "USD"
	TargetKZT = "KZT"
)

type ratesResponse struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// RatesClient fetches the latest conversion rates for a base currency.
type RatesClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewRatesClient(client *http.Client, baseURL, apiKey string) *RatesClient {
	return &RatesClient{client: client, baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey}
}

// LatestRates returns the USD and KZT rates for base. An error-result from the
// source is classified by resultError, whatever HTTP status carried it.
func (c *RatesClient) LatestRates(ctx context.Context, base string) (models.RateInfo, error) {
	endpoint := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, url.PathEscape(c.apiKey), url.PathEscape(base))

	body, err := getJSON(ctx, c.client, ratesSource, endpoint)
	if err != nil {
		var upstreamErr *UpstreamError
		if errors.As(err, &upstreamErr) {
			if resp, ok := decodeRates(upstreamErr.Body); ok && resp.Result == "error" {
				return models.RateInfo{}, resultError(base, resp.ErrorType)
			}
		}
		return models.RateInfo{}, err
	}

	resp, ok := decodeRates(body)
	if !ok {
		return models.RateInfo{}, fmt.Errorf("%s: malformed body", ratesSource)
	}
	if resp.Result == "error" {
		return models.RateInfo{}, resultError(base, resp.ErrorType)
	}
	if resp.ConversionRates == nil {
		return models.RateInfo{}, fmt.Errorf("%s: missing conversion_rates", ratesSource)
	}

	return models.RateInfo{
		BaseCurrencyCode: base,
		USDRate:          FormatRate(resp.ConversionRates, TargetUSD),
		KZTRate:          FormatRate(resp.ConversionRates, TargetKZT),
	}, nil
}

// resultError maps an error-type to a sentinel. Key and account problems are
// ErrCredentialRejected; anything else is blamed on the requested code.
func resultError(base, errorType string) error {
	switch errorType {
	case "invalid-key", "inactive-account", "quota-reached":
		return fmt.Errorf("%s: %w (%s)", ratesSource, ErrCredentialRejected, errorType)
	default:
		return fmt.Errorf("%w: %s (%s)", ErrInvalidCurrency, base, errorType)
	}
}

func decodeRates(body []byte) (ratesResponse, bool) {
	var resp ratesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return ratesResponse{}, false
	}
	return resp, true
}

// FormatRate renders rates[target] with two decimals. A missing or zero rate is N/A.
func FormatRate(rates map[string]float64, target string) string {
	rate, ok := rates[target]
	if !ok || rate == 0 {
		return models.NotAvailable
	}
	return strconv.FormatFloat(rate, 'f', 2, 64)
}
