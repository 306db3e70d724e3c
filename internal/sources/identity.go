package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/BerylCAtieno/country-profile-aggregator/internal/models"
)

const identitySource = "identity"

// DateOfBirthLayout renders dates as "May 3, 1990".
const DateOfBirthLayout = "January 2, 2006"

type identityResponse struct {
	Results []identityRecord `json:"results"`
}

type identityRecord struct {
	Gender string `json:"gender"`
	Name   struct {
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Picture struct {
		Large string `json:"large"`
	} `json:"picture"`
	Dob struct {
		Date string `json:"date"`
		Age  int    `json:"age"`
	} `json:"dob"`
	Location struct {
		City    string `json:"city"`
		Country string `json:"country"`
		Street  struct {
			Number json.Number `json:"number"`
			Name   string      `json:"name"`
		} `json:"street"`
	} `json:"location"`
}

// IdentityClient fetches random synthetic users.
type IdentityClient struct {
	client  *http.Client
	baseURL string
}

func NewIdentityClient(client *http.Client, baseURL string) *IdentityClient {
	return &IdentityClient{client: client, baseURL: baseURL}
}

// RandomProfile fetches one identity and maps it to a Profile.
func (c *IdentityClient) RandomProfile(ctx context.Context) (models.Profile, error) {
	body, err := getJSON(ctx, c.client, identitySource, c.baseURL)
	if err != nil {
		return models.Profile{}, err
	}

	var resp identityResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.Profile{}, fmt.Errorf("%s: decode body: %w", identitySource, err)
	}
	if len(resp.Results) == 0 {
		return models.Profile{}, fmt.Errorf("%w: empty results", ErrUnusableIdentity)
	}

	return toProfile(resp.Results[0])
}

func toProfile(rec identityRecord) (models.Profile, error) {
	if strings.TrimSpace(rec.Location.Country) == "" {
		return models.Profile{}, fmt.Errorf("%w: missing country", ErrUnusableIdentity)
	}

	dob, err := FormatDateOfBirth(rec.Dob.Date)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %v", ErrUnusableIdentity, err)
	}

	return models.Profile{
		FirstName:     rec.Name.First,
		LastName:      rec.Name.Last,
		Gender:        rec.Gender,
		PictureURL:    rec.Picture.Large,
		Age:           rec.Dob.Age,
		DateOfBirth:   dob,
		City:          rec.Location.City,
		Country:       rec.Location.Country,
		StreetAddress: strings.TrimSpace(fmt.Sprintf("%s %s", rec.Location.Street.Number, rec.Location.Street.Name)),
	}, nil
}

// FormatDateOfBirth turns an RFC 3339 timestamp or a bare YYYY-MM-DD date into
// the long form used on the profile, evaluated in UTC.
func FormatDateOfBirth(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(DateOfBirthLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized date of birth %q", raw)
}
