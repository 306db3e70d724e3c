// Package aggregator combines the identity, geo-metadata, rate and news sources
// into one best-effort profile response.
//
// The composite operation runs identity, then geo, then rates and news side by
// side. Only an identity failure fails the whole request; every other step
// degrades to an absent or empty field and logs the cause. The standalone
// operations run a single step and return its error to the caller.
package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/BerylCAtieno/country-profile-aggregator/internal/config"
	"github.com/BerylCAtieno/country-profile-aggregator/internal/models"
	"github.com/BerylCAtieno/country-profile-aggregator/internal/sources"
)

// IdentitySource produces synthetic user profiles.
type IdentitySource interface {
	RandomProfile(ctx context.Context) (models.Profile, error)
}

// GeoSource resolves country metadata by free-text name.
type GeoSource interface {
	LookupCountry(ctx context.Context, name string) (models.GeoInfo, error)
}

// RateSource resolves conversion rates for a base currency.
type RateSource interface {
	LatestRates(ctx context.Context, base string) (models.RateInfo, error)
}

// NewsSource searches candidate articles for a query.
type NewsSource interface {
	Search(ctx context.Context, query string) ([]sources.Article, error)
}

// Sources groups the upstream collaborators.
type Sources struct {
	Identity IdentitySource
	Geo      GeoSource
	Rates    RateSource
	News     NewsSource
}

// Aggregator orchestrates the upstream calls for one request at a time. It
// holds no per-request state and is safe for concurrent use.
type Aggregator struct {
	logger   *slog.Logger
	identity IdentitySource
	geo      GeoSource
	rates    RateSource
	news     NewsSource
	creds    config.UpstreamConfig
}

// New constructs an Aggregator. creds decides whether the paid sources may be called.
func New(logger *slog.Logger, src Sources, creds config.UpstreamConfig) *Aggregator {
	return &Aggregator{
		logger:   logger,
		identity: src.Identity,
		geo:      src.Geo,
		rates:    src.Rates,
		news:     src.News,
		creds:    creds,
	}
}

// Aggregate builds the composite result. It fails only when the identity step fails.
func (a *Aggregator) Aggregate(ctx context.Context) (models.AggregateResult, error) {
	profile, err := a.identity.RandomProfile(ctx)
	if err != nil {
		return models.AggregateResult{}, fmt.Errorf("fetch identity: %w", err)
	}

	geo := a.geoStep(ctx, profile.Country)

	var (
		rates models.Optional[models.RateInfo]
		news  []models.NewsItem
		g     errgroup.Group
	)
	g.Go(func() error {
		rates = a.rateStep(ctx, geo)
		return nil
	})
	g.Go(func() error {
		news = a.newsStep(ctx, profile.Country)
		return nil
	})
	_ = g.Wait()

	return Merge(profile, geo, rates, news), nil
}

func (a *Aggregator) geoStep(ctx context.Context, country string) models.Optional[models.GeoInfo] {
	info, err := a.geo.LookupCountry(ctx, country)
	if err != nil {
		a.logger.Warn("geo step degraded", "country", country, "error", err)
		return models.None[models.GeoInfo]()
	}
	return models.Some(info)
}

// rateStep runs only once geo resolved a currency code.
func (a *Aggregator) rateStep(ctx context.Context, geo models.Optional[models.GeoInfo]) models.Optional[models.RateInfo] {
	info, ok := geo.Get()
	if !ok || !info.HasCurrency() {
		a.logger.Debug("rate step skipped", "reason", "no currency code")
		return models.None[models.RateInfo]()
	}
	if !a.creds.ExchangeRateConfigured() {
		a.logger.Warn("rate step skipped", "reason", "exchange rate credential not configured")
		return models.None[models.RateInfo]()
	}

	rates, err := a.rates.LatestRates(ctx, info.Currency.Code)
	if err != nil {
		a.logger.Warn("rate step degraded", "currency", info.Currency.Code, "error", err)
		return models.None[models.RateInfo]()
	}
	return models.Some(rates)
}

func (a *Aggregator) newsStep(ctx context.Context, country string) []models.NewsItem {
	if !a.creds.NewsConfigured() {
		a.logger.Warn("news step skipped", "reason", "news credential not configured")
		return []models.NewsItem{}
	}

	articles, err := a.news.Search(ctx, country)
	if err != nil {
		a.logger.Warn("news step degraded", "country", country, "error", err)
		return []models.NewsItem{}
	}
	return FilterRelevant(articles, country)
}

// Profile fetches a single identity.
func (a *Aggregator) Profile(ctx context.Context) (models.Profile, error) {
	return a.identity.RandomProfile(ctx)
}

// Country looks up metadata for a country name.
func (a *Aggregator) Country(ctx context.Context, name string) (models.GeoInfo, error) {
	return a.geo.LookupCountry(ctx, name)
}

// ExchangeRates fetches rates for a currency code. The code is upper-cased first.
func (a *Aggregator) ExchangeRates(ctx context.Context, code string) (models.RateInfo, error) {
	if !a.creds.ExchangeRateConfigured() {
		return models.RateInfo{}, fmt.Errorf("exchange rates: %w", sources.ErrNotConfigured)
	}
	return a.rates.LatestRates(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

// News returns the relevant headlines for a country.
func (a *Aggregator) News(ctx context.Context, country string) ([]models.NewsItem, error) {
	if !a.creds.NewsConfigured() {
		return nil, fmt.Errorf("news: %w", sources.ErrNotConfigured)
	}
	articles, err := a.news.Search(ctx, country)
	if err != nil {
		return nil, err
	}
	return FilterRelevant(articles, country), nil
}
