package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BerylCAtieno/country-profile-aggregator/internal/models"
	"github.com/BerylCAtieno/country-profile-aggregator/internal/sources"
)

// Service is the aggregator surface the handlers depend on.
type Service interface {
	Aggregate(ctx context.Context) (models.AggregateResult, error)
	Profile(ctx context.Context) (models.Profile, error)
	Country(ctx context.Context, name string) (models.GeoInfo, error)
	ExchangeRates(ctx context.Context, code string) (models.RateInfo, error)
	News(ctx context.Context, country string) ([]models.NewsItem, error)
}

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewHandler(logger *slog.Logger, service Service) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// Register mounts the API routes on r.
func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/user-data", h.HandleUserData)
	r.GET("/random-user", h.HandleRandomUser)
	r.GET("/country/:countryName", h.HandleCountry)
	r.GET("/exchange-rate/:currencyCode", h.HandleExchangeRate)
	r.GET("/news/:countryName", h.HandleNews)
}

// HandleUserData serves the composite profile. Only an identity failure is an error.
func (h *Handler) HandleUserData(c *gin.Context) {
	result, err := h.service.Aggregate(c.Request.Context())
	if err != nil {
		h.logger.Error("aggregate failed", "error", err, "request_id", requestID(c))
		h.sendError(c, http.StatusInternalServerError, "Failed to get user data")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) HandleRandomUser(c *gin.Context) {
	profile, err := h.service.Profile(c.Request.Context())
	if err != nil {
		h.logger.Error("identity fetch failed", "error", err, "request_id", requestID(c))
		h.sendError(c, http.StatusInternalServerError, "Failed to get user data")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) HandleCountry(c *gin.Context) {
	name := c.Param("countryName")

	info, err := h.service.Country(c.Request.Context(), name)
	if err != nil {
		h.logger.Error("country lookup failed", "error", err, "country", name, "request_id", requestID(c))
		if errors.Is(err, sources.ErrCountryNotFound) {
			h.sendError(c, http.StatusNotFound, "Country not found")
			return
		}
		h.sendError(c, http.StatusInternalServerError, "Failed to get country data")
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *Handler) HandleExchangeRate(c *gin.Context) {
	code := c.Param("currencyCode")

	rates, err := h.service.ExchangeRates(c.Request.Context(), code)
	if err != nil {
		h.logger.Error("exchange rate fetch failed", "error", err, "currency", code, "request_id", requestID(c))
		switch {
		case errors.Is(err, sources.ErrNotConfigured):
			h.sendError(c, http.StatusInternalServerError, "Exchange rate API key is not configured. Set EXCHANGE_RATE_API_KEY")
		case errors.Is(err, sources.ErrInvalidCurrency):
			h.sendError(c, http.StatusBadRequest, "Invalid currency code")
		default:
			h.sendError(c, http.StatusInternalServerError, "Failed to get exchange rates")
		}
		return
	}
	c.JSON(http.StatusOK, rates)
}

func (h *Handler) HandleNews(c *gin.Context) {
	country := c.Param("countryName")

	items, err := h.service.News(c.Request.Context(), country)
	if err != nil {
		h.logger.Error("news fetch failed", "error", err, "country", country, "request_id", requestID(c))
		switch {
		case errors.Is(err, sources.ErrNotConfigured):
			h.sendError(c, http.StatusInternalServerError, "News API key is not configured. Set NEWS_API_KEY")
		case errors.Is(err, sources.ErrNewsStatus):
			h.sendError(c, http.StatusBadRequest, "News API error")
		default:
			h.sendError(c, http.StatusInternalServerError, "Failed to get news")
		}
		return
	}
	if items == nil {
		items = []models.NewsItem{}
	}
	c.JSON(http.StatusOK, items)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) sendError(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{Error: message})
}
