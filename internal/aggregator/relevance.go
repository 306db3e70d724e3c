package aggregator

import (
	"strings"

	"github.com/BerylCAtieno/country-profile-aggregator/internal/models"
	"github.com/BerylCAtieno/country-profile-aggregator/internal/sources"
)

// MaxRelevantArticles bounds the news list.
const MaxRelevantArticles = 5

const (
	defaultTitle       = "No title"
	defaultDescription = "No description available"
	defaultSourceURL   = "#"
)

// FilterRelevant keeps articles whose title mentions term, case-insensitively,
// in source order, stopping at MaxRelevantArticles.
func FilterRelevant(articles []sources.Article, term string) []models.NewsItem {
	needle := strings.ToLower(term)
	relevant := make([]models.NewsItem, 0, MaxRelevantArticles)

	for _, article := range articles {
		if len(relevant) == MaxRelevantArticles {
			break
		}
		if article.Title == "" || !strings.Contains(strings.ToLower(article.Title), needle) {
			continue
		}
		relevant = append(relevant, toNewsItem(article))
	}
	return relevant
}

func toNewsItem(article sources.Article) models.NewsItem {
	item := models.NewsItem{
		Title:       orDefault(article.Title, defaultTitle),
		Description: orDefault(article.Description, defaultDescription),
		SourceURL:   orDefault(article.URL, defaultSourceURL),
	}
	if article.URLToImage != "" {
		image := article.URLToImage
		item.ImageURL = &image
	}
	return item
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
