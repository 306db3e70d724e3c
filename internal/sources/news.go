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
)

const newsSource = "news"

// NewsPageSize is how many candidate articles are requested per search.
const NewsPageSize = 20

// Article is a raw candidate as returned by the news source.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
}

type newsResponse struct {
	Status   string    `json:"status"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Articles []Article `json:"articles"`
}

// NewsClient searches recent English-language articles.
type NewsClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewNewsClient(client *http.Client, baseURL, apiKey string) *NewsClient {
	return &NewsClient{client: client, baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey}
}

// Search returns up to NewsPageSize candidates for query, newest first.
func (c *NewsClient) Search(ctx context.Context, query string) ([]Article, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(NewsPageSize))
	params.Set("apiKey", c.apiKey)

	body, err := getJSON(ctx, c.client, newsSource, c.baseURL+"/everything?"+params.Encode())
	if err != nil {
		var upstreamErr *UpstreamError
		if errors.As(err, &upstreamErr) {
			var resp newsResponse
			if json.Unmarshal(upstreamErr.Body, &resp) == nil && resp.Status != "" {
				return nil, fmt.Errorf("%w: %s %s", ErrNewsStatus, resp.Code, resp.Message)
			}
		}
		return nil, err
	}

	var resp newsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%s: decode body: %w", newsSource, err)
	}
	if resp.Status != "ok" {
		return nil, fmt.Errorf("%w: status %q", ErrNewsStatus, resp.Status)
	}
	return resp.Articles, nil
}
