package models

// NewsItem is a single relevant headline. ImageURL is nil when the source had none.
type NewsItem struct {
	Title       string  `json:"title"`
	ImageURL    *string `json:"image"`
	Description string  `json:"description"`
	SourceURL   string  `json:"sourceUrl"`
}
