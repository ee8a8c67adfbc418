package feed

import (
	"time"
)

// Feed search types

type Metadata struct {
	Title       string
	Description string
}

type Item struct {
	Title       string
	Description string
	Link        string
	PublishedAt time.Time // zero when the feed provides no usable date
}

// Query describes one search request across all registered feeds.
type Query struct {
	Keywords   string
	Field      string // title, description, both
	Mode       string // any, all
	MaxResults int    // 0 = unlimited
}

// Result is a single matched entry.
type Result struct {
	Title   string  `json:"title"`
	Link    string  `json:"link"`
	Summary string  `json:"summary"`
	Source  string  `json:"source"`
	Date    float64 `json:"date"`
	DateStr string  `json:"date_str"`
}

// Report is the outcome of one search call. FailedFeeds lists URLs that
// produced no entries, whether the fetch failed or the feed was empty.
type Report struct {
	Results     []Result
	TotalFeeds  int
	FailedFeeds []string
}

// Validation is the outcome of probing a candidate feed URL.
type Validation struct {
	Title       string
	Description string
	EntryCount  int
}
