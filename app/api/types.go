package api

import (
	"context"

	"github.com/xsukax/rss-search/app/database"
	"github.com/xsukax/rss-search/app/feed"
)

type SearcherInterface interface {
	Run(ctx context.Context, feedURLs []string, query feed.Query) (*feed.Report, error)
}

type ValidatorInterface interface {
	Run(ctx context.Context, url string) (*feed.Validation, error)
}

var _ SearcherInterface = (*feed.Searcher)(nil)
var _ ValidatorInterface = (*feed.Validator)(nil)

type Handler struct {
	store     database.FeedStore
	searcher  SearcherInterface
	validator ValidatorInterface
}

// Request/response types

type FeedRequest struct {
	URL string `json:"url" binding:"required"`
}

type ValidateRequest struct {
	URL string `json:"url" binding:"required"`
}

type SearchRequest struct {
	Keywords   string `json:"keywords"`
	Field      string `json:"field"`
	Mode       string `json:"mode"`
	MaxResults int    `json:"max_results"`
}

type ValidationResponse struct {
	Valid       bool   `json:"valid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	EntryCount  int    `json:"entry_count"`
}

type SearchParams struct {
	Keywords   string `json:"keywords"`
	Field      string `json:"field"`
	Mode       string `json:"mode"`
	MaxResults int    `json:"max_results"`
}

type SearchResponse struct {
	Results      []feed.Result `json:"results"`
	TotalFeeds   int           `json:"total_feeds"`
	FailedFeeds  []string      `json:"failed_feeds"`
	SearchParams SearchParams  `json:"search_params"`
	GeneratedAt  string        `json:"generated_at"`
}
