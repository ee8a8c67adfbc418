package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidURL  = errors.New("invalid URL format")
	ErrEmptyFeed   = errors.New("feed contains no entries")
	ErrInvalidFeed = errors.New("invalid feed format")
)

// Validator probes a candidate feed URL before it is registered.
type Validator struct {
	fetcher *Fetcher
	parser  *Parser
}

func NewValidator(fetcher *Fetcher, parser *Parser) *Validator {
	return &Validator{
		fetcher: fetcher,
		parser:  parser,
	}
}

func (v *Validator) Run(ctx context.Context, rawURL string) (*Validation, error) {
	feedURL := strings.TrimSpace(rawURL)
	if !strings.HasPrefix(feedURL, "http://") && !strings.HasPrefix(feedURL, "https://") {
		return nil, ErrInvalidURL
	}

	data, err := v.fetcher.Run(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("feed validation failed: %w", err)
	}

	metadata, items, err := v.parser.Run(data)
	if err != nil {
		return nil, ErrInvalidFeed
	}

	if len(items) == 0 {
		return nil, ErrEmptyFeed
	}

	return &Validation{
		Title:       metadata.Title,
		Description: metadata.Description,
		EntryCount:  len(items),
	}, nil
}
