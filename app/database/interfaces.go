package database

import "errors"

var (
	ErrDuplicateFeed = errors.New("feed already exists")
	ErrFeedNotFound  = errors.New("feed not found")
)

// FeedStore is the persistence boundary for registered feed URLs. Search
// only ever calls ListFeeds; the mutating operations back the CRUD API.
type FeedStore interface {
	ListFeeds() ([]Feed, error)
	AddFeed(url string) (*Feed, error)
	DeleteFeed(id int64) error
	FeedCount() (int, error)
}
