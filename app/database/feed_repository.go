package database

import (
	"fmt"
	"strings"
)

var _ FeedStore = (*FeedRepository)(nil)

// FeedRepository handles database operations for feeds
type FeedRepository struct {
	db *DB
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(db *DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// ListFeeds returns all registered feeds ordered by registration order.
func (r *FeedRepository) ListFeeds() ([]Feed, error) {
	rows, err := r.db.Query(`
		SELECT id, url
		FROM feeds
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list feeds: %w", err)
	}
	defer rows.Close()

	feeds := make([]Feed, 0)
	for rows.Next() {
		var feed Feed
		if err := rows.Scan(&feed.ID, &feed.URL); err != nil {
			return nil, fmt.Errorf("failed to scan feed row: %w", err)
		}
		feeds = append(feeds, feed)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feed rows: %w", err)
	}

	return feeds, nil
}

// AddFeed inserts a new feed URL. Returns ErrDuplicateFeed when the URL is
// already registered.
func (r *FeedRepository) AddFeed(url string) (*Feed, error) {
	result, err := r.db.Exec(`
		INSERT INTO feeds (url) VALUES (?)
	`, url)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrDuplicateFeed
		}
		return nil, fmt.Errorf("failed to add feed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted feed id: %w", err)
	}

	return &Feed{ID: id, URL: url}, nil
}

// DeleteFeed removes a feed by id. Returns ErrFeedNotFound when no row
// matches.
func (r *FeedRepository) DeleteFeed(id int64) error {
	result, err := r.db.Exec(`
		DELETE FROM feeds WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return ErrFeedNotFound
	}

	return nil
}

// FeedCount returns the total number of registered feeds
func (r *FeedRepository) FeedCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM feeds").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get feed count: %w", err)
	}
	return count, nil
}
