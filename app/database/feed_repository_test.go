package database

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestRepository(t *testing.T) *FeedRepository {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return NewFeedRepository(db)
}

func TestFeedRepository_AddAndList(t *testing.T) {
	repo := newTestRepository(t)

	first, err := repo.AddFeed("https://example.com/rss.xml")
	if err != nil {
		t.Fatalf("Failed to add feed: %v", err)
	}
	if first.ID == 0 {
		t.Error("Expected non-zero feed ID")
	}

	second, err := repo.AddFeed("https://example.org/atom.xml")
	if err != nil {
		t.Fatalf("Failed to add second feed: %v", err)
	}

	feeds, err := repo.ListFeeds()
	if err != nil {
		t.Fatalf("Failed to list feeds: %v", err)
	}
	if len(feeds) != 2 {
		t.Fatalf("Expected 2 feeds, got %d", len(feeds))
	}

	// Registration order must be preserved
	if feeds[0].ID != first.ID || feeds[0].URL != "https://example.com/rss.xml" {
		t.Errorf("Unexpected first feed: %+v", feeds[0])
	}
	if feeds[1].ID != second.ID || feeds[1].URL != "https://example.org/atom.xml" {
		t.Errorf("Unexpected second feed: %+v", feeds[1])
	}
}

func TestFeedRepository_AddDuplicate(t *testing.T) {
	repo := newTestRepository(t)

	if _, err := repo.AddFeed("https://example.com/rss.xml"); err != nil {
		t.Fatalf("Failed to add feed: %v", err)
	}

	_, err := repo.AddFeed("https://example.com/rss.xml")
	if !errors.Is(err, ErrDuplicateFeed) {
		t.Errorf("Expected ErrDuplicateFeed, got %v", err)
	}
}

func TestFeedRepository_DeleteFeed(t *testing.T) {
	repo := newTestRepository(t)

	feed, err := repo.AddFeed("https://example.com/rss.xml")
	if err != nil {
		t.Fatalf("Failed to add feed: %v", err)
	}

	if err := repo.DeleteFeed(feed.ID); err != nil {
		t.Errorf("Failed to delete feed: %v", err)
	}

	feeds, err := repo.ListFeeds()
	if err != nil {
		t.Fatalf("Failed to list feeds: %v", err)
	}
	if len(feeds) != 0 {
		t.Errorf("Expected 0 feeds after delete, got %d", len(feeds))
	}
}

func TestFeedRepository_DeleteMissingFeed(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.DeleteFeed(42)
	if !errors.Is(err, ErrFeedNotFound) {
		t.Errorf("Expected ErrFeedNotFound, got %v", err)
	}
}

func TestFeedRepository_FeedCount(t *testing.T) {
	repo := newTestRepository(t)

	count, err := repo.FeedCount()
	if err != nil {
		t.Fatalf("Failed to get feed count: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected count 0, got %d", count)
	}

	if _, err := repo.AddFeed("https://example.com/rss.xml"); err != nil {
		t.Fatalf("Failed to add feed: %v", err)
	}

	count, err = repo.FeedCount()
	if err != nil {
		t.Fatalf("Failed to get feed count: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}
}
