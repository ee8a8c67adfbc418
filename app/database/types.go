package database

// Feed represents a registered feed source. The URL is unique across all
// sources; rows are immutable once created except for deletion.
type Feed struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}
