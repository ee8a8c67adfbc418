package feed

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sort"
	"sync"
)

const (
	// DefaultWorkers caps the number of in-flight fetches per search
	DefaultWorkers = 10

	// SummaryLimit is the maximum summary length in codepoints
	SummaryLimit = 300
)

var (
	ErrNoFeeds    = errors.New("no feeds configured")
	ErrNoKeywords = errors.New("no keywords provided")
)

// Searcher fans fetch+parse out over all registered feeds, then merges,
// deduplicates and sorts the matching entries. Per-feed failures are
// absorbed into the report's FailedFeeds list, never returned as errors.
type Searcher struct {
	fetcher *Fetcher
	parser  *Parser
	workers int
}

func NewSearcher(fetcher *Fetcher, parser *Parser, workers int) *Searcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Searcher{
		fetcher: fetcher,
		parser:  parser,
		workers: workers,
	}
}

// Run executes one search across the given feed URLs. It returns
// ErrNoFeeds or ErrNoKeywords before any network work; once fetching has
// started it always returns a report.
func (s *Searcher) Run(ctx context.Context, feedURLs []string, query Query) (*Report, error) {
	if len(feedURLs) == 0 {
		return nil, ErrNoFeeds
	}

	keywords := ParseKeywords(query.Keywords)
	if len(keywords) == 0 {
		return nil, ErrNoKeywords
	}

	entries := s.fetchAll(ctx, feedURLs)

	// Merge phase runs single-threaded after every fetch has completed,
	// so seenLinks and results need no locking. Feed list order decides
	// which copy of a duplicated link wins.
	results := make([]Result, 0)
	seenLinks := make(map[string]bool)
	failedFeeds := make([]string, 0)

	for i, items := range entries {
		if len(items) == 0 {
			// A feed that fetched fine but contains zero entries lands
			// here too; callers only see the conflated failure list
			failedFeeds = append(failedFeeds, feedURLs[i])
			continue
		}

		for _, item := range items {
			text := FieldText(item, query.Field)
			if text == "" || !Matches(text, keywords, query.Mode) {
				continue
			}

			if item.Link == "" || seenLinks[item.Link] {
				continue
			}
			seenLinks[item.Link] = true

			results = append(results, buildResult(item))
		}
	}

	// Stable keeps insertion order for equal dates; zero dates sort last
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Date > results[b].Date
	})

	if query.MaxResults > 0 && len(results) > query.MaxResults {
		results = results[:query.MaxResults]
	}

	return &Report{
		Results:     results,
		TotalFeeds:  len(feedURLs),
		FailedFeeds: failedFeeds,
	}, nil
}

// fetchAll dispatches one fetch+parse per feed URL over a fixed worker
// pool and collects entry lists indexed by feed position.
func (s *Searcher) fetchAll(ctx context.Context, feedURLs []string) [][]Item {
	entries := make([][]Item, len(feedURLs))

	workers := s.workers
	if workers > len(feedURLs) {
		workers = len(feedURLs)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				entries[i] = s.fetchOne(ctx, feedURLs[i])
			}
		}()
	}

	for i := range feedURLs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return entries
}

// fetchOne normalizes any fetch or parse failure into an empty entry list.
func (s *Searcher) fetchOne(ctx context.Context, feedURL string) []Item {
	data, err := s.fetcher.Run(ctx, feedURL)
	if err != nil {
		slog.Debug("Feed fetch failed", "url", feedURL, "error", err)
		return nil
	}

	_, items, err := s.parser.Run(data)
	if err != nil {
		slog.Debug("Feed parse failed", "url", feedURL, "error", err)
		return nil
	}

	return items
}

func buildResult(item Item) Result {
	summary := item.Description
	if runes := []rune(summary); len(runes) > SummaryLimit {
		summary = string(runes[:SummaryLimit])
	}

	source := ""
	if parsed, err := url.Parse(item.Link); err == nil {
		source = parsed.Host
	}

	var epoch float64
	var dateStr string
	if !item.PublishedAt.IsZero() {
		epoch = float64(item.PublishedAt.Unix())
		dateStr = item.PublishedAt.Format("Jan 02, 2006")
	}

	return Result{
		Title:   item.Title,
		Link:    item.Link,
		Summary: summary,
		Source:  source,
		Date:    epoch,
		DateStr: dateStr,
	}
}
