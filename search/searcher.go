package search

import (
	"log/slog"
	"sort"

	"github.com/anilreddy12001/portfolio-engine/content"
	"github.com/anilreddy12001/portfolio-engine/core"
)

// Searcher ranks portfolio records against free-text queries.
//
// The index is built once at construction and never mutated; build a new
// Searcher to pick up content changes.
type Searcher struct {
	index      []core.Record
	maxResults int
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithMaxResults caps the number of results returned per query.
// Zero, the default, means all non-zero matches are returned.
func WithMaxResults(n int) Option {
	return func(s *Searcher) error {
		if n > 0 {
			s.maxResults = n
		}
		return nil
	}
}

// NewSearcher builds the unified index over the given store and returns a
// ready Searcher.
func NewSearcher(store *content.Store, opts ...Option) (*Searcher, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	s := &Searcher{
		index:  BuildIndex(store),
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// IndexSize returns the number of records in the index.
func (s *Searcher) IndexSize() int { return len(s.index) }

// Search scores every indexed record and returns the non-zero matches
// ordered by score descending, truncated to the max-results cap. Ties keep
// index insertion order. An empty or whitespace-only query yields an empty
// result set without scoring.
func (s *Searcher) Search(query string) []core.SearchResult {
	return s.SearchWithMonitor(query, nil)
}

// SearchAll is Search without the max-results cap. Callers with their own
// display limit, like the chat fallback, use it so a tighter cap on the
// searcher never shrinks their view.
func (s *Searcher) SearchAll(query string) []core.SearchResult {
	return s.rank(query, &noopMonitor{}, false)
}

// SearchWithMonitor performs a capped search with monitoring. The monitor
// receives callbacks for the query start, each scored record, and the final
// ranked results.
func (s *Searcher) SearchWithMonitor(query string, monitor Monitor) []core.SearchResult {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	return s.rank(query, monitor, true)
}

func (s *Searcher) rank(query string, monitor Monitor, capped bool) []core.SearchResult {
	normalized := Normalize(query)
	if normalized == "" {
		s.logger.Debug("empty query, skipping scoring")
		return []core.SearchResult{}
	}

	monitor.Start(normalized)

	results := make([]core.SearchResult, 0, len(s.index))
	for _, record := range s.index {
		score := Score(record, normalized)
		monitor.RecordScored(record, score)
		if score == 0 {
			continue
		}
		results = append(results, core.SearchResult{Record: record, Score: score})
	}

	// Stable sort keeps insertion order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if capped && s.maxResults > 0 && len(results) > s.maxResults {
		results = results[:s.maxResults]
	}

	s.logger.Debug("search complete", "query", normalized, "hits", len(results))
	monitor.Finish(results)

	return results
}
