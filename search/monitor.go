package search

import "github.com/anilreddy12001/portfolio-engine/core"

// Monitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type Monitor interface {
	Start(query string)
	RecordScored(record core.Record, score int)
	Finish(results []core.SearchResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                      {}
func (n *noopMonitor) RecordScored(_ core.Record, _ int)   {}
func (n *noopMonitor) Finish(_ []core.SearchResult)        {}
