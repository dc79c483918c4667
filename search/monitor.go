package search

// SearchMonitor provides hooks to observe a search.
// Implement this interface to track intermediate steps and results.
// Indexes refer to positions in the input record slice.
type SearchMonitor interface {
	Start(query string)
	AfterParse(terms []string)
	Matched(index int)
	Scored(index int, relevance float64)
	Finish(kept, scanned int)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)          {}
func (n *noopMonitor) AfterParse(_ []string)   {}
func (n *noopMonitor) Matched(_ int)           {}
func (n *noopMonitor) Scored(_ int, _ float64) {}
func (n *noopMonitor) Finish(_ int, _ int)     {}
