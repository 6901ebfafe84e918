package search

import "github.com/poiesic/talentsearch/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(intent string)
	AfterFacetSearch(facet core.Facet, matchCount int)
	AfterFusion(candidates []*core.RankedCandidate)
	AfterRerank(candidates []*core.RankedCandidate)
	Finish(results []*core.RankedCandidate)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                        {}
func (n *noopMonitor) AfterFacetSearch(_ core.Facet, _ int)  {}
func (n *noopMonitor) AfterFusion(_ []*core.RankedCandidate) {}
func (n *noopMonitor) AfterRerank(_ []*core.RankedCandidate) {}
func (n *noopMonitor) Finish(_ []*core.RankedCandidate)      {}
