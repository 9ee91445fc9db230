// Package relation implements term-set similarity scoring and the symmetric
// relationship graph between documents.
package relation

import "sort"

// Jaccard returns |A∩B| / |A∪B| for two term sets, or 0.0 when either set is
// empty. The result is always in [0, 1].
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	intersection := 0
	for term := range a {
		if _, ok := b[term]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// Graph records which documents are related. Edges are symmetric and
// accumulate-only: once linked, two documents stay linked even if later
// content changes drop their similarity below threshold.
type Graph struct {
	edges map[string]map[string]struct{}
}

// NewGraph creates an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		edges: make(map[string]map[string]struct{}),
	}
}

// Link inserts the edge in both directions.
func (g *Graph) Link(a, b string) {
	g.insert(a, b)
	g.insert(b, a)
}

func (g *Graph) insert(from, to string) {
	bucket, ok := g.edges[from]
	if !ok {
		bucket = make(map[string]struct{})
		g.edges[from] = bucket
	}
	bucket[to] = struct{}{}
}

// Related returns a sorted copy of the ids related to id. An unknown id
// yields an empty slice.
func (g *Graph) Related(id string) []string {
	bucket, ok := g.edges[id]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(bucket))
	for related := range bucket {
		ids = append(ids, related)
	}
	sort.Strings(ids)
	return ids
}

// Linked reports whether an edge exists between a and b.
func (g *Graph) Linked(a, b string) bool {
	_, ok := g.edges[a][b]
	return ok
}

// EdgeCount returns the number of undirected edges in the graph.
func (g *Graph) EdgeCount() int {
	directed := 0
	for _, bucket := range g.edges {
		directed += len(bucket)
	}
	return directed / 2
}
