// Package index implements the organizer's in-memory inverted index mapping
// terms to the set of documents that contain them.
package index

import (
	"sort"
	"strings"
)

// SearchIndex accumulates term → document-id postings. Entries are only ever
// added; there is no removal path.
type SearchIndex struct {
	postings map[string]map[string]struct{}
}

// New creates an empty SearchIndex.
func New() *SearchIndex {
	return &SearchIndex{
		postings: make(map[string]map[string]struct{}),
	}
}

// Add records docID under every term in the set. Each term is written under
// both its original and its lower-cased key; extraction already lower-cases,
// so for ASCII terms both writes hit the same bucket.
func (s *SearchIndex) Add(docID string, terms map[string]struct{}) {
	for term := range terms {
		s.put(term, docID)
		s.put(strings.ToLower(term), docID)
	}
}

func (s *SearchIndex) put(term, docID string) {
	bucket, ok := s.postings[term]
	if !ok {
		bucket = make(map[string]struct{})
		s.postings[term] = bucket
	}
	bucket[docID] = struct{}{}
}

// Lookup returns a sorted copy of the document ids indexed under term, or an
// empty slice when the term is unknown.
func (s *SearchIndex) Lookup(term string) []string {
	bucket, ok := s.postings[term]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(bucket))
	for id := range bucket {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TermCount reports the number of distinct index keys.
func (s *SearchIndex) TermCount() int {
	return len(s.postings)
}
