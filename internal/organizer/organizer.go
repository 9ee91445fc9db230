// Package organizer maintains the in-memory catalogue of scraped
// documentation pages: it versions each page's content, keeps an inverted
// search index over extracted terms, and discovers related pages via Jaccard
// similarity over term sets.
package organizer

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/scrapedocs/organizer/internal/organizer/document"
	"github.com/scrapedocs/organizer/internal/organizer/index"
	"github.com/scrapedocs/organizer/internal/organizer/relation"
	"github.com/scrapedocs/organizer/internal/organizer/tokenizer"
)

// DefaultSimilarityThreshold is the Jaccard score at which two documents are
// considered related when no threshold is configured.
const DefaultSimilarityThreshold = 0.3

// Stats is a point-in-time summary of the catalogue.
type Stats struct {
	Documents int `json:"documents"`
	Terms     int `json:"terms"`
	Relations int `json:"relations"`
}

// Organizer owns every document, the term sets extracted from them, the
// search index, and the relationship graph. A single lock guards all four
// structures: AddDocument is a scan-then-mutate sequence that must not
// interleave with other writers.
type Organizer struct {
	mu        sync.RWMutex
	documents map[string]*document.Document
	urlIndex  map[string]string
	termSets  map[string]map[string]struct{}
	search    *index.SearchIndex
	related   *relation.Graph
	threshold float64
	logger    *slog.Logger
}

// New creates an empty Organizer. A non-positive threshold falls back to
// DefaultSimilarityThreshold.
func New(threshold float64) *Organizer {
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	return &Organizer{
		documents: make(map[string]*document.Document),
		urlIndex:  make(map[string]string),
		termSets:  make(map[string]map[string]struct{}),
		search:    index.New(),
		related:   relation.NewGraph(),
		threshold: threshold,
		logger:    slog.Default().With("component", "organizer"),
	}
}

// AddDocument ingests one scraped page. A payload whose URL is already known
// appends a new version to the existing document; otherwise a new document
// is created under a freshly minted id. Either way the document's term set is
// re-extracted, the search index is updated, and relationships are recomputed
// against every other catalogued document. Malformed payloads degrade to
// empty fields; ingestion never fails.
func (o *Organizer) AddDocument(p document.Payload) (string, int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	id, known := o.urlIndex[p.URL]
	var doc *document.Document
	var version int
	if known {
		doc = o.documents[id]
		version = doc.AddVersion(p.Content)
	} else {
		id = uuid.NewString()
		doc = document.New(id, p)
		o.documents[id] = doc
		o.urlIndex[p.URL] = id
		version = 1
	}

	terms := extractTerms(doc)
	o.termSets[id] = terms
	o.search.Add(id, terms)
	o.recomputeRelated(id)

	o.logger.Debug("document ingested",
		"doc_id", id,
		"url", p.URL,
		"version", version,
		"terms", len(terms),
	)
	return id, version
}

// recomputeRelated scans every other document with a recorded term set and
// links any pair scoring at or above the threshold. Existing edges are left
// in place regardless of the new score. Caller holds the write lock.
func (o *Organizer) recomputeRelated(id string) {
	terms, ok := o.termSets[id]
	if !ok {
		return
	}
	for other, otherTerms := range o.termSets {
		if other == id {
			continue
		}
		if relation.Jaccard(terms, otherTerms) >= o.threshold {
			o.related.Link(id, other)
		}
	}
}

// RelatedDocuments returns current snapshots of every document related to
// docID. Unknown ids yield an empty list, not an error.
func (o *Organizer) RelatedDocuments(docID string) []document.Snapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()

	ids := o.related.Related(docID)
	snapshots := make([]document.Snapshot, 0, len(ids))
	for _, id := range ids {
		if doc, ok := o.documents[id]; ok {
			snapshots = append(snapshots, doc.Snapshot())
		}
	}
	return snapshots
}

// DocumentSnapshot returns a copy of the document's current state.
func (o *Organizer) DocumentSnapshot(docID string) (document.Snapshot, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	doc, ok := o.documents[docID]
	if !ok {
		return document.Snapshot{}, false
	}
	return doc.Snapshot(), true
}

// DocumentVersion returns a copy of version n of the document, 1-based.
func (o *Organizer) DocumentVersion(docID string, n int) (document.Version, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	doc, ok := o.documents[docID]
	if !ok {
		return document.Version{}, false
	}
	v, ok := doc.Version(n)
	if !ok {
		return document.Version{}, false
	}
	return copyVersion(v), true
}

// LatestVersion returns a copy of the document's most recent version.
func (o *Organizer) LatestVersion(docID string) (document.Version, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	doc, ok := o.documents[docID]
	if !ok {
		return document.Version{}, false
	}
	v, ok := doc.LatestVersion()
	if !ok {
		return document.Version{}, false
	}
	return copyVersion(v), true
}

// Search looks up the documents indexed under the query's first token and
// returns their current snapshots.
func (o *Organizer) Search(query string) []document.Snapshot {
	tokens := tokenizer.Tokenize(query)
	if len(tokens) == 0 {
		return []document.Snapshot{}
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	ids := o.search.Lookup(tokens[0])
	snapshots := make([]document.Snapshot, 0, len(ids))
	for _, id := range ids {
		if doc, ok := o.documents[id]; ok {
			snapshots = append(snapshots, doc.Snapshot())
		}
	}
	return snapshots
}

// Stats reports catalogue counters for health and metrics reporting.
func (o *Organizer) Stats() Stats {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return Stats{
		Documents: len(o.documents),
		Terms:     o.search.TermCount(),
		Relations: o.related.EdgeCount(),
	}
}

// extractTerms pulls the deduplicated, stopword-filtered term set from the
// document's title, body text, and headings.
func extractTerms(doc *document.Document) map[string]struct{} {
	fields := make([]string, 0, 2+len(doc.Content.Headings))
	fields = append(fields, doc.Title, doc.Content.Text)
	for _, h := range doc.Content.Headings {
		fields = append(fields, h.Text)
	}
	return tokenizer.ExtractTerms(fields...)
}

func copyVersion(v document.Version) document.Version {
	return document.Version{
		Content:   v.Content.Clone(),
		Timestamp: v.Timestamp,
		Number:    v.Number,
	}
}
