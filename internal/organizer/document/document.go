// Package document defines the versioned page entity owned by the organizer,
// together with the ingestion payload and the copy-out snapshot shapes shared
// with the HTTP and Kafka surfaces.
package document

import "time"

// Payload is the unit of input produced by the scraper collaborator. Missing
// fields decode to zero values; ingestion never rejects a payload over them.
type Payload struct {
	URL     string  `json:"url"`
	Title   string  `json:"title"`
	Content Content `json:"content"`
}

// Snapshot is the read-only view handed to callers. It never aliases the
// organizer's internal state.
type Snapshot struct {
	URL     string  `json:"url"`
	Title   string  `json:"title"`
	Content Content `json:"content"`
}

// Version is one immutable content snapshot. Numbers start at 1 and grow by
// exactly one per append.
type Version struct {
	Content   Content   `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Number    int       `json:"version_number"`
}

// Document is an append-only container of page versions. Identity is an
// opaque id minted by the organizer; URL is the deduplication key. Content
// always equals the content of the most recently appended version.
type Document struct {
	ID       string
	URL      string
	Title    string
	Content  Content
	Versions []Version
}

// New builds a Document from an ingestion payload and records version 1.
func New(id string, p Payload) *Document {
	d := &Document{
		ID:    id,
		URL:   p.URL,
		Title: p.Title,
	}
	d.AddVersion(p.Content)
	return d
}

// AddVersion copies content, appends it as the next version, promotes the
// copy to the current content, and returns the new version number.
func (d *Document) AddVersion(content Content) int {
	cp := content.Clone()
	v := Version{
		Content:   cp,
		Timestamp: time.Now().UTC(),
		Number:    len(d.Versions) + 1,
	}
	d.Versions = append(d.Versions, v)
	d.Content = cp
	return v.Number
}

// Version returns the 1-based version n. The second return value is false
// when n is outside [1, len(Versions)].
func (d *Document) Version(n int) (Version, bool) {
	if n < 1 || n > len(d.Versions) {
		return Version{}, false
	}
	return d.Versions[n-1], true
}

// LatestVersion returns the most recently appended version.
func (d *Document) LatestVersion() (Version, bool) {
	if len(d.Versions) == 0 {
		return Version{}, false
	}
	return d.Versions[len(d.Versions)-1], true
}

// Snapshot returns a deep copy of the document's current state.
func (d *Document) Snapshot() Snapshot {
	return Snapshot{
		URL:     d.URL,
		Title:   d.Title,
		Content: d.Content.Clone(),
	}
}
