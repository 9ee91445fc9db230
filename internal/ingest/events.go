// Package ingest connects the organizer to Kafka: it consumes scraped page
// payloads from the ingest topic and publishes document-updated events for
// downstream consumers such as the GUI.
package ingest

import "time"

// UpdateEvent is published after a payload has been catalogued.
type UpdateEvent struct {
	DocumentID string    `json:"document_id"`
	URL        string    `json:"url"`
	Version    int       `json:"version"`
	IngestedAt time.Time `json:"ingested_at"`
}
