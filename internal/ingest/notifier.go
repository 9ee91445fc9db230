package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/scrapedocs/organizer/pkg/kafka"
)

// Notifier publishes UpdateEvents to the document-updates topic. A nil
// *Notifier is valid and publishes nothing, so callers need no wiring checks.
type Notifier struct {
	producer *kafka.Producer
	logger   *slog.Logger
}

// NewNotifier wraps a Kafka producer for the updates topic.
func NewNotifier(producer *kafka.Producer) *Notifier {
	return &Notifier{
		producer: producer,
		logger:   slog.Default().With("component", "update-notifier"),
	}
}

// DocumentUpdated publishes an update event keyed by document id. Publish
// failures are logged, never propagated: ingestion has already succeeded.
func (n *Notifier) DocumentUpdated(ctx context.Context, docID, url string, version int) {
	if n == nil {
		return
	}
	event := kafka.Event{
		Key: docID,
		Value: UpdateEvent{
			DocumentID: docID,
			URL:        url,
			Version:    version,
			IngestedAt: time.Now().UTC(),
		},
	}
	if err := n.producer.Publish(ctx, event); err != nil {
		n.logger.Error("failed to publish update event",
			"doc_id", docID,
			"error", err,
		)
	}
}
