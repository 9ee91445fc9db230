package ingest

import (
	"context"
	"log/slog"

	"github.com/scrapedocs/organizer/internal/organizer"
	"github.com/scrapedocs/organizer/internal/organizer/document"
	"github.com/scrapedocs/organizer/internal/querycache"
	"github.com/scrapedocs/organizer/pkg/kafka"
	"github.com/scrapedocs/organizer/pkg/metrics"
)

// HandleMessage returns a Kafka MessageHandler that catalogues every page
// payload arriving on the ingest topic. Malformed messages are logged and
// skipped so one bad payload cannot stall the partition; the organizer
// itself accepts any decodable payload.
func HandleMessage(org *organizer.Organizer, cache *querycache.Cache, notifier *Notifier, m *metrics.Metrics) kafka.MessageHandler {
	logger := slog.Default().With("component", "page-consumer")
	return func(ctx context.Context, key []byte, value []byte) error {
		payload, err := kafka.DecodeJSON[document.Payload](value)
		if err != nil {
			logger.Error("failed to decode page payload",
				"error", err,
				"key", string(key),
			)
			return nil
		}

		docID, version := org.AddDocument(payload)
		cache.InvalidateAll(ctx)
		if m != nil {
			m.DocumentsIngested.WithLabelValues("kafka").Inc()
			m.VersionsAppended.Inc()
			stats := org.Stats()
			m.DocumentsTracked.Set(float64(stats.Documents))
			m.TermsIndexed.Set(float64(stats.Terms))
			m.RelationEdges.Set(float64(stats.Relations))
		}
		notifier.DocumentUpdated(ctx, docID, payload.URL, version)

		logger.Info("page catalogued",
			"doc_id", docID,
			"url", payload.URL,
			"version", version,
		)
		return nil
	}
}
