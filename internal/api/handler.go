// Package api exposes the organizer over HTTP: payload ingestion, document
// and version snapshots, related-document queries, and single-term search.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/scrapedocs/organizer/internal/ingest"
	"github.com/scrapedocs/organizer/internal/organizer"
	"github.com/scrapedocs/organizer/internal/organizer/document"
	"github.com/scrapedocs/organizer/internal/querycache"
	apperrors "github.com/scrapedocs/organizer/pkg/errors"
	"github.com/scrapedocs/organizer/pkg/logger"
	"github.com/scrapedocs/organizer/pkg/metrics"
)

// Handler serves the organizer HTTP API.
type Handler struct {
	org      *organizer.Organizer
	cache    *querycache.Cache
	notifier *ingest.Notifier
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// IngestResponse is returned to the caller after a payload is catalogued.
type IngestResponse struct {
	DocumentID string `json:"document_id"`
	Version    int    `json:"version"`
}

// NewHandler wires the API against the organizer. cache, notifier, and m may
// be nil when the corresponding subsystem is disabled.
func NewHandler(org *organizer.Organizer, cache *querycache.Cache, notifier *ingest.Notifier, m *metrics.Metrics) *Handler {
	return &Handler{
		org:      org,
		cache:    cache,
		notifier: notifier,
		metrics:  m,
		logger:   slog.Default().With("component", "api-handler"),
	}
}

// Ingest accepts a scraped page payload. Only an undecodable body is
// rejected; missing url/title/content fields default to empty values and the
// payload is catalogued regardless.
func (h *Handler) Ingest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var payload document.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, apperrors.ErrInvalidInput, "invalid JSON body")
		return
	}

	docID, version := h.org.AddDocument(payload)
	h.cache.InvalidateAll(ctx)
	h.recordIngest()
	h.notifier.DocumentUpdated(ctx, docID, payload.URL, version)

	log.Info("document ingested",
		"doc_id", docID,
		"url", payload.URL,
		"version", version,
	)
	h.writeJSON(w, http.StatusAccepted, IngestResponse{
		DocumentID: docID,
		Version:    version,
	})
}

// GetDocument returns the current snapshot of a document.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	docID := r.PathValue("id")
	snapshot, ok := h.org.DocumentSnapshot(docID)
	if !ok {
		h.writeError(w, apperrors.ErrDocumentNotFound, "document not found")
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot)
}

// GetVersion returns one historical version of a document.
func (h *Handler) GetVersion(w http.ResponseWriter, r *http.Request) {
	docID := r.PathValue("id")
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil || n < 1 {
		h.writeError(w, apperrors.ErrInvalidInput, "version must be a positive integer")
		return
	}
	version, ok := h.org.DocumentVersion(docID, n)
	if !ok {
		h.writeError(w, apperrors.ErrVersionNotFound, "version not found")
		return
	}
	h.writeJSON(w, http.StatusOK, version)
}

// Related returns the current snapshots of every document related to the
// given id. Unknown ids yield an empty list with status 200.
func (h *Handler) Related(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	docID := r.PathValue("id")

	snapshots, cacheHit := h.cache.GetOrCompute(ctx, "related", docID, func() []document.Snapshot {
		return h.org.RelatedDocuments(docID)
	})
	h.recordQuery(cacheHit)

	logger.FromContext(ctx).Debug("related documents served",
		"doc_id", docID,
		"count", len(snapshots),
		"cache_hit", cacheHit,
	)
	h.writeJSON(w, http.StatusOK, snapshots)
}

// Search returns the documents indexed under the query term.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("q")
	if query == "" {
		h.writeError(w, apperrors.ErrInvalidInput, "query parameter 'q' is required")
		return
	}

	snapshots, cacheHit := h.cache.GetOrCompute(ctx, "search", query, func() []document.Snapshot {
		return h.org.Search(query)
	})
	h.recordQuery(cacheHit)

	logger.FromContext(ctx).Debug("search served",
		"query", query,
		"count", len(snapshots),
		"cache_hit", cacheHit,
	)
	h.writeJSON(w, http.StatusOK, snapshots)
}

func (h *Handler) recordIngest() {
	if h.metrics == nil {
		return
	}
	h.metrics.DocumentsIngested.WithLabelValues("http").Inc()
	h.metrics.VersionsAppended.Inc()
	stats := h.org.Stats()
	h.metrics.DocumentsTracked.Set(float64(stats.Documents))
	h.metrics.TermsIndexed.Set(float64(stats.Terms))
	h.metrics.RelationEdges.Set(float64(stats.Relations))
}

func (h *Handler) recordQuery(cacheHit bool) {
	if h.metrics == nil {
		return
	}
	switch {
	case h.cache == nil:
		h.metrics.RelatedQueriesTotal.WithLabelValues("bypass").Inc()
	case cacheHit:
		h.metrics.RelatedQueriesTotal.WithLabelValues("hit").Inc()
		h.metrics.CacheHitsTotal.Inc()
	default:
		h.metrics.RelatedQueriesTotal.WithLabelValues("miss").Inc()
		h.metrics.CacheMissesTotal.Inc()
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

// writeError reports an error response with the status mapped from the
// sentinel.
func (h *Handler) writeError(w http.ResponseWriter, sentinel error, message string) {
	h.writeJSON(w, apperrors.HTTPStatusCode(sentinel), map[string]string{"error": message})
}
