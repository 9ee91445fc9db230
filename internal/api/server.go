package api

import (
	"net/http"
	"time"

	"github.com/scrapedocs/organizer/pkg/health"
	"github.com/scrapedocs/organizer/pkg/metrics"
	"github.com/scrapedocs/organizer/pkg/middleware"
)

// NewRouter builds the full HTTP handler with all routes and middleware.
//
// Route table:
//
//	POST /api/v1/documents                     → ingest a scraped page payload
//	GET  /api/v1/documents/{id}                → current document snapshot
//	GET  /api/v1/documents/{id}/versions/{n}   → historical version
//	GET  /api/v1/documents/{id}/related        → related documents
//	GET  /api/v1/search                        → single-term search
//	GET  /health                               → liveness
//	GET  /ready                                → readiness report
//
// Middleware chain (outermost first): RequestID → Metrics → Timeout.
func NewRouter(h *Handler, checker *health.Checker, m *metrics.Metrics, requestTimeout time.Duration) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/documents", h.Ingest)
	mux.HandleFunc("GET /api/v1/documents/{id}", h.GetDocument)
	mux.HandleFunc("GET /api/v1/documents/{id}/versions/{n}", h.GetVersion)
	mux.HandleFunc("GET /api/v1/documents/{id}/related", h.Related)
	mux.HandleFunc("GET /api/v1/search", h.Search)

	mux.HandleFunc("GET /health", checker.LiveHandler())
	mux.HandleFunc("GET /ready", checker.ReadyHandler())

	var chain http.Handler = mux
	if requestTimeout > 0 {
		chain = middleware.Timeout(requestTimeout)(chain)
	}
	if m != nil {
		chain = middleware.Metrics(m)(chain)
	}
	chain = middleware.RequestID(chain)
	return chain
}
