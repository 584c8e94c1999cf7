// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// SummaryHandler serves the overall and per-tag aggregation views.
type SummaryHandler struct {
	deps Dependencies
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps Dependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

// HandleGetSummary handles GET /summary requests. With zero selected
// records the response carries count 0 and null means; "no data" is the
// caller's rendering concern, not an error here.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	summary, err := h.deps.Overview(r.Context(), selection(r, h.deps))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSummaryResponse(summary))
}

// HandleGetSummaryByTag handles GET /summary/by-tag requests. The
// compare parameter fixes the row order; without it rows follow first
// appearance in the selected records. Tags matching nothing are absent
// from the table rather than reported as zero rows.
func (h *SummaryHandler) HandleGetSummaryByTag(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	order := splitParam(r.URL.Query().Get("compare"))
	table, err := h.deps.CompareByTag(r.Context(), selection(r, h.deps), order)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	out := make([]tagSummaryResponse, 0, len(table))
	for _, row := range table {
		out = append(out, toTagSummaryResponse(row))
	}
	writeJSON(w, http.StatusOK, out)
}
