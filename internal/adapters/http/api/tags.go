// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// TagsHandler serves the distinct style-tag universe.
type TagsHandler struct {
	deps Dependencies
}

// NewTagsHandler creates a new tags handler.
func NewTagsHandler(deps Dependencies) *TagsHandler {
	return &TagsHandler{deps: deps}
}

// HandleGetTags handles GET /tags requests. The universe always comes
// from the full, unfiltered record set so filter widgets never hide a
// tag that some other filter currently reduces to zero matches.
func (h *TagsHandler) HandleGetTags(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	universe, err := h.deps.DistinctTags(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if universe == nil {
		universe = []string{}
	}
	writeJSON(w, http.StatusOK, universe)
}
