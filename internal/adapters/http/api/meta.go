// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// MetaHandler serves the configured choices the entry surface offers:
// department list and default style checklist. Both are configuration,
// not data, so no reload is involved.
type MetaHandler struct {
	deps Dependencies
}

// NewMetaHandler creates a new meta handler.
func NewMetaHandler(deps Dependencies) *MetaHandler {
	return &MetaHandler{deps: deps}
}

type metaResponse struct {
	Departments     []string `json:"departments"`
	StyleVocabulary []string `json:"style_vocabulary"`
}

// HandleGetMeta handles GET /meta requests.
func (h *MetaHandler) HandleGetMeta(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, metaResponse{
		Departments:     h.deps.Departments(),
		StyleVocabulary: h.deps.StyleVocabulary(),
	})
}
