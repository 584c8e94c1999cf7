// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/nobuchiyo/studylens/internal/domain/model"
)

// RecordsHandler handles record listing and submission.
type RecordsHandler struct {
	deps Dependencies
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(deps Dependencies) *RecordsHandler {
	return &RecordsHandler{deps: deps}
}

// recordRequest mirrors the submission form: one observation with the
// styles used. Tags arrive as a list; joining to the stored string form
// happens at the store boundary, not here.
type recordRequest struct {
	Date         string   `json:"date"`
	StudentName  string   `json:"student_name"`
	Department   string   `json:"department"`
	Score        *float64 `json:"score"`
	StudyMinutes *float64 `json:"study_minutes"`
	StyleTags    []string `json:"style_tags"`
}

func (r recordRequest) validate() error {
	switch {
	case strings.TrimSpace(r.StudentName) == "":
		return errors.New("missing student_name")
	case strings.TrimSpace(r.Department) == "":
		return errors.New("missing department")
	}
	if r.Score != nil && (*r.Score < 0 || *r.Score > 100) {
		return errors.New("score must be within [0, 100]")
	}
	if r.StudyMinutes != nil && *r.StudyMinutes < 0 {
		return errors.New("study_minutes must not be negative")
	}
	if r.Date != "" {
		if _, err := time.Parse("2006-01-02", r.Date); err != nil {
			return errors.New("invalid date; must be YYYY-MM-DD")
		}
	}
	return nil
}

func (r recordRequest) toRecord() model.Record {
	rec := model.Record{
		StudentName:  strings.TrimSpace(r.StudentName),
		Department:   strings.TrimSpace(r.Department),
		Score:        model.Missing(),
		StudyMinutes: model.Missing(),
		StyleTags:    model.ParseTags(strings.Join(r.StyleTags, ",")),
	}
	if r.Date != "" {
		rec.Date, _ = time.Parse("2006-01-02", r.Date)
	}
	if r.Score != nil {
		rec.Score = *r.Score
	}
	if r.StudyMinutes != nil {
		rec.StudyMinutes = *r.StudyMinutes
	}
	return rec
}

// HandleRecords handles GET and POST /records requests.
func (h *RecordsHandler) HandleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleSubmit(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *RecordsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.deps.Records(r.Context(), selection(r, h.deps))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	out := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *RecordsHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_record"
	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	if err := h.deps.Submit(r.Context(), req.toRecord()); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ackResponse{Status: "created"})
}
