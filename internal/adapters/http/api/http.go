// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nobuchiyo/studylens/internal/domain/filter"
	"github.com/nobuchiyo/studylens/internal/domain/model"
	"github.com/nobuchiyo/studylens/internal/domain/stats"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Configuration exposed to the entry surface.
	Departments() []string
	StyleVocabulary() []string

	// Analysis operations; each performs a full reload.
	Records(ctx context.Context, sel filter.Selection) ([]model.Record, error)
	Overview(ctx context.Context, sel filter.Selection) (stats.Summary, error)
	CompareByTag(ctx context.Context, sel filter.Selection, order []string) ([]stats.TagSummary, error)
	DistinctTags(ctx context.Context) ([]string, error)

	// Submission.
	Submit(ctx context.Context, rec model.Record) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	recordsHandler *RecordsHandler
	summaryHandler *SummaryHandler
	tagsHandler    *TagsHandler
	metaHandler    *MetaHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		recordsHandler: NewRecordsHandler(deps),
		summaryHandler: NewSummaryHandler(deps),
		tagsHandler:    NewTagsHandler(deps),
		metaHandler:    NewMetaHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/meta", MetricsMiddleware(s.metaHandler.HandleGetMeta, "meta"))
	mux.HandleFunc("/tags", MetricsMiddleware(s.tagsHandler.HandleGetTags, "tags"))
	mux.HandleFunc("/records", MetricsMiddleware(s.recordsHandler.HandleRecords, "records"))
	mux.HandleFunc("/summary", MetricsMiddleware(s.summaryHandler.HandleGetSummary, "summary"))
	mux.HandleFunc("/summary/by-tag", MetricsMiddleware(s.summaryHandler.HandleGetSummaryByTag, "summary_by_tag"))
}

// selection builds a filter selection from query parameters. An absent
// departments parameter means "all known departments"; a present but
// empty one is an explicit empty selection and matches nothing.
func selection(r *http.Request, deps Dependencies) filter.Selection {
	q := r.URL.Query()
	sel := filter.Selection{
		Departments: deps.Departments(),
		Tags:        splitParam(q.Get("tags")),
	}
	if q.Has("departments") {
		sel.Departments = splitParam(q.Get("departments"))
	}
	return sel
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	pieces := strings.Split(raw, ",")
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// maybe converts a domain numeric to its JSON form: an undefined or
// missing value renders as null, never as 0.
func maybe(v float64) *float64 {
	if model.IsMissing(v) {
		return nil
	}
	return &v
}

type summaryResponse struct {
	Count            int      `json:"count"`
	MeanScore        *float64 `json:"mean_score"`
	MeanStudyMinutes *float64 `json:"mean_study_minutes"`
}

func toSummaryResponse(s stats.Summary) summaryResponse {
	return summaryResponse{
		Count:            s.Count,
		MeanScore:        maybe(s.MeanScore),
		MeanStudyMinutes: maybe(s.MeanStudyMinutes),
	}
}

type tagSummaryResponse struct {
	Tag              string   `json:"tag"`
	Count            int      `json:"count"`
	MeanScore        *float64 `json:"mean_score"`
	MeanStudyMinutes *float64 `json:"mean_study_minutes"`
	MeanEfficiency   *float64 `json:"mean_efficiency"`
}

func toTagSummaryResponse(s stats.TagSummary) tagSummaryResponse {
	return tagSummaryResponse{
		Tag:              s.Tag,
		Count:            s.Count,
		MeanScore:        maybe(s.MeanScore),
		MeanStudyMinutes: maybe(s.MeanStudyMinutes),
		MeanEfficiency:   maybe(s.MeanEfficiency),
	}
}

type recordResponse struct {
	Date         string   `json:"date,omitempty"`
	StudentName  string   `json:"student_name"`
	Department   string   `json:"department"`
	Score        *float64 `json:"score"`
	StudyMinutes *float64 `json:"study_minutes"`
	StyleTags    []string `json:"style_tags"`
}

func toRecordResponse(rec model.Record) recordResponse {
	date := ""
	if !rec.Date.IsZero() {
		date = rec.Date.Format("2006-01-02")
	}
	tags := []string(rec.StyleTags)
	if tags == nil {
		tags = []string{}
	}
	return recordResponse{
		Date:         date,
		StudentName:  rec.StudentName,
		Department:   rec.Department,
		Score:        maybe(rec.Score),
		StudyMinutes: maybe(rec.StudyMinutes),
		StyleTags:    tags,
	}
}

type ackResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
