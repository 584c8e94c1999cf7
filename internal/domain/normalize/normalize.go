// Package normalize converts raw heterogeneous store rows into canonical
// records. Column names changed across sheet revisions, so every semantic
// field resolves through a prioritized alias list; numeric cells coerce
// best-effort and become missing on failure instead of aborting the batch.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/nobuchiyo/studylens/internal/domain/model"
)

// Field names the semantic fields a raw row may carry.
type Field string

// Semantic fields.
const (
	FieldDate         Field = "date"
	FieldStudentName  Field = "student_name"
	FieldDepartment   Field = "department"
	FieldScore        Field = "score"
	FieldStudyMinutes Field = "study_minutes"
	FieldStyleTags    Field = "style_tags"
)

// Aliases maps a semantic field to its accepted column names, highest
// priority first. The first alias present in a row wins.
type Aliases map[Field][]string

// DefaultAliases covers every column name the sheet has used so far.
func DefaultAliases() Aliases {
	return Aliases{
		FieldDate:         {"日付", "実施日", "date"},
		FieldStudentName:  {"名前", "個人の名前", "name"},
		FieldDepartment:   {"学科", "department"},
		FieldScore:        {"点数", "得点", "score"},
		FieldStudyMinutes: {"勉強時間", "かかった時間 (分)", "学習時間", "study_minutes"},
		FieldStyleTags:    {"授業スタイル", "スタイル", "styles"},
	}
}

// Date layouts accepted for the informational date column.
var dateLayouts = []string{"2006-01-02", "2006/01/02", time.RFC3339}

// Report summarizes one normalization pass.
type Report struct {
	Rows            int // rows processed
	MalformedFields int // numeric cells coerced to missing
}

// Option applies a configuration option to the Normalizer.
type Option func(*Normalizer)

// WithAliases merges extra aliases into the defaults. Extra names are
// appended after the defaults so historical names keep priority.
func WithAliases(extra Aliases) Option {
	return func(n *Normalizer) {
		for field, names := range extra {
			n.aliases[field] = append(n.aliases[field], names...)
		}
	}
}

// Normalizer converts raw rows into records.
type Normalizer struct {
	aliases Aliases
}

// New creates a Normalizer with configuration options.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		aliases: DefaultAliases(),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Normalize converts every raw row into a record. It is total over its
// input: a malformed cell becomes a missing field on that record and the
// rest of the batch is unaffected.
func (n *Normalizer) Normalize(rows []model.RawRow) ([]model.Record, Report) {
	records := make([]model.Record, 0, len(rows))
	report := Report{Rows: len(rows)}

	for _, row := range rows {
		rec := model.Record{
			Date:        n.date(row),
			StudentName: strings.TrimSpace(n.text(row, FieldStudentName)),
			Department:  strings.TrimSpace(n.text(row, FieldDepartment)),
			StyleTags:   model.ParseTags(n.text(row, FieldStyleTags)),
		}
		rec.Score = n.number(row, FieldScore, &report)
		rec.StudyMinutes = n.number(row, FieldStudyMinutes, &report)
		records = append(records, rec)
	}

	return records, report
}

// resolve returns the first aliased cell present in the row.
func (n *Normalizer) resolve(row model.RawRow, field Field) (any, bool) {
	for _, name := range n.aliases[field] {
		if v, ok := row[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (n *Normalizer) text(row model.RawRow, field Field) string {
	v, ok := n.resolve(row, field)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// number coerces a cell to float64. Absent, unparseable or negative
// values become the missing marker; only actual malformation (present
// but unusable) counts toward the report.
func (n *Normalizer) number(row model.RawRow, field Field, report *Report) float64 {
	v, ok := n.resolve(row, field)
	if !ok {
		return model.Missing()
	}
	// An empty cell is absent, not malformed.
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return model.Missing()
	}

	f, ok := coerceFloat(v)
	if !ok || f < 0 {
		report.MalformedFields++
		return model.Missing()
	}
	return f
}

func coerceFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case int32:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// date parses the informational date column; failures yield a zero time
// and are not counted as malformed since no aggregation depends on it.
func (n *Normalizer) date(row model.RawRow) time.Time {
	v, ok := n.resolve(row, FieldDate)
	if !ok {
		return time.Time{}
	}
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
