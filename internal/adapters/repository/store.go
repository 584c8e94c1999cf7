// Package repository defines the record store port and its errors. The
// store is append-only from the engine's point of view: full reloads
// and single-record appends, never updates or deletes.
package repository

import (
	"context"
	"strconv"

	"github.com/nobuchiyo/studylens/internal/domain/model"
)

// Canonical column headers in the fixed append order
// [date, name, department, score, studyMinutes, tagString].
var Columns = []string{"日付", "名前", "学科", "点数", "勉強時間", "授業スタイル"}

// Store provides read/append access to the external record store.
type Store interface {
	// Load returns the complete current record set as raw rows. A store
	// with no rows yet returns an empty slice, not an error. Fails with
	// ErrStoreUnavailable when the store cannot be reached; there is no
	// partial-row delivery.
	Load(ctx context.Context) ([]model.RawRow, error)

	// Append adds one record in the fixed column order. Fails with
	// ErrStoreUnavailable or ErrStoreRejected; failures surface to the
	// caller rather than being swallowed or retried here.
	Append(ctx context.Context, rec model.Record) error
}

// Cells serializes a record to the fixed column order. This is the only
// point where the tag set re-joins to the comma-separated wire form.
func Cells(rec model.Record) []any {
	date := ""
	if !rec.Date.IsZero() {
		date = rec.Date.Format("2006-01-02")
	}
	return []any{
		date,
		rec.StudentName,
		rec.Department,
		numberCell(rec.Score),
		numberCell(rec.StudyMinutes),
		rec.StyleTags.Join(),
	}
}

// numberCell renders a numeric field; missing values become empty cells.
func numberCell(v float64) any {
	if model.IsMissing(v) {
		return ""
	}
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
