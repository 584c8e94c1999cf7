// Package filter selects records by department and style tag membership.
package filter

import (
	"github.com/nobuchiyo/studylens/internal/domain/model"
)

// Selection is a user-chosen filter. Departments and Tags come from
// multi-selections, so an empty Departments list means nothing is
// selected and nothing passes; callers wanting "all departments" pass
// the full known set. An empty Tags list deactivates the tag predicate.
type Selection struct {
	Departments []string
	Tags        []string
}

// Apply returns the records passing both predicates. The department
// predicate requires exact membership in Departments. The tag predicate,
// when active, requires the record's tag set to intersect Tags: exact
// tag equality after parsing, never substring containment on the joined
// string (a record tagged 実習あり must not match a selection of 実習).
func Apply(records []model.Record, sel Selection) []model.Record {
	if len(sel.Departments) == 0 {
		return nil
	}

	departments := make(map[string]struct{}, len(sel.Departments))
	for _, d := range sel.Departments {
		departments[d] = struct{}{}
	}

	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if _, ok := departments[rec.Department]; !ok {
			continue
		}
		if len(sel.Tags) > 0 && !rec.StyleTags.Intersects(sel.Tags) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
