// Package tags derives the universe of distinct style tags in a record set.
package tags

import (
	"github.com/nobuchiyo/studylens/internal/domain/model"
)

// Distinct returns every tag present across records, each once, in
// order of first appearance. Callers populating filter options must
// pass the unfiltered record set so no currently-zero-match tag is
// hidden by an earlier filter pass.
func Distinct(records []model.Record) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, rec := range records {
		for _, tag := range rec.StyleTags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	return out
}
