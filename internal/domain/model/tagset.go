package model

import "strings"

// TagSet holds a record's style tags. Semantically a set: no element is
// empty or whitespace-only and no element repeats. The slice keeps the
// order tags first appeared in so derived listings stay deterministic;
// that order carries no meaning of its own.
type TagSet []string

// ParseTags splits a comma-joined tag string into a TagSet. Each piece
// is trimmed, empty pieces are dropped and duplicates collapse to one.
func ParseTags(raw string) TagSet {
	if raw == "" {
		return nil
	}
	pieces := strings.Split(raw, ",")
	tags := make(TagSet, 0, len(pieces))
	seen := make(map[string]struct{}, len(pieces))
	for _, p := range pieces {
		tag := strings.TrimSpace(p)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// Has reports whether the set contains tag exactly.
func (s TagSet) Has(tag string) bool {
	for _, t := range s {
		if t == tag {
			return true
		}
	}
	return false
}

// Intersects reports whether the set shares at least one tag with other.
func (s TagSet) Intersects(other []string) bool {
	for _, t := range other {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// Join serializes the set back to the comma-joined wire form. Only the
// store-append boundary should need this.
func (s TagSet) Join() string {
	return strings.Join(s, ",")
}
