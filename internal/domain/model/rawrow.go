package model

// RawRow is one untyped row as delivered by the record store: column
// name to cell value. Column names and value types vary across sheet
// revisions; the normalizer resolves both.
type RawRow map[string]any
