// Package stats computes summary statistics over record sets, overall
// and sliced by style tag.
package stats

import (
	"github.com/nobuchiyo/studylens/internal/domain/model"
	"github.com/nobuchiyo/studylens/internal/domain/tags"
)

// Summary holds overall statistics for a record set. Means are taken
// over records whose field is present; with zero present values the
// mean is undefined and carries the missing marker, never 0.
type Summary struct {
	Count            int
	MeanScore        float64
	MeanStudyMinutes float64
}

// TagSummary holds statistics for the records carrying one style tag.
type TagSummary struct {
	Tag              string
	Count            int
	MeanScore        float64
	MeanStudyMinutes float64
	MeanEfficiency   float64
}

// Efficiency is the score achieved per minute of study time. At zero
// study time the denominator substitutes to 1 rather than dividing by
// zero; this keeps zero-time records in the aggregate at the cost of
// understating their true efficiency, and the substitution is part of
// the numeric contract. A missing input propagates.
func Efficiency(score, studyMinutes float64) float64 {
	if model.IsMissing(score) || model.IsMissing(studyMinutes) {
		return model.Missing()
	}
	if studyMinutes <= 0 {
		studyMinutes = 1
	}
	return score / studyMinutes
}

// Summarize computes overall statistics. Count covers every record in
// the input regardless of missing fields.
func Summarize(records []model.Record) Summary {
	var scoreSum, minutesSum float64
	var scoreN, minutesN int
	for _, rec := range records {
		if rec.HasScore() {
			scoreSum += rec.Score
			scoreN++
		}
		if rec.HasStudyMinutes() {
			minutesSum += rec.StudyMinutes
			minutesN++
		}
	}
	return Summary{
		Count:            len(records),
		MeanScore:        mean(scoreSum, scoreN),
		MeanStudyMinutes: mean(minutesSum, minutesN),
	}
}

// SummarizeByTag computes per-tag statistics over the records carrying
// each tag (exact membership). Tags with zero matching records are
// omitted. The caller-supplied order is preserved; a nil order defaults
// to first appearance in records.
func SummarizeByTag(records []model.Record, order []string) []TagSummary {
	if order == nil {
		order = tags.Distinct(records)
	}

	out := make([]TagSummary, 0, len(order))
	for _, tag := range order {
		var matched []model.Record
		for _, rec := range records {
			if rec.StyleTags.Has(tag) {
				matched = append(matched, rec)
			}
		}
		if len(matched) == 0 {
			continue
		}

		overall := Summarize(matched)
		out = append(out, TagSummary{
			Tag:              tag,
			Count:            overall.Count,
			MeanScore:        overall.MeanScore,
			MeanStudyMinutes: overall.MeanStudyMinutes,
			MeanEfficiency:   meanEfficiency(matched),
		})
	}
	return out
}

// meanEfficiency averages per-record efficiency over records with both
// fields present.
func meanEfficiency(records []model.Record) float64 {
	var sum float64
	var n int
	for _, rec := range records {
		e := Efficiency(rec.Score, rec.StudyMinutes)
		if model.IsMissing(e) {
			continue
		}
		sum += e
		n++
	}
	return mean(sum, n)
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return model.Missing()
	}
	return sum / float64(n)
}
