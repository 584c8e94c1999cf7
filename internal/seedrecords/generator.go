// Package seedrecords generates and submits sample study records
// against a running service, for demos and manual testing.
package seedrecords

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Generation ranges for plausible sample data.
const (
	scoreMin   = 40
	scoreRange = 60
	minutesMin = 10
	minutesMax = 120
)

var sampleNames = []string{"田中", "鈴木", "佐藤", "高橋", "伊藤", "渡辺"}

var sampleDepartments = []string{"情報処理科", "Webデザイン科", "電気工学科"}

var sampleStyles = []string{"教科書中心", "スライド利用", "実習あり", "グループワーク", "課題提出あり"}

// Record is one generated submission in the API's wire shape.
type Record struct {
	Date         string   `json:"date"`
	StudentName  string   `json:"student_name"`
	Department   string   `json:"department"`
	Score        float64  `json:"score"`
	StudyMinutes float64  `json:"study_minutes"`
	StyleTags    []string `json:"style_tags"`
}

// Generate produces n sample records spread over the past weeks.
func Generate(n int) []Record {
	rng := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // sample data only
	out := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		styleCount := 1 + rng.Intn(3)
		styles := make([]string, 0, styleCount)
		for _, j := range rng.Perm(len(sampleStyles))[:styleCount] {
			styles = append(styles, sampleStyles[j])
		}

		date := time.Now().AddDate(0, 0, -rng.Intn(28))
		out = append(out, Record{
			Date:         date.Format("2006-01-02"),
			StudentName:  sampleNames[rng.Intn(len(sampleNames))] + "-" + uuid.New().String()[:8],
			Department:   sampleDepartments[rng.Intn(len(sampleDepartments))],
			Score:        float64(scoreMin + rng.Intn(scoreRange+1)),
			StudyMinutes: float64(minutesMin + rng.Intn(minutesMax-minutesMin+1)),
			StyleTags:    styles,
		})
	}
	return out
}
