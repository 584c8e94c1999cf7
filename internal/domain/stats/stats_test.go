package stats_test

import (
	"testing"

	model "github.com/nobuchiyo/studylens/internal/domain/model"
	stats "github.com/nobuchiyo/studylens/internal/domain/stats"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEfficiency(t *testing.T) {
	Convey("Given the efficiency calculator", t, func() {
		Convey("When study time is positive", func() {
			So(stats.Efficiency(80, 40), ShouldEqual, 2.0)
			So(stats.Efficiency(0, 30), ShouldEqual, 0)
		})

		Convey("When study time is zero", func() {
			Convey("Then the denominator substitutes to 1", func() {
				So(stats.Efficiency(80, 0), ShouldEqual, 80)
				So(stats.Efficiency(0, 0), ShouldEqual, 0)
			})
		})

		Convey("When either input is missing", func() {
			Convey("Then missing propagates", func() {
				So(model.IsMissing(stats.Efficiency(model.Missing(), 40)), ShouldBeTrue)
				So(model.IsMissing(stats.Efficiency(80, model.Missing())), ShouldBeTrue)
			})
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Given the overall aggregator", t, func() {
		Convey("When summarizing an empty record set", func() {
			s := stats.Summarize(nil)

			Convey("Then count is zero and means are undefined, not zero", func() {
				So(s.Count, ShouldEqual, 0)
				So(model.IsMissing(s.MeanScore), ShouldBeTrue)
				So(model.IsMissing(s.MeanStudyMinutes), ShouldBeTrue)
			})
		})

		Convey("When summarizing records with missing fields", func() {
			s := stats.Summarize([]model.Record{
				{Score: 90, StudyMinutes: 30},
				{Score: 70, StudyMinutes: model.Missing()},
				{Score: model.Missing(), StudyMinutes: 60},
			})

			Convey("Then count covers every record", func() {
				So(s.Count, ShouldEqual, 3)
			})

			Convey("And means run over present values only", func() {
				So(s.MeanScore, ShouldEqual, 80)
				So(s.MeanStudyMinutes, ShouldEqual, 45)
			})
		})

		Convey("When no record has a present score", func() {
			s := stats.Summarize([]model.Record{
				{Score: model.Missing(), StudyMinutes: 10},
			})

			Convey("Then the score mean is undefined while the other is not", func() {
				So(model.IsMissing(s.MeanScore), ShouldBeTrue)
				So(s.MeanStudyMinutes, ShouldEqual, 10)
			})
		})
	})
}

func TestSummarizeByTag(t *testing.T) {
	Convey("Given the per-tag aggregator", t, func() {
		records := []model.Record{
			{Score: 90, StudyMinutes: 30, StyleTags: model.TagSet{"lecture", "group"}},
			{Score: 70, StudyMinutes: 60, StyleTags: model.TagSet{"group"}},
		}

		Convey("When a requested tag has zero matches", func() {
			got := stats.SummarizeByTag(records, []string{"lecture", "group", "unused"})

			Convey("Then it is omitted rather than reported as a zero row", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].Tag, ShouldEqual, "lecture")
				So(got[1].Tag, ShouldEqual, "group")
			})
		})

		Convey("When summarizing the group tag", func() {
			got := stats.SummarizeByTag(records, []string{"group"})

			Convey("Then membership is exact and statistics follow", func() {
				So(got, ShouldHaveLength, 1)
				g := got[0]
				So(g.Count, ShouldEqual, 2)
				So(g.MeanScore, ShouldEqual, 80)
				So(g.MeanStudyMinutes, ShouldEqual, 45)
				// (90/30 + 70/60) / 2
				So(g.MeanEfficiency, ShouldAlmostEqual, 2.0833333, 0.0001)
			})
		})

		Convey("When no order is supplied", func() {
			got := stats.SummarizeByTag(records, nil)

			Convey("Then tags appear in first-appearance order", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].Tag, ShouldEqual, "lecture")
				So(got[1].Tag, ShouldEqual, "group")
			})
		})

		Convey("When the caller supplies an explicit order", func() {
			got := stats.SummarizeByTag(records, []string{"group", "lecture"})

			Convey("Then that order is preserved", func() {
				So(got[0].Tag, ShouldEqual, "group")
				So(got[1].Tag, ShouldEqual, "lecture")
			})
		})

		Convey("When a matching record lacks one numeric field", func() {
			withMissing := append(records, model.Record{
				Score: model.Missing(), StudyMinutes: 15, StyleTags: model.TagSet{"group"},
			})
			got := stats.SummarizeByTag(withMissing, []string{"group"})

			Convey("Then efficiency averages only records with both fields", func() {
				So(got[0].Count, ShouldEqual, 3)
				So(got[0].MeanEfficiency, ShouldAlmostEqual, 2.0833333, 0.0001)
			})
		})

		Convey("When a tag is tagged on records via substring-looking names", func() {
			recs := []model.Record{
				{Score: 50, StudyMinutes: 10, StyleTags: model.TagSet{"実習あり"}},
			}
			got := stats.SummarizeByTag(recs, []string{"実習"})

			Convey("Then the shorter tag matches nothing", func() {
				So(got, ShouldBeEmpty)
			})
		})
	})
}
