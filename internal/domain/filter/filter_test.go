package filter_test

import (
	"testing"

	filter "github.com/nobuchiyo/studylens/internal/domain/filter"
	model "github.com/nobuchiyo/studylens/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func records() []model.Record {
	return []model.Record{
		{StudentName: "A", Department: "Dept1", StyleTags: model.TagSet{"A", "B"}},
		{StudentName: "B", Department: "Dept1", StyleTags: model.TagSet{"C"}},
		{StudentName: "C", Department: "Dept2", StyleTags: model.TagSet{"B"}},
		{StudentName: "D", Department: "Dept3", StyleTags: nil},
	}
}

func TestApply(t *testing.T) {
	Convey("Given a small record set", t, func() {
		recs := records()

		Convey("When the department selection is empty", func() {
			got := filter.Apply(recs, filter.Selection{})

			Convey("Then nothing passes", func() {
				So(got, ShouldBeEmpty)
			})
		})

		Convey("When only departments are selected", func() {
			got := filter.Apply(recs, filter.Selection{Departments: []string{"Dept1", "Dept3"}})

			Convey("Then the tag predicate is a no-op", func() {
				So(got, ShouldHaveLength, 3)
				So(got[0].StudentName, ShouldEqual, "A")
				So(got[2].StudentName, ShouldEqual, "D")
			})
		})

		Convey("When tags are selected too", func() {
			sel := filter.Selection{
				Departments: []string{"Dept1", "Dept2", "Dept3"},
				Tags:        []string{"B", "C"},
			}
			got := filter.Apply(recs, sel)

			Convey("Then a record passes when any of its tags is selected", func() {
				So(got, ShouldHaveLength, 3)
				So(got[0].StudentName, ShouldEqual, "A") // {A,B} ∩ {B,C}
				So(got[1].StudentName, ShouldEqual, "B")
				So(got[2].StudentName, ShouldEqual, "C")
			})

			Convey("And a record with no overlapping tag is excluded", func() {
				none := filter.Apply(recs, filter.Selection{
					Departments: []string{"Dept1"},
					Tags:        []string{"C", "D"},
				})
				So(none, ShouldHaveLength, 1)
				So(none[0].StudentName, ShouldEqual, "B")
			})
		})

		Convey("When both predicates are active they conjoin", func() {
			got := filter.Apply(recs, filter.Selection{
				Departments: []string{"Dept2"},
				Tags:        []string{"A", "B"},
			})

			Convey("Then only records passing both remain", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].StudentName, ShouldEqual, "C")
			})
		})

		Convey("When the selected tag is a prefix of a record's tag", func() {
			recs := []model.Record{
				{StudentName: "X", Department: "Dept1", StyleTags: model.TagSet{"実習あり"}},
			}
			got := filter.Apply(recs, filter.Selection{
				Departments: []string{"Dept1"},
				Tags:        []string{"実習"},
			})

			Convey("Then it does not match; equality is exact", func() {
				So(got, ShouldBeEmpty)
			})
		})
	})
}
