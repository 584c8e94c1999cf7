package tags_test

import (
	"testing"

	model "github.com/nobuchiyo/studylens/internal/domain/model"
	tags "github.com/nobuchiyo/studylens/internal/domain/tags"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDistinct(t *testing.T) {
	Convey("Given a record set with overlapping tags", t, func() {
		records := []model.Record{
			{StyleTags: model.TagSet{"lecture", "group"}},
			{StyleTags: model.TagSet{"group", "homework"}},
			{StyleTags: nil},
			{StyleTags: model.TagSet{"lecture"}},
		}

		Convey("When deriving the distinct tag universe", func() {
			got := tags.Distinct(records)

			Convey("Then each tag appears once, in first-appearance order", func() {
				So(got, ShouldResemble, []string{"lecture", "group", "homework"})
			})
		})
	})

	Convey("Given an empty record set", t, func() {
		Convey("When deriving the distinct tag universe", func() {
			got := tags.Distinct(nil)

			Convey("Then the result is empty", func() {
				So(got, ShouldBeEmpty)
			})
		})
	})
}
