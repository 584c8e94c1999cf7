package repository_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	repository "github.com/nobuchiyo/studylens/internal/adapters/repository"
	model "github.com/nobuchiyo/studylens/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func sheetsServiceFor(t *testing.T, handler http.HandlerFunc) (*sheets.Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	svc, err := sheets.NewService(context.Background(),
		option.WithoutAuthentication(),
		option.WithEndpoint(srv.URL),
	)
	So(err, ShouldBeNil)
	return svc, srv
}

func TestSheetStoreLoad(t *testing.T) {
	Convey("Given a sheet with a header row and data rows", t, func() {
		svc, srv := sheetsServiceFor(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"values":[
				["日付","名前","学科","点数","勉強時間","授業スタイル"],
				["2024-01-01","A","Dept1","90","30","lecture,group"],
				["2024-01-02","B","Dept1","70","60"]
			]}`))
		})
		defer srv.Close()

		store, err := repository.NewSheetStore(context.Background(),
			repository.WithSpreadsheetID("sheet-id"),
			repository.WithService(svc),
		)
		So(err, ShouldBeNil)

		Convey("When loading", func() {
			rows, err := store.Load(context.Background())

			Convey("Then data rows map onto the headers", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
				So(rows[0]["名前"], ShouldEqual, "A")
				So(rows[0]["授業スタイル"], ShouldEqual, "lecture,group")
			})

			Convey("And short rows leave trailing columns absent", func() {
				_, ok := rows[1]["授業スタイル"]
				So(ok, ShouldBeFalse)
			})
		})
	})

	Convey("Given a sheet with only a header row", t, func() {
		svc, srv := sheetsServiceFor(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"values":[["日付","名前"]]}`))
		})
		defer srv.Close()

		store, err := repository.NewSheetStore(context.Background(),
			repository.WithSpreadsheetID("sheet-id"),
			repository.WithService(svc),
		)
		So(err, ShouldBeNil)

		Convey("When loading", func() {
			rows, err := store.Load(context.Background())

			Convey("Then an empty slice comes back, not an error", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldBeEmpty)
			})
		})
	})
}

func TestSheetStoreErrorMapping(t *testing.T) {
	Convey("Given a sheet the service account cannot access", t, func() {
		svc, srv := sheetsServiceFor(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission"}}`))
		})
		defer srv.Close()

		store, err := repository.NewSheetStore(context.Background(),
			repository.WithSpreadsheetID("sheet-id"),
			repository.WithService(svc),
		)
		So(err, ShouldBeNil)

		Convey("When loading", func() {
			_, err := store.Load(context.Background())

			Convey("Then the rejected kind surfaces", func() {
				So(errors.Is(err, repository.ErrStoreRejected), ShouldBeTrue)
			})
		})

		Convey("When appending", func() {
			err := store.Append(context.Background(), model.Record{StudentName: "X"})

			Convey("Then the rejected kind surfaces", func() {
				So(errors.Is(err, repository.ErrStoreRejected), ShouldBeTrue)
			})
		})
	})

	Convey("Given a sheet backend that errors internally", t, func() {
		svc, srv := sheetsServiceFor(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"code":500,"message":"backend error"}}`))
		})
		defer srv.Close()

		store, err := repository.NewSheetStore(context.Background(),
			repository.WithSpreadsheetID("sheet-id"),
			repository.WithService(svc),
		)
		So(err, ShouldBeNil)

		Convey("When loading", func() {
			_, err := store.Load(context.Background())

			Convey("Then the unavailable kind surfaces", func() {
				So(errors.Is(err, repository.ErrStoreUnavailable), ShouldBeTrue)
			})
		})
	})
}

func TestNewSheetStoreValidation(t *testing.T) {
	Convey("Given sheet store construction", t, func() {
		Convey("When the spreadsheet id is missing", func() {
			_, err := repository.NewSheetStore(context.Background())

			Convey("Then construction fails with the rejected kind", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, repository.ErrStoreRejected), ShouldBeTrue)
				So(strings.Contains(err.Error(), "spreadsheet"), ShouldBeTrue)
			})
		})
	})
}
