package main

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/nobuchiyo/studylens/internal/adapters/http/api"
	app "github.com/nobuchiyo/studylens/internal/app"
	"github.com/nobuchiyo/studylens/internal/config"
	"github.com/nobuchiyo/studylens/internal/domain/normalize"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("STUDYLENS_ADDR", ":8080")
			_ = os.Setenv("STUDYLENS_LOG_LEVEL", "debug")
			defer func() {
				_ = os.Unsetenv("STUDYLENS_ADDR")
				_ = os.Unsetenv("STUDYLENS_LOG_LEVEL")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When building the store from defaults", func() {
			cfg := config.New()
			store, err := buildStore(context.Background(), cfg)

			convey.Convey("Then the memory store comes back", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(store, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When converting configured aliases", func() {
			cfg := config.New()
			cfg.ExtraAliases = map[string][]string{"score": {"テスト結果"}}
			aliases := aliasesFromConfig(cfg)

			convey.Convey("Then they key on normalizer fields", func() {
				convey.So(aliases[normalize.FieldScore], convey.ShouldResemble, []string{"テスト結果"})
			})
		})

		convey.Convey("When testing HTTP route registration", func() {
			svc := app.New()
			mux := http.NewServeMux()
			server := api.NewServer(svc)

			convey.Convey("Then registration should not panic", func() {
				convey.So(func() {
					server.Register(context.Background(), mux)
				}, convey.ShouldNotPanic)
			})
		})
	})
}
