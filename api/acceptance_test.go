package api

import (
	"testing"
	"time"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/fulldump/icecave/database"
	"github.com/fulldump/icecave/service"
)

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		db := database.NewDatabase(&database.Config{
			Dir:           t.TempDir(),
			FlushInterval: time.Hour,
		})
		defer db.Stop()

		biff.AssertNil(db.Load())
		biff.AssertEqual(db.GetStatus(), database.StatusOperating)

		b := Build(db, "test")
		b.WithInterceptors(
			PrettyErrorInterceptor,
			RecoverFromPanic,
			InterceptorUnavailable(db),
		)

		api := apitest.NewWithHandler(b)

		service.Acceptance(a, func(method, path string) *apitest.Request {
			return api.Request(method, "/v1"+path)
		})

	})
}

func TestUnavailable(t *testing.T) {

	db := database.NewDatabase(&database.Config{
		Dir: t.TempDir(),
	})

	b := Build(db, "test")
	b.WithInterceptors(
		PrettyErrorInterceptor,
		InterceptorUnavailable(db),
	)

	api := apitest.NewWithHandler(b)

	resp := api.Request("GET", "/v1/stores").Do()
	biff.AssertEqual(resp.StatusCode, 503)
}

func TestBuild_Extras(t *testing.T) {

	db := database.NewDatabase(&database.Config{
		Dir: t.TempDir(),
	})
	defer db.Stop()
	biff.AssertNil(db.Load())

	api := apitest.NewWithHandler(Build(db, "1.2.3"))

	biff.Alternative("Extras", func(a *biff.A) {

		a.Alternative("Release", func(a *biff.A) {
			resp := api.Request("GET", "/release").Do()
			biff.AssertEqual(resp.StatusCode, 200)
			biff.AssertEqual(resp.BodyJson(), "1.2.3")
		})

		a.Alternative("OpenAPI", func(a *biff.A) {
			resp := api.Request("GET", "/openapi.json").Do()
			biff.AssertEqual(resp.StatusCode, 200)
			biff.AssertNotNil(resp.BodyJson())
		})

		a.Alternative("Not implemented", func(a *biff.A) {
			resp := api.Request("GET", "/v1/nothing/here").Do()
			biff.AssertEqual(resp.StatusCode, 501)
		})
	})
}
