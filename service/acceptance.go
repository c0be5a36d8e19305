package service

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance runs the HTTP scenario shared by every server build.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Create store", func(a *biff.A) {
		resp := apiRequest("POST", "/stores").
			WithBodyJson(JSON{
				"name": "my-store",
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"name":  "my-store",
			"total": 0,
		})

		a.Alternative("Create store again", func(a *biff.A) {
			resp := apiRequest("POST", "/stores").
				WithBodyJson(JSON{
					"name": "my-store",
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusConflict)
		})

		a.Alternative("List stores", func(a *biff.A) {
			resp := apiRequest("GET", "/stores").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{
				{"name": "my-store", "total": 0},
			})
		})

		a.Alternative("Empty store", func(a *biff.A) {
			resp := apiRequest("POST", "/stores/my-store:first").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)

			resp = apiRequest("POST", "/stores/my-store:get").
				WithBodyJson(JSON{"index": 0}).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Push one", func(a *biff.A) {
			myRecord := JSON{
				"id":      "my-id",
				"name":    "Fulanez",
				"address": "Elm Street 11",
			}
			resp := apiRequest("POST", "/stores/my-store:push").
				WithBodyJson(myRecord).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
			biff.AssertEqualJson(resp.BodyJson(), JSON{"index": 0})

			a.Alternative("Get", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-store:get").
					WithBodyJson(JSON{"index": 0}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), myRecord)
			})

			a.Alternative("Get without index", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-store:get").
					WithBodyJson(JSON{}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})

			a.Alternative("Set", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-store:set").
					WithBodyJson(JSON{"index": 0, "value": JSON{"name": "Menganez"}}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

				resp = apiRequest("POST", "/stores/my-store:first").Do()
				biff.AssertEqualJson(resp.BodyJson(), JSON{"name": "Menganez"})
			})

			a.Alternative("Set path", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-store:setPath").
					WithBodyJson(JSON{"index": 0, "path": "address", "value": "Main Street 1"}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

				resp = apiRequest("POST", "/stores/my-store:last").Do()
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"id":      "my-id",
					"name":    "Fulanez",
					"address": "Main Street 1",
				})
			})

			a.Alternative("Set out of range", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-store:set").
					WithBodyJson(JSON{"index": 5, "value": "ignored"}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

				resp = apiRequest("GET", "/stores/my-store").Do()
				biff.AssertEqualJson(resp.BodyJson(), JSON{"name": "my-store", "total": 1})
			})

			a.Alternative("Remove", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-store:remove").
					WithBodyJson(JSON{"index": 0}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

				resp = apiRequest("GET", "/stores/my-store").Do()
				biff.AssertEqualJson(resp.BodyJson(), JSON{"name": "my-store", "total": 0})
			})
		})

		a.Alternative("Push many", func(a *biff.A) {

			myRecords := []JSON{
				{"id": "1", "name": "Alfonso", "age": 20},
				{"id": "2", "name": "Gerardo", "age": 40},
				{"id": "3", "name": "Alfonso", "age": 60},
			}

			body := ""
			for _, record := range myRecords {
				line, _ := json.Marshal(record)
				body += string(line) + "\n"
			}

			resp := apiRequest("POST", "/stores/my-store:push").
				WithBodyString(body).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
			biff.AssertEqual(strings.Count(resp.BodyString(), "index"), 3)

			a.Alternative("Find", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-store:find").
					WithBodyJson(JSON{"filter": JSON{"name": "Alfonso"}}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), myRecords[0])
			})

			a.Alternative("Find nothing", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-store:find").
					WithBodyJson(JSON{"filter": JSON{"name": "Nobody"}}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("Filter", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-store:filter").
					WithBodyJson(JSON{"filter": JSON{"name": "Alfonso"}}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), []JSON{myRecords[0], myRecords[2]})
			})

			a.Alternative("Filter with operator and paging", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-store:filter").
					WithBodyJson(JSON{
						"filter": JSON{"age": JSON{"$gt": 10}},
						"skip":   1,
						"limit":  1,
					}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), []JSON{myRecords[1]})
			})

			a.Alternative("Find with empty filter", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-store:find").
					WithBodyJson(JSON{"filter": JSON{}}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), myRecords[0])
			})

			a.Alternative("Last", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-store:last").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), myRecords[2])
			})
		})

		a.Alternative("Push partial batch", func(a *biff.A) {
			resp := apiRequest("POST", "/stores/my-store:push").
				WithBodyString(`{"a":1}` + "\n" + `{broken` + "\n").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
			body := resp.BodyString()
			biff.AssertTrue(strings.Contains(body, `{"index":0}`))
			biff.AssertTrue(strings.Contains(body, `"error":"record 1: `))

			resp = apiRequest("GET", "/stores/my-store").Do()
			biff.AssertEqualJson(resp.BodyJson(), JSON{"name": "my-store", "total": 1})
		})

		a.Alternative("Drop store", func(a *biff.A) {
			resp := apiRequest("POST", "/stores/my-store:drop").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

			a.Alternative("Get dropped store", func(a *biff.A) {
				resp := apiRequest("GET", "/stores/my-store").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})
		})
	})

	a.Alternative("Missing store", func(a *biff.A) {
		resp := apiRequest("POST", "/stores/nope:push").
			WithBodyJson(JSON{"a": 1}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})
}
