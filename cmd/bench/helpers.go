package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fulldump/icecave/bootstrap"
	"github.com/fulldump/icecave/configuration"
)

type JSON = map[string]any

func Parallel(workers int, f func()) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}

func TempDir() (string, func()) {
	dir, err := os.MkdirTemp("", "icecave_bench_*")
	if err != nil {
		panic("Could not create temp directory: " + err.Error())
	}

	cleanup := func() {
		os.RemoveAll(dir)
	}

	return dir, cleanup
}

// CreateServer boots an embedded server on a temporary directory and points
// c.Base to it.
func CreateServer(c *Config) (dir string, start, stop func()) {
	dir, cleanup := TempDir()
	cleanups = append(cleanups, cleanup)

	conf := configuration.Default()
	conf.Dir = dir
	conf.ShowBanner = false
	c.Base = "http://" + conf.HttpAddr

	start, stop = bootstrap.Bootstrap(&conf)
	return dir, start, stop
}

func CreateStore(base string) string {

	name := "store-" + strconv.FormatInt(time.Now().UnixNano(), 10)

	payload, _ := json.Marshal(JSON{"name": name})

	req, _ := http.NewRequest("POST", base+"/v1/stores", bytes.NewReader(payload))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	io.Copy(os.Stdout, resp.Body)
	fmt.Println()

	return name
}

// PushRecords streams n records into the store splitting the work among
// workers, one request per worker.
func PushRecords(client *http.Client, base, storeName string, n int64, workers int) {

	pending := n
	Parallel(workers, func() {

		r, w := io.Pipe()

		go func() {
			e := json.NewEncoder(w)
			for {
				i := atomic.AddInt64(&pending, -1)
				if i < 0 {
					break
				}
				e.Encode(JSON{
					"id":     strconv.FormatInt(i, 10),
					"worker": i % int64(workers),
				})
			}
			w.Close()
		}()

		req, err := http.NewRequest("POST", base+"/v1/stores/"+storeName+":push", r)
		if err != nil {
			fmt.Println("ERROR: new request:", err.Error())
			os.Exit(3)
		}

		resp, err := client.Do(req)
		if err != nil {
			fmt.Println("ERROR: do request:", err.Error())
			os.Exit(4)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	})
}

func newClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxConnsPerHost:     1024,
			MaxIdleConnsPerHost: 1024,
			MaxIdleConns:        1024,
		},
	}
}
