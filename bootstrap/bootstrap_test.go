package bootstrap

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	. "github.com/fulldump/biff"

	"github.com/fulldump/icecave/configuration"
)

func TestBootstrap(t *testing.T) {

	c := configuration.Default()
	c.HttpAddr = "127.0.0.1:0"
	c.Dir = filepath.Join(t.TempDir(), "data")
	c.FlushInterval = 50 * time.Millisecond

	start, stop := Bootstrap(&c)

	done := make(chan struct{})
	go func() {
		start()
		close(done)
	}()

	stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("start did not return after stop")
	}
}

func TestBootstrap_Release(t *testing.T) {

	c := configuration.Default()
	c.HttpAddr = "127.0.0.1:18931"
	c.Dir = t.TempDir()

	start, stop := Bootstrap(&c)
	go start()
	defer stop()

	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://" + c.HttpAddr + "/release")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	AssertNil(err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	AssertEqual(resp.StatusCode, http.StatusOK)
	AssertEqual(strings.TrimSpace(string(body)), `"`+VERSION+`"`)
}
