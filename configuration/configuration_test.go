package configuration

import (
	"testing"
	"time"

	"github.com/fulldump/biff"
)

func TestDefault(t *testing.T) {

	c := Default()

	biff.AssertEqual(c.HttpAddr, "127.0.0.1:8080")
	biff.AssertEqual(c.Dir, "data")
	biff.AssertEqual(c.FlushInterval, time.Second)
}
