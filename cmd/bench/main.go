package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Test    string `usage:"name of the test: ALL | PUSH | LOAD"`
	Base    string `usage:"base URL, empty to start an embedded server"`
	N       int64  `usage:"number of records"`
	Workers int    `usage:"number of workers"`
}

var cleanups []func()

func main() {

	defer func() {
		fmt.Println("Cleaning up...")
		for _, cleanup := range cleanups {
			cleanup()
		}
	}()

	c := Config{
		Test:    "push",
		Base:    "",
		N:       100_000,
		Workers: 16,
	}
	goconfig.Read(&c)

	switch strings.ToUpper(c.Test) {
	case "ALL":
		TestPush(c)
		TestLoad(c)
	case "PUSH":
		TestPush(c)
	case "LOAD":
		TestLoad(c)
	default:
		log.Fatalf("Unknown test %s", c.Test)
	}

}
