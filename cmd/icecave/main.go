package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fulldump/goconfig"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/fulldump/icecave/bootstrap"
	"github.com/fulldump/icecave/configuration"
)

var banner = `
  _____           _____                
 |_   _|         / ____|               
   | |  ___ ___ | |     __ ___   _____ 
   | | / __/ _ \| |    / _' \ \ / / _ \
  _| || (_|  __/| |___| (_| |\ V /  __/
 |_____\___\___| \_____\__,_| \_/ \___|
                       version ` + bootstrap.VERSION + `
`

func main() {

	c := configuration.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", bootstrap.VERSION)
		return
	}

	if c.ShowBanner {
		fmt.Println(banner)
	}

	if c.ShowConfig {
		e := json.NewEncoder(os.Stdout)
		e.SetIndent("", "    ")
		e.Encode(c)
	}

	ll := &slog.LevelVar{}
	err := ll.UnmarshalText([]byte(strings.ToUpper(c.LogLevel)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "icecave: bad log level '%s': %v\n", c.LogLevel, err)
		os.Exit(2)
	}

	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)

	start, _ := bootstrap.Bootstrap(&c)
	start()
}
