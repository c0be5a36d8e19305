package main

import (
	"fmt"
	"time"

	"github.com/fulldump/icecave/store"
)

// TestLoad measures how long a store takes to load its snapshot. It always
// runs against an embedded server since it needs the data directory.
func TestLoad(c Config) {

	c.Base = ""
	dir, start, stop := CreateServer(&c)
	go start()

	storeName := CreateStore(c.Base)

	fmt.Println("Preload records...")
	PushRecords(newClient(), c.Base, storeName, c.N, c.Workers)

	stop() // final flush happens here

	t0 := time.Now()
	s, err := store.Open(dir, storeName)
	if err != nil {
		fmt.Println("ERROR: open store:", err.Error())
		return
	}
	took := time.Since(t0)
	defer s.Close()

	fmt.Println("loaded:", s.Len())
	fmt.Println("open took:", took)
	fmt.Printf("Throughput Open: %.2f records/sec\n", float64(s.Len())/took.Seconds())
}
