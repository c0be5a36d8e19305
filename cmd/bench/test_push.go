package main

import (
	"fmt"
	"time"
)

func TestPush(c Config) {

	if c.Base == "" {
		_, start, stop := CreateServer(&c)
		defer stop()
		go start()
	}

	storeName := CreateStore(c.Base)

	t0 := time.Now()
	PushRecords(newClient(), c.Base, storeName, c.N, c.Workers)

	took := time.Since(t0)
	fmt.Println("sent:", c.N)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f records/sec\n", float64(c.N)/took.Seconds())
}
