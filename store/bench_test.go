package store

import (
	"testing"
	"time"
)

func BenchmarkPush(b *testing.B) {
	s, _ := Open(b.TempDir(), "bench", WithFlushInterval(500*time.Millisecond))
	defer s.Close()

	record := map[string]any{"name": "Test User", "email": "test@example.com", "active": true, "balance": 1500.50}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Push(record)
	}
}

func BenchmarkGet(b *testing.B) {
	s, _ := Open(b.TempDir(), "bench", WithFlushInterval(time.Hour))
	defer s.Close()

	for i := 0; i < 10_000; i++ {
		s.Push(map[string]any{"i": i})
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Get(i % 10_000)
	}
}

func BenchmarkRemoveFirst(b *testing.B) {
	s, _ := Open(b.TempDir(), "bench", WithFlushInterval(time.Hour))
	defer s.Close()

	for i := 0; i < b.N; i++ {
		s.Push(i)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Remove(0)
	}
}
