package store

import (
	"fmt"
	"time"
)

// flushLoop writes the current sequence to disk on every tick. Writes are
// not awaited: a slow write may still be running when the next one starts,
// in which case the last one to finish determines the file content.
func (s *Store) flushLoop() {
	defer s.loop.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			seq := s.current.Load()
			s.writes.Add(1)
			go func() {
				defer s.writes.Done()
				err := writeSnapshot(s.Filename, seq)
				if err != nil {
					s.report(fmt.Errorf("flush '%s': %w", s.Filename, err))
				}
			}()
		case <-s.stop:
			return
		}
	}
}

// Flush synchronously writes the current sequence to disk.
func (s *Store) Flush() error {
	return writeSnapshot(s.Filename, s.current.Load())
}

// Close stops the background flusher, waits for pending writes and flushes
// one last time. The store keeps working in memory after Close, but nothing
// else will be persisted.
func (s *Store) Close() (err error) {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.loop.Wait()
		s.writes.Wait()
		err = s.Flush()
	})
	return
}
