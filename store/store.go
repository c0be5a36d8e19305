// Package store implements an in-process ordered record store. Records are
// arbitrary JSON values addressed by position. The whole sequence lives in
// memory and is periodically written to a single JSON file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-json-experiment/json"
	"github.com/tidwall/sjson"
)

var ErrConfiguration = errors.New("configuration error")

// Predicate reports whether a record matches. It receives a private copy of
// the record.
type Predicate func(record any) bool

type Store struct {
	Dir      string
	Name     string
	Filename string

	current atomic.Pointer[sequence]
	mutex   sync.Mutex // serializes writers

	interval time.Duration
	onError  func(err error)
	logger   *slog.Logger

	stop      chan struct{}
	closeOnce sync.Once
	loop      sync.WaitGroup
	writes    sync.WaitGroup
}

// Open binds a store to <dir>/<name>.json, loads its content and starts the
// background flusher. It only fails when dir does not exist. An unreadable
// or malformed file results in an empty store.
func Open(dir, name string, options ...Option) (*Store, error) {

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: directory '%s': %s", ErrConfiguration, dir, err.Error())
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: '%s' is not a directory", ErrConfiguration, dir)
	}

	if name == "" {
		name = DefaultName
	}

	s := &Store{
		Dir:      dir,
		Name:     name,
		Filename: filepath.Join(dir, name+Extension),
		interval: DefaultFlushInterval,
		stop:     make(chan struct{}),
	}
	for _, option := range options {
		option(s)
	}

	s.current.Store(s.load())

	s.loop.Add(1)
	go s.flushLoop()

	return s, nil
}

func (s *Store) load() *sequence {

	records, err := readSnapshot(s.Filename)
	if errors.Is(err, fs.ErrNotExist) {
		return newSequence()
	}
	if err != nil {
		s.report(fmt.Errorf("load '%s': %w", s.Filename, err))
		return newSequence()
	}

	return sequenceOf(records)
}

func (s *Store) report(err error) {
	if s.logger != nil {
		s.logger.Warn("store", "name", s.Name, "err", err)
	}
	if s.onError != nil {
		s.onError(err)
	}
}

// mutate applies f to the current version and publishes the result.
func (s *Store) mutate(f func(seq *sequence) *sequence) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.current.Store(f(s.current.Load()))
}

// Push appends value and returns its index. value is stored as its JSON
// representation; an error is returned if it cannot be encoded.
func (s *Store) Push(value any) (int, error) {

	record, err := normalize(value)
	if err != nil {
		return -1, err
	}

	var i int
	s.mutate(func(seq *sequence) *sequence {
		i = seq.Len()
		return seq.Append(record)
	})

	return i, nil
}

// Remove deletes the record at index i; following records move one position
// down. Out of range indexes are ignored.
func (s *Store) Remove(i int) {
	s.mutate(func(seq *sequence) *sequence {
		return seq.Delete(i)
	})
}

// Set replaces the record at index i. Out of range indexes are ignored.
func (s *Store) Set(i int, value any) error {

	record, err := normalize(value)
	if err != nil {
		return err
	}

	s.mutate(func(seq *sequence) *sequence {
		return seq.Replace(i, record)
	})

	return nil
}

// SetPath updates a single field of the record at index i. path uses sjson
// syntax ("address.city", "tags.-1"). Out of range indexes are ignored.
func (s *Store) SetPath(i int, path string, value any) error {

	s.mutex.Lock()
	defer s.mutex.Unlock()

	seq := s.current.Load()
	record, ok := seq.At(i)
	if !ok {
		return nil
	}

	payload, err := json.Marshal(record, jsonOptions, json.Deterministic(true))
	if err != nil {
		return fmt.Errorf("json encode record: %w", err)
	}

	payload, err = sjson.SetBytes(payload, path, value)
	if err != nil {
		return fmt.Errorf("set path '%s': %w", path, err)
	}

	var updated any
	err = json.Unmarshal(payload, &updated, jsonOptions)
	if err != nil {
		return fmt.Errorf("json decode record: %w", err)
	}

	s.current.Store(seq.Replace(i, updated))

	return nil
}

// Get returns a copy of the record at index i. ok is false when i is out of
// range.
func (s *Store) Get(i int) (value any, ok bool) {
	value, ok = s.current.Load().At(i)
	if !ok {
		return nil, false
	}
	return plain(value), true
}

// Find returns a copy of the lowest indexed record matching p. ok is false
// when nothing matches.
func (s *Store) Find(p Predicate) (value any, ok bool) {
	s.current.Load().Traverse(func(i int, v any) bool {
		candidate := plain(v)
		if p(candidate) {
			value, ok = candidate, true
			return false
		}
		return true
	})
	return
}

// Filter returns copies of every record matching p, in index order.
func (s *Store) Filter(p Predicate) []any {
	result := []any{}
	s.current.Load().Traverse(func(i int, v any) bool {
		candidate := plain(v)
		if p(candidate) {
			result = append(result, candidate)
		}
		return true
	})
	return result
}

func (s *Store) First() (any, bool) {
	return s.Get(0)
}

func (s *Store) Last() (any, bool) {
	seq := s.current.Load()
	value, ok := seq.At(seq.Len() - 1)
	if !ok {
		return nil, false
	}
	return plain(value), true
}

func (s *Store) Len() int {
	return s.current.Load().Len()
}

// Snapshot returns a copy of every record in index order.
func (s *Store) Snapshot() []any {
	values := s.current.Load().Values()
	for i, v := range values {
		values[i] = plain(v)
	}
	return values
}
