package database

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fulldump/icecave/store"
	"github.com/fulldump/icecave/utils"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

var (
	ErrStoreAlreadyExists = errors.New("store already exists")
	ErrStoreNotFound      = errors.New("store not found")
)

type Config struct {
	Dir           string
	FlushInterval time.Duration
	Logger        *slog.Logger
}

// Database keeps a set of named stores living in the same directory, one
// file per store.
type Database struct {
	config *Config
	logger *slog.Logger

	status string
	stores map[string]*store.Store
	mutex  sync.RWMutex
	exit   chan struct{}
	once   sync.Once
}

func NewDatabase(config *Config) *Database {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Database{
		config: config,
		logger: logger,
		status: StatusOpening,
		stores: map[string]*store.Store{},
		exit:   make(chan struct{}),
	}
}

func (db *Database) GetStatus() string {
	db.mutex.RLock()
	defer db.mutex.RUnlock()
	return db.status
}

func (db *Database) setStatus(status string) {
	db.mutex.Lock()
	db.status = status
	db.mutex.Unlock()
}

func (db *Database) open(name string) (*store.Store, error) {
	return store.Open(db.config.Dir, name,
		store.WithFlushInterval(db.config.FlushInterval),
		store.WithLogger(db.logger.With("store", name)),
	)
}

func (db *Database) CreateStore(name string) (*store.Store, error) {

	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return nil, fmt.Errorf("invalid store name '%s'", name)
	}

	db.mutex.Lock()
	defer db.mutex.Unlock()

	if _, exists := db.stores[name]; exists {
		return nil, fmt.Errorf("create '%s': %w", name, ErrStoreAlreadyExists)
	}

	s, err := db.open(name)
	if err != nil {
		return nil, err
	}
	db.stores[name] = s

	return s, nil
}

func (db *Database) GetStore(name string) (*store.Store, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	s, exists := db.stores[name]
	if !exists {
		return nil, ErrStoreNotFound
	}

	return s, nil
}

func (db *Database) ListStores() []string {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	return utils.GetKeys(db.stores)
}

// DropStore closes the store and deletes its file.
func (db *Database) DropStore(name string) error {

	db.mutex.Lock()
	s, exists := db.stores[name]
	if !exists {
		db.mutex.Unlock()
		return fmt.Errorf("drop '%s': %w", name, ErrStoreNotFound)
	}
	delete(db.stores, name)
	db.mutex.Unlock()

	err := s.Close()
	if err != nil {
		db.logger.Warn("close store", "store", name, "err", err)
	}

	err = os.Remove(s.Filename)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove '%s': %w", s.Filename, err)
	}

	return nil
}

// Load opens every store found in the data directory, creating the
// directory if needed.
func (db *Database) Load() error {

	db.logger.Info("loading database", "dir", db.config.Dir)

	dir := db.config.Dir
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		db.setStatus(StatusClosing)
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		db.setStatus(StatusClosing)
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != store.Extension {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), store.Extension)

		t0 := time.Now()
		s, err := db.open(name)
		if err != nil {
			db.logger.Error("open store", "store", name, "err", err)
			db.setStatus(StatusClosing)
			return err
		}
		db.logger.Info("store loaded", "store", name, "records", s.Len(), "elapsed", time.Since(t0))

		db.mutex.Lock()
		if db.status == StatusClosing {
			// Stop won the race, it will not see this store
			db.mutex.Unlock()
			s.Close()
			return nil
		}
		db.stores[name] = s
		db.mutex.Unlock()
	}

	db.mutex.Lock()
	if db.status != StatusClosing {
		db.status = StatusOperating
	}
	db.mutex.Unlock()

	return nil
}

func (db *Database) Start() error {

	go func() {
		err := db.Load()
		if err != nil {
			db.logger.Error("load database", "err", err)
		}
	}()

	<-db.exit

	return nil
}

// Stop closes every store, flushing them one last time.
func (db *Database) Stop() error {

	defer db.once.Do(func() { close(db.exit) })

	db.setStatus(StatusClosing)

	db.mutex.RLock()
	defer db.mutex.RUnlock()

	var lastErr error
	for name, s := range db.stores {
		db.logger.Info("closing store", "store", name)
		err := s.Close()
		if err != nil {
			db.logger.Error("close store", "store", name, "err", err)
			lastErr = err
		}
	}

	return lastErr
}
