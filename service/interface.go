package service

import (
	"github.com/fulldump/icecave/database"
	"github.com/fulldump/icecave/store"
)

// Servicer is what the HTTP layer needs to manage stores.
type Servicer interface {
	CreateStore(name string) (*store.Store, error)
	GetStore(name string) (*store.Store, error)
	ListStores() []string
	DropStore(name string) error
}

var _ Servicer = (*database.Database)(nil)
