package inmem

import (
	"sync"

	"supermind/pkg/log"
)

// Store is an in-memory session store. All methods are safe for concurrent
// use; mutations hold the write lock for their full duration so a session
// is always observed whole.
type Store struct {
	l        log.Logger
	mu       sync.RWMutex
	sessions map[string]*record
	seq      uint64
}

// New creates an empty in-memory session store.
func New(l log.Logger) *Store {
	return &Store{
		l:        l,
		sessions: make(map[string]*record),
	}
}
