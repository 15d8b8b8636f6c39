package interview

import (
	"sync"

	"github.com/google/uuid"
)

// SessionLocker serializes mutating operations per session id. Transitions
// read-modify-write the whole session document against the store, so two
// concurrent writers on the same id would lose updates. Different sessions
// proceed in parallel.
type SessionLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func NewSessionLocker() *SessionLocker {
	return &SessionLocker{
		locks: make(map[uuid.UUID]*sessionLock),
	}
}

// Lock acquires the lock for a session id and returns the release func.
// Entries are reference-counted and removed when the last holder releases,
// so the map does not grow with session history.
func (l *SessionLocker) Lock(id uuid.UUID) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &sessionLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()
		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
