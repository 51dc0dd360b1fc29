package rating

import "sync"

// playerLocks serializes work per player id. Waiters queue on the same
// mutex; entries are dropped once nobody holds or waits for them.
type playerLocks struct {
	mu      sync.Mutex
	entries map[string]*playerLock
}

type playerLock struct {
	mu   sync.Mutex
	refs int
}

func newPlayerLocks() *playerLocks {
	return &playerLocks{entries: make(map[string]*playerLock)}
}

func (l *playerLocks) lock(playerID string) func() {
	l.mu.Lock()
	e, ok := l.entries[playerID]
	if !ok {
		e = &playerLock{}
		l.entries[playerID] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.entries, playerID)
		}
		l.mu.Unlock()
	}
}

func (l *playerLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
