package bot

import "sync"

// turnLock serializes conversation turns per participant so rapid taps on
// the same keyboard cannot interleave store updates.
type turnLock struct {
	mu    sync.Mutex
	users map[int64]*sync.Mutex
}

func newTurnLock() *turnLock {
	return &turnLock{users: make(map[int64]*sync.Mutex)}
}

// acquire locks the participant's turn and returns the release function.
func (t *turnLock) acquire(userID int64) func() {
	t.mu.Lock()
	m, ok := t.users[userID]
	if !ok {
		m = &sync.Mutex{}
		t.users[userID] = m
	}
	t.mu.Unlock()

	m.Lock()
	return m.Unlock
}
