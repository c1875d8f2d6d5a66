package bot

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTurnLockSerializesSameUser(t *testing.T) {
	lock := newTurnLock()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		running int
		peak    int
	)

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := lock.acquire(7)
			defer release()

			mu.Lock()
			running++
			if running > peak {
				peak = running
			}
			mu.Unlock()

			mu.Lock()
			running--
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Equal(t, 1, peak)
}

func TestTurnLockIndependentUsers(t *testing.T) {
	lock := newTurnLock()

	releaseA := lock.acquire(1)
	done := make(chan struct{})
	go func() {
		release := lock.acquire(2)
		release()
		close(done)
	}()
	<-done
	releaseA()
}
