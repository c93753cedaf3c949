package timedmutex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnlockIfLocked(t *testing.T) {
	t.Parallel()
	tm := New(50 * time.Millisecond)

	// Never locked.
	assert.False(t, tm.UnlockIfLocked())

	tm.LockForDuration()
	assert.True(t, tm.UnlockIfLocked())

	// Second unlock must report that the lock was already released.
	assert.False(t, tm.UnlockIfLocked())
}

func TestTimeoutReleasesLock(t *testing.T) {
	t.Parallel()
	tm := New(5 * time.Millisecond)

	tm.LockForDuration()
	time.Sleep(20 * time.Millisecond)

	// Timer fired, so the holder can no longer unlock, but a fresh lock
	// must be obtainable without deadlocking.
	assert.False(t, tm.UnlockIfLocked())

	done := make(chan struct{})
	go func() {
		tm.LockForDuration()
		tm.UnlockIfLocked()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock was not released by the timer")
	}
}
