package timedmutex

import (
	"sync"
	"time"
)

// TimedMutex is a blocking mutex which will unlock itself after the set
// duration if the holder never releases it. It keeps signed requests in FIFO
// order without a failed request wedging the nonce pipeline.
type TimedMutex struct {
	mtx       sync.Mutex
	timerLock sync.RWMutex
	timer     *time.Timer
	duration  time.Duration
}

// New returns a timed mutex with the given unlock window.
func New(length time.Duration) *TimedMutex {
	return &TimedMutex{duration: length}
}

// LockForDuration locks the mutex and arms the unlock timer.
func (t *TimedMutex) LockForDuration() {
	var wg sync.WaitGroup
	wg.Add(1)
	go t.lockAndSetTimer(&wg)
	wg.Wait()
}

func (t *TimedMutex) lockAndSetTimer(wg *sync.WaitGroup) {
	t.mtx.Lock()
	t.setTimer()
	wg.Done()
}

// UnlockIfLocked unlocks the mutex if it is currently locked. Returns false
// if the timer already fired and released the lock.
func (t *TimedMutex) UnlockIfLocked() bool {
	if t.isTimerNil() {
		return false
	}

	if !t.stopTimer() {
		return false
	}
	t.mtx.Unlock()
	return true
}

func (t *TimedMutex) stopTimer() bool {
	t.timerLock.Lock()
	defer t.timerLock.Unlock()
	if !t.timer.Stop() {
		select {
		case <-t.timer.C:
		default:
		}
		return false
	}
	return true
}

func (t *TimedMutex) isTimerNil() bool {
	t.timerLock.RLock()
	defer t.timerLock.RUnlock()
	return t.timer == nil
}

func (t *TimedMutex) setTimer() {
	t.timerLock.Lock()
	t.timer = time.AfterFunc(t.duration, func() {
		t.mtx.Unlock()
	})
	t.timerLock.Unlock()
}
