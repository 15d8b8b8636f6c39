package interview

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestSessionLockerSerializesPerId(t *testing.T) {
	locker := NewSessionLocker()
	id := uuid.New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock(id)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
}

func TestSessionLockerReleasesEntries(t *testing.T) {
	locker := NewSessionLocker()

	unlock := locker.Lock(uuid.New())
	unlock()

	locker.mu.Lock()
	defer locker.mu.Unlock()
	if len(locker.locks) != 0 {
		t.Errorf("lock map has %d entries after release, want 0", len(locker.locks))
	}
}

func TestSessionLockerIndependentSessions(t *testing.T) {
	locker := NewSessionLocker()
	a, b := uuid.New(), uuid.New()

	unlockA := locker.Lock(a)
	defer unlockA()

	// A held lock on one session must not block another session.
	done := make(chan struct{})
	go func() {
		unlockB := locker.Lock(b)
		unlockB()
		close(done)
	}()
	<-done
}
