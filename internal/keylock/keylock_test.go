package keylock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Test that concurrent critical sections on the same key are serialized:
// an unsynchronized read-modify-write would lose increments.
func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	t.Parallel()

	km := New()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("meme1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	require.Equal(t, 200, counter)
}

// Test that different keys do not block each other: a goroutine holding
// key A must not delay a goroutine locking key B.
func TestKeyedMutex_IndependentKeys(t *testing.T) {
	t.Parallel()

	km := New()

	unlockA := km.Lock("memeA")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := km.Lock("memeB")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lock on an independent key blocked")
	}
}

// Test that a key resolves to the same mutex across calls.
func TestKeyedMutex_SameKeyBlocks(t *testing.T) {
	t.Parallel()

	km := New()

	unlock := km.Lock("meme1")

	acquired := make(chan struct{})
	go func() {
		second := km.Lock("meme1")
		second()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second lock on the same key was acquired while held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("second lock was never acquired after unlock")
	}
}
