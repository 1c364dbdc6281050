package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDispatchReplacesCurrent(t *testing.T) {
	store := NewStore(10)

	assert.Equal(t, Default(), store.Current())

	next := store.Dispatch(SetLocation("Berlin, DE"))
	assert.Equal(t, "Berlin, DE", next.Location)
	assert.Equal(t, next, store.Current())
}

func TestStoreHistoryNewestFirst(t *testing.T) {
	store := NewStore(10)

	store.Dispatch(SetLocation("first"))
	store.Dispatch(SetLocation("second"))
	store.Dispatch(SetLocation("third"))

	entries := store.History(2)
	require.Len(t, entries, 2)
	assert.Equal(t, "third", entries[0].State.Location)
	assert.Equal(t, "second", entries[1].State.Location)

	for _, e := range entries {
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, ActionSetLocation, e.ActionType)
		assert.False(t, e.DispatchedAt.IsZero())
	}
}

func TestStoreHistoryRetention(t *testing.T) {
	store := NewStore(3)

	for i := 0; i < 10; i++ {
		store.Dispatch(SetLocation("loc"))
	}

	assert.Len(t, store.History(0), 3)
}

func TestStoreSubscribe(t *testing.T) {
	store := NewStore(10)
	updates := store.Subscribe()

	store.Dispatch(SetLocation("Berlin, DE"))

	select {
	case s := <-updates:
		assert.Equal(t, "Berlin, DE", s.Location)
	case <-time.After(time.Second):
		t.Fatal("expected a state update on the subscription channel")
	}
}

func TestStoreSlowSubscriberDoesNotBlockDispatch(t *testing.T) {
	store := NewStore(0)
	_ = store.Subscribe() // never drained

	done := make(chan struct{})
	go func() {
		// More dispatches than the subscription buffer holds.
		for i := 0; i < 100; i++ {
			store.Dispatch(SetLocation("loc"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch blocked on a slow subscriber")
	}
}
