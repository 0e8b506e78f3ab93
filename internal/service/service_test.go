package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDispatchOrder(t *testing.T) {
	var reg Registry[int]
	var order []string
	reg.Add(AddFunc[int](func(int) { order = append(order, "first") }))
	reg.Add(AddFunc[int](func(int) { order = append(order, "second") }))
	reg.Add(AddFunc[int](func(int) { order = append(order, "third") }))

	reg.NotifyAdd(1)
	assert.Equal(t, []string{"first", "second", "third"}, order)
	assert.Len(t, reg.Listeners(), 3)
}

func TestRegistryDepthFirstFanOut(t *testing.T) {
	var upstream, downstream Registry[int]
	var events []string

	downstream.Add(AddFunc[int](func(v int) {
		events = append(events, "downstream")
	}))
	upstream.Add(AddFunc[int](func(v int) {
		events = append(events, "upstream-before")
		downstream.NotifyAdd(v)
		events = append(events, "upstream-after")
	}))
	upstream.Add(AddFunc[int](func(v int) {
		events = append(events, "upstream-second")
	}))

	upstream.NotifyAdd(1)

	// The transitive fan-out completes before the next listener runs.
	assert.Equal(t, []string{
		"upstream-before",
		"downstream",
		"upstream-after",
		"upstream-second",
	}, events)
}

func TestStoreUpsertAndDelete(t *testing.T) {
	store := NewStore[string]()

	_, ok := store.Get("a")
	assert.False(t, ok)

	store.Put("a", "one")
	store.Put("a", "two")
	v, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "two", v)
	assert.Equal(t, 1, store.Len())

	store.Delete("a")
	_, ok = store.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStoreGetOrCreate(t *testing.T) {
	store := NewStore[[]int]()
	created := 0

	v := store.GetOrCreate("k", func() []int {
		created++
		return []int{1}
	})
	assert.Equal(t, []int{1}, v)

	v = store.GetOrCreate("k", func() []int {
		created++
		return nil
	})
	assert.Equal(t, []int{1}, v)
	assert.Equal(t, 1, created)
}
