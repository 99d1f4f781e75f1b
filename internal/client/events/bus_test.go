package events

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_DeliversByKindInOrder(t *testing.T) {
	b := NewBus()
	var got []string

	b.Subscribe(SessionExpired, func(Event) { got = append(got, "first") })
	b.Subscribe(SessionExpired, func(Event) { got = append(got, "second") })
	b.Subscribe(Forbidden, func(Event) { got = append(got, "forbidden") })

	b.Publish(Event{Kind: SessionExpired})

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestBus_Unsubscribe(t *testing.T) {
	b := NewBus()
	var n int

	unsub := b.Subscribe(NotFound, func(Event) { n++ })
	b.Publish(Event{Kind: NotFound})
	unsub()
	unsub()
	b.Publish(Event{Kind: NotFound})

	assert.Equal(t, 1, n)
}

func TestBus_UnsubscribeDuringPublish(t *testing.T) {
	b := NewBus()
	var calls []string

	var unsubA func()
	unsubA = b.Subscribe(ServerError, func(Event) {
		calls = append(calls, "a")
		unsubA()
	})
	b.Subscribe(ServerError, func(Event) { calls = append(calls, "b") })

	b.Publish(Event{Kind: ServerError})
	b.Publish(Event{Kind: ServerError})

	assert.Equal(t, []string{"a", "b", "b"}, calls)
}

func TestBus_NilIsNoop(t *testing.T) {
	var b *Bus
	assert.NotPanics(t, func() { b.Publish(Event{Kind: RateLimited}) })
	assert.NotPanics(t, func() {
		unsubscribe := b.Subscribe(SessionExpired, func(Event) {})
		unsubscribe()
		unsubscribe()
	})
}

func TestBus_ConcurrentUse(t *testing.T) {
	b := NewBus()
	var n atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unsub := b.Subscribe(TokenRefreshed, func(Event) { n.Add(1) })
			defer unsub()
		}()
		go func() {
			defer wg.Done()
			b.Publish(Event{Kind: TokenRefreshed})
		}()
	}
	wg.Wait()

	b.Subscribe(TokenRefreshed, func(Event) { n.Add(1000) })
	before := n.Load()
	b.Publish(Event{Kind: TokenRefreshed})
	assert.Equal(t, before+1000, n.Load())
}
