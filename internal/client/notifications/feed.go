// Package notifications keeps the user's notification feed and a WebSocket
// listener that fills it in real time.
package notifications

import (
	"sync"

	"github.com/dmitrijs2005/jobmatch/internal/client/models"
)

const DefaultFeedSize = 100

// Feed is a bounded, newest-first list of notifications. Safe for concurrent
// use. Subscribers are called outside the lock for every added item.
type Feed struct {
	mu     sync.Mutex
	items  []models.Notification
	max    int
	nextID int
	subs   []feedSub
}

type feedSub struct {
	id int
	fn func(models.Notification)
}

func NewFeed(max int) *Feed {
	if max <= 0 {
		max = DefaultFeedSize
	}
	return &Feed{max: max}
}

// Add puts n on top. A notification with a known ID replaces the old copy.
func (f *Feed) Add(n models.Notification) {
	f.mu.Lock()
	f.removeLocked(n.ID)
	f.items = append([]models.Notification{n}, f.items...)
	if len(f.items) > f.max {
		f.items = f.items[:f.max]
	}
	subs := f.subs
	f.mu.Unlock()

	for _, s := range subs {
		s.fn(n)
	}
}

// Replace swaps the whole feed, e.g. after listing from the server. Input is
// expected newest first.
func (f *Feed) Replace(list []models.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(list) > f.max {
		list = list[:f.max]
	}
	f.items = append([]models.Notification(nil), list...)
}

func (f *Feed) Items() []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Notification(nil), f.items...)
}

func (f *Feed) MarkRead(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return true
		}
	}
	return false
}

func (f *Feed) MarkAllRead() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		f.items[i].Read = true
	}
}

func (f *Feed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, it := range f.items {
		if !it.Read {
			n++
		}
	}
	return n
}

func (f *Feed) Remove(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.removeLocked(id)
}

func (f *Feed) removeLocked(id string) bool {
	if id == "" {
		return false
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}

func (f *Feed) Clear() {
	f.mu.Lock()
	f.items = nil
	f.mu.Unlock()
}

// Subscribe registers fn for new notifications and returns its remover.
// Subscribers are called in subscription order.
func (f *Feed) Subscribe(fn func(models.Notification)) func() {
	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.subs = append(f.subs, feedSub{id: id, fn: fn})
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, s := range f.subs {
			if s.id == id {
				// copy so a snapshot taken by Add stays intact
				f.subs = append(f.subs[:i:i], f.subs[i+1:]...)
				return
			}
		}
	}
}
