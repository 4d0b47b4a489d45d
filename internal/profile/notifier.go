// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

package profile

import (
	"sync"

	"github.com/toeirei/littlelemon/internal/model"
)

// Update is delivered to subscribers after a profile change.
type Update struct {
	Profile model.Profile
	// LoggedOut is set when the change was a logout.
	LoggedOut bool
}

// subscriberBuffer is the per-subscriber queue length. Updates beyond it
// are dropped for that subscriber; they only ever mean "reload".
const subscriberBuffer = 4

// Notifier fans profile updates out to subscribers. Each Service owns one;
// there is no process-wide instance.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Update
}

// Subscribe registers a listener. The returned cancel func unregisters it
// and closes the channel; it is safe to call more than once.
func (n *Notifier) Subscribe() (<-chan Update, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]chan Update)
	}
	id := n.next
	n.next++
	ch := make(chan Update, subscriberBuffer)
	n.subs[id] = ch
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if c, ok := n.subs[id]; ok {
				delete(n.subs, id)
				close(c)
			}
		})
	}
}

// Publish delivers u to every subscriber without blocking.
func (n *Notifier) Publish(u Update) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- u:
		default:
		}
	}
}
