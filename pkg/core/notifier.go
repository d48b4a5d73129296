package core

import (
	"slices"
	"sync"
)

// Notifier broadcasts a signal to listeners without carrying a value.
type Notifier struct {
	mu        sync.Mutex
	listeners []notifierEntry
	nextID    int
}

type notifierEntry struct {
	id int
	fn func()
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// AddListener registers fn and returns a function that removes it.
func (n *Notifier) AddListener(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.listeners = append(n.listeners, notifierEntry{id: id, fn: fn})
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		n.listeners = slices.DeleteFunc(n.listeners, func(e notifierEntry) bool {
			return e.id == id
		})
	}
}

// Notify calls every registered listener in registration order.
func (n *Notifier) Notify() {
	n.mu.Lock()
	listeners := slices.Clone(n.listeners)
	n.mu.Unlock()
	for _, l := range listeners {
		l.fn()
	}
}
