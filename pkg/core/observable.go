package core

import (
	"slices"
	"sync"
)

// Observable holds a value and notifies listeners with the previous and the new
// value whenever it changes.
//
// Listeners run synchronously on the goroutine calling Set, after the value has
// been stored, and may call Set again. A Set with a value equal to the current
// one (according to the equality function) notifies nobody.
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	equal     func(a, b T) bool
	listeners []observer[T]
	nextID    int
}

type observer[T any] struct {
	id int
	fn func(old, new T)
}

// NewObservable creates an observable using == for change detection.
func NewObservable[T comparable](initial T) *Observable[T] {
	return &Observable[T]{
		value: initial,
		equal: func(a, b T) bool { return a == b },
	}
}

// NewObservableWithEquality creates an observable with a custom equality function.
// A nil equal notifies on every Set.
func NewObservableWithEquality[T any](initial T, equal func(a, b T) bool) *Observable[T] {
	return &Observable[T]{value: initial, equal: equal}
}

// Value returns the current value.
func (o *Observable[T]) Value() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set stores value and notifies listeners if it differs from the current value.
func (o *Observable[T]) Set(value T) {
	o.mu.Lock()
	old := o.value
	if o.equal != nil && o.equal(old, value) {
		o.mu.Unlock()
		return
	}
	o.value = value
	listeners := slices.Clone(o.listeners)
	o.mu.Unlock()

	for _, l := range listeners {
		l.fn(old, value)
	}
}

// AddListener registers fn and returns a function that removes it.
// The returned function is safe to call more than once.
func (o *Observable[T]) AddListener(fn func(old, new T)) func() {
	if fn == nil {
		return func() {}
	}
	o.mu.Lock()
	id := o.nextID
	o.nextID++
	o.listeners = append(o.listeners, observer[T]{id: id, fn: fn})
	o.mu.Unlock()

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		o.listeners = slices.DeleteFunc(o.listeners, func(l observer[T]) bool {
			return l.id == id
		})
	}
}

// ListenerCount returns the number of registered listeners.
func (o *Observable[T]) ListenerCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.listeners)
}
