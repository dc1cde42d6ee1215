// Package observable provides a mutex-guarded value whose changes can be
// watched through channels.
package observable

import "sync"

// Value holds a T and notifies subscribers on every change. Delivery is
// latest-wins: a slow subscriber skips intermediate values but always
// receives the most recent one.
type Value[T any] struct {
	mu     sync.Mutex
	val    T
	subs   map[uint64]chan T
	nextID uint64
}

// New returns a Value holding initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{val: initial, subs: make(map[uint64]chan T)}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.val
}

// Set replaces the value and notifies subscribers.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.val = val
	v.publish()
}

// Update applies fn to the current value atomically, stores the result and
// returns it. fn must not call back into v.
func (v *Value[T]) Update(fn func(T) T) T {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.val = fn(v.val)
	v.publish()
	return v.val
}

// Subscribe returns a channel that first yields the current value and then
// every later one, plus a cancel func that closes the channel.
func (v *Value[T]) Subscribe() (<-chan T, func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	ch := make(chan T, 1)
	ch <- v.val
	v.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// Subscribers reports how many subscriptions are open.
func (v *Value[T]) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

// publish must be called with v.mu held. Each channel has capacity 1 and v
// is its only sender, so after dropping a stale value the send cannot block.
func (v *Value[T]) publish() {
	for _, ch := range v.subs {
		select {
		case ch <- v.val:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- v.val
		}
	}
}
