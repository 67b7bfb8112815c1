package redirect

import (
	"sort"
	"sync"
)

// RenderEvents is fired by the renderer each time a page has finished
// rendering. Subscribers run synchronously on the emitting goroutine.
type RenderEvents struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func NewRenderEvents() *RenderEvents {
	return &RenderEvents{subs: make(map[int]func())}
}

// Subscribe registers fn and returns a function that unregisters it.
// Calling the returned function more than once is harmless.
func (e *RenderEvents) Subscribe(fn func()) (cancel func()) {
	e.mu.Lock()
	id := e.next
	e.next++
	e.subs[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}
}

// Emit calls every subscriber in subscription order.
func (e *RenderEvents) Emit() {
	e.mu.Lock()
	ids := make([]int, 0, len(e.subs))
	for id := range e.subs {
		ids = append(ids, id)
	}
	fns := make([]func(), 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		fns = append(fns, e.subs[id])
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
