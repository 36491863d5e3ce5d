// Package platform provides the frame scheduling and resize notification
// services a field.ParticleField runs on, plus a headless implementation.
package platform

// Scheduler queues per-frame callbacks.
type Scheduler struct {
	queue []func()
}

// RequestFrame schedules fn for the next RunFrame.
func (s *Scheduler) RequestFrame(fn func()) {
	s.queue = append(s.queue, fn)
}

// RunFrame runs the callbacks queued before the call. Callbacks they request
// wait for the following frame. It returns how many callbacks ran.
func (s *Scheduler) RunFrame() int {
	batch := s.queue
	s.queue = nil
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Pending returns the number of callbacks waiting for the next frame.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// ResizeBus fans viewport changes out to listeners.
type ResizeBus struct {
	listeners []listener
	nextID    uint64
}

type listener struct {
	id uint64
	fn func()
}

// ListenResize registers fn and returns its removal handle. Removing twice
// is harmless.
func (b *ResizeBus) ListenResize(fn func()) (remove func()) {
	id := b.nextID
	b.nextID++
	b.listeners = append(b.listeners, listener{id: id, fn: fn})
	return func() { b.remove(id) }
}

func (b *ResizeBus) remove(id uint64) {
	for i, l := range b.listeners {
		if l.id == id {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Notify calls every listener in registration order.
func (b *ResizeBus) Notify() {
	// Snapshot so a listener may unsubscribe while being notified.
	ls := append([]listener(nil), b.listeners...)
	for _, l := range ls {
		l.fn()
	}
}

// Len returns the number of registered listeners.
func (b *ResizeBus) Len() int {
	return len(b.listeners)
}
