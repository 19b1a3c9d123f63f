package internal

type UpdateQueue struct {
	updates []func()
}

func NewUpdateQueue() *UpdateQueue {
	return &UpdateQueue{
		updates: make([]func(), 0),
	}
}

func (q *UpdateQueue) Enqueue(fn func()) {
	q.updates = append(q.updates, fn)
}

// Drain applies queued updates one at a time, oldest first.
// Updates enqueued while draining are picked up by the same loop.
func (q *UpdateQueue) Drain() {
	for len(q.updates) > 0 {
		next := q.updates[0]
		q.updates[0] = nil
		q.updates = q.updates[1:]

		next()
	}

	q.updates = q.updates[:0]
}

func (q *UpdateQueue) Len() int {
	return len(q.updates)
}

func (q *UpdateQueue) Clear() {
	clear(q.updates)
	q.updates = q.updates[:0]
}
