package internal

// Runtime owns the update loop of one logical UI thread.
// Writes issued while an update is being applied are queued and
// drained in FIFO order by the outermost write, never recursively.
type Runtime struct {
	tracker *Tracker
	batcher *Batcher
	queue   *UpdateQueue

	draining bool
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker: NewTracker(),
		batcher: NewBatcher(),
		queue:   NewUpdateQueue(),
	}
}

// Schedule queues an update and drains the queue unless a drain or a batch is already in progress.
func (r *Runtime) Schedule(update func()) {
	r.queue.Enqueue(update)

	if r.draining || r.batcher.IsBatching() {
		return
	}

	r.Flush()
}

func (r *Runtime) Flush() {
	if r.draining {
		return
	}

	r.draining = true
	defer func() {
		r.draining = false

		// a panicking subscriber aborts the whole cycle
		if p := recover(); p != nil {
			r.queue.Clear()
			panic(p)
		}
	}()

	r.queue.Drain()
}

func (r *Runtime) Draining() bool {
	return r.draining
}

func (r *Runtime) CurrentOwner() *Owner {
	return r.tracker.CurrentOwner()
}

func (r *Runtime) OnCleanup(fn func()) {
	owner := r.CurrentOwner()
	if owner != nil {
		owner.OnCleanup(fn)
	}
}
