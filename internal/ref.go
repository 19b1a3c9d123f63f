package internal

// Ref is an untyped observable value with an ordered subscriber list.
type Ref struct {
	value any

	// subscribers in subscription order, head.prev loops to the tail
	subsHead *Subscription
	seq      uint64
}

type Subscription struct {
	ref *Ref
	fn  func(any)
	seq uint64

	released bool

	prev *Subscription
	next *Subscription
}

func (r *Runtime) NewRef(initial any) *Ref {
	return &Ref{value: initial}
}

func (ref *Ref) Value() any {
	return ref.value
}

// Write schedules v on the calling goroutine's runtime.
// Outside of an update cycle it is applied before Write returns.
func (ref *Ref) Write(v any) {
	GetRuntime().Schedule(func() { ref.apply(v) })
}

func (ref *Ref) apply(v any) {
	ref.value = v

	if ref.subsHead == nil {
		return
	}

	// subscribers added during this fan-out wait for the next value
	last := ref.seq
	for s := ref.subsHead; s != nil && s.seq <= last; s = s.next {
		if !s.released {
			s.fn(v)
		}
	}
}

// Subscribe appends fn to the subscriber list. The subscription is
// released with the current owner when there is one.
func (ref *Ref) Subscribe(fn func(any)) *Subscription {
	ref.seq++
	s := &Subscription{ref: ref, fn: fn, seq: ref.seq}
	ref.addSub(s)

	GetRuntime().OnCleanup(s.Release)

	return s
}

func (ref *Ref) Len() int {
	n := 0
	for s := ref.subsHead; s != nil; s = s.next {
		n++
	}
	return n
}

func (ref *Ref) addSub(s *Subscription) {
	if ref.subsHead == nil {
		ref.subsHead = s
		s.prev = s // loop to self
		s.next = nil
		return
	}

	tail := ref.subsHead.prev
	tail.next = s
	s.prev = tail
	s.next = nil
	ref.subsHead.prev = s
}

// removeSub unlinks s but keeps s.next so an in-flight fan-out can step past it.
func (ref *Ref) removeSub(s *Subscription) {
	head := ref.subsHead
	if head == nil {
		return
	}
	tail := head.prev

	if s == head {
		ref.subsHead = s.next
		if ref.subsHead != nil {
			ref.subsHead.prev = tail
		}
		return
	}

	s.prev.next = s.next
	if s == tail {
		head.prev = s.prev
	} else {
		s.next.prev = s.prev
	}
}

func (s *Subscription) Release() {
	if s.released {
		return
	}
	s.released = true
	s.ref.removeSub(s)
}

func (s *Subscription) Released() bool {
	return s.released
}
