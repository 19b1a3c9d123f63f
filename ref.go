package sigview

import "github.com/AnatoleLucet/sigview/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Ref is an observable value. Subscribers run synchronously, in subscription
// order, once for every value passed to Set.
type Ref[T any] struct {
	ref *internal.Ref
}

// NewRef creates a ref holding initial.
func NewRef[T any](initial T) *Ref[T] {
	return &Ref[T]{
		internal.GetRuntime().NewRef(initial),
	}
}

// Get returns the current value.
func (r *Ref[T]) Get() T {
	return as[T](r.ref.Value())
}

// Set stores v and notifies every subscriber with it.
// A Set made from inside a subscriber is queued and applied once the
// current notification round is over, before the outermost Set returns.
func (r *Ref[T]) Set(v T) {
	r.ref.Write(v)
}

// OnUpdate subscribes fn to every later Set. The current value is not replayed.
// Inside an owner (or a build) the subscription is released with it.
func (r *Ref[T]) OnUpdate(fn func(T)) *Subscription {
	return &Subscription{
		r.ref.Subscribe(func(v any) { fn(as[T](v)) }),
	}
}

// Subscribers returns the number of live subscriptions.
func (r *Ref[T]) Subscribers() int {
	return r.ref.Len()
}

type Subscription struct {
	sub *internal.Subscription
}

// Release detaches the subscriber. It is skipped even if a notification round is in flight.
func (s *Subscription) Release() { s.sub.Release() }

func (s *Subscription) Released() bool { return s.sub.Released() }

// Toggle flips a boolean ref.
func Toggle(r *Ref[bool]) {
	r.Set(!r.Get())
}

// Not returns a ref that always holds the negation of r.
func Not(r *Ref[bool]) *Ref[bool] {
	not := NewRef(!r.Get())
	r.OnUpdate(func(v bool) { not.Set(!v) })
	return not
}

// Batch runs fn and delays notifications until the outermost batch returns.
// Every value is still delivered, in order.
func Batch(fn func()) {
	internal.GetRuntime().NewBatch(fn)
}

type Owner struct {
	owner *internal.Owner
}

// NewOwner creates an owner, nested in the current one if any.
// Subscriptions made while it runs are released when it is disposed.
func NewOwner() *Owner {
	return &Owner{
		internal.GetRuntime().NewOwner(),
	}
}

// Run a function within the context of this owner.
func (o *Owner) Run(fn func() error) error { return o.owner.Run(fn) }

// Dispose this owner and all its children.
func (o *Owner) Dispose() { o.owner.Dispose() }

// Add a cleanup function to be called once when the owner is disposed.
func (o *Owner) OnCleanup(fn func()) { o.owner.OnCleanup(fn) }
