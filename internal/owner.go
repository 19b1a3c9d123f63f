package internal

import (
	"iter"
)

// Owner scopes subscriptions and cleanups.
// Disposing an owner disposes its children first, then runs its own cleanups.
type Owner struct {
	// cleanup functions to be called when the owner is disposed
	cleanups []func()

	disposed bool

	parent       *Owner
	prevSibling  *Owner
	nextSibling  *Owner
	childrenHead *Owner
}

// NewOwner creates an owner attached to the current owner, if any.
func (r *Runtime) NewOwner() *Owner {
	o := r.NewRootOwner()

	if parent := r.CurrentOwner(); parent != nil {
		parent.AddChild(o)
	}

	return o
}

// NewRootOwner creates an owner with no parent.
func (r *Runtime) NewRootOwner() *Owner {
	return &Owner{
		cleanups: make([]func(), 0),
	}
}

// NewChild creates an owner attached to o regardless of the current owner.
func (o *Owner) NewChild() *Owner {
	child := &Owner{
		cleanups: make([]func(), 0),
	}
	o.AddChild(child)
	return child
}

// Run fn with o as the current owner.
func (o *Owner) Run(fn func() error) error {
	r := GetRuntime()
	return r.tracker.RunWithOwner(o, fn)
}

func (parent *Owner) AddChild(child *Owner) {
	child.parent = parent
	child.prevSibling = nil
	child.nextSibling = parent.childrenHead

	if parent.childrenHead != nil {
		parent.childrenHead.prevSibling = child
	}

	parent.childrenHead = child
}

func (parent *Owner) removeChild(child *Owner) {
	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else if parent.childrenHead == child {
		parent.childrenHead = child.nextSibling
	}

	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	}

	child.parent = nil
	child.prevSibling = nil
	child.nextSibling = nil
}

func (n *Owner) Children() iter.Seq[*Owner] {
	return func(yield func(*Owner) bool) {
		child := n.childrenHead

		for child != nil {
			next := child.nextSibling
			if !yield(child) {
				return
			}

			child = next
		}
	}
}

func (n *Owner) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true

	n.DisposeChildren()

	if n.parent != nil {
		n.parent.removeChild(n)
	}

	cleanups := n.cleanups
	n.cleanups = nil
	for i := 0; i < len(cleanups); i++ {
		cleanups[i]()
	}
}

func (n *Owner) DisposeChildren() {
	for child := range n.Children() {
		child.Dispose()
	}
	n.childrenHead = nil
}

func (n *Owner) Disposed() bool {
	return n.disposed
}

// OnCleanup registers fn to run once on disposal. On a disposed owner fn runs immediately.
func (n *Owner) OnCleanup(fn func()) {
	if n.disposed {
		fn()
		return
	}
	n.cleanups = append(n.cleanups, fn)
}
