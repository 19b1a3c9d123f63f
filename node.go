package sigview

import (
	"image/color"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/AnatoleLucet/sigview/internal"
	"github.com/AnatoleLucet/sigview/native"
)

// Task is a deferred mutation replayed on every freshly built widget.
type Task[W native.Widget] func(p native.Platform, w W)

// Node is a builder that creates its widget with setup and then replays its
// tasks in the order they were added.
//
// Modifiers append a task to n and return n itself, so a Node must have a
// single owner while it is being composed.
type Node[W native.Widget] struct {
	id      string
	setup   func(native.Platform) (W, error)
	tasks   []Task[W]
	display *Ref[bool]

	// holds subscriptions made by modifiers, as opposed to those made by builds
	owner *internal.Owner

	// first modifier failure, reported by Build
	err error
}

func NewNode[W native.Widget](setup func(native.Platform) (W, error)) *Node[W] {
	return &Node[W]{
		id:      uuid.NewString(),
		setup:   setup,
		display: NewRef(true),
		owner:   internal.GetRuntime().NewOwner(),
	}
}

// Wrap lifts any builder into a Node so modifiers can be applied to it.
// The node shares the display ref of b.
func Wrap(b Builder) *Node[native.Widget] {
	n := NewNode(b.Build)
	n.display = b.Display()
	if id := IDOf(b); id != "" {
		n.id = id
	}
	return n
}

func (n *Node[W]) ID() string { return n.id }

func (n *Node[W]) Display() *Ref[bool] { return n.display }

// Build creates a new widget and replays every task on it.
// Subscriptions made by the tasks live as long as the current owner.
func (n *Node[W]) Build(p native.Platform) (native.Widget, error) {
	if n.err != nil {
		return nil, errors.Wrapf(n.err, "build %s", n.id)
	}

	scope := internal.GetRuntime().NewOwner()

	var w W
	err := scope.Run(func() error {
		var err error
		w, err = n.setup(p)
		if err != nil {
			return errors.Wrapf(err, "build %s", n.id)
		}

		for _, task := range n.tasks {
			task(p, w)
		}
		return nil
	})
	if err != nil {
		scope.Dispose()
		return nil, err
	}

	return w, nil
}

// Dispose releases the subscriptions made by modifiers such as DisplayIf.
func (n *Node[W]) Dispose() {
	n.owner.Dispose()
}

// Fail records err; the next Build returns it.
func (n *Node[W]) Fail(err error) *Node[W] {
	if n.err == nil {
		n.err = err
	}
	return n
}

func (n *Node[W]) AddTask(task Task[W]) *Node[W] {
	n.tasks = append(n.tasks, task)
	return n
}

// Apply adds a task that only needs the widget.
func (n *Node[W]) Apply(fn func(w W)) *Node[W] {
	return n.AddTask(func(_ native.Platform, w W) { fn(w) })
}

// WithID renames the node and tags its widgets with the same id.
func (n *Node[W]) WithID(id string) *Node[W] {
	n.id = id
	return n.Apply(func(w W) { w.Set(native.PropID, id) })
}

// Screen registers the node in app under its id.
func (n *Node[W]) Screen(app *App) *Node[W] {
	app.Register(n.id, n)
	return n
}

// ScreenAs renames the node and registers it in app.
func (n *Node[W]) ScreenAs(app *App, id string) *Node[W] {
	n.id = id
	return n.Screen(app)
}

func (n *Node[W]) Padding(amount int, unit Unit) *Node[W] {
	return n.PaddingEach(amount, amount, amount, amount, unit)
}

func (n *Node[W]) PaddingEach(left, top, right, bottom int, unit Unit) *Node[W] {
	return n.AddTask(func(p native.Platform, w W) {
		w.Set(native.PropPadding, native.Insets{
			Left:   unit.pixels(p, left),
			Top:    unit.pixels(p, top),
			Right:  unit.pixels(p, right),
			Bottom: unit.pixels(p, bottom),
		})
	})
}

// Frame fixes the widget size. native.MatchParent and native.WrapContent are accepted.
func (n *Node[W]) Frame(width, height int) *Node[W] {
	return n.Apply(func(w W) {
		w.Set(native.PropSize, native.Size{Width: width, Height: height})
	})
}

// Background accepts a color name or a #RRGGBB / #AARRGGBB string.
func (n *Node[W]) Background(c string) *Node[W] {
	rgba, err := ParseColor(c)
	if err != nil {
		return n.Fail(err)
	}
	return n.BackgroundRGBA(rgba)
}

func (n *Node[W]) BackgroundRGBA(c color.RGBA) *Node[W] {
	return n.Apply(func(w W) { w.Set(native.PropBackground, c) })
}

func (n *Node[W]) OnTap(fn func(w W)) *Node[W] {
	return n.Apply(func(w W) {
		w.SetOnTap(func() { fn(w) })
	})
}

// VisibleIf hides the widget, keeping its layout space, whenever watch is false.
// The widget stays part of its parent either way.
func (n *Node[W]) VisibleIf(watch *Ref[bool]) *Node[W] {
	return n.Apply(func(w W) {
		w.SetVisibility(visibility(watch.Get()))
		watch.OnUpdate(func(visible bool) {
			w.SetVisibility(visibility(visible))
		})
	})
}

func (n *Node[W]) VisibleIfNot(watch *Ref[bool]) *Node[W] {
	return n.VisibleIf(n.not(watch))
}

// DisplayIf keeps the display ref of n in sync with watch, so a parent
// stack drops n entirely while watch is false.
func (n *Node[W]) DisplayIf(watch *Ref[bool]) *Node[W] {
	n.display.Set(watch.Get())

	n.track(func() {
		watch.OnUpdate(func(show bool) {
			if show != n.display.Get() {
				n.display.Set(show)
			}
		})
	})

	return n
}

func (n *Node[W]) DisplayWhen(display bool) *Node[W] {
	n.display.Set(display)
	return n
}

func (n *Node[W]) DisplayIfNot(watch *Ref[bool]) *Node[W] {
	return n.DisplayIf(n.not(watch))
}

func (n *Node[W]) not(watch *Ref[bool]) *Ref[bool] {
	var not *Ref[bool]
	n.track(func() { not = Not(watch) })
	return not
}

func (n *Node[W]) track(fn func()) {
	_ = n.owner.Run(func() error {
		fn()
		return nil
	})
}

func visibility(visible bool) native.Visibility {
	if visible {
		return native.Visible
	}
	return native.Hidden
}
