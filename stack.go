package sigview

import (
	"github.com/pkg/errors"

	"github.com/AnatoleLucet/sigview/internal"
	"github.com/AnatoleLucet/sigview/native"
)

// Stack lays out its displayed children along one axis.
//
// Its widget subscribes to the display ref of every child and rebuilds all
// of its native children whenever one of them flips. There is no diffing.
type Stack struct {
	*Node[native.Container]

	children    []Builder
	orientation native.Orientation
	spacing     int
}

func NewStack(orientation native.Orientation, spacing int) *Stack {
	s := &Stack{
		orientation: orientation,
		spacing:     max(spacing, 0),
	}
	s.Node = NewNode(s.setup)
	return s
}

func VStack(children ...Builder) *Stack {
	return NewStack(native.Vertical, 0).Add(children...)
}

func HStack(children ...Builder) *Stack {
	return NewStack(native.Horizontal, 0).Add(children...)
}

func VStackSpaced(spacing int, children ...Builder) *Stack {
	return NewStack(native.Vertical, spacing).Add(children...)
}

func HStackSpaced(spacing int, children ...Builder) *Stack {
	return NewStack(native.Horizontal, spacing).Add(children...)
}

// Add appends children. Children added after a build only show up in later builds.
func (s *Stack) Add(children ...Builder) *Stack {
	s.children = append(s.children, children...)
	return s
}

// AddGroup appends every item of g, then extra.
func AddGroup[T Builder](s *Stack, g *Group[T], extra ...Builder) *Stack {
	g.Each(func(item T) { s.children = append(s.children, item) })
	return s.Add(extra...)
}

func (s *Stack) Children() []Builder {
	return append([]Builder(nil), s.children...)
}

func (s *Stack) Orientation() native.Orientation { return s.orientation }

func (s *Stack) Spacing() int { return s.spacing }

func (s *Stack) Center() *Stack {
	s.Apply(func(c native.Container) { c.Set(native.PropAlignment, native.AlignCenter) })
	return s
}

func (s *Stack) setup(p native.Platform) (native.Container, error) {
	c, err := p.NewContainer(native.KindStack)
	if err != nil {
		return nil, err
	}

	c.Set(native.PropOrientation, s.orientation)
	if s.orientation == native.Vertical {
		c.Set(native.PropSize, native.Size{Width: native.MatchParent, Height: native.WrapContent})
	} else {
		c.Set(native.PropSize, native.Size{Width: native.WrapContent, Height: native.MatchParent})
	}

	// setup runs inside the build owner of this stack
	build := internal.GetRuntime().CurrentOwner()
	r := &rebuilder{stack: s, platform: p, container: c, parent: build}

	for _, child := range s.children {
		child.Display().OnUpdate(func(bool) {
			if err := r.rebuild(); err != nil {
				panic(err)
			}
		})
	}

	if err := r.rebuild(); err != nil {
		return nil, err
	}

	return c, nil
}

type rebuilder struct {
	stack     *Stack
	platform  native.Platform
	container native.Container

	parent *internal.Owner
	scope  *internal.Owner
}

// rebuild replaces every native child. Builds of the previous round are disposed first.
func (r *rebuilder) rebuild() error {
	if r.scope != nil {
		r.scope.Dispose()
	}
	if r.parent != nil {
		r.scope = r.parent.NewChild()
	} else {
		r.scope = internal.GetRuntime().NewRootOwner()
	}

	r.container.RemoveAll()

	return r.scope.Run(func() error {
		included := 0
		for _, child := range r.stack.children {
			if !child.Display().Get() {
				continue
			}

			if included > 0 && r.stack.spacing > 0 {
				spacer, err := SpacerFor(r.stack.orientation, r.stack.spacing).Build(r.platform)
				if err != nil {
					return errors.Wrap(err, "spacer")
				}
				r.container.Add(spacer)
			}

			w, err := child.Build(r.platform)
			if err != nil {
				return err
			}
			r.container.Add(w)
			included++
		}
		return nil
	})
}

// Spacer is an empty widget of a fixed size.
func Spacer(width, height int) *Node[native.Widget] {
	return NewNode(func(p native.Platform) (native.Widget, error) {
		w, err := p.NewWidget(native.KindSpacer)
		if err != nil {
			return nil, err
		}
		w.Set(native.PropSize, native.Size{Width: width, Height: height})
		return w, nil
	})
}

// SpacerFor returns the gap widget a stack of the given orientation inserts between children.
func SpacerFor(orientation native.Orientation, spacing int) *Node[native.Widget] {
	if orientation == native.Vertical {
		return Spacer(0, spacing)
	}
	return Spacer(spacing, 0)
}

// Group is a fixed list of builders that can be added to a stack in one call.
type Group[T Builder] struct {
	items []T
}

func NewGroup[T Builder](items ...T) *Group[T] {
	return &Group[T]{items: append([]T(nil), items...)}
}

func (g *Group[T]) Len() int { return len(g.items) }

func (g *Group[T]) At(i int) T { return g.items[i] }

func (g *Group[T]) Items() []T { return append([]T(nil), g.items...) }

func (g *Group[T]) Each(fn func(T)) *Group[T] {
	for _, item := range g.items {
		fn(item)
	}
	return g
}

func (g *Group[T]) EachIndexed(fn func(int, T)) *Group[T] {
	for i, item := range g.items {
		fn(i, item)
	}
	return g
}
