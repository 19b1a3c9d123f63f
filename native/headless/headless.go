// Package headless is an in-memory widget platform.
package headless

import (
	"fmt"
	"maps"

	"github.com/pkg/errors"

	"github.com/AnatoleLucet/sigview/native"
)

type Platform struct {
	density float64
	failOn  map[native.Kind]error
	created map[native.Kind]int
	serial  int
}

type Option func(*Platform)

func WithDensity(density float64) Option {
	return func(p *Platform) { p.density = density }
}

// FailOn makes every creation of kind fail with err.
func FailOn(kind native.Kind, err error) Option {
	return func(p *Platform) { p.failOn[kind] = err }
}

func New(opts ...Option) *Platform {
	p := &Platform{
		density: 1,
		failOn:  make(map[native.Kind]error),
		created: make(map[native.Kind]int),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Platform) NewWidget(kind native.Kind) (native.Widget, error) {
	return p.newWidget(kind)
}

func (p *Platform) NewContainer(kind native.Kind) (native.Container, error) {
	w, err := p.newWidget(kind)
	if err != nil {
		return nil, err
	}

	return &Container{Widget: w}, nil
}

func (p *Platform) newWidget(kind native.Kind) (*Widget, error) {
	if err, ok := p.failOn[kind]; ok {
		return nil, errors.Wrapf(err, "create %s", kind)
	}

	p.serial++
	p.created[kind]++

	return &Widget{
		kind:   kind,
		serial: p.serial,
		props:  make(map[native.Prop]any),
	}, nil
}

func (p *Platform) Density() float64 {
	return p.density
}

// Created reports how many widgets of kind were created so far.
func (p *Platform) Created(kind native.Kind) int {
	return p.created[kind]
}

type Widget struct {
	kind       native.Kind
	serial     int
	props      map[native.Prop]any
	visibility native.Visibility
	onTap      func()
}

func (w *Widget) Kind() native.Kind { return w.kind }

// Serial is the creation order of the widget on its platform, starting at 1.
func (w *Widget) Serial() int { return w.serial }

func (w *Widget) Set(key native.Prop, value any) { w.props[key] = value }

func (w *Widget) Get(key native.Prop) (any, bool) {
	v, ok := w.props[key]
	return v, ok
}

// Props returns a copy of every property set on the widget.
func (w *Widget) Props() map[native.Prop]any { return maps.Clone(w.props) }

func (w *Widget) SetVisibility(v native.Visibility) { w.visibility = v }

func (w *Widget) Visibility() native.Visibility { return w.visibility }

func (w *Widget) SetOnTap(fn func()) { w.onTap = fn }

func (w *Widget) String() string {
	label := fmt.Sprintf("%s#%d", w.kind, w.serial)
	if text, ok := w.props[native.PropText]; ok {
		label += fmt.Sprintf(" %q", text)
	}
	if w.visibility == native.Hidden {
		label += " (hidden)"
	}
	return label
}

type Container struct {
	*Widget

	children []native.Widget
}

func (c *Container) Add(child native.Widget) {
	c.children = append(c.children, child)
}

func (c *Container) RemoveAll() {
	c.children = nil
}

func (c *Container) Children() []native.Widget {
	return append([]native.Widget(nil), c.children...)
}

// Tap invokes the tap handler of w and reports whether one was set.
func Tap(w native.Widget) bool {
	var hw *Widget
	switch v := w.(type) {
	case *Widget:
		hw = v
	case *Container:
		hw = v.Widget
	default:
		return false
	}

	if hw.onTap == nil {
		return false
	}
	hw.onTap()
	return true
}

// Text returns the text property of w, if any.
func Text(w native.Widget) (string, bool) {
	v, ok := w.Get(native.PropText)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
