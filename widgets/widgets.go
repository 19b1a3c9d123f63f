// Package widgets holds the leaf builders: each creates one native widget
// and applies its content through tasks.
package widgets

import (
	"github.com/AnatoleLucet/sigview"
	"github.com/AnatoleLucet/sigview/native"
)

const defaultTextSize = 10.0

func leaf(kind native.Kind, init func(w native.Widget)) *sigview.Node[native.Widget] {
	return sigview.NewNode(func(p native.Platform) (native.Widget, error) {
		w, err := p.NewWidget(kind)
		if err != nil {
			return nil, err
		}
		if init != nil {
			init(w)
		}
		return w, nil
	})
}

func container(kind native.Kind) *sigview.Node[native.Container] {
	return sigview.NewNode(func(p native.Platform) (native.Container, error) {
		return p.NewContainer(kind)
	})
}

type TextView struct {
	*sigview.Node[native.Widget]
}

func Text(content string) *TextView {
	return &TextView{leaf(native.KindText, func(w native.Widget) {
		w.Set(native.PropText, content)
		w.Set(native.PropSize, native.Size{Width: native.WrapContent, Height: native.WrapContent})
		w.Set(native.PropTextSize, defaultTextSize)
	})}
}

// TextRef shows the value of ref and follows its updates.
func TextRef(ref *sigview.Ref[string]) *TextView {
	t := &TextView{leaf(native.KindText, func(w native.Widget) {
		w.Set(native.PropText, ref.Get())
		w.Set(native.PropSize, native.Size{Width: native.WrapContent, Height: native.WrapContent})
		w.Set(native.PropTextSize, defaultTextSize)
	})}

	t.Apply(func(w native.Widget) {
		ref.OnUpdate(func(s string) { w.Set(native.PropText, s) })
	})
	return t
}

func (t *TextView) TextSize(size float64) *TextView {
	t.Apply(func(w native.Widget) { w.Set(native.PropTextSize, size) })
	return t
}

func (t *TextView) TextColor(c string) *TextView {
	rgba, err := sigview.ParseColor(c)
	if err != nil {
		t.Fail(err)
		return t
	}

	t.Apply(func(w native.Widget) { w.Set(native.PropTextColor, rgba) })
	return t
}

type ButtonView struct {
	*sigview.Node[native.Widget]
}

// Button shows label and calls onTap with its widget when tapped. onTap may be nil.
func Button(label string, onTap func(w native.Widget)) *ButtonView {
	b := &ButtonView{leaf(native.KindButton, func(w native.Widget) {
		w.Set(native.PropText, label)
		w.Set(native.PropTextSize, defaultTextSize)
	})}

	if onTap != nil {
		b.OnTap(onTap)
	}
	return b
}

// Image shows the image found at source (a resource name, path or URI).
func Image(source string) *sigview.Node[native.Widget] {
	return leaf(native.KindImage, func(w native.Widget) {
		w.Set(native.PropSource, source)
	})
}

func WebView(url string) *sigview.Node[native.Widget] {
	return leaf(native.KindWebView, func(w native.Widget) {
		w.Set(native.PropJavaScript, true)
		w.Set(native.PropURL, url)
	})
}

// Scroll builds item inside a scrolling container filling its parent.
func Scroll(item sigview.Builder) *sigview.Node[native.Container] {
	return sigview.NewNode(func(p native.Platform) (native.Container, error) {
		c, err := p.NewContainer(native.KindScroll)
		if err != nil {
			return nil, err
		}
		c.Set(native.PropSize, native.Size{Width: native.MatchParent, Height: native.MatchParent})

		child, err := item.Build(p)
		if err != nil {
			return nil, err
		}
		c.Add(child)
		return c, nil
	})
}

func List() *sigview.Node[native.Container] { return container(native.KindList) }
func Grid() *sigview.Node[native.Container] { return container(native.KindGrid) }
func Table() *sigview.Node[native.Container] { return container(native.KindTable) }
func Frame() *sigview.Node[native.Container] { return container(native.KindFrame) }
