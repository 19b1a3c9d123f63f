// Package native defines the widget platform the composition layer builds onto.
//
// A platform only needs to hand out widgets that accept property
// mutations and containers that can hold other widgets. Everything
// toolkit-specific stays behind this boundary.
package native

// Kind names the sort of widget a platform should create.
type Kind string

const (
	KindText    Kind = "text"
	KindButton  Kind = "button"
	KindImage   Kind = "image"
	KindWebView Kind = "webview"
	KindSpacer  Kind = "spacer"
	KindStack   Kind = "stack"
	KindScroll  Kind = "scroll"
	KindList    Kind = "list"
	KindGrid    Kind = "grid"
	KindTable   Kind = "table"
	KindFrame   Kind = "frame"
)

// Prop is a property key understood by platform widgets.
type Prop string

const (
	PropID          Prop = "id"
	PropText        Prop = "text"
	PropTextSize    Prop = "text-size"
	PropTextColor   Prop = "text-color"
	PropBackground  Prop = "background"
	PropPadding     Prop = "padding"
	PropSize        Prop = "size"
	PropOrientation Prop = "orientation"
	PropAlignment   Prop = "alignment"
	PropSource      Prop = "source"
	PropURL         Prop = "url"
	PropJavaScript  Prop = "javascript"
)

// Size dimensions accept pixel values or one of these sentinels.
const (
	MatchParent = -1
	WrapContent = -2
)

type Size struct {
	Width  int
	Height int
}

type Insets struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Visibility of a widget inside its parent. Hidden widgets keep their layout space.
type Visibility int

const (
	Visible Visibility = iota
	Hidden
)

func (v Visibility) String() string {
	if v == Hidden {
		return "hidden"
	}
	return "visible"
}

type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
)

// Widget is a handle to a native widget.
type Widget interface {
	Kind() Kind

	// Set applies a style or content mutation.
	Set(key Prop, value any)
	Get(key Prop) (any, bool)

	SetVisibility(v Visibility)
	Visibility() Visibility

	SetOnTap(fn func())
}

// Container is a widget holding an ordered list of child widgets.
type Container interface {
	Widget

	Add(child Widget)
	RemoveAll()
	Children() []Widget
}

// Platform creates native widgets. Errors returned here are fatal to the build that asked.
type Platform interface {
	NewWidget(kind Kind) (Widget, error)
	NewContainer(kind Kind) (Container, error)

	// Density is the number of pixels per density-independent pixel.
	Density() float64
}
