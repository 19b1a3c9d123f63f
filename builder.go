package sigview

import "github.com/AnatoleLucet/sigview/native"

// Builder produces a fresh native widget on every Build.
type Builder interface {
	Build(p native.Platform) (native.Widget, error)

	// Display decides whether a parent stack includes the builder at all.
	Display() *Ref[bool]
}

type Identifiable interface {
	ID() string
}

type Disposable interface {
	Dispose()
}

// IDOf returns the identifier of b, or "" when it has none.
func IDOf(b Builder) string {
	if id, ok := b.(Identifiable); ok {
		return id.ID()
	}
	return ""
}

// Unit of a padding amount.
type Unit int

const (
	DP Unit = iota
	PX
)

func (u Unit) pixels(p native.Platform, amount int) int {
	if u == PX {
		return amount
	}
	return int(float64(amount)*p.Density() + 0.5)
}
