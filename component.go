package sigview

import (
	"github.com/google/uuid"

	"github.com/AnatoleLucet/sigview/native"
)

// Component is a named, reusable piece of UI made of a single body.
// It builds as its body and shares the body's display ref.
type Component struct {
	body Builder

	// used when the body has no identifier of its own
	fallbackID string
	// set by ScreenAs, wins over the body's identifier
	id string
}

func NewComponent(body Builder) *Component {
	return &Component{
		body:       body,
		fallbackID: uuid.NewString(),
	}
}

func (c *Component) Body() Builder { return c.body }

func (c *Component) Build(p native.Platform) (native.Widget, error) {
	return c.body.Build(p)
}

func (c *Component) Display() *Ref[bool] { return c.body.Display() }

func (c *Component) ID() string {
	if c.id != "" {
		return c.id
	}
	if id := IDOf(c.body); id != "" {
		return id
	}
	return c.fallbackID
}

// Screen registers the component in app under its id.
func (c *Component) Screen(app *App) *Component {
	app.Register(c.ID(), c)
	return c
}

func (c *Component) ScreenAs(app *App, id string) *Component {
	c.id = id
	return c.Screen(app)
}

// Dispose disposes the body when it supports it.
func (c *Component) Dispose() {
	if d, ok := c.body.(Disposable); ok {
		d.Dispose()
	}
}
