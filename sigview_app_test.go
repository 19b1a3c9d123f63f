package sigview

import (
	"bytes"
	"errors"
	"image/color"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnatoleLucet/sigview/native"
	"github.com/AnatoleLucet/sigview/native/headless"
)

func newTestApp(t *testing.T, opts ...Option) (*App, *headless.Platform, native.Container) {
	t.Helper()

	p := headless.New()
	app := NewApp(p, append([]Option{WithLogger(slog.New(slog.DiscardHandler))}, opts...)...)

	root, err := p.NewContainer(native.KindFrame)
	require.NoError(t, err)

	return app, p, root
}

func screenText(t *testing.T, root native.Container) string {
	t.Helper()

	children := root.Children()
	require.Len(t, children, 1)
	text, _ := headless.Text(children[0])
	return text
}

func TestRegistry(t *testing.T) {
	t.Run("register and lookup", func(t *testing.T) {
		app, _, _ := newTestApp(t)
		a := label("a")

		assert.False(t, app.HasRegistered("a"))
		app.Register("a", a)
		assert.True(t, app.HasRegistered("a"))

		b, ok := app.Lookup("a")
		require.True(t, ok)
		assert.Same(t, a, b)

		_, ok = app.Lookup("missing")
		assert.False(t, ok)
	})

	t.Run("last registration wins", func(t *testing.T) {
		app, _, _ := newTestApp(t)
		second := label("second")

		app.Register("x", label("first"))
		app.Register("x", second)

		b, _ := app.Lookup("x")
		assert.Same(t, second, b)
	})

	t.Run("screen modifier registers the node", func(t *testing.T) {
		app, _, _ := newTestApp(t)

		n := label("a").ScreenAs(app, "a")
		b, ok := app.Lookup("a")
		require.True(t, ok)
		assert.Same(t, n, b)
	})

	t.Run("bind root once", func(t *testing.T) {
		app, p, root := newTestApp(t)
		other, _ := p.NewContainer(native.KindFrame)

		assert.Equal(t, Uninitialized, app.State())
		assert.True(t, app.BindRootOnce(root))
		assert.False(t, app.BindRootOnce(other))

		bound, ok := app.Root()
		require.True(t, ok)
		assert.Same(t, root, bound)
	})
}

func TestNavigation(t *testing.T) {
	t.Run("refused without a root", func(t *testing.T) {
		app, _, _ := newTestApp(t)
		home := label("home")
		app.SetHomeScreen("home", home)

		ok, err := app.RequestScreenChange(label("a"))
		assert.NoError(t, err)
		assert.False(t, ok)

		assert.Same(t, home, app.CurrentScreen())
		assert.Nil(t, app.PreviousScreen())
		assert.Equal(t, Uninitialized, app.State())
	})

	t.Run("installs the target", func(t *testing.T) {
		app, _, root := newTestApp(t)
		app.BindRootOnce(root)
		a := label("a")

		ok, err := app.RequestScreenChange(a)
		require.NoError(t, err)
		assert.True(t, ok)

		assert.Equal(t, "a", screenText(t, root))
		assert.Same(t, a, app.CurrentScreen())
		assert.Equal(t, Bound, app.State())
	})

	t.Run("back navigation toggles", func(t *testing.T) {
		app, _, root := newTestApp(t)
		app.BindRootOnce(root)
		a, b, c := label("a"), label("b"), label("c")

		for _, s := range []Builder{c, a, b} {
			ok, err := app.RequestScreenChange(s)
			require.NoError(t, err)
			require.True(t, ok)
		}
		assert.Equal(t, BoundWithHistory, app.State())

		seen := []string{}
		for range 4 {
			ok, err := app.RequestPreviousScreen()
			require.NoError(t, err)
			require.True(t, ok)
			seen = append(seen, screenText(t, root))
		}

		assert.Equal(t, []string{"a", "b", "a", "b"}, seen)
		assert.Same(t, b, app.CurrentScreen())
		assert.Same(t, a, app.PreviousScreen())
	})

	t.Run("by id", func(t *testing.T) {
		app, _, root := newTestApp(t)
		app.BindRootOnce(root)
		app.Register("a", label("a"))

		ok, err := app.RequestScreenChangeID("a")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "a", screenText(t, root))

		ok, err = app.RequestScreenChangeID("missing")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, "a", screenText(t, root))
	})

	t.Run("no previous screen", func(t *testing.T) {
		app, _, root := newTestApp(t)
		app.BindRootOnce(root)

		ok, err := app.RequestPreviousScreen()
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("home screen becomes the previous screen", func(t *testing.T) {
		app, _, root := newTestApp(t)
		app.BindRootOnce(root)
		home := label("home")
		app.SetHomeScreen("home", home)

		_, err := app.RequestScreenChange(label("a"))
		require.NoError(t, err)
		assert.Same(t, home, app.PreviousScreen())

		ok, err := app.RequestPreviousScreen()
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "home", screenText(t, root))
	})

	t.Run("failed builds leave everything untouched", func(t *testing.T) {
		app, _, root := newTestApp(t)
		app.BindRootOnce(root)
		a := label("a")
		_, err := app.RequestScreenChange(a)
		require.NoError(t, err)

		ok, err := app.RequestScreenChange(label("bad").Background("nope"))
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrInvalidColor)

		assert.Same(t, a, app.CurrentScreen())
		assert.Nil(t, app.PreviousScreen())
		assert.Equal(t, "a", screenText(t, root))
	})

	t.Run("leaving a screen releases its subscriptions", func(t *testing.T) {
		app, _, root := newTestApp(t)
		app.BindRootOnce(root)
		shown := NewRef(true)

		_, err := app.RequestScreenChange(label("a").VisibleIf(shown))
		require.NoError(t, err)
		assert.Equal(t, 1, shown.Subscribers())

		_, err = app.RequestScreenChange(label("b"))
		require.NoError(t, err)
		assert.Equal(t, 0, shown.Subscribers())
	})

	t.Run("platform errors are returned", func(t *testing.T) {
		boom := errors.New("boom")
		p := headless.New(headless.FailOn(native.KindText, boom))
		app := NewApp(p, WithLogger(slog.New(slog.DiscardHandler)))
		root, err := p.NewContainer(native.KindFrame)
		require.NoError(t, err)
		app.BindRootOnce(root)

		ok, err := app.RequestScreenChange(label("a"))
		assert.False(t, ok)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("refusals are logged", func(t *testing.T) {
		var buf bytes.Buffer
		app := NewApp(headless.New(), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

		app.RequestScreenChangeID("missing")

		assert.Contains(t, buf.String(), "screen change refused")
		assert.Contains(t, buf.String(), "reason=\"not registered\"")
		assert.Contains(t, buf.String(), "screen=missing")
	})

	t.Run("logger is shared with callers", func(t *testing.T) {
		var buf bytes.Buffer
		app := NewApp(headless.New(), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

		app.Logger().Error("navigation failed", "screen", "details")

		assert.Contains(t, buf.String(), "navigation failed")
		assert.Contains(t, buf.String(), "screen=details")
	})
}

func TestAttributes(t *testing.T) {
	t.Run("absent until set", func(t *testing.T) {
		app, _, _ := newTestApp(t)

		_, ok := app.Attribute("x", "k")
		assert.False(t, ok)

		app.SetAttribute("x", "k", "v")
		v, ok := app.Attribute("x", "k")
		assert.True(t, ok)
		assert.Equal(t, "v", v)

		_, ok = app.Attribute("x", "other")
		assert.False(t, ok)
		assert.False(t, app.HasAttribute("y", "k"))
	})

	t.Run("empty values are present", func(t *testing.T) {
		app, _, _ := newTestApp(t)

		app.SetAttribute("x", "k", "")
		assert.True(t, app.HasAttribute("x", "k"))
	})

	t.Run("attribute set of a node", func(t *testing.T) {
		app, _, _ := newTestApp(t)
		n := label("a").WithID("a")

		attrs := app.Attributes(n)
		attrs.Set("role", "title")

		v, ok := app.Attribute("a", "role")
		assert.True(t, ok)
		assert.Equal(t, "title", v)
		assert.True(t, attrs.Has("role"))
		assert.Equal(t, "a", attrs.ID())
	})

	t.Run("seed", func(t *testing.T) {
		app, _, _ := newTestApp(t)
		app.SeedAttributes(map[string]map[string]string{
			"a": {"k": "1"},
			"b": {"k": "2", "j": "3"},
		})

		v, _ := app.Attribute("b", "j")
		assert.Equal(t, "3", v)
		assert.True(t, app.HasAttribute("a", "k"))
	})
}

func TestContentScreen(t *testing.T) {
	t.Run("binds the root around the home screen", func(t *testing.T) {
		app, _, _ := newTestApp(t, WithContentWidth(480), WithBackground("black"))
		home := NewComponent(label("home")).ScreenAs(app, "home")
		home.Display().Set(false)

		w, err := app.SetContentScreen(home)
		require.NoError(t, err)

		root, ok := app.Root()
		require.True(t, ok)
		assert.Same(t, w, root)
		assert.Same(t, home, app.CurrentScreen())
		assert.True(t, home.Display().Get())
		assert.True(t, app.HasRegistered("home"))

		bg, _ := root.Get(native.PropBackground)
		assert.Equal(t, color.RGBA{A: 0xff}, bg)
		align, _ := root.Get(native.PropAlignment)
		assert.Equal(t, native.AlignCenter, align)

		require.Len(t, root.Children(), 1)
		size, _ := root.Children()[0].Get(native.PropSize)
		assert.Equal(t, native.Size{Width: 480, Height: native.MatchParent}, size)
	})

	t.Run("navigation replaces the home screen", func(t *testing.T) {
		app, _, _ := newTestApp(t)
		home := NewComponent(label("home"))
		details := label("details").ScreenAs(app, "details")

		w, err := app.SetContentScreen(home)
		require.NoError(t, err)
		root := mustContainer(w)

		ok, err := app.RequestScreenChangeID("details")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "details", screenText(t, root))
		assert.Same(t, details, app.CurrentScreen())

		ok, err = app.RequestPreviousScreen()
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "home", screenText(t, root))
	})

	t.Run("home display no longer drives the root after navigating", func(t *testing.T) {
		app, _, _ := newTestApp(t)
		showHome := NewRef(true)
		home := NewComponent(label("home").DisplayIf(showHome))
		details := label("details").ScreenAs(app, "details")

		w, err := app.SetContentScreen(home)
		require.NoError(t, err)
		root := mustContainer(w)
		assert.Equal(t, 1, home.Display().Subscribers())

		ok, err := app.RequestScreenChangeID("details")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 0, home.Display().Subscribers())

		showHome.Set(false)
		assert.Equal(t, "details", screenText(t, root))

		showHome.Set(true)
		assert.Equal(t, "details", screenText(t, root))
		assert.Same(t, details, app.CurrentScreen())
	})
}
