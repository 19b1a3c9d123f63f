package sigview

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/AnatoleLucet/sigview/internal"
	"github.com/AnatoleLucet/sigview/native"
)

// NavState is the navigation state of an App.
type NavState int

const (
	// Uninitialized: no root container bound yet.
	Uninitialized NavState = iota
	// Bound: root bound, no previous screen.
	Bound
	// BoundWithHistory: root bound and a previous screen to go back to.
	BoundWithHistory
)

func (s NavState) String() string {
	switch s {
	case Bound:
		return "bound"
	case BoundWithHistory:
		return "bound-with-history"
	default:
		return "uninitialized"
	}
}

// App is the application context: a registry of builders by id, an
// attribute store, and a one-level screen history installed into a single
// root container.
//
// History holds exactly one previous screen. Going back swaps the current
// and previous screens, so repeated back navigation toggles between the two.
type App struct {
	platform native.Platform
	log      *slog.Logger

	root       native.Container
	items      map[string]Builder
	attributes map[string]map[string]string

	current  Builder
	previous Builder

	// owns the build of the installed screen
	scope *internal.Owner

	contentWidth int
	background   string
}

type Option func(*App)

func WithLogger(log *slog.Logger) Option {
	return func(a *App) { a.log = log }
}

// WithContentWidth sets the width of the home screen installed by SetContentScreen.
func WithContentWidth(width int) Option {
	return func(a *App) { a.contentWidth = width }
}

// WithBackground sets the root background installed by SetContentScreen.
func WithBackground(color string) Option {
	return func(a *App) { a.background = color }
}

func NewApp(platform native.Platform, opts ...Option) *App {
	a := &App{
		platform:     platform,
		log:          slog.Default(),
		items:        make(map[string]Builder),
		attributes:   make(map[string]map[string]string),
		contentWidth: 1000,
		background:   "white",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *App) Platform() native.Platform { return a.platform }

func (a *App) Logger() *slog.Logger { return a.log }

// Register maps id to b. A later registration of the same id wins.
func (a *App) Register(id string, b Builder) {
	a.items[id] = b
}

func (a *App) HasRegistered(id string) bool {
	_, ok := a.items[id]
	return ok
}

func (a *App) Lookup(id string) (Builder, bool) {
	b, ok := a.items[id]
	return b, ok
}

// BindRootOnce binds the root container unless one is already bound.
// It reports whether c became the root.
func (a *App) BindRootOnce(c native.Container) bool {
	if a.root != nil {
		return false
	}

	a.root = c
	a.log.Debug("root bound")
	return true
}

func (a *App) Root() (native.Container, bool) {
	return a.root, a.root != nil
}

// SetHomeScreen makes b the current screen without installing it and registers it under id.
func (a *App) SetHomeScreen(id string, b Builder) {
	a.current = b
	a.Register(id, b)
}

func (a *App) CurrentScreen() Builder { return a.current }

func (a *App) PreviousScreen() Builder { return a.previous }

func (a *App) State() NavState {
	switch {
	case a.root == nil:
		return Uninitialized
	case a.previous != nil:
		return BoundWithHistory
	default:
		return Bound
	}
}

// RequestScreenChange builds target and installs it as the only child of the root.
//
// It returns false without an error when no root is bound. A failing build
// returns false and the error, and leaves the root and both screen slots untouched.
func (a *App) RequestScreenChange(target Builder) (bool, error) {
	if a.root == nil {
		a.log.Warn("screen change refused", "reason", "root not bound", "screen", IDOf(target))
		return false, nil
	}
	if target == nil {
		a.log.Warn("screen change refused", "reason", "no target")
		return false, nil
	}

	scope := internal.GetRuntime().NewRootOwner()

	var w native.Widget
	err := scope.Run(func() error {
		var err error
		w, err = target.Build(a.platform)
		return err
	})
	if err != nil {
		scope.Dispose()
		return false, errors.Wrapf(err, "screen change to %q", IDOf(target))
	}

	a.previous = a.current
	a.root.RemoveAll()
	a.root.Add(w)
	a.current = target

	if a.scope != nil {
		a.scope.Dispose()
	}
	a.scope = scope

	a.log.Debug("screen changed", "screen", IDOf(target), "previous", idOrEmpty(a.previous))
	return true, nil
}

// RequestScreenChangeID navigates to the builder registered under id.
func (a *App) RequestScreenChangeID(id string) (bool, error) {
	b, ok := a.items[id]
	if !ok {
		a.log.Warn("screen change refused", "reason", "not registered", "screen", id)
		return false, nil
	}

	return a.RequestScreenChange(b)
}

// RequestPreviousScreen navigates to the previous screen, which then becomes
// the current one while the current one becomes the previous.
func (a *App) RequestPreviousScreen() (bool, error) {
	if a.previous == nil {
		a.log.Warn("screen change refused", "reason", "no previous screen")
		return false, nil
	}

	return a.RequestScreenChange(a.previous)
}

func idOrEmpty(b Builder) string {
	if b == nil {
		return ""
	}
	return IDOf(b)
}
