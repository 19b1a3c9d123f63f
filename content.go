package sigview

import (
	"github.com/pkg/errors"

	"github.com/AnatoleLucet/sigview/internal"
	"github.com/AnatoleLucet/sigview/native"
)

// SetContentScreen makes home the current screen and builds the root of the
// application around it: a centered vertical stack that binds itself as the
// root container of app when built.
//
// The root stack is owned like an installed screen: the first screen change
// disposes it, so the stack stops rebuilding the root on its own.
func (a *App) SetContentScreen(home *Component) (native.Widget, error) {
	a.SetHomeScreen(home.ID(), home)
	home.Display().Set(true)

	root := VStack(Wrap(home).Frame(a.contentWidth, native.MatchParent)).Center()
	root.Background(a.background).
		Frame(native.MatchParent, native.MatchParent).
		Apply(func(c native.Container) { a.BindRootOnce(c) })

	scope := internal.GetRuntime().NewRootOwner()

	var w native.Widget
	err := scope.Run(func() error {
		var err error
		w, err = root.Build(a.platform)
		return err
	})
	if err != nil {
		scope.Dispose()
		return nil, errors.Wrap(err, "content screen")
	}

	if a.scope != nil {
		a.scope.Dispose()
	}
	a.scope = scope

	a.log.Info("content screen set", "screen", home.ID())
	return w, nil
}
