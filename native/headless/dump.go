package headless

import (
	"fmt"

	"github.com/m1gwings/treedrawer/tree"

	"github.com/AnatoleLucet/sigview/native"
)

// Dump draws the widget tree rooted at w.
func Dump(w native.Widget) string {
	t := tree.NewTree(tree.NodeString(label(w)))
	addChildren(t, w)
	return t.String()
}

func addChildren(t *tree.Tree, w native.Widget) {
	c, ok := w.(native.Container)
	if !ok {
		return
	}

	for _, child := range c.Children() {
		addChildren(t.AddChild(tree.NodeString(label(child))), child)
	}
}

func label(w native.Widget) string {
	if s, ok := w.(fmt.Stringer); ok {
		return s.String()
	}
	return string(w.Kind())
}
