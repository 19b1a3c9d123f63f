package sigview

import (
	"github.com/AnatoleLucet/sigview/native"
	"github.com/AnatoleLucet/sigview/native/headless"
)

func label(text string) *Node[native.Widget] {
	return NewNode(func(p native.Platform) (native.Widget, error) {
		w, err := p.NewWidget(native.KindText)
		if err != nil {
			return nil, err
		}
		w.Set(native.PropText, text)
		return w, nil
	})
}

// describe flattens the children of c into "text" for labels and "gap" for spacers.
func describe(c native.Container) []string {
	out := []string{}
	for _, child := range c.Children() {
		switch child.Kind() {
		case native.KindSpacer:
			out = append(out, "gap")
		default:
			text, _ := headless.Text(child)
			out = append(out, text)
		}
	}
	return out
}

func mustContainer(w native.Widget) native.Container {
	return w.(native.Container)
}
