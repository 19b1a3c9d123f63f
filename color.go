package sigview

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

var ErrInvalidColor = errors.New("invalid color")

// ParseColor understands SVG color names, #RRGGBB and #AARRGGBB.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	if hex, ok := strings.CutPrefix(name, "#"); ok {
		return parseHex(s, hex)
	}

	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}

	return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q", s)
}

func parseHex(s, hex string) (color.RGBA, error) {
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(ErrInvalidColor, "%q", s)
	}

	c := color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
	if len(hex) == 8 {
		c.A = uint8(v >> 24)
	}
	return c, nil
}
