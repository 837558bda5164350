// SPDX-License-Identifier: Unlicense OR MIT

package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/kratorius/circleprogress/circle"
	"github.com/kratorius/circleprogress/internal/f32color"
)

// ParseColor parses #RGB, #RRGGBB and #AARRGGBB hex colors and SVG color
// names. Both spellings of "darkgray" and "dkgray" name the default
// circle color.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	name := strings.ToLower(s)
	switch name {
	case "darkgray", "darkgrey", "dkgray", "dkgrey":
		return circle.DefaultColor, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
}

func parseHex(h string) (color.NRGBA, error) {
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", "#"+h)
	}
	c := uint32(v)
	switch len(h) {
	case 3:
		r, g, b := c>>8&0xf, c>>4&0xf, c&0xf
		return f32color.RGB(r*0x11<<16 | g*0x11<<8 | b*0x11), nil
	case 6:
		return f32color.RGB(c), nil
	case 8:
		return f32color.ARGB(c), nil
	}
	return color.NRGBA{}, fmt.Errorf("invalid hex color %q", "#"+h)
}

// FormatColor formats c as #RRGGBB, or #AARRGGBB when translucent.
func FormatColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%08x", f32color.Packed(c))
}
