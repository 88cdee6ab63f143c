package pixbuf

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex parses "#rgb" or "#rrggbb" into a Color.
func ParseHex(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return Color{}, fmt.Errorf("invalid color %q: missing '#'", s)
	}

	var width int
	switch len(hex) {
	case 3:
		width = 1
	case 6:
		width = 2
	default:
		return Color{}, fmt.Errorf("invalid color %q: should be #RGB or #RRGGBB", s)
	}

	var ch [3]float64
	for i := range ch {
		v, err := strconv.ParseUint(hex[i*width:(i+1)*width], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		if width == 1 {
			v |= v << 4
		}
		ch[i] = float64(v) / 255
	}

	return Color{ch[0], ch[1], ch[2]}, nil
}
