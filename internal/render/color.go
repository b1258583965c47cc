package render

import (
	"fmt"
	"image/color"
)

// ParseColor parses "#rrggbb" or "#rgb".
func ParseColor(hex string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	if len(hex) == 0 || hex[0] != '#' {
		return c, fmt.Errorf("invalid color %q: missing #", hex)
	}
	digits := hex[1:]
	switch len(digits) {
	case 3:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6:
	default:
		return c, fmt.Errorf("invalid color %q: want #rgb or #rrggbb", hex)
	}
	var rgb [3]uint8
	for i := range rgb {
		v, ok := parseHexByte(digits[i*2 : i*2+2])
		if !ok {
			return c, fmt.Errorf("invalid color %q: bad hex digit", hex)
		}
		rgb[i] = v
	}
	c.R, c.G, c.B = rgb[0], rgb[1], rgb[2]
	return c, nil
}

func MustParseColor(hex string) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHexByte(s string) (uint8, bool) {
	var val uint8
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += uint8(c - '0')
		case c >= 'a' && c <= 'f':
			val += uint8(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += uint8(c - 'A' + 10)
		default:
			return 0, false
		}
	}
	return val, true
}
