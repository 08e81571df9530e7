package douceuradapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/cascade/style"
)

// cssColorNames are the color keywords of CSS 2.1, section 4.3.6.
var cssColorNames = map[string]style.RGBA{
	"aqua":    0xff00ffff,
	"black":   0xff000000,
	"blue":    0xff0000ff,
	"fuchsia": 0xffff00ff,
	"gray":    0xff808080,
	"green":   0xff008000,
	"lime":    0xff00ff00,
	"maroon":  0xff800000,
	"navy":    0xff000080,
	"olive":   0xff808000,
	"orange":  0xffffa500,
	"purple":  0xff800080,
	"red":     0xffff0000,
	"silver":  0xffc0c0c0,
	"teal":    0xff008080,
	"white":   0xffffffff,
	"yellow":  0xffffff00,
}

// parseColor reads a color term: a keyword, a hash or an rgb() function.
func parseColor(t term) (style.RGBA, error) {
	switch t.kind {
	case termKeyword:
		name := strings.ToLower(t.text)
		if name == "transparent" {
			return style.Transparent, nil
		}
		if c, ok := cssColorNames[name]; ok {
			return c, nil
		}
	case termHash:
		return hexColor(t.text)
	case termFunction:
		if t.text == "rgb" {
			return rgbColor(t.args)
		}
	}
	return 0, fmt.Errorf("%w: not a color: %v", ErrSyntax, t)
}

func hexColor(s string) (style.RGBA, error) {
	n, err := strconv.ParseUint(s, 16, 32)
	if err == nil {
		switch len(s) {
		case 3:
			r, g, b := uint8(n>>8&0xf), uint8(n>>4&0xf), uint8(n&0xf)
			return style.MakeRGB(r<<4|r, g<<4|g, b<<4|b), nil
		case 6:
			return style.MakeRGB(uint8(n>>16), uint8(n>>8), uint8(n)), nil
		}
	}
	return 0, fmt.Errorf("%w: bad hex color #%s", ErrSyntax, s)
}

// rgbColor reads the rgb() arguments: three numbers or three percentages,
// clamped to the device gamut as CSS prescribes.
func rgbColor(args []term) (style.RGBA, error) {
	args = nonComma(args)
	if len(args) != 3 {
		return 0, fmt.Errorf("%w: rgb() needs three components", ErrSyntax)
	}
	var ch [3]uint8
	for i, a := range args {
		switch a.kind {
		case termNumber:
			ch[i] = clampChannel(a.num.Float64())
		case termPercentage:
			ch[i] = clampChannel(a.num.Float64() * 255 / 100)
		default:
			return 0, fmt.Errorf("%w: bad rgb() component %v", ErrSyntax, a)
		}
	}
	return style.MakeRGB(ch[0], ch[1], ch[2]), nil
}

func clampChannel(f float64) uint8 {
	if f < 0 {
		return 0
	}
	if f > 255 {
		return 255
	}
	return uint8(f + 0.5)
}
