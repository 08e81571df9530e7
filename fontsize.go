package cascade

import (
	"fmt"

	"github.com/npillmayer/cascade/style"
)

// Scaling factors for the absolute size keywords xx-small through
// xx-large, relative to medium, as recommended by CSS2.
var fontSizeFactors = [7]style.Fixed{
	style.FromFloat(0.6),
	style.FromFloat(0.75),
	style.FromFloat(8.0 / 9.0),
	style.One,
	style.FromFloat(1.2),
	style.FromFloat(1.5),
	style.FromFloat(2),
}

var fontSizeStep = style.FromFloat(1.2)

// DefaultFontSize is the built-in font size resolver: medium is 16px, the
// other keyword sizes scale from it, larger and smaller step the parent
// size by 1.2, and em, ex and percentage sizes resolve against the parent.
// A zero parent length means the node has no parent; relative sizes then
// resolve against the user agent default instead.
func DefaultFontSize(parent style.Length, k style.FontSizeKind, v style.Length) (style.Length, error) {
	medium := style.Length{Value: style.F(16), Unit: style.UnitPX}
	psize := parent
	if psize == (style.Length{}) {
		psize = medium
	}
	switch k {
	case style.FontSizeXXSmall, style.FontSizeXSmall, style.FontSizeSmall,
		style.FontSizeMedium, style.FontSizeLarge, style.FontSizeXLarge,
		style.FontSizeXXLarge:
		f := fontSizeFactors[k-style.FontSizeXXSmall]
		return style.Length{Value: medium.Value.Mul(f), Unit: medium.Unit}, nil
	case style.FontSizeLarger:
		return style.Length{Value: psize.Value.Mul(fontSizeStep), Unit: psize.Unit}, nil
	case style.FontSizeSmaller:
		return style.Length{Value: psize.Value.Div(fontSizeStep), Unit: psize.Unit}, nil
	case style.FontSizeSet:
		switch v.Unit {
		case style.UnitEM:
			return style.Length{Value: v.Value.Mul(psize.Value), Unit: psize.Unit}, nil
		case style.UnitEX:
			return style.Length{Value: v.Value.Mul(psize.Value).Mul(style.FromFloat(0.5)), Unit: psize.Unit}, nil
		case style.UnitPCT:
			return style.Length{Value: v.Value.Mul(psize.Value).Div(style.F(100)), Unit: psize.Unit}, nil
		}
		if v.Unit.IsAbsolute() {
			return v, nil
		}
		return style.Length{}, fmt.Errorf("%w: font size in %s", ErrBadParameter, v.Unit)
	}
	return style.Length{}, fmt.Errorf("%w: font size kind %d", ErrBadParameter, k)
}

// defaultExRatio estimates the x-height at half an em, the usual fallback
// absent real font metrics.
func defaultExRatio(style.Length) style.Fixed {
	return style.FromFloat(0.5)
}
