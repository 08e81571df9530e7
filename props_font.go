package cascade

import (
	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/style"
)

// Font properties. The font-family op always carries a (possibly empty)
// name list; the op value names the generic family the list falls back on.

func init() {
	register(style.PropFontFamily, propEntry{
		apply: func(op bytecode.Op, cur *bytecode.Cursor, cs *style.ComputedStyle) error {
			k := style.FontFamilyKind(op.Value)
			if k == style.FontFamilyInherit || k > style.FontFamilyMonospace {
				return badValue(op)
			}
			names, err := cur.StringList()
			if err != nil {
				return err
			}
			if k == style.FontFamilyNamed && len(names) == 0 {
				return badValue(op)
			}
			cs.SetFontFamily(k, names)
			return nil
		},
		initial: func(cs *style.ComputedStyle) { cs.SetFontFamily(style.FontFamilySerif, nil) },
		reset:   func(cs *style.ComputedStyle) { cs.SetFontFamily(style.FontFamilyInherit, nil) },
		isInherit: func(cs *style.ComputedStyle) bool {
			k, _ := cs.FontFamily()
			return k == style.FontFamilyInherit
		},
		copyValue: func(dst, src *style.ComputedStyle) {
			k, names := src.FontFamily()
			dst.SetFontFamily(k, names)
		},
	})

	register(style.PropFontSize, lengthEntry(style.FontSizeMedium, style.Length{},
		style.FontSizeSet, style.FontSizeSet,
		(*style.ComputedStyle).FontSize, (*style.ComputedStyle).SetFontSize))

	register(style.PropFontStyle, keywordEntry(style.FontStyleNormal, style.FontStyleOblique,
		(*style.ComputedStyle).FontStyle, (*style.ComputedStyle).SetFontStyle))

	register(style.PropFontVariant, keywordEntry(style.FontVariantNormal, style.FontVariantSmallCaps,
		(*style.ComputedStyle).FontVariant, (*style.ComputedStyle).SetFontVariant))

	register(style.PropFontWeight, keywordEntry(style.FontWeightNormal, style.FontWeight900,
		(*style.ComputedStyle).FontWeight, (*style.ComputedStyle).SetFontWeight))
}
