package cascade

import (
	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/style"
)

// Text properties: color, direction, spacing, alignment, decoration.

func init() {
	register(style.PropColor, colorEntry(style.ColorSet, style.MakeRGB(0, 0, 0),
		(*style.ComputedStyle).Color, (*style.ComputedStyle).SetColor))

	register(style.PropDirection, keywordEntry(style.DirectionLTR, style.DirectionRTL,
		(*style.ComputedStyle).Direction, (*style.ComputedStyle).SetDirection))

	register(style.PropLetterSpacing, lengthEntry(style.SpacingNormal, style.Length{},
		style.SpacingSet, style.SpacingSet,
		(*style.ComputedStyle).LetterSpacing, (*style.ComputedStyle).SetLetterSpacing))
	register(style.PropWordSpacing, lengthEntry(style.SpacingNormal, style.Length{},
		style.SpacingSet, style.SpacingSet,
		(*style.ComputedStyle).WordSpacing, (*style.ComputedStyle).SetWordSpacing))

	register(style.PropLineHeight, propEntry{
		apply: func(op bytecode.Op, cur *bytecode.Cursor, cs *style.ComputedStyle) error {
			switch style.LineHeightKind(op.Value) {
			case style.LineHeightNormal:
				cs.SetLineHeight(style.LineHeightNormal, style.Length{})
				return nil
			case style.LineHeightNumber:
				f, err := cur.Fixed()
				if err != nil {
					return err
				}
				cs.SetLineHeight(style.LineHeightNumber, style.Length{Value: f})
				return nil
			case style.LineHeightSet:
				l, err := cur.Length()
				if err != nil {
					return err
				}
				cs.SetLineHeight(style.LineHeightSet, l)
				return nil
			}
			return badValue(op)
		},
		initial: func(cs *style.ComputedStyle) { cs.SetLineHeight(style.LineHeightNormal, style.Length{}) },
		reset:   func(cs *style.ComputedStyle) { cs.SetLineHeight(style.LineHeightInherit, style.Length{}) },
		isInherit: func(cs *style.ComputedStyle) bool {
			k, _ := cs.LineHeight()
			return k == style.LineHeightInherit
		},
		copyValue: func(dst, src *style.ComputedStyle) {
			k, l := src.LineHeight()
			dst.SetLineHeight(k, l)
		},
	})

	register(style.PropTextAlign, keywordEntry(style.TextAlignDefault, style.TextAlignJustify,
		(*style.ComputedStyle).TextAlign, (*style.ComputedStyle).SetTextAlign))

	register(style.PropTextDecoration, propEntry{
		apply: func(op bytecode.Op, _ *bytecode.Cursor, cs *style.ComputedStyle) error {
			v := style.TextDecoration(op.Value)
			lines := style.TextDecorationUnderline | style.TextDecorationOverline |
				style.TextDecorationLineThrough | style.TextDecorationBlink
			if v != style.TextDecorationNone && (v == 0 || v&^lines != 0) {
				return badValue(op)
			}
			cs.SetTextDecoration(v)
			return nil
		},
		initial: func(cs *style.ComputedStyle) { cs.SetTextDecoration(style.TextDecorationNone) },
		reset:   func(cs *style.ComputedStyle) { cs.SetTextDecoration(style.TextDecorationInherit) },
		isInherit: func(cs *style.ComputedStyle) bool {
			return cs.TextDecoration() == style.TextDecorationInherit
		},
		copyValue: func(dst, src *style.ComputedStyle) { dst.SetTextDecoration(src.TextDecoration()) },
	})

	register(style.PropTextIndent, lengthEntry(style.TextIndentSet, style.Length{Unit: style.UnitPX},
		style.TextIndentSet, style.TextIndentSet,
		(*style.ComputedStyle).TextIndent, (*style.ComputedStyle).SetTextIndent))

	register(style.PropTextTransform, keywordEntry(style.TextTransformNone, style.TextTransformNone,
		(*style.ComputedStyle).TextTransform, (*style.ComputedStyle).SetTextTransform))

	register(style.PropUnicodeBidi, keywordEntry(style.UnicodeBidiNormal, style.UnicodeBidiOverride,
		(*style.ComputedStyle).UnicodeBidi, (*style.ComputedStyle).SetUnicodeBidi))

	register(style.PropWhiteSpace, keywordEntry(style.WhiteSpaceNormal, style.WhiteSpacePreLine,
		(*style.ComputedStyle).WhiteSpace, (*style.ComputedStyle).SetWhiteSpace))
}
