package cascade

import (
	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/style"
)

// Border and outline properties. Border colors default to the current text
// color; the absolutization pass substitutes it.

func borderWidthEntry(s style.Side) propEntry {
	return lengthEntry(style.BorderWidthMedium, style.Length{},
		style.BorderWidthSet, style.BorderWidthSet,
		func(cs *style.ComputedStyle) (style.BorderWidthKind, style.Length) { return cs.BorderWidth(s) },
		func(cs *style.ComputedStyle, k style.BorderWidthKind, l style.Length) { cs.SetBorderWidth(s, k, l) })
}

func borderStyleEntry(s style.Side) propEntry {
	return keywordEntry(style.BorderStyleNone, style.BorderStyleOutset,
		func(cs *style.ComputedStyle) style.BorderStyle { return cs.BorderStyle(s) },
		func(cs *style.ComputedStyle, v style.BorderStyle) { cs.SetBorderStyle(s, v) })
}

func borderColorEntry(s style.Side) propEntry {
	return colorEntry(style.ColorCurrent, 0,
		func(cs *style.ComputedStyle) (style.ColorKind, style.RGBA) { return cs.BorderColor(s) },
		func(cs *style.ComputedStyle, k style.ColorKind, c style.RGBA) { cs.SetBorderColor(s, k, c) })
}

func init() {
	register(style.PropBorderTopWidth, borderWidthEntry(style.SideTop))
	register(style.PropBorderRightWidth, borderWidthEntry(style.SideRight))
	register(style.PropBorderBottomWidth, borderWidthEntry(style.SideBottom))
	register(style.PropBorderLeftWidth, borderWidthEntry(style.SideLeft))

	register(style.PropBorderTopStyle, borderStyleEntry(style.SideTop))
	register(style.PropBorderRightStyle, borderStyleEntry(style.SideRight))
	register(style.PropBorderBottomStyle, borderStyleEntry(style.SideBottom))
	register(style.PropBorderLeftStyle, borderStyleEntry(style.SideLeft))

	register(style.PropBorderTopColor, borderColorEntry(style.SideTop))
	register(style.PropBorderRightColor, borderColorEntry(style.SideRight))
	register(style.PropBorderBottomColor, borderColorEntry(style.SideBottom))
	register(style.PropBorderLeftColor, borderColorEntry(style.SideLeft))

	register(style.PropBorderCollapse, keywordEntry(style.BorderCollapseSeparate, style.BorderCollapseCollapse,
		(*style.ComputedStyle).BorderCollapse, (*style.ComputedStyle).SetBorderCollapse))

	register(style.PropBorderSpacing, propEntry{
		apply: func(op bytecode.Op, cur *bytecode.Cursor, cs *style.ComputedStyle) error {
			if style.BorderSpacingKind(op.Value) != style.BorderSpacingSet {
				return badValue(op)
			}
			h, err := cur.Length()
			if err != nil {
				return err
			}
			v, err := cur.Length()
			if err != nil {
				return err
			}
			cs.SetBorderSpacing(style.BorderSpacingSet, h, v)
			return nil
		},
		initial: func(cs *style.ComputedStyle) {
			cs.SetBorderSpacing(style.BorderSpacingSet,
				style.Length{Unit: style.UnitPX}, style.Length{Unit: style.UnitPX})
		},
		reset: func(cs *style.ComputedStyle) {
			cs.SetBorderSpacing(style.BorderSpacingInherit, style.Length{}, style.Length{})
		},
		isInherit: func(cs *style.ComputedStyle) bool {
			k, _, _ := cs.BorderSpacing()
			return k == style.BorderSpacingInherit
		},
		copyValue: func(dst, src *style.ComputedStyle) {
			k, h, v := src.BorderSpacing()
			dst.SetBorderSpacing(k, h, v)
		},
	})

	register(style.PropOutlineColor, propEntry{
		apply: func(op bytecode.Op, cur *bytecode.Cursor, cs *style.ComputedStyle) error {
			switch style.OutlineColorKind(op.Value) {
			case style.OutlineColorSet:
				c, err := cur.Color()
				if err != nil {
					return err
				}
				cs.SetOutlineColor(style.OutlineColorSet, c)
				return nil
			case style.OutlineColorInvert:
				cs.SetOutlineColor(style.OutlineColorInvert, 0)
				return nil
			}
			return badValue(op)
		},
		initial: func(cs *style.ComputedStyle) { cs.SetOutlineColor(style.OutlineColorInvert, 0) },
		reset:   func(cs *style.ComputedStyle) { cs.SetOutlineColor(style.OutlineColorInherit, 0) },
		isInherit: func(cs *style.ComputedStyle) bool {
			k, _ := cs.OutlineColor()
			return k == style.OutlineColorInherit
		},
		copyValue: func(dst, src *style.ComputedStyle) {
			k, c := src.OutlineColor()
			dst.SetOutlineColor(k, c)
		},
	})

	register(style.PropOutlineWidth, lengthEntry(style.BorderWidthMedium, style.Length{},
		style.BorderWidthSet, style.BorderWidthSet,
		(*style.ComputedStyle).OutlineWidth, (*style.ComputedStyle).SetOutlineWidth))
}
