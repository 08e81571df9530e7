package cascade

import "github.com/npillmayer/cascade/style"

// Box model properties: display, positioning, sizing, margins, paddings and
// box offsets.

func marginEntry(s style.Side) propEntry {
	return lengthEntry(style.MarginSet, style.Length{Unit: style.UnitPX},
		style.MarginSet, style.MarginSet,
		func(cs *style.ComputedStyle) (style.MarginKind, style.Length) { return cs.Margin(s) },
		func(cs *style.ComputedStyle, k style.MarginKind, l style.Length) { cs.SetMargin(s, k, l) })
}

func paddingEntry(s style.Side) propEntry {
	return lengthEntry(style.PaddingSet, style.Length{Unit: style.UnitPX},
		style.PaddingSet, style.PaddingSet,
		func(cs *style.ComputedStyle) (style.PaddingKind, style.Length) { return cs.Padding(s) },
		func(cs *style.ComputedStyle, k style.PaddingKind, l style.Length) { cs.SetPadding(s, k, l) })
}

func offsetEntry(s style.Side) propEntry {
	return lengthEntry(style.OffsetAuto, style.Length{},
		style.OffsetSet, style.OffsetSet,
		func(cs *style.ComputedStyle) (style.OffsetKind, style.Length) { return cs.Offset(s) },
		func(cs *style.ComputedStyle, k style.OffsetKind, l style.Length) { cs.SetOffset(s, k, l) })
}

func init() {
	register(style.PropDisplay, keywordEntry(style.DisplayInline, style.DisplayNone,
		(*style.ComputedStyle).Display, (*style.ComputedStyle).SetDisplay))
	register(style.PropPosition, keywordEntry(style.PositionStatic, style.PositionFixed,
		(*style.ComputedStyle).Position, (*style.ComputedStyle).SetPosition))
	register(style.PropFloat, keywordEntry(style.FloatNone, style.FloatRight,
		(*style.ComputedStyle).Float, (*style.ComputedStyle).SetFloat))
	register(style.PropClear, keywordEntry(style.ClearNone, style.ClearBoth,
		(*style.ComputedStyle).Clear, (*style.ComputedStyle).SetClear))
	register(style.PropOverflow, keywordEntry(style.OverflowVisible, style.OverflowAuto,
		(*style.ComputedStyle).Overflow, (*style.ComputedStyle).SetOverflow))

	register(style.PropWidth, lengthEntry(style.SizeAuto, style.Length{},
		style.SizeSet, style.SizeSet,
		(*style.ComputedStyle).Width, (*style.ComputedStyle).SetWidth))
	register(style.PropHeight, lengthEntry(style.SizeAuto, style.Length{},
		style.SizeSet, style.SizeSet,
		(*style.ComputedStyle).Height, (*style.ComputedStyle).SetHeight))
	register(style.PropMinWidth, lengthEntry(style.MinSizeSet, style.Length{Unit: style.UnitPX},
		style.MinSizeSet, style.MinSizeSet,
		(*style.ComputedStyle).MinWidth, (*style.ComputedStyle).SetMinWidth))
	register(style.PropMinHeight, lengthEntry(style.MinSizeSet, style.Length{Unit: style.UnitPX},
		style.MinSizeSet, style.MinSizeSet,
		(*style.ComputedStyle).MinHeight, (*style.ComputedStyle).SetMinHeight))
	register(style.PropMaxWidth, lengthEntry(style.MaxSizeNone, style.Length{},
		style.MaxSizeSet, style.MaxSizeSet,
		(*style.ComputedStyle).MaxWidth, (*style.ComputedStyle).SetMaxWidth))
	register(style.PropMaxHeight, lengthEntry(style.MaxSizeNone, style.Length{},
		style.MaxSizeSet, style.MaxSizeSet,
		(*style.ComputedStyle).MaxHeight, (*style.ComputedStyle).SetMaxHeight))

	register(style.PropMarginTop, marginEntry(style.SideTop))
	register(style.PropMarginRight, marginEntry(style.SideRight))
	register(style.PropMarginBottom, marginEntry(style.SideBottom))
	register(style.PropMarginLeft, marginEntry(style.SideLeft))

	register(style.PropPaddingTop, paddingEntry(style.SideTop))
	register(style.PropPaddingRight, paddingEntry(style.SideRight))
	register(style.PropPaddingBottom, paddingEntry(style.SideBottom))
	register(style.PropPaddingLeft, paddingEntry(style.SideLeft))

	register(style.PropTop, offsetEntry(style.SideTop))
	register(style.PropRight, offsetEntry(style.SideRight))
	register(style.PropBottom, offsetEntry(style.SideBottom))
	register(style.PropLeft, offsetEntry(style.SideLeft))

	register(style.PropVerticalAlign, lengthEntry(style.VerticalAlignBaseline, style.Length{},
		style.VerticalAlignSet, style.VerticalAlignSet,
		(*style.ComputedStyle).VerticalAlign, (*style.ComputedStyle).SetVerticalAlign))

	register(style.PropZIndex, int32Entry(style.ZIndexAuto, 0,
		style.ZIndexSet, style.ZIndexSet,
		(*style.ComputedStyle).ZIndex, (*style.ComputedStyle).SetZIndex))
}
