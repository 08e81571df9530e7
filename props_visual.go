package cascade

import (
	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/style"
)

// Visual and generated-content properties.

func init() {
	register(style.PropBackgroundColor, colorEntry(style.ColorSet, style.Transparent,
		(*style.ComputedStyle).BackgroundColor, (*style.ComputedStyle).SetBackgroundColor))

	register(style.PropOpacity, fixedEntry(style.OpacitySet, style.One, style.OpacitySet,
		func(k style.OpacityKind) bool { return k == style.OpacitySet },
		(*style.ComputedStyle).Opacity, (*style.ComputedStyle).SetOpacity))

	register(style.PropVisibility, keywordEntry(style.VisibilityVisible, style.VisibilityCollapse,
		(*style.ComputedStyle).Visibility, (*style.ComputedStyle).SetVisibility))

	register(style.PropClip, propEntry{
		apply: func(op bytecode.Op, cur *bytecode.Cursor, cs *style.ComputedStyle) error {
			switch style.ClipKind(op.Value) {
			case style.ClipAuto:
				cs.SetClip(style.ClipAuto, style.ClipRect{})
				return nil
			case style.ClipSet:
				r, err := cur.ClipRect()
				if err != nil {
					return err
				}
				cs.SetClip(style.ClipSet, r)
				return nil
			}
			return badValue(op)
		},
		initial: func(cs *style.ComputedStyle) { cs.SetClip(style.ClipAuto, style.ClipRect{}) },
		reset:   func(cs *style.ComputedStyle) { cs.SetClip(style.ClipInherit, style.ClipRect{}) },
		isInherit: func(cs *style.ComputedStyle) bool {
			k, _ := cs.Clip()
			return k == style.ClipInherit
		},
		copyValue: func(dst, src *style.ComputedStyle) {
			k, r := src.Clip()
			dst.SetClip(k, r)
		},
	})

	register(style.PropContent, propEntry{
		apply: func(op bytecode.Op, cur *bytecode.Cursor, cs *style.ComputedStyle) error {
			switch style.ContentKind(op.Value) {
			case style.ContentNormal, style.ContentNone:
				cs.SetContent(style.ContentKind(op.Value), nil)
				return nil
			case style.ContentSet:
				items, err := cur.ContentList()
				if err != nil {
					return err
				}
				if len(items) == 0 {
					return badValue(op)
				}
				cs.SetContent(style.ContentSet, items)
				return nil
			}
			return badValue(op)
		},
		initial: func(cs *style.ComputedStyle) { cs.SetContent(style.ContentNormal, nil) },
		reset:   func(cs *style.ComputedStyle) { cs.SetContent(style.ContentInherit, nil) },
		isInherit: func(cs *style.ComputedStyle) bool {
			k, _ := cs.Content()
			return k == style.ContentInherit
		},
		copyValue: func(dst, src *style.ComputedStyle) {
			k, items := src.Content()
			dst.SetContent(k, items)
		},
	})

	register(style.PropCounterIncrement, counterEntry(
		(*style.ComputedStyle).CounterIncrement, (*style.ComputedStyle).SetCounterIncrement))
	register(style.PropCounterReset, counterEntry(
		(*style.ComputedStyle).CounterReset, (*style.ComputedStyle).SetCounterReset))

	register(style.PropCursor, propEntry{
		apply: func(op bytecode.Op, cur *bytecode.Cursor, cs *style.ComputedStyle) error {
			k := style.CursorKind(op.Value)
			if k == style.CursorInherit || k > style.CursorProgress {
				return badValue(op)
			}
			uris, err := cur.StringList()
			if err != nil {
				return err
			}
			cs.SetCursor(k, uris)
			return nil
		},
		initial: func(cs *style.ComputedStyle) { cs.SetCursor(style.CursorAuto, nil) },
		reset:   func(cs *style.ComputedStyle) { cs.SetCursor(style.CursorInherit, nil) },
		isInherit: func(cs *style.ComputedStyle) bool {
			k, _ := cs.Cursor()
			return k == style.CursorInherit
		},
		copyValue: func(dst, src *style.ComputedStyle) {
			k, uris := src.Cursor()
			dst.SetCursor(k, uris)
		},
	})

	register(style.PropQuotes, propEntry{
		apply: func(op bytecode.Op, cur *bytecode.Cursor, cs *style.ComputedStyle) error {
			switch style.QuotesKind(op.Value) {
			case style.QuotesNone:
				cs.SetQuotes(style.QuotesNone, nil)
				return nil
			case style.QuotesSet:
				qq, err := cur.StringList()
				if err != nil {
					return err
				}
				if len(qq) == 0 || len(qq)%2 != 0 {
					return badValue(op)
				}
				cs.SetQuotes(style.QuotesSet, qq)
				return nil
			}
			return badValue(op)
		},
		initial: func(cs *style.ComputedStyle) { cs.SetQuotes(style.QuotesNone, nil) },
		reset:   func(cs *style.ComputedStyle) { cs.SetQuotes(style.QuotesInherit, nil) },
		isInherit: func(cs *style.ComputedStyle) bool {
			k, _ := cs.Quotes()
			return k == style.QuotesInherit
		},
		copyValue: func(dst, src *style.ComputedStyle) {
			k, qq := src.Quotes()
			dst.SetQuotes(k, qq)
		},
	})

	register(style.PropListStylePosition, keywordEntry(style.ListStylePositionOutside, style.ListStylePositionOutside,
		(*style.ComputedStyle).ListStylePosition, (*style.ComputedStyle).SetListStylePosition))

	register(style.PropListStyleType, keywordEntry(style.ListStyleTypeDisc, style.ListStyleTypeNone,
		(*style.ComputedStyle).ListStyleType, (*style.ComputedStyle).SetListStyleType))

	register(style.PropCaptionSide, keywordEntry(style.CaptionSideTop, style.CaptionSideBottom,
		(*style.ComputedStyle).CaptionSide, (*style.ComputedStyle).SetCaptionSide))

	register(style.PropEmptyCells, keywordEntry(style.EmptyCellsShow, style.EmptyCellsHide,
		(*style.ComputedStyle).EmptyCells, (*style.ComputedStyle).SetEmptyCells))

	register(style.PropTableLayout, keywordEntry(style.TableLayoutAuto, style.TableLayoutFixed,
		(*style.ComputedStyle).TableLayout, (*style.ComputedStyle).SetTableLayout))
}

func counterEntry(get func(*style.ComputedStyle) (style.CounterKind, []style.Counter),
	set func(*style.ComputedStyle, style.CounterKind, []style.Counter)) propEntry {
	return propEntry{
		apply: func(op bytecode.Op, cur *bytecode.Cursor, cs *style.ComputedStyle) error {
			switch style.CounterKind(op.Value) {
			case style.CounterNone:
				set(cs, style.CounterNone, nil)
				return nil
			case style.CounterSet:
				cc, err := cur.CounterList()
				if err != nil {
					return err
				}
				if len(cc) == 0 {
					return badValue(op)
				}
				set(cs, style.CounterSet, cc)
				return nil
			}
			return badValue(op)
		},
		initial: func(cs *style.ComputedStyle) { set(cs, style.CounterNone, nil) },
		reset:   func(cs *style.ComputedStyle) { set(cs, style.CounterInherit, nil) },
		isInherit: func(cs *style.ComputedStyle) bool {
			k, _ := get(cs)
			return k == style.CounterInherit
		},
		copyValue: func(dst, src *style.ComputedStyle) {
			k, cc := get(src)
			set(dst, k, cc)
		},
	}
}
