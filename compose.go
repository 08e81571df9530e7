package cascade

import (
	"github.com/npillmayer/cascade/style"
)

// Compose finishes the second phase of styling: it resolves every inherit
// placeholder in child against the parent's already composed style, or
// against initial values if parent is nil, and runs the absolutization
// pass over the outcome. child is left untouched; the composed style is
// returned as a fresh value.
//
// Extension blocks neither side ever populated are skipped wholesale. A
// child missing a block the parent carries inherits the block's inherited
// properties; its non-inherited ones stay initial.
func Compose(parent, child *style.ComputedStyle, fs FontSizeFunc, ex ExRatioFunc) (*style.ComputedStyle, error) {
	if child == nil || fs == nil || ex == nil {
		return nil, ErrBadParameter
	}
	result := style.NewComputedStyle()
	for p := style.PropertyID(0); p < style.NProperties; p++ {
		ent := &dispatch[p]
		if b := p.Block(); b != style.BlockCommon {
			childHas := child.HasBlock(b)
			parentHas := parent != nil && parent.HasBlock(b)
			if !childHas && !parentHas {
				continue
			}
			if !childHas {
				// the inherited copies allocate the result's block, so
				// non-inherited properties must get explicit initials
				if p.Inherited() {
					ent.copyValue(result, parent)
				} else {
					ent.initial(result)
				}
				continue
			}
		}
		if ent.isInherit(child) {
			if parent != nil {
				ent.copyValue(result, parent)
			} else {
				ent.initial(result)
			}
			continue
		}
		ent.copyValue(result, child)
	}
	if err := absolutize(parent, result, fs, ex); err != nil {
		return nil, err
	}
	return result, nil
}

// Compose applies the package level Compose with the context's font size
// and x-height resolvers.
func (cx *Context[N]) Compose(parent, child *style.ComputedStyle) (*style.ComputedStyle, error) {
	return Compose(parent, child, cx.cfg.fontSize, cx.cfg.exRatio)
}

// absolutize rewrites cs so that no font-relative length remains. The
// order is fixed: font-size first, since every em resolves against it,
// then the ex-to-em ratio, then all remaining length slots. Percentages
// stay, except for line-height, whose percentage computes against the
// element's own font size. currentColor border colors are pinned to the
// computed color, keyword border and outline widths to pixel values.
func absolutize(parent, cs *style.ComputedStyle, fs FontSizeFunc, ex ExRatioFunc) error {
	var parentSize style.Length
	if parent != nil {
		if k, l := parent.FontSize(); k == style.FontSizeSet {
			parentSize = l
		}
	}
	k, l := cs.FontSize()
	size, err := fs(parentSize, k, l)
	if err != nil {
		return err
	}
	cs.SetFontSize(style.FontSizeSet, size)

	ratio := ex(size)
	abs := func(l style.Length) style.Length {
		if l.Unit == style.UnitEX {
			l = style.Length{Value: l.Value.Mul(ratio), Unit: style.UnitEM}
		}
		if l.Unit == style.UnitEM {
			l = style.Length{Value: l.Value.Mul(size.Value), Unit: size.Unit}
		}
		return l
	}

	for s := style.SideTop; s <= style.SideLeft; s++ {
		wk, wl := cs.BorderWidth(s)
		cs.SetBorderWidth(s, style.BorderWidthSet, widthLength(wk, wl, abs))
		if ck, _ := cs.BorderColor(s); ck == style.ColorCurrent {
			_, c := cs.Color()
			cs.SetBorderColor(s, style.ColorSet, c)
		}
		if mk, ml := cs.Margin(s); mk == style.MarginSet {
			cs.SetMargin(s, mk, abs(ml))
		}
		if pk, pl := cs.Padding(s); pk == style.PaddingSet {
			cs.SetPadding(s, pk, abs(pl))
		}
		if ok, ol := cs.Offset(s); ok == style.OffsetSet {
			cs.SetOffset(s, ok, abs(ol))
		}
	}

	if k, l := cs.Width(); k == style.SizeSet {
		cs.SetWidth(k, abs(l))
	}
	if k, l := cs.Height(); k == style.SizeSet {
		cs.SetHeight(k, abs(l))
	}
	if k, l := cs.MinWidth(); k == style.MinSizeSet {
		cs.SetMinWidth(k, abs(l))
	}
	if k, l := cs.MinHeight(); k == style.MinSizeSet {
		cs.SetMinHeight(k, abs(l))
	}
	if k, l := cs.MaxWidth(); k == style.MaxSizeSet {
		cs.SetMaxWidth(k, abs(l))
	}
	if k, l := cs.MaxHeight(); k == style.MaxSizeSet {
		cs.SetMaxHeight(k, abs(l))
	}

	if k, l := cs.LineHeight(); k == style.LineHeightSet {
		if l.Unit == style.UnitPCT {
			l = style.Length{Value: l.Value.Mul(size.Value).Div(style.F(100)), Unit: size.Unit}
		} else {
			l = abs(l)
		}
		cs.SetLineHeight(k, l)
	}
	if k, l := cs.VerticalAlign(); k == style.VerticalAlignSet {
		cs.SetVerticalAlign(k, abs(l))
	}
	if k, l := cs.TextIndent(); k == style.TextIndentSet {
		cs.SetTextIndent(k, abs(l))
	}

	if cs.HasUncommonBlock() {
		if k, l := cs.LetterSpacing(); k == style.SpacingSet {
			cs.SetLetterSpacing(k, abs(l))
		}
		if k, l := cs.WordSpacing(); k == style.SpacingSet {
			cs.SetWordSpacing(k, abs(l))
		}
		if k, h, v := cs.BorderSpacing(); k == style.BorderSpacingSet {
			cs.SetBorderSpacing(k, abs(h), abs(v))
		}
		if k, r := cs.Clip(); k == style.ClipSet {
			if !r.TopAuto {
				r.Top = abs(r.Top)
			}
			if !r.RightAuto {
				r.Right = abs(r.Right)
			}
			if !r.BottomAuto {
				r.Bottom = abs(r.Bottom)
			}
			if !r.LeftAuto {
				r.Left = abs(r.Left)
			}
			cs.SetClip(k, r)
		}
		wk, wl := cs.OutlineWidth()
		cs.SetOutlineWidth(style.BorderWidthSet, widthLength(wk, wl, abs))
	}
	return nil
}

// widthLength resolves the keyword widths thin, medium and thick to 1, 3
// and 5 pixels; a set width goes through the usual unit conversion.
func widthLength(k style.BorderWidthKind, l style.Length, abs func(style.Length) style.Length) style.Length {
	switch k {
	case style.BorderWidthThin:
		return style.Length{Value: style.F(1), Unit: style.UnitPX}
	case style.BorderWidthMedium:
		return style.Length{Value: style.F(3), Unit: style.UnitPX}
	case style.BorderWidthThick:
		return style.Length{Value: style.F(5), Unit: style.UnitPX}
	}
	return abs(l)
}
