package douceuradapter

import (
	"strings"

	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/style"
)

// Shorthand properties expand into longhand ops at compile time; the
// cascade only ever sees longhands. Omitted components reset to their
// initial values, as CSS prescribes.

var shorthands = map[string]encoder{}

// shorthandProps lists the longhands of each shorthand, for expanding a
// bare 'inherit'.
var shorthandProps = map[string][]style.PropertyID{}

func registerShorthand(name string, enc encoder, longhands []style.PropertyID) {
	if _, dup := shorthands[name]; dup {
		panic("duplicate shorthand encoder: " + name)
	}
	shorthands[name] = enc
	shorthandProps[name] = longhands
}

// The sides of the four-value box properties, in top/right/bottom/left
// order.
var (
	marginProps      = [4]style.PropertyID{style.PropMarginTop, style.PropMarginRight, style.PropMarginBottom, style.PropMarginLeft}
	paddingProps     = [4]style.PropertyID{style.PropPaddingTop, style.PropPaddingRight, style.PropPaddingBottom, style.PropPaddingLeft}
	borderWidthProps = [4]style.PropertyID{style.PropBorderTopWidth, style.PropBorderRightWidth, style.PropBorderBottomWidth, style.PropBorderLeftWidth}
	borderStyleProps = [4]style.PropertyID{style.PropBorderTopStyle, style.PropBorderRightStyle, style.PropBorderBottomStyle, style.PropBorderLeftStyle}
	borderColorProps = [4]style.PropertyID{style.PropBorderTopColor, style.PropBorderRightColor, style.PropBorderBottomColor, style.PropBorderLeftColor}
)

func init() {
	registerShorthand("margin", boxShorthand(marginProps, marginValue), marginProps[:])
	registerShorthand("padding", boxShorthand(paddingProps, paddingValue), paddingProps[:])
	registerShorthand("border-width", boxShorthand(borderWidthProps, borderWidthValue), borderWidthProps[:])
	registerShorthand("border-style", boxShorthand(borderStyleProps, borderStyleValue), borderStyleProps[:])
	registerShorthand("border-color", boxShorthand(borderColorProps, borderColorValue), borderColorProps[:])

	borderProps := make([]style.PropertyID, 0, 12)
	borderProps = append(borderProps, borderWidthProps[:]...)
	borderProps = append(borderProps, borderStyleProps[:]...)
	borderProps = append(borderProps, borderColorProps[:]...)
	registerShorthand("border", encodeBorder, borderProps)

	registerShorthand("outline", encodeOutline,
		[]style.PropertyID{style.PropOutlineColor, style.PropOutlineWidth})
	registerShorthand("list-style", encodeListStyle,
		[]style.PropertyID{style.PropListStyleType, style.PropListStylePosition})
}

// sideValue is one validated shorthand component, ready to emit for any of
// its longhands.
type sideValue struct {
	value  uint32
	length *style.Length
	color  *style.RGBA
}

func (v sideValue) emit(b *bytecode.Builder, p style.PropertyID, flags bytecode.Flags) {
	b.Op(p, flags, v.value)
	if v.length != nil {
		b.Length(*v.length)
	}
	if v.color != nil {
		b.Color(*v.color)
	}
}

// expandSides maps value count to the per-side value index: one value for
// all sides, two for vertical/horizontal, three for top, horizontal and
// bottom, four for each side in turn.
func expandSides(n int) [4]int {
	switch n {
	case 1:
		return [4]int{0, 0, 0, 0}
	case 2:
		return [4]int{0, 1, 0, 1}
	case 3:
		return [4]int{0, 1, 2, 1}
	}
	return [4]int{0, 1, 2, 3}
}

func boxShorthand(props [4]style.PropertyID, parse func(term) (sideValue, error)) encoder {
	return func(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
		if len(terms) < 1 || len(terms) > 4 {
			return errValue(terms)
		}
		vals := make([]sideValue, len(terms))
		for i, t := range terms {
			v, err := parse(t)
			if err != nil {
				return err
			}
			vals[i] = v
		}
		idx := expandSides(len(terms))
		for side, p := range props {
			vals[idx[side]].emit(b, p, flags)
		}
		return nil
	}
}

func marginValue(t term) (sideValue, error) {
	if t.keyword("auto") {
		return sideValue{value: uint32(style.MarginAuto)}, nil
	}
	l, err := lengthTerm(t, lengthOpts{pct: true, neg: true})
	if err != nil {
		return sideValue{}, err
	}
	return sideValue{value: uint32(style.MarginSet), length: &l}, nil
}

func paddingValue(t term) (sideValue, error) {
	l, err := lengthTerm(t, lengthOpts{pct: true})
	if err != nil {
		return sideValue{}, err
	}
	return sideValue{value: uint32(style.PaddingSet), length: &l}, nil
}

func borderWidthValue(t term) (sideValue, error) {
	if v, ok := lookupKeyword(t, borderWidthKeywords); ok {
		return sideValue{value: v}, nil
	}
	l, err := lengthTerm(t, lengthOpts{})
	if err != nil {
		return sideValue{}, err
	}
	return sideValue{value: uint32(style.BorderWidthSet), length: &l}, nil
}

func borderStyleValue(t term) (sideValue, error) {
	v, ok := lookupKeyword(t, borderStyleKeywords)
	if !ok {
		return sideValue{}, errValue([]term{t})
	}
	return sideValue{value: v}, nil
}

func borderColorValue(t term) (sideValue, error) {
	c, err := parseColor(t)
	if err != nil {
		return sideValue{}, err
	}
	return sideValue{value: uint32(style.ColorSet), color: &c}, nil
}

func isBorderWidth(t term) bool {
	_, err := borderWidthValue(t)
	return err == nil
}

func isBorderStyle(t term) bool {
	_, ok := lookupKeyword(t, borderStyleKeywords)
	return ok
}

// encodeBorder reads [width || style || color] in any order and resets all
// twelve border longhands.
func encodeBorder(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
	if len(terms) > 3 {
		return errValue(terms)
	}
	width := sideValue{value: uint32(style.BorderWidthMedium)}
	bstyle := sideValue{value: uint32(style.BorderStyleNone)}
	color := sideValue{value: uint32(style.ColorCurrent)}
	var haveW, haveS, haveC bool
	for _, t := range terms {
		switch {
		case !haveS && isBorderStyle(t):
			bstyle, haveS = sideValue{value: borderStyleKeywords[lowerKeyword(t)]}, true
		case !haveW && isBorderWidth(t):
			v, err := borderWidthValue(t)
			if err != nil {
				return err
			}
			width, haveW = v, true
		case !haveC:
			v, err := borderColorValue(t)
			if err != nil {
				return errValue(terms)
			}
			color, haveC = v, true
		default:
			return errValue(terms)
		}
	}
	for _, p := range borderWidthProps {
		width.emit(b, p, flags)
	}
	for _, p := range borderStyleProps {
		bstyle.emit(b, p, flags)
	}
	for _, p := range borderColorProps {
		color.emit(b, p, flags)
	}
	return nil
}

// encodeOutline reads [color || style || width] in any order. The computed
// model keeps no outline style, so a style component is parsed and
// dropped.
func encodeOutline(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
	if len(terms) > 3 {
		return errValue(terms)
	}
	color := sideValue{value: uint32(style.OutlineColorInvert)}
	width := sideValue{value: uint32(style.BorderWidthMedium)}
	var haveC, haveS, haveW bool
	for _, t := range terms {
		switch {
		case !haveS && isBorderStyle(t):
			haveS = true
		case !haveW && isBorderWidth(t):
			v, err := borderWidthValue(t)
			if err != nil {
				return err
			}
			width, haveW = v, true
		case !haveC && t.keyword("invert"):
			haveC = true
		case !haveC:
			v, err := borderColorValue(t)
			if err != nil {
				return errValue(terms)
			}
			color = sideValue{value: uint32(style.OutlineColorSet), color: v.color}
			haveC = true
		default:
			return errValue(terms)
		}
	}
	color.emit(b, style.PropOutlineColor, flags)
	width.emit(b, style.PropOutlineWidth, flags)
	return nil
}

// encodeListStyle reads [type || position || url]. The computed model
// keeps no list image, so a url component is parsed and dropped.
func encodeListStyle(b *bytecode.Builder, flags bytecode.Flags, terms []term, _ *intern.Table) error {
	if len(terms) > 3 {
		return errValue(terms)
	}
	typeVal := uint32(style.ListStyleTypeDisc)
	posVal := uint32(style.ListStylePositionOutside)
	var haveT, haveP bool
	for _, t := range terms {
		switch {
		case t.kind == termURI:
			// ignored
		case !haveP && isKeywordOf(t, listStylePositionKeywords):
			posVal, haveP = listStylePositionKeywords[lowerKeyword(t)], true
		case !haveT && isKeywordOf(t, listStyleTypeKeywords):
			typeVal, haveT = listStyleTypeKeywords[lowerKeyword(t)], true
		default:
			return errValue(terms)
		}
	}
	b.Op(style.PropListStyleType, flags, typeVal)
	b.Op(style.PropListStylePosition, flags, posVal)
	return nil
}

func isKeywordOf(t term, kw map[string]uint32) bool {
	_, ok := lookupKeyword(t, kw)
	return ok
}

func lowerKeyword(t term) string {
	return strings.ToLower(t.text)
}
