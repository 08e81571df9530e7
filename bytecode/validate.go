package bytecode

import (
	"fmt"

	"github.com/npillmayer/cascade/style"
)

// Validate walks the whole stream, checking that every op is decodable and
// that the operands consume the stream exactly. It does not interpret
// values; an op with a nonsensical but well-shaped value passes here and is
// rejected by the selection engine instead.
func Validate(c Code) error {
	cur := c.Cursor()
	for !cur.Done() {
		op, err := cur.NextOp()
		if err != nil {
			return err
		}
		if op.Inherit() {
			if op.Value != 0 {
				return fmt.Errorf("%w: inherit op with value %d", ErrMalformed, op.Value)
			}
			continue
		}
		if err := Skip(cur, op); err != nil {
			return err
		}
	}
	return nil
}

// Skip consumes the operand words of one declaration without interpreting
// them. The selection engine uses it to step over declarations that lost
// the cascade; this is the one place that knows the operand shape of every
// property, the engine's decoders mirror it op by op.
func Skip(cur *Cursor, op Op) error {
	var err error
	switch op.Property {

	// color-valued
	case style.PropBackgroundColor, style.PropColor,
		style.PropBorderTopColor, style.PropBorderRightColor,
		style.PropBorderBottomColor, style.PropBorderLeftColor:
		if op.Value == uint32(style.ColorSet) {
			_, err = cur.Color()
		}
	case style.PropOutlineColor:
		if op.Value == uint32(style.OutlineColorSet) {
			_, err = cur.Color()
		}

	// length-valued
	case style.PropBorderTopWidth, style.PropBorderRightWidth,
		style.PropBorderBottomWidth, style.PropBorderLeftWidth,
		style.PropOutlineWidth:
		if op.Value == uint32(style.BorderWidthSet) {
			_, err = cur.Length()
		}
	case style.PropMarginTop, style.PropMarginRight,
		style.PropMarginBottom, style.PropMarginLeft:
		if op.Value == uint32(style.MarginSet) {
			_, err = cur.Length()
		}
	case style.PropPaddingTop, style.PropPaddingRight,
		style.PropPaddingBottom, style.PropPaddingLeft:
		if op.Value == uint32(style.PaddingSet) {
			_, err = cur.Length()
		}
	case style.PropTop, style.PropRight, style.PropBottom, style.PropLeft:
		if op.Value == uint32(style.OffsetSet) {
			_, err = cur.Length()
		}
	case style.PropWidth, style.PropHeight:
		if op.Value == uint32(style.SizeSet) {
			_, err = cur.Length()
		}
	case style.PropMinWidth, style.PropMinHeight:
		if op.Value == uint32(style.MinSizeSet) {
			_, err = cur.Length()
		}
	case style.PropMaxWidth, style.PropMaxHeight:
		if op.Value == uint32(style.MaxSizeSet) {
			_, err = cur.Length()
		}
	case style.PropFontSize:
		if op.Value == uint32(style.FontSizeSet) {
			_, err = cur.Length()
		}
	case style.PropTextIndent:
		if op.Value == uint32(style.TextIndentSet) {
			_, err = cur.Length()
		}
	case style.PropLetterSpacing, style.PropWordSpacing:
		if op.Value == uint32(style.SpacingSet) {
			_, err = cur.Length()
		}
	case style.PropVerticalAlign:
		if op.Value == uint32(style.VerticalAlignSet) {
			_, err = cur.Length()
		}
	case style.PropPauseAfter, style.PropPauseBefore:
		if op.Value == uint32(style.PauseSet) {
			_, err = cur.Length()
		}
	case style.PropPitch:
		if op.Value == uint32(style.PitchSet) {
			_, err = cur.Length()
		}

	// number- and integer-valued
	case style.PropLineHeight:
		if op.Value == uint32(style.LineHeightNumber) {
			_, err = cur.Fixed()
		} else if op.Value == uint32(style.LineHeightSet) {
			_, err = cur.Length()
		}
	case style.PropOpacity:
		if op.Value == uint32(style.OpacitySet) {
			_, err = cur.Fixed()
		}
	case style.PropSpeechRate:
		if op.Value == uint32(style.SpeechRateSet) {
			_, err = cur.Fixed()
		}
	case style.PropVolume:
		if op.Value == uint32(style.VolumeNumber) || op.Value == uint32(style.VolumePercent) {
			_, err = cur.Fixed()
		}
	case style.PropZIndex:
		if op.Value == uint32(style.ZIndexSet) {
			_, err = cur.Int32()
		}
	case style.PropOrphans, style.PropWidows:
		if op.Value == uint32(style.CountSet) {
			_, err = cur.Int32()
		}

	// composite
	case style.PropBorderSpacing:
		if op.Value == uint32(style.BorderSpacingSet) {
			if _, err = cur.Length(); err == nil {
				_, err = cur.Length()
			}
		}
	case style.PropClip:
		if op.Value == uint32(style.ClipSet) {
			_, err = cur.ClipRect()
		}
	case style.PropContent:
		if op.Value == uint32(style.ContentSet) {
			_, err = cur.ContentList()
		}
	case style.PropCounterIncrement, style.PropCounterReset:
		if op.Value == uint32(style.CounterSet) {
			_, err = cur.CounterList()
		}
	case style.PropCursor:
		_, err = cur.StringList()
	case style.PropFontFamily:
		_, err = cur.StringList()
	case style.PropQuotes:
		if op.Value == uint32(style.QuotesSet) {
			_, err = cur.StringList()
		}

	default:
		// keyword-only property, the op word is all there is
	}
	return err
}
