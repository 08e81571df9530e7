package bytecode

import (
	"fmt"

	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/style"
)

// Cursor decodes a code stream front to back. All reads advance the cursor;
// a failed read leaves it in an undefined position and the stream should be
// abandoned.
type Cursor struct {
	code Code
	pos  int
}

// Done reports whether the stream is fully consumed. A well-formed stream is
// done exactly after the last declaration's operands.
func (cur *Cursor) Done() bool { return cur.pos >= len(cur.code.words) }

func (cur *Cursor) word() (uint32, error) {
	if cur.pos >= len(cur.code.words) {
		return 0, fmt.Errorf("%w: truncated operand at word %d", ErrMalformed, cur.pos)
	}
	w := cur.code.words[cur.pos]
	cur.pos++
	return w, nil
}

// NextOp decodes the next op word.
func (cur *Cursor) NextOp() (Op, error) {
	w, err := cur.word()
	if err != nil {
		return Op{}, err
	}
	op := Op{
		Property: style.PropertyID(w & propMask),
		Flags:    Flags(w >> flagShift & flagMask),
		Value:    w >> valueShift & valueMask,
	}
	if op.Property >= style.NProperties {
		return Op{}, fmt.Errorf("%w: unknown property %d", ErrMalformed, op.Property)
	}
	return op, nil
}

// Fixed reads a fixed-point operand.
func (cur *Cursor) Fixed() (style.Fixed, error) {
	w, err := cur.word()
	return style.Fixed(int32(w)), err
}

// Unit reads a unit operand.
func (cur *Cursor) Unit() (style.Unit, error) {
	w, err := cur.word()
	if err != nil {
		return 0, err
	}
	if w > uint32(style.UnitKHZ) {
		return 0, fmt.Errorf("%w: unknown unit %d", ErrMalformed, w)
	}
	return style.Unit(w), nil
}

// Length reads a fixed-point operand and its unit.
func (cur *Cursor) Length() (style.Length, error) {
	v, err := cur.Fixed()
	if err != nil {
		return style.Length{}, err
	}
	u, err := cur.Unit()
	if err != nil {
		return style.Length{}, err
	}
	return style.Length{Value: v, Unit: u}, nil
}

// Color reads a color operand.
func (cur *Cursor) Color() (style.RGBA, error) {
	w, err := cur.word()
	return style.RGBA(w), err
}

// Int32 reads an integer operand.
func (cur *Cursor) Int32() (int32, error) {
	w, err := cur.word()
	return int32(w), err
}

// Str reads a string table reference.
func (cur *Cursor) Str() (*intern.String, error) {
	w, err := cur.word()
	if err != nil {
		return nil, err
	}
	s, ok := cur.code.stringAt(w)
	if !ok {
		return nil, fmt.Errorf("%w: string index %d out of range", ErrMalformed, w)
	}
	return s, nil
}

// StringList reads string references up to the list sentinel. The list may
// be empty.
func (cur *Cursor) StringList() ([]*intern.String, error) {
	var ss []*intern.String
	for {
		w, err := cur.word()
		if err != nil {
			return nil, err
		}
		if w == endOfList {
			return ss, nil
		}
		s, ok := cur.code.stringAt(w)
		if !ok {
			return nil, fmt.Errorf("%w: string index %d out of range", ErrMalformed, w)
		}
		ss = append(ss, s)
	}
}

// CounterList reads name/value pairs up to the list sentinel.
func (cur *Cursor) CounterList() ([]style.Counter, error) {
	var cc []style.Counter
	for {
		w, err := cur.word()
		if err != nil {
			return nil, err
		}
		if w == endOfList {
			return cc, nil
		}
		name, ok := cur.code.stringAt(w)
		if !ok {
			return nil, fmt.Errorf("%w: string index %d out of range", ErrMalformed, w)
		}
		v, err := cur.Fixed()
		if err != nil {
			return nil, err
		}
		cc = append(cc, style.Counter{Name: name, Value: v})
	}
}

// ContentList reads content items up to the list sentinel. An item word
// holds the item kind in its low byte and, for counter items, the counter
// style in the next byte; string operands follow as the kind demands.
func (cur *Cursor) ContentList() ([]style.ContentItem, error) {
	var items []style.ContentItem
	for {
		w, err := cur.word()
		if err != nil {
			return nil, err
		}
		if w == endOfList {
			return items, nil
		}
		kind := style.ContentItemKind(w & 0xff)
		if kind > style.ContentItemNoCloseQuote || w>>16 != 0 {
			return nil, fmt.Errorf("%w: bad content item word %#x", ErrMalformed, w)
		}
		item := style.ContentItem{Kind: kind}
		switch kind {
		case style.ContentItemString, style.ContentItemURI, style.ContentItemAttr:
			if item.Text, err = cur.Str(); err != nil {
				return nil, err
			}
		case style.ContentItemCounter:
			item.Style = style.ListStyleType(w >> 8 & 0xff)
			if item.Text, err = cur.Str(); err != nil {
				return nil, err
			}
		case style.ContentItemCounters:
			item.Style = style.ListStyleType(w >> 8 & 0xff)
			if item.Text, err = cur.Str(); err != nil {
				return nil, err
			}
			if item.Sep, err = cur.Str(); err != nil {
				return nil, err
			}
		}
		items = append(items, item)
	}
}

// ClipRect reads a clip shape: a word of per-side auto flags, then a length
// for every side that is not auto.
func (cur *Cursor) ClipRect() (style.ClipRect, error) {
	w, err := cur.word()
	if err != nil {
		return style.ClipRect{}, err
	}
	if w&^uint32(0xf) != 0 {
		return style.ClipRect{}, fmt.Errorf("%w: bad clip shape word %#x", ErrMalformed, w)
	}
	r := style.ClipRect{
		TopAuto:    w&1 != 0,
		RightAuto:  w&2 != 0,
		BottomAuto: w&4 != 0,
		LeftAuto:   w&8 != 0,
	}
	if !r.TopAuto {
		if r.Top, err = cur.Length(); err != nil {
			return style.ClipRect{}, err
		}
	}
	if !r.RightAuto {
		if r.Right, err = cur.Length(); err != nil {
			return style.ClipRect{}, err
		}
	}
	if !r.BottomAuto {
		if r.Bottom, err = cur.Length(); err != nil {
			return style.ClipRect{}, err
		}
	}
	if !r.LeftAuto {
		if r.Left, err = cur.Length(); err != nil {
			return style.ClipRect{}, err
		}
	}
	return r, nil
}
