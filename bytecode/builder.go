package bytecode

import (
	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/style"
)

// Builder assembles a code stream declaration by declaration. It interns
// string operands into the side table, deduplicating repeats. Builders are
// not safe for concurrent use.
type Builder struct {
	words   []uint32
	strings []*intern.String
	index   map[*intern.String]uint32
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[*intern.String]uint32)}
}

// Op starts a declaration. For an inherit op, value must be zero and no
// operands may follow.
func (b *Builder) Op(p style.PropertyID, flags Flags, value uint32) *Builder {
	b.words = append(b.words, makeOp(p, flags, value))
	return b
}

// Word appends a raw operand word.
func (b *Builder) Word(w uint32) *Builder {
	b.words = append(b.words, w)
	return b
}

// Fixed appends a fixed-point operand.
func (b *Builder) Fixed(x style.Fixed) *Builder {
	return b.Word(uint32(x))
}

// Unit appends a unit operand.
func (b *Builder) Unit(u style.Unit) *Builder {
	return b.Word(uint32(u))
}

// Length appends a fixed-point operand followed by its unit.
func (b *Builder) Length(l style.Length) *Builder {
	return b.Fixed(l.Value).Unit(l.Unit)
}

// Color appends a color operand.
func (b *Builder) Color(c style.RGBA) *Builder {
	return b.Word(uint32(c))
}

// Int32 appends an integer operand.
func (b *Builder) Int32(n int32) *Builder {
	return b.Word(uint32(n))
}

// Str appends a string table reference.
func (b *Builder) Str(s *intern.String) *Builder {
	i, ok := b.index[s]
	if !ok {
		i = uint32(len(b.strings))
		b.strings = append(b.strings, s)
		b.index[s] = i
	}
	return b.Word(i)
}

// EndList terminates a list of operands.
func (b *Builder) EndList() *Builder {
	return b.Word(endOfList)
}

// Strings appends a sentinel-terminated string list.
func (b *Builder) Strings(ss []*intern.String) *Builder {
	for _, s := range ss {
		b.Str(s)
	}
	return b.EndList()
}

// Counters appends a sentinel-terminated list of counter name/value pairs.
func (b *Builder) Counters(cc []style.Counter) *Builder {
	for _, c := range cc {
		b.Str(c.Name).Fixed(c.Value)
	}
	return b.EndList()
}

// ContentItems appends a sentinel-terminated content list.
func (b *Builder) ContentItems(items []style.ContentItem) *Builder {
	for _, item := range items {
		w := uint32(item.Kind)
		switch item.Kind {
		case style.ContentItemCounter, style.ContentItemCounters:
			w |= uint32(item.Style) << 8
		}
		b.Word(w)
		switch item.Kind {
		case style.ContentItemString, style.ContentItemURI, style.ContentItemAttr,
			style.ContentItemCounter:
			b.Str(item.Text)
		case style.ContentItemCounters:
			b.Str(item.Text).Str(item.Sep)
		}
	}
	return b.EndList()
}

// Clip appends a clip shape: the per-side auto flags, then a length for
// every side that is not auto.
func (b *Builder) Clip(r style.ClipRect) *Builder {
	var w uint32
	if r.TopAuto {
		w |= 1
	}
	if r.RightAuto {
		w |= 2
	}
	if r.BottomAuto {
		w |= 4
	}
	if r.LeftAuto {
		w |= 8
	}
	b.Word(w)
	if !r.TopAuto {
		b.Length(r.Top)
	}
	if !r.RightAuto {
		b.Length(r.Right)
	}
	if !r.BottomAuto {
		b.Length(r.Bottom)
	}
	if !r.LeftAuto {
		b.Length(r.Left)
	}
	return b
}

// Code freezes the stream. The builder must not be reused afterwards.
func (b *Builder) Code() Code {
	return Code{words: b.words, strings: b.strings}
}
