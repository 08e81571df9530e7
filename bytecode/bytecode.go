/*
Package bytecode defines the compiled form of CSS declaration blocks.

A declaration block compiles into a flat stream of 32 bit words. Each
declaration starts with an op word carrying the property identifier, the
importance and inherit flags and a 14 bit value field; depending on property
and value, operand words follow (fixed-point numbers, units, colors, string
table indexes, sentinel-terminated lists). Strings referenced from the
stream live in a side table of interned string handles, so the garbage
collector keeps them alive for as long as the code is.

The stream carries no length markers besides the list sentinel: a consumer
must understand every op it reads, and a declaration block is well-formed
exactly if decoding consumes every word. Validate checks that without
interpreting values.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bytecode

import (
	"errors"

	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/style"
)

// ErrMalformed is returned when a code stream cannot be decoded: a truncated
// operand, a string index outside the table, an op word for an unknown
// property, or trailing garbage.
var ErrMalformed = errors.New("malformed style bytecode")

// op word layout: property | flags<<10 | value<<18
const (
	propBits  = 10
	flagBits  = 8
	valueBits = 14

	propMask  = 1<<propBits - 1
	flagMask  = 1<<flagBits - 1
	valueMask = 1<<valueBits - 1

	flagShift  = propBits
	valueShift = propBits + flagBits
)

// endOfList terminates variable-length operand lists. It cannot collide with
// a string table index; tables stay far below 4G entries.
const endOfList uint32 = 0xffffffff

// Flags modify how a declaration cascades.
type Flags uint8

const (
	// FlagImportant marks an !important declaration.
	FlagImportant Flags = 1 << 0
	// FlagInherit forces inheritance from the parent. An inherit op carries
	// no operands.
	FlagInherit Flags = 1 << 1
)

// Op is one decoded op word.
type Op struct {
	Property style.PropertyID
	Flags    Flags
	Value    uint32
}

// Important reports whether the declaration was marked !important.
func (op Op) Important() bool { return op.Flags&FlagImportant != 0 }

// Inherit reports whether the declaration is an explicit 'inherit'.
func (op Op) Inherit() bool { return op.Flags&FlagInherit != 0 }

func makeOp(p style.PropertyID, flags Flags, value uint32) uint32 {
	return uint32(p)&propMask | (uint32(flags)&flagMask)<<flagShift |
		(value&valueMask)<<valueShift
}

// Code is one compiled declaration block. The zero value is an empty block.
// Code values are immutable after construction and safe to share.
type Code struct {
	words   []uint32
	strings []*intern.String
}

// Empty reports whether the block holds no declarations.
func (c Code) Empty() bool { return len(c.words) == 0 }

// Len returns the word count of the stream.
func (c Code) Len() int { return len(c.words) }

func (c Code) stringAt(i uint32) (*intern.String, bool) {
	if int(i) >= len(c.strings) {
		return nil, false
	}
	return c.strings[i], true
}

// Cursor returns a fresh decoding cursor positioned at the first op.
func (c Code) Cursor() *Cursor {
	return &Cursor{code: c}
}
