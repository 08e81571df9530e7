package cascade

import (
	"fmt"

	"github.com/npillmayer/cascade/bytecode"
	"github.com/npillmayer/cascade/style"
)

// Every property has one handler entry. The cascade calls apply when a
// declaration wins, reset when an explicit 'inherit' wins, and initial
// during defaulting; composition asks isInherit whether the selected style
// still holds the placeholder and moves values with copyValue. The entries
// are registered from the props_*.go files at init time; handlersComplete
// guards against gaps.
type propEntry struct {
	apply     applyFn
	initial   func(cs *style.ComputedStyle)
	reset     func(cs *style.ComputedStyle)
	isInherit func(cs *style.ComputedStyle) bool
	copyValue func(dst, src *style.ComputedStyle)
}

type applyFn func(op bytecode.Op, cur *bytecode.Cursor, cs *style.ComputedStyle) error

var dispatch [style.NProperties]propEntry

func register(p style.PropertyID, e propEntry) {
	if dispatch[p].apply != nil {
		panic("duplicate style property handler: " + p.String())
	}
	dispatch[p] = e
}

// handlersComplete returns the properties still missing a handler entry.
func handlersComplete() []style.PropertyID {
	var missing []style.PropertyID
	for p := style.PropertyID(0); p < style.NProperties; p++ {
		if dispatch[p].apply == nil {
			missing = append(missing, p)
		}
	}
	return missing
}

func badValue(op bytecode.Op) error {
	return fmt.Errorf("%w: property %s with value %d", ErrInvalidBytecode, op.Property, op.Value)
}

// keywordEntry builds the handler for a keyword-only property: the op value
// is the computed enum, valid between 1 and max.
func keywordEntry[E ~uint8](initial, max E,
	get func(*style.ComputedStyle) E,
	set func(*style.ComputedStyle, E)) propEntry {
	return propEntry{
		apply: func(op bytecode.Op, _ *bytecode.Cursor, cs *style.ComputedStyle) error {
			if op.Value == 0 || op.Value > uint32(max) {
				return badValue(op)
			}
			set(cs, E(op.Value))
			return nil
		},
		initial:   func(cs *style.ComputedStyle) { set(cs, initial) },
		reset:     func(cs *style.ComputedStyle) { set(cs, 0) },
		isInherit: func(cs *style.ComputedStyle) bool { return get(cs) == 0 },
		copyValue: func(dst, src *style.ComputedStyle) { set(dst, get(src)) },
	}
}

// lengthEntry builds the handler for a property whose kinds are keywords
// except for setKind, which carries a length operand.
func lengthEntry[K ~uint8](initialKind K, initialLen style.Length, setKind, max K,
	get func(*style.ComputedStyle) (K, style.Length),
	set func(*style.ComputedStyle, K, style.Length)) propEntry {
	return propEntry{
		apply: func(op bytecode.Op, cur *bytecode.Cursor, cs *style.ComputedStyle) error {
			if op.Value == 0 || op.Value > uint32(max) {
				return badValue(op)
			}
			k := K(op.Value)
			if k == setKind {
				l, err := cur.Length()
				if err != nil {
					return err
				}
				set(cs, k, l)
				return nil
			}
			set(cs, k, style.Length{})
			return nil
		},
		initial: func(cs *style.ComputedStyle) { set(cs, initialKind, initialLen) },
		reset:   func(cs *style.ComputedStyle) { set(cs, 0, style.Length{}) },
		isInherit: func(cs *style.ComputedStyle) bool {
			k, _ := get(cs)
			return k == 0
		},
		copyValue: func(dst, src *style.ComputedStyle) {
			k, l := get(src)
			set(dst, k, l)
		},
	}
}

// colorEntry builds the handler for a color-valued property.
func colorEntry(initialKind style.ColorKind, initialColor style.RGBA,
	get func(*style.ComputedStyle) (style.ColorKind, style.RGBA),
	set func(*style.ComputedStyle, style.ColorKind, style.RGBA)) propEntry {
	return propEntry{
		apply: func(op bytecode.Op, cur *bytecode.Cursor, cs *style.ComputedStyle) error {
			switch style.ColorKind(op.Value) {
			case style.ColorSet:
				c, err := cur.Color()
				if err != nil {
					return err
				}
				set(cs, style.ColorSet, c)
				return nil
			case style.ColorCurrent:
				// the border shorthand resets omitted colors to the
				// current text color
				set(cs, style.ColorCurrent, 0)
				return nil
			}
			return badValue(op)
		},
		initial: func(cs *style.ComputedStyle) { set(cs, initialKind, initialColor) },
		reset:   func(cs *style.ComputedStyle) { set(cs, style.ColorInherit, 0) },
		isInherit: func(cs *style.ComputedStyle) bool {
			k, _ := get(cs)
			return k == style.ColorInherit
		},
		copyValue: func(dst, src *style.ComputedStyle) {
			k, c := get(src)
			set(dst, k, c)
		},
	}
}

// int32Entry builds the handler for an integer-valued property with an
// optional keyword alternative (z-index: auto).
func int32Entry[K ~uint8](initialKind K, initialN int32, setKind, max K,
	get func(*style.ComputedStyle) (K, int32),
	set func(*style.ComputedStyle, K, int32)) propEntry {
	return propEntry{
		apply: func(op bytecode.Op, cur *bytecode.Cursor, cs *style.ComputedStyle) error {
			if op.Value == 0 || op.Value > uint32(max) {
				return badValue(op)
			}
			k := K(op.Value)
			if k == setKind {
				n, err := cur.Int32()
				if err != nil {
					return err
				}
				set(cs, k, n)
				return nil
			}
			set(cs, k, 0)
			return nil
		},
		initial: func(cs *style.ComputedStyle) { set(cs, initialKind, initialN) },
		reset:   func(cs *style.ComputedStyle) { set(cs, 0, 0) },
		isInherit: func(cs *style.ComputedStyle) bool {
			k, _ := get(cs)
			return k == 0
		},
		copyValue: func(dst, src *style.ComputedStyle) {
			k, n := get(src)
			set(dst, k, n)
		},
	}
}

// fixedEntry builds the handler for a property carrying a fixed-point
// number for one or more of its kinds.
func fixedEntry[K ~uint8](initialKind K, initialV style.Fixed, max K,
	carries func(K) bool,
	get func(*style.ComputedStyle) (K, style.Fixed),
	set func(*style.ComputedStyle, K, style.Fixed)) propEntry {
	return propEntry{
		apply: func(op bytecode.Op, cur *bytecode.Cursor, cs *style.ComputedStyle) error {
			if op.Value == 0 || op.Value > uint32(max) {
				return badValue(op)
			}
			k := K(op.Value)
			if carries(k) {
				v, err := cur.Fixed()
				if err != nil {
					return err
				}
				set(cs, k, v)
				return nil
			}
			set(cs, k, 0)
			return nil
		},
		initial: func(cs *style.ComputedStyle) { set(cs, initialKind, initialV) },
		reset:   func(cs *style.ComputedStyle) { set(cs, 0, 0) },
		isInherit: func(cs *style.ComputedStyle) bool {
			k, _ := get(cs)
			return k == 0
		},
		copyValue: func(dst, src *style.ComputedStyle) {
			k, v := get(src)
			set(dst, k, v)
		},
	}
}
