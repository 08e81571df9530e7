package style

import (
	"fmt"
	"math"

	"github.com/npillmayer/tyse/core/dimen"
)

// Fixed is a signed fixed-point number with 10 fractional bits (22.10).
// All numeric operands in style bytecode and all numeric values of computed
// properties use this representation.
type Fixed int32

// One is the Fixed representation of 1.
const One Fixed = 1 << fixedShift

const fixedShift = 10

// F converts an integer to Fixed.
func F(i int) Fixed {
	return Fixed(i << fixedShift)
}

// FromFloat converts a float to the nearest Fixed.
func FromFloat(f float64) Fixed {
	return Fixed(math.Round(f * (1 << fixedShift)))
}

// Int truncates towards zero.
func (x Fixed) Int() int {
	return int(x >> fixedShift)
}

// Float64 converts to a float.
func (x Fixed) Float64() float64 {
	return float64(x) / (1 << fixedShift)
}

// Mul multiplies two fixed-point numbers with an int64 intermediate.
func (x Fixed) Mul(y Fixed) Fixed {
	t := int64(x) * int64(y)
	t += 1 << (fixedShift - 1) // round to nearest
	return Fixed(t >> fixedShift)
}

// Div divides x by y. Division by zero saturates.
func (x Fixed) Div(y Fixed) Fixed {
	if y == 0 {
		if x < 0 {
			return -math.MaxInt32
		}
		return math.MaxInt32
	}
	t := (int64(x) << fixedShift) / int64(y)
	return Fixed(t)
}

func (x Fixed) String() string {
	return fmt.Sprintf("%g", x.Float64())
}

// Unit tags the dimension of a Fixed value.
type Unit uint8

const (
	UnitPX Unit = iota
	UnitEX
	UnitEM
	UnitIN
	UnitCM
	UnitMM
	UnitPT
	UnitPC
	UnitPCT // percentage
	UnitDEG
	UnitGRAD
	UnitRAD
	UnitMS
	UnitS
	UnitHZ
	UnitKHZ
)

var unitNames = map[Unit]string{
	UnitPX: "px", UnitEX: "ex", UnitEM: "em", UnitIN: "in", UnitCM: "cm",
	UnitMM: "mm", UnitPT: "pt", UnitPC: "pc", UnitPCT: "%", UnitDEG: "deg",
	UnitGRAD: "grad", UnitRAD: "rad", UnitMS: "ms", UnitS: "s", UnitHZ: "hz",
	UnitKHZ: "khz",
}

func (u Unit) String() string {
	if n, ok := unitNames[u]; ok {
		return n
	}
	return "?"
}

// UnitByName maps a lowercase unit suffix to its tag.
func UnitByName(name string) (Unit, bool) {
	for u, n := range unitNames {
		if n == name {
			return u, true
		}
	}
	return 0, false
}

// IsAbsolute reports whether the unit denotes a device-independent absolute
// length. Font-relative units and percentages are resolved by the absolute
// pass; angle, time and frequency units never are.
func (u Unit) IsAbsolute() bool {
	switch u {
	case UnitPX, UnitIN, UnitCM, UnitMM, UnitPT, UnitPC:
		return true
	}
	return false
}

// points per absolute unit
var unitPoints = map[Unit]float64{
	UnitPX: 0.75, // 96 px per inch, 72 pt per inch
	UnitIN: 72,
	UnitCM: 72 / 2.54,
	UnitMM: 72 / 25.4,
	UnitPT: 1,
	UnitPC: 12,
}

// Length is a fixed-point value with a unit.
type Length struct {
	Value Fixed
	Unit  Unit
}

func (l Length) String() string {
	return l.Value.String() + l.Unit.String()
}

// DU converts an absolute length to a typesetting dimension (scaled points,
// see package tyse/core/dimen). Relative lengths report false; callers have
// to compose the style first.
func (l Length) DU() (dimen.DU, bool) {
	pp, ok := unitPoints[l.Unit]
	if !ok {
		return 0, false
	}
	pts := l.Value.Float64() * pp
	return dimen.DU(math.Round(pts * float64(dimen.PT))), true
}
