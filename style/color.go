package style

import "fmt"

// RGBA is a color in AARRGGBB order, alpha in the top byte. 0x00000000 is
// fully transparent black, which doubles as the CSS 'transparent' keyword.
type RGBA uint32

// MakeRGBA packs the four channels.
func MakeRGBA(a, r, g, b uint8) RGBA {
	return RGBA(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// MakeRGB packs an opaque color.
func MakeRGB(r, g, b uint8) RGBA {
	return MakeRGBA(0xff, r, g, b)
}

func (c RGBA) A() uint8 { return uint8(c >> 24) }
func (c RGBA) R() uint8 { return uint8(c >> 16) }
func (c RGBA) G() uint8 { return uint8(c >> 8) }
func (c RGBA) B() uint8 { return uint8(c) }

func (c RGBA) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// Transparent is the 'transparent' color keyword.
const Transparent RGBA = 0x00000000
