package convert

import (
	"fmt"
	"image/color"
)

// RGB is a color as three byte channels. Channels are not validated; values
// outside [0, 255] pack into an out-of-range integer.
type RGB struct {
	R, G, B int
}

// PackedToRGB extracts the red, green and blue bytes from bits 16-23, 8-15
// and 0-7 of color. Higher bits are ignored.
func PackedToRGB(color int) RGB {
	return RGB{
		R: (color >> 16) & 0xFF,
		G: (color >> 8) & 0xFF,
		B: color & 0xFF,
	}
}

// RGBToPacked computes r*65536 + g*256 + b.
func RGBToPacked(rgb RGB) int {
	return rgb.R*65536 + rgb.G*256 + rgb.B
}

// FromColor packs any color.Color. Alpha is dropped after un-premultiplying.
func FromColor(c color.Color) int {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBToPacked(RGB{int(n.R), int(n.G), int(n.B)})
}

// RGBA implements color.Color. The color is opaque and each channel is
// truncated to its low byte.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(uint8(c.R)) * 0x101
	g = uint32(uint8(c.G)) * 0x101
	b = uint32(uint8(c.B)) * 0x101
	return r, g, b, 0xffff
}

// Packed returns RGBToPacked(c).
func (c RGB) Packed() int { return RGBToPacked(c) }

// Hex returns the '#'-prefixed hex form of c.
func (c RGB) Hex() string { return Hex(RGBToPacked(c)) }

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
