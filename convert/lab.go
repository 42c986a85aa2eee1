package convert

import (
	"fmt"
	"math"
)

// D65 reference white.
const (
	WhiteX = 0.95047
	WhiteY = 1.0
	WhiteZ = 1.08883
)

const (
	// companding threshold on the normalized channel value
	srgbThreshold = 0.03928

	labEpsilon = 216.0 / 24389.0
)

// SRGB holds gamma-expanded (linear) sRGB channels, in [0, 1] for byte input.
type SRGB struct {
	R, G, B float64
}

// XYZ holds CIE 1931 tristimulus values for sRGB primaries under D65.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE L*a*b* color. L is in [0, 100] for real colors.
type Lab struct {
	L, A, B float64
}

func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%.6f, %.6f, %.6f)", c.X, c.Y, c.Z)
}

func (c Lab) String() string {
	return fmt.Sprintf("lab(%.4f, %.4f, %.4f)", c.L, c.A, c.B)
}

// PackedToLab runs color through the whole forward pipeline.
func PackedToLab(color int) Lab {
	return XYZToLab(SRGBToXYZ(RGBToSRGB(PackedToRGB(color))))
}

// Linearize applies the sRGB-to-linear transfer function to a channel
// normalized to [0, 1].
func Linearize(v float64) float64 {
	if v <= srgbThreshold {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func rgbToSRGBStep(v int) float64 {
	return Linearize(float64(v) / 255)
}

// RGBToSRGB gamma-expands each byte channel of rgb.
func RGBToSRGB(rgb RGB) SRGB {
	return SRGB{
		R: rgbToSRGBStep(rgb.R),
		G: rgbToSRGBStep(rgb.G),
		B: rgbToSRGBStep(rgb.B),
	}
}

// SRGBToXYZ applies the sRGB (D65) primaries matrix.
func SRGBToXYZ(c SRGB) XYZ {
	return XYZ{
		X: 0.4124564*c.R + 0.3575761*c.G + 0.1804375*c.B,
		Y: 0.2126729*c.R + 0.7151522*c.G + 0.0721750*c.B,
		Z: 0.0193339*c.R + 0.1191920*c.G + 0.9503041*c.B,
	}
}

func xyzToLabStep(t float64) float64 {
	if t > labEpsilon {
		return math.Pow(t, 1.0/3.0)
	}
	return 841.0/108.0*t + 4.0/29.0
}

// XYZToLab converts c to L*a*b* relative to the D65 white point.
func XYZToLab(c XYZ) Lab {
	fx := xyzToLabStep(c.X / WhiteX)
	fy := xyzToLabStep(c.Y / WhiteY)
	fz := xyzToLabStep(c.Z / WhiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}
