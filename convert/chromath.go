package convert

import (
	"github.com/jkl1337/go-chromath"
)

var (
	// for ReferenceLab; D65 -> D65 leaves the Bradford adaptation an identity
	refIlluminant = &chromath.IlluminantRefD65
	rgb2Xyz       = chromath.NewRGBTransformer(
		&chromath.SpaceSRGB,
		&chromath.AdaptationBradford,
		refIlluminant,
		&chromath.Scaler8bClamping,
		1.0,
		nil,
	)
	lab2Xyz = chromath.NewLabTransformer(refIlluminant)
)

// Chromath returns c as a chromath.RGB on the 0-255 scale.
func (c RGB) Chromath() chromath.RGB {
	return chromath.RGB{float64(c.R), float64(c.G), float64(c.B)}
}

// Chromath returns c as a chromath.Lab.
func (c Lab) Chromath() chromath.Lab {
	return chromath.Lab{c.L, c.A, c.B}
}

// LabFromChromath converts a chromath.Lab.
func LabFromChromath(c chromath.Lab) Lab {
	return Lab{L: c.L(), A: c.A(), B: c.B()}
}

// ReferenceLab converts color with go-chromath's sRGB working space, which
// uses the exact sRGB curve and a matrix derived from the primaries. The
// result agrees with PackedToLab to a few hundredths and is useful to check
// it against an independent implementation.
func ReferenceLab(color int) Lab {
	xyz := rgb2Xyz.Convert(PackedToRGB(color).Chromath())
	return LabFromChromath(lab2Xyz.Invert(xyz))
}
