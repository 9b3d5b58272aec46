package viz

import (
	"image/color"
	"math"
)

// Lighter brightens a color toward white by fraction f, in the manner of
// Mathematica's Lighter function: each channel moves f of the way from
// its value to the maximum. Alpha is preserved. f is clamped to [0, 1],
// so already-white colors are unchanged for any f.
func Lighter(c color.Color, f float64) color.NRGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.NRGBA{
		R: brighten(nc.R, f),
		G: brighten(nc.G, f),
		B: brighten(nc.B, f),
		A: nc.A,
	}
}

func brighten(v uint8, f float64) uint8 {
	return uint8(math.Round(float64(v) + f*float64(math.MaxUint8-v)))
}
