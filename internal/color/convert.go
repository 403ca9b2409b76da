package color

import "math"

// HSBToRGB converts an HSB triple to RGB. Hue is taken modulo 360 and
// saturation/brightness are clamped to [0,100], so any input yields a
// valid color.
func HSBToRGB(c HSB) RGB {
	c = c.normalized()

	s := c.S / MaxSaturation
	v := c.B / MaxBrightness
	chroma := v * s

	// sector in [0,6); boundaries belong to the lower sector
	hPrime := c.H / 60
	x := chroma * (1 - math.Abs(math.Mod(hPrime, 2)-1))

	var r, g, b float64
	switch {
	case hPrime < 1:
		r, g, b = chroma, x, 0
	case hPrime < 2:
		r, g, b = x, chroma, 0
	case hPrime < 3:
		r, g, b = 0, chroma, x
	case hPrime < 4:
		r, g, b = 0, x, chroma
	case hPrime < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	m := v - chroma
	return RGB{
		R: toChannel(r + m),
		G: toChannel(g + m),
		B: toChannel(b + m),
	}
}

// RGBToHSB converts an RGB triple to HSB in degrees and percent.
func RGBToHSB(c RGB) HSB {
	red := float64(c.R) / 255.0
	green := float64(c.G) / 255.0
	blue := float64(c.B) / 255.0

	max := math.Max(red, math.Max(green, blue))
	min := math.Min(red, math.Min(green, blue))
	chroma := max - min

	var h, s float64
	v := max // brightness is the max of RGB

	if max > 0 {
		s = chroma / max
	}

	if chroma > 0 {
		switch max {
		case red:
			h = math.Mod((green-blue)/chroma, 6)
		case green:
			h = (blue-red)/chroma + 2
		default:
			h = (red-green)/chroma + 4
		}
		h *= 60
	}

	return HSB{
		H: wrapHue(h),
		S: s * MaxSaturation,
		B: v * MaxBrightness,
	}
}

// HSBToRGBInts is HSBToRGB for integer degrees and percentages.
func HSBToRGBInts(hue, sat, bri int) (r, g, b int) {
	c := HSBToRGB(HSB{H: float64(hue), S: float64(sat), B: float64(bri)})
	return int(c.R), int(c.G), int(c.B)
}

// RGBToHSBInts is RGBToHSB for integer channels. Channels outside [0,255]
// are clamped; the result is rounded to whole degrees and percentages.
func RGBToHSBInts(r, g, b int) (hue, sat, bri int) {
	return RGBToHSB(RGB{
		R: uint8(clampInt(r, 0, 255)),
		G: uint8(clampInt(g, 0, 255)),
		B: uint8(clampInt(b, 0, 255)),
	}).Rounded()
}
