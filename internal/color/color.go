package color

import (
	"fmt"
	"image/color"
	"math"
)

const (
	MaxHue        = 360.0
	MaxSaturation = 100.0
	MaxBrightness = 100.0
)

// RGB is an additive red/green/blue triple, 0-255 per channel.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// HSB is a hue/saturation/brightness triple. H is in degrees [0,360),
// S and B are percentages [0,100].
type HSB struct {
	H float64
	S float64
	B float64
}

var (
	_ color.Color = RGB{}
	_ color.Color = HSB{}
)

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBA implements image/color.Color. RGB is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}.RGBA()
}

func (c HSB) String() string {
	return fmt.Sprintf("hsb(%.1f, %.1f%%, %.1f%%)", c.H, c.S, c.B)
}

// RGBA implements image/color.Color.
func (c HSB) RGBA() (r, g, b, a uint32) {
	return HSBToRGB(c).RGBA()
}

// Rounded returns the nearest integer degrees and percentages.
// A hue that rounds up to 360 wraps to 0.
func (c HSB) Rounded() (hue, sat, bri int) {
	n := c.normalized()
	hue = int(math.Round(n.H))
	if hue >= MaxHue {
		hue = 0
	}
	return hue, int(math.Round(n.S)), int(math.Round(n.B))
}

// normalized wraps the hue into [0,360) and clamps S and B into [0,100].
func (c HSB) normalized() HSB {
	return HSB{
		H: wrapHue(c.H),
		S: clamp(c.S, 0, MaxSaturation),
		B: clamp(c.B, 0, MaxBrightness),
	}
}

// FromColor converts any image/color.Color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{R: n.R, G: n.G, B: n.B}
}

var (
	RGBModel = color.ModelFunc(rgbModel)
	HSBModel = color.ModelFunc(hsbModel)
)

func rgbModel(c color.Color) color.Color {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	return FromColor(c)
}

func hsbModel(c color.Color) color.Color {
	if hsb, ok := c.(HSB); ok {
		return hsb
	}
	return RGBToHSB(FromColor(c))
}

func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, MaxHue)
	if h < 0 {
		h += MaxHue
	}
	// tiny negatives round back up to exactly 360 after the add
	if h >= MaxHue {
		h = 0
	}
	return h
}

func clamp(v, min, max float64) float64 {
	if math.IsNaN(v) || v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// toChannel scales a normalized [0,1] intensity to a 0-255 channel.
func toChannel(f float64) uint8 {
	return uint8(clamp(math.Round(f*255), 0, 255))
}
