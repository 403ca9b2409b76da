package color

// DefaultRGB is the mid-gray a new Value starts with.
var DefaultRGB = RGB{R: 100, G: 100, B: 100}

// Value holds the current color of a light as RGB. HSB is always derived
// from the stored RGB and never kept. A Value is not safe for concurrent use.
type Value struct {
	rgb RGB
}

func NewValue() *Value {
	return &Value{rgb: DefaultRGB}
}

func (v *Value) SetRGB(r, g, b uint8) {
	v.rgb = RGB{R: r, G: g, B: b}
}

func (v *Value) SetRGBColor(c RGB) {
	v.rgb = c
}

// SetRGBInts stores r, g and b clamped to [0,255].
func (v *Value) SetRGBInts(r, g, b int) {
	v.rgb = RGB{
		R: uint8(clampInt(r, 0, 255)),
		G: uint8(clampInt(g, 0, 255)),
		B: uint8(clampInt(b, 0, 255)),
	}
}

func (v *Value) RGB() RGB {
	return v.rgb
}

// SetHSB converts h, s and b to RGB and stores the result.
func (v *Value) SetHSB(h, s, b float64) {
	v.rgb = HSBToRGB(HSB{H: h, S: s, B: b})
}

func (v *Value) SetHSBColor(c HSB) {
	v.rgb = HSBToRGB(c)
}

// HSB returns the stored color as HSB.
func (v *Value) HSB() HSB {
	return RGBToHSB(v.rgb)
}
