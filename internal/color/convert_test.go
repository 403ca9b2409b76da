package color

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSBToRGB(t *testing.T) {
	tt := []struct {
		name string
		hsb  HSB
		want RGB
	}{
		{"red", HSB{0, 100, 100}, RGB{255, 0, 0}},
		{"yellow on sector boundary", HSB{60, 100, 100}, RGB{255, 255, 0}},
		{"green", HSB{120, 100, 100}, RGB{0, 255, 0}},
		{"cyan", HSB{180, 100, 100}, RGB{0, 255, 255}},
		{"blue", HSB{240, 100, 100}, RGB{0, 0, 255}},
		{"magenta", HSB{300, 100, 100}, RGB{255, 0, 255}},
		{"orange", HSB{30, 100, 100}, RGB{255, 128, 0}},
		{"half brightness red", HSB{0, 100, 50}, RGB{128, 0, 0}},
		{"pastel", HSB{210, 50, 80}, RGB{102, 153, 204}},
		{"white", HSB{0, 0, 100}, RGB{255, 255, 255}},
		{"black", HSB{0, 0, 0}, RGB{0, 0, 0}},
		{"hue 360 wraps to red", HSB{360, 100, 100}, RGB{255, 0, 0}},
		{"hue 480 wraps to green", HSB{480, 100, 100}, RGB{0, 255, 0}},
		{"negative hue wraps to blue", HSB{-120, 100, 100}, RGB{0, 0, 255}},
		{"saturation above range is clamped", HSB{0, 250, 100}, RGB{255, 0, 0}},
		{"negative brightness is clamped", HSB{0, 100, -20}, RGB{0, 0, 0}},
		{"brightness above range is clamped", HSB{0, 0, 180}, RGB{255, 255, 255}},
		{"NaN hue is red", HSB{math.NaN(), 100, 100}, RGB{255, 0, 0}},
		{"infinite hue is red", HSB{math.Inf(1), 100, 100}, RGB{255, 0, 0}},
		{"NaN saturation is gray", HSB{90, math.NaN(), 100}, RGB{255, 255, 255}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HSBToRGB(tc.hsb))
		})
	}
}

func TestHSBToRGBZeroSaturationIsGray(t *testing.T) {
	for bri := 0; bri <= 100; bri++ {
		want := uint8(math.Round(float64(bri) / 100 * 255))
		for hue := 0; hue < 360; hue += 15 {
			got := HSBToRGB(HSB{H: float64(hue), S: 0, B: float64(bri)})
			require.Equal(t, RGB{want, want, want}, got, "hue=%d bri=%d", hue, bri)
		}
	}
}

func TestHSBToRGBZeroBrightnessIsBlack(t *testing.T) {
	for hue := -360; hue <= 720; hue += 10 {
		for sat := 0; sat <= 100; sat += 5 {
			got := HSBToRGB(HSB{H: float64(hue), S: float64(sat), B: 0})
			require.Equal(t, RGB{}, got, "hue=%d sat=%d", hue, sat)
		}
	}
}

func TestHSBToRGBHueWraparound(t *testing.T) {
	for hue := 0; hue < 360; hue++ {
		for _, turns := range []float64{-2, -1, 1, 3} {
			wrapped := float64(hue) + turns*360
			assert.Equal(t,
				HSBToRGB(HSB{float64(hue), 70, 90}),
				HSBToRGB(HSB{wrapped, 70, 90}),
				"hue=%d wrapped=%v", hue, wrapped)
		}
	}
}

func TestHSBToRGBBrightnessMonotonic(t *testing.T) {
	for hue := 0; hue < 360; hue += 7 {
		for sat := 0; sat <= 100; sat += 10 {
			prev := RGB{}
			for bri := 0; bri <= 100; bri++ {
				got := HSBToRGB(HSB{float64(hue), float64(sat), float64(bri)})
				if got.R < prev.R || got.G < prev.G || got.B < prev.B {
					t.Fatalf("hue=%d sat=%d: bri=%d gave %v after %v", hue, sat, bri, got, prev)
				}
				prev = got
			}
		}
	}
}

func TestHSBToRGBMatchesColorful(t *testing.T) {
	for hue := 0; hue < 360; hue += 3 {
		for sat := 0; sat <= 100; sat += 10 {
			for bri := 0; bri <= 100; bri += 10 {
				r, g, b := colorful.Hsv(float64(hue), float64(sat)/100, float64(bri)/100).RGB255()
				got := HSBToRGB(HSB{float64(hue), float64(sat), float64(bri)})
				assert.InDelta(t, r, got.R, 1, "hsb(%d,%d,%d) red", hue, sat, bri)
				assert.InDelta(t, g, got.G, 1, "hsb(%d,%d,%d) green", hue, sat, bri)
				assert.InDelta(t, b, got.B, 1, "hsb(%d,%d,%d) blue", hue, sat, bri)
			}
		}
	}
}

func TestRGBToHSB(t *testing.T) {
	tt := []struct {
		name string
		rgb  RGB
		want HSB
	}{
		{"black", RGB{0, 0, 0}, HSB{0, 0, 0}},
		{"white", RGB{255, 255, 255}, HSB{0, 0, 100}},
		{"red", RGB{255, 0, 0}, HSB{0, 100, 100}},
		{"yellow", RGB{255, 255, 0}, HSB{60, 100, 100}},
		{"green", RGB{0, 255, 0}, HSB{120, 100, 100}},
		{"cyan", RGB{0, 255, 255}, HSB{180, 100, 100}},
		{"blue", RGB{0, 0, 255}, HSB{240, 100, 100}},
		{"magenta", RGB{255, 0, 255}, HSB{300, 100, 100}},
		{"rose wraps below 360", RGB{255, 0, 128}, HSB{329.88235294117646, 100, 100}},
		{"default gray", DefaultRGB, HSB{0, 0, 39.21568627450981}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := RGBToHSB(tc.rgb)
			assert.InDelta(t, tc.want.H, got.H, 1e-9)
			assert.InDelta(t, tc.want.S, got.S, 1e-9)
			assert.InDelta(t, tc.want.B, got.B, 1e-9)
		})
	}
}

func TestRGBToHSBMatchesColorful(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				if r == g && g == b {
					continue
				}
				h, s, v := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hsv()
				got := RGBToHSB(RGB{uint8(r), uint8(g), uint8(b)})
				assert.InDelta(t, h, got.H, 1e-6, "rgb(%d,%d,%d) hue", r, g, b)
				assert.InDelta(t, s*100, got.S, 1e-6, "rgb(%d,%d,%d) saturation", r, g, b)
				assert.InDelta(t, v*100, got.B, 1e-6, "rgb(%d,%d,%d) brightness", r, g, b)
			}
		}
	}
}

func TestRGBToHSBRanges(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 5 {
				got := RGBToHSB(RGB{uint8(r), uint8(g), uint8(b)})
				if got.H < 0 || got.H >= 360 || got.S < 0 || got.S > 100 || got.B < 0 || got.B > 100 {
					t.Fatalf("rgb(%d,%d,%d) gave out of range %v", r, g, b, got)
				}
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	step := 1
	if testing.Short() {
		step = 7
	}

	for r := 0; r < 256; r += step {
		for g := 0; g < 256; g += step {
			for b := 0; b < 256; b += step {
				in := RGB{uint8(r), uint8(g), uint8(b)}
				out := HSBToRGB(RGBToHSB(in))
				if absDiff(in.R, out.R) > 1 || absDiff(in.G, out.G) > 1 || absDiff(in.B, out.B) > 1 {
					t.Fatalf("round trip of %v gave %v", in, out)
				}
			}
		}
	}
}

func TestIntAPI(t *testing.T) {
	r, g, b := HSBToRGBInts(60, 100, 100)
	assert.Equal(t, []int{255, 255, 0}, []int{r, g, b})

	r, g, b = HSBToRGBInts(360, 100, 100)
	assert.Equal(t, []int{255, 0, 0}, []int{r, g, b})

	h, s, v := RGBToHSBInts(0, 0, 255)
	assert.Equal(t, []int{240, 100, 100}, []int{h, s, v})

	h, s, v = RGBToHSBInts(-40, 300, 0)
	assert.Equal(t, []int{120, 100, 100}, []int{h, s, v}, "channels are clamped before converting")

	h, s, v = RGBToHSBInts(255, 0, 1)
	assert.Equal(t, []int{0, 100, 100}, []int{h, s, v}, "hue rounding up to 360 wraps to 0")
}

func TestImageColorInterop(t *testing.T) {
	r, g, b, a := HSB{H: 120, S: 100, B: 100}.RGBA()
	assert.Equal(t, []uint32{0, 0xFFFF, 0, 0xFFFF}, []uint32{r, g, b, a})

	converted := HSBModel.Convert(RGB{R: 255, G: 255, B: 0}).(HSB)
	assert.InDelta(t, 60, converted.H, 1e-9)

	assert.Equal(t, RGB{R: 0, G: 0, B: 255}, RGBModel.Convert(HSB{H: 240, S: 100, B: 100}))
	assert.Equal(t, "rgb(1, 2, 3)", RGB{1, 2, 3}.String())
	assert.Equal(t, "hsb(60.0, 50.0%, 25.0%)", HSB{60, 50, 25}.String())
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
