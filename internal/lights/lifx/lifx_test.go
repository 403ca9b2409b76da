package lifx

import (
	"context"
	"testing"
	"time"

	"github.com/pdf/golifx/common"
	"github.com/stretchr/testify/assert"

	"github.com/scheerer/shade-pendulum/internal/color"
)

func TestNewLifxColor(t *testing.T) {
	tt := []struct {
		name string
		rgb  color.RGB
		want common.Color
	}{
		{"black", color.RGB{}, common.Color{Kelvin: 3500}},
		{"white", color.RGB{R: 255, G: 255, B: 255}, common.Color{Brightness: 0xFFFF, Kelvin: 3500}},
		{"red", color.RGB{R: 255}, common.Color{Saturation: 0xFFFF, Brightness: 0xFFFF, Kelvin: 3500}},
		{"blue", color.RGB{B: 255}, common.Color{Hue: 43690, Saturation: 0xFFFF, Brightness: 0xFFFF, Kelvin: 3500}},
		{"dim green", color.RGB{G: 51}, common.Color{Hue: 21845, Saturation: 0xFFFF, Brightness: 13107, Kelvin: 3500}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, newLifxColor(tc.rgb))
		})
	}
}

func TestAdjustColor(t *testing.T) {
	config := Config{MinBrightness: 0.25, MaxBrightness: 0.5}

	tt := []struct {
		name string
		in   common.Color
		want common.Color
	}{
		{
			"near black turns off",
			common.Color{Hue: 100, Saturation: 200, Brightness: 300, Kelvin: 3500},
			common.Color{Kelvin: 3500},
		},
		{
			"bright is capped",
			common.Color{Hue: 100, Saturation: 0xFFFF, Brightness: 0xFFFF, Kelvin: 3500},
			common.Color{Hue: 100, Saturation: 0xFFFF, Brightness: 32767, Kelvin: 3500},
		},
		{
			"dim saturated is raised",
			common.Color{Hue: 100, Saturation: 0xFFFF, Brightness: 1000, Kelvin: 3500},
			common.Color{Hue: 100, Saturation: 0xFFFF, Brightness: 16383, Kelvin: 3500},
		},
		{
			"within bounds is untouched",
			common.Color{Hue: 100, Saturation: 0xFFFF, Brightness: 20000, Kelvin: 3500},
			common.Color{Hue: 100, Saturation: 0xFFFF, Brightness: 20000, Kelvin: 3500},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, adjustColor(tc.in, config))
		})
	}
}

func TestLightCountWithoutGroup(t *testing.T) {
	l := &LifxLights{config: Config{GroupName: "PENDULUM"}}
	assert.Zero(t, l.LightCount())

	// no group discovered yet, so this must not touch the network
	l.SetColorWithDuration(context.Background(), color.RGB{R: 255}, time.Second)
}
