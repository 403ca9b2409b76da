package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/scheerer/shade-pendulum/internal/color"
	"github.com/scheerer/shade-pendulum/internal/logging"
)

func TestPrinter(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := NewPrinter(logging.NewWithCore("diag", core))

	v := color.NewValue()
	v.SetHSB(120, 100, 50)

	p.PrintRGB(v)
	p.PrintHSB(v)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, "rgb", entries[0].Message)
	assert.Equal(t, map[string]interface{}{
		"red":   uint8(0),
		"green": uint8(128),
		"blue":  uint8(0),
	}, entries[0].ContextMap())

	assert.Equal(t, "hsb", entries[1].Message)
	assert.Equal(t, map[string]interface{}{
		"hue": int64(120),
		"sat": int64(100),
		"val": int64(50),
	}, entries[1].ContextMap())
}

func TestPrinterIsQuietAboveDebug(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewPrinter(logging.NewWithCore("diag", core))

	p.PrintRGB(color.NewValue())
	assert.Zero(t, logs.Len())
}

func TestFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	zap.New(core).Info("color",
		RGB("rgb", color.RGB{R: 1, G: 2, B: 3}),
		HSB("hsb", color.HSB{H: 10, S: 20, B: 30}))

	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, map[string]interface{}{"r": uint8(1), "g": uint8(2), "b": uint8(3)}, ctx["rgb"])
	assert.Equal(t, map[string]interface{}{"h": 10.0, "s": 20.0, "b": 30.0}, ctx["hsb"])
}
