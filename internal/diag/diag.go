// Package diag prints colors for debugging. It is kept apart from the color
// package so the conversions stay free of any output concerns.
package diag

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/scheerer/shade-pendulum/internal/color"
)

// ColorHolder is anything that exposes its current color in both models.
type ColorHolder interface {
	RGB() color.RGB
	HSB() color.HSB
}

type Printer struct {
	logger *zap.SugaredLogger
}

func NewPrinter(logger *zap.SugaredLogger) *Printer {
	return &Printer{logger: logger}
}

func (p *Printer) PrintRGB(c ColorHolder) {
	rgb := c.RGB()
	p.logger.Debugw("rgb", "red", rgb.R, "green", rgb.G, "blue", rgb.B)
}

func (p *Printer) PrintHSB(c ColorHolder) {
	hue, sat, bri := c.HSB().Rounded()
	p.logger.Debugw("hsb", "hue", hue, "sat", sat, "val", bri)
}

// RGB returns a structured zap field for c.
func RGB(key string, c color.RGB) zap.Field {
	return zap.Object(key, rgbObject(c))
}

// HSB returns a structured zap field for c.
func HSB(key string, c color.HSB) zap.Field {
	return zap.Object(key, hsbObject(c))
}

type rgbObject color.RGB

func (o rgbObject) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint8("r", o.R)
	enc.AddUint8("g", o.G)
	enc.AddUint8("b", o.B)
	return nil
}

type hsbObject color.HSB

func (o hsbObject) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat64("h", o.H)
	enc.AddFloat64("s", o.S)
	enc.AddFloat64("b", o.B)
	return nil
}
