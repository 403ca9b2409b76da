package source

import (
	"context"
	"image"
	"time"

	"github.com/kbinani/screenshot"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scheerer/shade-pendulum/internal/color"
	"github.com/scheerer/shade-pendulum/internal/config"
)

// Screen samples the color of a display.
type Screen struct {
	config  config.ScreenConfig
	sampler Sampler
	capture func(displayIndex int) (*image.RGBA, error)
}

func NewScreen(c config.ScreenConfig) (*Screen, error) {
	sampler, ok := samplers[c.ColorAlgo]
	if !ok {
		return nil, errors.Errorf("unknown color algorithm: %v", c.ColorAlgo)
	}
	if displays := screenshot.NumActiveDisplays(); c.ScreenNumber >= displays {
		return nil, errors.Errorf("screen %d not found, %d active displays", c.ScreenNumber, displays)
	}

	return &Screen{
		config:  c,
		sampler: sampler,
		capture: screenshot.CaptureDisplay,
	}, nil
}

func (s *Screen) Next(ctx context.Context) (color.RGB, error) {
	startTime := time.Now()
	img, err := s.capture(s.config.ScreenNumber)
	captureScreenDuration := time.Since(startTime)
	if err != nil {
		return color.RGB{}, errors.Wrapf(err, "failed to capture screen %d", s.config.ScreenNumber)
	}
	if err := ctx.Err(); err != nil {
		return color.RGB{}, err
	}

	colorCalculationStart := time.Now()
	c := s.sampler(img, s.config.PixelGridSize)

	logger.With(
		zap.Stringer("captureScreenDuration", captureScreenDuration),
		zap.Stringer("colorCalculationDuration", time.Since(colorCalculationStart))).
		Debug("Sampled screen color")

	return c, nil
}
