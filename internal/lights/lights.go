package lights

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/scheerer/shade-pendulum/internal/color"
	"github.com/scheerer/shade-pendulum/internal/diag"
	"github.com/scheerer/shade-pendulum/internal/logging"
)

var logger = logging.New("lights")

type LightService interface {
	// Start keeps the set of lights up to date until ctx is done.
	Start(ctx context.Context)
	LightCount() int
	SetColorWithDuration(ctx context.Context, color color.RGB, duration time.Duration)
}

// LogLights is a LightService without hardware. Every color it is given is
// logged, which makes it useful for dry runs.
type LogLights struct {
	logger *zap.SugaredLogger
	value  *color.Value
}

var _ LightService = (*LogLights)(nil)

func NewLogLights() *LogLights {
	return NewLogLightsWithLogger(logger)
}

func NewLogLightsWithLogger(logger *zap.SugaredLogger) *LogLights {
	return &LogLights{
		logger: logger,
		value:  color.NewValue(),
	}
}

func (l *LogLights) Start(ctx context.Context) {
	<-ctx.Done()
}

func (l *LogLights) LightCount() int {
	return 1
}

func (l *LogLights) SetColorWithDuration(ctx context.Context, c color.RGB, duration time.Duration) {
	l.value.SetRGBColor(c)
	l.logger.With(
		diag.RGB("rgb", l.value.RGB()),
		diag.HSB("hsb", l.value.HSB()),
		zap.Duration("duration", duration)).
		Info("Setting light color")
}
