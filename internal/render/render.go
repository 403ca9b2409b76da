package render

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/scheerer/shade-pendulum/internal/color"
	"github.com/scheerer/shade-pendulum/internal/diag"
	"github.com/scheerer/shade-pendulum/internal/lights"
	"github.com/scheerer/shade-pendulum/internal/logging"
	"github.com/scheerer/shade-pendulum/internal/source"
)

var logger = logging.New("render")

const slowFrameWarningInterval = 10 * time.Second

type Config struct {
	Interval   time.Duration
	Transition time.Duration
}

// Run pushes the next color of src to the lights every interval until ctx
// is done. Frames are skipped while no lights are known.
func Run(ctx context.Context, config Config, src source.Source, lightService lights.LightService) error {
	printer := diag.NewPrinter(logger)
	current := color.NewValue()

	var lastWarning time.Time
	for {
		if ctx.Err() != nil {
			return nil
		}

		if lightService.LightCount() == 0 {
			sleep(ctx, config.Interval)
			continue
		}

		startTime := time.Now()
		c, err := src.Next(ctx)
		sourceDuration := time.Since(startTime)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.With(zap.Error(err)).Error("Failed to get next color")
			sleep(ctx, config.Interval-sourceDuration)
			continue
		}

		if ctx.Err() != nil {
			// canceled while the source was working, don't send a stale color
			return nil
		}

		setColorStart := time.Now()
		lightService.SetColorWithDuration(ctx, c, config.Transition)
		setColorDuration := time.Since(setColorStart)

		current.SetRGBColor(c)
		printer.PrintRGB(current)
		printer.PrintHSB(current)

		totalDuration := time.Since(startTime)
		if totalDuration > config.Interval {
			if time.Since(lastWarning) > slowFrameWarningInterval {
				logger.With(
					diag.RGB("color", c),
					zap.Stringer("sourceDuration", sourceDuration),
					zap.Stringer("setColorDuration", setColorDuration),
					zap.Stringer("totalDuration", totalDuration)).
					Warn("Cannot keep up with RENDER_INTERVAL. Consider increasing RENDER_INTERVAL.")
				lastWarning = time.Now()
			}
			continue
		}
		sleep(ctx, config.Interval-totalDuration)
	}
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
