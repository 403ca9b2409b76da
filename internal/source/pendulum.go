package source

import (
	"context"
	"math"
	"time"

	"github.com/scheerer/shade-pendulum/internal/color"
	"github.com/scheerer/shade-pendulum/internal/config"
)

// Pendulum swings the hue between two angles like a pendulum: slow at the
// ends, fastest through the middle. Saturation and brightness stay fixed.
type Pendulum struct {
	config config.PendulumConfig
	value  *color.Value
	start  time.Time
	now    func() time.Time
}

func NewPendulum(c config.PendulumConfig) *Pendulum {
	return newPendulumWithClock(c, time.Now)
}

func newPendulumWithClock(c config.PendulumConfig, now func() time.Time) *Pendulum {
	return &Pendulum{
		config: c,
		value:  color.NewValue(),
		start:  now(),
		now:    now,
	}
}

// Hue returns the pendulum's hue after elapsed time. It starts at HueFrom
// and reaches HueTo after half a period.
func (p *Pendulum) Hue(elapsed time.Duration) float64 {
	phase := 2 * math.Pi * float64(elapsed) / float64(p.config.Period)
	swing := (1 - math.Cos(phase)) / 2
	return p.config.HueFrom + (p.config.HueTo-p.config.HueFrom)*swing
}

func (p *Pendulum) Next(ctx context.Context) (color.RGB, error) {
	if err := ctx.Err(); err != nil {
		return color.RGB{}, err
	}
	p.value.SetHSB(p.Hue(p.now().Sub(p.start)), p.config.Saturation, p.config.Brightness)
	return p.value.RGB(), nil
}
