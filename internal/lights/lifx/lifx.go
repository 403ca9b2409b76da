package lifx

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/pdf/golifx"
	"github.com/pdf/golifx/common"
	"github.com/pdf/golifx/protocol"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scheerer/shade-pendulum/internal/color"
	"github.com/scheerer/shade-pendulum/internal/diag"
	"github.com/scheerer/shade-pendulum/internal/lights"
	"github.com/scheerer/shade-pendulum/internal/logging"
)

var logger = logging.New("lifx")

const (
	defaultKelvin     = 3500
	discoveryInterval = 15 * time.Second
	discoveryTimeout  = 5 * time.Second
)

type LifxLights struct {
	config Config
	client *golifx.Client

	lightsMu sync.RWMutex
	group    common.Group
}

var _ lights.LightService = (*LifxLights)(nil)

type Config struct {
	GroupName     string
	MaxBrightness float64
	MinBrightness float64
}

// NewLifx creates a LIFX client. Call Start to discover the light group.
func NewLifx(config Config) (*LifxLights, error) {
	client, err := golifx.NewClient(&protocol.V2{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create LIFX client")
	}

	return &LifxLights{
		config: config,
		client: client,
	}, nil
}

func (l *LifxLights) Start(ctx context.Context) {
	ticker := time.NewTicker(discoveryInterval)
	defer ticker.Stop()
	defer func() {
		if err := l.client.Close(); err != nil {
			logger.With(zap.Error(err)).Warn("Failed to close LIFX client")
		}
	}()

	if err := l.client.SetDiscoveryInterval(discoveryInterval); err != nil {
		logger.With(zap.Error(err)).Warn("Failed to set LIFX discovery interval")
	}

	l.discoverWithTimeout(ctx)
	for {
		select {
		case <-ticker.C:
			l.discoverWithTimeout(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (l *LifxLights) discoverWithTimeout(ctx context.Context) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, discoveryTimeout)
	defer cancel()
	l.discover(ctxWithTimeout)
}

func (l *LifxLights) discover(ctx context.Context) {
	logger.With(zap.String("group", l.config.GroupName)).Debug("LIFX discovery starting...")

	type result struct {
		group common.Group
		err   error
	}
	completed := make(chan result, 1)
	go func() {
		g, err := l.client.GetGroupByLabel(l.config.GroupName)
		completed <- result{group: g, err: err}
	}()

	select {
	case <-ctx.Done():
		logger.With(zap.Error(ctx.Err())).Warn("LIFX discovery timed out.")
	case res := <-completed:
		if res.err != nil {
			logger.With(zap.Error(res.err)).Warn("Failed to get LIFX group by label")
			return
		}
		if res.group == nil {
			logger.With(zap.String("group", l.config.GroupName)).Warn("Couldn't discover group.")
			return
		}
		logger.With(zap.String("group", res.group.GetLabel())).Info("LIFX group found")
		l.lightsMu.Lock()
		l.group = res.group
		l.lightsMu.Unlock()
	}
}

func (l *LifxLights) LightCount() int {
	l.lightsMu.RLock()
	defer l.lightsMu.RUnlock()

	if l.group == nil {
		return 0
	}
	count := 0
	for range l.group.Lights() {
		count++
	}
	return count
}

func (l *LifxLights) SetColorWithDuration(ctx context.Context, c color.RGB, duration time.Duration) {
	l.lightsMu.RLock()
	group := l.group
	l.lightsMu.RUnlock()
	if group == nil {
		return
	}

	lifxColor := adjustColor(newLifxColor(c), l.config)

	logger.With(diag.RGB("color", c),
		zap.Any("lifxColor", lifxColor)).
		Debug("Setting LIFX group color")

	if err := group.SetColor(lifxColor, duration); err != nil {
		logger.With(zap.Error(err)).Warn("Failed to set color for LIFX group")
	}
}

// newLifxColor maps RGB onto the LIFX 16-bit HSBK space.
func newLifxColor(c color.RGB) common.Color {
	hsb := color.RGBToHSB(c)

	return common.Color{
		Hue:        scale(hsb.H / color.MaxHue),
		Saturation: scale(hsb.S / color.MaxSaturation),
		Brightness: scale(hsb.B / color.MaxBrightness),
		Kelvin:     defaultKelvin,
	}
}

func scale(f float64) uint16 {
	return uint16(math.Round(math.Min(1, math.Max(0, f)) * math.MaxUint16))
}

// adjustColor turns near-black colors off and keeps brightness within the
// configured bounds.
func adjustColor(c common.Color, config Config) common.Color {
	blackFraction := 0.015
	blackThreshold := uint16(blackFraction * math.MaxUint16)
	if c.Brightness <= blackThreshold && c.Saturation <= blackThreshold {
		return common.Color{Kelvin: defaultKelvin}
	}

	c.Brightness = uint16(math.Min(config.MaxBrightness*math.MaxUint16, math.Max(config.MinBrightness*math.MaxUint16, float64(c.Brightness))))

	return c
}
