package source

import (
	"context"

	"github.com/pkg/errors"

	"github.com/scheerer/shade-pendulum/internal/color"
	"github.com/scheerer/shade-pendulum/internal/config"
	"github.com/scheerer/shade-pendulum/internal/logging"
)

var logger = logging.New("source")

// Source produces the color the lights should show next.
type Source interface {
	Next(ctx context.Context) (color.RGB, error)
}

// New builds the source selected by c.ColorSource.
func New(c config.Config) (Source, error) {
	switch c.ColorSource {
	case config.SourcePendulum:
		return NewPendulum(c.Pendulum), nil
	case config.SourceScreen:
		return NewScreen(c.Screen)
	default:
		return nil, errors.Errorf("unknown color source: %v", c.ColorSource)
	}
}
