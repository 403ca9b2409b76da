package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/scheerer/shade-pendulum/internal/config"
	"github.com/scheerer/shade-pendulum/internal/lights"
	"github.com/scheerer/shade-pendulum/internal/lights/lifx"
	"github.com/scheerer/shade-pendulum/internal/logging"
	"github.com/scheerer/shade-pendulum/internal/render"
	"github.com/scheerer/shade-pendulum/internal/source"
)

var logger = logging.New("main")

func main() {
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Invalid configuration")
	}
	logging.GetLeveler().SetAll(logging.ParseLevel(cfg.LogLevel))

	logger.With(zap.Any("config", cfg)).Info("Starting shade pendulum")

	logger.Info("Adjust COLOR_SOURCE to change where colors come from. Valid values are: [PENDULUM, SCREEN]")
	logger.Info("Adjust PENDULUM_HUE_FROM, PENDULUM_HUE_TO and PENDULUM_PERIOD to change the pendulum swing.")
	logger.Info("Adjust COLOR_ALGO to change the screen color algorithm. Valid values are: [AVERAGE, SQUARED_AVERAGE, MEDIAN, MODE]")
	logger.Info("Adjust LIGHT_TYPE to change the output. Valid values are: [LIFX, LOG]")
	logger.Info("Adjust MIN_BRIGHTNESS and MAX_BRIGHTNESS between 0 and 1.")
	logger.Info("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := source.New(cfg)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("Failed to create color source")
	}

	var lightService lights.LightService
	switch cfg.LightType {
	case config.LightLifx:
		lightService, err = lifx.NewLifx(lifx.Config{
			GroupName:     cfg.LightGroupName,
			MinBrightness: cfg.MinBrightness,
			MaxBrightness: cfg.MaxBrightness,
		})
		if err != nil {
			logger.With(zap.Error(err)).Fatal("Failed to create LIFX light service")
		}
	case config.LightLog:
		lightService = lights.NewLogLights()
	default:
		logger.Fatalf("unknown light type: %v", cfg.LightType)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		lightService.Start(ctx)
		return nil
	})
	eg.Go(func() error {
		return render.Run(ctx, render.Config{
			Interval:   cfg.RenderInterval,
			Transition: cfg.Transition,
		}, src, lightService)
	})

	if err := eg.Wait(); err != nil {
		logger.With(zap.Error(err)).Error("Stopped with error")
		return
	}
	logger.Info("Shutting down")
}
