package app

import (
	"context"
	"fmt"

	"github.com/five82/kiosk/internal/assets"
	"github.com/five82/kiosk/internal/config"
	"github.com/five82/kiosk/internal/logging"
	"github.com/five82/kiosk/internal/prefs"
	"github.com/five82/kiosk/internal/status"
	"github.com/five82/kiosk/internal/ui"
)

// Options configure the kiosk application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/kiosk/prefs.toml
	Simulate   bool   // use simulated battery and Wi-Fi readings
}

// Run boots the launcher until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := prefs.Load(prefsPath)

	loader := assets.NewLoader(cfg.AssetRoot)
	if err := loader.Preload(assetNames(cfg)...); err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	hw := openHardware(cfg, opts.Simulate, logger)
	defer hw.Close()

	sampler := status.NewSampler(hw.battery,
		status.WithInterval(cfg.Status.SampleInterval),
		status.WithLogger(logger),
	)
	sampler.Start(ctx)

	logger.Info("kiosk started",
		"config", cfg.Path,
		"assets", cfg.AssetRoot,
		"default_page", cfg.DefaultPage,
		"simulate", opts.Simulate,
	)

	uiErr := ui.Run(ui.Options{
		Context:   ctx,
		Config:    &cfg,
		Assets:    loader,
		Battery:   sampler,
		Wifi:      hw.wifi,
		Logger:    logger,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
	})

	// The UI timers are already stopped; the sampler goes last.
	shutdown(sampler, cfg.Status.StopGrace, logger)
	logger.Info("kiosk stopped")
	return uiErr
}
