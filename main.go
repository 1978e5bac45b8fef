package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smazurov/audionode/cmd"
	"github.com/smazurov/audionode/internal/api"
	"github.com/smazurov/audionode/internal/config"
	"github.com/smazurov/audionode/internal/device"
	"github.com/smazurov/audionode/internal/logging"
	"github.com/smazurov/audionode/internal/monitor"
)

const protocol = "alsa"

// Options for the CLI - flat structure with toml mapping.
type Options struct {
	Config string `help:"Path to configuration file" short:"c" default:"config.toml"`

	// Server settings
	Port string `help:"Port to listen on" short:"p" default:":8090" toml:"server.port" env:"SERVER_PORT"`

	// Device settings
	DevicesFile string `help:"Device pin file" default:"devices.toml" toml:"devices.pin_file" env:"DEVICES_PIN_FILE"`

	// Auth settings
	AuthUsername string `help:"Basic auth username" default:"admin" toml:"auth.username" env:"AUTH_USERNAME"`
	AuthPassword string `help:"Basic auth password" default:"password" toml:"auth.password" env:"AUTH_PASSWORD"`

	// Logging settings
	LoggingLevel   string `help:"Global logging level (debug, info, warn, error)" default:"info" toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat  string `help:"Logging format (text, json)" default:"text" toml:"logging.format" env:"LOGGING_FORMAT"`
	LoggingDevices string `help:"Devices logging level" default:"info" toml:"logging.devices" env:"LOGGING_DEVICES"`
	LoggingRender  string `help:"Render logging level" default:"info" toml:"logging.render" env:"LOGGING_RENDER"`
	LoggingCapture string `help:"Capture logging level" default:"info" toml:"logging.capture" env:"LOGGING_CAPTURE"`
	LoggingMonitor string `help:"Monitor logging level" default:"info" toml:"logging.monitor" env:"LOGGING_MONITOR"`
	LoggingAPI     string `help:"API logging level" default:"info" toml:"logging.api" env:"LOGGING_API"`
}

// applyPins pins registry selections from the device pin file. Empty pin
// values leave the flow tracking the platform default.
func applyPins(registry *device.Registry, pins config.DevicePins, logger *slog.Logger) {
	apply := func(flow device.DataFlow, raw string) {
		if raw == "" {
			return
		}
		locator, err := device.ParseLocator(raw)
		if err != nil {
			logger.Warn("Ignoring malformed device pin", "flow", flow.String(), "locator", raw, "error", err)
			return
		}
		if err := registry.SetSelectedDevice(flow, locator); err != nil {
			logger.Warn("Failed to apply device pin", "flow", flow.String(), "locator", raw, "error", err)
		}
	}
	apply(device.Playback, pins.Devices.Playback)
	apply(device.Notify, pins.Devices.Notify)
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, opts *Options) {
		if loadErr := config.Load(opts, nil); loadErr != nil {
			slog.Warn("Failed to load config", "error", loadErr)
		}

		logging.Initialize(logging.Config{
			Level:  opts.LoggingLevel,
			Format: opts.LoggingFormat,
			Modules: map[string]string{
				"devices": opts.LoggingDevices,
				"render":  opts.LoggingRender,
				"capture": opts.LoggingCapture,
				"monitor": opts.LoggingMonitor,
				"api":     opts.LoggingAPI,
			},
		})

		logger := logging.GetLogger("main")

		// Device registry plus the hotplug-driven catalog watcher
		registry := device.NewRegistry(protocol)
		device.Register(registry)

		watcher := monitor.New(registry, monitor.ALSAEnumerator(protocol))

		// Pin file: applied at startup and re-applied on change
		pinWatcher := config.NewWatcher(opts.DevicesFile, 500*time.Millisecond, config.LoadDevicePins, logger)
		pinWatcher.OnReload(func(pins config.DevicePins) {
			logger.Info("Device pin file changed, reapplying", "path", opts.DevicesFile)
			applyPins(registry, pins, logger)
		})

		server := api.NewServer(&api.Options{
			AuthUsername:      opts.AuthUsername,
			AuthPassword:      opts.AuthPassword,
			Registry:          registry,
			PrometheusHandler: promhttp.Handler(),
		})

		hooks.OnStart(func() {
			if startErr := watcher.Start(); startErr != nil {
				logger.Warn("Device monitoring unavailable", "error", startErr)
			}

			pins, pinErr := config.LoadDevicePins(opts.DevicesFile)
			if pinErr != nil {
				logger.Warn("Failed to load device pins", "path", opts.DevicesFile, "error", pinErr)
			} else {
				applyPins(registry, pins, logger)
			}
			if watchErr := pinWatcher.Start(); watchErr != nil {
				logger.Debug("Pin file watch unavailable", "path", opts.DevicesFile, "error", watchErr)
			}

			logger.Info("Starting HTTP server", "port", opts.Port)
			if startErr := server.Start(opts.Port); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
				logger.Error("Failed to start HTTP server", "error", startErr)
				os.Exit(1)
			}
		})

		hooks.OnStop(func() {
			logger.Info("Shutting down server")
			if stopErr := server.Stop(); stopErr != nil {
				logger.Error("Error stopping HTTP server", "error", stopErr)
			}
			if stopErr := pinWatcher.Stop(); stopErr != nil {
				logger.Error("Error stopping pin watcher", "error", stopErr)
			}
			watcher.Stop()
		})
	})

	cli.Root().AddCommand(cmd.CreateDevicesCmd())

	cli.Run()
}
