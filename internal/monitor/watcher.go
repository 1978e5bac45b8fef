// Package monitor keeps a device registry in sync with the platform:
// it enumerates devices at startup and re-enumerates on sound-subsystem
// hotplug events.
package monitor

import (
	"context"
	"log/slog"
	"time"

	"github.com/smazurov/audionode/internal/device"
	"github.com/smazurov/audionode/internal/logging"
)

// Enumerator lists the devices currently available to the registry.
type Enumerator func() ([]device.Descriptor, error)

// Watcher refreshes a registry from an enumerator, initially and on every
// hotplug event.
type Watcher struct {
	registry  *device.Registry
	enumerate Enumerator
	logger    *slog.Logger
	settle    time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a watcher for the given registry and enumerator.
func New(registry *device.Registry, enumerate Enumerator) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		registry:  registry,
		enumerate: enumerate,
		logger:    logging.GetLogger("monitor"),
		// Give the kernel time to finish enumerating after an "add" event.
		settle: time.Second,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start performs the initial refresh and begins hotplug monitoring where
// the platform supports it.
func (w *Watcher) Start() error {
	w.refresh()
	return w.startEvents()
}

// Stop ends hotplug monitoring.
func (w *Watcher) Stop() {
	w.cancel()
}

func (w *Watcher) refresh() {
	devs, err := w.enumerate()
	if err != nil {
		w.logger.Warn("Device enumeration failed", "error", err)
		return
	}
	// Notification devices draw from the same playback catalog.
	w.registry.Refresh(device.Playback, devs)
	w.registry.Refresh(device.Notify, devs)
	w.logger.Debug("Registry refreshed", "devices", len(devs))
}
