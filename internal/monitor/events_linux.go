//go:build linux

package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/smazurov/audionode/internal/metrics"
	"github.com/smazurov/audionode/pkg/hotplug"
)

func (w *Watcher) startEvents() error {
	mon, err := hotplug.NewMonitor(hotplug.SubsystemSound)
	if err != nil {
		return err
	}

	events := make(chan hotplug.Event, 16)
	go func() {
		if runErr := mon.Run(w.ctx, events); runErr != nil && !isCancel(runErr) {
			w.logger.Error("Hotplug monitor stopped", "error", runErr)
		}
	}()

	go func() {
		defer mon.Close()
		w.logger.Info("Hotplug monitoring started", "subsystem", hotplug.SubsystemSound)
		for {
			select {
			case <-w.ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				metrics.HotplugEvent(ev.Action)
				w.logger.Debug("Hotplug event", "action", ev.Action, "devname", ev.DevName)
				if ev.Action == hotplug.ActionAdd {
					time.Sleep(w.settle)
				}
				w.refresh()
			}
		}
	}()

	return nil
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
