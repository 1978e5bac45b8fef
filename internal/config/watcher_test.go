package config

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWatcher_ReloadOnWrite(t *testing.T) {
	path := writeTempTOML(t, `
[devices]
playback = "alsa:hw:0,0"
`)

	w := NewWatcher(path, 50*time.Millisecond, LoadDevicePins, discardLogger())

	reloads := make(chan DevicePins, 4)
	unsub := w.OnReload(func(pins DevicePins) {
		reloads <- pins
	})
	defer unsub()

	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("[devices]\nplayback = \"alsa:hw:1,0\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case pins := <-reloads:
		if pins.Devices.Playback != "alsa:hw:1,0" {
			t.Errorf("Playback = %q, want %q", pins.Devices.Playback, "alsa:hw:1,0")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timeout waiting for reload")
	}
}

func TestWatcher_Unsubscribe(t *testing.T) {
	path := writeTempTOML(t, "[devices]\n")

	w := NewWatcher(path, 50*time.Millisecond, LoadDevicePins, discardLogger())

	reloads := make(chan DevicePins, 4)
	unsub := w.OnReload(func(pins DevicePins) {
		reloads <- pins
	})
	unsub()

	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("[devices]\nnotify = \"alsa:hw:0,0\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case pins := <-reloads:
		t.Fatalf("unsubscribed handler received reload: %+v", pins)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_StartMissingFile(t *testing.T) {
	w := NewWatcher("definitely_missing.toml", 50*time.Millisecond, LoadDevicePins, discardLogger())
	if err := w.Start(); err == nil {
		w.Stop()
		t.Fatal("Start should fail for a missing file")
	}
}
