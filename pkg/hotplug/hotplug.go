//go:build linux

// Package hotplug provides pure Go device hotplug monitoring using netlink.
//
// It listens for kernel uevent broadcasts without cgo or a udev daemon,
// which is how audionode notices sound cards coming and going.
package hotplug

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"syscall"
)

// Action constants for device events.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionChange = "change"
)

// SubsystemSound is the kernel subsystem for ALSA devices.
const SubsystemSound = "sound"

// Event represents a kernel device event.
type Event struct {
	Action    string            // "add", "remove", "change", ...
	KObj      string            // Kernel object path: /devices/pci0000:00/...
	Subsystem string            // "sound", "usb", ...
	DevName   string            // Device name (e.g., "snd/pcmC0D0c")
	DevPath   string            // Device path within sysfs
	Env       map[string]string // All environment variables from the event
}

// netlinkKobjectUEvent is the netlink protocol for kernel object events.
const netlinkKobjectUEvent = 15

// Monitor listens for kernel device events via netlink. Subsystem filters
// are fixed at construction; with none, every event passes through.
type Monitor struct {
	fd         int
	subsystems map[string]struct{}
}

// NewMonitor creates a monitor limited to the given subsystems.
func NewMonitor(subsystems ...string) (*Monitor, error) {
	fd, err := syscall.Socket(syscall.AF_NETLINK, syscall.SOCK_DGRAM|syscall.SOCK_CLOEXEC, netlinkKobjectUEvent)
	if err != nil {
		return nil, err
	}

	// Bind to the kernel broadcast group.
	addr := &syscall.SockaddrNetlink{
		Family: syscall.AF_NETLINK,
		Groups: 1,
	}
	if err := syscall.Bind(fd, addr); err != nil {
		syscall.Close(fd)
		return nil, err
	}

	filter := make(map[string]struct{}, len(subsystems))
	for _, s := range subsystems {
		filter[s] = struct{}{}
	}
	return &Monitor{fd: fd, subsystems: filter}, nil
}

// Close releases the monitor resources.
func (m *Monitor) Close() error {
	return syscall.Close(m.fd)
}

// Run reads events and sends the matching ones to the provided channel.
// It blocks until the context is cancelled or a read error occurs, and
// closes the events channel when it returns.
func (m *Monitor) Run(ctx context.Context, events chan<- Event) error {
	defer close(events)

	buf := make([]byte, 8192)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Read with a timeout so the context is checked periodically.
		tv := syscall.Timeval{Sec: 1}
		if err := syscall.SetsockoptTimeval(m.fd, syscall.SOL_SOCKET, syscall.SO_RCVTIMEO, &tv); err != nil {
			return err
		}

		n, _, err := syscall.Recvfrom(m.fd, buf, 0)
		if err != nil {
			if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK) || errors.Is(err, syscall.EINTR) {
				continue
			}
			return err
		}
		if n == 0 {
			continue
		}

		event := ParseUEvent(buf[:n])
		if event == nil {
			continue
		}
		if len(m.subsystems) > 0 {
			if _, ok := m.subsystems[event.Subsystem]; !ok {
				continue
			}
		}

		select {
		case events <- *event:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// ParseUEvent parses a kernel uevent message of the form
// "ACTION@KOBJ\0KEY=VALUE\0KEY=VALUE\0...". Returns nil for messages that
// do not look like uevents. Exported for testing.
func ParseUEvent(data []byte) *Event {
	if len(data) == 0 {
		return nil
	}

	// Skip the binary libudev header when a udev daemon re-broadcasts the
	// event; the real uevent follows it.
	if bytes.HasPrefix(data, []byte("libudev")) {
		for i := 0; i < len(data)-1; i++ {
			if data[i] == 0 {
				rest := data[i+1:]
				if idx := bytes.IndexByte(rest, '@'); idx > 0 && idx < 20 {
					data = rest
					break
				}
			}
		}
	}

	parts := bytes.Split(data, []byte{0})
	if len(parts) < 1 || len(parts[0]) == 0 {
		return nil
	}

	header := string(parts[0])
	atIdx := strings.Index(header, "@")
	if atIdx < 1 {
		return nil
	}

	event := &Event{
		Action: header[:atIdx],
		KObj:   header[atIdx+1:],
		Env:    make(map[string]string),
	}

	for _, part := range parts[1:] {
		if len(part) == 0 {
			continue
		}
		kv := string(part)
		eqIdx := strings.Index(kv, "=")
		if eqIdx < 1 {
			continue
		}
		key, value := kv[:eqIdx], kv[eqIdx+1:]
		event.Env[key] = value

		switch key {
		case "SUBSYSTEM":
			event.Subsystem = value
		case "DEVNAME":
			event.DevName = value
		case "DEVPATH":
			event.DevPath = value
		}
	}

	return event
}
