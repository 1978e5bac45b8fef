package device

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/smazurov/audionode/internal/events"
	"github.com/smazurov/audionode/internal/logging"
	"github.com/smazurov/audionode/internal/metrics"
)

// ErrUnknownDevice reports a locator that resolves to no device in the
// registry's catalog for the requested flow.
var ErrUnknownDevice = errors.New("unknown device")

// Registry is the process-wide catalog of devices for one locator protocol.
// It tracks the available devices per data flow, the selected device per
// flow, and notifies listeners when a selected device changes.
type Registry struct {
	protocol string
	bus      *events.Bus
	logger   *slog.Logger

	mu       sync.RWMutex
	devices  map[DataFlow][]Descriptor
	selected map[DataFlow]Locator
}

// NewRegistry creates an empty registry for the given locator protocol.
func NewRegistry(protocol string) *Registry {
	return &Registry{
		protocol: protocol,
		bus:      events.New(),
		logger:   logging.GetLogger("devices"),
		devices:  make(map[DataFlow][]Descriptor),
		selected: make(map[DataFlow]Locator),
	}
}

// Protocol returns the locator protocol this registry serves.
func (r *Registry) Protocol() string {
	return r.protocol
}

// Devices returns the catalog for the given flow.
func (r *Registry) Devices(flow DataFlow) []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	devs := r.devices[flow]
	out := make([]Descriptor, len(devs))
	copy(out, devs)
	return out
}

// Device resolves a locator to its descriptor for the given flow.
func (r *Registry) Device(flow DataFlow, locator Locator) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.devices[flow] {
		if d.Locator.Equal(locator) {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %s (%s flow)", ErrUnknownDevice, locator, flow)
}

// SelectedDevice returns the currently selected device for the given flow,
// if one is selected.
func (r *Registry) SelectedDevice(flow DataFlow) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loc, ok := r.selected[flow]
	if !ok {
		return Info{}, false
	}
	for _, d := range r.devices[flow] {
		if d.Locator.Equal(loc) {
			return d.Info, true
		}
	}
	return Info{}, false
}

// SetSelectedDevice selects the device identified by locator for the given
// flow. Selecting the already-selected device is a no-op. On an actual
// change a property-change event is published for the flow's property.
func (r *Registry) SetSelectedDevice(flow DataFlow, locator Locator) error {
	if !flow.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDataFlow, int(flow))
	}
	if _, err := r.Device(flow, locator); err != nil {
		return err
	}

	r.mu.Lock()
	old, had := r.selected[flow]
	if had && old.Equal(locator) {
		r.mu.Unlock()
		return nil
	}
	r.selected[flow] = locator
	r.mu.Unlock()

	r.firePropertyChange(flow, old, locator)
	return nil
}

// AddPropertyChangeListener registers a handler for property-change events.
// Handlers run on the bus's delivery goroutines, not on the publisher's.
// Returns an unsubscribe function; calling it more than once is safe.
func (r *Registry) AddPropertyChangeListener(handler func(events.DevicePropertyEvent)) func() {
	unsubscribe := r.bus.Subscribe(handler)

	var once sync.Once
	return func() {
		once.Do(unsubscribe)
	}
}

// Refresh replaces the catalog for the given flow with devs, publishing
// discovery events for added and removed devices. If the selected device
// disappeared, selection falls back to the first available device (or is
// cleared when none remain), firing the flow's property change.
func (r *Registry) Refresh(flow DataFlow, devs []Descriptor) {
	if !flow.Valid() {
		return
	}

	r.mu.Lock()

	known := make(map[string]Descriptor, len(r.devices[flow]))
	for _, d := range r.devices[flow] {
		known[d.Locator.String()] = d
	}
	current := make(map[string]Descriptor, len(devs))
	for _, d := range devs {
		current[d.Locator.String()] = d
	}

	var discoveries []events.DeviceDiscoveryEvent
	now := time.Now().Format(time.RFC3339)
	for key, d := range known {
		if _, exists := current[key]; !exists {
			discoveries = append(discoveries, events.DeviceDiscoveryEvent{
				Locator: key, Name: d.Name, Action: "removed", Timestamp: now,
			})
		}
	}
	for key, d := range current {
		if _, exists := known[key]; !exists {
			discoveries = append(discoveries, events.DeviceDiscoveryEvent{
				Locator: key, Name: d.Name, Action: "added", Timestamp: now,
			})
		}
	}

	r.devices[flow] = append([]Descriptor(nil), devs...)

	// Repair selection if its device went away.
	var propertyOld, propertyNew Locator
	var selectionMoved bool
	old, had := r.selected[flow]
	if had {
		if _, stillThere := current[old.String()]; !stillThere {
			if len(devs) > 0 {
				r.selected[flow] = devs[0].Locator
				propertyOld, propertyNew = old, devs[0].Locator
			} else {
				delete(r.selected, flow)
				propertyOld = old
			}
			selectionMoved = true
		}
	} else if len(devs) > 0 {
		r.selected[flow] = devs[0].Locator
		propertyNew = devs[0].Locator
		selectionMoved = true
	}

	r.mu.Unlock()

	for _, ev := range discoveries {
		r.logger.Info("Device catalog changed",
			"flow", flow.String(), "action", ev.Action, "locator", ev.Locator, "name", ev.Name)
		metrics.DeviceDiscovered(ev.Action)
		r.bus.Publish(ev)
	}
	if selectionMoved {
		r.firePropertyChange(flow, propertyOld, propertyNew)
	}
}

func (r *Registry) firePropertyChange(flow DataFlow, old, updated Locator) {
	r.logger.Info("Selected device changed",
		"flow", flow.String(), "old", old.String(), "new", updated.String())
	metrics.DevicePropertyChanged(flow.String())
	r.bus.Publish(events.DevicePropertyEvent{
		Property:  flow.Property(),
		Old:       old.String(),
		New:       updated.String(),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

var (
	registriesMu sync.RWMutex
	registries   = make(map[string]*Registry)
)

// Register makes a registry discoverable by its locator protocol.
func Register(r *Registry) {
	registriesMu.Lock()
	registries[r.protocol] = r
	registriesMu.Unlock()
}

// ForProtocol returns the registry registered for the given locator
// protocol, or nil when none is registered. Callers must tolerate nil.
func ForProtocol(protocol string) *Registry {
	registriesMu.RLock()
	defer registriesMu.RUnlock()
	return registries[protocol]
}
