// Package render provides the device-selecting base for playback and
// notification renderers. A renderer either pins an explicit device or
// tracks the registry's live default, subscribing to default-device changes
// while open.
package render

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/smazurov/audionode/internal/device"
	"github.com/smazurov/audionode/internal/events"
	"github.com/smazurov/audionode/internal/logging"
	"github.com/smazurov/audionode/internal/metrics"
)

// ErrNoRegistry reports an operation that needs a backing device registry
// on a renderer constructed without one.
var ErrNoRegistry = errors.New("render: no backing device registry")

// DeviceChangeHandler reacts to a change of the renderer's default device.
// It runs synchronously on the registry's delivery goroutine and must not
// block; any rebinding it triggers has to be safe to run concurrently with
// in-flight rendering.
type DeviceChangeHandler func(events.DevicePropertyEvent)

// Option configures a Renderer.
type Option func(*Renderer)

// WithDeviceChangeHandler installs the handler invoked when the default
// device for the renderer's flow changes. Without one, matching change
// events are dropped.
func WithDeviceChangeHandler(h DeviceChangeHandler) Option {
	return func(r *Renderer) {
		r.handler = h
	}
}

// selection is the renderer's device choice: either track the registry's
// live default, or a pinned explicit locator.
type selection struct {
	pinned  bool
	locator device.Locator
}

// Renderer selects the playback or notification device for a rendering
// component and propagates default-device changes to it.
//
// Lifecycle is Constructed -> Opened -> Closed; a closed renderer is not
// reused. Open and Close are idempotent, and Close is safe before Open.
type Renderer struct {
	registry *device.Registry
	flow     device.DataFlow
	logger   *slog.Logger
	handler  DeviceChangeHandler

	mu          sync.Mutex
	sel         selection
	open        bool
	unsubscribe func()
}

// New creates a renderer drawing devices from the given registry. The
// registry may be nil; such a renderer can pin and report a locator but
// cannot enumerate formats. The flow must be Notify or Playback.
func New(registry *device.Registry, flow device.DataFlow, opts ...Option) (*Renderer, error) {
	if !flow.Valid() {
		return nil, fmt.Errorf("%w: %d", device.ErrInvalidDataFlow, int(flow))
	}

	r := &Renderer{
		registry: registry,
		flow:     flow,
		logger:   logging.GetLogger("render"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// NewForProtocol creates a renderer whose registry is looked up by locator
// protocol. An unknown protocol yields a renderer without a registry, not
// an error; format queries on it fail with ErrNoRegistry.
func NewForProtocol(protocol string, flow device.DataFlow, opts ...Option) (*Renderer, error) {
	return New(device.ForProtocol(protocol), flow, opts...)
}

// Flow returns the data flow fixed at construction.
func (r *Renderer) Flow() device.DataFlow {
	return r.flow
}

// Locator returns the device the renderer would use right now: the pinned
// locator if one is set, otherwise the registry's currently selected device
// for the renderer's flow. The registry default is re-read on every call,
// never memoized, so an unpinned renderer always observes the live default.
func (r *Renderer) Locator() (device.Locator, bool) {
	r.mu.Lock()
	sel := r.sel
	r.mu.Unlock()

	if sel.pinned {
		return sel.locator, true
	}
	if r.registry != nil {
		if info, ok := r.registry.SelectedDevice(r.flow); ok {
			return info.Locator, true
		}
	}
	return device.Locator{}, false
}

// SetLocator pins the renderer to an explicit device, opting it out of
// default tracking for future opens. A nil locator clears the pin; clearing
// an already-clear pin and re-pinning the value-equal locator are no-ops.
func (r *Renderer) SetLocator(locator *device.Locator) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if locator == nil {
		if !r.sel.pinned {
			return
		}
		r.sel = selection{}
		return
	}
	if r.sel.pinned && r.sel.locator.Equal(*locator) {
		return
	}
	r.sel = selection{pinned: true, locator: *locator}
}

// SupportedInputFormats reports the formats of the renderer's current
// device. A renderer with no backing registry cannot report formats; that
// is surfaced as ErrNoRegistry rather than masked.
func (r *Renderer) SupportedInputFormats() ([]device.Format, error) {
	if r.registry == nil {
		return nil, ErrNoRegistry
	}
	locator, ok := r.Locator()
	if !ok {
		return nil, fmt.Errorf("no %s device selected: %w", r.flow, device.ErrUnknownDevice)
	}
	desc, err := r.registry.Device(r.flow, locator)
	if err != nil {
		return nil, err
	}
	return desc.Formats, nil
}

// Open readies the renderer. An unpinned renderer with a registry and a
// resolvable default registers exactly one subscription so it follows
// default-device changes; a pinned renderer never subscribes. Opening an
// already-open renderer is a no-op.
func (r *Renderer) Open() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.open {
		return nil
	}
	if !r.sel.pinned && r.registry != nil {
		if _, ok := r.registry.SelectedDevice(r.flow); ok {
			r.unsubscribe = r.registry.AddPropertyChangeListener(r.propertyChange)
			metrics.RendererSubscribed()
			r.logger.Debug("Tracking default device", "flow", r.flow.String())
		}
	}
	r.open = true
	return nil
}

// Close tears the renderer down, removing its change subscription exactly
// once. Safe to call before Open or repeatedly.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
		metrics.RendererUnsubscribed()
	}
	r.open = false
	return nil
}

// propertyChange filters registry property events down to the one property
// this renderer's flow cares about and forwards matches to the handler.
func (r *Renderer) propertyChange(ev events.DevicePropertyEvent) {
	if ev.Property != r.flow.Property() {
		return
	}
	r.mu.Lock()
	handler := r.handler
	r.mu.Unlock()

	if handler != nil {
		handler(ev)
	}
}
