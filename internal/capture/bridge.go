// Package capture bridges platform capture-device handles into managed,
// reference-counted capture inputs. Creation runs behind a fault boundary:
// platform failures surface as an absent result, never as a fault.
package capture

import (
	"log/slog"
	"sync"

	"github.com/smazurov/audionode/internal/logging"
	"github.com/smazurov/audionode/internal/metrics"
)

// Opener binds a device handle to its platform resources. Openers may fail
// with an error or a panic; the bridge contains both.
type Opener func(Handle) (Resource, error)

// Bridge creates capture inputs from device handles. It is safe for use
// from any goroutine and keeps no state beyond the set of live inputs.
type Bridge struct {
	opener Opener
	logger *slog.Logger

	mu   sync.Mutex
	live map[*Input]struct{}
}

// NewBridge creates a bridge that opens devices through the given opener.
func NewBridge(opener Opener) *Bridge {
	return &Bridge{
		opener: opener,
		logger: logging.GetLogger("capture"),
		live:   make(map[*Input]struct{}),
	}
}

// AcquireInput attempts to create a capture input for the given device
// handle. On success the returned input carries exactly one unit of
// ownership, which the caller must eventually return with Release. On any
// failure (platform error, incompatibility, resource exhaustion, even a
// panic in the opener) the result is nil and no allocation survives.
// A nil result means "device unavailable", not a program fault.
func (b *Bridge) AcquireInput(h Handle) (in *Input) {
	scope := newReleaseScope()
	defer scope.release()
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("Capture input creation fault contained", "handle", uint64(h), "fault", r)
			metrics.AcquisitionResult("fault")
			in = nil
		}
	}()

	resource, err := b.opener(h)
	if err != nil {
		b.logger.Debug("Capture device unavailable", "handle", uint64(h), "error", err)
		metrics.AcquisitionResult("unavailable")
		return nil
	}
	scope.track(func() { _ = resource.Close() })

	input := &Input{handle: h, resource: resource, bridge: b}
	input.refs.Store(1) // the unit transferred to the caller

	b.mu.Lock()
	b.live[input] = struct{}{}
	b.mu.Unlock()

	scope.adopt()
	metrics.AcquisitionResult("ok")
	metrics.InputRetained()
	return input
}

// LiveInputs returns the number of inputs currently held by callers.
func (b *Bridge) LiveInputs() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.live)
}

func (b *Bridge) forget(in *Input) {
	b.mu.Lock()
	delete(b.live, in)
	b.mu.Unlock()
}
