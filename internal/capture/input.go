package capture

import (
	"sync/atomic"

	"github.com/smazurov/audionode/internal/metrics"
)

// Handle is an opaque, address-sized identifier for a platform capture
// device. Handles are owned by the platform device layer and passed by
// value; this package never validates them.
type Handle uint64

// Resource is the platform-side object backing an Input.
type Resource interface {
	Close() error
}

// Input is a capture-input object bound to a device handle.
//
// Inputs are reference counted. Acquisition hands the caller exactly one
// unit of ownership; the caller returns it with Release. Retain/Release
// pairs may be added for additional co-owners. When the count reaches zero
// the platform resource is closed and the input is forgotten by its bridge.
type Input struct {
	handle   Handle
	resource Resource
	bridge   *Bridge
	refs     atomic.Int32
}

// Handle returns the device handle this input was created from.
func (in *Input) Handle() Handle {
	return in.handle
}

// RefCount returns the current ownership count.
func (in *Input) RefCount() int {
	return int(in.refs.Load())
}

// Retain adds one unit of ownership. Must not be called after the count
// has reached zero.
func (in *Input) Retain() {
	in.refs.Add(1)
}

// Release returns one unit of ownership. The final release closes the
// platform resource; releasing more times than retained is a caller bug.
func (in *Input) Release() {
	if in.refs.Add(-1) != 0 {
		return
	}
	_ = in.resource.Close()
	in.bridge.forget(in)
	metrics.InputReleased()
}
