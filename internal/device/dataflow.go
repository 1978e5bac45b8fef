package device

import (
	"errors"
	"fmt"
)

// ErrInvalidDataFlow reports a data flow outside {Notify, Playback}.
var ErrInvalidDataFlow = errors.New("invalid data flow")

// Registry property names, one per data flow. Property-change events carry
// one of these so listeners can tell which selected device moved.
const (
	PropNotifyDevice   = "notify.device"
	PropPlaybackDevice = "playback.device"
)

// DataFlow classifies the role a device plays: sounding a notification or
// rendering playback audio. Only Notify and Playback are legal values.
type DataFlow int

const (
	// Notify identifies the device used for notification sounds.
	Notify DataFlow = iota + 1
	// Playback identifies the device used for playback audio.
	Playback
)

// Valid reports whether f is one of the legal data flows.
func (f DataFlow) Valid() bool {
	return f == Notify || f == Playback
}

// Property returns the registry property name that tracks the selected
// device for this flow.
func (f DataFlow) Property() string {
	switch f {
	case Notify:
		return PropNotifyDevice
	case Playback:
		return PropPlaybackDevice
	default:
		return ""
	}
}

func (f DataFlow) String() string {
	switch f {
	case Notify:
		return "notify"
	case Playback:
		return "playback"
	default:
		return fmt.Sprintf("dataflow(%d)", int(f))
	}
}

// ParseDataFlow converts a flow name to a DataFlow.
func ParseDataFlow(s string) (DataFlow, error) {
	switch s {
	case "notify":
		return Notify, nil
	case "playback":
		return Playback, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDataFlow, s)
	}
}
