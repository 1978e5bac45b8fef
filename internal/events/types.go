package events

// Event type constants for kelindar/event.
const (
	TypeDeviceProperty uint32 = iota + 1
	TypeDeviceDiscovery
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// DevicePropertyEvent is published when the value of a device-registry
// property changes, e.g. the selected playback or notification device.
// Old and New carry locator strings; Old is empty when the property was
// previously unset, New is empty when it was cleared.
type DevicePropertyEvent struct {
	Property  string `json:"property" example:"playback.device" doc:"Registry property that changed"`
	Old       string `json:"old,omitempty" example:"alsa:hw:0,0" doc:"Previous device locator, empty if none"`
	New       string `json:"new,omitempty" example:"alsa:hw:1,0" doc:"New device locator, empty if cleared"`
	Timestamp string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for DevicePropertyEvent.
func (e DevicePropertyEvent) Type() uint32 { return TypeDeviceProperty }

// DeviceDiscoveryEvent represents a device hotplug event.
type DeviceDiscoveryEvent struct {
	Locator   string `json:"locator" example:"alsa:hw:0,0" doc:"Device locator"`
	Name      string `json:"name" example:"USB Audio" doc:"Human-readable device name"`
	Action    string `json:"action" example:"added" doc:"Action type: added, removed, changed"`
	Timestamp string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for DeviceDiscoveryEvent.
func (e DeviceDiscoveryEvent) Type() uint32 { return TypeDeviceDiscovery }
