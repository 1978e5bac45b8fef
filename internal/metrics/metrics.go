// Package metrics exposes Prometheus instrumentation for the device
// subsystem: capture acquisitions, selection changes and hotplug traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	captureAcquisitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "audionode",
		Subsystem: "capture",
		Name:      "acquisitions_total",
		Help:      "Capture-input acquisition attempts by result",
	}, []string{"result"})

	captureLiveInputs = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "audionode",
		Subsystem: "capture",
		Name:      "live_inputs",
		Help:      "Capture inputs currently held by callers",
	})

	devicePropertyChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "audionode",
		Subsystem: "devices",
		Name:      "property_changes_total",
		Help:      "Selected-device changes by data flow",
	}, []string{"flow"})

	deviceDiscoveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "audionode",
		Subsystem: "devices",
		Name:      "discoveries_total",
		Help:      "Device catalog additions and removals",
	}, []string{"action"})

	rendererSubscriptions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "audionode",
		Subsystem: "render",
		Name:      "subscriptions",
		Help:      "Renderers currently subscribed to default-device changes",
	})

	hotplugEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "audionode",
		Subsystem: "hotplug",
		Name:      "events_total",
		Help:      "Sound-subsystem kernel uevents by action",
	}, []string{"action"})
)

// AcquisitionResult records the outcome of a capture-input acquisition.
func AcquisitionResult(result string) {
	captureAcquisitions.WithLabelValues(result).Inc()
}

// InputRetained records a capture input handed to a caller.
func InputRetained() {
	captureLiveInputs.Inc()
}

// InputReleased records a capture input fully released by its caller.
func InputReleased() {
	captureLiveInputs.Dec()
}

// DevicePropertyChanged records a selected-device change for a flow.
func DevicePropertyChanged(flow string) {
	devicePropertyChanges.WithLabelValues(flow).Inc()
}

// DeviceDiscovered records a device catalog change.
func DeviceDiscovered(action string) {
	deviceDiscoveries.WithLabelValues(action).Inc()
}

// RendererSubscribed records a new default-device subscription.
func RendererSubscribed() {
	rendererSubscriptions.Inc()
}

// RendererUnsubscribed records a removed default-device subscription.
func RendererUnsubscribed() {
	rendererSubscriptions.Dec()
}

// HotplugEvent records a sound-subsystem uevent.
func HotplugEvent(action string) {
	hotplugEvents.WithLabelValues(action).Inc()
}
