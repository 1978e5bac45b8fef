// Package models defines request and response shapes for the HTTP API.
package models

// Health check models
type HealthData struct {
	Status  string `json:"status" example:"ok" doc:"Service status"`
	Message string `json:"message" example:"API is healthy" doc:"Status message"`
}

type HealthResponse struct {
	Body HealthData
}

// Version models
type VersionData struct {
	Version   string `json:"version" example:"dev" doc:"Application version"`
	GitCommit string `json:"git_commit" example:"abc1234" doc:"Git commit SHA"`
	BuildDate string `json:"build_date" example:"2024-12-15 14:30" doc:"Build timestamp"`
	BuildID   string `json:"build_id" example:"a1b2c3d4" doc:"Unique build identifier"`
	GoVersion string `json:"go_version" example:"go1.24.0" doc:"Go compiler version"`
	Compiler  string `json:"compiler" example:"gc" doc:"Compiler used"`
	Platform  string `json:"platform" example:"linux/amd64" doc:"Platform"`
}

type VersionResponse struct {
	Body VersionData
}

// Device models
type FormatInfo struct {
	Encoding   string `json:"encoding" example:"S16_LE" doc:"Sample encoding"`
	SampleRate int    `json:"sample_rate" example:"48000" doc:"Sample rate in Hz"`
	Channels   int    `json:"channels" example:"2" doc:"Channel count"`
}

type DeviceInfo struct {
	Name    string       `json:"name" example:"HDA Intel PCH (ALC892 Analog)" doc:"Human-readable device name"`
	Locator string       `json:"locator" example:"alsa:hw:0,0" doc:"Device locator (protocol:remainder)"`
	Formats []FormatInfo `json:"formats,omitempty" doc:"Supported input formats"`
}

type DeviceListData struct {
	Flow    string       `json:"flow" example:"playback" doc:"Data flow the devices belong to"`
	Devices []DeviceInfo `json:"devices" doc:"Devices cataloged for this flow"`
	Count   int          `json:"count" example:"2" doc:"Number of devices"`
}

type DeviceListResponse struct {
	Body DeviceListData
}

type SelectedDeviceData struct {
	Flow     string      `json:"flow" example:"playback" doc:"Data flow"`
	Selected *DeviceInfo `json:"selected,omitempty" doc:"Currently selected device, absent when none"`
}

type SelectedDeviceResponse struct {
	Body SelectedDeviceData
}

type SelectDeviceBody struct {
	Locator string `json:"locator" minLength:"1" example:"alsa:hw:1,0" doc:"Locator of the device to select"`
}
