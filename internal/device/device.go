// Package device models the audio device catalog: data flows, locators and
// the per-flow registry of available and selected devices.
package device

// Format describes one audio format a device supports.
type Format struct {
	Encoding   string `json:"encoding" example:"S16_LE" doc:"Sample encoding"`
	SampleRate int    `json:"sample_rate" example:"48000" doc:"Sample rate in Hz"`
	Channels   int    `json:"channels" example:"2" doc:"Channel count"`
}

// Info identifies an available device.
type Info struct {
	Name    string
	Locator Locator
}

// Descriptor is the full registry record for a device: its identity plus
// the formats it supports.
type Descriptor struct {
	Info
	Formats []Format
}
