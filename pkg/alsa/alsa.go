// Package alsa provides pure Go access to ALSA PCM devices via /dev/snd
// ioctls, without cgo or libasound: enumeration of playback and capture
// devices with their hardware capabilities, and opening of capture nodes.
package alsa

import "fmt"

// Stream directions, matching the kernel's SNDRV_PCM_STREAM_* values.
const (
	StreamPlayback = 0
	StreamCapture  = 1
)

// Device describes one ALSA PCM device.
type Device struct {
	Card        int
	Device      int
	CardID      string
	CardName    string
	Name        string
	Stream      string // "playback" or "capture"
	SampleRates []int
	MinChannels int
	MaxChannels int
	Formats     []string
}

// DeviceString returns the ALSA device name, e.g. "hw:0,0".
func (d Device) DeviceString() string {
	return fmt.Sprintf("hw:%d,%d", d.Card, d.Device)
}

// DeviceHandle packs card and device numbers into an opaque address-sized
// handle for the capture bridge.
func DeviceHandle(card, device int) uint64 {
	return uint64(uint32(card))<<32 | uint64(uint32(device))
}

// SplitHandle unpacks a handle produced by DeviceHandle.
func SplitHandle(h uint64) (card, device int) {
	return int(uint32(h >> 32)), int(uint32(h))
}

// Common sample rates probed during capability queries.
var commonSampleRates = []int{
	8000, 11025, 16000, 22050, 32000, 44100, 48000, 88200, 96000, 176400, 192000,
}
