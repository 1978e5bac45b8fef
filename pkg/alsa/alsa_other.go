//go:build !(linux && (amd64 || arm64))

package alsa

import "errors"

// ErrUnsupported reports that ALSA is not available on this platform.
var ErrUnsupported = errors.New("alsa: unsupported platform")

// ListPlaybackDevices returns ErrUnsupported on non-ALSA platforms.
func ListPlaybackDevices() ([]Device, error) {
	return nil, ErrUnsupported
}

// ListCaptureDevices returns ErrUnsupported on non-ALSA platforms.
func ListCaptureDevices() ([]Device, error) {
	return nil, ErrUnsupported
}

// PCM is unavailable on non-ALSA platforms.
type PCM struct{}

// OpenCapture returns ErrUnsupported on non-ALSA platforms.
func OpenCapture(int, int) (*PCM, error) {
	return nil, ErrUnsupported
}

// Close is a no-op on non-ALSA platforms.
func (p *PCM) Close() error { return nil }
