//go:build !(linux && (amd64 || arm64))

package capture

import "errors"

// ErrUnsupportedPlatform reports that no platform capture backend exists
// for this OS/architecture.
var ErrUnsupportedPlatform = errors.New("capture: unsupported platform")

// PlatformOpener returns an opener that always reports the device as
// unavailable on platforms without an audio backend.
func PlatformOpener() Opener {
	return func(Handle) (Resource, error) {
		return nil, ErrUnsupportedPlatform
	}
}
