//go:build !(linux && (amd64 || arm64))

package monitor

import "github.com/smazurov/audionode/internal/device"

// ALSAEnumerator yields an empty catalog on platforms without ALSA.
func ALSAEnumerator(string) Enumerator {
	return func() ([]device.Descriptor, error) {
		return nil, nil
	}
}
