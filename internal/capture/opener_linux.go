//go:build linux && (amd64 || arm64)

package capture

import (
	"github.com/smazurov/audionode/pkg/alsa"
)

// PlatformOpener returns the ALSA-backed opener. The handle packs the card
// and device numbers of a PCM capture node.
func PlatformOpener() Opener {
	return func(h Handle) (Resource, error) {
		card, dev := alsa.SplitHandle(uint64(h))
		return alsa.OpenCapture(card, dev)
	}
}
