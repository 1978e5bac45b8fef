//go:build linux && (amd64 || arm64)

package monitor

import (
	"fmt"

	"github.com/smazurov/audionode/internal/device"
	"github.com/smazurov/audionode/pkg/alsa"
)

// ALSAEnumerator enumerates ALSA playback devices as registry descriptors
// under the given locator protocol.
func ALSAEnumerator(protocol string) Enumerator {
	return func() ([]device.Descriptor, error) {
		devs, err := alsa.ListPlaybackDevices()
		if err != nil {
			return nil, err
		}

		out := make([]device.Descriptor, 0, len(devs))
		for _, d := range devs {
			out = append(out, device.Descriptor{
				Info: device.Info{
					Name:    fmt.Sprintf("%s (%s)", d.CardName, d.Name),
					Locator: device.NewLocator(protocol, d.DeviceString()),
				},
				Formats: formatsFor(d),
			})
		}
		return out, nil
	}
}

func formatsFor(d alsa.Device) []device.Format {
	var formats []device.Format
	for _, enc := range d.Formats {
		for _, rate := range d.SampleRates {
			formats = append(formats, device.Format{
				Encoding:   enc,
				SampleRate: rate,
				Channels:   d.MaxChannels,
			})
		}
	}
	return formats
}
