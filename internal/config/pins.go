package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DevicePins is the operator-managed device pin file. Empty values mean
// "track the platform default" for that flow.
type DevicePins struct {
	Devices struct {
		Playback string `toml:"playback"`
		Notify   string `toml:"notify"`
	} `toml:"devices"`
}

// LoadDevicePins reads a pin file. A missing file yields zero pins, not an
// error, so a fresh install tracks defaults.
func LoadDevicePins(path string) (DevicePins, error) {
	var pins DevicePins
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return pins, nil
		}
		return pins, err
	}
	if err := toml.Unmarshal(data, &pins); err != nil {
		return pins, err
	}
	return pins, nil
}
