// Package cmd holds auxiliary CLI commands attached to the root command.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/smazurov/audionode/pkg/alsa"
	"github.com/spf13/cobra"
)

// CreateDevicesCmd creates the devices command for inspecting ALSA hardware
// without starting the service.
func CreateDevicesCmd() *cobra.Command {
	var showCapture bool

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List ALSA audio devices",
		Long: `Enumerates ALSA PCM devices by probing /dev/snd directly. ` +
			`Lists playback devices by default; use --capture to list capture devices instead.`,
		Run: func(_ *cobra.Command, _ []string) {
			var (
				devs []alsa.Device
				err  error
				kind = "playback"
			)
			if showCapture {
				devs, err = alsa.ListCaptureDevices()
				kind = "capture"
			} else {
				devs, err = alsa.ListPlaybackDevices()
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to list %s devices: %v\n", kind, err)
				os.Exit(1)
			}

			if len(devs) == 0 {
				fmt.Printf("No %s devices found\n", kind)
				return
			}

			for _, d := range devs {
				fmt.Printf("%s\t%s (%s)\n", d.DeviceString(), d.CardName, d.Name)
				if len(d.SampleRates) > 0 {
					rates := make([]string, len(d.SampleRates))
					for i, r := range d.SampleRates {
						rates[i] = fmt.Sprintf("%d", r)
					}
					fmt.Printf("\trates: %s Hz\n", strings.Join(rates, ", "))
				}
				if d.MaxChannels > 0 {
					fmt.Printf("\tchannels: %d-%d\n", d.MinChannels, d.MaxChannels)
				}
				if len(d.Formats) > 0 {
					fmt.Printf("\tformats: %s\n", strings.Join(d.Formats, ", "))
				}
			}
		},
	}

	cmd.Flags().BoolVar(&showCapture, "capture", false, "List capture devices instead of playback devices")

	return cmd
}
