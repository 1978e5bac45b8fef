//go:build linux && (amd64 || arm64)

package alsa

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

// ListPlaybackDevices returns all ALSA PCM playback devices.
func ListPlaybackDevices() ([]Device, error) {
	return listDevices(StreamPlayback)
}

// ListCaptureDevices returns all ALSA PCM capture devices.
func ListCaptureDevices() ([]Device, error) {
	return listDevices(StreamCapture)
}

func listDevices(stream int32) ([]Device, error) {
	var devices []Device

	for cardNum := 0; ; cardNum++ {
		ctlPath := fmt.Sprintf("/dev/snd/controlC%d", cardNum)
		ctlFd, err := syscall.Open(ctlPath, syscall.O_RDONLY, 0)
		if err != nil {
			if os.IsNotExist(err) || err == syscall.ENOENT {
				break // No more cards
			}
			continue // Skip this card
		}

		cardInfo := sndCtlCardInfo{}
		if err := ioctl(uintptr(ctlFd), sndrvCtlIoctlCardInfo, unsafe.Pointer(&cardInfo)); err != nil {
			syscall.Close(ctlFd)
			continue
		}

		deviceNum := int32(-1)
		for {
			if err := ioctl(uintptr(ctlFd), sndrvCtlIoctlPCMNextDevice, unsafe.Pointer(&deviceNum)); err != nil {
				break
			}
			if deviceNum < 0 {
				break // No more devices
			}

			pcmInfo := sndPCMInfo{
				device: uint32(deviceNum),
				stream: stream,
			}
			if err := ioctl(uintptr(ctlFd), sndrvCtlIoctlPCMInfo, unsafe.Pointer(&pcmInfo)); err != nil {
				continue // Device doesn't support this stream direction
			}

			device := Device{
				Card:     cardNum,
				Device:   int(deviceNum),
				CardID:   cstr(cardInfo.id[:]),
				CardName: cstr(cardInfo.longname[:]),
				Name:     cstr(pcmInfo.name[:]),
				Stream:   streamName(stream),
			}

			if caps, err := queryCapabilities(cardNum, int(deviceNum), stream); err == nil {
				device.SampleRates = caps.rates
				device.MinChannels = caps.minChannels
				device.MaxChannels = caps.maxChannels
				device.Formats = caps.formats
			}

			devices = append(devices, device)
		}

		syscall.Close(ctlFd)
	}

	return devices, nil
}

func streamName(stream int32) string {
	if stream == StreamCapture {
		return "capture"
	}
	return "playback"
}

type capabilities struct {
	rates       []int
	minChannels int
	maxChannels int
	formats     []string
}

func queryCapabilities(card, device int, stream int32) (*capabilities, error) {
	fd, err := syscall.Open(pcmPath(card, device, stream), syscall.O_RDWR|syscall.O_NONBLOCK, 0)
	if err != nil {
		return nil, err
	}
	defer syscall.Close(fd)

	params := sndPCMHwParams{}
	params.init()
	params.setMask(sndrvPCMHwParamAccess, sndrvPCMAccessRwInterleaved)

	if err := ioctl(uintptr(fd), sndrvPCMIoctlHwRefine, unsafe.Pointer(&params)); err != nil {
		return nil, err
	}

	caps := &capabilities{}

	minCh, maxCh := params.getInterval(sndrvPCMHwParamChannels)
	caps.minChannels = int(minCh)
	caps.maxChannels = int(maxCh)

	minRate, maxRate := params.getInterval(sndrvPCMHwParamRate)
	for _, rate := range commonSampleRates {
		if uint32(rate) >= minRate && uint32(rate) <= maxRate {
			caps.rates = append(caps.rates, rate)
		}
	}

	for _, format := range commonFormats {
		if params.checkMask(sndrvPCMHwParamFormat, format.value) {
			caps.formats = append(caps.formats, format.name)
		}
	}

	return caps, nil
}

func pcmPath(card, device int, stream int32) string {
	suffix := "p"
	if stream == StreamCapture {
		suffix = "c"
	}
	return fmt.Sprintf("/dev/snd/pcmC%dD%d%s", card, device, suffix)
}
