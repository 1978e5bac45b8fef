//go:build linux && (amd64 || arm64)

package alsa

import (
	"fmt"
	"syscall"
	"unsafe"
)

// PCM is an open PCM device node.
type PCM struct {
	fd     int
	card   int
	device int
}

// OpenCapture opens the capture node of the given card and device and
// verifies it answers PCM info queries. The caller owns the returned PCM
// and must Close it.
func OpenCapture(card, device int) (*PCM, error) {
	path := pcmPath(card, device, StreamCapture)
	fd, err := syscall.Open(path, syscall.O_RDWR|syscall.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	info := sndPCMInfo{}
	if err := ioctl(uintptr(fd), sndrvPCMIoctlInfo, unsafe.Pointer(&info)); err != nil {
		syscall.Close(fd)
		return nil, fmt.Errorf("pcm info %s: %w", path, err)
	}

	return &PCM{fd: fd, card: card, device: device}, nil
}

// Card returns the card number of the open node.
func (p *PCM) Card() int { return p.card }

// Device returns the device number of the open node.
func (p *PCM) Device() int { return p.device }

// Close releases the device node.
func (p *PCM) Close() error {
	return syscall.Close(p.fd)
}
