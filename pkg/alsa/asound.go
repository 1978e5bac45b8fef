//go:build linux && (amd64 || arm64)

package alsa

import "unsafe"

// Compile-time struct size assertions.
// These will cause build failures if struct sizes don't match kernel expectations.
var (
	_ [376]byte = [unsafe.Sizeof(sndCtlCardInfo{})]byte{}
	_ [288]byte = [unsafe.Sizeof(sndPCMInfo{})]byte{}
	_ [32]byte  = [unsafe.Sizeof(sndMask{})]byte{}
	_ [12]byte  = [unsafe.Sizeof(sndInterval{})]byte{}
	_ [608]byte = [unsafe.Sizeof(sndPCMHwParams{})]byte{}
)

// IOCTL constants for 64-bit architectures.
const (
	// Control interface IOCTLs.
	sndrvCtlIoctlCardInfo      = 0x81785501
	sndrvCtlIoctlPCMNextDevice = 0x80045530
	sndrvCtlIoctlPCMInfo       = 0xc1205531

	// PCM IOCTLs.
	sndrvPCMIoctlInfo     = 0x81204101
	sndrvPCMIoctlHwRefine = 0xc2604110
)

// Hardware parameter constants.
const (
	sndrvPCMHwParamAccess        = 0
	sndrvPCMHwParamFormat        = 1
	sndrvPCMHwParamFirstMask     = 0
	sndrvPCMHwParamLastMask      = 2
	sndrvPCMHwParamChannels      = 10
	sndrvPCMHwParamRate          = 11
	sndrvPCMHwParamFirstInterval = 8
	sndrvPCMHwParamLastInterval  = 19

	sndrvMaskMax = 256

	sndrvPCMAccessRwInterleaved = 3
)

// PCM format constants (SNDRV_PCM_FORMAT_*).
const (
	formatU8      = 1
	formatS16LE   = 2
	formatS24LE   = 6
	formatS32LE   = 10
	formatFloatLE = 14
)

// Formats probed during capability queries, with their ALSA names.
var commonFormats = []struct {
	value uint32
	name  string
}{
	{formatU8, "U8"},
	{formatS16LE, "S16_LE"},
	{formatS24LE, "S24_LE"},
	{formatS32LE, "S32_LE"},
	{formatFloatLE, "FLOAT_LE"},
}

// sndCtlCardInfo has size 376 bytes.
type sndCtlCardInfo struct {
	card       int32
	_          [4]byte
	id         [16]byte
	driver     [16]byte
	name       [32]byte
	longname   [80]byte
	reserved   [16]byte
	mixername  [80]byte
	components [128]byte
}

// sndPCMInfo has size 288 bytes.
type sndPCMInfo struct {
	device          uint32
	subdevice       uint32
	stream          int32
	card            int32
	id              [64]byte
	name            [80]byte
	subname         [32]byte
	devClass        int32
	devSubclass     int32
	subdevicesCount uint32
	subdevicesAvail uint32
	_               [16]byte
	reserved        [64]byte
}

// sndMask has size 32 bytes.
type sndMask struct {
	bits [(sndrvMaskMax + 31) / 32]uint32
}

// sndInterval has size 12 bytes.
type sndInterval struct {
	minVal uint32
	maxVal uint32
	bit    uint32
}

// sndPCMHwParams has size 608 bytes.
type sndPCMHwParams struct {
	flags     uint32
	masks     [sndrvPCMHwParamLastMask - sndrvPCMHwParamFirstMask + 1]sndMask
	mres      [5]sndMask
	intervals [sndrvPCMHwParamLastInterval - sndrvPCMHwParamFirstInterval + 1]sndInterval
	ires      [9]sndInterval
	rmask     uint32
	cmask     uint32
	info      uint32
	msbits    uint32
	rateNum   uint32
	rateDen   uint32
	fifoSize  uint64
	reserved  [64]byte
}

// init opens every mask and interval to its full range so hw_refine narrows
// them down to what the hardware actually supports.
func (p *sndPCMHwParams) init() {
	for i := range p.masks {
		p.masks[i].bits[0] = 0xFFFFFFFF
		p.masks[i].bits[1] = 0xFFFFFFFF
	}
	for i := range p.intervals {
		p.intervals[i].maxVal = 0xFFFFFFFF
	}
	p.rmask = 0xFFFFFFFF
	p.cmask = 0
	p.info = 0xFFFFFFFF
}

func (p *sndPCMHwParams) setMask(param, val uint32) {
	p.masks[param].bits[0] = 0
	p.masks[param].bits[1] = 0
	p.masks[param].bits[val>>5] = 1 << (val & 0x1F)
}

func (p *sndPCMHwParams) checkMask(param, val uint32) bool {
	return p.masks[param].bits[val>>5]&(1<<(val&0x1F)) > 0
}

func (p *sndPCMHwParams) getInterval(param uint32) (minVal, maxVal uint32) {
	idx := param - sndrvPCMHwParamFirstInterval
	return p.intervals[idx].minVal, p.intervals[idx].maxVal
}
