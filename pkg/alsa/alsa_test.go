package alsa

import "testing"

func TestDeviceHandleRoundTrip(t *testing.T) {
	tests := []struct {
		card, device int
	}{
		{0, 0},
		{0, 1},
		{1, 0},
		{3, 7},
		{31, 127},
	}

	for _, tt := range tests {
		h := DeviceHandle(tt.card, tt.device)
		card, device := SplitHandle(h)
		if card != tt.card || device != tt.device {
			t.Errorf("SplitHandle(DeviceHandle(%d, %d)) = (%d, %d)",
				tt.card, tt.device, card, device)
		}
	}
}

func TestDeviceHandleDistinct(t *testing.T) {
	// Card and device must not alias: hw:1,0 != hw:0,1.
	if DeviceHandle(1, 0) == DeviceHandle(0, 1) {
		t.Error("handles for hw:1,0 and hw:0,1 collide")
	}
}

func TestDeviceString(t *testing.T) {
	d := Device{Card: 2, Device: 3}
	if got := d.DeviceString(); got != "hw:2,3" {
		t.Errorf("DeviceString() = %q, want %q", got, "hw:2,3")
	}
}
