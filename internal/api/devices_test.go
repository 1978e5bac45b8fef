package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smazurov/audionode/internal/api/models"
	"github.com/smazurov/audionode/internal/device"
)

func newTestServer(t *testing.T, username, password string) *Server {
	t.Helper()

	registry := device.NewRegistry("alsa")
	registry.Refresh(device.Playback, []device.Descriptor{
		{
			Info:    device.Info{Name: "Built-in Audio", Locator: device.NewLocator("alsa", "hw:0,0")},
			Formats: []device.Format{{Encoding: "S16_LE", SampleRate: 48000, Channels: 2}},
		},
		{
			Info: device.Info{Name: "USB Headset", Locator: device.NewLocator("alsa", "hw:1,0")},
		},
	})

	return NewServer(&Options{
		AuthUsername: username,
		AuthPassword: password,
		Registry:     registry,
	})
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.GetMux().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, "", "")

	rec := doRequest(t, s, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var data models.HealthData
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if data.Status != "ok" {
		t.Errorf("status = %q, want %q", data.Status, "ok")
	}
}

func TestListDevices(t *testing.T) {
	s := newTestServer(t, "", "")

	rec := doRequest(t, s, http.MethodGet, "/api/devices/playback", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var data models.DeviceListData
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if data.Count != 2 {
		t.Errorf("count = %d, want 2", data.Count)
	}
	if data.Flow != "playback" {
		t.Errorf("flow = %q, want %q", data.Flow, "playback")
	}
	if len(data.Devices) != 2 || data.Devices[0].Locator != "alsa:hw:0,0" {
		t.Errorf("devices = %+v", data.Devices)
	}
}

func TestListDevices_EmptyFlow(t *testing.T) {
	s := newTestServer(t, "", "")

	rec := doRequest(t, s, http.MethodGet, "/api/devices/notify", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var data models.DeviceListData
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if data.Count != 0 {
		t.Errorf("count = %d, want 0", data.Count)
	}
}

func TestGetSelectedDevice(t *testing.T) {
	s := newTestServer(t, "", "")

	rec := doRequest(t, s, http.MethodGet, "/api/devices/playback/selected", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var data models.SelectedDeviceData
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	// Refresh auto-selects the first device.
	if data.Selected == nil {
		t.Fatal("no selected device in response")
	}
	if data.Selected.Locator != "alsa:hw:0,0" {
		t.Errorf("selected = %q, want %q", data.Selected.Locator, "alsa:hw:0,0")
	}
}

func TestSelectDevice(t *testing.T) {
	s := newTestServer(t, "", "")

	rec := doRequest(t, s, http.MethodPut, "/api/devices/playback/selected",
		`{"locator": "alsa:hw:1,0"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var data models.SelectedDeviceData
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if data.Selected == nil || data.Selected.Locator != "alsa:hw:1,0" {
		t.Errorf("selected = %+v, want alsa:hw:1,0", data.Selected)
	}
}

func TestSelectDevice_Unknown(t *testing.T) {
	s := newTestServer(t, "", "")

	rec := doRequest(t, s, http.MethodPut, "/api/devices/playback/selected",
		`{"locator": "alsa:hw:9,0"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body.String())
	}
}

func TestSelectDevice_BadLocator(t *testing.T) {
	s := newTestServer(t, "", "")

	rec := doRequest(t, s, http.MethodPut, "/api/devices/playback/selected",
		`{"locator": "noseparator"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestBasicAuth(t *testing.T) {
	s := newTestServer(t, "admin", "secret")

	// Device routes require credentials.
	rec := doRequest(t, s, http.MethodGet, "/api/devices/playback", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status without credentials = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/devices/playback", nil)
	req.SetBasicAuth("admin", "secret")
	out := httptest.NewRecorder()
	s.GetMux().ServeHTTP(out, req)
	if out.Code != http.StatusOK {
		t.Fatalf("status with credentials = %d, want 200: %s", out.Code, out.Body.String())
	}

	// Health stays open.
	rec = doRequest(t, s, http.MethodGet, "/api/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rec.Code)
	}
}

func TestToDeviceInfo(t *testing.T) {
	d := device.Descriptor{
		Info: device.Info{Name: "Mic", Locator: device.NewLocator("alsa", "hw:0,0")},
		Formats: []device.Format{
			{Encoding: "S16_LE", SampleRate: 44100, Channels: 2},
			{Encoding: "S32_LE", SampleRate: 96000, Channels: 8},
		},
	}

	info := toDeviceInfo(d)
	if info.Name != "Mic" || info.Locator != "alsa:hw:0,0" {
		t.Errorf("info = %+v", info)
	}
	if len(info.Formats) != 2 || info.Formats[1].Channels != 8 {
		t.Errorf("formats = %+v", info.Formats)
	}
}
