package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/smazurov/audionode/internal/api/models"
	"github.com/smazurov/audionode/internal/device"
)

// DeviceFlowInput carries the data flow path parameter.
type DeviceFlowInput struct {
	Flow string `path:"flow" enum:"playback,notify" example:"playback" doc:"Data flow: playback or notify"`
}

// SelectDeviceInput combines the flow path parameter with the selection body.
type SelectDeviceInput struct {
	DeviceFlowInput
	Body models.SelectDeviceBody
}

func toDeviceInfo(d device.Descriptor) models.DeviceInfo {
	info := models.DeviceInfo{
		Name:    d.Name,
		Locator: d.Locator.String(),
	}
	for _, f := range d.Formats {
		info.Formats = append(info.Formats, models.FormatInfo{
			Encoding:   f.Encoding,
			SampleRate: f.SampleRate,
			Channels:   f.Channels,
		})
	}
	return info
}

// registerDeviceRoutes registers the device catalog and selection endpoints.
func (s *Server) registerDeviceRoutes() {
	// List devices for a flow
	huma.Register(s.api, huma.Operation{
		OperationID: "list-devices",
		Method:      http.MethodGet,
		Path:        "/api/devices/{flow}",
		Summary:     "List Devices",
		Description: "List all cataloged audio devices for a data flow",
		Tags:        []string{"devices"},
		Security:    withAuth(),
		Errors:      []int{400, 401},
	}, func(ctx context.Context, input *DeviceFlowInput) (*models.DeviceListResponse, error) {
		flow, err := device.ParseDataFlow(input.Flow)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid data flow", err)
		}

		descriptors := s.registry.Devices(flow)
		devices := make([]models.DeviceInfo, 0, len(descriptors))
		for _, d := range descriptors {
			devices = append(devices, toDeviceInfo(d))
		}

		return &models.DeviceListResponse{
			Body: models.DeviceListData{
				Flow:    flow.String(),
				Devices: devices,
				Count:   len(devices),
			},
		}, nil
	})

	// Get the selected device for a flow
	huma.Register(s.api, huma.Operation{
		OperationID: "get-selected-device",
		Method:      http.MethodGet,
		Path:        "/api/devices/{flow}/selected",
		Summary:     "Selected Device",
		Description: "Get the currently selected device for a data flow",
		Tags:        []string{"devices"},
		Security:    withAuth(),
		Errors:      []int{400, 401},
	}, func(ctx context.Context, input *DeviceFlowInput) (*models.SelectedDeviceResponse, error) {
		flow, err := device.ParseDataFlow(input.Flow)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid data flow", err)
		}

		resp := &models.SelectedDeviceResponse{
			Body: models.SelectedDeviceData{Flow: flow.String()},
		}
		if info, ok := s.registry.SelectedDevice(flow); ok {
			resp.Body.Selected = &models.DeviceInfo{
				Name:    info.Name,
				Locator: info.Locator.String(),
			}
		}
		return resp, nil
	})

	// Select a device for a flow
	huma.Register(s.api, huma.Operation{
		OperationID: "select-device",
		Method:      http.MethodPut,
		Path:        "/api/devices/{flow}/selected",
		Summary:     "Select Device",
		Description: "Select a cataloged device for a data flow. Fires a property change event when the selection actually changes.",
		Tags:        []string{"devices"},
		Security:    withAuth(),
		Errors:      []int{400, 401, 404},
	}, func(ctx context.Context, input *SelectDeviceInput) (*models.SelectedDeviceResponse, error) {
		flow, err := device.ParseDataFlow(input.Flow)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid data flow", err)
		}

		locator, err := device.ParseLocator(input.Body.Locator)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid device locator", err)
		}

		if err := s.registry.SetSelectedDevice(flow, locator); err != nil {
			if errors.Is(err, device.ErrUnknownDevice) {
				return nil, huma.Error404NotFound("Device not cataloged", err)
			}
			return nil, huma.Error400BadRequest("Selection rejected", err)
		}

		resp := &models.SelectedDeviceResponse{
			Body: models.SelectedDeviceData{Flow: flow.String()},
		}
		if info, ok := s.registry.SelectedDevice(flow); ok {
			resp.Body.Selected = &models.DeviceInfo{
				Name:    info.Name,
				Locator: info.Locator.String(),
			}
		}
		return resp, nil
	})
}
