package device

import (
	"context"
	"errors"

	"github.com/RMahshie/voltadash/pkg/models"
)

// ErrDeviceUnavailable is returned when the device cannot be reached or
// rejects the scan request.
var ErrDeviceUnavailable = errors.New("measurement device unavailable")

// Device triggers scans on a measurement device.
type Device interface {
	StartDPV(ctx context.Context) ([]models.DPVSample, error)
	StartEIS(ctx context.Context) ([]models.EISSample, error)
}

// DPVResponse is the device's answer to a DPV scan request.
type DPVResponse struct {
	Status   string             `json:"status,omitempty"`
	ScanData []models.DPVSample `json:"scanData"`
}

// EISResponse is the device's answer to an EIS scan request.
type EISResponse struct {
	Status   string             `json:"status,omitempty"`
	ScanData []models.EISSample `json:"scanData"`
}
