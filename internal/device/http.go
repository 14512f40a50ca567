package device

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/rs/zerolog/log"
)

const (
	dpvPath = "/start-scan"
	eisPath = "/start-eis"
)

// HTTPDevice talks to a device exposing the scan endpoints over HTTP.
// Requests are never retried.
type HTTPDevice struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPDevice creates a device client for baseURL, e.g. "http://172.20.10.9".
func NewHTTPDevice(baseURL string, timeout time.Duration) *HTTPDevice {
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	return &HTTPDevice{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// StartDPV runs a DPV scan
func (d *HTTPDevice) StartDPV(ctx context.Context) ([]models.DPVSample, error) {
	var resp DPVResponse
	if err := d.get(ctx, dpvPath, &resp); err != nil {
		return nil, err
	}
	return resp.ScanData, nil
}

// StartEIS runs an EIS scan
func (d *HTTPDevice) StartEIS(ctx context.Context) ([]models.EISSample, error) {
	var resp EISResponse
	if err := d.get(ctx, eisPath, &resp); err != nil {
		return nil, err
	}
	return resp.ScanData, nil
}

func (d *HTTPDevice) get(ctx context.Context, path string, out any) error {
	url := d.baseURL + path
	log.Debug().Str("url", url).Msg("Sending scan request to device")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrDeviceUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode device response: %w", err)
	}
	return nil
}
