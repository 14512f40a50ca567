package device

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Simulator is an in-process device returning fixed scan data.
type Simulator struct{}

// NewSimulator creates a simulated device
func NewSimulator() *Simulator {
	return &Simulator{}
}

// StartDPV returns a 0.1–0.7 V sweep with no current.
func (s *Simulator) StartDPV(ctx context.Context) ([]models.DPVSample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	potentials := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7}
	samples := make([]models.DPVSample, len(potentials))
	for i, p := range potentials {
		samples[i] = models.DPVSample{Potential: p}
	}
	return samples, nil
}

// StartEIS returns five impedance samples from 0.1 Hz to 1 kHz.
func (s *Simulator) StartEIS(ctx context.Context) ([]models.EISSample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []models.EISSample{
		{RealImpedance: 100, ImaginaryImpedance: 200, Frequency: 0.1, Magnitude: 223.6, Phase: 63.4},
		{RealImpedance: 150, ImaginaryImpedance: 100, Frequency: 1, Magnitude: 180.3, Phase: 33.7},
		{RealImpedance: 200, ImaginaryImpedance: 50, Frequency: 10, Magnitude: 206.2, Phase: 14.0},
		{RealImpedance: 250, ImaginaryImpedance: 25, Frequency: 100, Magnitude: 251.2, Phase: 5.7},
		{RealImpedance: 300, ImaginaryImpedance: 10, Frequency: 1000, Magnitude: 300.2, Phase: 1.9},
	}, nil
}

// SimulatorHandler serves the simulator's scan endpoints so that an
// HTTPDevice can be pointed at this server.
func SimulatorHandler(sim *Simulator) http.Handler {
	router := chi.NewRouter()

	router.Get(dpvPath, func(w http.ResponseWriter, r *http.Request) {
		samples, err := sim.StartDPV(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to start scan"})
			return
		}
		writeJSON(w, http.StatusOK, DPVResponse{Status: "DPV scan complete", ScanData: samples})
	})

	router.Get(eisPath, func(w http.ResponseWriter, r *http.Request) {
		samples, err := sim.StartEIS(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to start EIS scan"})
			return
		}
		log.Debug().Int("samples", len(samples)).Msg("Simulated EIS data sent")
		writeJSON(w, http.StatusOK, EISResponse{ScanData: samples})
	})

	return router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to write device response")
	}
}
