package processing

import (
	"context"
	"fmt"
	"time"

	"github.com/RMahshie/voltadash/internal/device"
	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/rs/zerolog/log"
)

// ScanService runs scans on the device and turns the raw samples into curves.
type ScanService interface {
	RunDPV(ctx context.Context, sessionID string, label Concentration, option SampleOption) (*DPVResult, error)
	RunEIS(ctx context.Context, sessionID string, label Concentration) (*EISResult, error)
	Progress() Progress
	ResetSession(ctx context.Context, sessionID string) error
}

// ScanConfig holds the tunables of the scan pipeline.
type ScanConfig struct {
	HighConcentrationThreshold float64
	EISCountdown               time.Duration
	Nyquist                    NyquistOptions
}

// DPVResult is a processed DPV scan.
type DPVResult struct {
	Concentration Concentration
	Option        SampleOption
	PeakCurrent   float64
	Curve         []models.VoltammogramPoint
}

// EISResult is a processed EIS scan.
type EISResult struct {
	Concentration     Concentration
	HighConcentration bool
	Raw               []models.ImpedancePoint
	Nyquist           []models.ImpedancePoint
	NyquistDisplay    []models.ImpedancePoint
	Bode              []models.BodePoint
}

// Progress is a snapshot of the scan countdown.
type Progress struct {
	Active           bool
	RemainingSeconds int
}

// Message renders the progress for display.
func (p Progress) Message() string {
	if !p.Active {
		return "Idle"
	}
	return FormatRemaining(p.RemainingSeconds) + " remaining"
}

type scanService struct {
	device    device.Device
	peaks     *PeakGenerator
	composer  *Composer
	countdown *Countdown
	cfg       ScanConfig
}

// NewScanService wires the pipeline to a device and a peak generator.
func NewScanService(dev device.Device, peaks *PeakGenerator, countdown *Countdown, cfg ScanConfig) ScanService {
	if cfg.HighConcentrationThreshold == 0 {
		cfg.HighConcentrationThreshold = DefaultHighConcentrationThreshold
	}
	if countdown == nil {
		countdown = NewCountdown(time.Second)
	}
	return &scanService{
		device:    dev,
		peaks:     peaks,
		composer:  NewComposer(peaks),
		countdown: countdown,
		cfg:       cfg,
	}
}

func (s *scanService) RunDPV(ctx context.Context, sessionID string, label Concentration, option SampleOption) (*DPVResult, error) {
	if option == "" {
		option = SampleConcentration
	}

	// Reject labels without a peak model before touching the device
	if option == SampleConcentration {
		if _, _, ok := PeakRange(label); !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoPeakRange, label)
		}
	}

	log.Info().Str("sessionID", sessionID).Str("concentration", string(label)).Str("option", string(option)).Msg("Starting DPV scan")
	samples, err := s.device.StartDPV(ctx)
	if err != nil {
		log.Error().Err(err).Msg("DPV scan failed")
		return nil, fmt.Errorf("dpv scan: %w", err)
	}
	sweep := Sweep(samples)

	result := &DPVResult{Concentration: label, Option: option}
	if option == SampleWash {
		result.Curve = ComposeVoltammogram(sweep, 0)
	} else {
		result.Curve, result.PeakCurrent, err = s.composer.Compose(ctx, sessionID, label, sweep)
		if err != nil {
			return nil, err
		}
	}

	log.Info().Int("points", len(result.Curve)).Float64("peakCurrent", result.PeakCurrent).Msg("DPV scan processed")
	return result, nil
}

func (s *scanService) RunEIS(ctx context.Context, sessionID string, label Concentration) (*EISResult, error) {
	log.Info().Str("sessionID", sessionID).Str("concentration", string(label)).Msg("Starting EIS scan")

	stop := s.countdown.Start(int(s.cfg.EISCountdown / time.Second))
	defer stop()

	samples, err := s.device.StartEIS(ctx)
	if err != nil {
		log.Error().Err(err).Msg("EIS scan failed")
		return nil, fmt.Errorf("eis scan: %w", err)
	}

	raw, bode := SplitEIS(samples)
	high := IsHighConcentration(label, s.cfg.HighConcentrationThreshold)
	nyquist := SynthesizeNyquist(ScanSeries{Concentration: label, Points: raw}, high, s.cfg.Nyquist)

	log.Info().Int("samples", len(samples)).Bool("high", high).Int("points", len(nyquist)).Msg("EIS scan processed")
	return &EISResult{
		Concentration:     label,
		HighConcentration: high,
		Raw:               raw,
		Nyquist:           nyquist,
		NyquistDisplay:    PositiveImaginary(nyquist),
		Bode:              bode,
	}, nil
}

func (s *scanService) Progress() Progress {
	return Progress{
		Active:           s.countdown.Active(),
		RemainingSeconds: s.countdown.Remaining(),
	}
}

func (s *scanService) ResetSession(ctx context.Context, sessionID string) error {
	if err := s.peaks.Reset(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to reset session peaks: %w", err)
	}
	return nil
}

// SplitEIS separates device samples into the impedance series and the
// frequency/magnitude/phase series.
func SplitEIS(samples []models.EISSample) ([]models.ImpedancePoint, []models.BodePoint) {
	impedance := make([]models.ImpedancePoint, len(samples))
	bode := make([]models.BodePoint, len(samples))
	for i, s := range samples {
		impedance[i] = models.ImpedancePoint{Real: s.RealImpedance, Imaginary: s.ImaginaryImpedance}
		bode[i] = models.BodePoint{Frequency: s.Frequency, Magnitude: s.Magnitude, Phase: s.Phase}
	}
	return impedance, bode
}
