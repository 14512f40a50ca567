package processing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/RMahshie/voltadash/internal/device"
	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDevice implements device.Device for testing
type MockDevice struct {
	mock.Mock
}

func (m *MockDevice) StartDPV(ctx context.Context) ([]models.DPVSample, error) {
	args := m.Called(ctx)
	samples, _ := args.Get(0).([]models.DPVSample)
	return samples, args.Error(1)
}

func (m *MockDevice) StartEIS(ctx context.Context) ([]models.EISSample, error) {
	args := m.Called(ctx)
	samples, _ := args.Get(0).([]models.EISSample)
	return samples, args.Error(1)
}

func newTestService(dev device.Device, rng RandomSource) ScanService {
	return NewScanService(
		dev,
		NewPeakGenerator(NewMemoryPeakStore(), rng),
		NewCountdown(time.Hour),
		ScanConfig{EISCountdown: 120 * time.Second},
	)
}

func TestRunDPV_Simulator(t *testing.T) {
	svc := newTestService(device.NewSimulator(), &sequenceSource{values: []float64{0.5}})

	result, err := svc.RunDPV(context.Background(), "session-123", Conc500uM, "")
	require.NoError(t, err)

	assert.Equal(t, SampleConcentration, result.Option)
	assert.InDelta(t, 95e-9, result.PeakCurrent, 1e-18)
	require.Len(t, result.Curve, 7)
	for i, p := range result.Curve {
		if i == 4 {
			assert.Equal(t, 0.6, p.Potential)
			assert.Equal(t, result.PeakCurrent, p.DifferentialCurrent)
			continue
		}
		assert.Zero(t, p.DifferentialCurrent, "potential %v", p.Potential)
	}
}

func TestRunDPV_SamePeakAcrossScans(t *testing.T) {
	svc := newTestService(device.NewSimulator(), nil)
	ctx := context.Background()

	first, err := svc.RunDPV(ctx, "session-123", Conc250uM, SampleConcentration)
	require.NoError(t, err)
	second, err := svc.RunDPV(ctx, "session-123", Conc250uM, SampleConcentration)
	require.NoError(t, err)

	assert.Equal(t, first.PeakCurrent, second.PeakCurrent)
}

func TestRunDPV_WashIsFlat(t *testing.T) {
	svc := newTestService(device.NewSimulator(), nil)

	result, err := svc.RunDPV(context.Background(), "session-123", "custom sample", SampleWash)
	require.NoError(t, err)

	assert.Zero(t, result.PeakCurrent)
	for _, p := range result.Curve {
		assert.Zero(t, p.DifferentialCurrent)
	}
}

func TestRunDPV_UnknownLabelSkipsDevice(t *testing.T) {
	dev := &MockDevice{}
	svc := newTestService(dev, nil)

	_, err := svc.RunDPV(context.Background(), "session-123", "42 µM", SampleConcentration)

	assert.ErrorIs(t, err, ErrNoPeakRange)
	dev.AssertNotCalled(t, "StartDPV", mock.Anything)
}

func TestRunDPV_DeviceFailure(t *testing.T) {
	dev := &MockDevice{}
	dev.On("StartDPV", mock.Anything).Return(nil, fmt.Errorf("%w: status 503", device.ErrDeviceUnavailable))
	svc := newTestService(dev, nil)

	_, err := svc.RunDPV(context.Background(), "session-123", Conc1uM, SampleConcentration)

	assert.ErrorIs(t, err, device.ErrDeviceUnavailable)
	dev.AssertExpectations(t)
}

func TestRunEIS_Simulator(t *testing.T) {
	svc := newTestService(device.NewSimulator(), nil)

	result, err := svc.RunEIS(context.Background(), "session-123", Conc500uM)
	require.NoError(t, err)

	assert.True(t, result.HighConcentration)
	assert.Len(t, result.Raw, 5)
	assert.Len(t, result.Bode, 5)
	assert.Equal(t, models.BodePoint{Frequency: 0.1, Magnitude: 223.6, Phase: 63.4}, result.Bode[0])

	require.Len(t, result.Nyquist, 22)
	assert.Equal(t, models.ImpedancePoint{}, result.Nyquist[0])
	assert.Equal(t, models.ImpedancePoint{Real: 100, Imaginary: 200}, result.Nyquist[20])
	assert.Equal(t, models.ImpedancePoint{Real: 300, Imaginary: 10}, result.Nyquist[21])

	assert.Len(t, result.NyquistDisplay, 21)
	for _, p := range result.NyquistDisplay {
		assert.Greater(t, p.Imaginary, 0.0)
	}

	assert.False(t, svc.Progress().Active)
}

func TestRunEIS_Buffer(t *testing.T) {
	svc := newTestService(device.NewSimulator(), nil)

	result, err := svc.RunEIS(context.Background(), "session-123", Buffer)
	require.NoError(t, err)

	assert.False(t, result.HighConcentration)
	require.Len(t, result.Nyquist, 5)
	for _, p := range result.Nyquist {
		assert.Equal(t, 1.0, p.Imaginary)
	}
}

func TestRunEIS_ProgressWhileScanning(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	dev := &MockDevice{}
	dev.On("StartEIS", mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]models.EISSample{{RealImpedance: 10, ImaginaryImpedance: 5}}, nil)
	svc := newTestService(dev, nil)

	assert.Equal(t, "Idle", svc.Progress().Message())

	done := make(chan error, 1)
	go func() {
		_, err := svc.RunEIS(context.Background(), "session-123", Conc10uM)
		done <- err
	}()

	<-started
	progress := svc.Progress()
	assert.True(t, progress.Active)
	assert.Equal(t, 120, progress.RemainingSeconds)
	assert.Equal(t, "2:00 remaining", progress.Message())

	close(release)
	require.NoError(t, <-done)
	assert.False(t, svc.Progress().Active)
}

func TestRunEIS_DeviceFailureResetsProgress(t *testing.T) {
	dev := &MockDevice{}
	dev.On("StartEIS", mock.Anything).Return(nil, device.ErrDeviceUnavailable)
	svc := newTestService(dev, nil)

	_, err := svc.RunEIS(context.Background(), "session-123", Conc10uM)

	assert.ErrorIs(t, err, device.ErrDeviceUnavailable)
	assert.False(t, svc.Progress().Active)
	assert.Equal(t, 0, svc.Progress().RemainingSeconds)
}

func TestResetSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(device.NewSimulator(), &sequenceSource{values: []float64{0.1, 0.9}})

	before, err := svc.RunDPV(ctx, "session-123", Conc500uM, SampleConcentration)
	require.NoError(t, err)

	require.NoError(t, svc.ResetSession(ctx, "session-123"))

	after, err := svc.RunDPV(ctx, "session-123", Conc500uM, SampleConcentration)
	require.NoError(t, err)
	assert.NotEqual(t, before.PeakCurrent, after.PeakCurrent)
}

func TestSplitEIS(t *testing.T) {
	samples := []models.EISSample{
		{RealImpedance: 1, ImaginaryImpedance: 2, Frequency: 3, Magnitude: 4, Phase: 5},
	}

	impedance, bode := SplitEIS(samples)

	assert.Equal(t, []models.ImpedancePoint{{Real: 1, Imaginary: 2}}, impedance)
	assert.Equal(t, []models.BodePoint{{Frequency: 3, Magnitude: 4, Phase: 5}}, bode)
}
