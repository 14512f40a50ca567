package processing

import (
	"context"
	"testing"

	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeVoltammogram(t *testing.T) {
	sweep := []models.PotentialSample{{Potential: 0.3}, {Potential: 0.5}, {Potential: 0.6}}
	peak := 42e-9

	curve := ComposeVoltammogram(sweep, peak)

	require.Len(t, curve, 3)
	assert.InDelta(t, 0.4, curve[0].Potential, 1e-12)
	assert.Equal(t, 0.6, curve[1].Potential)
	assert.InDelta(t, 0.7, curve[2].Potential, 1e-12)

	assert.Zero(t, curve[0].DifferentialCurrent)
	assert.Equal(t, peak, curve[1].DifferentialCurrent)
	assert.Zero(t, curve[2].DifferentialCurrent)
}

func TestComposeVoltammogram_NoPeakPotential(t *testing.T) {
	sweep := []models.PotentialSample{{Potential: 0.1}, {Potential: 0.49}, {Potential: 0.51}}

	for _, p := range ComposeVoltammogram(sweep, 1e-6) {
		assert.Zero(t, p.DifferentialCurrent)
	}
	assert.Empty(t, ComposeVoltammogram(nil, 1e-6))
}

func TestComposer_UsesMemoizedPeak(t *testing.T) {
	ctx := context.Background()
	gen := NewPeakGenerator(NewMemoryPeakStore(), &sequenceSource{values: []float64{0.5, 0.0}})
	composer := NewComposer(gen)
	sweep := []models.PotentialSample{{Potential: 0.4}, {Potential: 0.5}}

	curve, peak, err := composer.Compose(ctx, "session-1", Conc500uM, sweep)
	require.NoError(t, err)
	assert.InDelta(t, 95e-9, peak, 1e-18)
	assert.Equal(t, peak, curve[1].DifferentialCurrent)

	generated, err := gen.Generate(ctx, "session-1", Conc500uM)
	require.NoError(t, err)
	assert.Equal(t, peak, generated)

	again, _, err := composer.Compose(ctx, "session-1", Conc500uM, sweep)
	require.NoError(t, err)
	assert.Equal(t, curve, again)
}

func TestComposer_UnknownLabel(t *testing.T) {
	composer := NewComposer(NewPeakGenerator(NewMemoryPeakStore(), nil))

	curve, _, err := composer.Compose(context.Background(), "session-1", "custom", []models.PotentialSample{{Potential: 0.5}})

	assert.ErrorIs(t, err, ErrNoPeakRange)
	assert.Nil(t, curve)
}

func TestPeakOfCurve(t *testing.T) {
	curve := []models.VoltammogramPoint{
		{Potential: 0.2, DifferentialCurrent: 0},
		{Potential: 0.6, DifferentialCurrent: 3e-8},
		{Potential: 0.7, DifferentialCurrent: 1e-8},
	}

	peak, ok := PeakOfCurve(curve)
	assert.True(t, ok)
	assert.Equal(t, 3e-8, peak)

	_, ok = PeakOfCurve(nil)
	assert.False(t, ok)
}

func TestSweep(t *testing.T) {
	samples := []models.DPVSample{{Potential: 0.1, DifferentialCurrent: 5}, {Potential: 0.2}}

	assert.Equal(t, []models.PotentialSample{{Potential: 0.1}, {Potential: 0.2}}, Sweep(samples))
}
