package processing

import (
	"testing"

	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name  string
		p1    models.ImpedancePoint
		p2    models.ImpedancePoint
		n     int
		wantN int
	}{
		{name: "ten segments", p1: models.ImpedancePoint{}, p2: models.ImpedancePoint{Real: 10, Imaginary: 20}, n: 10, wantN: 9},
		{name: "two segments", p1: models.ImpedancePoint{Real: 1, Imaginary: 1}, p2: models.ImpedancePoint{Real: 3, Imaginary: 5}, n: 2, wantN: 1},
		{name: "one segment", p1: models.ImpedancePoint{}, p2: models.ImpedancePoint{Real: 1, Imaginary: 1}, n: 1, wantN: 0},
		{name: "zero segments", p1: models.ImpedancePoint{}, p2: models.ImpedancePoint{Real: 1, Imaginary: 1}, n: 0, wantN: 0},
		{name: "negative segments", p1: models.ImpedancePoint{}, p2: models.ImpedancePoint{Real: 1, Imaginary: 1}, n: -3, wantN: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := Interpolate(tt.p1, tt.p2, tt.n)
			require.NotNil(t, points)
			assert.Len(t, points, tt.wantN)
		})
	}
}

func TestInterpolate_FirstPoint(t *testing.T) {
	p1 := models.ImpedancePoint{Real: 2, Imaginary: -4}
	p2 := models.ImpedancePoint{Real: 6, Imaginary: 4}

	points := Interpolate(p1, p2, 4)

	require.Len(t, points, 3)
	assert.Equal(t, models.ImpedancePoint{Real: 3, Imaginary: -2}, points[0])
	assert.Equal(t, models.ImpedancePoint{Real: 4, Imaginary: 0}, points[1])
	assert.Equal(t, models.ImpedancePoint{Real: 5, Imaginary: 2}, points[2])
}

func TestInterpolate_ExcludesEndpoints(t *testing.T) {
	p1 := models.ImpedancePoint{}
	p2 := models.ImpedancePoint{Real: 10, Imaginary: 10}

	for _, p := range Interpolate(p1, p2, 10) {
		assert.Greater(t, p.Real, p1.Real)
		assert.Less(t, p.Real, p2.Real)
		assert.InDelta(t, p.Real, p.Imaginary, 1e-12)
	}
}
