package processing

import (
	"sort"

	"github.com/RMahshie/voltadash/pkg/models"
)

const (
	bumpSegments    = 10
	warburgSegments = 10
)

// ScanSeries is an impedance scan tagged with the concentration it was taken at.
type ScanSeries struct {
	Concentration Concentration
	Points        []models.ImpedancePoint
}

// NyquistOptions tunes curve synthesis.
type NyquistOptions struct {
	// IncludeWarburgTail appends the diffusion tail to low-concentration curves.
	IncludeWarburgTail bool
}

// SynthesizeNyquist builds the display curve for an impedance scan: a
// semicircle from the origin through a bump point down to the lowest-real
// sample, followed by the highest-real sample. BUFFER scans become a flat
// line at imaginary 1.
func SynthesizeNyquist(series ScanSeries, high bool, opts NyquistOptions) []models.ImpedancePoint {
	if series.Concentration == Buffer {
		flat := make([]models.ImpedancePoint, len(series.Points))
		for i, p := range series.Points {
			flat[i] = models.ImpedancePoint{Real: p.Real, Imaginary: 1}
		}
		return flat
	}

	origin := models.ImpedancePoint{}
	if len(series.Points) == 0 {
		return []models.ImpedancePoint{origin}
	}

	sorted := make([]models.ImpedancePoint, len(series.Points))
	copy(sorted, series.Points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Real < sorted[j].Real })

	lowest := sorted[0]
	highest := sorted[len(sorted)-1]

	// Low concentrations get a wider arc (higher charge-transfer resistance).
	divisor, scale := 2.0, 2.0
	if high {
		divisor, scale = 4.0, 1.2
	}
	bump := models.ImpedancePoint{
		Real:      lowest.Real / divisor,
		Imaginary: lowest.Imaginary * scale,
	}

	curve := make([]models.ImpedancePoint, 0, 2*bumpSegments+4)
	curve = append(curve, origin)
	curve = append(curve, Interpolate(origin, bump, bumpSegments)...)
	curve = append(curve, bump)
	curve = append(curve, Interpolate(bump, lowest, bumpSegments)...)
	curve = append(curve, lowest)
	curve = append(curve, Interpolate(lowest, highest, 1)...)
	curve = append(curve, highest)

	if !high && opts.IncludeWarburgTail {
		curve = append(curve, WarburgTail(lowest, highest, warburgSegments)...)
	}
	return curve
}

// WarburgTail returns n points continuing past highest along a 45° line.
func WarburgTail(lowest, highest models.ImpedancePoint, n int) []models.ImpedancePoint {
	if n <= 0 {
		return []models.ImpedancePoint{}
	}
	step := (highest.Real - lowest.Real) / float64(n)
	if step == 0 {
		step = highest.Real / float64(n)
	}
	tail := make([]models.ImpedancePoint, n)
	for k := 1; k <= n; k++ {
		d := float64(k) * step
		tail[k-1] = models.ImpedancePoint{
			Real:      highest.Real + d,
			Imaginary: highest.Imaginary + d,
		}
	}
	return tail
}

// PositiveImaginary keeps the points with a strictly positive imaginary part,
// which is what a logarithmic chart axis can show.
func PositiveImaginary(points []models.ImpedancePoint) []models.ImpedancePoint {
	out := make([]models.ImpedancePoint, 0, len(points))
	for _, p := range points {
		if p.Imaginary > 0 {
			out = append(out, p)
		}
	}
	return out
}
