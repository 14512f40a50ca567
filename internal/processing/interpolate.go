package processing

import "github.com/RMahshie/voltadash/pkg/models"

// Interpolate returns the n-1 points strictly between p1 and p2 at fractions
// i/n. n <= 1 yields no points.
func Interpolate(p1, p2 models.ImpedancePoint, n int) []models.ImpedancePoint {
	if n <= 1 {
		return []models.ImpedancePoint{}
	}
	points := make([]models.ImpedancePoint, 0, n-1)
	dr := p2.Real - p1.Real
	di := p2.Imaginary - p1.Imaginary
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		points = append(points, models.ImpedancePoint{
			Real:      p1.Real + t*dr,
			Imaginary: p1.Imaginary + t*di,
		})
	}
	return points
}
