package processing

import "github.com/RMahshie/voltadash/pkg/models"

// Expected DPV peak currents, concentration in µM to current in A.
var calibrationTable = [...]models.CalibrationPoint{
	{Concentration: 500, ExpectedCurrent: 1.2e-6},
	{Concentration: 1000, ExpectedCurrent: 2.5e-6},
	{Concentration: 1500, ExpectedCurrent: 3.8e-6},
}

// CalibrationTable returns a copy of the calibration reference table,
// ordered by increasing concentration.
func CalibrationTable() []models.CalibrationPoint {
	out := make([]models.CalibrationPoint, len(calibrationTable))
	copy(out, calibrationTable[:])
	return out
}
