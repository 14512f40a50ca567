package processing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibrationTable_Monotonic(t *testing.T) {
	table := CalibrationTable()

	require.NotEmpty(t, table)
	for i := 1; i < len(table); i++ {
		assert.Greater(t, table[i].Concentration, table[i-1].Concentration)
		assert.Greater(t, table[i].ExpectedCurrent, table[i-1].ExpectedCurrent)
	}
}

func TestCalibrationTable_ReturnsCopy(t *testing.T) {
	table := CalibrationTable()
	table[0].ExpectedCurrent = -1

	assert.Equal(t, 1.2e-6, CalibrationTable()[0].ExpectedCurrent)
}
