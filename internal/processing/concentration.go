package processing

import (
	"errors"
	"strconv"
	"strings"
)

// Concentration is a concentration label such as "250 µM" or "BUFFER".
type Concentration string

const (
	Conc500uM Concentration = "500 µM"
	Conc400uM Concentration = "400 µM"
	Conc250uM Concentration = "250 µM"
	Conc100uM Concentration = "100 µM"
	Conc10uM  Concentration = "10 µM"
	Conc1uM   Concentration = "1 µM"
	Buffer    Concentration = "BUFFER"
)

const micromolarSuffix = "µM"

// DefaultHighConcentrationThreshold is the µM value above which a sample is
// treated as high concentration.
const DefaultHighConcentrationThreshold = 100.0

var (
	// ErrInvalidConcentration is returned for an empty or malformed label
	ErrInvalidConcentration = errors.New("invalid concentration")

	// ErrDuplicateConcentration is returned when a label is already available
	ErrDuplicateConcentration = errors.New("concentration already exists")
)

// DefaultConcentrations returns the built-in labels in display order.
func DefaultConcentrations() []Concentration {
	return []Concentration{Conc500uM, Conc400uM, Conc250uM, Conc100uM, Conc10uM, Conc1uM, Buffer}
}

// IsDefault reports whether c is one of the built-in labels.
func (c Concentration) IsDefault() bool {
	for _, d := range DefaultConcentrations() {
		if c == d {
			return true
		}
	}
	return false
}

// Micromolar returns the numeric value of the label in µM. BUFFER is 0.
func (c Concentration) Micromolar() (float64, bool) {
	if c == Buffer {
		return 0, true
	}
	s := strings.TrimSpace(string(c))
	s = strings.TrimSpace(strings.TrimSuffix(s, micromolarSuffix))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// IsHighConcentration reports whether the label's value is above threshold.
// Labels without a numeric value are low.
func IsHighConcentration(c Concentration, threshold float64) bool {
	v, ok := c.Micromolar()
	if !ok {
		return false
	}
	return v > threshold
}

// NormalizeConcentration turns user input into a label: the input is trimmed
// and " µM" is appended unless it already ends in µM.
func NormalizeConcentration(input string) (Concentration, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalidConcentration
	}
	if strings.EqualFold(s, string(Buffer)) {
		return Buffer, nil
	}
	if strings.HasSuffix(s, micromolarSuffix) {
		s = strings.TrimSpace(strings.TrimSuffix(s, micromolarSuffix))
		if s == "" {
			return "", ErrInvalidConcentration
		}
	}
	return Concentration(s + " " + micromolarSuffix), nil
}
