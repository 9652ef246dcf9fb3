package units

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidQuantity indicates that a string could not be parsed as a quantity.
var ErrInvalidQuantity = errors.New("invalid quantity")

// temperature suffixes, longest first so "re" wins over "r".
var tempSuffixes = []struct {
	suffix string
	build  func(float64) Temperature
}{
	{"ré", func(v float64) Temperature { return Reaumur(v) }},
	{"re", func(v float64) Temperature { return Reaumur(v) }},
	{"ra", func(v float64) Temperature { return Rankine(v) }},
	{"r", func(v float64) Temperature { return Rankine(v) }},
	{"c", func(v float64) Temperature { return Celsius(v) }},
	{"k", func(v float64) Temperature { return Kelvin(v) }},
	{"f", func(v float64) Temperature { return Fahrenheit(v) }},
}

// ParseMillivolts parses a voltage such as "1.1", "1.1mV" or "-0.25 mv".
func ParseMillivolts(s string) (Millivolts, error) {
	str := strings.TrimSpace(s)
	lower := strings.ToLower(str)
	if strings.HasSuffix(lower, "mv") {
		str = strings.TrimSpace(str[:len(str)-2])
	}

	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a voltage", ErrInvalidQuantity, s)
	}

	return Millivolts(v), nil
}

// ParseTemperature parses a temperature with an optional unit suffix.
//
// Accepted suffixes (case-insensitive, optional leading degree sign):
//   - C: Celsius (also the default when no suffix is given)
//   - K: Kelvin
//   - F: Fahrenheit
//   - R, Ra: Rankine
//   - Re, Ré: Réaumur
func ParseTemperature(s string) (Temperature, error) {
	str := strings.TrimSpace(s)
	lower := strings.ToLower(str)

	for _, ts := range tempSuffixes {
		if !strings.HasSuffix(lower, ts.suffix) {
			continue
		}

		num := strings.TrimSpace(str[:len(str)-len(ts.suffix)])
		num = strings.TrimSuffix(num, "°")
		num = strings.TrimSuffix(num, "º")
		v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a temperature", ErrInvalidQuantity, s)
		}

		return ts.build(v), nil
	}

	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a temperature", ErrInvalidQuantity, s)
	}

	return Celsius(v), nil
}
