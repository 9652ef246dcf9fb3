package its90

import (
	"fmt"
	"strings"
)

// Kind identifies a letter-designated thermocouple type.
type Kind byte

const (
	B Kind = 'B' // platinum-30% rhodium / platinum-6% rhodium
	E Kind = 'E' // chromel / constantan
	J Kind = 'J' // iron / constantan
	K Kind = 'K' // chromel / alumel
	N Kind = 'N' // nicrosil / nisil
	R Kind = 'R' // platinum-13% rhodium / platinum
	S Kind = 'S' // platinum-10% rhodium / platinum
	T Kind = 'T' // copper / constantan
)

var allKinds = []Kind{B, E, J, K, N, R, S, T}

// Kinds returns every supported thermocouple type in alphabetical order.
func Kinds() []Kind {
	kinds := make([]Kind, len(allKinds))
	copy(kinds, allKinds)

	return kinds
}

// String returns the type letter, e.g. "K".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", byte(k))
	}

	return string(rune(k))
}

// Valid reports whether k is one of the supported types.
func (k Kind) Valid() bool {
	_, ok := tables[k]
	return ok
}

// ParseKind parses a thermocouple type such as "K", "k", "type K" or "K-type".
func ParseKind(s string) (Kind, error) {
	str := strings.ToUpper(strings.TrimSpace(s))
	str = strings.TrimPrefix(str, "TYPE")
	str = strings.TrimSuffix(str, "TYPE")
	str = strings.Trim(str, " -_")

	if len(str) == 1 {
		if k := Kind(str[0]); k.Valid() {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Precision selects the storage type of coefficient sets and the arithmetic used to evaluate them.
type Precision uint8

const (
	// Double stores coefficients as float64. Results match the NIST tables to ±0.0005mV / ±0.05°C.
	Double Precision = iota
	// Single stores coefficients as float32. Results match the NIST tables to ±0.1mV / ±0.25°C.
	Single
)

// String returns "double" or "single".
func (p Precision) String() string {
	switch p {
	case Double:
		return "double"
	case Single:
		return "single"
	default:
		return fmt.Sprintf("Precision(%d)", uint8(p))
	}
}

// Valid reports whether p is a supported precision.
func (p Precision) Valid() bool {
	return p == Double || p == Single
}

// ParsePrecision parses "double" (or "f64", "float64") and "single" (or "f32", "float32").
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "double", "f64", "float64":
		return Double, nil
	case "single", "f32", "float32":
		return Single, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrecision, s)
	}
}

// Tolerance returns the acceptance thresholds of a precision against the NIST reference tables:
// the maximum forward error in mV and the maximum inverse error in °C.
func Tolerance(p Precision) (voltage float64, temperature float64) {
	if p == Single {
		return 0.1, 0.25
	}

	return 0.0005, 0.05
}

// DomainMode selects how inputs outside the published domain are handled.
type DomainMode uint8

const (
	// Strict rejects out-of-range inputs with a *DomainError.
	Strict DomainMode = iota
	// Extrapolate skips the domain check and evaluates the nearest segment.
	// Results outside the published domain carry no accuracy guarantee.
	Extrapolate
)

// String returns "strict" or "extrapolate".
func (m DomainMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Extrapolate:
		return "extrapolate"
	default:
		return fmt.Sprintf("DomainMode(%d)", uint8(m))
	}
}

// Valid reports whether m is a supported domain mode.
func (m DomainMode) Valid() bool {
	return m == Strict || m == Extrapolate
}

// ParseDomainMode parses "strict" or "extrapolate".
func ParseDomainMode(s string) (DomainMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "extrapolate":
		return Extrapolate, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDomainMode, s)
	}
}
