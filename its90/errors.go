package its90

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that an input lies outside the published domain of a reference function.
	ErrOutOfRange = errors.New("input out of range")

	// ErrNotFinite indicates that an input is NaN or infinite.
	ErrNotFinite = errors.New("input is not a finite number")
)

var (
	// ErrUnknownKind indicates that a thermocouple type letter is not one of B, E, J, K, N, R, S, T.
	ErrUnknownKind = errors.New("unknown thermocouple type")

	// ErrInvalidPrecision indicates an unsupported storage precision.
	ErrInvalidPrecision = errors.New("invalid precision, should be double or single")

	// ErrInvalidDomainMode indicates an unsupported domain-check mode.
	ErrInvalidDomainMode = errors.New("invalid domain mode, should be strict or extrapolate")
)

// DomainError describes a strict-mode domain violation.
//
// It wraps ErrOutOfRange or ErrNotFinite, so callers can test it with errors.Is.
//
// For E(T) the bounds are the published temperature domain. For T(E) they are the published
// voltage domain widened on both sides by the inverse slack of the evaluator's precision, so a
// type T violation in double precision reports -5.6035 instead of -5.603.
type DomainError struct {
	Kind     Kind    // thermocouple type
	Function string  // "E(T)" or "T(E)"
	Value    float64 // rejected input
	Low      float64 // lower bound of the accepted interval
	High     float64 // upper bound of the accepted interval
	Unit     string  // unit of Value, Low and High

	err error
}

func newDomainError(kind Kind, fn string, value float64, domain Interval, unit string, err error) *DomainError {
	return &DomainError{
		Kind:     kind,
		Function: fn,
		Value:    value,
		Low:      domain.Low,
		High:     domain.High,
		Unit:     unit,
		err:      err,
	}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return fmt.Sprintf("type %s %s: %v: %g%s not in [%g, %g]%s",
		e.Kind, e.Function, e.err, e.Value, e.Unit, e.Low, e.High, e.Unit)
}

// Unwrap returns the sentinel error describing the violation.
func (e *DomainError) Unwrap() error {
	return e.err
}
