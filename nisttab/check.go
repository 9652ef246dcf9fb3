package nisttab

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/go-thermocouple/units"
)

// ForwardFunc evaluates E(T).
type ForwardFunc func(units.Celsius) (units.Millivolts, error)

// InverseFunc evaluates T(E).
type InverseFunc func(units.Millivolts) (units.Celsius, error)

// Deviation records a point that failed a check.
type Deviation struct {
	Point
	Expected float64 // reference value
	Got      float64 // computed value, zero when Err is set
	Err      error   // evaluation error, if any
}

// String implements fmt.Stringer.
func (d Deviation) String() string {
	if d.Err != nil {
		return fmt.Sprintf("%v: %v", d.Temperature, d.Err)
	}

	return fmt.Sprintf("%v: expected %.4f, got %.4f (Δ %.4f)", d.Temperature, d.Expected, d.Got, d.Got-d.Expected)
}

// Report summarises a check of a reference function against a table.
type Report struct {
	Checked      int         // number of points evaluated
	Tolerance    float64     // acceptance threshold
	MaxDeviation float64     // largest absolute deviation among evaluated points
	Worst        Point       // point with the largest deviation
	Failures     []Deviation // points beyond tolerance or failing evaluation
}

// OK reports whether every checked point was within tolerance.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// String returns a one-line summary followed by one line per failure.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "checked %d points, max deviation %.6f at %v, tolerance %g, %d failures",
		r.Checked, r.MaxDeviation, r.Worst.Temperature, r.Tolerance, len(r.Failures))
	for _, f := range r.Failures {
		sb.WriteString("\n  ")
		sb.WriteString(f.String())
	}

	return sb.String()
}

func (r *Report) record(p Point, expected float64, got float64, err error) {
	r.Checked++
	if err != nil {
		r.Failures = append(r.Failures, Deviation{Point: p, Expected: expected, Err: err})
		return
	}

	dev := math.Abs(got - expected)
	if dev > r.MaxDeviation {
		r.MaxDeviation = dev
		r.Worst = p
	}
	if dev > r.Tolerance || math.IsNaN(dev) {
		r.Failures = append(r.Failures, Deviation{Point: p, Expected: expected, Got: got})
	}
}

// CheckForward compares E(T) with every table voltage. tol is in mV.
func CheckForward(points []Point, forward ForwardFunc, tol float64) *Report {
	r := &Report{Tolerance: tol}
	for _, p := range points {
		v, err := forward(p.Temperature)
		r.record(p, float64(p.Voltage), float64(v), err)
	}

	return r
}

// CheckRoundTrip evaluates T(E(t)) for every table temperature accepted by within and compares
// it with t. tol is in °C.
//
// The voltage fed to T(E) is computed by E(T) rather than read from the table, because the
// three-decimal rounding of table voltages alone can exceed the inverse tolerance where the
// thermocouple sensitivity is low.
func CheckRoundTrip(points []Point, forward ForwardFunc, inverse InverseFunc, within func(units.Celsius) bool, tol float64) *Report {
	r := &Report{Tolerance: tol}
	for _, p := range points {
		if within != nil && !within(p.Temperature) {
			continue
		}

		v, err := forward(p.Temperature)
		if err != nil {
			r.record(p, float64(p.Temperature), 0, err)
			continue
		}

		t, err := inverse(v)
		r.record(p, float64(p.Temperature), float64(t), err)
	}

	return r
}
