package its90

import (
	"fmt"
	"math"

	"github.com/arloliu/go-thermocouple/internal/util"
)

// Interval is a closed range [Low, High], or [Low, High) when OpenHigh is set.
type Interval struct {
	Low      float64
	High     float64
	OpenHigh bool
}

// Contains reports whether x lies inside the interval.
func (iv Interval) Contains(x float64) bool {
	if x < iv.Low {
		return false
	}
	if iv.OpenHigh {
		return x < iv.High
	}

	return x <= iv.High
}

// String returns the interval in mathematical notation, e.g. "[-270, 1372]".
func (iv Interval) String() string {
	closing := "]"
	if iv.OpenHigh {
		closing = ")"
	}

	return fmt.Sprintf("[%g, %g%s", iv.Low, iv.High, closing)
}

// gaussian is the additive correction a0·exp(a1·(x−a2)²).
type gaussian struct {
	a0, a1, a2 float64
}

func (g *gaussian) eval(x float64) float64 {
	d := x - g.a2
	return g.a0 * math.Exp(g.a1*d*d)
}

// segment is one power series of a piecewise function, valid up to upper.
type segment struct {
	upper        float64
	coefficients []float64
	correction   *gaussian
}

// function is a piecewise power series over a published domain.
//
// When inclusive is set, a breakpoint belongs to the lower segment (x <= upper selects it),
// otherwise to the upper one (x < upper selects the lower segment). The last segment takes every
// input above the previous breakpoint, including extrapolated ones.
type function struct {
	domain    Interval
	inclusive bool
	segments  []segment
}

func (f *function) breakpoints() []float64 {
	bps := make([]float64, 0, len(f.segments)-1)
	for _, seg := range f.segments[:len(f.segments)-1] {
		bps = append(bps, seg.upper)
	}

	return bps
}

// Table describes the reference functions of one thermocouple type.
//
// Tables are package-level constants; every accessor returns a copy.
type Table struct {
	kind    Kind
	name    string
	alloy   string
	forward function
	inverse function

	// inverseSlack widens the inverse domain check in double precision so voltages computed by
	// the forward function at the domain edges are accepted.
	inverseSlack float64

	// certified is the temperature range over which the inverse meets the published tolerance.
	certified Interval
}

var tables = map[Kind]*Table{
	B: &typeB,
	E: &typeE,
	J: &typeJ,
	K: &typeK,
	N: &typeN,
	R: &typeR,
	S: &typeS,
	T: &typeT,
}

// Lookup returns the table of a thermocouple type.
func Lookup(kind Kind) (*Table, error) {
	tbl, ok := tables[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	return tbl, nil
}

// Kind returns the thermocouple type.
func (t *Table) Kind() Kind { return t.kind }

// Name returns the display name, e.g. "Type K".
func (t *Table) Name() string { return t.name }

// Alloy returns the positive and negative leg materials, e.g. "chromel / alumel".
func (t *Table) Alloy() string { return t.alloy }

// String implements fmt.Stringer, e.g. "Type K (chromel / alumel)".
func (t *Table) String() string { return t.name + " (" + t.alloy + ")" }

// ForwardDomain returns the temperature range in °C over which E(T) is published.
func (t *Table) ForwardDomain() Interval { return t.forward.domain }

// InverseDomain returns the voltage range in mV over which T(E) is published.
func (t *Table) InverseDomain() Interval { return t.inverse.domain }

// InverseTemperatureRange returns the temperature range in °C over which T(E) meets the
// published tolerance. It is narrower than ForwardDomain for most types.
func (t *Table) InverseTemperatureRange() Interval { return t.certified }

// ForwardBreakpoints returns the temperatures in °C separating the segments of E(T).
func (t *Table) ForwardBreakpoints() []float64 { return t.forward.breakpoints() }

// InverseBreakpoints returns the voltages in mV separating the segments of T(E).
func (t *Table) InverseBreakpoints() []float64 { return t.inverse.breakpoints() }

// ForwardCoefficients returns a copy of the coefficients of the i-th E(T) segment in ascending
// power order.
func (t *Table) ForwardCoefficients(i int) []float64 {
	if i < 0 || i >= len(t.forward.segments) {
		return nil
	}

	return util.CloneSlice(t.forward.segments[i].coefficients, 0)
}

// InverseCoefficients returns a copy of the coefficients of the i-th T(E) segment in ascending
// power order.
func (t *Table) InverseCoefficients(i int) []float64 {
	if i < 0 || i >= len(t.inverse.segments) {
		return nil
	}

	return util.CloneSlice(t.inverse.segments[i].coefficients, 0)
}

func (t *Table) slack(p Precision) float64 {
	if p == Single {
		return 0.005
	}

	return t.inverseSlack
}
