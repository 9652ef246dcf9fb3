package its90

import (
	"fmt"
	"math"

	"github.com/arloliu/go-thermocouple/internal/poly"
	"github.com/arloliu/go-thermocouple/internal/util"
	"github.com/arloliu/go-thermocouple/units"
)

const (
	forwardName = "E(T)"
	inverseName = "T(E)"
)

type compiledSegment[F poly.Float] struct {
	upper        float64
	coefficients []F
	correction   *gaussian
}

// compiledFunc is a function with its coefficient sets materialised in the storage type F.
type compiledFunc[F poly.Float] struct {
	inclusive bool
	segments  []compiledSegment[F]
}

func compileFunc[F poly.Float](f *function) *compiledFunc[F] {
	cf := &compiledFunc[F]{
		inclusive: f.inclusive,
		segments:  make([]compiledSegment[F], len(f.segments)),
	}
	for i, seg := range f.segments {
		cf.segments[i] = compiledSegment[F]{
			upper:        seg.upper,
			coefficients: util.ConvertFloats[F](seg.coefficients),
			correction:   seg.correction,
		}
	}

	return cf
}

// index selects the segment owning x. Inputs below the domain fall into the first segment and
// inputs above it into the last one.
func (cf *compiledFunc[F]) index(x float64) int {
	last := len(cf.segments) - 1
	for i := 0; i < last; i++ {
		upper := cf.segments[i].upper
		if (cf.inclusive && x <= upper) || (!cf.inclusive && x < upper) {
			return i
		}
	}

	return last
}

func (cf *compiledFunc[F]) eval(x float64) float64 {
	seg := &cf.segments[cf.index(x)]
	fx := F(x)
	y := poly.Eval(seg.coefficients, fx)
	if seg.correction != nil {
		y += F(seg.correction.eval(float64(fx)))
	}

	return float64(y)
}

type (
	evalFunc  func(x float64) float64
	checkFunc func(x float64) error
)

// Evaluator evaluates the reference functions of one thermocouple type with a fixed precision
// and domain policy. It is immutable and safe for concurrent use.
type Evaluator struct {
	table     *Table
	precision Precision
	mode      DomainMode

	forward      evalFunc
	inverse      evalFunc
	checkForward checkFunc
	checkInverse checkFunc
}

// Compile builds the evaluator of a thermocouple type for the given precision and domain mode.
func Compile(kind Kind, precision Precision, mode DomainMode) (*Evaluator, error) {
	tbl, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	if !precision.Valid() {
		return nil, ErrInvalidPrecision
	}
	if !mode.Valid() {
		return nil, ErrInvalidDomainMode
	}

	ev := &Evaluator{
		table:     tbl,
		precision: precision,
		mode:      mode,
	}

	switch precision {
	case Single:
		ev.forward = compileFunc[float32](&tbl.forward).eval
		ev.inverse = compileFunc[float32](&tbl.inverse).eval
	default:
		ev.forward = compileFunc[float64](&tbl.forward).eval
		ev.inverse = compileFunc[float64](&tbl.inverse).eval
	}

	switch mode {
	case Extrapolate:
		ev.checkForward = noCheck
		ev.checkInverse = noCheck
	default:
		inverseDomain := tbl.inverse.domain
		slack := tbl.slack(precision)
		inverseDomain.Low -= slack
		inverseDomain.High += slack

		ev.checkForward = domainCheck(kind, forwardName, tbl.forward.domain, "°C")
		ev.checkInverse = domainCheck(kind, inverseName, inverseDomain, "mV")
	}

	return ev, nil
}

func noCheck(float64) error { return nil }

func domainCheck(kind Kind, fn string, domain Interval, unit string) checkFunc {
	return func(x float64) error {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return newDomainError(kind, fn, x, domain, unit, ErrNotFinite)
		}
		if !domain.Contains(x) {
			return newDomainError(kind, fn, x, domain, unit, ErrOutOfRange)
		}

		return nil
	}
}

// Kind returns the thermocouple type.
func (ev *Evaluator) Kind() Kind { return ev.table.kind }

// Table returns the reference table the evaluator was compiled from.
func (ev *Evaluator) Table() *Table { return ev.table }

// Precision returns the storage precision.
func (ev *Evaluator) Precision() Precision { return ev.precision }

// DomainMode returns the domain-check mode.
func (ev *Evaluator) DomainMode() DomainMode { return ev.mode }

// Forward evaluates E(T): the thermoelectric voltage of a junction at temperature t against a
// 0°C reference junction.
//
// In strict mode it returns a *DomainError when t lies outside the published domain.
func (ev *Evaluator) Forward(t units.Celsius) (units.Millivolts, error) {
	x := float64(t)
	if err := ev.checkForward(x); err != nil {
		return 0, err
	}

	return units.Millivolts(ev.forward(x)), nil
}

// Inverse evaluates T(E): the junction temperature producing voltage e against a 0°C reference
// junction.
//
// In strict mode it returns a *DomainError when e lies outside the published domain.
func (ev *Evaluator) Inverse(e units.Millivolts) (units.Celsius, error) {
	x := float64(e)
	if err := ev.checkInverse(x); err != nil {
		return 0, err
	}

	return units.Celsius(ev.inverse(x)), nil
}

// defaultEvaluators hold the double precision, strict evaluators of every type.
var defaultEvaluators = func() map[Kind]*Evaluator {
	evs := make(map[Kind]*Evaluator, len(allKinds))
	for _, kind := range allKinds {
		ev, err := Compile(kind, Double, Strict)
		if err != nil {
			panic(err)
		}
		evs[kind] = ev
	}

	return evs
}()

// Default returns the double precision, strict evaluator of a thermocouple type.
func Default(kind Kind) (*Evaluator, error) {
	ev, ok := defaultEvaluators[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	return ev, nil
}

// Forward evaluates E(T) of a thermocouple type with the default strategy.
func Forward(kind Kind, t units.Celsius) (units.Millivolts, error) {
	ev, err := Default(kind)
	if err != nil {
		return 0, err
	}

	return ev.Forward(t)
}

// Inverse evaluates T(E) of a thermocouple type with the default strategy.
func Inverse(kind Kind, e units.Millivolts) (units.Celsius, error) {
	ev, err := Default(kind)
	if err != nil {
		return 0, err
	}

	return ev.Inverse(e)
}
