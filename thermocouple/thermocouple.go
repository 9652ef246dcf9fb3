package thermocouple

import (
	"fmt"

	"github.com/arloliu/go-thermocouple/its90"
	"github.com/arloliu/go-thermocouple/units"
)

// DefaultReferenceTemperature is the reference-junction temperature of a new Thermocouple.
const DefaultReferenceTemperature units.Celsius = 25

// Thermocouple is a sensor assembly of one thermocouple type with a fixed reference-junction
// temperature.
//
// Its only state is the reference potential: the voltage of the type's E(T) function at the
// reference-junction temperature. Values are immutable; WithReferenceTemperature returns a copy.
// The zero value is not usable; create thermocouples with New, Config.New or the type shortcuts.
type Thermocouple struct {
	ev                   *its90.Evaluator
	referenceTemperature units.Celsius
	referencePotential   units.Millivolts
}

// New creates a thermocouple of the given type with the reference junction at 25°C.
//
// The options configure the evaluation strategy, see NewConfig.
func New(kind its90.Kind, opts ...Option) (Thermocouple, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return Thermocouple{}, err
	}

	return cfg.New(kind)
}

// New creates a thermocouple of the given type with the reference junction at 25°C, using the
// evaluation strategy of the configuration.
func (cfg *Config) New(kind its90.Kind) (Thermocouple, error) {
	if cfg == nil {
		return Thermocouple{}, ErrConfigNil
	}
	if !kind.Valid() {
		return Thermocouple{}, fmt.Errorf("%w: %s", its90.ErrUnknownKind, kind)
	}
	if !cfg.Enabled(kind) {
		return Thermocouple{}, fmt.Errorf("%w: type %s", ErrKindDisabled, kind)
	}

	ev, err := evaluator(strategy{kind: kind, precision: cfg.precision, mode: cfg.mode}, cfg.logger)
	if err != nil {
		return Thermocouple{}, err
	}

	return newThermocouple(ev, DefaultReferenceTemperature)
}

func newThermocouple(ev *its90.Evaluator, ref units.Celsius) (Thermocouple, error) {
	potential, err := ev.Forward(ref)
	if err != nil {
		return Thermocouple{}, fmt.Errorf("reference junction: %w", err)
	}

	return Thermocouple{
		ev:                   ev,
		referenceTemperature: ref,
		referencePotential:   potential,
	}, nil
}

// WithReferenceTemperature returns a copy of the thermocouple with the reference junction at t.
// The receiver is unchanged.
//
// In strict mode it returns a *its90.DomainError when t lies outside the type's E(T) domain.
func (tc Thermocouple) WithReferenceTemperature(t units.Temperature) (Thermocouple, error) {
	return newThermocouple(tc.ev, t.ToCelsius())
}

// SenseTemperature returns the hot-junction temperature for a voltage measured against the
// reference junction: T(v + E(ref)).
func (tc Thermocouple) SenseTemperature(v units.Millivolts) (units.Celsius, error) {
	return tc.ev.Inverse(v.Add(tc.referencePotential))
}

// SenseVoltage returns the voltage expected across the thermocouple when the hot junction is at
// temperature t: E(t) − E(ref).
func (tc Thermocouple) SenseVoltage(t units.Temperature) (units.Millivolts, error) {
	e, err := tc.ev.Forward(t.ToCelsius())
	if err != nil {
		return 0, err
	}

	return e.Sub(tc.referencePotential), nil
}

// MustSenseTemperature is like SenseTemperature but panics on error.
func (tc Thermocouple) MustSenseTemperature(v units.Millivolts) units.Celsius {
	t, err := tc.SenseTemperature(v)
	if err != nil {
		panic(err)
	}

	return t
}

// MustSenseVoltage is like SenseVoltage but panics on error.
func (tc Thermocouple) MustSenseVoltage(t units.Temperature) units.Millivolts {
	v, err := tc.SenseVoltage(t)
	if err != nil {
		panic(err)
	}

	return v
}

// SenseTemperatureAs is SenseTemperature with the result converted to the unit U.
func SenseTemperatureAs[U units.Unit](tc Thermocouple, v units.Millivolts) (U, error) {
	t, err := tc.SenseTemperature(v)
	if err != nil {
		var zero U
		return zero, err
	}

	return units.FromCelsius[U](t), nil
}

// Kind returns the thermocouple type.
func (tc Thermocouple) Kind() its90.Kind { return tc.ev.Kind() }

// Table returns the reference table of the thermocouple type.
func (tc Thermocouple) Table() *its90.Table { return tc.ev.Table() }

// Precision returns the storage precision of the evaluation strategy.
func (tc Thermocouple) Precision() its90.Precision { return tc.ev.Precision() }

// DomainMode returns the domain-check mode of the evaluation strategy.
func (tc Thermocouple) DomainMode() its90.DomainMode { return tc.ev.DomainMode() }

// ReferenceTemperature returns the reference-junction temperature.
func (tc Thermocouple) ReferenceTemperature() units.Celsius { return tc.referenceTemperature }

// ReferencePotential returns E(ref), the voltage of the reference junction against 0°C.
func (tc Thermocouple) ReferencePotential() units.Millivolts { return tc.referencePotential }

// String implements fmt.Stringer, e.g. "Type K (chromel / alumel), reference junction at 25.0°C".
func (tc Thermocouple) String() string {
	return fmt.Sprintf("%s, reference junction at %s", tc.ev.Table(), tc.referenceTemperature)
}
