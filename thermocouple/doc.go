// Package thermocouple provides reference-junction compensated sensing for the eight standard
// letter-designated thermocouple types.
//
// A Thermocouple binds one type's ITS-90 reference functions to a reference-junction temperature
// (25°C unless configured otherwise). It applies the law of intermediate temperatures:
//
//	SenseTemperature(v) = T(v + E(ref))
//	SenseVoltage(t)     = E(t) − E(ref)
//
// where E and T are the forward and inverse reference functions of package its90.
//
// Configuration:
//
// The evaluation strategy is chosen once, when a Thermocouple is created, from a Config:
//
//   - precision: double (default) or single
//   - domain mode: strict (default) or extrapolate
//   - enabled types: all eight by default
//
// A Config is built with functional options or loaded from a YAML file with environment
// overrides (see LoadConfigFile). Compiled evaluators are cached per strategy and shared between
// thermocouples.
//
// Usage Example:
//
//	tc := thermocouple.K() // reference junction at 25°C
//	t, err := tc.SenseTemperature(units.Millivolts(1.1))
//	if err != nil {
//	    // the compensated voltage is outside the published domain
//	}
//	fmt.Println(t) // 51.9°C
//
//	// reference junction in an ice bath, result in Fahrenheit
//	tc, _ = tc.WithReferenceTemperature(units.Celsius(0))
//	f, _ := thermocouple.SenseTemperatureAs[units.Fahrenheit](tc, units.Millivolts(4.096))
//
// Thermocouple values are immutable and safe for concurrent use.
package thermocouple
