// Package its90 implements the NIST ITS-90 thermocouple reference functions for the eight
// standard letter-designated thermocouple types (B, E, J, K, N, R, S and T).
//
// Each type is described by a static Table holding two piecewise power series:
//
//   - the forward function E(T), mapping a hot-junction temperature in °C to the thermoelectric
//     voltage in mV against a 0°C reference junction;
//   - the inverse function T(E), an independently published approximation mapping a voltage back
//     to a temperature. It is not an exact inverse of E(T); a round trip T(E(t)) is only within
//     the published tolerance of t.
//
// Type K adds a Gaussian correction term a0·exp(a1·(t−a2)²) to its positive-temperature segment.
// All other segments are plain power series evaluated with Horner's method.
//
// Evaluation strategy:
//
// An Evaluator is compiled once per (Kind, Precision, DomainMode). Compilation materialises the
// coefficient sets in the chosen storage precision and selects the domain policy, so evaluation
// itself does not branch on configuration.
//
//   - Precision: Double (float64, default) or Single (coefficients and arithmetic in float32).
//   - DomainMode: Strict (default) rejects inputs outside the published range with a *DomainError;
//     Extrapolate disables the check and evaluates the nearest segment without any accuracy
//     guarantee.
//
// Usage Example:
//
//	// default strategy: double precision, strict domain
//	mv, err := its90.Forward(its90.K, units.Celsius(100))
//	if err != nil {
//	    // handle domain violation
//	}
//	fmt.Println(mv) // 4.096mV
//
//	// explicit strategy
//	ev, _ := its90.Compile(its90.K, its90.Single, its90.Extrapolate)
//	t, _ := ev.Inverse(units.Millivolts(60))
//
// All tables and compiled evaluators are immutable and safe for concurrent use.
package its90
