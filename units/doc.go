// Package units provides the physical quantity types used by go-thermocouple.
//
// Every quantity is a named float64, so values are copied freely and never shared by reference.
// Arithmetic is only defined between values of the same unit; combining two different units
// requires an explicit conversion first.
//
// Supported quantities:
//
//   - Millivolts: thermoelectric potential.
//   - Celsius: the canonical temperature unit used by the ITS-90 reference functions.
//   - Kelvin, Fahrenheit, Rankine, Reaumur: alternative temperature units.
//
// All temperature conversions are affine maps to and from Celsius. A conversion between two
// non-Celsius units is always routed through Celsius:
//
//	k := units.Kelvin(300)
//	f := units.Convert[units.Fahrenheit](k) // Kelvin -> Celsius -> Fahrenheit
//
// Each unit renders with a fixed precision and suffix, e.g. "1.100mV", "25.0°C" or "298.15K".
// The rendering is a presentation format; use ParseMillivolts and ParseTemperature to read
// user input.
package units
