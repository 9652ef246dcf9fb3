package units

import "strconv"

// Millivolts is a unit of electric potential, 1/1000 of a volt.
type Millivolts float64

// Celsius is a temperature in degrees Celsius.
type Celsius float64

// Kelvin is a thermodynamic temperature in kelvin.
type Kelvin float64

// Fahrenheit is a temperature in degrees Fahrenheit.
type Fahrenheit float64

// Rankine is a thermodynamic temperature in degrees Rankine.
type Rankine float64

// Reaumur is a temperature in degrees Réaumur.
type Reaumur float64

// Add returns v + o.
func (v Millivolts) Add(o Millivolts) Millivolts { return v + o }

// Sub returns v - o.
func (v Millivolts) Sub(o Millivolts) Millivolts { return v - o }

// String implements fmt.Stringer, e.g. "1.100mV".
func (v Millivolts) String() string { return format(float64(v), 3, "mV") }

// Add returns t + o.
func (t Celsius) Add(o Celsius) Celsius { return t + o }

// Sub returns t - o.
func (t Celsius) Sub(o Celsius) Celsius { return t - o }

// String implements fmt.Stringer, e.g. "25.0°C".
func (t Celsius) String() string { return format(float64(t), 1, "°C") }

// Add returns t + o.
func (t Kelvin) Add(o Kelvin) Kelvin { return t + o }

// Sub returns t - o.
func (t Kelvin) Sub(o Kelvin) Kelvin { return t - o }

// String implements fmt.Stringer, e.g. "298.15K".
func (t Kelvin) String() string { return format(float64(t), 2, "K") }

// Add returns t + o.
func (t Fahrenheit) Add(o Fahrenheit) Fahrenheit { return t + o }

// Sub returns t - o.
func (t Fahrenheit) Sub(o Fahrenheit) Fahrenheit { return t - o }

// String implements fmt.Stringer, e.g. "77.0°F".
func (t Fahrenheit) String() string { return format(float64(t), 1, "°F") }

// Add returns t + o.
func (t Rankine) Add(o Rankine) Rankine { return t + o }

// Sub returns t - o.
func (t Rankine) Sub(o Rankine) Rankine { return t - o }

// String implements fmt.Stringer, e.g. "536.7°Ra".
func (t Rankine) String() string { return format(float64(t), 1, "°Ra") }

// Add returns t + o.
func (t Reaumur) Add(o Reaumur) Reaumur { return t + o }

// Sub returns t - o.
func (t Reaumur) Sub(o Reaumur) Reaumur { return t - o }

// String implements fmt.Stringer, e.g. "20.0°Ré".
func (t Reaumur) String() string { return format(float64(t), 1, "°Ré") }

func format(v float64, prec int, suffix string) string {
	buf := make([]byte, 0, 16)
	buf = strconv.AppendFloat(buf, v, 'f', prec, 64)
	buf = append(buf, suffix...)

	return string(buf)
}
