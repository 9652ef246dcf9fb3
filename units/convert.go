package units

const (
	kelvinOffset  = 273.15
	rankineOffset = 491.67
	fahrenheitGap = 32.0
	degreeRatio   = 1.8
	reaumurRatio  = 0.8
)

// Temperature is implemented by every temperature unit. It is the argument type of APIs that
// accept a temperature in any unit.
type Temperature interface {
	// ToCelsius converts the temperature to the canonical Celsius unit.
	ToCelsius() Celsius
	String() string
}

// Unit is the type constraint over all temperature units, used to select the unit a generic
// function returns.
type Unit interface {
	Celsius | Kelvin | Fahrenheit | Rankine | Reaumur
	Temperature
}

var (
	_ Temperature = Celsius(0)
	_ Temperature = Kelvin(0)
	_ Temperature = Fahrenheit(0)
	_ Temperature = Rankine(0)
	_ Temperature = Reaumur(0)
)

// ToCelsius returns t unchanged.
func (t Celsius) ToCelsius() Celsius { return t }

// ToKelvin converts t to Kelvin.
func (t Celsius) ToKelvin() Kelvin { return Kelvin(float64(t) + kelvinOffset) }

// ToFahrenheit converts t to Fahrenheit.
func (t Celsius) ToFahrenheit() Fahrenheit {
	return Fahrenheit(float64(t)*degreeRatio + fahrenheitGap)
}

// ToRankine converts t to Rankine.
func (t Celsius) ToRankine() Rankine { return Rankine(float64(t)*degreeRatio + rankineOffset) }

// ToReaumur converts t to Réaumur.
func (t Celsius) ToReaumur() Reaumur { return Reaumur(float64(t) * reaumurRatio) }

// ToCelsius converts t to Celsius.
func (t Kelvin) ToCelsius() Celsius { return Celsius(float64(t) - kelvinOffset) }

// ToCelsius converts t to Celsius.
func (t Fahrenheit) ToCelsius() Celsius {
	return Celsius((float64(t) - fahrenheitGap) / degreeRatio)
}

// ToCelsius converts t to Celsius.
func (t Rankine) ToCelsius() Celsius { return Celsius((float64(t) - rankineOffset) / degreeRatio) }

// ToCelsius converts t to Celsius.
func (t Reaumur) ToCelsius() Celsius { return Celsius(float64(t) * 1.25) }

// FromCelsius converts a Celsius temperature into the unit U.
func FromCelsius[U Unit](c Celsius) U {
	var zero U
	switch any(zero).(type) {
	case Kelvin:
		return U(c.ToKelvin())
	case Fahrenheit:
		return U(c.ToFahrenheit())
	case Rankine:
		return U(c.ToRankine())
	case Reaumur:
		return U(c.ToReaumur())
	default:
		return U(c)
	}
}

// Convert converts a temperature in any unit into the unit U, routing through Celsius.
func Convert[U Unit](t Temperature) U {
	return FromCelsius[U](t.ToCelsius())
}
