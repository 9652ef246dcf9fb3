package main

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-thermocouple/its90"
	"github.com/arloliu/go-thermocouple/units"
	"github.com/spf13/pflag"
)

// kindValue is a pflag.Value holding a thermocouple type.
type kindValue its90.Kind

var _ pflag.Value = (*kindValue)(nil)

func (k *kindValue) String() string { return its90.Kind(*k).String() }

func (k *kindValue) Set(s string) error {
	kind, err := its90.ParseKind(s)
	if err != nil {
		return err
	}
	*k = kindValue(kind)

	return nil
}

func (k *kindValue) Type() string { return "type" }

func (k *kindValue) Kind() its90.Kind { return its90.Kind(*k) }

func addKindFlag(flags *pflag.FlagSet, k *kindValue) {
	*k = kindValue(its90.K)
	flags.VarP(k, "type", "t", "Thermocouple type: B, E, J, K, N, R, S or T")
}

// unitValue is a pflag.Value holding an output temperature unit.
type unitValue string

var _ pflag.Value = (*unitValue)(nil)

var unitNames = map[string]string{
	"c": "C", "celsius": "C",
	"k": "K", "kelvin": "K",
	"f": "F", "fahrenheit": "F",
	"r": "R", "ra": "R", "rankine": "R",
	"re": "Re", "ré": "Re", "reaumur": "Re", "réaumur": "Re",
}

func (u *unitValue) String() string { return string(*u) }

func (u *unitValue) Set(s string) error {
	name, ok := unitNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return fmt.Errorf("unknown temperature unit %q, should be one of C, K, F, R, Re", s)
	}
	*u = unitValue(name)

	return nil
}

func (u *unitValue) Type() string { return "unit" }

// convert expresses c in the selected unit.
func (u *unitValue) convert(c units.Celsius) units.Temperature {
	switch *u {
	case "K":
		return c.ToKelvin()
	case "F":
		return c.ToFahrenheit()
	case "R":
		return c.ToRankine()
	case "Re":
		return c.ToReaumur()
	default:
		return c
	}
}

func parseTemperature(s string) (units.Temperature, error) {
	t, err := units.ParseTemperature(s)
	if err != nil {
		return nil, fmt.Errorf("temperature %q: %w", s, err)
	}

	return t, nil
}
