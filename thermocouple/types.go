package thermocouple

import "github.com/arloliu/go-thermocouple/its90"

var defaultConfig = func() *Config {
	cfg, err := NewConfig()
	if err != nil {
		panic(err)
	}

	return cfg
}()

func mustNew(kind its90.Kind) Thermocouple {
	tc, err := defaultConfig.New(kind)
	if err != nil {
		panic(err)
	}

	return tc
}

// B returns a type B thermocouple (platinum-30% rhodium / platinum-6% rhodium) with the default
// configuration and the reference junction at 25°C.
func B() Thermocouple { return mustNew(its90.B) }

// E returns a type E thermocouple (chromel / constantan) with the default configuration and the
// reference junction at 25°C.
func E() Thermocouple { return mustNew(its90.E) }

// J returns a type J thermocouple (iron / constantan) with the default configuration and the
// reference junction at 25°C.
func J() Thermocouple { return mustNew(its90.J) }

// K returns a type K thermocouple (chromel / alumel) with the default configuration and the
// reference junction at 25°C.
func K() Thermocouple { return mustNew(its90.K) }

// N returns a type N thermocouple (nicrosil / nisil) with the default configuration and the
// reference junction at 25°C.
func N() Thermocouple { return mustNew(its90.N) }

// R returns a type R thermocouple (platinum-13% rhodium / platinum) with the default
// configuration and the reference junction at 25°C.
func R() Thermocouple { return mustNew(its90.R) }

// S returns a type S thermocouple (platinum-10% rhodium / platinum) with the default
// configuration and the reference junction at 25°C.
func S() Thermocouple { return mustNew(its90.S) }

// T returns a type T thermocouple (copper / constantan) with the default configuration and the
// reference junction at 25°C.
func T() Thermocouple { return mustNew(its90.T) }
