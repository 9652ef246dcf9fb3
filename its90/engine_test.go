package its90

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/arloliu/go-thermocouple/internal/poly"
	"github.com/arloliu/go-thermocouple/units"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-6

func TestCompile(t *testing.T) {
	t.Run("All kinds", func(t *testing.T) {
		require := require.New(t)

		for _, kind := range Kinds() {
			for _, precision := range []Precision{Double, Single} {
				for _, mode := range []DomainMode{Strict, Extrapolate} {
					ev, err := Compile(kind, precision, mode)
					require.NoError(err)
					require.Equal(kind, ev.Kind())
					require.Equal(precision, ev.Precision())
					require.Equal(mode, ev.DomainMode())
					require.Equal(kind, ev.Table().Kind())
				}
			}
		}
	})

	t.Run("Invalid arguments", func(t *testing.T) {
		require := require.New(t)

		_, err := Compile(Kind('X'), Double, Strict)
		require.ErrorIs(err, ErrUnknownKind)

		_, err = Compile(K, Precision(7), Strict)
		require.ErrorIs(err, ErrInvalidPrecision)

		_, err = Compile(K, Double, DomainMode(7))
		require.ErrorIs(err, ErrInvalidDomainMode)
	})

	t.Run("Default", func(t *testing.T) {
		require := require.New(t)

		ev, err := Default(J)
		require.NoError(err)
		require.Equal(Double, ev.Precision())
		require.Equal(Strict, ev.DomainMode())

		_, err = Default(Kind(0))
		require.ErrorIs(err, ErrUnknownKind)

		_, err = Forward(Kind(0), 0)
		require.ErrorIs(err, ErrUnknownKind)

		_, err = Inverse(Kind(0), 0)
		require.ErrorIs(err, ErrUnknownKind)
	})
}

func TestStrictDomain(t *testing.T) {
	for _, kind := range Kinds() {
		for _, precision := range []Precision{Double, Single} {
			t.Run(kind.String()+"/"+precision.String(), func(t *testing.T) {
				require := require.New(t)

				ev, err := Compile(kind, precision, Strict)
				require.NoError(err)
				tbl := ev.Table()

				fd := tbl.ForwardDomain()
				_, err = ev.Forward(units.Celsius(fd.Low - epsilon))
				require.ErrorIs(err, ErrOutOfRange)
				_, err = ev.Forward(units.Celsius(fd.High + epsilon))
				require.ErrorIs(err, ErrOutOfRange)

				low, err := ev.Forward(units.Celsius(fd.Low))
				require.NoError(err)
				high, err := ev.Forward(units.Celsius(fd.High))
				require.NoError(err)
				require.Less(float64(low), float64(high))

				id := tbl.InverseDomain()
				slack := tbl.slack(precision)
				_, err = ev.Inverse(units.Millivolts(id.Low - slack - epsilon))
				require.ErrorIs(err, ErrOutOfRange)
				_, err = ev.Inverse(units.Millivolts(id.High + slack + epsilon))
				require.ErrorIs(err, ErrOutOfRange)

				_, err = ev.Inverse(units.Millivolts(id.Low))
				require.NoError(err)
				_, err = ev.Inverse(units.Millivolts(id.High))
				require.NoError(err)

				// voltages at the edges of the certified range are accepted by the inverse
				certified := tbl.InverseTemperatureRange()
				for _, temp := range []float64{certified.Low, certified.High - 1} {
					v, err := ev.Forward(units.Celsius(temp))
					require.NoError(err)
					_, err = ev.Inverse(v)
					require.NoError(err, "voltage %v at %g°C", v, temp)
				}
			})
		}
	}
}

func TestStrictDomain_NotFinite(t *testing.T) {
	require := require.New(t)

	ev, err := Default(K)
	require.NoError(err)

	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := ev.Forward(units.Celsius(x))
		require.ErrorIs(err, ErrNotFinite)
		require.NotErrorIs(err, ErrOutOfRange)

		_, err = ev.Inverse(units.Millivolts(x))
		require.ErrorIs(err, ErrNotFinite)
	}
}

func TestDomainError(t *testing.T) {
	require := require.New(t)

	_, err := Forward(K, 1400)
	require.Error(err)

	var domainErr *DomainError
	require.True(errors.As(err, &domainErr))
	require.Equal(K, domainErr.Kind)
	require.Equal("E(T)", domainErr.Function)
	require.InDelta(1400, domainErr.Value, 0)
	require.InDelta(-270, domainErr.Low, 0)
	require.InDelta(1372, domainErr.High, 0)
	require.Equal("°C", domainErr.Unit)
	require.Equal("type K E(T): input out of range: 1400°C not in [-270, 1372]°C", err.Error())

	_, err = Inverse(T, -10)
	require.True(errors.As(err, &domainErr))
	require.Equal("T(E)", domainErr.Function)
	require.Equal("mV", domainErr.Unit)
	require.InDelta(-5.6035, domainErr.Low, 1e-9)

	// T(E) bounds are the published voltage domain widened by the slack
	tbl, err := Lookup(T)
	require.NoError(err)
	slack := tbl.slack(Double)
	require.InDelta(tbl.InverseDomain().Low-slack, domainErr.Low, 1e-12)
	require.InDelta(tbl.InverseDomain().High+slack, domainErr.High, 1e-12)
	require.InDelta(-5.603, tbl.InverseDomain().Low, 0)
}

func TestExtrapolate(t *testing.T) {
	require := require.New(t)

	ev, err := Compile(K, Double, Extrapolate)
	require.NoError(err)

	edge, err := ev.Forward(1372)
	require.NoError(err)
	beyond, err := ev.Forward(1400)
	require.NoError(err)
	require.Greater(float64(beyond), float64(edge))

	below, err := ev.Forward(-300)
	require.NoError(err)
	strict, err := Forward(K, -270)
	require.NoError(err)
	require.NotEqual(strict, below)

	temp, err := ev.Inverse(60)
	require.NoError(err)
	require.False(math.IsNaN(float64(temp)))

	// NaN propagates instead of being rejected
	v, err := ev.Forward(units.Celsius(math.NaN()))
	require.NoError(err)
	require.True(math.IsNaN(float64(v)))

	// values inside the domain match the strict evaluator
	strictEv, err := Default(K)
	require.NoError(err)
	for _, x := range []units.Celsius{-200, 0, 250, 1000} {
		a, err := ev.Forward(x)
		require.NoError(err)
		b, err := strictEv.Forward(x)
		require.NoError(err)
		require.Equal(b, a)
	}
}

func TestBoundaryOwnership(t *testing.T) {
	t.Run("Type K at 0°C uses the negative segment", func(t *testing.T) {
		require := require.New(t)

		v, err := Forward(K, 0)
		require.NoError(err)
		require.Equal(units.Millivolts(0), v)
	})

	t.Run("Type B at 0°C", func(t *testing.T) {
		require := require.New(t)

		v, err := Forward(B, 0)
		require.NoError(err)
		require.Equal(units.Millivolts(0), v)

		_, err = Forward(B, -0.5)
		require.ErrorIs(err, ErrOutOfRange)
	})

	t.Run("Forward breakpoints belong to the lower segment", func(t *testing.T) {
		require := require.New(t)

		for _, kind := range Kinds() {
			tbl, err := Lookup(kind)
			require.NoError(err)

			for i, bp := range tbl.ForwardBreakpoints() {
				v, err := Forward(kind, units.Celsius(bp))
				require.NoError(err)
				expected := poly.Eval(tbl.ForwardCoefficients(i), bp)
				require.Equal(expected, float64(v), "type %s at %g°C", kind, bp)
			}
		}
	})

	t.Run("Inverse breakpoints belong to the upper segment", func(t *testing.T) {
		require := require.New(t)

		for _, kind := range Kinds() {
			tbl, err := Lookup(kind)
			require.NoError(err)

			for i, bp := range tbl.InverseBreakpoints() {
				temp, err := Inverse(kind, units.Millivolts(bp))
				require.NoError(err)
				expected := poly.Eval(tbl.InverseCoefficients(i+1), bp)
				require.Equal(expected, float64(temp), "type %s at %gmV", kind, bp)
			}
		}
	})
}

func TestSinglePrecision(t *testing.T) {
	require := require.New(t)

	single, err := Compile(K, Single, Strict)
	require.NoError(err)
	double, err := Default(K)
	require.NoError(err)

	voltTol, tempTol := Tolerance(Single)
	for temp := units.Celsius(-200); temp <= 1300; temp += 50 {
		s, err := single.Forward(temp)
		require.NoError(err)
		d, err := double.Forward(temp)
		require.NoError(err)
		require.InDelta(float64(d), float64(s), voltTol)

		// results are float32 values widened to float64
		require.Equal(float64(float32(s)), float64(s))

		back, err := single.Inverse(s)
		require.NoError(err)
		require.InDelta(float64(temp), float64(back), tempTol)
	}
}

func TestTableAccessors(t *testing.T) {
	require := require.New(t)

	tbl, err := Lookup(R)
	require.NoError(err)
	require.Equal(R, tbl.Kind())
	require.Equal("Type R", tbl.Name())
	require.Equal("Type R (platinum-13% rhodium / platinum)", tbl.String())
	require.Equal([]float64{1064.18, 1664.5}, tbl.ForwardBreakpoints())
	require.Equal([]float64{1.923, 13.228, 19.739}, tbl.InverseBreakpoints())
	require.Equal(Interval{Low: -50, High: 1768.1}, tbl.ForwardDomain())

	coeffs := tbl.ForwardCoefficients(0)
	require.NotEmpty(coeffs)
	coeffs[1] = 42
	require.NotEqual(42.0, tbl.ForwardCoefficients(0)[1])

	require.Nil(tbl.ForwardCoefficients(-1))
	require.Nil(tbl.ForwardCoefficients(3))
	require.Nil(tbl.InverseCoefficients(4))
	require.Len(tbl.InverseCoefficients(3), 5)

	_, err = Lookup(Kind('Z'))
	require.ErrorIs(err, ErrUnknownKind)
}

func TestInterval(t *testing.T) {
	require := require.New(t)

	closed := Interval{Low: -270, High: 1372}
	require.True(closed.Contains(-270))
	require.True(closed.Contains(1372))
	require.False(closed.Contains(1372.0001))
	require.False(closed.Contains(math.NaN()))
	require.Equal("[-270, 1372]", closed.String())

	open := Interval{Low: 250, High: 1820, OpenHigh: true}
	require.True(open.Contains(250))
	require.False(open.Contains(1820))
	require.Equal("[250, 1820)", open.String())
}

func TestConcurrentEvaluation(t *testing.T) {
	require := require.New(t)

	ev, err := Compile(N, Single, Strict)
	require.NoError(err)
	expected, err := ev.Forward(500)
	require.NoError(err)

	var wg sync.WaitGroup
	results := make([]units.Millivolts, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				results[i], _ = ev.Forward(500)
			}
		}(i)
	}
	wg.Wait()

	for _, v := range results {
		require.Equal(expected, v)
	}
}
