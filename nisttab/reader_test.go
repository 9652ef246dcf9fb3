package nisttab

import (
	"errors"
	"strings"
	"testing"

	"github.com/arloliu/go-thermocouple/units"
	"github.com/stretchr/testify/require"
)

const sampleTable = `ITS-90 Table for type K thermocouple
 °C       0      -1      -2      -3      -4      -5      -6      -7      -8      -9     -10
                        Thermoelectric Voltage in mV

  -10  -0.392  -0.431  -0.470  -0.508  -0.547  -0.586  -0.624  -0.663  -0.701  -0.739  -0.778
    0   0.000  -0.039  -0.079  -0.118  -0.157  -0.197  -0.236  -0.275  -0.314  -0.353  -0.392

 °C       0       1       2       3       4       5       6       7       8       9      10
                        Thermoelectric Voltage in mV

    0   0.000   0.039   0.079   0.119   0.158   0.198   0.238   0.277   0.317   0.357   0.397
   10   0.397   0.437
`

func TestRead(t *testing.T) {
	require := require.New(t)

	points, err := Read(strings.NewReader(sampleTable))
	require.NoError(err)
	require.Len(points, 32) // -20..11

	require.Equal(Point{Temperature: -20, Voltage: -0.778}, points[0])
	require.Equal(Point{Temperature: 11, Voltage: 0.437}, points[len(points)-1])

	byTemp := make(map[units.Celsius]units.Millivolts)
	for i, p := range points {
		if i > 0 {
			require.Less(float64(points[i-1].Temperature), float64(p.Temperature))
		}
		byTemp[p.Temperature] = p.Voltage
	}

	require.Equal(units.Millivolts(-0.039), byTemp[-1])
	require.Equal(units.Millivolts(-0.431), byTemp[-11])
	require.Equal(units.Millivolts(0.000), byTemp[0])
	require.Equal(units.Millivolts(0.039), byTemp[1])
	require.Equal(units.Millivolts(0.397), byTemp[10])
}

func TestRead_WithoutHeader(t *testing.T) {
	require := require.New(t)

	points, err := Read(strings.NewReader("-10 -0.392 -0.431\n10 0.397 0.437\n"))
	require.NoError(err)
	require.Equal([]Point{
		{Temperature: -11, Voltage: -0.431},
		{Temperature: -10, Voltage: -0.392},
		{Temperature: 10, Voltage: 0.397},
		{Temperature: 11, Voltage: 0.437},
	}, points)
}

func TestRead_Errors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		require := require.New(t)

		_, err := Read(strings.NewReader("ITS-90 Table\n °C 0 1 2\n"))
		require.ErrorIs(err, ErrEmptyTable)
	})

	t.Run("Malformed value", func(t *testing.T) {
		require := require.New(t)

		_, err := Read(strings.NewReader("0 0.000 abc\n"))
		require.ErrorIs(err, ErrMalformedRow)
		require.Contains(err.Error(), "line 1")
	})

	t.Run("Too many columns", func(t *testing.T) {
		require := require.New(t)

		_, err := Read(strings.NewReader("0 1 2 3 4 5 6 7 8 9 10 11 12\n"))
		require.ErrorIs(err, ErrMalformedRow)
	})

	t.Run("Conflict", func(t *testing.T) {
		require := require.New(t)

		_, err := Read(strings.NewReader("0 0.000 0.039\n1 0.040\n"))
		require.ErrorIs(err, ErrConflict)
	})
}

func TestReadFile(t *testing.T) {
	require := require.New(t)

	points, err := ReadFile("../its90/testdata/type_t.tab")
	require.NoError(err)
	require.Equal(units.Celsius(-270), points[0].Temperature)
	require.Equal(units.Millivolts(-6.258), points[0].Voltage)
	require.Equal(units.Celsius(400), points[len(points)-1].Temperature)
	require.Equal(units.Millivolts(20.872), points[len(points)-1].Voltage)
	require.Len(points, 671)

	_, err = ReadFile("testdata/does-not-exist.tab")
	require.Error(err)
}

func TestCheckForward(t *testing.T) {
	require := require.New(t)

	points := []Point{
		{Temperature: 0, Voltage: 0},
		{Temperature: 10, Voltage: 1},
		{Temperature: 20, Voltage: 2},
	}

	linear := func(t units.Celsius) (units.Millivolts, error) {
		return units.Millivolts(t / 10), nil
	}
	report := CheckForward(points, linear, 0.0005)
	require.True(report.OK())
	require.Equal(3, report.Checked)
	require.InDelta(0, report.MaxDeviation, 1e-12)

	skewed := func(t units.Celsius) (units.Millivolts, error) {
		if t == 20 {
			return 0, errors.New("boom")
		}
		return units.Millivolts(t/10) + 0.001, nil
	}
	report = CheckForward(points, skewed, 0.0005)
	require.False(report.OK())
	require.Len(report.Failures, 3)
	require.InDelta(0.001, report.MaxDeviation, 1e-12)
	require.EqualError(report.Failures[2].Err, "boom")
	require.Contains(report.String(), "3 failures")
}

func TestCheckRoundTrip(t *testing.T) {
	require := require.New(t)

	points := []Point{
		{Temperature: -10, Voltage: -1},
		{Temperature: 0, Voltage: 0},
		{Temperature: 10, Voltage: 1},
	}
	forward := func(t units.Celsius) (units.Millivolts, error) {
		return units.Millivolts(t / 10), nil
	}
	inverse := func(e units.Millivolts) (units.Celsius, error) {
		return units.Celsius(e*10) + 0.01, nil
	}
	nonNegative := func(t units.Celsius) bool { return t >= 0 }

	report := CheckRoundTrip(points, forward, inverse, nonNegative, 0.05)
	require.True(report.OK())
	require.Equal(2, report.Checked)
	require.InDelta(0.01, report.MaxDeviation, 1e-9)

	report = CheckRoundTrip(points, forward, inverse, nil, 0.005)
	require.False(report.OK())
	require.Equal(3, report.Checked)
	require.Len(report.Failures, 3)
}
