package its90

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	require := require.New(t)

	require.Equal([]Kind{B, E, J, K, N, R, S, T}, Kinds())

	kinds := Kinds()
	kinds[0] = K
	require.Equal(B, Kinds()[0])

	require.Equal("K", K.String())
	require.True(K.Valid())
	require.False(Kind('A').Valid())
	require.Equal("Kind(65)", Kind('A').String())
}

func TestParseKind(t *testing.T) {
	require := require.New(t)

	valid := map[string]Kind{
		"K":      K,
		"k":      K,
		" j ":    J,
		"type T": T,
		"Type-N": N,
		"S-type": S,
		"r_type": R,
		"TYPE E": E,
		"typeB":  B,
	}
	for input, expected := range valid {
		kind, err := ParseKind(input)
		require.NoError(err, input)
		require.Equal(expected, kind, input)
	}

	for _, input := range []string{"", "A", "KK", "type", "type Z", "thermocouple K"} {
		_, err := ParseKind(input)
		require.ErrorIs(err, ErrUnknownKind, input)
	}
}

func TestPrecision(t *testing.T) {
	require := require.New(t)

	require.Equal("double", Double.String())
	require.Equal("single", Single.String())
	require.Equal("Precision(9)", Precision(9).String())
	require.False(Precision(9).Valid())

	for input, expected := range map[string]Precision{
		"double": Double, "F64": Double, "float64": Double,
		"single": Single, "f32": Single, " Float32 ": Single,
	} {
		p, err := ParsePrecision(input)
		require.NoError(err)
		require.Equal(expected, p)
	}

	_, err := ParsePrecision("half")
	require.ErrorIs(err, ErrInvalidPrecision)

	volt, temp := Tolerance(Double)
	require.InDelta(0.0005, volt, 0)
	require.InDelta(0.05, temp, 0)

	volt, temp = Tolerance(Single)
	require.InDelta(0.1, volt, 0)
	require.InDelta(0.25, temp, 0)
}

func TestDomainMode(t *testing.T) {
	require := require.New(t)

	require.Equal("strict", Strict.String())
	require.Equal("extrapolate", Extrapolate.String())
	require.Equal("DomainMode(3)", DomainMode(3).String())
	require.True(Extrapolate.Valid())

	m, err := ParseDomainMode(" Extrapolate")
	require.NoError(err)
	require.Equal(Extrapolate, m)

	m, err = ParseDomainMode("STRICT")
	require.NoError(err)
	require.Equal(Strict, m)

	_, err = ParseDomainMode("clamp")
	require.ErrorIs(err, ErrInvalidDomainMode)
}
