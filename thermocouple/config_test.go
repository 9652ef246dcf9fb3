package thermocouple

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arloliu/go-thermocouple/its90"
	"github.com/arloliu/go-thermocouple/logger"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	require := require.New(t)

	cfg, err := NewConfig()
	require.NoError(err)
	require.Equal(its90.Double, cfg.Precision())
	require.Equal(its90.Strict, cfg.DomainMode())
	require.Equal(its90.Kinds(), cfg.Types())
	require.Same(logger.GetLogger(), cfg.Logger())
	require.Equal("precision=double domain=strict types=[B E J K N R S T]", cfg.String())
}

func TestNewConfig_Options(t *testing.T) {
	t.Run("Valid options", func(t *testing.T) {
		require := require.New(t)

		m := logger.NewMockLogger()
		m.On("Warn", mock.Anything, mock.Anything).Return().Once()

		cfg, err := NewConfig(
			WithPrecision(its90.Single),
			WithExtrapolation(),
			WithTypes(its90.K, its90.T, its90.K),
			WithLogger(m),
		)
		require.NoError(err)
		require.Equal(its90.Single, cfg.Precision())
		require.Equal(its90.Extrapolate, cfg.DomainMode())
		require.Equal([]its90.Kind{its90.K, its90.T}, cfg.Types())
		require.True(cfg.Enabled(its90.T))
		require.False(cfg.Enabled(its90.J))
		m.AssertExpectations(t)
	})

	t.Run("Invalid options", func(t *testing.T) {
		require := require.New(t)

		_, err := NewConfig(WithPrecision(its90.Precision(3)))
		require.ErrorIs(err, its90.ErrInvalidPrecision)
		require.Contains(err.Error(), "WithPrecision")

		_, err = NewConfig(WithDomainMode(its90.DomainMode(3)))
		require.ErrorIs(err, its90.ErrInvalidDomainMode)

		_, err = NewConfig(WithTypes())
		require.ErrorIs(err, ErrNoTypesEnabled)

		_, err = NewConfig(WithTypes(its90.K, its90.Kind('Q')))
		require.ErrorIs(err, its90.ErrUnknownKind)

		_, err = NewConfig(WithLogger(nil))
		require.Error(err)
	})

	t.Run("Nil config", func(t *testing.T) {
		require := require.New(t)

		for _, opt := range []Option{
			WithPrecision(its90.Double),
			WithDomainMode(its90.Strict),
			WithTypes(its90.K),
			WithLogger(logger.NewMockLogger()),
		} {
			require.ErrorIs(opt.apply(nil), ErrConfigNil)
		}
	})
}

func TestConfig_LogsCompilation(t *testing.T) {
	require := require.New(t)

	for _, kind := range its90.Kinds() {
		evaluators.Delete(strategy{kind: kind, precision: its90.Single, mode: its90.Extrapolate})
	}

	m := logger.NewMockLogger()
	m.On("Debug", "compiled evaluator", mock.Anything).Return().Times(len(its90.Kinds()))
	m.On("Warn", mock.Anything, mock.Anything).Return().Once()

	cfg, err := NewConfig(WithDomainMode(its90.Extrapolate), WithPrecision(its90.Single), WithLogger(m))
	require.NoError(err)

	for _, kind := range its90.Kinds() {
		tc, err := cfg.New(kind)
		require.NoError(err)
		require.Equal(its90.Extrapolate, tc.DomainMode())
	}

	// cached evaluators are not compiled again
	for _, kind := range its90.Kinds() {
		_, err := cfg.New(kind)
		require.NoError(err)
	}

	m.AssertExpectations(t)
	m.AssertNumberOfCalls(t, "Debug", len(its90.Kinds()))
	m.AssertCalled(t, "Debug", "compiled evaluator",
		[]any{"kind", "K", "precision", "single", "domain", "extrapolate"})
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "thermocouple.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func clearConfigEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvPrecision, "")
	t.Setenv(EnvDomain, "")
	t.Setenv(EnvTypes, "")
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("File values", func(t *testing.T) {
		require := require.New(t)

		clearConfigEnv(t)
		path := writeConfigFile(t, "precision: single\ndomain: strict\ntypes: [K, j, type N]\n")

		cfg, err := LoadConfigFile(path)
		require.NoError(err)
		require.Equal(its90.Single, cfg.Precision())
		require.Equal(its90.Strict, cfg.DomainMode())
		require.Equal([]its90.Kind{its90.J, its90.K, its90.N}, cfg.Types())
	})

	t.Run("Environment overrides", func(t *testing.T) {
		require := require.New(t)

		clearConfigEnv(t)
		t.Setenv(EnvPrecision, "double")
		t.Setenv(EnvDomain, "extrapolate")
		t.Setenv(EnvTypes, "T, E")
		path := writeConfigFile(t, "precision: single\ntypes: [K]\n")

		m := logger.NewMockLogger()
		m.On("Warn", mock.Anything, mock.Anything).Return()

		cfg, err := LoadConfigFile(path, WithLogger(m))
		require.NoError(err)
		require.Equal(its90.Double, cfg.Precision())
		require.Equal(its90.Extrapolate, cfg.DomainMode())
		require.Equal([]its90.Kind{its90.E, its90.T}, cfg.Types())
		require.Same(m, cfg.Logger())
	})

	t.Run("Empty path and empty file", func(t *testing.T) {
		require := require.New(t)

		clearConfigEnv(t)

		cfg, err := LoadConfigFile("")
		require.NoError(err)
		require.Equal(its90.Kinds(), cfg.Types())

		cfg, err = LoadConfigFile(writeConfigFile(t, ""))
		require.NoError(err)
		require.Equal(its90.Double, cfg.Precision())
	})

	t.Run("Invalid files", func(t *testing.T) {
		require := require.New(t)

		clearConfigEnv(t)

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(err, os.ErrNotExist)

		_, err = LoadConfigFile(writeConfigFile(t, "precision: half\n"))
		require.ErrorIs(err, its90.ErrInvalidPrecision)

		_, err = LoadConfigFile(writeConfigFile(t, "domain: clamp\n"))
		require.ErrorIs(err, its90.ErrInvalidDomainMode)

		_, err = LoadConfigFile(writeConfigFile(t, "types: [K, X]\n"))
		require.ErrorIs(err, its90.ErrUnknownKind)

		_, err = LoadConfigFile(writeConfigFile(t, "precison: single\n"))
		require.Error(err)

		_, err = LoadConfigFile(writeConfigFile(t, "types: {K: true}\n"))
		require.Error(err)
	})
}
