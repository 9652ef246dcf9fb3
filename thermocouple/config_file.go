package thermocouple

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arloliu/go-thermocouple/its90"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the values of a configuration file.
const (
	EnvPrecision = "THERMOCOUPLE_PRECISION"
	EnvDomain    = "THERMOCOUPLE_DOMAIN"
	EnvTypes     = "THERMOCOUPLE_TYPES"
)

// FileConfig is the YAML representation of a Config.
//
//	precision: double        # double | single
//	domain: strict           # strict | extrapolate
//	types: [K, J]            # default: all
type FileConfig struct {
	Precision string   `yaml:"precision"`
	Domain    string   `yaml:"domain"`
	Types     []string `yaml:"types"`
}

// LoadConfigFile reads a YAML configuration file, applies the environment overrides and builds
// the Config. An empty path skips the file, so only the environment and the defaults apply.
//
// Additional options are applied after the file and the environment.
func LoadConfigFile(path string, opts ...Option) (*Config, error) {
	var fc FileConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := decodeFileConfig(bytes.NewReader(data), &fc); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	fc.applyEnv()

	fileOpts, err := fc.Options()
	if err != nil {
		return nil, err
	}

	return NewConfig(append(fileOpts, opts...)...)
}

func decodeFileConfig(r io.Reader, fc *FileConfig) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func (fc *FileConfig) applyEnv() {
	fc.Precision = envOrDefault(EnvPrecision, fc.Precision)
	fc.Domain = envOrDefault(EnvDomain, fc.Domain)
	if v := os.Getenv(EnvTypes); v != "" {
		fc.Types = strings.Split(v, ",")
	}
}

// Options converts the file values into options. Empty values keep the defaults.
func (fc *FileConfig) Options() ([]Option, error) {
	var opts []Option

	if fc.Precision != "" {
		p, err := its90.ParsePrecision(fc.Precision)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithPrecision(p))
	}

	if fc.Domain != "" {
		mode, err := its90.ParseDomainMode(fc.Domain)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithDomainMode(mode))
	}

	if len(fc.Types) > 0 {
		kinds := make([]its90.Kind, 0, len(fc.Types))
		for _, s := range fc.Types {
			if strings.TrimSpace(s) == "" {
				continue
			}
			kind, err := its90.ParseKind(s)
			if err != nil {
				return nil, err
			}
			kinds = append(kinds, kind)
		}
		opts = append(opts, WithTypes(kinds...))
	}

	return opts, nil
}

func envOrDefault(key string, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return def
}
