package thermocouple

import (
	"errors"
	"fmt"

	"github.com/arloliu/go-thermocouple/its90"
	"github.com/arloliu/go-thermocouple/logger"
)

// Config selects the evaluation strategy of the thermocouples it creates.
//
// A Config is immutable once built; create a new one to change the strategy.
type Config struct {
	// precision selects the storage type of coefficient sets.
	// Defaults to its90.Double.
	precision its90.Precision

	// mode selects how inputs outside the published domain are handled.
	// Defaults to its90.Strict.
	mode its90.DomainMode

	// enabled holds the thermocouple types that may be created.
	// Defaults to every supported type.
	enabled map[its90.Kind]struct{}

	// logger receives configuration-time events.
	logger logger.Logger
}

// NewConfig creates a configuration with the default strategy and applies the given options.
//
// Returns the configuration and the first error reported by an option.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		precision: its90.Double,
		mode:      its90.Strict,
		enabled:   make(map[its90.Kind]struct{}),
		logger:    logger.GetLogger(),
	}
	for _, kind := range its90.Kinds() {
		cfg.enabled[kind] = struct{}{}
	}

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", optionName(opt), err)
		}
	}

	if cfg.mode == its90.Extrapolate {
		cfg.logger.Warn("domain checks disabled, results outside the published ranges carry no accuracy guarantee",
			"precision", cfg.precision.String(),
		)
	}

	return cfg, nil
}

// Precision returns the storage precision.
func (cfg *Config) Precision() its90.Precision { return cfg.precision }

// DomainMode returns the domain-check mode.
func (cfg *Config) DomainMode() its90.DomainMode { return cfg.mode }

// Logger returns the configured logger.
func (cfg *Config) Logger() logger.Logger { return cfg.logger }

// Enabled reports whether thermocouples of the given type may be created.
func (cfg *Config) Enabled(kind its90.Kind) bool {
	_, ok := cfg.enabled[kind]
	return ok
}

// Types returns the enabled thermocouple types in alphabetical order.
func (cfg *Config) Types() []its90.Kind {
	kinds := make([]its90.Kind, 0, len(cfg.enabled))
	for _, kind := range its90.Kinds() {
		if cfg.Enabled(kind) {
			kinds = append(kinds, kind)
		}
	}

	return kinds
}

// String implements fmt.Stringer.
func (cfg *Config) String() string {
	return fmt.Sprintf("precision=%s domain=%s types=%v", cfg.precision, cfg.mode, cfg.Types())
}

// Option represents a functional option for configuring a Config.
type Option interface {
	apply(*Config) error
}

type optFunc struct {
	name      string
	applyFunc func(*Config) error
}

func (o *optFunc) apply(cfg *Config) error { return o.applyFunc(cfg) }

func optionName(opt Option) string {
	if o, ok := opt.(*optFunc); ok {
		return o.name
	}

	return "option"
}

func newOptFunc(name string, f func(*Config) error) *optFunc {
	return &optFunc{
		name:      name,
		applyFunc: f,
	}
}

// WithPrecision sets the storage precision of coefficient sets.
//
// It returns an Option that validates the precision and updates the configuration.
func WithPrecision(p its90.Precision) Option {
	return newOptFunc("WithPrecision", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}
		if !p.Valid() {
			return fmt.Errorf("%w: %s", its90.ErrInvalidPrecision, p)
		}
		cfg.precision = p

		return nil
	})
}

// WithDomainMode sets how inputs outside the published domain are handled.
//
// It returns an Option that validates the mode and updates the configuration.
func WithDomainMode(mode its90.DomainMode) Option {
	return newOptFunc("WithDomainMode", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}
		if !mode.Valid() {
			return fmt.Errorf("%w: %s", its90.ErrInvalidDomainMode, mode)
		}
		cfg.mode = mode

		return nil
	})
}

// WithExtrapolation disables domain checks. It is a shortcut for WithDomainMode(its90.Extrapolate).
func WithExtrapolation() Option {
	return WithDomainMode(its90.Extrapolate)
}

// WithTypes restricts the configuration to the given thermocouple types.
//
// It returns an Option that rejects unknown types and an empty list.
func WithTypes(kinds ...its90.Kind) Option {
	return newOptFunc("WithTypes", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}
		if len(kinds) == 0 {
			return ErrNoTypesEnabled
		}

		enabled := make(map[its90.Kind]struct{}, len(kinds))
		for _, kind := range kinds {
			if !kind.Valid() {
				return fmt.Errorf("%w: %s", its90.ErrUnknownKind, kind)
			}
			enabled[kind] = struct{}{}
		}
		cfg.enabled = enabled

		return nil
	})
}

// WithLogger sets the logger receiving configuration-time events.
func WithLogger(l logger.Logger) Option {
	return newOptFunc("WithLogger", func(cfg *Config) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if l == nil {
			return errors.New("logger is nil")
		}
		cfg.logger = l

		return nil
	})
}
