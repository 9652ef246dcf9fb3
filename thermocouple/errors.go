package thermocouple

import "errors"

var (
	// ErrKindDisabled indicates that a thermocouple type is excluded by the configuration.
	ErrKindDisabled = errors.New("thermocouple type is disabled by configuration")

	// ErrConfigNil indicates that an option was applied to a nil configuration.
	ErrConfigNil = errors.New("config is nil")

	// ErrNoTypesEnabled indicates that a configuration enables no thermocouple type.
	ErrNoTypesEnabled = errors.New("no thermocouple types enabled")
)
