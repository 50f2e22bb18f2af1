package neuro

import "fmt"

// ConfigError reports invalid construction-time parameters. It is
// always raised at construction, never during stepping.
type ConfigError struct {
	Component string
	Message   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Component, e.Message)
}

func Configf(component, format string, args ...any) *ConfigError {
	return &ConfigError{Component: component, Message: fmt.Sprintf(format, args...)}
}

// NumericalError reports a non-finite integration result. The run must
// halt: state is no longer trustworthy and stepping the same group
// again would compound the damage.
type NumericalError struct {
	Field string
	Unit  int
	Time  float64
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("non-finite %s for unit %d (t=%.4f)", e.Field, e.Unit, e.Time)
}
