package plot

import (
	"errors"
	"fmt"
)

// ErrConfig marks an invalid view or panel specification. It is never
// recovered: it points at a programming or data-contract mistake.
var ErrConfig = errors.New("invalid plot configuration")

// ErrMissingColumn is returned by render functions when the data context has
// no column with the requested name. It is a configuration error.
var ErrMissingColumn = fmt.Errorf("%w: missing data column", ErrConfig)

// ConfigError locates a configuration problem in the figure.
type ConfigError struct {
	View  string
	Panel int // -1 when the problem is not tied to a panel
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Panel < 0 {
		return fmt.Sprintf("view %q: %v", e.View, e.Err)
	}
	return fmt.Sprintf("view %q panel %d: %v", e.View, e.Panel, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newConfigError(view string, panel int, format string, args ...any) *ConfigError {
	return &ConfigError{
		View:  view,
		Panel: panel,
		Err:   fmt.Errorf("%w: "+format, append([]any{ErrConfig}, args...)...),
	}
}
