package plot

import (
	"fmt"
	"time"
)

// Data is the tabular time series handed to render functions: one time index
// and any number of named numeric columns of the same length.
type Data interface {
	Times() []time.Time
	Column(name string) ([]float64, bool)
}

// Column looks up a column and turns a missing one into ErrMissingColumn.
func Column(d Data, name string) ([]float64, error) {
	if d == nil {
		return nil, fmt.Errorf("%w: %q (no data)", ErrMissingColumn, name)
	}
	v, ok := d.Column(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
	}
	return v, nil
}
