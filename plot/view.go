package plot

import (
	"fmt"
	"math"

	"wtxmeso/catalog"
)

// View is a named grid of panels. Views know nothing about each other; the
// InteractivePlotter decides which one is shown.
type View struct {
	name    string
	panels  []*Panel
	rows    int
	cols    int
	visible bool
	laidOut bool
}

type ViewOption func(*viewOptions)

type viewOptions struct {
	rows, cols int
}

// WithColumns fixes the column count; rows follow from the panel count.
func WithColumns(cols int) ViewOption {
	return func(o *viewOptions) { o.cols = cols }
}

// WithRows fixes the row count; columns follow from the panel count.
func WithRows(rows int) ViewOption {
	return func(o *viewOptions) { o.rows = rows }
}

// WithGrid fixes both dimensions.
func WithGrid(rows, cols int) ViewOption {
	return func(o *viewOptions) { o.rows, o.cols = rows, cols }
}

func NewView(name string, panels []*Panel, opts ...ViewOption) (*View, error) {
	var o viewOptions
	for _, opt := range opts {
		opt(&o)
	}
	rows, cols, err := GridShape(len(panels), o.rows, o.cols)
	if err != nil {
		return nil, &ConfigError{View: name, Panel: -1, Err: err}
	}
	return &View{name: name, panels: panels, rows: rows, cols: cols}, nil
}

func (v *View) Name() string     { return v.name }
func (v *View) Panels() []*Panel { return v.panels }
func (v *View) Grid() (int, int) { return v.rows, v.cols }
func (v *View) Visible() bool    { return v.visible }

// GridShape resolves the grid for n panels. Zero values mean "derive": with
// neither given, rows = ceil(sqrt(n)) and cols = ceil(n/rows).
func GridShape(n, rows, cols int) (int, int, error) {
	if n <= 0 {
		return 0, 0, fmt.Errorf("%w: view has no panels", ErrConfig)
	}
	if rows < 0 || cols < 0 {
		return 0, 0, fmt.Errorf("%w: negative grid %dx%d", ErrConfig, rows, cols)
	}
	switch {
	case rows == 0 && cols == 0:
		rows = int(math.Ceil(math.Sqrt(float64(n))))
		cols = ceilDiv(n, rows)
	case rows == 0:
		rows = ceilDiv(n, cols)
	case cols == 0:
		cols = ceilDiv(n, rows)
	}
	if rows*cols < n {
		return 0, 0, fmt.Errorf("%w: %d panels do not fit a %dx%d grid", ErrConfig, n, rows, cols)
	}
	return rows, cols, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// layout reserves every panel's cell, row-major. Cells never move afterwards.
func (v *View) layout(fig *Figure) error {
	if v.laidOut {
		return newConfigError(v.name, -1, "view already laid out")
	}
	for i, p := range v.panels {
		cell := gridCell(v.rows, v.cols, i/v.cols, i%v.cols)
		if err := p.layout(fig, v.name, i, cell); err != nil {
			return err
		}
	}
	v.laidOut = true
	return nil
}

// draw draws every panel in order. On error the view is hidden again so the
// figure never shows a half-drawn view.
func (v *View) draw(fig *Figure, data Data, cat *catalog.Catalog) error {
	if !v.laidOut {
		return newConfigError(v.name, -1, "view drawn before layout")
	}
	for _, p := range v.panels {
		if err := p.draw(data, cat); err != nil {
			v.hide()
			return err
		}
	}
	v.visible = true
	fig.TightLayout()
	return nil
}

func (v *View) hide() {
	for _, p := range v.panels {
		p.hide()
	}
	v.visible = false
}
