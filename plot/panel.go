package plot

import (
	"wtxmeso/catalog"
)

// Secondary is the optional twin axes returned by a render function.
type Secondary struct {
	axes *Axes
}

// NoSecondary is returned by render functions that draw on one axes only.
func NoSecondary() Secondary { return Secondary{} }

// SecondaryOf marks ax, which must come from TwinX on the panel's axes, as the
// panel's secondary axes.
func SecondaryOf(ax *Axes) Secondary { return Secondary{axes: ax} }

func (s Secondary) Get() (*Axes, bool) { return s.axes, s.axes != nil }
func (s Secondary) Present() bool      { return s.axes != nil }

// RenderFunc draws one panel. It must be deterministic: the same data and
// catalog always produce the same series in the same order. A missing
// column is reported with ErrMissingColumn.
type RenderFunc func(ax *Axes, data Data, cat *catalog.Catalog) (Secondary, error)

// Panel is one plotting region of a view.
type Panel struct {
	render    RenderFunc
	ax        *Axes
	view      string
	index     int
	secondary Secondary
	legend    *LegendController
}

func NewPanel(render RenderFunc) *Panel {
	return &Panel{render: render, index: -1}
}

func (p *Panel) Axes() *Axes               { return p.ax }
func (p *Panel) Secondary() Secondary      { return p.secondary }
func (p *Panel) Legend() *LegendController { return p.legend }
func (p *Panel) Visible() bool             { return p.ax != nil && p.ax.visible }

// Region returns the grid cell reserved for the panel.
func (p *Panel) Region() Region {
	if p.ax == nil {
		return Region{}
	}
	return p.ax.region
}

func (p *Panel) layout(fig *Figure, view string, index int, r Region) error {
	if p.ax != nil {
		return newConfigError(view, index, "panel already laid out")
	}
	p.view, p.index = view, index
	p.ax = fig.AddAxes(r)
	return nil
}

func (p *Panel) draw(data Data, cat *catalog.Catalog) error {
	if p.ax == nil {
		return newConfigError(p.view, p.index, "panel drawn before layout")
	}
	if p.render == nil {
		return newConfigError(p.view, p.index, "panel has no render function")
	}
	p.reset()
	p.ax.visible = true

	sec, err := p.render(p.ax, data, cat)
	if err != nil {
		p.hide()
		return &ConfigError{View: p.view, Panel: p.index, Err: err}
	}
	if twin, ok := sec.Get(); ok {
		if twin.parent != p.ax {
			p.hide()
			return newConfigError(p.view, p.index, "secondary axes is not a twin of the panel axes")
		}
		twin.visible = true
	}
	p.secondary = sec

	p.legend = NewLegendController(p.ax.fig)
	p.legend.Attach(p)
	return nil
}

// hide drops everything draw created, the twin axes included, and keeps only
// the reserved cell.
func (p *Panel) hide() {
	if p.ax == nil {
		return
	}
	p.reset()
	p.ax.visible = false
}

func (p *Panel) reset() {
	if p.legend != nil {
		p.legend.Detach()
		p.legend = nil
	}
	p.ax.Clear()
	p.secondary = NoSecondary()
}
