package plot

import (
	"image/color"
	"math"
	"strconv"
	"time"
)

// Region is a rectangle in figure coordinates, 0..1 on both axes with the
// origin at the top left.
type Region struct {
	X0, Y0, X1, Y1 float64
}

func (r Region) Width() float64  { return r.X1 - r.X0 }
func (r Region) Height() float64 { return r.Y1 - r.Y0 }

// Insets are the pixel margins between a region and its plot box.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// Axes is one plotting box on a figure. A twin axes shares its parent's
// region and time domain and draws its value scale on the right.
type Axes struct {
	fig      *Figure
	region   Region
	insets   Insets
	visible  bool
	series   []*Series
	legend   *Legend
	parent   *Axes
	twin     *Axes
	ylabel   string
	colorIdx int
}

func (a *Axes) Figure() *Figure        { return a.fig }
func (a *Axes) Region() Region         { return a.region }
func (a *Axes) Insets() Insets         { return a.insets }
func (a *Axes) Visible() bool          { return a.visible }
func (a *Axes) SetVisible(v bool)      { a.visible = v }
func (a *Axes) Series() []*Series      { return a.series }
func (a *Axes) Legend() *Legend        { return a.legend }
func (a *Axes) Parent() *Axes          { return a.parent }
func (a *Axes) IsTwin() bool           { return a.parent != nil }
func (a *Axes) YLabel() string         { return a.ylabel }
func (a *Axes) SetYLabel(label string) { a.ylabel = label }

// Twin returns the twin axes if one is attached.
func (a *Axes) Twin() (*Axes, bool) {
	return a.twin, a.twin != nil
}

// Plot adds a line series. Times and values are truncated to the shorter
// of the two.
func (a *Axes) Plot(label string, times []time.Time, values []float64) *Series {
	return a.PlotStyled(label, times, values, Style{Color: a.nextColor(), Width: DefaultLineWidth})
}

// Scatter adds a marker-only series.
func (a *Axes) Scatter(label string, times []time.Time, values []float64) *Series {
	return a.PlotStyled(label, times, values, Style{Color: a.nextColor(), Width: DefaultDotWidth, Markers: true})
}

func (a *Axes) PlotStyled(label string, times []time.Time, values []float64, style Style) *Series {
	n := min(len(times), len(values))
	if style.Width <= 0 {
		style.Width = DefaultLineWidth
	}
	s := &Series{
		label:   label,
		style:   style,
		times:   times[:n],
		values:  values[:n],
		visible: true,
		axes:    a,
	}
	if a.fig != nil {
		s.id = a.fig.ids.next(a.path() + "/" + label)
	}
	a.series = append(a.series, s)
	return s
}

// TwinX returns a twin axes sharing this axes' region and time domain,
// creating it if needed. Twins of twins are not supported; calling TwinX on a
// twin returns the twin itself.
func (a *Axes) TwinX() *Axes {
	if a.parent != nil {
		return a
	}
	if a.twin != nil {
		return a.twin
	}
	t := &Axes{
		fig:     a.fig,
		region:  a.region,
		insets:  a.insets,
		visible: a.visible,
		parent:  a,
	}
	a.twin = t
	if a.fig != nil {
		a.fig.axes = append(a.fig.axes, t)
	}
	return t
}

// Clear drops all series, the legend and the twin axes.
func (a *Axes) Clear() {
	a.releaseSeries()
	a.series = nil
	a.legend = nil
	a.ylabel = ""
	a.colorIdx = 0
	if a.twin != nil {
		t := a.twin
		t.releaseSeries()
		t.series = nil
		t.visible = false
		a.twin = nil
		if a.fig != nil {
			a.fig.removeAxes(t)
		}
	}
}

func (a *Axes) releaseSeries() {
	if a.fig == nil {
		return
	}
	for _, s := range a.series {
		a.fig.ids.release(s.id)
	}
}

func (a *Axes) nextColor() (c color.RGBA) {
	if a.parent != nil {
		// continue the parent's cycle so twin series are distinguishable
		c = Palette[(a.parent.colorIdx+a.colorIdx)%len(Palette)]
	} else {
		c = Palette[a.colorIdx%len(Palette)]
	}
	a.colorIdx++
	return c
}

func (a *Axes) path() string {
	if a.fig == nil {
		return "axes"
	}
	for i, ax := range a.fig.axes {
		if ax == a {
			return "axes" + strconv.Itoa(i)
		}
	}
	return "axes"
}

// XRange returns the time domain covered by this axes and its twin or parent.
func (a *Axes) XRange() (first, last time.Time, ok bool) {
	root := a
	if a.parent != nil {
		root = a.parent
	}
	for _, ax := range []*Axes{root, root.twin} {
		if ax == nil {
			continue
		}
		for _, s := range ax.series {
			f, l, sok := s.TimeRange()
			if !sok {
				continue
			}
			if !ok || f.Before(first) {
				first = f
			}
			if !ok || l.After(last) {
				last = l
			}
			ok = true
		}
	}
	return first, last, ok
}

// YLimits returns the value range of all series (hidden ones included, so
// toggling does not rescale) padded by 5%.
func (a *Axes) YLimits() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range a.series {
		slo, shi, ok := s.ValueRange()
		if !ok {
			continue
		}
		lo = math.Min(lo, slo)
		hi = math.Max(hi, shi)
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	if lo == hi {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}

// YTicks returns the value ticks for the current limits.
func (a *Axes) YTicks() []Tick {
	return ValueTicks(a.YLimits())
}

// XTicks returns the time ticks for the shared time domain.
func (a *Axes) XTicks() []Tick {
	first, last, ok := a.XRange()
	if !ok {
		return nil
	}
	return TimeTicks(first, last)
}
