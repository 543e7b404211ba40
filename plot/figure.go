package plot

import (
	"slices"

	"wtxmeso/event"
)

// Surface is the host window a figure renders into. All calls happen on the
// host's single UI thread.
type Surface interface {
	// RequestRedraw schedules a repaint of the current scene. It never
	// triggers a relayout.
	RequestRedraw()
	SetTitle(title string)
	// Raise brings the window to the front. It is best-effort.
	Raise() error
	MeasureText(s string) (w, h float64)
	Subscribe(l Listener)
}

// Listener receives input events from a Surface, one at a time and in
// arrival order.
type Listener interface {
	HandleKey(k event.Key) error
	HandlePick(p event.Pick) error
}

const (
	tickPad = 6
	edgePad = 8
)

// Figure is the scene shared by every view: the axes of all panels plus the
// figure title.
type Figure struct {
	surface Surface
	axes    []*Axes
	title   string
	pickers []*LegendController
	ids     artistIDs
}

func NewFigure(s Surface) *Figure {
	return &Figure{surface: s}
}

func (f *Figure) Surface() Surface { return f.surface }
func (f *Figure) Title() string    { return f.title }

// Axes returns every axes on the figure, twins included, in creation order.
func (f *Figure) Axes() []*Axes {
	return f.axes
}

// VisibleAxes returns the axes that should be painted.
func (f *Figure) VisibleAxes() []*Axes {
	var out []*Axes
	for _, a := range f.axes {
		if a.visible {
			out = append(out, a)
		}
	}
	return out
}

// AddAxes reserves a new hidden axes in region.
func (f *Figure) AddAxes(r Region) *Axes {
	a := &Axes{fig: f, region: r}
	f.axes = append(f.axes, a)
	return a
}

func (f *Figure) SetTitle(title string) {
	f.title = title
	if f.surface != nil {
		f.surface.SetTitle(title)
	}
}

// DrawIdle requests a repaint.
func (f *Figure) DrawIdle() {
	if f.surface != nil {
		f.surface.RequestRedraw()
	}
}

// TightLayout sizes the insets of every visible axes so its tick labels fit
// inside its region.
func (f *Figure) TightLayout() {
	if f.surface == nil {
		return
	}
	for _, a := range f.axes {
		if !a.visible || a.parent != nil {
			continue
		}
		_, th := f.surface.MeasureText("0")
		in := Insets{
			Top:    edgePad,
			Left:   f.labelWidth(a.YTicks()) + tickPad + edgePad,
			Bottom: th + tickPad + edgePad,
			Right:  edgePad,
		}
		if a.ylabel != "" {
			in.Left += th + tickPad
		}
		if t := a.twin; t != nil && t.visible {
			in.Right = f.labelWidth(t.YTicks()) + tickPad + edgePad
			if t.ylabel != "" {
				in.Right += th + tickPad
			}
		}
		a.insets = in
		if a.twin != nil {
			a.twin.insets = in
		}
	}
	f.DrawIdle()
}

func (f *Figure) labelWidth(ticks []Tick) float64 {
	var w float64
	for _, t := range ticks {
		tw, _ := f.surface.MeasureText(t.Label)
		w = max(w, tw)
	}
	return w
}

// Pick routes a picked artist to the connected legend controllers. It
// reports whether any controller owned the artist.
func (f *Figure) Pick(id ArtistID) bool {
	for _, lc := range f.pickers {
		if lc.Pick(id) {
			return true
		}
	}
	return false
}

func (f *Figure) connect(lc *LegendController) {
	f.pickers = append(f.pickers, lc)
}

func (f *Figure) disconnect(lc *LegendController) {
	f.pickers = slices.DeleteFunc(f.pickers, func(c *LegendController) bool { return c == lc })
}

func (f *Figure) removeAxes(a *Axes) {
	f.axes = slices.DeleteFunc(f.axes, func(x *Axes) bool { return x == a })
}

// gridCell returns the region of cell (r, c) in a rows x cols grid.
func gridCell(rows, cols, r, c int) Region {
	w := 1 / float64(cols)
	h := 1 / float64(rows)
	return Region{
		X0: float64(c) * w,
		Y0: float64(r) * h,
		X1: float64(c+1) * w,
		Y1: float64(r+1) * h,
	}
}
