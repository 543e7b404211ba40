package plot

import (
	"image/color"
	"math"
	"time"

	"golang.org/x/image/colornames"
)

// Palette is the color cycle used for series that do not set a color.
var Palette = []color.RGBA{
	colornames.Steelblue,
	colornames.Darkorange,
	colornames.Forestgreen,
	colornames.Crimson,
	colornames.Mediumpurple,
	colornames.Sienna,
	colornames.Hotpink,
	colornames.Gray,
	colornames.Olive,
	colornames.Darkturquoise,
}

const (
	DefaultLineWidth = 1.5
	DefaultDotWidth  = 3
)

type Style struct {
	Color color.RGBA
	Width float32
	// Markers draws points only, without connecting lines.
	Markers bool
}

// Series is one rendered data series inside an axes. It is owned by the
// axes that created it and is dropped when the axes is cleared.
type Series struct {
	id      ArtistID
	label   string
	style   Style
	times   []time.Time
	values  []float64
	visible bool
	axes    *Axes
}

func (s *Series) ID() ArtistID       { return s.id }
func (s *Series) Label() string      { return s.label }
func (s *Series) Style() Style       { return s.style }
func (s *Series) Axes() *Axes        { return s.axes }
func (s *Series) Len() int           { return len(s.values) }
func (s *Series) Times() []time.Time { return s.times }
func (s *Series) Values() []float64  { return s.values }
func (s *Series) Visible() bool      { return s.visible }
func (s *Series) SetVisible(v bool)  { s.visible = v }

// At returns the i-th point.
func (s *Series) At(i int) (time.Time, float64) {
	return s.times[i], s.values[i]
}

// Labeled reports whether the series takes part in the legend. Labels that
// start with an underscore are private, as are empty labels.
func (s *Series) Labeled() bool {
	return s.label != "" && s.label[0] != '_'
}

// ValueRange returns the min and max of the finite values.
func (s *Series) ValueRange() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range s.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		ok = true
	}
	return lo, hi, ok
}

// TimeRange returns the first and last timestamp, assuming times are sorted.
func (s *Series) TimeRange() (first, last time.Time, ok bool) {
	if len(s.times) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s.times[0], s.times[len(s.times)-1], true
}
