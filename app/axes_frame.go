package app

import (
	img "image"
	"math"
	"time"

	"wtxmeso/plot"
)

// axesFrame maps data coordinates of one primary axes (and its twin) to
// canvas pixels. The inner rectangle excludes the axes insets.
type axesFrame struct {
	ax *plot.Axes

	x0, y0, x1, y1 float32

	first, last time.Time
	hasTime     bool

	lo, hi         float64
	twin           *plot.Axes // nil unless a visible twin exists
	twinLo, twinHi float64
}

func newAxesFrame(ax *plot.Axes, width, height float64) axesFrame {
	r := ax.Region()
	in := ax.Insets()
	f := axesFrame{
		ax: ax,
		x0: float32(r.X0*width + in.Left),
		y0: float32(r.Y0*height + in.Top),
		x1: float32(r.X1*width - in.Right),
		y1: float32(r.Y1*height - in.Bottom),
	}
	f.first, f.last, f.hasTime = ax.XRange()
	f.lo, f.hi = ax.YLimits()
	if t, ok := ax.Twin(); ok && t.Visible() {
		f.twin = t
		f.twinLo, f.twinHi = t.YLimits()
	}
	return f
}

func (f axesFrame) empty() bool {
	return f.x1 <= f.x0 || f.y1 <= f.y0
}

func (f axesFrame) contains(x, y float32) bool {
	return x >= f.x0 && x <= f.x1 && y >= f.y0 && y <= f.y1
}

func (f axesFrame) rect() img.Rectangle {
	return img.Rect(int(f.x0), int(f.y0), int(math.Ceil(float64(f.x1))), int(math.Ceil(float64(f.y1))))
}

func (f axesFrame) timeX(t time.Time) float32 {
	span := f.last.Sub(f.first).Seconds()
	if span <= 0 {
		return (f.x0 + f.x1) / 2
	}
	return f.x0 + float32(t.Sub(f.first).Seconds()/span)*(f.x1-f.x0)
}

// unixX places a time tick, whose value is in unix seconds.
func (f axesFrame) unixX(sec float64) float32 {
	return f.timeX(time.Unix(int64(sec), 0))
}

func (f axesFrame) timeAt(x float32) time.Time {
	span := f.last.Sub(f.first)
	if span <= 0 || f.x1 <= f.x0 {
		return f.first
	}
	frac := float64(x-f.x0) / float64(f.x1-f.x0)
	return f.first.Add(time.Duration(frac * float64(span)))
}

func (f axesFrame) valueY(lo, hi, v float64) float32 {
	if hi <= lo {
		return (f.y0 + f.y1) / 2
	}
	return f.y1 - float32((v-lo)/(hi-lo))*(f.y1-f.y0)
}

func (f axesFrame) valueAt(lo, hi float64, y float32) float64 {
	if f.y1 <= f.y0 {
		return lo
	}
	return lo + float64(f.y1-y)/float64(f.y1-f.y0)*(hi-lo)
}
