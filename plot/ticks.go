package plot

import (
	"math"
	"strconv"
	"time"
)

const maxTicks = 8

type Tick struct {
	Value float64
	Label string
}

// ValueTicks returns ticks at a "nice" step inside [lo, hi].
func ValueTicks(lo, hi float64) []Tick {
	if math.IsNaN(lo) || math.IsNaN(hi) || hi < lo {
		return nil
	}
	span := hi - lo
	step := NiceStep(span)
	for span/step > maxTicks {
		step *= 2
	}
	start := math.Ceil(lo/step) * step
	n := int(math.Floor((hi-start)/step + 1e-9))
	ticks := make([]Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := start + float64(i)*step
		if math.Abs(v) < step*1e-9 {
			v = 0
		}
		ticks = append(ticks, Tick{Value: v, Label: FormatTick(v)})
	}
	return ticks
}

// NiceStep picks a tick step for a visible range.
func NiceStep(visibleRange float64) float64 {
	if visibleRange <= 0 || math.IsNaN(visibleRange) || math.IsInf(visibleRange, 0) {
		return 1
	}
	magnitude := math.Floor(math.Log10(visibleRange))
	baseStep := math.Pow(10, magnitude)
	normalizedRange := visibleRange / baseStep
	var step float64
	switch {
	case normalizedRange <= 1.0:
		step = baseStep / 20
	case normalizedRange <= 2.0:
		step = baseStep / 10
	case normalizedRange <= 5.0:
		step = baseStep / 4
	case normalizedRange <= 10.0:
		step = baseStep / 2
	default:
		step = baseStep
	}
	if step >= 1 {
		possibleSteps := []float64{1, 2, 5, 10, 20, 25, 50, 100, 200, 500, 1000}
		for _, ps := range possibleSteps {
			if visibleRange/ps >= 4 && visibleRange/ps <= 15 {
				step = ps
				break
			}
		}
	}
	return step
}

// FormatTick renders a compact tick label.
func FormatTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1 || av == 0:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}

var timeSteps = []time.Duration{
	time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	time.Hour,
	3 * time.Hour,
	6 * time.Hour,
	12 * time.Hour,
	24 * time.Hour,
	2 * 24 * time.Hour,
	7 * 24 * time.Hour,
	14 * 24 * time.Hour,
}

// monthSteps are calendar steps in months. Past the last one the step keeps
// doubling.
var monthSteps = []int{1, 3, 6, 12}

// TimeStep picks the smallest fixed step that keeps fewer than maxTicks
// ticks. It reports false when the span needs calendar month steps.
func TimeStep(visible time.Duration) (time.Duration, bool) {
	for _, s := range timeSteps {
		if visible.Seconds()/s.Seconds() < maxTicks {
			return s, true
		}
	}
	return 0, false
}

// MonthStep picks the smallest calendar step, in months, that keeps fewer
// than maxTicks ticks over the given number of months.
func MonthStep(months int) int {
	for _, s := range monthSteps {
		if months/s < maxTicks {
			return s
		}
	}
	step := monthSteps[len(monthSteps)-1]
	for months/step >= maxTicks {
		step *= 2
	}
	return step
}

// TimeTicks returns UTC-aligned ticks inside [first, last]. Tick values are
// unix seconds.
func TimeTicks(first, last time.Time) []Tick {
	if last.Before(first) {
		return nil
	}
	step, ok := TimeStep(last.Sub(first))
	if !ok {
		return monthTicks(first.UTC(), last.UTC())
	}
	stepSec := int64(step / time.Second)
	start := (first.Unix() + stepSec - 1) / stepSec * stepSec
	if first.Unix() < 0 {
		start = first.Unix() / stepSec * stepSec
	}
	layout := "15:04"
	if step >= 24*time.Hour {
		layout = "01-02"
	}
	var ticks []Tick
	for secs := start; secs <= last.Unix(); secs += stepSec {
		ticks = append(ticks, Tick{
			Value: float64(secs),
			Label: time.Unix(secs, 0).UTC().Format(layout),
		})
	}
	return ticks
}

// monthTicks places ticks on the first of a month, aligned so that the month
// index since year zero is a multiple of the step.
func monthTicks(first, last time.Time) []Tick {
	months := (last.Year()-first.Year())*12 + int(last.Month()-first.Month()) + 1
	step := MonthStep(months)
	layout := "2006-01"
	if step >= 12 {
		layout = "2006"
	}

	t := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	if t.Before(first) {
		t = t.AddDate(0, 1, 0)
	}
	idx := t.Year()*12 + int(t.Month()) - 1
	if r := idx % step; r != 0 {
		t = t.AddDate(0, step-r, 0)
	}

	var ticks []Tick
	for ; !t.After(last); t = t.AddDate(0, step, 0) {
		ticks = append(ticks, Tick{Value: float64(t.Unix()), Label: t.Format(layout)})
	}
	return ticks
}
