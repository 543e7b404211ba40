// Package dataset reads mesonet data files into time-indexed frames.
package dataset

import (
	"math"
	"slices"
	"time"

	"github.com/tidwall/btree"
)

// Frame is a table of float columns indexed by UTC timestamp. Rows are kept
// ordered by time; a later row with the same timestamp replaces the earlier.
type Frame struct {
	columns []string
	index   map[string]int
	rows    *btree.Map[int64, []float64]
}

func NewFrame(columns []string) *Frame {
	f := &Frame{
		columns: slices.Clone(columns),
		index:   make(map[string]int, len(columns)),
		rows:    btree.NewMap[int64, []float64](0),
	}
	for i, c := range f.columns {
		f.index[c] = i
	}
	return f
}

// Set stores one row. values must hold one value per column.
func (f *Frame) Set(ts time.Time, values []float64) {
	f.rows.Set(ts.Unix(), values)
}

func (f *Frame) Columns() []string { return slices.Clone(f.columns) }
func (f *Frame) Len() int          { return f.rows.Len() }

func (f *Frame) Times() []time.Time {
	times := make([]time.Time, 0, f.rows.Len())
	f.rows.Ascend(math.MinInt64, func(unix int64, _ []float64) bool {
		times = append(times, time.Unix(unix, 0).UTC())
		return true
	})
	return times
}

// Column returns the values of one column in time order.
func (f *Frame) Column(name string) ([]float64, bool) {
	i, ok := f.index[name]
	if !ok {
		return nil, false
	}
	values := make([]float64, 0, f.rows.Len())
	f.rows.Ascend(math.MinInt64, func(_ int64, row []float64) bool {
		values = append(values, row[i])
		return true
	})
	return values, true
}

// Range returns the first and last timestamp.
func (f *Frame) Range() (first, last time.Time, ok bool) {
	lo, _, ok := f.rows.Min()
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	hi, _, _ := f.rows.Max()
	return time.Unix(lo, 0).UTC(), time.Unix(hi, 0).UTC(), true
}

// Concat merges frames into a new frame holding the union of their columns.
// Values missing from a frame are NaN. On equal timestamps the later frame
// wins.
func Concat(frames ...*Frame) *Frame {
	var columns []string
	for _, fr := range frames {
		for _, c := range fr.columns {
			if !slices.Contains(columns, c) {
				columns = append(columns, c)
			}
		}
	}
	out := NewFrame(columns)
	for _, fr := range frames {
		fr.rows.Ascend(math.MinInt64, func(unix int64, row []float64) bool {
			merged := make([]float64, len(columns))
			for i, c := range columns {
				if j, ok := fr.index[c]; ok {
					merged[i] = row[j]
				} else {
					merged[i] = math.NaN()
				}
			}
			out.rows.Set(unix, merged)
			return true
		})
	}
	return out
}
