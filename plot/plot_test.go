package plot

import (
	"time"

	"wtxmeso/catalog"
)

type fakeSurface struct {
	redraws   int
	titles    []string
	raiseErr  error
	raised    int
	listeners []Listener
}

func (s *fakeSurface) RequestRedraw()        { s.redraws++ }
func (s *fakeSurface) SetTitle(title string) { s.titles = append(s.titles, title) }
func (s *fakeSurface) Subscribe(l Listener)  { s.listeners = append(s.listeners, l) }

func (s *fakeSurface) Raise() error {
	s.raised++
	return s.raiseErr
}

func (s *fakeSurface) MeasureText(str string) (float64, float64) {
	return float64(len(str) * 7), 13
}

func (s *fakeSurface) title() string {
	if len(s.titles) == 0 {
		return ""
	}
	return s.titles[len(s.titles)-1]
}

type table struct {
	times []time.Time
	cols  map[string][]float64
}

func (t *table) Times() []time.Time { return t.times }

func (t *table) Column(name string) ([]float64, bool) {
	v, ok := t.cols[name]
	return v, ok
}

func testData() *table {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	t := &table{cols: map[string][]float64{}}
	for i := range 12 {
		t.times = append(t.times, start.Add(time.Duration(i)*5*time.Minute))
	}
	for j, name := range []string{"Temp 2m", "Temp 9m", "RH 2m", "Dew Point", "Precip", "Pressure"} {
		vals := make([]float64, len(t.times))
		for i := range vals {
			vals[i] = float64(j*10 + i)
		}
		t.cols[name] = vals
	}
	return t
}

// lines plots each named column on the primary axes.
func lines(names ...string) RenderFunc {
	return func(ax *Axes, data Data, cat *catalog.Catalog) (Secondary, error) {
		for _, n := range names {
			v, err := Column(data, n)
			if err != nil {
				return NoSecondary(), err
			}
			ax.Plot(n, data.Times(), v)
		}
		return NoSecondary(), nil
	}
}

// twin plots primary on the axes and secondary on a twin.
func twin(primary, secondary []string) RenderFunc {
	return func(ax *Axes, data Data, cat *catalog.Catalog) (Secondary, error) {
		if _, err := lines(primary...)(ax, data, cat); err != nil {
			return NoSecondary(), err
		}
		tw := ax.TwinX()
		if _, err := lines(secondary...)(tw, data, cat); err != nil {
			return NoSecondary(), err
		}
		return SecondaryOf(tw), nil
	}
}

func mustView(name string, panels []*Panel, opts ...ViewOption) *View {
	v, err := NewView(name, panels, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func testViews(n int) []*View {
	views := make([]*View, n)
	for i := range views {
		views[i] = mustView(
			string(rune('A'+i)),
			[]*Panel{
				NewPanel(lines("Temp 2m", "Temp 9m")),
				NewPanel(twin([]string{"Pressure"}, []string{"RH 2m"})),
				NewPanel(lines("Precip")),
			},
			WithColumns(2),
		)
	}
	return views
}
