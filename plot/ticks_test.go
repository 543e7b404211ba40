package plot

import (
	"math"
	"testing"
	"time"
)

func TestNiceStep(t *testing.T) {
	tests := []struct {
		span float64
		want float64
	}{
		{0, 1},
		{-3, 1},
		{math.NaN(), 1},
		{100, 10},
		{50, 5},
		{12, 1},
		{0.3, 0.025},
	}
	for _, tt := range tests {
		if got := NiceStep(tt.span); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NiceStep(%v) = %v, want %v", tt.span, got, tt.want)
		}
	}
}

func TestValueTicksInsideRange(t *testing.T) {
	for _, r := range [][2]float64{{0, 1}, {-5, 5}, {28.9, 30.2}, {0, 1500}, {42, 42.0001}} {
		ticks := ValueTicks(r[0], r[1])
		if len(ticks) == 0 {
			t.Errorf("no ticks for %v", r)
			continue
		}
		if len(ticks) > maxTicks+1 {
			t.Errorf("%d ticks for %v", len(ticks), r)
		}
		for i, tk := range ticks {
			if tk.Value < r[0]-1e-9 || tk.Value > r[1]+1e-9 {
				t.Errorf("tick %v outside %v", tk.Value, r)
			}
			if i > 0 && tk.Value <= ticks[i-1].Value {
				t.Errorf("ticks not increasing for %v", r)
			}
		}
	}
	if ValueTicks(2, 1) != nil {
		t.Error("inverted range should have no ticks")
	}
}

func TestFormatTick(t *testing.T) {
	tests := map[float64]string{
		0:      "0.00",
		1.5:    "1.50",
		12.34:  "12.3",
		250:    "250",
		-0.125: "-0.125",
		0.0012: "0.0012",
	}
	for v, want := range tests {
		if got := FormatTick(v); got != want {
			t.Errorf("FormatTick(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestTimeTicks(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 2, 0, 0, time.UTC)

	ticks := TimeTicks(start, start.Add(55*time.Minute))
	if len(ticks) == 0 {
		t.Fatal("no ticks for an hour")
	}
	if ticks[0].Label != "00:15" {
		t.Errorf("first tick = %q, want 00:15", ticks[0].Label)
	}

	ticks = TimeTicks(start, start.Add(10*24*time.Hour))
	if ticks[0].Label != "06-02" {
		t.Errorf("first day tick = %q, want 06-02", ticks[0].Label)
	}
	step, ok := TimeStep(10 * 24 * time.Hour)
	if !ok {
		t.Fatal("ten days should use a fixed step")
	}
	for _, tk := range ticks {
		if int64(tk.Value)%int64(step/time.Second) != 0 {
			t.Errorf("tick %q not aligned to its step", tk.Label)
		}
	}
	if len(ticks) >= maxTicks {
		t.Errorf("%d ticks for ten days", len(ticks))
	}
}

func TestTimeTicksMultiYear(t *testing.T) {
	tests := []struct {
		name        string
		first, last time.Time
		labels      []string
	}{
		{
			name:   "three years",
			first:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			last:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			labels: []string{"2020-01", "2020-07", "2021-01", "2021-07", "2022-01", "2022-07", "2023-01"},
		},
		{
			name:   "ten years",
			first:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			last:   time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
			labels: []string{"2020", "2022", "2024", "2026", "2028", "2030"},
		},
		{
			name:   "one season",
			first:  time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC),
			last:   time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC),
			labels: []string{"2024-04", "2024-05", "2024-06", "2024-07", "2024-08", "2024-09"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticks := TimeTicks(tt.first, tt.last)
			if len(ticks) > maxTicks {
				t.Fatalf("%d ticks, want at most %d", len(ticks), maxTicks)
			}
			if len(ticks) != len(tt.labels) {
				t.Fatalf("got %d ticks %v, want %v", len(ticks), ticks, tt.labels)
			}
			for i, tk := range ticks {
				if tk.Label != tt.labels[i] {
					t.Errorf("tick %d = %q, want %q", i, tk.Label, tt.labels[i])
				}
				at := time.Unix(int64(tk.Value), 0).UTC()
				if at.Day() != 1 || at.Hour() != 0 {
					t.Errorf("tick %q at %v, want the first of a month", tk.Label, at)
				}
			}
		})
	}
}

func TestMonthStep(t *testing.T) {
	tests := map[int]int{1: 1, 7: 1, 8: 3, 37: 6, 48: 12, 95: 12, 96: 24, 121: 24, 400: 96}
	for months, want := range tests {
		if got := MonthStep(months); got != want {
			t.Errorf("MonthStep(%d) = %d, want %d", months, got, want)
		}
	}
}
