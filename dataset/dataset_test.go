package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"wtxmeso/catalog"
)

func selection(t *testing.T, cols ...string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default().SelectColumns(cols)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRead(t *testing.T) {
	cat := selection(t, catalog.StationID, catalog.UTCDate, catalog.UTCTime, "Temp 2m", "Precip")
	in := strings.Join([]string{
		"LBB1,20240601,5,71.2,0",
		"LBB1,20240601,0,70.9,0.01",
		"LBB1,20240601,1005,,2.4",
		"LBB1,20240602.0,2355.0,88.0,0.2",
	}, "\n")

	fr, err := Read(strings.NewReader(in), cat)
	if err != nil {
		t.Fatal(err)
	}
	if got := fr.Columns(); !slices.Equal(got, []string{"Temp 2m", "Precip"}) {
		t.Fatalf("columns = %v", got)
	}
	want := []time.Time{
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 5, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 10, 5, 0, 0, time.UTC),
		time.Date(2024, 6, 2, 23, 55, 0, 0, time.UTC),
	}
	if got := fr.Times(); !slices.EqualFunc(got, want, time.Time.Equal) {
		t.Fatalf("times = %v, want %v", got, want)
	}
	temp, _ := fr.Column("Temp 2m")
	if temp[0] != 70.9 || temp[1] != 71.2 || !math.IsNaN(temp[2]) {
		t.Fatalf("temp = %v", temp)
	}
	precip, _ := fr.Column("Precip")
	if !math.IsNaN(precip[2]) {
		t.Fatalf("precip above %v should be NaN, got %v", MaxPrecip, precip[2])
	}
	if precip[3] != 0.2 {
		t.Fatalf("precip = %v", precip)
	}
	if _, ok := fr.Column(catalog.StationID); ok {
		t.Fatal("station column should be dropped")
	}
}

func TestReadErrors(t *testing.T) {
	full := selection(t, catalog.UTCDate, catalog.UTCTime, "Temp 2m")
	tests := []struct {
		name string
		cat  *catalog.Catalog
		in   string
		is   error
		line int
	}{
		{name: "no timestamp", cat: selection(t, "Temp 2m"), in: "70\n", is: ErrNoTimestamp},
		{name: "field count", cat: full, in: "20240601,0,70\n20240601,5\n", line: 2},
		{name: "bad value", cat: full, in: "20240601,0,70\n20240601,5,hot\n", line: 2},
		{name: "bad date", cat: full, in: "June,0,70\n", line: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in), tt.cat)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Fatalf("err = %v, want %v", err, tt.is)
			}
			if tt.line > 0 {
				var pe *ParseError
				if !errors.As(err, &pe) || pe.Line != tt.line {
					t.Fatalf("err = %v, want ParseError on line %d", err, tt.line)
				}
			}
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"), catalog.Default())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}

func TestConcat(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a := NewFrame([]string{"Temp 2m"})
	a.Set(day, []float64{70})
	a.Set(day.Add(5*time.Minute), []float64{71})
	b := NewFrame([]string{"Temp 2m", "Precip"})
	b.Set(day.Add(5*time.Minute), []float64{72, 0.1})
	b.Set(day.Add(10*time.Minute), []float64{73, 0})

	fr := Concat(a, b)
	if fr.Len() != 3 {
		t.Fatalf("len = %d, want 3", fr.Len())
	}
	temp, _ := fr.Column("Temp 2m")
	if !slices.Equal(temp, []float64{70, 72, 73}) {
		t.Fatalf("temp = %v", temp)
	}
	precip, _ := fr.Column("Precip")
	if !math.IsNaN(precip[0]) || precip[1] != 0.1 {
		t.Fatalf("precip = %v", precip)
	}
	first, last, ok := fr.Range()
	if !ok || !first.Equal(day) || !last.Equal(day.Add(10*time.Minute)) {
		t.Fatalf("range = %v..%v %v", first, last, ok)
	}
}

func TestNameFromPath(t *testing.T) {
	tests := map[string]string{
		"data/LBB.csv":       "LBB",
		"/tmp/REES.2024.txt": "REES2024",
		"ABER":               "ABER",
	}
	for in, want := range tests {
		if got := NameFromPath(in); got != want {
			t.Errorf("NameFromPath(%q) = %q, want %q", in, got, want)
		}
	}
}
