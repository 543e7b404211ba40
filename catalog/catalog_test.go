package catalog

import (
	"errors"
	"slices"
	"testing"
)

func TestDefaultParses(t *testing.T) {
	c := Default()
	cols := c.Columns()
	if len(cols) != 20 {
		t.Fatalf("got %d columns, want 20", len(cols))
	}
	if cols[0] != StationID || cols[1] != UTCDate || cols[2] != UTCTime {
		t.Fatalf("key columns out of order: %v", cols[:3])
	}
}

func TestSelect(t *testing.T) {
	c := Default()
	tests := []struct {
		set     string
		has     []string
		hasNot  []string
		wantErr bool
	}{
		{set: "all", has: []string{"Temp 2m", "Soil Temp 5cm", "Precip"}},
		{set: "Atmospheric", has: []string{UTCDate, "Temp 2m", "Precip"}, hasNot: []string{"Soil Temp 5cm"}},
		{set: "agricultural", has: []string{UTCTime, "Soil Moisture 5cm", "Solar Rad"}, hasNot: []string{"Wind Speed 10m"}},
		{set: "hydrological", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.set, func(t *testing.T) {
			sel, err := c.Select(tt.set)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSelection) {
					t.Fatalf("err = %v, want ErrInvalidSelection", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			cols := sel.Columns()
			for _, h := range tt.has {
				if !slices.Contains(cols, h) {
					t.Errorf("selection %q is missing %q", tt.set, h)
				}
			}
			for _, h := range tt.hasNot {
				if slices.Contains(cols, h) {
					t.Errorf("selection %q should not contain %q", tt.set, h)
				}
			}
		})
	}
	if got := len(c.Columns()); got != 20 {
		t.Fatalf("Select mutated the receiver: %d columns", got)
	}
}

func TestSelectColumnsAndIDs(t *testing.T) {
	c := Default()

	sel, err := c.SelectColumns([]string{UTCDate, UTCTime, "Precip"})
	if err != nil {
		t.Fatal(err)
	}
	if got := sel.Columns(); !slices.Equal(got, []string{UTCDate, UTCTime, "Precip"}) {
		t.Fatalf("columns = %v", got)
	}
	if _, err := c.SelectColumns([]string{"Nope"}); !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("unknown column err = %v", err)
	}

	sel, err = c.SelectIDs([]int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if got := sel.Columns(); !slices.Equal(got, []string{UTCDate, UTCTime, "Temp 2m"}) {
		t.Fatalf("columns = %v", got)
	}
	if _, err := c.SelectIDs([]int{99}); !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("unknown id err = %v", err)
	}
}

func TestUnitsSkipKeys(t *testing.T) {
	units := Default().Units()
	for _, k := range []string{StationID, UTCDate, UTCTime} {
		if _, ok := units[k]; ok {
			t.Errorf("units should not contain %q", k)
		}
	}
	if units["Temp 2m"] != "F" {
		t.Errorf("Temp 2m units = %q", units["Temp 2m"])
	}
}

func TestLabel(t *testing.T) {
	c := Default()
	if got := c.Label("Temp 2m"); got != "Temp 2m (F)" {
		t.Errorf("Label = %q", got)
	}
	if got := c.Label("Station ID"); got != "Station ID" {
		t.Errorf("Label without units = %q", got)
	}
	var nilCat *Catalog
	if got := nilCat.Label("Temp 2m"); got != "Temp 2m" {
		t.Errorf("nil catalog Label = %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"syntax":    `{"columns": [`,
		"empty":     `{"columns": []}`,
		"no name":   `{"columns": [{"id": 0, "inclusion": "all"}]}`,
		"duplicate": `{"columns": [{"id": 0, "column": "A", "inclusion": "all"}, {"id": 1, "column": "A", "inclusion": "all"}]}`,
		"inclusion": `{"columns": [{"id": 0, "column": "A", "inclusion": "some"}]}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
