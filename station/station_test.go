package station

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"wtxmeso/dataset"
)

func TestParseArea(t *testing.T) {
	tests := []struct {
		in   string
		want Area
	}{
		{"Lubbock / Lubbock County", Area{"Lubbock", "Lubbock County", "TX"}},
		{"Southeast Cochran County", Area{"None", "Cochran County", "TX"}},
		{"Clovis, NM / Curry County", Area{"Clovis", "Curry County", "NM"}},
		{"Hobbs NM / Lea County", Area{"Hobbs", "Lea County", "NM"}},
		{"a / b / c", Area{"Unknown", "Unknown", "Unknown"}},
		{"Post / Garza County", Area{"Post", "Garza County", "TX"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseArea(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("ParseArea(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
	if _, err := ParseArea("  "); !errors.Is(err, ErrInvalidArea) {
		t.Fatalf("blank area err = %v", err)
	}
}

func TestStripDigits(t *testing.T) {
	if got := StripDigits("LBB12a3"); got != "LBBa" {
		t.Fatalf("StripDigits = %q", got)
	}
}

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "stations.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

var header = []any{
	"Location", "Area", "Lat-decimal", "Long.-decimal", "Elevation", "ID", "Logger ID",
	"Prevoius IDs", "Prev. Lat-decimals", "Prev. Lon-decimals", "Dates of Relocation (UTC YYYYMMDD)",
}

func TestReadWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		header,
		{"Reese Center", "Lubbock / Lubbock County", 33.6, -102.04, "3330 ft.", "REES1", 5001, "", "", "", ""},
		{"Morton", "Southeast Cochran County", 33.72, -102.76, "3760 ft.", "MORT", 5002,
			"MRT1//MRT2", "33.7//33.71", "-102.7//-102.75", "20050301//2012-06-15"},
	})

	reg, err := ReadWorkbook(path)
	if err != nil {
		t.Fatal(err)
	}
	if reg.Len() != 2 {
		t.Fatalf("got %d stations, want 2", reg.Len())
	}
	rees, ok := reg.Get("REES")
	if !ok {
		t.Fatal("REES not registered under its stripped ID")
	}
	if rees.RawID != "REES1" || rees.Elevation != 3330 || rees.City != "Lubbock" || rees.LoggerID != 5001 {
		t.Fatalf("REES = %s", rees)
	}
	if len(rees.Relocations) != 0 {
		t.Fatalf("REES relocations = %v", rees.Relocations)
	}

	mort, _ := reg.Get("MORT")
	if mort.City != "None" || mort.County != "Cochran County" {
		t.Fatalf("MORT area = %q / %q", mort.City, mort.County)
	}
	if len(mort.Relocations) != 2 {
		t.Fatalf("MORT relocations = %v", mort.Relocations)
	}
	r := mort.Relocations[1]
	if r.ID != "MRT2" || r.Longitude != -102.75 || !r.Date.Equal(time.Date(2012, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("relocation = %+v", r)
	}
	if reg.Stations()[0] != rees {
		t.Fatal("stations not kept in sheet order")
	}
}

func TestReadWorkbookErrors(t *testing.T) {
	if _, err := ReadWorkbook(filepath.Join(t.TempDir(), "missing.xlsx")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}

	noArea := writeWorkbook(t, [][]any{{"Location", "ID"}, {"X", "X1"}})
	if _, err := ReadWorkbook(noArea); err == nil || !strings.Contains(err.Error(), "Area") {
		t.Fatalf("missing column err = %v", err)
	}

	badElev := writeWorkbook(t, [][]any{
		header,
		{"Reese Center", "Lubbock / Lubbock County", 33.6, -102.04, "ft.", "REES1", 5001},
	})
	if _, err := ReadWorkbook(badElev); err == nil || !strings.Contains(err.Error(), "row 2") {
		t.Fatalf("bad elevation err = %v", err)
	}
}

func TestStationData(t *testing.T) {
	s := &Station{Name: "Reese Center", ID: "REES"}
	if s.Frame() != nil || s.HasData() {
		t.Fatal("new station should have no data")
	}
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	a := dataset.NewFrame([]string{"Temp 2m"})
	a.Set(day, []float64{70})
	b := dataset.NewFrame([]string{"Temp 2m"})
	b.Set(day.Add(time.Hour), []float64{75})
	s.AddData(a)
	s.AddData(b)

	if s.Len() != 2 || s.Frame().Len() != 2 {
		t.Fatalf("len = %d, frame len = %d", s.Len(), s.Frame().Len())
	}
	if !strings.Contains(s.String(), "data_loaded: true") {
		t.Fatalf("String() = %s", s.String())
	}
}
