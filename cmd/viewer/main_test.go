package main

import (
	"bytes"
	"strings"
	"testing"

	"wtxmeso/catalog"
	"wtxmeso/station"
)

func TestPrintListingNeedsNoData(t *testing.T) {
	reg := station.NewRegistry()
	reg.Add(&station.Station{Name: "Lubbock", ID: "LBB", RawID: "LBB1"})
	reg.Add(&station.Station{Name: "Reese Center", ID: "REES", RawID: "REES1"})
	cat, err := catalog.Default().SelectColumns([]string{catalog.StationID, catalog.UTCDate, catalog.UTCTime, "Temp 2m"})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := printListing(&buf, reg, cat); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "name: Lubbock") || !strings.Contains(lines[1], "name: Reese Center") {
		t.Errorf("stations out of sheet order:\n%s", buf.String())
	}
	if !strings.Contains(lines[0], "data_loaded: false") {
		t.Errorf("listing should not load data: %q", lines[0])
	}
	if lines[2] != "column Temp 2m [F]" {
		t.Errorf("column line = %q", lines[2])
	}
}
