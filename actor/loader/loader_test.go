package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/anthdm/hollywood/actor"

	"wtxmeso/catalog"
	"wtxmeso/station"
)

func setup(t *testing.T, files map[string]string) (*actor.Engine, string, *catalog.Catalog, *station.Registry) {
	t.Helper()
	engine, err := actor.NewEngine(actor.NewEngineConfig())
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cat, err := catalog.Default().SelectColumns([]string{catalog.StationID, catalog.UTCDate, catalog.UTCTime, "Temp 2m"})
	if err != nil {
		t.Fatal(err)
	}
	reg := station.NewRegistry()
	reg.Add(&station.Station{Name: "Reese Center", RawID: "REES1", ID: "REES"})
	reg.Add(&station.Station{Name: "Lubbock", RawID: "LBB", ID: "LBB"})
	return engine, dir, cat, reg
}

func TestLoadDirectory(t *testing.T) {
	engine, dir, cat, reg := setup(t, map[string]string{
		"REES.csv":  "REES1,20240601,0,70.1\nREES1,20240601,5,70.4\n",
		"LBB1.csv":  "LBB1,20240601,0,72.0\n",
		"REES.2023": "REES1,20230601,0,65.0\n",
	})
	if err := os.Mkdir(filepath.Join(dir, "archive"), 0o755); err != nil {
		t.Fatal(err)
	}

	res, err := LoadDirectory(engine, dir, cat, reg, 5*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if res.Files != 3 || res.Rows != 4 {
		t.Fatalf("result = %+v", res)
	}
	rees, _ := reg.Get("REES")
	if rees.Len() != 3 || rees.Frame().Len() != 3 {
		t.Fatalf("REES rows = %d", rees.Len())
	}
	lbb, _ := reg.Get("LBB")
	if lbb.Len() != 1 {
		t.Fatalf("LBB rows = %d", lbb.Len())
	}
}

func TestLoadUnknownStation(t *testing.T) {
	engine, dir, cat, reg := setup(t, map[string]string{
		"ABER.csv": "ABER,20240601,0,70.1\n",
	})
	_, err := LoadDirectory(engine, dir, cat, reg, 5*time.Second)
	if !errors.Is(err, ErrUnknownStation) {
		t.Fatalf("err = %v, want ErrUnknownStation", err)
	}
}

func TestLoadParseError(t *testing.T) {
	engine, dir, cat, reg := setup(t, map[string]string{
		"REES.csv": "REES1,20240601,0,warm\n",
	})
	if _, err := LoadDirectory(engine, dir, cat, reg, 5*time.Second); err == nil {
		t.Fatal("expected parse error")
	}
	if rees, _ := reg.Get("REES"); rees.HasData() {
		t.Fatal("failed load attached data")
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	engine, dir, cat, reg := setup(t, nil)
	if _, err := LoadDirectory(engine, filepath.Join(dir, "nope"), cat, reg, time.Second); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}
