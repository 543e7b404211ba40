// Package loader reads a directory of station data files in parallel, one
// reader actor per file, and attaches the frames to their stations.
package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/anthdm/hollywood/actor"

	act "wtxmeso/actor"
	"wtxmeso/actor/reader"
	"wtxmeso/catalog"
	"wtxmeso/station"
)

var ErrUnknownStation = errors.New("data file for unknown station")

// Result summarizes a load.
type Result struct {
	Files    int
	Rows     int
	Stations []string // stations that received data, in file order
}

// LoadDirectory reads every regular file in dir. Files are named after their
// station ("LBB.csv" or "LBB1.csv"); a file for a station missing from reg is an error.
// Each read must finish within timeout. Nothing is retried.
func LoadDirectory(e *actor.Engine, dir string, cat *catalog.Catalog, reg *station.Registry, timeout time.Duration) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load directory: %w", err)
	}
	var paths []string
	for _, ent := range entries {
		if ent.Type().IsRegular() {
			paths = append(paths, filepath.Join(dir, ent.Name()))
		}
	}
	slices.Sort(paths)
	return LoadFiles(e, paths, cat, reg, timeout)
}

// LoadFiles reads the given files. See LoadDirectory.
func LoadFiles(e *actor.Engine, paths []string, cat *catalog.Catalog, reg *station.Registry, timeout time.Duration) (*Result, error) {
	ids := make([]string, len(paths))
	for i, p := range paths {
		ids[i] = act.ReaderID(i, p)
		e.Spawn(reader.New(p, cat), act.ReaderKind, actor.WithID(ids[i]))
	}
	defer func() {
		for _, id := range ids {
			e.Poison(act.GetReaderPID(e, id))
		}
	}()

	responses := make([]*actor.Response, len(ids))
	for i, id := range ids {
		responses[i] = e.Request(act.GetReaderPID(e, id), act.ReadFile{}, timeout)
	}

	res := &Result{}
	for i, resp := range responses {
		v, err := resp.Result()
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", paths[i], err)
		}
		fr, ok := v.(act.FileRead)
		if !ok {
			return nil, fmt.Errorf("load %s: unexpected response %T", paths[i], v)
		}
		if fr.Err != nil {
			return nil, fr.Err
		}
		st, ok := reg.Get(fr.Name)
		if !ok {
			st, ok = reg.Get(station.StripDigits(fr.Name))
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q (%s)", ErrUnknownStation, fr.Name, fr.Path)
		}
		st.AddData(fr.Frame)
		res.Files++
		res.Rows += fr.Frame.Len()
		if !slices.Contains(res.Stations, st.ID) {
			res.Stations = append(res.Stations, st.ID)
		}
		slog.Info("loaded data file", "path", fr.Path, "station", st.ID, "rows", fr.Frame.Len())
	}
	return res, nil
}
