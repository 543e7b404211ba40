package reader

import (
	"log/slog"

	"github.com/anthdm/hollywood/actor"

	act "wtxmeso/actor"
	"wtxmeso/catalog"
	"wtxmeso/dataset"
)

// Reader parses one data file on request.
type Reader struct {
	path string
	name string
	cat  *catalog.Catalog
}

func New(path string, cat *catalog.Catalog) actor.Producer {
	return func() actor.Receiver {
		return &Reader{
			path: path,
			name: dataset.NameFromPath(path),
			cat:  cat,
		}
	}
}

func (r *Reader) Receive(c *actor.Context) {
	switch c.Message().(type) {
	case actor.Started:
		slog.Debug("reader started", "pid", c.PID(), "path", r.path)
	case actor.Stopped:
		slog.Debug("reader stopped", "pid", c.PID())
	case act.ReadFile:
		fr, err := dataset.ReadFile(r.path, r.cat)
		if err == nil {
			slog.Debug("read data file", "path", r.path, "station", r.name, "rows", fr.Len())
		}
		c.Respond(act.FileRead{
			Path:  r.path,
			Name:  r.name,
			Frame: fr,
			Err:   err,
		})
	}
}
