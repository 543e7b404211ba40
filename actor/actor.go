package act

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/anthdm/hollywood/actor"

	"wtxmeso/dataset"
)

const ReaderKind = "reader"

// ReadFile asks a reader actor to parse its file. The reader responds with a
// FileRead.
type ReadFile struct{}

// FileRead is the response to ReadFile.
type FileRead struct {
	Path  string
	Name  string
	Frame *dataset.Frame
	Err   error
}

// ReaderID builds the actor ID of the n-th reader of a load. File names may
// contain characters that are not valid in a PID path.
func ReaderID(n int, path string) string {
	base := strings.Map(func(r rune) rune {
		if r == '/' || r == ' ' {
			return '_'
		}
		return r
	}, filepath.Base(path))
	return strconv.Itoa(n) + "-" + base
}

// GetReaderPID returns the PID a reader spawned on e with id is registered
// under.
func GetReaderPID(e *actor.Engine, id string) *actor.PID {
	return actor.NewPID(e.Address(), ReaderKind+"/"+id)
}
