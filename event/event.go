package event

import (
	"fmt"
	"strings"
)

// Key is a key press delivered by the host window. Name holds the key symbol
// ("right", "left", "escape", "a"); symbols compare case-insensitively.
type Key struct {
	Name string
}

func (k Key) String() string { return strings.ToLower(k.Name) }

func NewKey(name string) Key {
	return Key{Name: name}
}

// Pick reports a pointer press that hit a pickable artist. Artist is the
// identity of the artist that was hit, never a coordinate.
type Pick struct {
	Artist uint32
	X      int
	Y      int
}

func (p Pick) String() string {
	return fmt.Sprintf("pick %08x at %d,%d", p.Artist, p.X, p.Y)
}

// PointerMove is a cursor move inside the figure, in screen pixels.
type PointerMove struct {
	X int
	Y int
}

// PointerLeave is sent when the cursor leaves the figure.
type PointerLeave struct{}
