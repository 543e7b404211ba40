package plot

import (
	"github.com/tidwall/murmur3"
)

// ArtistID identifies a pickable artist (legend glyph or series) on a figure.
// IDs are unique for the life of the figure, so a pick that refers to an
// artist from an earlier draw never matches a live one.
type ArtistID uint32

type artistIDs struct {
	generation uint64
	live       map[ArtistID]struct{}
	retired    map[ArtistID]struct{}
}

func (s *artistIDs) next(path string) ArtistID {
	if s.live == nil {
		s.live = make(map[ArtistID]struct{})
		s.retired = make(map[ArtistID]struct{})
	}
	s.generation++
	g := s.generation
	key := []byte(path)
	key = append(key, byte(0xff&g), byte(0xff&(g>>8)), byte(0xff&(g>>16)), byte(0xff&(g>>24)))
	key = append(key, byte(0xff&(g>>32)), byte(0xff&(g>>40)), byte(0xff&(g>>48)), byte(0xff&(g>>56)))
	for {
		id := ArtistID(murmur3.Sum32Bytes(key))
		if s.free(id) {
			s.live[id] = struct{}{}
			return id
		}
		key = append(key, 0xff)
	}
}

func (s *artistIDs) free(id ArtistID) bool {
	if id == 0 {
		return false
	}
	if _, taken := s.live[id]; taken {
		return false
	}
	_, used := s.retired[id]
	return !used
}

// release retires id. A retired id is never handed out again.
func (s *artistIDs) release(id ArtistID) {
	if _, ok := s.live[id]; !ok {
		return
	}
	delete(s.live, id)
	s.retired[id] = struct{}{}
}
