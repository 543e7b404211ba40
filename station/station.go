// Package station holds mesonet station metadata and the data frames
// attached to each station.
package station

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"wtxmeso/dataset"
)

var ErrInvalidArea = errors.New("invalid station area")

// Relocation is a previous site of a station.
type Relocation struct {
	ID        string
	Latitude  float64
	Longitude float64
	Date      time.Time // UTC day the station moved away
}

type Station struct {
	Name      string
	City      string
	County    string
	State     string
	Latitude  float64 // decimal degrees, + is N
	Longitude float64 // decimal degrees, + is E
	Elevation float64 // feet
	RawID     string
	ID        string
	LoggerID  int

	Relocations []Relocation

	frames []*dataset.Frame
	rows   int
}

// StripDigits turns a raw station identifier such as "LBB1" into "LBB".
func StripDigits(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, raw)
}

// AddData appends a frame loaded for this station.
func (s *Station) AddData(f *dataset.Frame) {
	s.frames = append(s.frames, f)
	s.rows += f.Len()
}

// Len returns the number of rows added, counting duplicates across frames.
func (s *Station) Len() int { return s.rows }

func (s *Station) HasData() bool { return len(s.frames) > 0 }

// Frame concatenates every added frame. It returns nil when no data was
// added.
func (s *Station) Frame() *dataset.Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return dataset.Concat(s.frames...)
}

func (s *Station) String() string {
	return fmt.Sprintf(
		"Station(name: %s, city: %s, county: %s, state: %s, latitude: %v degrees, longitude: %v degrees, elevation: %v feet, id: %s, id_raw: %s, logger_id: %d, relocated: %t, data_loaded: %t, data_len: %d)",
		s.Name, s.City, s.County, s.State, s.Latitude, s.Longitude, s.Elevation,
		s.ID, s.RawID, s.LoggerID, len(s.Relocations) > 0, s.HasData(), s.rows,
	)
}

// Area is the parsed "Area" cell of the station sheet.
type Area struct {
	City   string
	County string
	State  string
}

// ParseArea splits an area cell. "City / County" gives both parts; a single
// part such as "Southeast Cochran County" has no city and drops the leading
// direction word. A city ending in a two-letter state code ("Clovis, NM" or
// "Clovis NM") overrides the default state of TX.
func ParseArea(s string) (Area, error) {
	if strings.TrimSpace(s) == "" {
		return Area{}, fmt.Errorf("%w: empty", ErrInvalidArea)
	}
	var a Area
	parts := strings.Split(s, "/")
	switch len(parts) {
	case 2:
		a.City = strings.TrimSpace(parts[0])
		a.County = strings.TrimSpace(parts[1])
	case 1:
		a.City = "None"
		words := strings.Split(strings.TrimSpace(parts[0]), " ")
		a.County = strings.Join(words[1:], " ")
	default:
		a.City = "Unknown"
		a.County = "Unknown"
	}
	a.State = "TX"
	if a.County == "Unknown" {
		a.State = "Unknown"
	}
	if n := len(a.City); n >= 3 && a.City[n-3] == ' ' && isUpperCode(a.City[n-2:]) {
		a.State = a.City[n-2:]
		a.City, _, _ = strings.Cut(a.City[:n-3], ",")
	}
	return a, nil
}

func isUpperCode(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
