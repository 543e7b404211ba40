package station

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Column headers of the station sheet. "Prevoius IDs" is spelled the way
// the mesonet export spells it.
const (
	colLocation    = "Location"
	colArea        = "Area"
	colLat         = "Lat-decimal"
	colLon         = "Long.-decimal"
	colElevation   = "Elevation"
	colID          = "ID"
	colLoggerID    = "Logger ID"
	colPrevIDs     = "Prevoius IDs"
	colPrevLat     = "Prev. Lat-decimals"
	colPrevLon     = "Prev. Lon-decimals"
	colRelocations = "Dates of Relocation (UTC YYYYMMDD)"
)

var required = []string{colLocation, colArea, colLat, colLon, colElevation, colID, colLoggerID}

// Registry keeps stations in sheet order and by ID.
type Registry struct {
	stations []*Station
	byID     map[string]*Station
}

func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Station)}
}

// Add registers s. A later station with the same ID replaces the earlier in
// lookups but both stay listed.
func (r *Registry) Add(s *Station) {
	r.stations = append(r.stations, s)
	r.byID[s.ID] = s
}

func (r *Registry) Get(id string) (*Station, bool) {
	s, ok := r.byID[id]
	return s, ok
}

func (r *Registry) Stations() []*Station { return r.stations }
func (r *Registry) Len() int             { return len(r.stations) }

// ReadWorkbook loads the station sheet (the first sheet) of an xlsx file.
func ReadWorkbook(path string) (*Registry, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stations: %w", err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("stations: open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("stations: %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("stations: read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("stations: sheet %q is empty", sheets[0])
	}

	header := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		header[strings.TrimSpace(h)] = i
	}
	for _, h := range required {
		if _, ok := header[h]; !ok {
			return nil, fmt.Errorf("stations: sheet %q has no %q column", sheets[0], h)
		}
	}

	reg := NewRegistry()
	for i, row := range rows[1:] {
		rec := record{header: header, row: row}
		if rec.empty() {
			continue
		}
		s, err := rec.station()
		if err != nil {
			return nil, fmt.Errorf("stations: row %d: %w", i+2, err)
		}
		reg.Add(s)
	}
	return reg, nil
}

type record struct {
	header map[string]int
	row    []string
}

func (r record) get(col string) string {
	i, ok := r.header[col]
	if !ok || i >= len(r.row) {
		return ""
	}
	return strings.TrimSpace(r.row[i])
}

func (r record) empty() bool {
	for _, c := range r.row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func (r record) float(col string) (float64, error) {
	v, err := strconv.ParseFloat(r.get(col), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", col, err)
	}
	return v, nil
}

func (r record) station() (*Station, error) {
	area, err := ParseArea(r.get(colArea))
	if err != nil {
		return nil, err
	}
	lat, err := r.float(colLat)
	if err != nil {
		return nil, err
	}
	lon, err := r.float(colLon)
	if err != nil {
		return nil, err
	}
	elev, err := parseElevation(r.get(colElevation))
	if err != nil {
		return nil, err
	}
	logger, err := r.float(colLoggerID)
	if err != nil {
		return nil, err
	}
	relocations, err := parseRelocations(r.get(colPrevIDs), r.get(colPrevLat), r.get(colPrevLon), r.get(colRelocations))
	if err != nil {
		return nil, err
	}
	raw := r.get(colID)
	return &Station{
		Name:        r.get(colLocation),
		City:        area.City,
		County:      area.County,
		State:       area.State,
		Latitude:    lat,
		Longitude:   lon,
		Elevation:   elev,
		RawID:       raw,
		ID:          StripDigits(raw),
		LoggerID:    int(logger),
		Relocations: relocations,
	}, nil
}

// parseElevation reads cells like "3250 ft." by dropping the 4-character
// unit suffix.
func parseElevation(s string) (float64, error) {
	if len(s) <= 4 {
		return 0, fmt.Errorf("%s: %q too short", colElevation, s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s[:len(s)-4]), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", colElevation, err)
	}
	return v, nil
}

// parseRelocations zips the "//"-separated previous IDs, coordinates and
// dates. The shortest list bounds the result.
func parseRelocations(ids, lats, lons, dates string) ([]Relocation, error) {
	if ids == "" {
		return nil, nil
	}
	idv := strings.Split(ids, "//")
	latv := strings.Split(lats, "//")
	lonv := strings.Split(lons, "//")
	datev := strings.Split(dates, "//")
	n := min(len(idv), len(latv), len(lonv), len(datev))
	out := make([]Relocation, 0, n)
	for i := range n {
		lat, err := strconv.ParseFloat(strings.TrimSpace(latv[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", colPrevLat, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(lonv[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", colPrevLon, err)
		}
		d, err := parseDate(strings.TrimSpace(datev[i]))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", colRelocations, err)
		}
		out = append(out, Relocation{ID: strings.TrimSpace(idv[i]), Latitude: lat, Longitude: lon, Date: d})
	}
	return out, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"20060102", time.DateOnly} {
		if d, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return d, nil
		}
	}
	return time.Time{}, errors.New("bad date " + strconv.Quote(s))
}
