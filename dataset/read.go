package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"wtxmeso/catalog"
)

// MaxPrecip is the largest plausible 5-minute rainfall in inches. The world
// record for one minute is 1.23 in., so larger readings are sensor faults.
const MaxPrecip = 1.5

const timestampLayout = "20060102T1504"

// ReadFile reads a headerless data file whose columns are cat's selection.
func ReadFile(path string, cat *catalog.Catalog) (*Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	defer fh.Close()
	return read(fh, path, cat)
}

// Read parses headerless CSV from r. See ReadFile.
func Read(r io.Reader, cat *catalog.Catalog) (*Frame, error) {
	return read(r, "<input>", cat)
}

func read(r io.Reader, path string, cat *catalog.Catalog) (*Frame, error) {
	names := cat.Columns()
	dateIdx, timeIdx := -1, -1
	var keep []int
	var kept []string
	for i, n := range names {
		switch n {
		case catalog.UTCDate:
			dateIdx = i
		case catalog.UTCTime:
			timeIdx = i
		}
		if !catalog.IsKey(n) {
			keep = append(keep, i)
			kept = append(kept, n)
		}
	}
	if dateIdx < 0 || timeIdx < 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoTimestamp)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(names)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	fr := NewFrame(kept)
	precip := -1
	for i, n := range kept {
		if n == "Precip" {
			precip = i
		}
	}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &ParseError{Path: path, Line: pe.Line, Err: pe.Err}
			}
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		line, _ := cr.FieldPos(0)
		ts, err := timestamp(rec[dateIdx], rec[timeIdx])
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Column: catalog.UTCDate, Err: err}
		}
		row := make([]float64, len(keep))
		for j, i := range keep {
			v, err := parseValue(rec[i])
			if err != nil {
				return nil, &ParseError{Path: path, Line: line, Column: names[i], Err: err}
			}
			row[j] = v
		}
		if precip >= 0 && row[precip] > MaxPrecip {
			row[precip] = math.NaN()
		}
		fr.Set(ts, row)
	}
	return fr, nil
}

// timestamp joins a YYYYMMDD date and an HHMM time (leading zeros optional)
// into a UTC time.
func timestamp(date, clock string) (time.Time, error) {
	d, err := strconv.ParseFloat(strings.TrimSpace(date), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", date, err)
	}
	c, err := strconv.ParseFloat(strings.TrimSpace(clock), 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q: %w", clock, err)
	}
	return time.ParseInLocation(timestampLayout, fmt.Sprintf("%dT%04d", int64(d), int64(c)), time.UTC)
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// NameFromPath infers a station name from a data file name: "LBB.csv" is
// station "LBB".
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.ReplaceAll(strings.TrimSuffix(base, filepath.Ext(base)), ".", "")
}
