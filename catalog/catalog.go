// Package catalog holds the column header of mesonet data files: column
// names, units and which selection each column belongs to.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/valyala/fastjson"
)

//go:embed header.json
var headerJSON []byte

const (
	StationID = "Station ID"
	UTCDate   = "UTC Date"
	UTCTime   = "UTC Time"
)

var ErrInvalidSelection = errors.New("invalid column selection")

type Inclusion string

const (
	All          Inclusion = "all"
	Atmospheric  Inclusion = "atmospheric"
	Agricultural Inclusion = "agricultural"
)

type Column struct {
	ID        int
	Name      string
	Units     string
	Inclusion Inclusion
}

// Catalog is an immutable, ordered column header plus a selection of those
// columns. Selecting returns a new Catalog.
type Catalog struct {
	columns  []Column
	byName   map[string]int
	selected []string
}

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Parse(headerJSON)
})

// Default returns the catalog of the embedded header with every column
// selected.
func Default() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(fmt.Sprintf("embedded header: %v", err))
	}
	return c
}

// Parse reads a header document of the form
// {"columns":[{"id":0,"column":"Station ID","units":"","inclusion":"all"}]}.
func Parse(b []byte) (*Catalog, error) {
	parser := fastjson.Parser{}
	v, err := parser.ParseBytes(b)
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}
	items := v.GetArray("columns")
	if len(items) == 0 {
		return nil, errors.New("parse header: no columns")
	}
	c := &Catalog{
		columns: make([]Column, 0, len(items)),
		byName:  make(map[string]int, len(items)),
	}
	for i, item := range items {
		col := Column{
			ID:        item.GetInt("id"),
			Name:      string(item.GetStringBytes("column")),
			Units:     string(item.GetStringBytes("units")),
			Inclusion: Inclusion(item.GetStringBytes("inclusion")),
		}
		if col.Name == "" {
			return nil, fmt.Errorf("parse header: column %d has no name", i)
		}
		if _, dup := c.byName[col.Name]; dup {
			return nil, fmt.Errorf("parse header: duplicate column %q", col.Name)
		}
		switch col.Inclusion {
		case All, Atmospheric, Agricultural:
		default:
			return nil, fmt.Errorf("parse header: column %q: unknown inclusion %q", col.Name, col.Inclusion)
		}
		c.byName[col.Name] = len(c.columns)
		c.columns = append(c.columns, col)
		c.selected = append(c.selected, col.Name)
	}
	return c, nil
}

// Select picks a named column set: "all", "atmospheric" or "agricultural".
// Atmospheric and agricultural sets include the columns marked "all".
func (c *Catalog) Select(set string) (*Catalog, error) {
	want := Inclusion(strings.ToLower(set))
	switch want {
	case All, Atmospheric, Agricultural:
	default:
		return nil, fmt.Errorf("%w: columns=%s", ErrInvalidSelection, set)
	}
	var names []string
	for _, col := range c.columns {
		if want == All || col.Inclusion == All || col.Inclusion == want {
			names = append(names, col.Name)
		}
	}
	return c.with(names), nil
}

// SelectColumns picks columns by name, in the given order.
func (c *Catalog) SelectColumns(names []string) (*Catalog, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty column list", ErrInvalidSelection)
	}
	for _, n := range names {
		if _, ok := c.byName[n]; !ok {
			return nil, fmt.Errorf("%w: unknown column %q", ErrInvalidSelection, n)
		}
	}
	return c.with(slices.Clone(names)), nil
}

// SelectIDs picks columns by header ID, in the given order.
func (c *Catalog) SelectIDs(ids []int) (*Catalog, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: empty column list", ErrInvalidSelection)
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		i := slices.IndexFunc(c.columns, func(col Column) bool { return col.ID == id })
		if i < 0 {
			return nil, fmt.Errorf("%w: unknown column id %d", ErrInvalidSelection, id)
		}
		names = append(names, c.columns[i].Name)
	}
	return c.with(names), nil
}

func (c *Catalog) with(selected []string) *Catalog {
	return &Catalog{columns: c.columns, byName: c.byName, selected: selected}
}

// Columns returns the selected column names in file order.
func (c *Catalog) Columns() []string {
	return slices.Clone(c.selected)
}

// Lookup returns the header entry of a column, selected or not. A nil
// catalog knows no columns.
func (c *Catalog) Lookup(name string) (Column, bool) {
	if c == nil {
		return Column{}, false
	}
	i, ok := c.byName[name]
	if !ok {
		return Column{}, false
	}
	return c.columns[i], true
}

// Unit returns the units of a column, or "" if unknown.
func (c *Catalog) Unit(name string) string {
	col, _ := c.Lookup(name)
	return col.Units
}

// Label renders a column name with its units, e.g. "Temp 2m (F)".
func (c *Catalog) Label(name string) string {
	if u := c.Unit(name); u != "" {
		return name + " (" + u + ")"
	}
	return name
}

// Units maps every selected measurement column to its units. The date, time
// and station columns are not measurements and are left out.
func (c *Catalog) Units() map[string]string {
	units := make(map[string]string, len(c.selected))
	for _, n := range c.selected {
		if IsKey(n) {
			continue
		}
		units[n] = c.Unit(n)
	}
	return units
}

// IsKey reports whether name is one of the row key columns that are dropped
// once a timestamp has been built.
func IsKey(name string) bool {
	return name == StationID || name == UTCDate || name == UTCTime
}
