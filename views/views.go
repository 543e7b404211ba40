// Package views turns view layouts into plot views over mesonet columns.
package views

import (
	"log/slog"
	"slices"
	"time"

	"wtxmeso/catalog"
	"wtxmeso/config"
	"wtxmeso/plot"
)

// Columns returns a render function drawing the primary columns on the panel
// axes and the secondary columns, if any, on a twin axes. With markers set
// every series is drawn as points.
func Columns(primary, secondary []string, markers bool) plot.RenderFunc {
	return func(ax *plot.Axes, data plot.Data, cat *catalog.Catalog) (plot.Secondary, error) {
		times := data.Times()
		if err := drawColumns(ax, primary, times, data, cat, markers); err != nil {
			return plot.NoSecondary(), err
		}
		if len(secondary) == 0 {
			return plot.NoSecondary(), nil
		}
		twin := ax.TwinX()
		if err := drawColumns(twin, secondary, times, data, cat, markers); err != nil {
			return plot.NoSecondary(), err
		}
		return plot.SecondaryOf(twin), nil
	}
}

func drawColumns(ax *plot.Axes, cols []string, times []time.Time, data plot.Data, cat *catalog.Catalog, markers bool) error {
	for _, col := range cols {
		v, err := plot.Column(data, col)
		if err != nil {
			return err
		}
		if markers {
			ax.Scatter(col, times, v)
		} else {
			ax.Plot(col, times, v)
		}
	}
	ax.SetYLabel(axisLabel(cols, cat))
	return nil
}

// axisLabel is the column label for a single column, or the shared units of
// several columns.
func axisLabel(cols []string, cat *catalog.Catalog) string {
	if len(cols) == 1 {
		return cat.Label(cols[0])
	}
	u := cat.Unit(cols[0])
	for _, c := range cols[1:] {
		if cat.Unit(c) != u {
			return ""
		}
	}
	return u
}

// Build creates one plot view per view spec.
func Build(cfg *config.ViewsConfig) ([]*plot.View, error) {
	out := make([]*plot.View, 0, len(cfg.Views))
	for _, vs := range cfg.Views {
		panels := make([]*plot.Panel, 0, len(vs.Panels))
		for _, ps := range vs.Panels {
			panels = append(panels, plot.NewPanel(Columns(ps.Primary, ps.Secondary, ps.Markers)))
		}
		v, err := plot.NewView(vs.Name, panels, gridOption(vs))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func gridOption(vs config.ViewSpec) plot.ViewOption {
	switch {
	case vs.Rows > 0 && vs.Columns > 0:
		return plot.WithGrid(vs.Rows, vs.Columns)
	case vs.Columns > 0:
		return plot.WithColumns(vs.Columns)
	default:
		return plot.WithRows(vs.Rows)
	}
}

// Restrict drops panel columns that are not in available, then panels left
// without primary columns, then views left without panels. A view that lost
// panels keeps its column count but not its row count.
func Restrict(cfg *config.ViewsConfig, available []string) *config.ViewsConfig {
	has := func(c string) bool { return slices.Contains(available, c) }
	out := &config.ViewsConfig{}
	for _, vs := range cfg.Views {
		kept := vs
		kept.Panels = nil
		for _, ps := range vs.Panels {
			p := config.PanelSpec{
				Primary:   slices.DeleteFunc(slices.Clone(ps.Primary), func(c string) bool { return !has(c) }),
				Secondary: slices.DeleteFunc(slices.Clone(ps.Secondary), func(c string) bool { return !has(c) }),
				Markers:   ps.Markers,
			}
			if len(p.Primary) == 0 {
				slog.Info("dropping panel without data", "view", vs.Name, "columns", ps.Primary)
				continue
			}
			kept.Panels = append(kept.Panels, p)
		}
		if len(kept.Panels) == 0 {
			slog.Info("dropping view without data", "view", vs.Name)
			continue
		}
		if len(kept.Panels) != len(vs.Panels) && vs.Rows > 0 && vs.Columns > 0 {
			kept.Rows = 0
		}
		out.Views = append(out.Views, kept)
	}
	return out
}
