// Package main is the West Texas Mesonet viewer: it loads station metadata
// and data files, then opens one window cycling through the configured views.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/anthdm/hollywood/actor"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"wtxmeso/actor/loader"
	"wtxmeso/app"
	"wtxmeso/catalog"
	"wtxmeso/config"
	"wtxmeso/plot"
	"wtxmeso/station"
	"wtxmeso/views"
)

var (
	stationsFile string
	dataDir      string
	stationID    string
	columns      string
	viewsFile    string
	list         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "viewer",
		Short: "Interactive viewer for West Texas Mesonet station data",
		Long: `viewer loads the station sheet and every data file of a directory, then
shows one station's series in a window. Arrow keys switch views; clicking a
legend entry hides or shows its series.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVar(&stationsFile, "stations", "", "Station metadata workbook (xlsx)")
	rootCmd.Flags().StringVar(&dataDir, "data", "", "Directory of station data files")
	rootCmd.Flags().StringVar(&stationID, "station", "", "Station ID to show (default: first station with data)")
	rootCmd.Flags().StringVar(&columns, "columns", "", "Column selection of the data files: all, atmospheric, agricultural")
	rootCmd.Flags().StringVar(&viewsFile, "views", "", "View layout file (yaml); empty uses the built-in views")
	rootCmd.Flags().BoolVar(&list, "list", false, "List stations and exit")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("viewer failed", "error", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("stations") {
		cfg.StationsFile = stationsFile
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("columns") {
		cfg.Columns = columns
	}
	if flags.Changed("views") {
		cfg.ViewsFile = viewsFile
	}

	if err := setupLogger(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}

	cat, err := catalog.Default().Select(cfg.Columns)
	if err != nil {
		return err
	}
	reg, err := station.ReadWorkbook(cfg.StationsFile)
	if err != nil {
		return err
	}
	slog.Info("read station sheet", "path", cfg.StationsFile, "stations", reg.Len())

	if list {
		return printListing(cmd.OutOrStdout(), reg, cat)
	}

	engine, err := actor.NewEngine(actor.NewEngineConfig())
	if err != nil {
		return err
	}
	res, err := loader.LoadDirectory(engine, cfg.DataDir, cat, reg, cfg.LoadTimeout())
	if err != nil {
		return err
	}
	slog.Info("loaded data", "dir", cfg.DataDir, "files", res.Files, "rows", res.Rows)

	st, err := pickStation(reg, stationID)
	if err != nil {
		return err
	}
	frame := st.Frame()

	viewsCfg, err := config.LoadViews(cfg.ViewsFile)
	if err != nil {
		return err
	}
	viewsCfg = views.Restrict(viewsCfg, frame.Columns())
	vs, err := views.Build(viewsCfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	a := app.New()
	title := fmt.Sprintf("%s (%s)", st.Name, st.ID)
	ip, err := plot.NewInteractivePlotter(a, title, vs, frame, cat)
	if err != nil {
		return err
	}
	a.SetFigure(ip.Figure())
	a.SetHelp(ip.KeyMap().HelpLine())
	a.OnReady(ip.Show)

	return ebiten.RunGame(a)
}

// printListing writes the station sheet followed by the selected measurement
// columns and their units. No data file is read.
func printListing(w io.Writer, reg *station.Registry, cat *catalog.Catalog) error {
	for _, s := range reg.Stations() {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	units := cat.Units()
	for _, name := range cat.Columns() {
		u, ok := units[name]
		if !ok {
			continue
		}
		if u == "" {
			u = "-"
		}
		if _, err := fmt.Fprintf(w, "column %s [%s]\n", name, u); err != nil {
			return err
		}
	}
	return nil
}

// pickStation returns the station with the given ID, or the first station
// with data when id is empty.
func pickStation(reg *station.Registry, id string) (*station.Station, error) {
	if id != "" {
		st, ok := reg.Get(id)
		if !ok {
			st, ok = reg.Get(station.StripDigits(id))
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q", loader.ErrUnknownStation, id)
		}
		if !st.HasData() {
			return nil, fmt.Errorf("station %s has no data", st.ID)
		}
		return st, nil
	}
	for _, st := range reg.Stations() {
		if st.HasData() {
			return st, nil
		}
	}
	return nil, errors.New("no station has data")
}

func setupLogger(level, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}

	logWriter := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    25,
		MaxBackups: 10,
		MaxAge:     14,
		Compress:   true,
	}

	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	h := slog.NewTextHandler(io.MultiWriter(os.Stdout, logWriter), &slog.HandlerOptions{Level: slogLevel})
	slog.SetDefault(slog.New(h))
	return nil
}
