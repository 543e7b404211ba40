package plot

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"

	"wtxmeso/catalog"
	"wtxmeso/event"
)

type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Previous:
		return "previous"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// FormatTitle builds the figure title for view index of count.
func FormatTitle(title, view string, index, count int) string {
	return fmt.Sprintf("%s - %s (View %d/%d)", title, view, index+1, count)
}

// InteractivePlotter switches one figure between views. Exactly one view is
// visible at a time.
type InteractivePlotter struct {
	fig     *Figure
	views   []*View
	current int
	title   string
	data    Data
	cat     *catalog.Catalog
	keys    event.KeyMap
}

// NewInteractivePlotter lays out every view on a new figure, draws the first
// one and starts listening to s.
func NewInteractivePlotter(s Surface, title string, views []*View, data Data, cat *catalog.Catalog) (*InteractivePlotter, error) {
	if len(views) == 0 {
		return nil, fmt.Errorf("%w: no views", ErrConfig)
	}
	ip := &InteractivePlotter{
		fig:   NewFigure(s),
		views: views,
		title: title,
		data:  data,
		cat:   cat,
		keys:  event.DefaultKeyMap(),
	}
	for _, v := range views {
		if err := v.layout(ip.fig); err != nil {
			return nil, err
		}
	}
	for i, v := range views {
		if i != ip.current {
			v.hide()
		}
	}
	if err := ip.drawCurrent(); err != nil {
		return nil, err
	}
	if s != nil {
		s.Subscribe(ip)
	}
	return ip, nil
}

func (ip *InteractivePlotter) Figure() *Figure      { return ip.fig }
func (ip *InteractivePlotter) Views() []*View       { return ip.views }
func (ip *InteractivePlotter) Current() int         { return ip.current }
func (ip *InteractivePlotter) CurrentView() *View   { return ip.views[ip.current] }
func (ip *InteractivePlotter) KeyMap() event.KeyMap { return ip.keys }

// Navigate moves to the next or previous view, wrapping around. When the
// new view fails to draw, the previous view is restored and the draw error
// returned.
func (ip *InteractivePlotter) Navigate(d Direction) error {
	n := len(ip.views)
	prev := ip.current
	switch d {
	case Next:
		ip.current = (ip.current + 1) % n
	case Previous:
		ip.current = (ip.current - 1 + n) % n
	default:
		return fmt.Errorf("navigate: %v", d)
	}
	ip.views[prev].hide()
	slog.Debug("navigate", "direction", d, "from", prev, "to", ip.current)
	if err := ip.drawCurrent(); err != nil {
		ip.views[ip.current].hide()
		ip.current = prev
		if rerr := ip.drawCurrent(); rerr != nil {
			slog.Debug("restore view", "view", prev, "error", rerr)
		}
		return err
	}
	return nil
}

// Show redraws the current view and raises the host window. A window that
// cannot be raised is not an error.
func (ip *InteractivePlotter) Show() error {
	if err := ip.drawCurrent(); err != nil {
		return err
	}
	if s := ip.fig.surface; s != nil {
		if err := s.Raise(); err != nil {
			slog.Debug("raise window", "error", err)
		}
	}
	ip.fig.DrawIdle()
	return nil
}

func (ip *InteractivePlotter) drawCurrent() error {
	v := ip.views[ip.current]
	if err := v.draw(ip.fig, ip.data, ip.cat); err != nil {
		return err
	}
	ip.fig.SetTitle(FormatTitle(ip.title, v.name, ip.current, len(ip.views)))
	return nil
}

// HandleKey maps navigation keys to Navigate. Other keys are ignored.
func (ip *InteractivePlotter) HandleKey(k event.Key) error {
	switch {
	case key.Matches(k, ip.keys.NextView):
		return ip.Navigate(Next)
	case key.Matches(k, ip.keys.PrevView):
		return ip.Navigate(Previous)
	}
	return nil
}

// HandlePick forwards a pick to the legend controllers of the figure.
func (ip *InteractivePlotter) HandlePick(p event.Pick) error {
	ip.fig.Pick(ArtistID(p.Artist))
	return nil
}
