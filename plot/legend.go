package plot

const (
	FullAlpha   = 1.0
	DimmedAlpha = 0.2
)

// Glyph is the clickable swatch of one legend entry.
type Glyph struct {
	id    ArtistID
	label string
	style Style
	alpha float64
}

func (g *Glyph) ID() ArtistID   { return g.id }
func (g *Glyph) Label() string  { return g.label }
func (g *Glyph) Style() Style   { return g.style }
func (g *Glyph) Alpha() float64 { return g.alpha }

// LegendEntry pairs a glyph with the series it stands for. A primary series
// and a secondary series sharing a label belong to the same entry.
type LegendEntry struct {
	glyph  *Glyph
	series []*Series
}

func (e *LegendEntry) Glyph() *Glyph     { return e.glyph }
func (e *LegendEntry) Series() []*Series { return e.series }

// Legend is the legend box of one panel. It is drawn on the panel's primary
// axes and lists the secondary axes' series too.
type Legend struct {
	axes    *Axes
	entries []*LegendEntry
}

func (l *Legend) Axes() *Axes             { return l.axes }
func (l *Legend) Entries() []*LegendEntry { return l.entries }

// Labels returns the entry labels in display order.
func (l *Legend) Labels() []string {
	labels := make([]string, len(l.entries))
	for i, e := range l.entries {
		labels[i] = e.glyph.label
	}
	return labels
}

// LegendController owns the glyph to series mapping of one drawn panel. A new
// controller is attached on every draw and the old one detached, so a pick
// can never reach series from an earlier draw.
type LegendController struct {
	fig     *Figure
	legend  *Legend
	byGlyph map[ArtistID]*LegendEntry
}

func NewLegendController(fig *Figure) *LegendController {
	return &LegendController{fig: fig}
}

func (lc *LegendController) Legend() *Legend { return lc.legend }

// Attach builds the legend for p. Labeled series are collected from the
// primary axes and then the secondary axes, in draw order. A panel without
// labeled series gets no legend and the controller stays disconnected.
func (lc *LegendController) Attach(p *Panel) {
	ax := p.Axes()
	if ax == nil {
		return
	}
	var labeled []*Series
	for _, s := range ax.series {
		if s.Labeled() {
			labeled = append(labeled, s)
		}
	}
	if sec, ok := p.Secondary().Get(); ok {
		for _, s := range sec.series {
			if s.Labeled() {
				labeled = append(labeled, s)
			}
		}
	}
	if len(labeled) == 0 {
		return
	}

	lg := &Legend{axes: ax}
	lc.byGlyph = make(map[ArtistID]*LegendEntry)
	byLabel := make(map[string]*LegendEntry)
	for _, s := range labeled {
		if e, ok := byLabel[s.label]; ok {
			e.series = append(e.series, s)
			continue
		}
		e := &LegendEntry{
			glyph: &Glyph{
				id:    lc.fig.ids.next(ax.path() + "/legend/" + s.label),
				label: s.label,
				style: s.style,
				alpha: FullAlpha,
			},
			series: []*Series{s},
		}
		byLabel[s.label] = e
		lg.entries = append(lg.entries, e)
		lc.byGlyph[e.glyph.id] = e
	}
	lc.legend = lg
	ax.legend = lg
	lc.fig.connect(lc)
}

// Pick toggles the entry whose glyph is id. Unknown ids are ignored and
// reported as false.
func (lc *LegendController) Pick(id ArtistID) bool {
	e, ok := lc.byGlyph[id]
	if !ok {
		return false
	}
	visible := !e.series[0].visible
	for _, s := range e.series {
		s.visible = visible
	}
	if visible {
		e.glyph.alpha = FullAlpha
	} else {
		e.glyph.alpha = DimmedAlpha
	}
	lc.fig.DrawIdle()
	return true
}

// Detach disconnects the controller from the figure and frees its glyph ids.
func (lc *LegendController) Detach() {
	if lc.byGlyph == nil {
		return
	}
	lc.fig.disconnect(lc)
	for id := range lc.byGlyph {
		lc.fig.ids.release(id)
	}
	if lc.legend != nil && lc.legend.axes.legend == lc.legend {
		lc.legend.axes.legend = nil
	}
	lc.byGlyph = nil
	lc.legend = nil
}
