package app

import (
	img "image"
	"math"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/exp/shiny/materialdesign/colornames"

	"wtxmeso/event"
	"wtxmeso/plot"
	"wtxmeso/settings"
)

const (
	dashLen = 3
	gapLen  = 4
)

// glyphHit is the screen area of one legend row, in canvas pixels.
type glyphHit struct {
	rect img.Rectangle
	id   plot.ArtistID
}

// FigureWidget paints the visible axes of a figure. The scene is rendered
// into an offscreen canvas that is only repainted after a redraw request;
// the crosshair is drawn on top every frame.
type FigureWidget struct {
	*widget.Container

	app *App
	fig *plot.Figure

	canvas  *ebiten.Image
	isDirty bool

	frames []axesFrame
	hits   []glyphHit

	isMouseInBounds bool
	mouse           img.Point
}

func NewFigureWidget(app *App) *FigureWidget {
	fw := &FigureWidget{app: app, isDirty: true}
	fw.Container = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.CursorMoveHandler(fw.onMouseMove),
			widget.WidgetOpts.MouseButtonPressedHandler(fw.onMousePressed),
			widget.WidgetOpts.CursorExitHandler(fw.onContainerLeave),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
	)
	return fw
}

func (fw *FigureWidget) onMouseMove(_ *widget.WidgetCursorMoveEventArgs) {
	x, y := ebiten.CursorPosition()
	fw.app.push(event.PointerMove{X: x, Y: y})
}

func (fw *FigureWidget) onContainerLeave(_ *widget.WidgetCursorExitEventArgs) {
	fw.app.push(event.PointerLeave{})
}

// onMousePressed hit-tests the legend rows and queues a pick for the glyph
// under the cursor. Presses elsewhere are not forwarded.
func (fw *FigureWidget) onMousePressed(args *widget.WidgetMouseButtonPressedEventArgs) {
	if args.Button != settings.PickButton {
		return
	}
	x, y := ebiten.CursorPosition()
	local := img.Pt(x, y).Sub(fw.GetWidget().Rect.Min)
	for _, h := range fw.hits {
		if local.In(h.rect) {
			fw.app.push(event.Pick{Artist: uint32(h.id), X: x, Y: y})
			return
		}
	}
}

func (fw *FigureWidget) hover(x, y int) {
	fw.isMouseInBounds = true
	fw.mouse = img.Pt(x, y)
}

func (fw *FigureWidget) leave() {
	fw.isMouseInBounds = false
}

func (fw *FigureWidget) Render(screen *ebiten.Image) {
	fw.Container.Render(screen)

	rect := fw.GetWidget().Rect
	if rect.Empty() || fw.fig == nil {
		return
	}
	if fw.canvas == nil || fw.canvas.Bounds().Size() != rect.Size() {
		if fw.canvas != nil {
			fw.canvas.Deallocate()
		}
		fw.canvas = ebiten.NewImage(rect.Dx(), rect.Dy())
		fw.isDirty = true
	}
	if fw.isDirty {
		fw.canvas.Clear()
		fw.renderFigure(fw.canvas)
		fw.isDirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendSourceOver
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	screen.DrawImage(fw.canvas, op)

	fw.renderCrosshair(screen, rect.Min)
}

func (fw *FigureWidget) renderFigure(dst *ebiten.Image) {
	fw.frames = fw.frames[:0]
	fw.hits = fw.hits[:0]
	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())
	for _, ax := range fw.fig.VisibleAxes() {
		if ax.IsTwin() {
			continue
		}
		f := newAxesFrame(ax, w, h)
		if f.empty() {
			continue
		}
		fw.frames = append(fw.frames, f)
		fw.renderAxes(dst, f)
	}
}

func (fw *FigureWidget) renderAxes(dst *ebiten.Image, f axesFrame) {
	font := settings.FontSM
	width, height := f.x1-f.x0, f.y1-f.y0
	vector.DrawFilledRect(dst, f.x0, f.y0, width, height, settings.AxesBackgroundColor, false)

	// value grid and primary tick labels on the left
	for _, tick := range f.ax.YTicks() {
		y := f.valueY(f.lo, f.hi, tick.Value)
		if y < f.y0 || y > f.y1 {
			continue
		}
		DrawDashedLine(dst, f.x0, y, f.x1, y, 1, dashLen, gapLen, settings.AxesGridColor, false)
		vector.StrokeLine(dst, f.x0-settings.AxesTickLength, y, f.x0, y, 1, settings.AxesFrameColor, false)
		tw, th := text.Measure(tick.Label, font, font.Metrics().VLineGap)
		x := float64(f.x0-settings.AxesTickLength) - tw - 2
		DrawText(dst, tick.Label, font, x, float64(y)-th/2, settings.AxesLabelColor)
	}

	// time grid and labels below the axes
	for _, tick := range f.ax.XTicks() {
		x := f.unixX(tick.Value)
		if x < f.x0 || x > f.x1 {
			continue
		}
		DrawDashedLine(dst, x, f.y0, x, f.y1, 1, dashLen, gapLen, settings.AxesGridColor, false)
		vector.StrokeLine(dst, x, f.y1, x, f.y1+settings.AxesTickLength, 1, settings.AxesFrameColor, false)
		tw, _ := text.Measure(tick.Label, font, font.Metrics().VLineGap)
		DrawText(dst, tick.Label, font, float64(x)-tw/2, float64(f.y1+settings.AxesTickLength), settings.AxesLabelColor)
	}

	if label := f.ax.YLabel(); label != "" {
		tw, _ := text.Measure(label, font, font.Metrics().VLineGap)
		x := f.ax.Region().X0*float64(dst.Bounds().Dx()) + float64(settings.AxesTickLength)
		DrawTextUp(dst, label, font, x, float64(f.y0+height/2)+tw/2, settings.AxesLabelColor)
	}

	clip := dst.SubImage(f.rect()).(*ebiten.Image)
	for _, s := range f.ax.Series() {
		drawSeries(clip, f, s, f.lo, f.hi)
	}
	if f.twin != nil {
		fw.renderTwin(dst, clip, f)
	}

	vector.StrokeRect(dst, f.x0, f.y0, width, height, 1, settings.AxesFrameColor, false)

	if lg := f.ax.Legend(); lg != nil {
		fw.renderLegend(dst, f, lg)
	}
}

// renderTwin draws the secondary series over the primary ones and labels
// the secondary value scale on the right edge.
func (fw *FigureWidget) renderTwin(dst, clip *ebiten.Image, f axesFrame) {
	font := settings.FontSM
	for _, tick := range f.twin.YTicks() {
		y := f.valueY(f.twinLo, f.twinHi, tick.Value)
		if y < f.y0 || y > f.y1 {
			continue
		}
		vector.StrokeLine(dst, f.x1, y, f.x1+settings.AxesTickLength, y, 1, settings.AxesFrameColor, false)
		_, th := text.Measure(tick.Label, font, font.Metrics().VLineGap)
		DrawText(dst, tick.Label, font, float64(f.x1+settings.AxesTickLength)+2, float64(y)-th/2, settings.TwinLabelColor)
	}
	if label := f.twin.YLabel(); label != "" {
		tw, th := text.Measure(label, font, font.Metrics().VLineGap)
		x := f.ax.Region().X1*float64(dst.Bounds().Dx()) - float64(settings.AxesTickLength) - th
		DrawTextUp(dst, label, font, x, float64(f.y0+(f.y1-f.y0)/2)+tw/2, settings.TwinLabelColor)
	}
	for _, s := range f.twin.Series() {
		drawSeries(clip, f, s, f.twinLo, f.twinHi)
	}
}

// drawSeries strokes a visible series. NaN values break the line.
func drawSeries(dst *ebiten.Image, f axesFrame, s *plot.Series, lo, hi float64) {
	if !s.Visible() {
		return
	}
	st := s.Style()
	width := st.Width * settings.Scale
	var px, py float32
	connected := false
	for i := range s.Len() {
		t, v := s.At(i)
		if math.IsNaN(v) {
			connected = false
			continue
		}
		x, y := f.timeX(t), f.valueY(lo, hi, v)
		switch {
		case st.Markers:
			vector.DrawFilledCircle(dst, x, y, width/2, st.Color, true)
		case connected:
			vector.StrokeLine(dst, px, py, x, y, width, st.Color, true)
		}
		px, py, connected = x, y, true
	}
}

// renderLegend draws the legend box in the top-right corner of the axes and
// records one hit rectangle per entry. Dimmed glyphs keep their place.
func (fw *FigureWidget) renderLegend(dst *ebiten.Image, f axesFrame, lg *plot.Legend) {
	entries := lg.Entries()
	if len(entries) == 0 {
		return
	}
	font := settings.FontSM
	pad := settings.LegendPadding
	var labelW, labelH float64
	for _, e := range entries {
		w, h := text.Measure(e.Glyph().Label(), font, font.Metrics().VLineGap)
		labelW, labelH = max(labelW, w), max(labelH, h)
	}
	rowH := float32(labelH) + settings.LegendRowSpacing
	boxW := 3*pad + settings.LegendGlyphWidth + float32(labelW)
	boxH := 2*pad + rowH*float32(len(entries)) - settings.LegendRowSpacing
	bx := f.x1 - boxW - pad
	by := f.y0 + pad

	vector.DrawFilledRect(dst, bx, by, boxW, boxH, settings.LegendBackgroundColor, false)
	vector.StrokeRect(dst, bx, by, boxW, boxH, 1, settings.LegendBorderColor, false)

	for i, e := range entries {
		g := e.Glyph()
		st := g.Style()
		y := by + pad + float32(i)*rowH
		mid := y + float32(labelH)/2
		gx := bx + pad
		c := Fade(st.Color, g.Alpha())
		if st.Markers {
			vector.DrawFilledCircle(dst, gx+settings.LegendGlyphWidth/2, mid, st.Width*settings.Scale/2, c, true)
		} else {
			vector.StrokeLine(dst, gx, mid, gx+settings.LegendGlyphWidth, mid, st.Width*settings.Scale, c, true)
		}
		tx := float64(gx + settings.LegendGlyphWidth + pad)
		DrawText(dst, g.Label(), font, tx, float64(y), Fade(settings.LegendTextColor, g.Alpha()))

		fw.hits = append(fw.hits, glyphHit{
			rect: img.Rect(int(bx), int(y), int(bx+boxW), int(y+rowH)),
			id:   g.ID(),
		})
	}
}

// renderCrosshair draws the hover lines and the time and value readouts of
// the axes under the cursor.
func (fw *FigureWidget) renderCrosshair(screen *ebiten.Image, origin img.Point) {
	if !fw.isMouseInBounds {
		return
	}
	local := fw.mouse.Sub(origin)
	mx, my := float32(local.X), float32(local.Y)
	var f *axesFrame
	for i := range fw.frames {
		if fw.frames[i].contains(mx, my) {
			f = &fw.frames[i]
			break
		}
	}
	if f == nil || !f.hasTime {
		return
	}
	ox, oy := float32(origin.X), float32(origin.Y)
	sx, sy := mx+ox, my+oy
	vector.StrokeLine(screen, f.x0+ox, sy, f.x1+ox, sy, 1, settings.CrossHairColor, false)
	vector.StrokeLine(screen, sx, f.y0+oy, sx, f.y1+oy, 1, settings.CrossHairColor, false)

	t := f.timeAt(mx).UTC().Format("2006-01-02 15:04")
	tw, _ := text.Measure(t, settings.FontSM, settings.FontSM.Metrics().VLineGap)
	drawReadout(screen, t, float64(sx)-tw/2, float64(f.y1+oy))

	v := plot.FormatTick(f.valueAt(f.lo, f.hi, my))
	vw, vh := text.Measure(v, settings.FontSM, settings.FontSM.Metrics().VLineGap)
	pad := float64(settings.CrossHairLabelPadding)
	drawReadout(screen, v, float64(f.x0+ox)-vw-2*pad, float64(sy)-vh/2)

	if f.twin != nil {
		tv := plot.FormatTick(f.valueAt(f.twinLo, f.twinHi, my))
		drawReadout(screen, tv, float64(f.x1+ox), float64(sy)-vh/2)
	}
}

func drawReadout(screen *ebiten.Image, label string, x, y float64) {
	font := settings.FontSM
	pad := float64(settings.CrossHairLabelPadding)
	w, h := text.Measure(label, font, font.Metrics().VLineGap)
	vector.DrawFilledRect(screen,
		float32(x), float32(y),
		float32(w+2*pad), float32(h),
		settings.CrossHairLabelColor, false)
	DrawText(screen, label, font, x+pad, y, colornames.Black)
}
