package app

import (
	"errors"
	"log/slog"
	"math"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"wtxmeso/event"
	"wtxmeso/pkg/ring"
	"wtxmeso/plot"
	"wtxmeso/settings"
)

const inputQueueSize = 64

var errNotFocused = errors.New("window is not focused")

// App is the host window of a figure. It implements ebiten.Game and
// plot.Surface. Input is queued in arrival order and dispatched to the
// subscribed listeners from Update.
type App struct {
	ui *ebitenui.UI

	header *HeaderWidget
	figure *FigureWidget
	status *StatusBarWidget

	listeners []plot.Listener
	queue     *ring.Buffer[any]
	keys      []ebiten.Key

	// runs once on the first Update, when the window exists
	ready func() error
}

func New() *App {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Spacing(0, 0),
			widget.GridLayoutOpts.Columns(1),
			widget.GridLayoutOpts.Stretch(
				[]bool{true, true, true},
				[]bool{false, true, false}),
		)),
	)
	content := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.BackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	app := &App{
		ui: &ebitenui.UI{
			Container: root,
		},
		queue: ring.NewBuffer[any](inputQueueSize),
	}
	app.header = NewHeaderWidget()
	app.status = NewStatusBarWidget()
	app.figure = NewFigureWidget(app)
	content.AddChild(app.figure)

	root.AddChild(app.header, content, app.status)

	return app
}

// SetFigure sets the figure painted by the window.
func (app *App) SetFigure(fig *plot.Figure) {
	app.figure.fig = fig
	app.figure.isDirty = true
}

// SetHelp sets the key help shown in the status bar.
func (app *App) SetHelp(line string) {
	app.status.helpLabel.Label = line
}

// OnReady registers fn to run on the first frame. An error from fn ends the
// run loop.
func (app *App) OnReady(fn func() error) {
	app.ready = fn
}

func (app *App) RequestRedraw() {
	app.figure.isDirty = true
}

func (app *App) SetTitle(title string) {
	app.header.SetTitle(title)
	ebiten.SetWindowTitle(title)
}

// Raise restores a minimized window. Ebiten cannot steal focus, so an
// unfocused window is reported as an error.
func (app *App) Raise() error {
	if ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	if !ebiten.IsFocused() {
		return errNotFocused
	}
	return nil
}

func (app *App) MeasureText(s string) (float64, float64) {
	font := settings.FontSM
	return text.Measure(s, font, font.Metrics().VLineGap)
}

func (app *App) Subscribe(l plot.Listener) {
	app.listeners = append(app.listeners, l)
}

func (app *App) push(ev any) {
	if app.queue.Push(ev) {
		slog.Warn("input queue full, dropped oldest event")
	}
}

func (app *App) Draw(screen *ebiten.Image) {
	app.ui.Draw(screen)
}

func (app *App) Update() error {
	if app.ready != nil {
		fn := app.ready
		app.ready = nil
		if err := fn(); err != nil {
			return err
		}
	}

	app.keys = inpututil.AppendJustPressedKeys(app.keys[:0])
	for _, k := range app.keys {
		if k == ebiten.KeyEscape {
			return ebiten.Termination
		}
		app.push(event.NewKey(keyName(k)))
	}

	app.ui.Update()

	return app.queue.Drain(app.dispatch)
}

func (app *App) dispatch(ev any) error {
	switch ev := ev.(type) {
	case event.Key:
		for _, l := range app.listeners {
			if err := l.HandleKey(ev); err != nil {
				return err
			}
		}
	case event.Pick:
		for _, l := range app.listeners {
			if err := l.HandlePick(ev); err != nil {
				return err
			}
		}
	case event.PointerMove:
		app.figure.hover(ev.X, ev.Y)
	case event.PointerLeave:
		app.figure.leave()
	}
	return nil
}

// keyName turns an ebiten key into its symbol: KeyArrowRight is "Right".
func keyName(k ebiten.Key) string {
	return strings.TrimPrefix(k.String(), "Arrow")
}

func (app *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	panic("wtxmeso viewer running with an unsupported Ebiten Engine version")
}

func (app *App) LayoutF(logicWidth, logicHeight float64) (float64, float64) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	canvasWidth := math.Ceil(logicWidth * scale)
	canvasHeight := math.Ceil(logicHeight * scale)
	return canvasWidth, canvasHeight
}
