package app

import (
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"

	"wtxmeso/settings"
)

// HeaderWidget shows the figure title above the figure.
type HeaderWidget struct {
	*widget.Container

	titleLabel *widget.Text
}

func NewHeaderWidget() *HeaderWidget {
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(
			image.NewNineSliceColor(settings.PanelBackgroundColor),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.Insets{Left: int(settings.PanelPadding)}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, int(settings.AppHeaderHeight)),
		),
	)
	titleLabel := widget.NewText(
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
			}),
		),
		widget.TextOpts.Text("", settings.FontBase, settings.White),
	)
	container.AddChild(titleLabel)

	return &HeaderWidget{
		Container:  container,
		titleLabel: titleLabel,
	}
}

func (w *HeaderWidget) SetTitle(title string) {
	w.titleLabel.Label = title
}

func (w *HeaderWidget) PreferredSize() (int, int) {
	return 0, int(settings.AppHeaderHeight)
}
