package settings

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/exp/shiny/materialdesign/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	Scale = float32(ebiten.Monitor().DeviceScaleFactor())

	// Colors
	Black = color.RGBA{12, 14, 17, 255}
	White = color.RGBA{254, 255, 255, 255}

	// APP
	BackgroundColor  = Black
	BackgroundColor2 = color.RGBA{23, 26, 32, 255}

	// App header
	AppHeaderHeight = 40 * Scale

	// App footer
	AppFooterHeight = 24 * Scale

	PanelBackgroundColor = BackgroundColor2
	PanelDividerColor    = color.RGBA{52, 59, 71, 255}
	PanelPadding         = 12 * Scale

	// Figure
	AxesBackgroundColor = color.RGBA{18, 21, 26, 255}
	AxesFrameColor      = PanelDividerColor
	AxesGridColor       = color.RGBA{42, 49, 57, 255}
	AxesTickLength      = 4 * Scale
	AxesLabelColor      = colornames.BlueGrey200
	TwinLabelColor      = colornames.BlueGrey300

	CrossHairColor        = colornames.BlueGrey800
	CrossHairLabelColor   = color.RGBA{45, 189, 133, 255}
	CrossHairLabelPadding = 4 * Scale

	LegendBackgroundColor = color.RGBA{23, 26, 32, 220}
	LegendBorderColor     = PanelDividerColor
	LegendTextColor       = colornames.White
	LegendPadding         = 6 * Scale
	LegendGlyphWidth      = 18 * Scale
	LegendRowSpacing      = 4 * Scale

	FontSM   text.Face
	FontBase text.Face

	// Buttons
	PickButton = ebiten.MouseButtonLeft

	ColorPrimary = colornames.Orange300
)

func init() {
	FontSM, _ = LoadFont(12)
	FontBase, _ = LoadFont(14)
}

// LoadFont returns a Go Regular face of size points scaled to the monitor.
func LoadFont(size float64) (text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}

	return &text.GoTextFace{
		Source: s,
		Size:   size * ebiten.Monitor().DeviceScaleFactor(),
	}, nil
}
