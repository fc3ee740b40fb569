package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// WarpPanel is a small overlay in the top-right corner for toggling the
// warping gate and clearing saved progress with the mouse.
type WarpPanel struct {
	UI *ebitenui.UI

	OnToggleGate    func()
	OnClearProgress func()

	statusLabel *widget.Label
	warpsLabel  *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

func NewWarpPanel(onToggleGate, onClearProgress func()) *WarpPanel {
	p := &WarpPanel{
		OnToggleGate:    onToggleGate,
		OnClearProgress: onClearProgress,
	}
	p.loadFonts()
	p.buildUI()
	return p
}

func (p *WarpPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	p.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	p.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (p *WarpPanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	p.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &p.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(p.statusLabel)

	p.warpsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &p.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	panel.AddChild(p.warpsLabel)

	panel.AddChild(p.button("Toggle gate", color.RGBA{60, 60, 120, 255}, func() {
		if p.OnToggleGate != nil {
			p.OnToggleGate()
		}
	}))
	panel.AddChild(p.button("Clear save", color.RGBA{120, 50, 50, 255}, func() {
		if p.OnClearProgress != nil {
			p.OnClearProgress()
		}
	}))

	rootContainer.AddChild(panel)

	p.UI = &ebitenui.UI{Container: rootContainer}
	p.SetState(true, false, 0)
}

func (p *WarpPanel) button(label string, base color.RGBA, onClick func()) *widget.Button {
	hover := color.RGBA{base.R + 30, base.G + 30, base.B + 30, 255}
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(base),
			Hover:   image.NewNineSliceColor(hover),
			Pressed: image.NewNineSliceColor(base),
		}),
		widget.ButtonOpts.Text(label, &p.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetState refreshes the labels from the warper's trigger
func (p *WarpPanel) SetState(enabled, warping bool, warps int) {
	p.statusLabel.Label = statusText(enabled, warping)
	p.warpsLabel.Label = fmt.Sprintf("Warps: %d", warps)
}

func statusText(enabled, warping bool) string {
	gate := "Gate open"
	if !enabled {
		gate = "Gate closed"
	}
	if warping {
		return gate + " (warping)"
	}
	return gate
}
