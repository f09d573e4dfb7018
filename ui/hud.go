package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUD is the sandbox overlay: weapon slot toggles and a settings save button.
type HUD struct {
	UI *ebitenui.UI

	// OnToggleLeft and OnToggleRight swap the item in a hand and return its new label.
	OnToggleLeft  func() string
	OnToggleRight func() string
	OnSave        func()

	leftBtn     *widget.Button
	rightBtn    *widget.Button
	statusLabel *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

func NewHUD(leftLabel, rightLabel string) *HUD {
	hud := &HUD{}
	hud.loadFonts()
	hud.buildUI(leftLabel, rightLabel)
	return hud
}

func (hud *HUD) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	hud.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	hud.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (hud *HUD) buildUI(leftLabel, rightLabel string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	hud.leftBtn = hud.newButton(leftLabel, func() {
		if hud.OnToggleLeft != nil {
			hud.leftBtn.SetText(hud.OnToggleLeft())
		}
	})
	panel.AddChild(hud.leftBtn)

	hud.rightBtn = hud.newButton(rightLabel, func() {
		if hud.OnToggleRight != nil {
			hud.rightBtn.SetText(hud.OnToggleRight())
		}
	})
	panel.AddChild(hud.rightBtn)

	panel.AddChild(hud.newButton("Save", func() {
		if hud.OnSave != nil {
			hud.OnSave()
		}
	}))

	hud.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &hud.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	panel.AddChild(hud.statusLabel)

	rootContainer.AddChild(panel)

	hud.UI = &ebitenui.UI{Container: rootContainer}
}

func (hud *HUD) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &hud.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 230, 180, 255},
			Pressed: color.RGBA{200, 180, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (hud *HUD) SetStatus(msg string) {
	if hud.statusLabel != nil {
		hud.statusLabel.Label = msg
	}
}

// PointerOverUI reports whether the cursor is over a HUD widget, as of the
// last Update.
func (hud *HUD) PointerOverUI() bool {
	return ebuiinput.UIHovered
}

func (hud *HUD) Update() {
	hud.UI.Update()
}

func (hud *HUD) Draw(screen *ebiten.Image) {
	hud.UI.Draw(screen)
}
