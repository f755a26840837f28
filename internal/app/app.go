//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log"

	"pixel-wall/internal/core"
	"pixel-wall/internal/render"
	"pixel-wall/internal/sound"
	"pixel-wall/internal/ui"
	"pixel-wall/internal/wall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the wall to the ebiten.Game interface.
type Game struct {
	ctrl     *wall.Controller
	painter  *render.WallPainter
	overlay  *ui.Overlay
	settings *ui.Settings
	toolbar  *ui.Toolbar
	dialogs  *ui.Dialogs
	player   *sound.Player

	background color.RGBA
	title      string

	screenW, screenH int

	uiTouches map[ebiten.TouchID]bool
	touchIDs  []ebiten.TouchID

	focus        wall.Cell
	focusVisible bool
}

// New constructs a Game from a resolved configuration.
func New(cfg *Config, r Resolved) (*Game, error) {
	w := wall.New()
	w.SetPrimaryColor(r.Palette.Primary)
	w.SetSecondaryColor(r.Palette.Secondary)
	w.SetShape(r.Shape)
	if err := w.SetDimensions(cfg.Height, cfg.Width); err != nil {
		return nil, err
	}

	g := &Game{
		ctrl:       wall.NewController(w, cfg.Throttle),
		painter:    render.NewWallPainter(),
		overlay:    ui.NewOverlay(w, cfg.Debug),
		dialogs:    ui.NewDialogs(),
		background: r.Background,
		uiTouches:  map[ebiten.TouchID]bool{},
	}
	g.settings = ui.NewSettings(g.ctrl, g.dialogs)
	g.toolbar = ui.NewToolbar(g.dialogs.ConfirmReset, g.settings.Toggle)

	if cfg.Sound {
		g.player = sound.NewPlayer(cfg.Volume)
		if err := g.player.Initialize(); err != nil {
			// Non-fatal, the wall works without sound.
			log.Printf("audio initialization failed: %v", err)
		} else {
			w.OnToggle(g.player.Toggled)
		}
	}
	return g, nil
}

// Close releases the audio device.
func (g *Game) Close() {
	if g.player != nil {
		g.player.Close()
	}
}

// Update handles input and applies throttled wall changes.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if !g.settings.IsOpen() {
			return ebiten.Termination
		}
		g.settings.Close()
	}

	g.applyDialogs()
	g.layout()
	g.handleKeys()
	g.handleMouse()
	g.handleTouches()

	if g.ctrl.Tick() {
		g.settings.Refresh()
	}
	g.focus = moveFocus(g.focus, 0, 0, g.ctrl.Wall().Rows(), g.ctrl.Wall().Columns())
	g.overlay.SetFocus(g.focus, g.focusVisible)
	g.syncTitle()
	return nil
}

func (g *Game) layout() {
	if g.screenW <= 0 || g.screenH <= 0 {
		return
	}
	g.toolbar.Layout(g.screenW, g.screenH)
	g.settings.Layout(g.screenW, g.screenH)

	placeWall(g.ctrl, wallContainer(g.screenW, g.screenH))
}

func (g *Game) applyDialogs() {
	for _, res := range g.dialogs.Drain() {
		if res.Err != nil {
			log.Printf("dialog: %v", res.Err)
			continue
		}
		if !res.Confirmed {
			continue
		}
		switch res.Kind {
		case ui.DialogColor:
			g.ctrl.SetColorParameter(res.Key, res.Color)
			g.settings.Refresh()
		case ui.DialogConfirmReset:
			g.ctrl.ResetPixels()
		}
	}
}

func (g *Game) handleKeys() {
	if g.settings.IsOpen() {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.dialogs.ConfirmReset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.settings.Open()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.ctrl.TogglePixelShape()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.overlay.ToggleDebug()
	}

	dr, dc := 0, 0
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		dr--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		dr++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		dc--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		dc++
	}
	w := g.ctrl.Wall()
	if dr != 0 || dc != 0 {
		g.focus = moveFocus(g.focus, dr, dc, w.Rows(), w.Columns())
		g.focusVisible = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.focusVisible = true
		w.Activate(g.focus)
	}
}

func (g *Game) handleMouse() {
	w := g.ctrl.Wall()
	mx, my := ebiten.CursorPosition()
	g.overlay.Update(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.focusVisible = false
		if g.clickUI(mx, my) {
			return
		}
		w.Press(wall.MouseStream, float64(mx), float64(my))
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		w.Release(wall.MouseStream)
		return
	}
	screen := core.Rect{W: float64(g.screenW), H: float64(g.screenH)}
	dragMouse(w, screen, ebiten.IsFocused(), float64(mx), float64(my))
}

func (g *Game) handleTouches() {
	w := g.ctrl.Wall()
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if g.clickUI(x, y) {
			g.uiTouches[id] = true
			continue
		}
		w.Press(wall.TouchStream(int(id)), float64(x), float64(y))
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		if g.uiTouches[id] || inpututil.IsTouchJustReleased(id) {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		w.Move(wall.TouchStream(int(id)), float64(x), float64(y))
	}

	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		delete(g.uiTouches, id)
		w.Release(wall.TouchStream(int(id)))
	}
}

func (g *Game) syncTitle() {
	w := g.ctrl.Wall()
	title := Title(w.Columns(), w.Rows())
	if title == g.title {
		return
	}
	g.title = title
	ebiten.SetWindowTitle(title)
	g.toolbar.SetStatus(fmt.Sprintf("%d x %d", w.Columns(), w.Rows()))
}

// clickUI offers a press to the panel and the toolbar before the wall.
func (g *Game) clickUI(x, y int) bool {
	if g.settings.HandleClick(x, y) {
		return true
	}
	return g.toolbar.HandleClick(x, y)
}

// Draw renders the wall and the chrome around it.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.painter.Draw(screen, g.ctrl.Wall(), g.background)
	g.overlay.Draw(screen)
	g.toolbar.Draw(screen)
	g.settings.Draw(screen)
}

// Layout follows the window size so the wall can letterbox itself.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
