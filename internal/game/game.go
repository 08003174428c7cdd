package game

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/wheel-widget/internal/config"
	"github.com/iburimskiy/wheel-widget/internal/sound"
	"github.com/iburimskiy/wheel-widget/internal/wheel"
)

// wheelView places one wheel instance on screen.
type wheelView struct {
	label      string
	wheel      *wheel.Wheel
	x, y, w, h float64
	lastDetent int
}

func (v *wheelView) contains(x, y float64) bool {
	return x >= v.x && x <= v.x+v.w && y >= v.y && y <= v.y+v.h
}

type Game struct {
	levelValue float64
	gainValue  float64

	views  []*wheelView
	active int // last-touched wheel, target of the set-value button

	recognizer gestureRecognizer
	dragView   int // view owning the current interaction, -1 when none

	player     *sound.Player
	lastCommit string

	// button state
	buttonHovered bool
	buttonPressed bool

	// input edge detection
	prevKey map[ebiten.Key]bool

	lastErr error
}

func New() *Game {
	g := &Game{
		levelValue: 30,
		gainValue:  -12,
		dragView:   -1,
		prevKey:    map[ebiten.Key]bool{},
	}

	g.views = []*wheelView{
		{
			label: "level",
			wheel: wheel.New(&g.levelValue, wheel.Range{Lower: 0, Upper: 100}, wheel.Horizontal),
			x:     config.LevelWheelX, y: config.LevelWheelY,
			w: config.LevelWheelW, h: config.LevelWheelH,
		},
		{
			label: "gain",
			wheel: wheel.New(&g.gainValue, wheel.Range{Lower: -60, Upper: 6}, wheel.Auto),
			x:     config.GainWheelX, y: config.GainWheelY,
			w: config.GainWheelW, h: config.GainWheelH,
		},
	}
	for _, v := range g.views {
		v.lastDetent = v.wheel.DetentIndex()
		v := v
		v.wheel.OnCommit = func(val float64) {
			g.lastCommit = fmt.Sprintf("%s committed: %s", v.label, formatValue(val, v.wheel.ScaleIndex()))
		}
	}

	player, err := sound.NewPlayer()
	if err != nil {
		g.lastErr = err
	}
	g.player = player

	return g
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	fx, fy := float64(mouseX), float64(mouseY)

	// Set-value button
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if g.buttonPressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonHovered {
			if err := g.promptSetValue(); err != nil {
				g.lastErr = err
			}
		}
		g.buttonPressed = false
	}

	// Wheel gestures. A press that landed on the button never reaches the
	// wheels.
	if !g.buttonPressed {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			for i, v := range g.views {
				if v.contains(fx, fy) {
					g.dragView = i
					g.active = i
					g.recognizer.press(fx, fy)
					break
				}
			}
		}
		if g.dragView >= 0 {
			switch {
			case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
				g.apply(g.recognizer.release(time.Now()), 0, 0)
				g.dragView = -1
			case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
				act, tx, ty := g.recognizer.move(fx, fy)
				g.apply(act, tx, ty)
			default:
				// Release never arrived (pointer left the window). The
				// drag must still end so its offset cannot corrupt the
				// next one.
				g.apply(g.recognizer.cancel(), 0, 0)
				g.dragView = -1
			}
		}
	}

	if justPressed(ebiten.KeyM) {
		g.player.ToggleMute()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	return nil
}

func (g *Game) apply(act gestureAction, tx, ty float64) {
	if g.dragView < 0 {
		return
	}
	v := g.views[g.dragView]
	switch act {
	case actionDoubleTap:
		v.wheel.DoubleTap()
		v.lastDetent = v.wheel.DetentIndex()
	case actionDragStart:
		v.wheel.DragStart()
		v.lastDetent = v.wheel.DetentIndex()
		v.wheel.DragMove(tx, ty, v.w, v.h)
		g.clickOnDetent(v)
	case actionDragMove:
		v.wheel.DragMove(tx, ty, v.w, v.h)
		g.clickOnDetent(v)
	case actionDragEnd:
		v.wheel.DragEnd()
	}
}

// clickOnDetent plays one click per tick the wheel rotated past since the
// previous move.
func (g *Game) clickOnDetent(v *wheelView) {
	d := v.wheel.DetentIndex()
	if d != v.lastDetent {
		g.player.Click()
		v.lastDetent = d
	}
}

func (g *Game) promptSetValue() error {
	v := g.views[g.active]
	rng := v.wheel.Bounds()
	entry, err := zenity.Entry(
		fmt.Sprintf("New %s value (%g to %g):", v.label, rng.Lower, rng.Upper),
		zenity.Title("Set Value"),
		zenity.EntryText(formatValue(v.wheel.Value(), v.wheel.ScaleIndex())),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	parsed, err := strconv.ParseFloat(strings.TrimSpace(entry), 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", entry)
	}
	v.wheel.SetValue(parsed) // out-of-range input is clamped, never rejected
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 14, G: 16, B: 24, A: 255})

	g.drawButton(screen)
	for i, v := range g.views {
		g.drawWheel(screen, i, v)
	}

	status := "Drag a wheel to adjust, double-tap to change speed | M: mute clicks, Esc/Q: quit"
	if g.player.Muted() {
		status += " | muted"
	}
	if g.lastCommit != "" {
		status += " | " + g.lastCommit
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, config.WindowHeight-24)
}

func (g *Game) drawWheel(screen *ebiten.Image, idx int, v *wheelView) {
	// Panel behind the wheel
	vector.DrawFilledRect(screen, float32(v.x), float32(v.y), float32(v.w), float32(v.h), color.RGBA{R: 20, G: 25, B: 35, A: 255}, false)

	frameCol := color.RGBA{R: 90, G: 100, B: 120, A: 255}
	if idx == g.active {
		frameCol = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	}

	// Level marks shift hue from red to green as the value fills the range.
	norm := v.wheel.Bounds().Normalize(v.wheel.Value())
	lr, lg, lb := hsvToRgb(norm*120, 0.85, 0.95)
	levelCol := color.RGBA{R: lr, G: lg, B: lb, A: 255}

	tickCol := color.RGBA{R: 185, G: 195, B: 215, A: 255}
	if v.wheel.Dragging() {
		tickCol = color.RGBA{R: 235, G: 240, B: 255, A: 255}
	}

	for _, s := range v.wheel.Geometry(v.w, v.h) {
		var col color.RGBA
		switch s.Role {
		case wheel.RoleTick:
			col = tickCol
		case wheel.RoleFrame:
			col = frameCol
		case wheel.RoleLevel:
			col = levelCol
		}
		vector.StrokeLine(screen,
			float32(v.x+s.X1), float32(v.y+s.Y1),
			float32(v.x+s.X2), float32(v.y+s.Y2),
			float32(s.Width), col, false)
	}

	label := fmt.Sprintf("%s: %s", v.label, formatValue(v.wheel.Value(), v.wheel.ScaleIndex()))
	ebitenutil.DebugPrintAt(screen, label, int(v.x), int(v.y)-18)
	speed := fmt.Sprintf("speed %d/%d", v.wheel.ScaleIndex()+1, wheel.ScaleCount)
	ebitenutil.DebugPrintAt(screen, speed, int(v.x), int(v.y+v.h)+4)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, float32(config.ButtonX), float32(config.ButtonY), float32(config.ButtonWidth), float32(config.ButtonHeight), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, float32(config.ButtonX), float32(config.ButtonY), float32(config.ButtonWidth), float32(config.ButtonHeight), 2, borderColor, false)

	text := "Set Value"
	textWidth := len(text) * 8 // Approximate character width
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight+8)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
