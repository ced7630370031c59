//go:build ebiten

package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"lifegame/src/universe"
	"lifegame/src/view"
)

var (
	liveColor  = color.RGBA{A: 0xff}
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Game adapts the universe to the ebiten.Game interface.
type Game struct {
	u        universe.Universe
	canvas   *view.ImageCanvas
	img      *ebiten.Image
	size     int
	cellSize int
}

// Run opens the window and blocks until it is closed.
func Run(u universe.Universe, cellSize int) error {
	if cellSize < 1 {
		cellSize = 1
	}
	g := &Game{
		u:        u,
		canvas:   view.NewImageCanvas(liveColor, background),
		size:     u.Options().Size,
		cellSize: cellSize,
	}
	side := g.size * cellSize
	g.img = ebiten.NewImage(side, side)

	ebiten.SetWindowTitle("The Life")
	ebiten.SetWindowSize(side, side)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update maps the input to the universe commands.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	st := g.u.Status()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if st.RunningMode == universe.RunningStateRun {
			g.u.Stop()
		} else {
			g.u.Run()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.u.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.u.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.u.SeedRandom(universe.DefSeedCells)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.u.ToggleAutoMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.u.SetSpeed(view.ClampInterval(st.Interval - view.IntervalStep))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.u.SetSpeed(view.ClampInterval(st.Interval + view.IntervalStep))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.u.InverseCell(view.CellAt(mx, my, 0, 0, g.cellSize))
	}
	return nil
}

// Draw paints the last published field and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	view.Paint(g.canvas, g.u.Area(), g.cellSize)
	g.img.WritePixels(g.canvas.Image().Pix)
	screen.DrawImage(g.img, nil)

	st := g.u.Status()
	auto := "off"
	if st.AutoMode {
		auto = "ON"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  cells %d  %v  %v  auto %s",
		st.Generation, st.LiveCells, st.RunningMode, st.Interval, auto))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.size * g.cellSize
	return side, side
}
