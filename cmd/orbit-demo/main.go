// orbit-demo: drifting glyphs on a mode-stacked world. Title screen,
// instructions slide show, a playing world with spawnable orbiters and a
// pause overlay.
//
// Keys: Enter start, i instructions, space spawn / next slide, b previous
// slide, p pause, Esc/q back.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep/speaker"

	"github.com/tallow-engine/tallow/audio"
	"github.com/tallow-engine/tallow/component"
	"github.com/tallow-engine/tallow/engine"
	"github.com/tallow-engine/tallow/input"
	"github.com/tallow-engine/tallow/mode"
	"github.com/tallow-engine/tallow/render"
	"github.com/tallow-engine/tallow/system"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	spawnLifetime = 12 * time.Second
	maxOrbiters   = 64
	spawnToneHz   = 880
	spawnToneLen  = 50 * time.Millisecond
)

var glyphRunes = []rune("*+ox@#%&")

var glyphColors = []tcell.Color{
	tcell.ColorRed, tcell.ColorGreen, tcell.ColorYellow,
	tcell.ColorBlue, tcell.ColorFuchsia, tcell.ColorAqua,
}

// screenMode is what the demo expects of every mode on its stack: the
// framework lifecycle plus per-mode key bindings and a draw pass.
type screenMode interface {
	mode.Mode
	Bindings() *input.Bindings
	Draw()
}

// Game wires the world, the mode stack and the terminal together.
type Game struct {
	screen tcell.Screen
	stack  *mode.Stack
	cues   *audio.Cues
	quit   bool
	runErr error

	world     *engine.World
	positions *engine.Store[component.Position]
	movements *engine.Store[component.Movement]
	glyphs    *engine.Store[component.Glyph]
	lifetimes *engine.Store[component.Lifetime]
	renderer  *render.GlyphRenderer
}

func NewGame() (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen:    screen,
		world:     engine.NewWorld(),
		positions: engine.NewStore[component.Position](),
		movements: engine.NewStore[component.Movement](),
		glyphs:    engine.NewStore[component.Glyph](),
		lifetimes: engine.NewStore[component.Lifetime](),
	}

	// World configuration: stores first, then the systems that use them.
	stores := []struct {
		name  string
		store engine.QueryableStore
	}{
		{"position", g.positions},
		{"movement", g.movements},
		{"glyph", g.glyphs},
		{"lifetime", g.lifetimes},
	}
	for _, s := range stores {
		if err := g.world.Register(s.name, s.store); err != nil {
			screen.Fini()
			return nil, err
		}
	}
	g.world.AddSystem(system.NewMovement("position", "movement"))
	g.world.AddSystem(system.NewLifetime("lifetime"))
	g.world.AddSystem(&wrapSystem{game: g})

	g.renderer = render.NewGlyphRenderer(screen, g.positions, g.glyphs)

	g.stack = mode.NewStack()
	g.stack.OnLastModePop = func(mode.Mode) { g.quit = true }
	g.stack.Push(newTitleMode(g))

	cues, err := audio.NewCues()
	if err != nil {
		// Non-fatal, the demo can run without sound
		log.Printf("audio initialization failed: %v", err)
	}
	g.cues = cues

	return g, nil
}

// spawnOrbiter creates a glyph entity with a random drift and lifetime.
func (g *Game) spawnOrbiter() {
	if g.lifetimes.Count() >= maxOrbiters {
		return
	}
	width, height := g.screen.Size()
	e := g.world.NewEntity()
	g.positions.Set(e, component.Position{
		X: rand.Float64() * float64(width),
		Y: rand.Float64() * float64(height),
	})
	g.movements.Set(e, component.Movement{
		VX:       rand.Float64()*16 - 8,
		VY:       rand.Float64()*8 - 4,
		Rotation: rand.Float64() * 90,
	})
	g.glyphs.Set(e, component.Glyph{
		Rune:  glyphRunes[rand.Intn(len(glyphRunes))],
		Style: tcell.StyleDefault.Foreground(glyphColors[rand.Intn(len(glyphColors))]),
	})
	g.lifetimes.Set(e, component.Lifetime{Remaining: spawnLifetime})
	g.cues.Play(spawnToneHz, spawnToneLen)
}

// wrapSystem keeps drifting entities on screen by wrapping positions at
// the screen edges.
type wrapSystem struct {
	game *Game
}

func (s *wrapSystem) Step(w *engine.World, dt time.Duration) error {
	width, height := s.game.screen.Size()
	wrapPositions(s.game.positions, float64(width), float64(height))
	return nil
}

// wrapPositions folds every position into [0,fw) x [0,fh). A screen
// reporting a zero dimension (mid-resize, headless) is skipped; the
// wrap loops would never terminate against a zero width.
func wrapPositions(positions *engine.Store[component.Position], fw, fh float64) {
	if fw <= 0 || fh <= 0 {
		return
	}
	for _, e := range positions.All() {
		pos, _ := positions.Get(e)
		for pos.X < 0 {
			pos.X += fw
		}
		for pos.X >= fw {
			pos.X -= fw
		}
		for pos.Y < 0 {
			pos.Y += fh
		}
		for pos.Y >= fh {
			pos.Y -= fh
		}
		positions.Set(e, pos)
	}
}

func (g *Game) text(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (g *Game) textCenter(y int, s string, style tcell.Style) {
	width, _ := g.screen.Size()
	g.text((width-len(s))/2, y, s, style)
}

func (g *Game) handleInput(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			g.quit = true
			return
		}
		if current, ok := g.stack.Current().(screenMode); ok {
			current.Bindings().Dispatch(ev)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

func (g *Game) frame(dt time.Duration) {
	g.stack.Step(dt)
	g.screen.Clear()
	if current, ok := g.stack.Current().(screenMode); ok {
		current.Draw()
	}
	g.screen.Show()
}

func (g *Game) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	last := time.Now()
	for !g.quit {
		select {
		case ev := <-eventChan:
			g.handleInput(ev)
		case now := <-ticker.C:
			g.frame(now.Sub(last))
			last = now
		}
	}
}

func (g *Game) cleanup() {
	if g.cues != nil {
		speaker.Close()
	}
	g.screen.Fini()
	if g.runErr != nil {
		fmt.Fprintf(os.Stderr, "step failed: %v\n", g.runErr)
	}
}

func main() {
	game, err := NewGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
