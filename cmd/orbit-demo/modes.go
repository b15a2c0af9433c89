package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tallow-engine/tallow/input"
	"github.com/tallow-engine/tallow/mode"
)

var (
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	pauseStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// titleMode is the entry screen.
type titleMode struct {
	mode.Base
	game     *Game
	bindings *input.Bindings
}

func newTitleMode(g *Game) *titleMode {
	m := &titleMode{game: g, bindings: input.NewBindings()}
	m.bindings.BindKey(tcell.KeyEnter, func() { g.stack.Push(newPlayMode(g)) })
	m.bindings.BindRune('i', func() { g.stack.Push(newInstructionsMode(g)) })
	m.bindings.BindRune('q', func() { g.stack.Remove(m) })
	m.bindings.BindKey(tcell.KeyEscape, func() { g.stack.Remove(m) })
	return m
}

func (m *titleMode) Bindings() *input.Bindings { return m.bindings }

func (m *titleMode) Draw() {
	_, height := m.game.screen.Size()
	m.game.textCenter(height/2-2, "O R B I T", titleStyle)
	m.game.textCenter(height/2, "Enter  play", textStyle)
	m.game.textCenter(height/2+1, "i      instructions", textStyle)
	m.game.textCenter(height/2+2, "q      quit", textStyle)
}

// playMode runs the world while it is on top of the stack. Pausing is a
// push; the world freezes because only the top mode is pumped.
type playMode struct {
	mode.Base
	game     *Game
	bindings *input.Bindings
}

func newPlayMode(g *Game) *playMode {
	m := &playMode{game: g, bindings: input.NewBindings()}
	m.Enter = func() {
		if g.world.Count() == 0 {
			for i := 0; i < 8; i++ {
				g.spawnOrbiter()
			}
		}
	}
	m.bindings.BindRune(' ', g.spawnOrbiter)
	m.bindings.BindRune('p', func() { g.stack.Push(newPauseMode(g, m)) })
	m.bindings.BindRune('q', func() { g.stack.Remove(m) })
	m.bindings.BindKey(tcell.KeyEscape, func() { g.stack.Remove(m) })
	return m
}

func (m *playMode) Bindings() *input.Bindings { return m.bindings }

func (m *playMode) Step(dt time.Duration) {
	if err := m.game.world.Step(dt); err != nil {
		// Step failures are programming errors in systems; halt the loop
		// rather than hiding them.
		m.game.runErr = err
		m.game.quit = true
	}
}

func (m *playMode) Draw() {
	_, height := m.game.screen.Size()
	m.game.renderer.Draw()
	status := fmt.Sprintf(" entities %d | time %5.1fs | space spawn | p pause | q back ",
		m.game.world.Count(), m.game.world.Time().Seconds())
	m.game.text(0, height-1, status, statusStyle)
}

// pauseMode is an overlay; the play mode beneath it stays frozen until
// the overlay is popped.
type pauseMode struct {
	mode.Base
	game     *Game
	play     *playMode
	bindings *input.Bindings
}

func newPauseMode(g *Game, play *playMode) *pauseMode {
	m := &pauseMode{game: g, play: play, bindings: input.NewBindings()}
	resume := func() { g.stack.Remove(m) }
	m.bindings.BindRune('p', resume)
	m.bindings.BindKey(tcell.KeyEscape, resume)
	m.bindings.BindRune('q', func() {
		// Drop both the overlay and the game beneath it.
		g.stack.Remove(m)
		g.stack.Remove(m.play)
	})
	return m
}

func (m *pauseMode) Bindings() *input.Bindings { return m.bindings }

func (m *pauseMode) Draw() {
	_, height := m.game.screen.Size()
	m.game.renderer.Draw()
	m.game.textCenter(height/2, " P A U S E D ", pauseStyle)
	m.game.textCenter(height/2+1, " p resume | q quit game ", dimStyle)
}

// slideMode is one instructions page inside the Multi.
type slideMode struct {
	mode.Base
	lines []string
}

// instructionsMode is a Multi of slides. Advancing past the last slide
// removes the whole sequence from the stack, returning to the title.
type instructionsMode struct {
	mode.Multi
	game     *Game
	bindings *input.Bindings
}

func newInstructionsMode(g *Game) *instructionsMode {
	pages := [][]string{
		{
			"ORBIT is a demo of the tallow framework.",
			"",
			"Glyph entities drift across the screen, each one a bare",
			"id with position, movement, glyph and lifetime records",
			"held in component stores.",
		},
		{
			"Systems run in registration order every frame:",
			"",
			"  movement  integrates velocity into position",
			"  lifetime  expires entities and cascades their records",
			"  wrap      keeps positions on screen",
		},
		{
			"Screens are modes on a stack; only the top one runs.",
			"",
			"This slide show is a Multi: one submode active at a",
			"time, advanced in sequence. Past the last slide it",
			"removes itself and the title screen returns.",
		},
	}

	m := &instructionsMode{game: g, bindings: input.NewBindings()}
	for _, lines := range pages {
		m.AddSubmode(&slideMode{lines: lines})
	}
	m.bindings.BindRune(' ', func() { m.ActivateNext(false) })
	m.bindings.BindRune('b', func() { m.ActivatePrevious(true) })
	m.bindings.BindKey(tcell.KeyEscape, func() { g.stack.Remove(m) })
	return m
}

func (m *instructionsMode) Bindings() *input.Bindings { return m.bindings }

func (m *instructionsMode) Draw() {
	slide, ok := m.ActiveSubmode().(*slideMode)
	if !ok {
		return
	}
	g := m.game
	_, height := g.screen.Size()
	top := height/2 - len(slide.lines)/2 - 2

	index := 1
	for i, sub := range m.Submodes() {
		if sub == mode.Mode(slide) {
			index = i + 1
			break
		}
	}
	g.textCenter(top-2, fmt.Sprintf("instructions %d/%d", index, len(m.Submodes())), titleStyle)
	for i, line := range slide.lines {
		g.textCenter(top+i, line, textStyle)
	}
	g.textCenter(top+len(slide.lines)+2, "space next | b back | esc skip", dimStyle)
}
