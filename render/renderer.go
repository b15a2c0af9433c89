// Package render draws read-only views of component stores to a terminal
// screen. Renderers run once per frame, after the world's step pass
// completes, and never mutate world state.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tallow-engine/tallow/component"
	"github.com/tallow-engine/tallow/engine"
)

// Renderer is implemented by anything with visual output. Draw is invoked
// by the application loop after every step.
type Renderer interface {
	Draw()
}

// GlyphRenderer draws every entity that has both a position and a glyph
// onto a tcell screen.
type GlyphRenderer struct {
	screen    tcell.Screen
	positions *engine.Store[component.Position]
	glyphs    *engine.Store[component.Glyph]

	// OffsetX and OffsetY shift world coordinates into screen space,
	// leaving room for surrounding UI.
	OffsetX, OffsetY int
}

// NewGlyphRenderer creates a renderer over the given stores.
func NewGlyphRenderer(screen tcell.Screen, positions *engine.Store[component.Position], glyphs *engine.Store[component.Glyph]) *GlyphRenderer {
	return &GlyphRenderer{
		screen:    screen,
		positions: positions,
		glyphs:    glyphs,
	}
}

// Draw renders all glyph entities. Entities outside the screen bounds are
// skipped.
func (r *GlyphRenderer) Draw() {
	width, height := r.screen.Size()

	for _, entity := range r.glyphs.All() {
		glyph, ok := r.glyphs.Get(entity)
		if !ok {
			continue
		}
		pos, ok := r.positions.Get(entity)
		if !ok {
			continue
		}

		screenX := r.OffsetX + int(pos.X)
		screenY := r.OffsetY + int(pos.Y)
		if screenX < 0 || screenX >= width || screenY < 0 || screenY >= height {
			continue
		}

		r.screen.SetContent(screenX, screenY, glyph.Rune, nil, glyph.Style)
	}
}
