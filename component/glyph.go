package component

import "github.com/gdamore/tcell/v2"

// Glyph is an entity's visual representation on a terminal screen.
type Glyph struct {
	Rune  rune
	Style tcell.Style
}
