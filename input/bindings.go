// Package input maps terminal key events to bound commands. Bindings are
// registered imperatively as closures; dispatch is a table lookup, not
// annotation scanning.
package input

import "github.com/gdamore/tcell/v2"

// Command is a bound input handler. Commands run synchronously, outside
// any system's step, and may call into the world's mutation operations.
type Command func()

// Bindings is an explicit dispatch table from key events to commands.
// Printable keys bind by rune, everything else by tcell key code.
type Bindings struct {
	runes map[rune]Command
	keys  map[tcell.Key]Command
}

// NewBindings creates an empty dispatch table.
func NewBindings() *Bindings {
	return &Bindings{
		runes: make(map[rune]Command),
		keys:  make(map[tcell.Key]Command),
	}
}

// BindRune binds a printable key to a command, replacing any previous
// binding for that rune.
func (b *Bindings) BindRune(r rune, cmd Command) {
	b.runes[r] = cmd
}

// BindKey binds a special key (arrows, escape, function keys) to a
// command, replacing any previous binding for that key.
func (b *Bindings) BindKey(key tcell.Key, cmd Command) {
	b.keys[key] = cmd
}

// Unbind removes a rune binding, if present.
func (b *Bindings) Unbind(r rune) {
	delete(b.runes, r)
}

// UnbindKey removes a special key binding, if present.
func (b *Bindings) UnbindKey(key tcell.Key) {
	delete(b.keys, key)
}

// Dispatch routes a key event to its bound command. Returns true when a
// binding handled the event.
func (b *Bindings) Dispatch(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyRune {
		if cmd, ok := b.runes[ev.Rune()]; ok {
			cmd()
			return true
		}
		return false
	}
	if cmd, ok := b.keys[ev.Key()]; ok {
		cmd()
		return true
	}
	return false
}
