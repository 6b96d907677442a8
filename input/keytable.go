package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes what a key does
type KeyEntry struct {
	IntentType IntentType
	Direction  Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable key bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
// Movement is bound to arrows, WASD and hjkl
func DefaultKeyTable() *KeyTable {
	move := func(d Direction) KeyEntry { return KeyEntry{IntentMove, d} }
	system := func(t IntentType) KeyEntry { return KeyEntry{t, DirNone} }

	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  system(IntentQuit),
			tcell.KeyCtrlC:  system(IntentQuit),
			tcell.KeyEscape: system(IntentQuit),
			tcell.KeyEnter:  system(IntentPress),
			tcell.KeyUp:     move(DirUp),
			tcell.KeyDown:   move(DirDown),
			tcell.KeyLeft:   move(DirLeft),
			tcell.KeyRight:  move(DirRight),
		},

		Runes: map[rune]KeyEntry{
			'q': system(IntentQuit),
			'r': system(IntentRestart),
			'p': system(IntentTogglePause),
			'm': system(IntentToggleMute),
			' ': system(IntentPress),

			'w': move(DirUp),
			'a': move(DirLeft),
			's': move(DirDown),
			'd': move(DirRight),

			'k': move(DirUp),
			'h': move(DirLeft),
			'j': move(DirDown),
			'l': move(DirRight),
		},
	}
}

// Lookup resolves a key event, ok is false for unbound keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		entry, ok := kt.Runes[ev.Rune()]
		return entry, ok
	}
	entry, ok := kt.SpecialKeys[ev.Key()]
	return entry, ok
}
