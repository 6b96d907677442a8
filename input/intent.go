package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+Q, Ctrl+C
	IntentRestart     // r
	IntentTogglePause // p
	IntentToggleMute  // m
	IntentResize      // Terminal resize event

	// Gameplay
	IntentMove  // Direction key, folded into the next sample
	IntentPress // Left button down or Space/Enter, counts as a win click
)

var intentNames = map[IntentType]string{
	IntentNone:        "none",
	IntentQuit:        "quit",
	IntentRestart:     "restart",
	IntentTogglePause: "toggle-pause",
	IntentToggleMute:  "toggle-mute",
	IntentResize:      "resize",
	IntentMove:        "move",
	IntentPress:       "press",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent is one parsed input event
// Width and Height are set for IntentResize only
type Intent struct {
	Type          IntentType
	Width, Height int
}

// Direction is a held movement key
type Direction uint8

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
	dirCount
)
