package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaser/engine"
	"github.com/lixenwraith/chaser/vmath"
)

// DefaultHoldWindow keeps a direction held between terminal key repeats
const DefaultHoldWindow = 150 * time.Millisecond

// Viewport maps a screen cell to canvas coordinates
type Viewport interface {
	ToCanvas(x, y int) (vmath.Vec2, bool)
}

// Machine parses tcell events into intents and per-frame engine input
// Terminals report no key release, a direction stays held for the hold window after its last press or repeat
// Owned by the frame loop goroutine
type Machine struct {
	keyTable *KeyTable
	viewport Viewport
	hold     time.Duration

	heldUntil [dirCount]time.Time

	pointerFresh bool
	target       vmath.Vec2
	buttonDown   bool
}

// NewMachine creates a new input machine
func NewMachine(vp Viewport, hold time.Duration) *Machine {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &Machine{
		keyTable: DefaultKeyTable(),
		viewport: vp,
		hold:     hold,
	}
}

// SetViewport replaces the cell mapping after a resize
func (m *Machine) SetViewport(vp Viewport) {
	m.viewport = vp
}

// Handle parses one event received at now
func (m *Machine) Handle(ev tcell.Event, now time.Time) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.handleKey(ev, now)
	case *tcell.EventMouse:
		return m.handleMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: h}
	}
	return Intent{}
}

func (m *Machine) handleKey(ev *tcell.EventKey, now time.Time) Intent {
	entry, ok := m.keyTable.Lookup(ev)
	if !ok {
		return Intent{}
	}
	if entry.IntentType == IntentMove {
		m.heldUntil[entry.Direction] = now.Add(m.hold)
	}
	return Intent{Type: entry.IntentType}
}

func (m *Machine) handleMouse(ev *tcell.EventMouse) Intent {
	x, y := ev.Position()
	if p, ok := m.viewport.ToCanvas(x, y); ok {
		m.target = p
		m.pointerFresh = true
	}

	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !m.buttonDown
	m.buttonDown = down
	if pressed {
		return Intent{Type: IntentPress}
	}
	return Intent{}
}

// Sample builds the engine input for the frame at now and consumes the pointer update
func (m *Machine) Sample(now time.Time) engine.Input {
	in := engine.Input{
		Pointer: m.pointerFresh,
		Target:  m.target,
		Drawing: m.buttonDown,
	}
	m.pointerFresh = false

	held := func(d Direction) bool { return now.Before(m.heldUntil[d]) }
	if held(DirLeft) {
		in.DirX--
	}
	if held(DirRight) {
		in.DirX++
	}
	if held(DirUp) {
		in.DirY--
	}
	if held(DirDown) {
		in.DirY++
	}
	return in
}

// Reset drops held keys and button state
func (m *Machine) Reset() {
	m.heldUntil = [dirCount]time.Time{}
	m.pointerFresh = false
	m.buttonDown = false
}
