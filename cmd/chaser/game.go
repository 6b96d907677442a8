package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaser/audio"
	"github.com/lixenwraith/chaser/config"
	"github.com/lixenwraith/chaser/constants"
	"github.com/lixenwraith/chaser/engine"
	"github.com/lixenwraith/chaser/input"
	"github.com/lixenwraith/chaser/render"
	"github.com/lixenwraith/chaser/replay"
)

// session is the mutating surface of a round, a bare GameState or a Recorder around one
type session interface {
	Advance(in engine.Input, dt time.Duration)
	Click() bool
	Restart()
	Resize(width, height float64)
}

// game wires the terminal, input, audio and the simulation together
// Every method runs on the frame loop goroutine
type game struct {
	screen   tcell.Screen
	gs       *engine.GameState
	sess     session
	rec      *replay.Recorder // nil unless recording
	renderer *render.TerminalRenderer
	input    *input.Machine
	clock    *engine.PausableClock
	time     engine.TimeProvider
	sound    *audio.SoundManager
}

func newGame(screen tcell.Screen, cfg config.Config, provider engine.TimeProvider, sound *audio.SoundManager, record bool) *game {
	g := &game{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		clock:    engine.NewPausableClock(provider, constants.MaxFrameDelta),
		time:     provider,
		sound:    sound,
	}

	if record {
		g.rec = replay.NewRecorder(cfg)
		g.gs = g.rec.State()
		g.sess = g.rec
	} else {
		g.gs = engine.NewGameState(cfg)
		g.sess = g.gs
	}

	g.input = input.NewMachine(g.renderer.Viewport(g.gs.Size()), constants.KeyHoldWindow)
	g.fitCanvas()
	g.dispatchEvents()
	return g
}

// fitCanvas sizes the canvas to the terminal so every cell covers the same canvas area
func (g *game) fitCanvas() {
	cols, rows := g.screen.Size()
	g.renderer.UpdateDimensions(cols, rows)
	g.sess.Resize(float64(max(cols, 1))*constants.CellUnitsX, float64(max(rows-1, 1))*constants.CellUnitsY)
	g.input.SetViewport(g.renderer.Viewport(g.gs.Size()))
}

// handle processes one terminal event, returns false when the game should exit
func (g *game) handle(ev tcell.Event) bool {
	intent := g.input.Handle(ev, g.time.Now())

	switch intent.Type {
	case input.IntentQuit:
		return false

	case input.IntentResize:
		g.screen.Sync()
		g.fitCanvas()

	case input.IntentTogglePause:
		if g.gs.Round() == engine.RoundPlaying {
			paused := g.clock.Toggle()
			log.Printf("round %s paused=%v", g.gs.RoundID(), paused)
		}

	case input.IntentToggleMute:
		muted := g.sound.ToggleMute()
		log.Printf("audio muted=%v", muted)

	case input.IntentRestart:
		// only from a finished round
		if g.gs.Round().Terminal() {
			g.sess.Restart()
			g.input.Reset()
			g.clock.Resume()
		}

	case input.IntentPress:
		if g.gs.Round() == engine.RoundWinActive {
			g.sess.Click()
		}
	}

	g.dispatchEvents()
	return true
}

// frame advances the simulation by the elapsed wall time and redraws
func (g *game) frame() {
	dt := g.clock.Tick()
	if !g.clock.IsPaused() {
		g.sess.Advance(g.input.Sample(g.time.Now()), dt)
	}
	g.dispatchEvents()

	g.renderer.RenderFrame(g.gs.Snapshot(), render.Overlay{
		Paused: g.clock.IsPaused(),
		Muted:  g.sound.IsMuted(),
	})
}

// dispatchEvents forwards core events to audio and the debug log
func (g *game) dispatchEvents() {
	for _, ev := range g.gs.DrainEvents() {
		switch ev.Type {
		case engine.EventRoundStarted:
			log.Printf("round %s started", ev.RoundID)
		case engine.EventGameOver:
			log.Printf("round %s game over at %s, score %d", ev.RoundID, ev.At, ev.Score)
		case engine.EventWinStarted:
			log.Printf("round %s win sequence at %s, score %d", ev.RoundID, ev.At, ev.Score)
		case engine.EventBroken:
			log.Printf("round %s chaser broken", ev.RoundID)
		case engine.EventShieldBroken:
			log.Printf("round %s shield absorbed a hit at %s", ev.RoundID, ev.At)
		}
		g.sound.Handle(ev)
	}
}
