// Package replay records the inputs of a session and rebuilds the session from them
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/chaser/config"
	"github.com/lixenwraith/chaser/engine"
	"github.com/lixenwraith/chaser/vmath"
)

// FormatVersion is bumped whenever Frame or Recording change shape
const FormatVersion = 1

var (
	ErrVersion      = errors.New("unsupported replay version")
	ErrUnknownFrame = errors.New("unknown replay frame")
)

// FrameKind tags what a frame replays
type FrameKind uint8

const (
	FrameAdvance FrameKind = iota
	FrameClick
	FrameRestart
	FrameResize
)

// Frame is one call into the game state
type Frame struct {
	Kind FrameKind `msgpack:"k"`

	// FrameAdvance
	DT      time.Duration `msgpack:"dt,omitempty"`
	Pointer bool          `msgpack:"p,omitempty"`
	X       float64       `msgpack:"x,omitempty"`
	Y       float64       `msgpack:"y,omitempty"`
	DirX    float64       `msgpack:"dx,omitempty"`
	DirY    float64       `msgpack:"dy,omitempty"`
	Drawing bool          `msgpack:"d,omitempty"`

	// FrameResize
	Width  float64 `msgpack:"w,omitempty"`
	Height float64 `msgpack:"h,omitempty"`
}

// Input returns the engine input of an advance frame
func (f Frame) Input() engine.Input {
	return engine.Input{
		Pointer: f.Pointer,
		Target:  vmath.Vec2{X: f.X, Y: f.Y},
		DirX:    f.DirX,
		DirY:    f.DirY,
		Drawing: f.Drawing,
	}
}

// Recording is a whole session, the config carries the seed
type Recording struct {
	Version   int           `msgpack:"version"`
	ID        string        `msgpack:"id"`
	CreatedAt time.Time     `msgpack:"created_at"`
	Config    config.Config `msgpack:"config"`
	Frames    []Frame       `msgpack:"frames"`
}

// Recorder wraps a game state and logs every call made through it
type Recorder struct {
	gs  *engine.GameState
	rec Recording
}

// NewRecorder starts a recorded session from cfg
func NewRecorder(cfg config.Config) *Recorder {
	return &Recorder{
		gs: engine.NewGameState(cfg),
		rec: Recording{
			Version:   FormatVersion,
			ID:        uuid.NewString(),
			CreatedAt: time.Now().UTC(),
			Config:    cfg,
		},
	}
}

// State returns the recorded game state for reads
// Mutations must go through the Recorder
func (r *Recorder) State() *engine.GameState {
	return r.gs
}

// Advance records and runs one simulation step
func (r *Recorder) Advance(in engine.Input, dt time.Duration) {
	r.rec.Frames = append(r.rec.Frames, Frame{
		Kind:    FrameAdvance,
		DT:      dt,
		Pointer: in.Pointer,
		X:       in.Target.X,
		Y:       in.Target.Y,
		DirX:    in.DirX,
		DirY:    in.DirY,
		Drawing: in.Drawing,
	})
	r.gs.Advance(in, dt)
}

// Click records and forwards a win click
func (r *Recorder) Click() bool {
	r.rec.Frames = append(r.rec.Frames, Frame{Kind: FrameClick})
	return r.gs.Click()
}

// Restart records and forwards a restart
func (r *Recorder) Restart() {
	r.rec.Frames = append(r.rec.Frames, Frame{Kind: FrameRestart})
	r.gs.Restart()
}

// Resize records and forwards a canvas resize
func (r *Recorder) Resize(width, height float64) {
	r.rec.Frames = append(r.rec.Frames, Frame{Kind: FrameResize, Width: width, Height: height})
	r.gs.Resize(width, height)
}

// Recording returns the session recorded so far
func (r *Recorder) Recording() *Recording {
	return &r.rec
}

// Play rebuilds the final game state of a recording
func Play(rec *Recording) (*engine.GameState, error) {
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("version %d: %w", rec.Version, ErrVersion)
	}

	gs := engine.NewGameState(rec.Config)
	for i, f := range rec.Frames {
		switch f.Kind {
		case FrameAdvance:
			gs.Advance(f.Input(), f.DT)
		case FrameClick:
			gs.Click()
		case FrameRestart:
			gs.Restart()
		case FrameResize:
			gs.Resize(f.Width, f.Height)
		default:
			return nil, fmt.Errorf("frame %d kind %d: %w", i, f.Kind, ErrUnknownFrame)
		}
	}
	return gs, nil
}

// Save writes rec as msgpack
func Save(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}
	return nil
}

// Load reads a msgpack recording
func Load(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	if rec.Version != FormatVersion {
		return nil, fmt.Errorf("version %d: %w", rec.Version, ErrVersion)
	}
	return &rec, nil
}

// SaveFile writes rec to path, replacing any existing file
func SaveFile(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create replay: %w", err)
	}
	if err := Save(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a recording from path
func LoadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer f.Close()
	return Load(f)
}
