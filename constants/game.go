package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single simulation step after stalls (resume, window drag)
	MaxFrameDelta = 100 * time.Millisecond
)

// Canvas
const (
	// DefaultCanvasWidth is the canvas width used when no front end supplies one
	DefaultCanvasWidth = 800.0

	// DefaultCanvasHeight is the canvas height used when no front end supplies one
	DefaultCanvasHeight = 600.0
)

// Terminal front end
const (
	// CellUnitsX is the canvas width covered by one terminal column
	CellUnitsX = 10.0

	// CellUnitsY is the canvas height covered by one terminal row
	CellUnitsY = 20.0

	// KeyHoldWindow keeps a direction held between terminal key repeats
	KeyHoldWindow = 150 * time.Millisecond
)
