package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaser/engine"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbPlayer       = tcell.NewRGBColor(255, 255, 255) // White cursor
	RgbPlayerHidden = tcell.NewRGBColor(90, 90, 110)   // Dim while stealthed
	RgbShieldRing   = tcell.NewRGBColor(100, 150, 255) // Blue shield

	RgbChaser        = tcell.NewRGBColor(255, 80, 80)   // Red disc
	RgbChaserCracked = tcell.NewRGBColor(200, 120, 120) // Faded red
	RgbChaserBroken  = tcell.NewRGBColor(120, 120, 120) // Gray rubble

	RgbStroke        = tcell.NewRGBColor(255, 165, 0)   // Orange barrier
	RgbStrokePending = tcell.NewRGBColor(255, 210, 120) // Light orange while drawing

	RgbDecoy        = tcell.NewRGBColor(180, 180, 180) // Gray fake cursor
	RgbDecoyClicked = tcell.NewRGBColor(80, 80, 80)    // Dark gray after first click

	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for badges
	RgbShieldBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStealthBg  = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbPaintBg    = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbOverlayBg  = tcell.NewRGBColor(128, 0, 128)   // Dark purple
)

// pickupGlyph is how one pickup kind is drawn
type pickupGlyph struct {
	ch    rune
	color tcell.Color
}

var pickupGlyphs = map[engine.PickupKind]pickupGlyph{
	engine.PickupTeleport: {'T', tcell.NewRGBColor(180, 100, 255)},
	engine.PickupSwap:     {'S', tcell.NewRGBColor(0, 200, 200)},
	engine.PickupStealth:  {'H', tcell.NewRGBColor(144, 238, 144)},
	engine.PickupShield:   {'O', tcell.NewRGBColor(100, 150, 255)},
	engine.PickupPaint:    {'P', tcell.NewRGBColor(255, 255, 0)},
}
