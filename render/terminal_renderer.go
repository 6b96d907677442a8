package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/chaser/engine"
	"github.com/lixenwraith/chaser/vmath"
)

const statusBarRows = 1

// Overlay flags drawn on top of the frame by the front end
type Overlay struct {
	Paused bool
	Muted  bool
}

// TerminalRenderer draws snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	w, h := screen.Size()
	return &TerminalRenderer{screen: screen, width: w, height: h}
}

// UpdateDimensions records a new screen size
func (r *TerminalRenderer) UpdateDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Viewport returns the canvas mapping for a canvas of w x h units
func (r *TerminalRenderer) Viewport(w, h float64) Viewport {
	return NewViewport(r.width, r.height, w, h)
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(s engine.Snapshot, ov Overlay) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	vp := r.Viewport(s.Width, s.Height)

	// Back to front: barriers, pickups, decoys, chaser, player
	for _, st := range s.Strokes {
		r.drawPolyline(vp, st.Points, defaultStyle.Foreground(RgbStroke))
	}
	r.drawPolyline(vp, s.CurrentStroke, defaultStyle.Foreground(RgbStrokePending))

	for _, p := range s.Pickups {
		g := pickupGlyphs[p.Kind]
		x, y := vp.ToCell(p.Pos)
		r.screen.SetContent(x, y, g.ch, nil, defaultStyle.Foreground(g.color).Bold(true))
	}

	for _, d := range s.Decoys {
		color := RgbDecoy
		if d.Clicked {
			color = RgbDecoyClicked
		}
		x, y := vp.ToCell(d.Pos)
		r.screen.SetContent(x, y, '+', nil, defaultStyle.Foreground(color))
	}

	r.drawChaser(vp, s, defaultStyle)
	r.drawPlayer(vp, s, defaultStyle)

	r.drawStatusBar(s, ov, defaultStyle)
	r.drawBanner(s, ov, defaultStyle)

	r.screen.Show()
}

// drawPolyline marks every cell a stroke passes through
func (r *TerminalRenderer) drawPolyline(vp Viewport, points []vmath.Vec2, style tcell.Style) {
	if len(points) == 0 {
		return
	}
	cw, ch := vp.CellSize()
	stepLen := math.Min(cw, ch) / 2

	plot := func(p vmath.Vec2) {
		x, y := vp.ToCell(p)
		r.screen.SetContent(x, y, '#', nil, style)
	}

	plot(points[0])
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		steps := int(vmath.V2Dist(a, b)/stepLen) + 1
		for k := 1; k <= steps; k++ {
			plot(vmath.V2Lerp(a, b, float64(k)/float64(steps)))
		}
	}
}

// drawChaser fills the cells whose centers fall inside the chaser disc
// A disc smaller than one cell still occupies its center cell
func (r *TerminalRenderer) drawChaser(vp Viewport, s engine.Snapshot, defaultStyle tcell.Style) {
	ch, color := '█', RgbChaser
	switch {
	case s.Broken:
		ch, color = '░', RgbChaserBroken
	case s.Cracked:
		ch, color = '▓', RgbChaserCracked
	}
	style := defaultStyle.Foreground(color)

	c := s.Chaser
	minX, minY := vp.ToCell(vmath.Vec2{X: c.Pos.X - c.Radius, Y: c.Pos.Y - c.Radius})
	maxX, maxY := vp.ToCell(vmath.Vec2{X: c.Pos.X + c.Radius, Y: c.Pos.Y + c.Radius})
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			center, ok := vp.ToCanvas(x, y)
			if ok && vmath.V2Dist(center, c.Pos) <= c.Radius {
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}

	x, y := vp.ToCell(c.Pos)
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *TerminalRenderer) drawPlayer(vp Viewport, s engine.Snapshot, defaultStyle tcell.Style) {
	x, y := vp.ToCell(s.Player)
	switch {
	case !s.PlayerVisible:
		r.screen.SetContent(x, y, '◇', nil, defaultStyle.Foreground(RgbPlayerHidden))
	case s.Shield.Active:
		r.screen.SetContent(x, y, '◆', nil, defaultStyle.Foreground(RgbShieldRing).Bold(true))
	default:
		r.screen.SetContent(x, y, '◆', nil, defaultStyle.Foreground(RgbPlayer).Bold(true))
	}
}

// drawStatusBar draws score, speed and effect badges on the top row
func (r *TerminalRenderer) drawStatusBar(s engine.Snapshot, ov Overlay, defaultStyle tcell.Style) {
	textStyle := defaultStyle.Foreground(RgbStatusBar)
	x := r.drawText(0, 0, fmt.Sprintf(" SCORE %d  SPEED %.0f ", s.Score, s.Chaser.Speed), textStyle)

	badge := func(label string, e engine.EffectStatus, bg tcell.Color) {
		if !e.Active {
			return
		}
		text := fmt.Sprintf(" %s %.1fs ", label, e.Remaining.Seconds())
		x = r.drawText(x+1, 0, text, tcell.StyleDefault.Foreground(RgbStatusText).Background(bg))
	}
	badge("SHIELD", s.Shield, RgbShieldBg)
	badge("STEALTH", s.Stealth, RgbStealthBg)
	badge("PAINT", s.PaintMode, RgbPaintBg)

	var flags []string
	if ov.Muted {
		flags = append(flags, "MUTED")
	}
	if ov.Paused {
		flags = append(flags, "PAUSED")
	}
	if len(flags) > 0 {
		text := strings.Join(flags, " ") + " "
		r.drawText(r.width-len(text), 0, text, textStyle.Bold(true))
	}
}

// drawBanner centers the round message over the canvas
func (r *TerminalRenderer) drawBanner(s engine.Snapshot, ov Overlay, defaultStyle tcell.Style) {
	text := BannerText(s, ov)
	if text == "" {
		return
	}
	x := (r.width - len([]rune(text))) / 2
	y := statusBarRows + (r.height-statusBarRows)/2
	r.drawText(x, y, text, defaultStyle.Foreground(RgbStatusBar).Background(RgbOverlayBg).Bold(true))
}

// BannerText returns the centered message for the round state, empty during normal play
func BannerText(s engine.Snapshot, ov Overlay) string {
	switch s.Round {
	case engine.RoundGameOver:
		return fmt.Sprintf(" GAME OVER  score %d  survived %s  [r] restart ", s.Score, s.Elapsed.Truncate(time.Second))
	case engine.RoundWinActive:
		if s.Cracked {
			return fmt.Sprintf(" IT'S CRACKING  %d/%d ", s.Clicks, s.ClickTarget)
		}
		return fmt.Sprintf(" CLICK THE CHASER  %d/%d ", s.Clicks, s.ClickTarget)
	case engine.RoundWinComplete:
		return fmt.Sprintf(" YOU BROKE IT  score %d  [r] restart ", s.Score)
	}
	if ov.Paused {
		return " PAUSED  [p] resume "
	}
	return ""
}

// drawText writes text from (x, y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= 0 && x < r.width {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
