package musou

import (
	"fmt"
	"math"

	"github.com/vovakirdan/musou/internal/core"
)

// Minimum terminal size that still shows a playable field.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// Visual characters for rendering
const (
	ShieldChar  = '█'
	BombChar    = '●'
	BorderColor = core.ColorGray
)

var (
	enemyGlyphs   = [EnemyVariants]rune{'W', 'M', 'V'}
	enemyColors   = [EnemyVariants]core.Color{core.ColorMagenta, core.ColorGreen, core.ColorCyan}
	bombColors    = [BombVariants]core.Color{core.ColorRed, core.ColorGreen, core.ColorBlue, core.ColorYellow, core.ColorMagenta, core.ColorCyan}
	playerGlyphs  = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}
	beamGlyphs    = [4]rune{'─', '╱', '│', '╲'}
	explodeGlyphs = [2]rune{'*', '✶'}
)

// Render draws the current frame into dst. Row 0 is the HUD; the world is
// scaled into the rows below it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	f := g.Frame()
	v := newViewport(f, dst.Width(), dst.Height())

	for _, s := range f.Sprites {
		v.drawSprite(dst, s)
	}
	v.drawPlayer(dst, f.Player)

	drawHUD(dst, f)

	if hasGravity(f) {
		dst.TintAll(core.ColorDim)
	}
	if f.Tint {
		dst.TintAll(core.ColorYellow)
	}

	if f.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if f.GameOver {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Final score: %d", f.Score))
	}
}

// viewport maps world coordinates onto the cells below the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(f Frame, w, h int) viewport {
	return viewport{
		sx:  float64(w) / f.Width,
		sy:  float64(h-1) / f.Height,
		top: 1,
	}
}

// cells converts a world box to a cell rectangle at least one cell in size.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := max(int(math.Ceil(b.Right()*v.sx)), x0+1)
	y1 := max(int(math.Ceil(b.Bottom()*v.sy)), y0+1)
	return core.NewRect(x0, y0+v.top, x1-x0, y1-y0)
}

func (v viewport) drawSprite(dst *core.Screen, s Sprite) {
	r := v.cells(s.Box)
	switch s.Kind {
	case KindGravity:
		// Drawn as a screen tint
	case KindShield:
		dst.DrawRect(r, ShieldChar, core.ColorBlue)
	case KindEnemy:
		glyph := enemyGlyphs[s.Variant%EnemyVariants]
		dst.DrawRect(r, glyph, enemyColors[s.Variant%EnemyVariants])
		if s.Shielded {
			dst.DrawBox(r, core.ColorBrightCyan)
		}
	case KindBomb:
		dst.DrawRect(r, BombChar, bombColors[s.Variant%BombVariants])
	case KindBeam:
		dst.DrawRect(r, beamGlyph(s.Angle), core.ColorBrightYellow)
	case KindExplosion:
		dst.DrawRect(r, explodeGlyphs[s.Variant%2], core.ColorOrange)
	}
}

func (v viewport) drawPlayer(dst *core.Screen, p PlayerSprite) {
	color := core.ColorWhite
	switch {
	case p.Mood == MoodHurt:
		color = core.ColorBrightRed
	case p.Mode == ModeInvulnerable:
		color = core.ColorBrightCyan
	case p.Mood == MoodCheer:
		color = core.ColorBrightYellow
	}
	dst.DrawRect(v.cells(p.Box), playerGlyphs[p.Orientation%8], color)
}

// beamGlyph picks a line character closest to the beam's angle.
func beamGlyph(angle float64) rune {
	a := math.Mod(angle, 180)
	if a < 0 {
		a += 180
	}
	return beamGlyphs[int(math.Round(a/45))%4]
}

func hasGravity(f Frame) bool {
	for _, s := range f.Sprites {
		if s.Kind == KindGravity {
			return true
		}
	}
	return false
}

func drawHUD(dst *core.Screen, f Frame) {
	hud := fmt.Sprintf(" Score: %d ", f.Score)
	if f.Player.Mode == ModeInvulnerable {
		hud += fmt.Sprintf("| HYPER %d ", f.Player.InvulnerableTicks)
	}
	if f.EMPActive {
		hud += "| EMP "
	}
	dst.DrawRect(core.NewRect(0, 0, dst.Width(), 1), '─', BorderColor)
	dst.DrawText(2, 0, hud)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
