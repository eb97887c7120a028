package amoeboids

import (
	"fmt"

	"github.com/vovakirdan/amoeboids/internal/core"
)

// Display receives score and mode updates. It is optional: the simulation
// never depends on what a display does with them.
type Display interface {
	SetScore(score int)
	SetMode(mode Mode)
}

// Overlay is the built-in text display drawn over the play area.
type Overlay struct {
	score int
	level int
	mode  Mode
}

// SetScore records the score shown in the HUD.
func (o *Overlay) SetScore(score int) {
	o.score = score
}

// SetMode selects the banner.
func (o *Overlay) SetMode(mode Mode) {
	o.mode = mode
}

// SetLevel records the level shown in the HUD.
func (o *Overlay) SetLevel(level int) {
	o.level = level
}

// Draw renders the HUD line on row 0 and the banner for the current mode.
func (o *Overlay) Draw(dst *core.Screen) {
	hud := fmt.Sprintf(" AMOEBOIDS  Score: %d  Level: %d", o.score, o.level)
	dst.DrawTextWithColor(0, 0, hud, core.ColorCyan)

	hint := "W/S thrust  A/D turn  Space fire  P pause "
	if x := dst.Width() - len(hint); x > len(hud)+1 {
		dst.DrawTextWithColor(x, 0, hint, core.ColorGray)
	}

	switch o.mode {
	case ModeWelcome:
		drawBanner(dst, core.ColorBrightGreen, "AMOEBOIDS", "Press Enter to Start")
	case ModePause:
		drawBanner(dst, core.ColorYellow, "Paused", "Press Enter to Resume")
	case ModeOver:
		drawBanner(dst, core.ColorBrightRed, "Game Over",
			fmt.Sprintf("Score: %d  Level: %d", o.score, o.level),
			"Press Enter to Continue")
	}
}

// drawBanner draws a centered box with one line of text per entry,
// separated by blank lines.
func drawBanner(dst *core.Screen, color core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	boxW := width + 6
	boxH := len(lines)*2 + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxWithColor(box, color)
	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = color
		}
		dst.DrawTextCenteredWithColor(box.Y+1+i*2, l, c)
	}
}
