package simon

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/simon-arcade/internal/core"
)

const (
	minScreenW = 40
	minScreenH = 14
)

// bigDigits is a 3x5 block font for the countdown.
var bigDigits = [10][5]string{
	{"███", "█ █", "█ █", "█ █", "███"},
	{" █ ", "██ ", " █ ", " █ ", "███"},
	{"███", "  █", "███", "█  ", "███"},
	{"███", "  █", "███", "  █", "███"},
	{"█ █", "█ █", "███", "  █", "  █"},
	{"███", "█  ", "███", "  █", "███"},
	{"███", "█  ", "███", "█ █", "███"},
	{"███", "  █", "  █", "  █", "  █"},
	{"███", "█ █", "███", "█ █", "███"},
	{"███", "█ █", "███", "  █", "███"},
}

// Render draws the current screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenW < minScreenW || g.screenH < minScreenH {
		g.renderTooSmall(dst)
		return
	}

	switch g.Screen() {
	case ScreenHome:
		g.renderHome(dst)
	case ScreenPlay:
		if g.counting {
			g.renderCountdown(dst)
		} else {
			g.renderPlay(dst)
		}
	case ScreenResult:
		g.renderResult(dst)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHome(dst *core.Screen) {
	left, right := g.cfg.Stimulus.LeftGlyph, g.cfg.Stimulus.RightGlyph

	dst.DrawTextCenteredColor(2, "S I M O N   E F F E C T", core.ColorBrightYellow)
	dst.DrawTextCenteredColor(4, "React to the character, or to where it appears", core.ColorGray)

	dst.DrawTextCentered(7, "[1] Text mode       answer the character shown  ")
	dst.DrawTextCentered(8, "[2] Position mode   answer the side it is on    ")

	dst.DrawTextCenteredColor(11, fmt.Sprintf("%s = left     %s = right", left, right), core.ColorCyan)
	dst.DrawTextCenteredColor(12, fmt.Sprintf("%d second round", g.cfg.Round.LengthSeconds), core.ColorGray)

	dst.DrawTextCenteredColor(dst.Height()-1, "1/2: Start  |  Tab: Scores  |  Q: Quit", core.ColorGray)
}

// arena is the boxed area challenges are drawn in.
func (g *Game) arena(dst *core.Screen) core.Rect {
	return core.NewRect(1, 2, dst.Width()-2, dst.Height()-6)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Time %2ds", g.timeLeft), core.ColorYellow)

	prompt := "Which CHARACTER is shown?"
	if g.mode == ModePosition {
		prompt = "Which SIDE is it on?"
	}
	dst.DrawTextCenteredColor(0, prompt, core.ColorBrightWhite)

	score := fmt.Sprintf("Score %d/%d", g.score, g.total)
	dst.DrawTextColor(dst.Width()-1-len(score), 0, score, core.ColorGreen)
}

func (g *Game) renderCountdown(dst *core.Screen) {
	g.renderHUD(dst)
	area := g.arena(dst)
	dst.DrawBox(area, core.ColorGray)

	_, cy := area.Center()
	dst.DrawTextCenteredColor(area.Y+1, "Get ready", core.ColorGray)

	digits := strconv.Itoa(g.countdown)
	width := len(digits)*4 - 1
	x := (dst.Width() - width) / 2
	for i, ch := range digits {
		glyph := bigDigits[ch-'0']
		for row, line := range glyph {
			dst.DrawTextColor(x+i*4, cy-2+row, line, core.ColorBrightYellow)
		}
	}

	g.renderFooter(dst)
}

func (g *Game) renderPlay(dst *core.Screen) {
	g.renderHUD(dst)
	area := g.arena(dst)
	dst.DrawBox(area, core.ColorGray)

	inner := area.Inset(1)
	switch g.lastResult {
	case ResultCorrect:
		dst.DrawTextCenteredColor(inner.Y, "○ Correct", core.ColorBrightGreen)
	case ResultIncorrect:
		dst.DrawTextCenteredColor(inner.Y, "× Wrong", core.ColorBrightRed)
	}

	x, y := g.stimulusPos(inner)
	dst.DrawTextColor(x, y, g.challenge.Glyph, core.ColorBrightWhite)

	buttonColor := core.ColorCyan
	if g.inputLocked {
		buttonColor = core.ColorGray
	}
	row := dst.Height() - 3
	leftBtn := "[←] " + g.cfg.Stimulus.LeftGlyph
	rightBtn := "[→] " + g.cfg.Stimulus.RightGlyph
	dst.DrawTextColor(dst.Width()/4-3, row, leftBtn, buttonColor)
	dst.DrawTextColor(dst.Width()*3/4-3, row, rightBtn, buttonColor)

	g.renderFooter(dst)
}

// stimulusPos places the glyph Offset percent in from its side's edge.
func (g *Game) stimulusPos(inner core.Rect) (int, int) {
	off := g.challenge.Offset * inner.W / 100
	x := inner.X + off
	if g.challenge.Side == SideRight {
		x = inner.Right() - 2 - off
	}
	x = core.Clamp(x, inner.X, inner.Right()-2)
	return x, inner.Y + inner.H/2
}

func (g *Game) renderFooter(dst *core.Screen) {
	dst.DrawTextCenteredColor(dst.Height()-1, "←/→: Answer  |  Esc: End round  |  Q: Quit", core.ColorGray)
}

func (g *Game) renderResult(dst *core.Screen) {
	mean, best := reactionStats(g.reactions)

	dst.DrawTextCenteredColor(2, "R O U N D   O V E R", core.ColorBrightYellow)
	dst.DrawTextCenteredColor(3, g.mode.Title()+" mode", core.ColorGray)

	lines := []string{
		fmt.Sprintf("Score          %d", g.score),
		fmt.Sprintf("Answers        %d", g.total),
		fmt.Sprintf("Accuracy       %d%%", Accuracy(g.score, g.total)),
		fmt.Sprintf("Time/answer    %ss", AverageTime(g.cfg.Round.LengthSeconds, g.total)),
		fmt.Sprintf("Reaction       %s avg / %s best", formatMillis(mean), formatMillis(best)),
	}
	x := (dst.Width() - 36) / 2
	dst.DrawHLine(x, 5, 36, '─')
	for i, line := range lines {
		dst.DrawText(x, 6+i, line)
	}

	dst.DrawTextCenteredColor(dst.Height()-1, "R/Enter: Home  |  Tab: Scores  |  Q: Quit", core.ColorGray)
}

func formatMillis(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}
