package simon

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/simon-arcade/internal/core"
)

func renderString(g *Game) string {
	screen := core.NewScreen(g.screenW, g.screenH)
	g.Render(screen)
	return screen.String()
}

func TestRenderScreens(t *testing.T) {
	g, clock := newTestGame(t, 1)

	out := renderString(g)
	for _, want := range []string{"S I M O N", "[1] Text mode", "[2] Position mode"} {
		if !strings.Contains(out, want) {
			t.Errorf("home screen missing %q", want)
		}
	}

	g.SelectMode(ModeText)
	out = renderString(g)
	if !strings.Contains(out, "Get ready") || !strings.Contains(out, "Which CHARACTER") {
		t.Errorf("countdown screen missing text:\n%s", out)
	}

	clock.Advance(3 * time.Second)
	g.Step(core.NewInputFrame())
	out = renderString(g)
	if !strings.Contains(out, g.challenge.Glyph) {
		t.Errorf("play screen missing glyph %q", g.challenge.Glyph)
	}
	if !strings.Contains(out, "Time 60s") || !strings.Contains(out, "Score 0/0") {
		t.Errorf("play screen missing HUD:\n%s", out)
	}

	g.Answer(g.Expected())
	if out = renderString(g); !strings.Contains(out, "Correct") {
		t.Error("play screen should show feedback after an answer")
	}

	clock.Advance(60 * time.Second)
	g.Step(core.NewInputFrame())
	out = renderString(g)
	for _, want := range []string{"R O U N D   O V E R", "Accuracy       100%", "Time/answer    60.0s"} {
		if !strings.Contains(out, want) {
			t.Errorf("result screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g, _ := newTestGame(t, 1)
	g.Resize(30, 10)

	if out := renderString(g); !strings.Contains(out, "Window too small") {
		t.Errorf("expected too-small message, got:\n%s", out)
	}
}

func TestStimulusPosition(t *testing.T) {
	g, _ := newTestGame(t, 1)
	inner := core.NewRect(2, 3, 76, 14)

	g.challenge = Challenge{Side: SideLeft, Offset: 10}
	lx, ly := g.stimulusPos(inner)
	g.challenge = Challenge{Side: SideRight, Offset: 10}
	rx, ry := g.stimulusPos(inner)

	if lx >= inner.X+inner.W/2 {
		t.Errorf("left stimulus at x=%d is not on the left half", lx)
	}
	if rx < inner.X+inner.W/2 {
		t.Errorf("right stimulus at x=%d is not on the right half", rx)
	}
	if ly != ry {
		t.Errorf("stimuli should share a row, got %d and %d", ly, ry)
	}
	if lx-inner.X != inner.Right()-2-rx {
		t.Errorf("offsets are not mirrored: left %d, right %d", lx-inner.X, inner.Right()-2-rx)
	}
}
