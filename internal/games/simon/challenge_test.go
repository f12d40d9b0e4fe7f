package simon

import (
	"testing"

	"github.com/vovakirdan/simon-arcade/internal/config"
)

func TestGeneratorRanges(t *testing.T) {
	cfg := config.DefaultSimonConfig().Stimulus
	gen := NewGenerator(1, cfg)

	offsets := make(map[int]int)
	glyphs := make(map[string]int)
	sides := make(map[Side]int)

	const draws = 10000
	for range draws {
		ch := gen.Next()
		if ch.Offset < cfg.OffsetMin || ch.Offset > cfg.OffsetMax {
			t.Fatalf("offset %d outside [%d, %d]", ch.Offset, cfg.OffsetMin, cfg.OffsetMax)
		}
		if ch.Glyph != cfg.LeftGlyph && ch.Glyph != cfg.RightGlyph {
			t.Fatalf("unexpected glyph %q", ch.Glyph)
		}
		offsets[ch.Offset]++
		glyphs[ch.Glyph]++
		sides[ch.Side]++
	}

	if len(offsets) != cfg.OffsetMax-cfg.OffsetMin+1 {
		t.Errorf("saw %d distinct offsets, expected every value in range", len(offsets))
	}
	for glyph, n := range glyphs {
		if n < draws*4/10 {
			t.Errorf("glyph %q drawn %d times, expected about half", glyph, n)
		}
	}
	for side, n := range sides {
		if n < draws*4/10 {
			t.Errorf("side %s drawn %d times, expected about half", side, n)
		}
	}
}

func TestGeneratorIndependentAttributes(t *testing.T) {
	gen := NewGenerator(5, config.DefaultSimonConfig().Stimulus)

	// Congruent and incongruent pairs must both occur.
	combos := make(map[[2]string]bool)
	for range 1000 {
		ch := gen.Next()
		combos[[2]string{ch.Glyph, ch.Side.String()}] = true
	}
	if len(combos) != 4 {
		t.Errorf("saw %d glyph/side combinations, expected 4", len(combos))
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	cfg := config.DefaultSimonConfig().Stimulus
	a := NewGenerator(42, cfg)
	b := NewGenerator(42, cfg)

	for i := range 100 {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d differs: %+v vs %+v", i, x, y)
		}
	}
}

func TestGeneratorFixedOffset(t *testing.T) {
	cfg := config.DefaultSimonConfig().Stimulus
	cfg.OffsetMin, cfg.OffsetMax = 20, 20
	gen := NewGenerator(1, cfg)

	for range 50 {
		if off := gen.Next().Offset; off != 20 {
			t.Fatalf("offset = %d, expected 20", off)
		}
	}
}

func TestSideString(t *testing.T) {
	if SideLeft.String() != "left" || SideRight.String() != "right" {
		t.Errorf("Side strings = %q, %q", SideLeft, SideRight)
	}
}
