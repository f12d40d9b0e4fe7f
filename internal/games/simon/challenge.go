package simon

import (
	"math/rand"

	"github.com/vovakirdan/simon-arcade/internal/config"
)

// Side is the half of the screen a stimulus appears on.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Challenge is one stimulus the player must respond to.
type Challenge struct {
	Glyph  string
	Side   Side
	Offset int // Distance from the side's edge, percent of screen width
}

// Generator draws challenges. Every component is drawn independently and
// uniformly; nothing prevents the same challenge twice in a row.
type Generator struct {
	rng       *rand.Rand
	glyphs    [2]string
	offsetMin int
	offsetMax int
}

// NewGenerator creates a generator seeded for deterministic draws.
func NewGenerator(seed int64, cfg config.StimulusConfig) *Generator {
	return &Generator{
		rng:       rand.New(rand.NewSource(seed)),
		glyphs:    [2]string{cfg.LeftGlyph, cfg.RightGlyph},
		offsetMin: cfg.OffsetMin,
		offsetMax: cfg.OffsetMax,
	}
}

// Next draws a new challenge.
func (g *Generator) Next() Challenge {
	glyph := g.glyphs[g.rng.Intn(2)]
	side := Side(g.rng.Intn(2))
	offset := g.offsetMin + g.rng.Intn(g.offsetMax-g.offsetMin+1)

	return Challenge{
		Glyph:  glyph,
		Side:   side,
		Offset: offset,
	}
}
