// Package puzzle builds the token tray and draws hidden region targets
package puzzle

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/lixenwraith/venn-deduction/attribute"
	"github.com/lixenwraith/venn-deduction/component"
	"github.com/lixenwraith/venn-deduction/vmath"
)

// Rand is the randomness source a puzzle is drawn from
// *math/rand.Rand satisfies it; a seeded source reproduces a puzzle exactly
type Rand interface {
	Intn(n int) int
	io.Reader
}

// Sampling selects how attribute values are drawn
type Sampling uint8

const (
	// SampleUniform draws every value of a domain with equal probability
	SampleUniform Sampling = iota
	// SampleLegacy draws from [0, Cardinality-1), never producing the last value
	SampleLegacy
)

func (s Sampling) String() string {
	if s == SampleLegacy {
		return "legacy"
	}
	return "uniform"
}

// ParseSampling maps a config string to a sampling mode
func ParseSampling(s string) (Sampling, error) {
	switch s {
	case "", "uniform":
		return SampleUniform, nil
	case "legacy":
		return SampleLegacy, nil
	}
	return SampleUniform, fmt.Errorf("unknown sampling mode %q", s)
}

// Options configures Generate
type Options struct {
	Layout   Layout
	Sampling Sampling
}

// Puzzle is a freshly generated board
type Puzzle struct {
	ID     uuid.UUID
	Left   component.Region
	Right  component.Region
	Tokens []component.Token
}

// Generate builds the tray and samples hidden targets from rng
// Draw order is fixed: left, right, left slot, right slot, then the puzzle ID
func Generate(rng Rand, opts Options) (*Puzzle, error) {
	l := opts.Layout
	p := &Puzzle{
		Left: component.Region{
			Center: l.LeftCenter(),
			Radius: l.RegionRadius,
			Target: drawTarget(rng, opts.Sampling),
		},
		Right: component.Region{
			Center: l.RightCenter(),
			Radius: l.RegionRadius,
			Target: drawTarget(rng, opts.Sampling),
		},
		Tokens: Tray(l),
	}

	if l.Slots {
		p.Left.Slot = newSlot(l, p.Left.Center, drawTarget(rng, opts.Sampling))
		p.Right.Slot = newSlot(l, p.Right.Center, drawTarget(rng, opts.Sampling))
	}

	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return nil, fmt.Errorf("puzzle id: %w", err)
	}
	p.ID = id

	return p, nil
}

// Tray builds one token per shape x color pair, shape-major, in tray order
// Size is fixed; it never varies across the tray
func Tray(l Layout) []component.Token {
	tokens := make([]component.Token, 0, len(attribute.Shapes)*len(attribute.Colors))
	for _, shape := range attribute.Shapes {
		for _, color := range attribute.Colors {
			tokens = append(tokens, component.Token{
				Center: l.TrayPosition(len(tokens)),
				Radius: l.TokenRadius,
				Target: attribute.Target{
					Shape: shape,
					Color: color,
					Size:  attribute.SizeSmall,
				},
			})
		}
	}
	return tokens
}

func newSlot(l Layout, regionCenter vmath.Vec2, target attribute.Target) *component.AnswerSlot {
	return &component.AnswerSlot{
		Center: l.SlotCenter(regionCenter),
		Width:  l.SlotWidth,
		Height: l.SlotHeight,
		Target: target,
	}
}

func drawTarget(rng Rand, mode Sampling) attribute.Target {
	return attribute.Target{
		Shape: attribute.Shapes[drawIndex(rng, mode)],
		Color: attribute.Colors[drawIndex(rng, mode)],
		Size:  attribute.Sizes[drawIndex(rng, mode)],
	}
}

func drawIndex(rng Rand, mode Sampling) int {
	n := attribute.Cardinality
	if mode == SampleLegacy {
		n--
	}
	return rng.Intn(n)
}
