package wand

import (
	"fmt"

	"github.com/NathanSnail/rand-wand/internal/spell"
)

// Generator draws casts from a preset generator graph.
type Generator struct {
	node spell.Node
	src  spell.Source
}

// New builds the generator graph for preset and binds it to src.
func New(preset Preset, src spell.Source) (*Generator, error) {
	node, err := Build(preset)
	if err != nil {
		return nil, err
	}
	return &Generator{node: node, src: src}, nil
}

// Cast draws one effect sequence.
func (g *Generator) Cast() ([]string, error) {
	return spell.Sample(g.node, g.src)
}

// Casts draws count effect sequences in order.
func (g *Generator) Casts(count int) ([][]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("cast count must be positive, got %d", count)
	}
	casts := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		cast, err := g.Cast()
		if err != nil {
			return nil, fmt.Errorf("cast %d: %w", i, err)
		}
		casts = append(casts, cast)
	}
	return casts, nil
}

// Frequencies estimates how often each effect appears per cast by drawing
// trials casts and averaging occurrence counts.
func (g *Generator) Frequencies(trials int) (map[string]float64, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("trial count must be positive, got %d", trials)
	}
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		cast, err := g.Cast()
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		for _, effect := range cast {
			counts[effect]++
		}
	}
	freqs := make(map[string]float64, len(counts))
	for effect, count := range counts {
		freqs[effect] = float64(count) / float64(trials)
	}
	return freqs, nil
}
