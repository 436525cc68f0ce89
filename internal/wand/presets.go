// Package wand builds ready-made effect generators on top of the spell
// algebra and draws concrete casts from them.
package wand

import (
	"errors"
	"fmt"

	"github.com/NathanSnail/rand-wand/internal/spell"
)

// Preset names a built-in wand construction.
type Preset string

const (
	// PresetStarter is a short fixed core with one optional flourish.
	PresetStarter Preset = "starter"

	// PresetChaos draws three effects from a wide weighted pool.
	PresetChaos Preset = "chaos"

	// PresetChain is recursive: every cast may chain into another full
	// cast before releasing.
	PresetChain Preset = "chain"
)

// ErrUnknownPreset indicates a preset name that is not built in.
var ErrUnknownPreset = errors.New("unknown preset")

// Presets lists the built-in presets in stable order.
func Presets() []Preset {
	return []Preset{PresetStarter, PresetChaos, PresetChain}
}

// Describe returns a one-line description of a preset.
func Describe(preset Preset) (string, error) {
	switch preset {
	case PresetStarter:
		return "a fixed spark-ember core with an occasional glimmer", nil
	case PresetChaos:
		return "three draws from a weighted pool of eight effects", nil
	case PresetChain:
		return "a strike that may chain into further strikes before release", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
}

// Build constructs the generator graph for preset.
func Build(preset Preset) (spell.Node, error) {
	switch preset {
	case PresetStarter:
		return buildStarter()
	case PresetChaos:
		return buildChaos()
	case PresetChain:
		return buildChain()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
}

// buildStarter yields "spark ember" with a glimmer appended half the time.
func buildStarter() (spell.Node, error) {
	flourish, err := spell.WithWeight(spell.Token("glimmer"), 0.5)
	if err != nil {
		return nil, fmt.Errorf("weight flourish: %w", err)
	}
	core := spell.Sequence(spell.Token("spark"), spell.Token("ember"))
	return spell.Sequence(core, spell.Optional(flourish)), nil
}

// effectPool is the weighted effect table shared by the chaos and chain
// presets. Common effects carry more mass than rare ones.
var effectPool = []struct {
	name   string
	weight float64
}{
	{"spark", 4},
	{"ember", 4},
	{"frost", 3},
	{"gust", 3},
	{"arc", 2},
	{"stone", 2},
	{"wisp", 1},
	{"echo", 1},
}

// poolChoice builds the weighted alternative over the effect pool.
func poolChoice() (spell.Node, error) {
	var choice spell.Node
	for _, effect := range effectPool {
		weighted, err := spell.WithWeight(spell.Token(effect.name), effect.weight)
		if err != nil {
			return nil, fmt.Errorf("weight %s: %w", effect.name, err)
		}
		if choice == nil {
			choice = weighted
			continue
		}
		merged, err := spell.Alternative(choice, weighted)
		if err != nil {
			return nil, fmt.Errorf("merge %s: %w", effect.name, err)
		}
		choice = merged
	}
	return choice, nil
}

// buildChaos samples the effect pool three times in a row.
func buildChaos() (spell.Node, error) {
	choice, err := poolChoice()
	if err != nil {
		return nil, err
	}
	return spell.Sequence(spell.Sequence(choice, choice), choice), nil
}

// buildChain starts with a draw, then strikes from the pool; each strike has
// a 0.4 chance of chaining another strike, and every cast ends with release.
// The recursion weight stays below the release weight so expansion
// terminates with probability one.
func buildChain() (spell.Node, error) {
	choice, err := poolChoice()
	if err != nil {
		return nil, err
	}

	ref := spell.SelfReference()
	again, err := spell.WithWeight(ref, 0.4)
	if err != nil {
		return nil, fmt.Errorf("weight chain: %w", err)
	}
	release, err := spell.WithWeight(spell.Token("release"), 0.6)
	if err != nil {
		return nil, fmt.Errorf("weight release: %w", err)
	}
	tail, err := spell.Alternative(release, again)
	if err != nil {
		return nil, fmt.Errorf("merge tail: %w", err)
	}

	body := spell.Sequence(choice, tail)
	if err := spell.Bind(ref, body); err != nil {
		return nil, fmt.Errorf("bind chain: %w", err)
	}
	return spell.Sequence(spell.Token("draw"), body), nil
}
