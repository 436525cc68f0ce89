package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"

	"github.com/NathanSnail/rand-wand/internal/rng"
	"github.com/NathanSnail/rand-wand/internal/wand"
)

// tracer instruments tool execution when a global provider is registered.
var tracer = otel.Tracer("github.com/NathanSnail/rand-wand/internal/services/mcp/service")

// GenerateInput is the MCP tool input for drawing casts from a preset.
type GenerateInput struct {
	Preset string `json:"preset,omitempty" jsonschema:"preset name: starter, chaos or chain (default starter)"`
	Seed   *int64 `json:"seed,omitempty" jsonschema:"optional seed for deterministic casts"`
	Count  int    `json:"count,omitempty" jsonschema:"number of casts to draw (default 1)"`
}

// GenerateResult is the MCP tool output for drawing casts.
type GenerateResult struct {
	Preset   string   `json:"preset" jsonschema:"preset the casts were drawn from"`
	SeedUsed int64    `json:"seed_used" jsonschema:"seed value used for the draws"`
	Casts    []string `json:"casts" jsonschema:"each cast as its effects joined by spaces"`
}

// PresetsInput is the MCP tool input for listing presets.
type PresetsInput struct{}

// PresetInfo describes one built-in preset.
type PresetInfo struct {
	Name        string `json:"name" jsonschema:"preset name"`
	Description string `json:"description" jsonschema:"what the preset generates"`
}

// PresetsResult is the MCP tool output for listing presets.
type PresetsResult struct {
	Presets []PresetInfo `json:"presets" jsonschema:"built-in presets in stable order"`
}

// FrequenciesInput is the MCP tool input for estimating effect frequencies.
type FrequenciesInput struct {
	Preset string `json:"preset,omitempty" jsonschema:"preset name (default starter)"`
	Seed   *int64 `json:"seed,omitempty" jsonschema:"optional seed for a deterministic estimate"`
	Trials int    `json:"trials,omitempty" jsonschema:"number of casts to sample (default 1000)"`
}

// FrequenciesResult is the MCP tool output for effect frequency estimates.
type FrequenciesResult struct {
	Preset      string             `json:"preset" jsonschema:"preset the estimate covers"`
	SeedUsed    int64              `json:"seed_used" jsonschema:"seed value used for the trials"`
	Trials      int                `json:"trials" jsonschema:"number of casts sampled"`
	Frequencies map[string]float64 `json:"frequencies" jsonschema:"average occurrences of each effect per cast"`
}

// GenerateTool defines the MCP tool schema for drawing casts.
func GenerateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "wand_generate",
		Description: "Draws random effect casts from a wand preset",
	}
}

// PresetsTool defines the MCP tool schema for listing presets.
func PresetsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "wand_presets",
		Description: "Lists the built-in wand presets",
	}
}

// FrequenciesTool defines the MCP tool schema for frequency estimates.
func FrequenciesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "wand_frequencies",
		Description: "Estimates how often each effect appears per cast",
	}
}

// GenerateHandler draws casts from a preset generator.
func GenerateHandler() mcp.ToolHandlerFor[GenerateInput, GenerateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateInput) (*mcp.CallToolResult, GenerateResult, error) {
		_, span := tracer.Start(ctx, "wand.generate")
		defer span.End()

		preset := presetOrDefault(input.Preset)
		count := input.Count
		if count == 0 {
			count = 1
		}
		seed, err := resolveSeed(input.Seed)
		if err != nil {
			return nil, GenerateResult{}, err
		}

		gen, err := wand.New(preset, rng.NewSource(seed))
		if err != nil {
			return nil, GenerateResult{}, err
		}
		casts, err := gen.Casts(count)
		if err != nil {
			return nil, GenerateResult{}, err
		}

		joined := make([]string, len(casts))
		for i, cast := range casts {
			joined[i] = strings.Join(cast, " ")
		}
		return nil, GenerateResult{
			Preset:   string(preset),
			SeedUsed: seed,
			Casts:    joined,
		}, nil
	}
}

// PresetsHandler lists the built-in presets.
func PresetsHandler() mcp.ToolHandlerFor[PresetsInput, PresetsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ PresetsInput) (*mcp.CallToolResult, PresetsResult, error) {
		_, span := tracer.Start(ctx, "wand.presets")
		defer span.End()

		presets := wand.Presets()
		infos := make([]PresetInfo, 0, len(presets))
		for _, preset := range presets {
			description, err := wand.Describe(preset)
			if err != nil {
				return nil, PresetsResult{}, fmt.Errorf("describe %s: %w", preset, err)
			}
			infos = append(infos, PresetInfo{Name: string(preset), Description: description})
		}
		return nil, PresetsResult{Presets: infos}, nil
	}
}

// FrequenciesHandler estimates per-cast effect frequencies for a preset.
func FrequenciesHandler() mcp.ToolHandlerFor[FrequenciesInput, FrequenciesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FrequenciesInput) (*mcp.CallToolResult, FrequenciesResult, error) {
		_, span := tracer.Start(ctx, "wand.frequencies")
		defer span.End()

		preset := presetOrDefault(input.Preset)
		trials := input.Trials
		if trials == 0 {
			trials = 1000
		}
		seed, err := resolveSeed(input.Seed)
		if err != nil {
			return nil, FrequenciesResult{}, err
		}

		gen, err := wand.New(preset, rng.NewSource(seed))
		if err != nil {
			return nil, FrequenciesResult{}, err
		}
		freqs, err := gen.Frequencies(trials)
		if err != nil {
			return nil, FrequenciesResult{}, err
		}

		return nil, FrequenciesResult{
			Preset:      string(preset),
			SeedUsed:    seed,
			Trials:      trials,
			Frequencies: freqs,
		}, nil
	}
}

// presetOrDefault maps an optional preset name to a preset, defaulting to
// starter.
func presetOrDefault(name string) wand.Preset {
	if strings.TrimSpace(name) == "" {
		return wand.PresetStarter
	}
	return wand.Preset(name)
}

// resolveSeed uses the client seed when provided and draws a fresh
// high-entropy seed otherwise, so results always report a replayable seed.
func resolveSeed(seed *int64) (int64, error) {
	if seed != nil {
		return *seed, nil
	}
	value, err := rng.NewSeed()
	if err != nil {
		return 0, fmt.Errorf("generate seed: %w", err)
	}
	return value, nil
}
