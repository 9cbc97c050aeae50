package tca2d

import (
	"strconv"

	"cellauto/internal/core"
)

// Config holds parameters for a 2D totalistic automaton.
type Config struct {
	Width  int
	Height int
	Depth  int

	Rule         uint64
	Neighborhood core.Neighborhood
	Mode         Mode
	Boundary     core.BoundaryPolicy

	Seed    int64
	Density float64
	// Label colours the live page by connected component in the sim adapter.
	Label bool
}

// DefaultConfig returns Conway's Life on an 80x80 null-bounded lattice.
func DefaultConfig() Config {
	return Config{
		Width:        80,
		Height:       80,
		Depth:        1,
		Rule:         224,
		Neighborhood: core.Moore,
		Mode:         OuterTotalistic,
		Boundary:     core.BoundaryNull,
		Seed:         42,
		Density:      0.5,
		Label:        true,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["depth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Depth = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.ParseUint(v, 0, 64); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["moore"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Neighborhood = core.VonNeumann
			if parsed {
				c.Neighborhood = core.Moore
			}
		}
	}
	if v, ok := cfg["outer"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Mode = Totalistic
			if parsed {
				c.Mode = OuterTotalistic
			}
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := core.ParseBoundaryPolicy(v); err == nil {
			c.Boundary = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["label"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Label = parsed
		}
	}
	return c
}

// RandomLattice draws an initial configuration from the config seed and density.
func (c Config) RandomLattice(seed int64) *core.Lattice {
	l := core.NewLattice(c.Width, c.Height)
	core.FillBinary(core.NewRNG(seed).Source(), l.Cells(), c.Density)
	return l
}
