package leaks

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DetectorConfig tunes the leak detector. Every field is optional; the
// defaults encode common 6-max cash baselines.
type DetectorConfig struct {
	MinHands         int             `hcl:"min_hands,optional"`
	MinPositionHands int             `hcl:"min_position_hands,optional"`
	MaxVPIPPFRGap    float64         `hcl:"max_vpip_pfr_gap,optional"`
	Baselines        []BaselineBlock `hcl:"baseline,block"`
	Groups           []GroupBlock    `hcl:"group,block"`
}

// BaselineBlock overrides the acceptable range for one metric.
type BaselineBlock struct {
	Metric string  `hcl:"metric,label"`
	Low    float64 `hcl:"low"`
	High   float64 `hcl:"high"`
}

// GroupBlock overrides baselines for one positional group (Early, Middle,
// Late or Blinds).
type GroupBlock struct {
	Name      string          `hcl:"name,label"`
	Baselines []BaselineBlock `hcl:"baseline,block"`
}

// DefaultDetectorConfig returns the built-in thresholds.
func DefaultDetectorConfig() *DetectorConfig {
	return &DetectorConfig{
		MinHands:         30,
		MinPositionHands: 15,
		MaxVPIPPFRGap:    10,
	}
}

// LoadDetectorConfig loads detector thresholds from an HCL file. A missing
// file yields the defaults.
func LoadDetectorConfig(filename string) (*DetectorConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultDetectorConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config DetectorConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.MinHands == 0 {
		config.MinHands = 30
	}
	if config.MinPositionHands == 0 {
		config.MinPositionHands = 15
	}
	if config.MaxVPIPPFRGap == 0 {
		config.MaxVPIPPFRGap = 10
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the configured ranges for internal consistency.
func (c *DetectorConfig) Validate() error {
	check := func(b BaselineBlock, where string) error {
		if _, ok := defaultBaselines[b.Metric]; !ok {
			return fmt.Errorf("%s: unknown metric %q", where, b.Metric)
		}
		if b.Low >= b.High {
			return fmt.Errorf("%s: baseline %q has low %.1f >= high %.1f", where, b.Metric, b.Low, b.High)
		}
		return nil
	}
	for _, b := range c.Baselines {
		if err := check(b, "baseline"); err != nil {
			return err
		}
	}
	for _, g := range c.Groups {
		if _, ok := groupNames[g.Name]; !ok {
			return fmt.Errorf("unknown position group %q", g.Name)
		}
		for _, b := range g.Baselines {
			if err := check(b, fmt.Sprintf("group %q", g.Name)); err != nil {
				return err
			}
		}
	}
	return nil
}

// baselinesFor resolves the effective ranges for one positional group, or
// the overall ranges when group is empty.
func (c *DetectorConfig) baselinesFor(group string) map[string]Range {
	ranges := make(map[string]Range, len(defaultBaselines))
	for m, r := range defaultBaselines {
		ranges[m] = r
	}
	if adj, ok := groupAdjustments[group]; ok {
		for m, r := range adj {
			ranges[m] = r
		}
	}
	for _, b := range c.Baselines {
		ranges[b.Metric] = Range{b.Low, b.High}
	}
	for _, g := range c.Groups {
		if g.Name != group {
			continue
		}
		for _, b := range g.Baselines {
			ranges[b.Metric] = Range{b.Low, b.High}
		}
	}
	return ranges
}
