package leaks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leaks.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDetectorConfigMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadDetectorConfig(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.MinHands)
	assert.Equal(t, 15, cfg.MinPositionHands)
	assert.InDelta(t, 10.0, cfg.MaxVPIPPFRGap, 0.001)
}

func TestLoadDetectorConfigOverrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
min_hands = 50

baseline "vpip" {
  low  = 18.0
  high = 26.0
}

group "Late" {
  baseline "pfr" {
    low  = 25.0
    high = 35.0
  }
}
`)
	cfg, err := LoadDetectorConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.MinHands)
	assert.Equal(t, 15, cfg.MinPositionHands)

	overall := cfg.baselinesFor("")
	assert.Equal(t, Range{18, 26}, overall["vpip"])

	late := cfg.baselinesFor("Late")
	assert.Equal(t, Range{25, 35}, late["pfr"])
	// The global vpip override applies to groups too.
	assert.Equal(t, Range{18, 26}, late["vpip"])

	early := cfg.baselinesFor("Early")
	assert.Equal(t, Range{12, 18}, early["pfr"])
}

func TestLoadDetectorConfigRejectsBadRange(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
baseline "vpip" {
  low  = 30.0
  high = 20.0
}
`)
	_, err := LoadDetectorConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "low")
}

func TestLoadDetectorConfigRejectsUnknownMetric(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
baseline "nonsense" {
  low  = 1.0
  high = 2.0
}
`)
	_, err := LoadDetectorConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown metric")
}

func TestLoadDetectorConfigRejectsUnknownGroup(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
group "Sideways" {
  baseline "vpip" {
    low  = 1.0
    high = 2.0
  }
}
`)
	_, err := LoadDetectorConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown position group")
}
