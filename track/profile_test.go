package track

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	require.NoError(t, p.Validate())

	d := p.Dimensions()
	// track width is 128 * 0.05 = 6.4
	assert.InDelta(t, 12.8, d.TrackSpacing, 1e-9)
	assert.InDelta(t, 4.8, d.SleeperSpacing, 1e-9)
	assert.InDelta(t, 1.92, d.SleeperWidth, 1e-9)
	assert.InDelta(t, 9.6, d.SleeperLength, 1e-9)
	assert.InDelta(t, 5.76, d.RailSpacing, 1e-9)
	assert.InDelta(t, 1.28, d.RailWidth, 1e-9)
	assert.InDelta(t, 14.72, d.BallastWidth, 1e-9)
	assert.InDelta(t, 38.4, d.CurveFactor, 1e-9)
	assert.InDelta(t, 0.768, d.CurveMultiplier, 1e-9)
}

func TestDimensionsMinimumRailWidth(t *testing.T) {
	p := DefaultProfile()
	p.TileSize = 32
	assert.Equal(t, 1.0, p.Dimensions().RailWidth)
}

func TestLoadProfile(t *testing.T) {
	doc := `
tile_size = 96
sleeper_spacing = 1.0
steps = 12
`
	p, err := LoadProfile(strings.NewReader(doc))
	require.NoError(t, err)

	want := DefaultProfile()
	want.TileSize = 96
	want.SleeperSpacing = 1.0
	want.Steps = 12
	assert.Equal(t, want, p)
}

func TestLoadProfileErrors(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "gauge = 1435",
		"syntax":         "tile_size = ",
		"negative value": "rail_width = -1",
		"zero steps":     "steps = 0",
		"infinite":       "sleeper_spacing = inf",
		"infinite tile":  "tile_size = +inf",
		"not a number":   "track_width = nan",
		"underflow":      "tile_size = 1e-200\ntrack_width = 1e-200",
		"overflow":       "tile_size = 1e200\ntrack_width = 1e200",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadProfile(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestProfileRoundTrip(t *testing.T) {
	p := DefaultProfile()
	p.BallastWidth = 3
	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))
	assert.Contains(t, buf.String(), "ballast_width = 3")

	path := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	got, err := LoadProfileFile(path)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestLoadProfileFileMissing(t *testing.T) {
	_, err := LoadProfileFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
