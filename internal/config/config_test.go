package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/jpmesh/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
dir: out
format: geojson
jobs:
  - name: japan
    level: "1"
  - name: tokyo
    level: 500m
    format: yaml
    dir: tokyo
    output: tokyo.yaml
    extent: [[139.5, 35.5], [140.0, 35.8]]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Jobs, 2)

	japan := cfg.Jobs[0]
	assert.Equal(t, "1", japan.Level)
	assert.Equal(t, "out", japan.Dir)
	assert.Equal(t, FormatGeoJSON, japan.Format)
	assert.Empty(t, japan.Extent)

	tokyo := cfg.Jobs[1]
	assert.Equal(t, "500m", tokyo.Level)
	assert.Equal(t, "tokyo", tokyo.Dir)
	assert.Equal(t, FormatYAML, tokyo.Format)
	assert.Equal(t, "tokyo.yaml", tokyo.Output)
	assert.Equal(t, [][2]float64{{139.5, 35.5}, {140.0, 35.8}}, tokyo.Extent)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "jobs: ["))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "jobs:\n  - name: nolevel\n"))
	assert.ErrorContains(t, err, "level is required")

	_, err = Load(writeConfig(t, "jobs:\n  - level: \"2\"\n    extent: [[130, 30]]\n"))
	assert.ErrorContains(t, err, "two corners")
}

func TestLoadExtentOutOfRange(t *testing.T) {
	for _, extent := range []string{
		"[[500, 30], [130, 40]]",
		"[[130, 30], [140, -180]]",
		"[[130, .nan], [140, 40]]",
		"[[130, 30], [.inf, 40]]",
	} {
		_, err := Load(writeConfig(t, "jobs:\n  - level: \"2\"\n    extent: "+extent+"\n"))
		assert.ErrorIs(t, err, geo.ErrInvalidPoint, extent)
	}

	cfg, err := Load(writeConfig(t, "jobs:\n  - level: \"2\"\n    extent: [[-179.5, 30], [179.5, 40]]\n"))
	require.NoError(t, err)
	assert.Len(t, cfg.Jobs[0].Extent, 2)
}

func TestJobLabel(t *testing.T) {
	assert.Equal(t, "kanto", Job{Name: "kanto", Level: "3"}.Label())
	assert.Equal(t, "mesh_3", Job{Level: "3"}.Label())
}
