// Package config handles batch configuration loading and shared job structures.
package config

import (
	"fmt"
	"os"

	"github.com/woozymasta/jpmesh/internal/geo"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the processor.
const (
	FormatGeoJSONL = "geojsonl"
	FormatGeoJSON  = "geojson"
	FormatYAML     = "yaml"
)

// Config represents the root batch configuration file structure.
type Config struct {
	Dir    string `yaml:"dir,omitempty"`
	Format string `yaml:"format,omitempty"`
	Jobs   []Job  `yaml:"jobs"`
}

// Job describes a single mesh generation run.
type Job struct {
	Name   string `yaml:"name,omitempty"`
	Level  string `yaml:"level"` // number or alias, e.g. "3" or "1km"
	Output string `yaml:"output,omitempty"`
	Format string `yaml:"format,omitempty"`
	Dir    string `yaml:"dir,omitempty"`

	// [[lon, lat], [lon, lat]], opposite corners in any order
	Extent [][2]float64 `yaml:"extent,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
// Job level defaults (dir, format) are filled from the root.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	for i := range cfg.Jobs {
		job := &cfg.Jobs[i]

		if job.Level == "" {
			return nil, fmt.Errorf("job %d: level is required", i)
		}
		if n := len(job.Extent); n != 0 && n != 2 {
			return nil, fmt.Errorf("job %d: extent needs exactly two corners, got %d", i, n)
		}
		for _, corner := range job.Extent {
			if err := geo.ValidatePoint(orb.Point(corner)); err != nil {
				return nil, fmt.Errorf("job %d: extent: %w", i, err)
			}
		}
		if job.Dir == "" {
			job.Dir = cfg.Dir
		}
		if job.Format == "" {
			job.Format = cfg.Format
		}
	}

	return &cfg, nil
}

// Label identifies the job in logs.
func (j Job) Label() string {
	if j.Name != "" {
		return j.Name
	}
	return "mesh_" + j.Level
}
