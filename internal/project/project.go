// Package project loads the YAML manifest naming a project and the polygon
// layers analysed in it.
package project

import (
	"math"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/area-stats/internal/dataset"
)

// Manifest describes one analysis project.
type Manifest struct {
	Project  string    `yaml:"project"`
	Language string    `yaml:"language,omitempty"` // overrides output.language
	Datasets []Dataset `yaml:"datasets"`
}

// Dataset is one layer of the project.
type Dataset struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Layer  string `yaml:"layer,omitempty"`
	// SampleArea is the reference area that switches on comparison mode.
	SampleArea     *float64 `yaml:"sample_area,omitempty"`
	GeometryColumn string   `yaml:"geometry_column,omitempty"`
}

// Location returns the dataset source and layer for the loader.
func (d Dataset) Location() dataset.Source {
	return dataset.Source{Path: d.Source, Layer: d.Layer}
}

// Load reads and validates a manifest. Relative file sources are resolved
// against the manifest directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "project: read manifest %s", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, eris.Wrapf(err, "project: parse manifest %s", path)
	}

	base := filepath.Dir(path)
	for i, d := range m.Datasets {
		src := dataset.Source{Path: d.Source}
		if d.Source != "" && !src.IsPostGIS() && !filepath.IsAbs(d.Source) {
			m.Datasets[i].Source = filepath.Join(base, d.Source)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Single builds a manifest holding one dataset, as given on the command line.
func Single(project string, d Dataset) *Manifest {
	if d.Name == "" {
		d.Name = project
	}
	return &Manifest{Project: project, Datasets: []Dataset{d}}
}

// Validate checks the manifest for missing names and sources, duplicate
// dataset names and non-positive sample areas.
func (m *Manifest) Validate() error {
	if m.Project == "" {
		return eris.New("project: project name is required")
	}
	if len(m.Datasets) == 0 {
		return eris.Errorf("project: %s has no datasets", m.Project)
	}

	seen := make(map[string]bool, len(m.Datasets))
	for i, d := range m.Datasets {
		if d.Name == "" {
			return eris.Errorf("project: dataset %d has no name", i)
		}
		if seen[d.Name] {
			return eris.Errorf("project: duplicate dataset name %q", d.Name)
		}
		seen[d.Name] = true
		if d.Source == "" {
			return eris.Errorf("project: dataset %s has no source", d.Name)
		}
		if d.SampleArea != nil && (*d.SampleArea <= 0 || math.IsInf(*d.SampleArea, 0) || math.IsNaN(*d.SampleArea)) {
			return eris.Errorf("project: dataset %s: sample_area must be positive, got %v", d.Name, *d.SampleArea)
		}
	}
	return nil
}
