package holo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of the shape drawer. The zero value is not
// useful; start from DefaultConfig.
type Config struct {
	// Volume alpha used when a shape does not set one.
	VolumeAlpha float32 `yaml:"volume_alpha"`
	ArcAlpha    float32 `yaml:"arc_alpha"`
	MeshAlpha   float32 `yaml:"mesh_alpha"`

	// Point markers drawn by DrawLine and DrawMultiLine.
	MarkerScale float32 `yaml:"marker_scale"`
	MarkerAlpha float32 `yaml:"marker_alpha"`

	// Dash spacing of the dotted radius line of DrawArc.
	DottedLineSpacing float32 `yaml:"dotted_line_spacing"`

	// Vertical label offsets above the anchor point.
	SquareLabelOffset float32 `yaml:"square_label_offset"`
	SphereLabelOffset float32 `yaml:"sphere_label_offset"`
	MeshLabelOffset   float32 `yaml:"mesh_label_offset"`
	PointLabelOffset  float32 `yaml:"point_label_offset"`
}

func DefaultConfig() Config {
	return Config{
		VolumeAlpha:       0.3,
		ArcAlpha:          0.2,
		MeshAlpha:         0.5,
		MarkerScale:       0.3,
		MarkerAlpha:       0.5,
		DottedLineSpacing: 3,
		SquareLabelOffset: 0.2,
		SphereLabelOffset: 0.3,
		MeshLabelOffset:   0.7,
		PointLabelOffset:  0.8,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. A missing file is not an
// error and yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
