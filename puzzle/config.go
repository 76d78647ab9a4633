package puzzle

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/magictile/tiling"
)

// Config describes a puzzle.
type Config struct {
	Name   string        `yaml:"name"`
	Tiling tiling.Config `yaml:"tiling"`
	// ExpectedNumColors caps the number of masters. Zero means unlimited.
	ExpectedNumColors int `yaml:"expected_num_colors"`
	// Identifications is an explicit edge-pairing table.
	Identifications []IdentificationConfig `yaml:"identifications,omitempty"`
	// GroupRelations is a relation presentation over the fundamental
	// triangle mirrors a, b and c, e.g. "(caba)2". Mutually exclusive with
	// Identifications.
	GroupRelations string        `yaml:"group_relations,omitempty"`
	Slicing        SlicingConfig `yaml:"slicing"`
}

// IdentificationConfig reflects the home tile across Edges in turn (each
// index refers to the current tile's own edges) and then rotates the
// vertex labeling by Rotation.
type IdentificationConfig struct {
	Edges    []int `yaml:"edges"`
	Rotation int   `yaml:"rotation,omitempty"`
}

// SlicingConfig lists the non-Euclidean radii of the slicing circles around
// each kind of twist axis.
type SlicingConfig struct {
	Face   []float64 `yaml:"face,omitempty"`
	Edge   []float64 `yaml:"edge,omitempty"`
	Vertex []float64 `yaml:"vertex,omitempty"`
}

// Validate reports the first problem with c, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if err := c.Tiling.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.ExpectedNumColors < 0 {
		return fmt.Errorf("%w: expected colors cannot be negative (%d)", ErrInvalidConfig, c.ExpectedNumColors)
	}
	if len(c.Identifications) > 0 && c.GroupRelations != "" {
		return fmt.Errorf("%w: identifications and group relations are mutually exclusive", ErrInvalidConfig)
	}
	for i, id := range c.Identifications {
		if len(id.Edges) == 0 {
			return fmt.Errorf("%w: identification %d has no edges", ErrInvalidConfig, i)
		}
		for _, e := range id.Edges {
			if e < 0 || e >= c.Tiling.P {
				return fmt.Errorf("%w: identification %d edge %d out of range", ErrInvalidConfig, i, e)
			}
		}
	}
	for _, radii := range [][]float64{c.Slicing.Face, c.Slicing.Edge, c.Slicing.Vertex} {
		for _, r := range radii {
			if r <= 0 {
				return fmt.Errorf("%w: slicing radius must be positive (got %g)", ErrInvalidConfig, r)
			}
		}
	}
	return nil
}

// LoadConfig decodes a YAML Config from r.
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return c, nil
}

// Save encodes c as YAML to w.
func (c Config) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
