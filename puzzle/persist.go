package puzzle

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// saved is the persisted form of a puzzle: enough to rebuild the assembly
// deterministically and restore its coloring.
type saved struct {
	Config  Config        `yaml:"config"`
	State   []int         `yaml:"state,flow"`
	History []SingleTwist `yaml:"history,omitempty"`
}

// Save writes the configuration, the flat color array and the twist
// history of p as YAML.
func (p *Puzzle) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(saved{Config: p.Config, State: p.State.Colors(), History: p.History.Twists()}); err != nil {
		return fmt.Errorf("puzzle: save: %w", err)
	}
	return enc.Close()
}

// Restore rebuilds a puzzle saved with Save and restores its coloring and
// history.
func Restore(r io.Reader, opts ...Option) (*Puzzle, error) {
	var s saved
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStateMismatch, err)
	}
	p, err := Build(s.Config, opts...)
	if err != nil {
		return nil, err
	}
	if err := p.State.setColors(s.State); err != nil {
		return nil, err
	}
	for _, t := range s.History {
		p.History.Append(t)
	}
	return p, nil
}
