package puzzle

import (
	"fmt"
	"slices"
)

// State maps every master sticker to a color. Writes go to a pending copy
// and become visible on CommitChanges.
type State struct {
	perMaster int
	colors    []int
	pending   []int
}

// NewState returns the solved state: every sticker of master i has color i.
func NewState(masters, stickersPerMaster int) *State {
	s := &State{perMaster: stickersPerMaster}
	s.colors = make([]int, masters*stickersPerMaster)
	s.Reset()
	return s
}

// Reset restores the solved coloring.
func (s *State) Reset() {
	for i := range s.colors {
		s.colors[i] = i / max(s.perMaster, 1)
	}
	s.pending = slices.Clone(s.colors)
}

func (s *State) index(id StickerID) int {
	return id.Master*s.perMaster + id.Sticker
}

// Color returns the committed color of id.
func (s *State) Color(id StickerID) int {
	return s.colors[s.index(id)]
}

// Colors returns a copy of the flat committed color array.
func (s *State) Colors() []int {
	return slices.Clone(s.colors)
}

// Len returns the number of stickers.
func (s *State) Len() int {
	return len(s.colors)
}

// StickersPerMaster returns the template sticker count.
func (s *State) StickersPerMaster() int {
	return s.perMaster
}

// setPending stages color for id.
func (s *State) setPending(id StickerID, color int) {
	s.pending[s.index(id)] = color
}

// CommitChanges makes staged colors visible.
func (s *State) CommitChanges() {
	copy(s.colors, s.pending)
}

// Solved reports whether every master's stickers share one color.
func (s *State) Solved() bool {
	for start := 0; start < len(s.colors); start += s.perMaster {
		for _, c := range s.colors[start : start+s.perMaster] {
			if c != s.colors[start] {
				return false
			}
		}
	}
	return true
}

// setColors replaces the committed and staged colors.
func (s *State) setColors(colors []int) error {
	if len(colors) != len(s.colors) {
		return fmt.Errorf("%w: %d colors for %d stickers", ErrStateMismatch, len(colors), len(s.colors))
	}
	copy(s.colors, colors)
	s.pending = slices.Clone(s.colors)
	return nil
}
