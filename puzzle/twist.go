package puzzle

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/magictile/conformal"
	"github.com/katalvlaran/magictile/geometry"
)

// SingleTwist is one move: rotate the layers of an identified twist group
// selected by SliceMask.
type SingleTwist struct {
	IdentifiedIndex int `yaml:"group"`
	// SliceMask selects layers; bit 0 is the innermost.
	SliceMask uint64 `yaml:"slices"`
	Clockwise bool   `yaml:"clockwise"`
	// Magnitude is the number of 2π/Order steps. Zero means one.
	Magnitude int `yaml:"magnitude,omitempty"`
}

// SliceMaskFor returns a mask selecting the given layers.
func SliceMaskFor(layers ...int) uint64 {
	var m uint64
	for _, l := range layers {
		if l >= 0 && l < 64 {
			m |= 1 << uint(l)
		}
	}
	return m
}

// HasLayer reports whether the mask selects layer l.
func (t SingleTwist) HasLayer(l int) bool {
	return l >= 0 && l < 64 && t.SliceMask&(1<<uint(l)) != 0
}

// Inverse returns the twist undoing t.
func (t SingleTwist) Inverse() SingleTwist {
	inv := t
	inv.Clockwise = !t.Clockwise
	return inv
}

func (t SingleTwist) magnitude() int {
	if t.Magnitude == 0 {
		return 1
	}
	return t.Magnitude
}

// TwistHistory is the ordered list of applied twists.
type TwistHistory struct {
	twists []SingleTwist
}

// Append records t.
func (h *TwistHistory) Append(t SingleTwist) {
	h.twists = append(h.twists, t)
}

// Undo removes and returns the last twist.
func (h *TwistHistory) Undo() (SingleTwist, bool) {
	if len(h.twists) == 0 {
		return SingleTwist{}, false
	}
	t := h.twists[len(h.twists)-1]
	h.twists = h.twists[:len(h.twists)-1]
	return t, true
}

// Len returns the number of recorded twists.
func (h *TwistHistory) Len() int { return len(h.twists) }

// Twists returns a copy of the recorded twists, oldest first.
func (h *TwistHistory) Twists() []SingleTwist {
	return append([]SingleTwist(nil), h.twists...)
}

// MobiusForTwist returns the rotation applied by t about the axis td. All
// selected layers turn by the same angle.
func MobiusForTwist(g geometry.Geometry, td TwistData, t SingleTwist) conformal.Mobius {
	angle := 2 * math.Pi * float64(t.magnitude()) / float64(td.Order)
	if t.Clockwise {
		angle = -angle
	}
	if td.Reverse {
		angle = -angle
	}
	return conformal.RotationAbout(g, td.Center, angle)
}

// Layer returns the index of the innermost circle of td containing z, or
// len(td.Circles) when z is outside them all.
func (td TwistData) Layer(z complex128) int {
	for i, c := range td.Circles {
		if c.ContainsNE(z) {
			return i
		}
	}
	return len(td.Circles)
}

type move struct {
	from StickerID
	to   complex128
}

// UpdateState applies t to the State and returns, for every sticker whose
// color moved elsewhere, the sticker that received it. Targets with no
// sticker at their new position are skipped.
func (p *Puzzle) UpdateState(t SingleTwist) (map[StickerID]StickerID, error) {
	if t.IdentifiedIndex < 0 || t.IdentifiedIndex >= len(p.Twists) {
		return nil, fmt.Errorf("%w: group %d", ErrUnknownTwist, t.IdentifiedIndex)
	}
	group := p.Twists[t.IdentifiedIndex]

	old := geometry.NewPointMap[StickerID]()
	var moves []move
	for _, ai := range group.StateCalc {
		td := group.Axes[ai]
		m := MobiusForTwist(p.Geometry, td, t)
		for _, c := range p.Cells {
			if !c.StateCalc || c.IndexOfMaster < 0 {
				continue
			}
			for _, s := range c.Stickers {
				if !t.HasLayer(td.Layer(s.Interior)) {
					continue
				}
				id := StickerID{Master: c.IndexOfMaster, Sticker: s.Index}
				old.Add(s.Center, id)
				moves = append(moves, move{from: id, to: m.Apply(s.Center)})
			}
		}
	}

	// First write wins: a sticker reached through several state-calc
	// copies moves once, so the update stays a permutation.
	updated := make(map[StickerID]StickerID)
	usedSrc := make(map[StickerID]bool)
	usedDst := make(map[StickerID]bool)
	for _, mv := range moves {
		dst, ok := old.Get(mv.to)
		if !ok {
			p.trace.P("sticker", mv.from).Debugf("twist target %v unmatched", mv.to)
			continue
		}
		if usedSrc[mv.from] || usedDst[dst] {
			continue
		}
		usedSrc[mv.from], usedDst[dst] = true, true
		p.State.setPending(dst, p.State.Color(mv.from))
		if dst != mv.from {
			updated[mv.from] = dst
		}
	}
	p.State.CommitChanges()
	return updated, nil
}

// Twist applies t and records it in the history.
func (p *Puzzle) Twist(t SingleTwist) error {
	if _, err := p.UpdateState(t); err != nil {
		return err
	}
	p.History.Append(t)
	return nil
}

// Undo reverts the last recorded twist.
func (p *Puzzle) Undo() error {
	t, ok := p.History.Undo()
	if !ok {
		return ErrNothingToUndo
	}
	_, err := p.UpdateState(t.Inverse())
	return err
}

// Scramble applies n random innermost-layer twists drawn from r.
func (p *Puzzle) Scramble(n int, r *rand.Rand) error {
	if len(p.Twists) == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		t := SingleTwist{
			IdentifiedIndex: r.IntN(len(p.Twists)),
			SliceMask:       SliceMaskFor(0),
			Clockwise:       r.IntN(2) == 0,
		}
		if err := p.Twist(t); err != nil {
			return err
		}
	}
	return nil
}
