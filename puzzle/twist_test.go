package puzzle_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magictile/puzzle"
	"github.com/katalvlaran/magictile/tiling"
)

// cycleGroups turns every group Order times with mask, checking the color
// multiset after each turn and the starting state after the last. It
// reports whether any first turn changed the state.
func cycleGroups(t *testing.T, p *puzzle.Puzzle, mask uint64) bool {
	t.Helper()
	changed := false
	want := sortedColors(p)
	for g, group := range p.Twists {
		before := p.State.Colors()
		tw := puzzle.SingleTwist{IdentifiedIndex: g, SliceMask: mask}
		for i := 0; i < group.Order; i++ {
			_, err := p.UpdateState(tw)
			require.NoError(t, err)
			require.Equal(t, want, sortedColors(p), "group %d turn %d", g, i)
			if i == 0 && !slices.Equal(before, p.State.Colors()) {
				changed = true
			}
		}
		require.Equal(t, before, p.State.Colors(), "group %d mask %b", g, mask)
	}
	return changed
}

func TestTwistCycles(t *testing.T) {
	cube := tiling.Config{P: 4, Q: 3, MaxTiles: 100}
	torus := torusConfig().Tiling
	torusIDs := torusConfig().Identifications

	cases := []struct {
		name    string
		cfg     puzzle.Config
		kind    puzzle.AxisKind
		masters int
		// circles per axis, antipodal circles included
		circles int
		masks   []uint64
	}{
		{
			name:    "cube face layers",
			cfg:     puzzle.Config{Tiling: cube, ExpectedNumColors: 6, Slicing: puzzle.SlicingConfig{Face: []float64{0.5, 1.0}}},
			kind:    puzzle.FaceAxis,
			masters: 6,
			circles: 4,
			// layers 0 and 4 stay inside one face and only turn a single color
			masks: []uint64{
				puzzle.SliceMaskFor(1),
				puzzle.SliceMaskFor(2),
				puzzle.SliceMaskFor(3),
				puzzle.SliceMaskFor(1, 2),
				puzzle.SliceMaskFor(0, 1, 2, 3, 4),
			},
		},
		{
			name:    "cube edge",
			cfg:     puzzle.Config{Tiling: cube, ExpectedNumColors: 6, Slicing: puzzle.SlicingConfig{Edge: []float64{0.5}}},
			kind:    puzzle.EdgeAxis,
			masters: 6,
			circles: 2,
			masks:   []uint64{puzzle.SliceMaskFor(0), puzzle.SliceMaskFor(1), puzzle.SliceMaskFor(2)},
		},
		{
			name:    "cube vertex",
			cfg:     puzzle.Config{Tiling: cube, ExpectedNumColors: 6, Slicing: puzzle.SlicingConfig{Vertex: []float64{0.7}}},
			kind:    puzzle.VertexAxis,
			masters: 6,
			circles: 2,
			masks:   []uint64{puzzle.SliceMaskFor(0), puzzle.SliceMaskFor(1), puzzle.SliceMaskFor(0, 2)},
		},
		{
			name:    "torus edge",
			cfg:     puzzle.Config{Tiling: torus, ExpectedNumColors: 4, Identifications: torusIDs, Slicing: puzzle.SlicingConfig{Edge: []float64{0.4}}},
			kind:    puzzle.EdgeAxis,
			masters: 4,
			circles: 1,
			masks:   []uint64{puzzle.SliceMaskFor(0)},
		},
		{
			name:    "torus vertex",
			cfg:     puzzle.Config{Tiling: torus, ExpectedNumColors: 4, Identifications: torusIDs, Slicing: puzzle.SlicingConfig{Vertex: []float64{0.45}}},
			kind:    puzzle.VertexAxis,
			masters: 4,
			circles: 1,
			masks:   []uint64{puzzle.SliceMaskFor(0)},
		},
		{
			name:    "torus face outer layer",
			cfg:     torusConfig(),
			kind:    puzzle.FaceAxis,
			masters: 4,
			circles: 1,
			masks:   []uint64{puzzle.SliceMaskFor(1), puzzle.SliceMaskFor(0, 1)},
		},
		{
			name: "klein quartic vertex",
			cfg: puzzle.Config{
				Tiling:            tiling.Config{P: 7, Q: 3, MaxTiles: 500},
				ExpectedNumColors: 24,
				GroupRelations:    "(abc)8",
				Slicing:           puzzle.SlicingConfig{Vertex: []float64{0.4}},
			},
			kind:    puzzle.VertexAxis,
			masters: 24,
			circles: 1,
			masks:   []uint64{puzzle.SliceMaskFor(0)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Name = tc.name
			p, err := puzzle.Build(tc.cfg)
			require.NoError(t, err)
			require.Len(t, p.Masters, tc.masters)
			require.NotEmpty(t, p.Twists)
			for g, group := range p.Twists {
				assert.Equal(t, tc.kind, group.Kind, "group %d", g)
				require.NotEmpty(t, group.StateCalc, "group %d", g)
				for ai, td := range group.Axes {
					assert.Len(t, td.Circles, tc.circles, "group %d axis %d", g, ai)
				}
			}
			for _, mask := range tc.masks {
				assert.True(t, cycleGroups(t, p, mask), "mask %b moves nothing", mask)
			}
			assert.True(t, p.State.Solved())
		})
	}
}
