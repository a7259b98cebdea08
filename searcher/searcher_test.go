package searcher

import (
	"pacman/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := New(AlphaBeta, 3)

		require.NoError(t, err)
		require.Equal(t, AlphaBeta, s.Variant())
		require.Equal(t, 3, s.Depth())
		require.NotNil(t, s.evaluate)
		require.False(t, s.seeded)
	})

	t.Run("rejects non-positive depth", func(t *testing.T) {
		for _, depth := range []int{0, -1} {
			_, err := New(Minimax, depth)

			require.ErrorIs(t, err, ErrConfiguration)
		}
	})

	t.Run("rejects unknown variant", func(t *testing.T) {
		_, err := New(Variant(99), 1)

		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("weighted variant requires a policy", func(t *testing.T) {
		_, err := New(ExpectimaxWeighted, 1)
		require.ErrorIs(t, err, ErrConfiguration)

		_, err = New(ExpectimaxWeighted, 1, WithPolicy(nil))
		require.ErrorIs(t, err, ErrConfiguration)

		_, err = New(ExpectimaxWeighted, 1, WithPolicy(Directional(DefaultDirectional)))
		require.NoError(t, err)
	})

	t.Run("nil evaluation keeps the default", func(t *testing.T) {
		s, err := New(Minimax, 1, WithEvaluationFn(nil))

		require.NoError(t, err)
		require.NotNil(t, s.evaluate)
	})
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		name string
		want Variant
	}{
		{"minimax", Minimax},
		{"AlphaBeta", AlphaBeta},
		{"expectimax", ExpectimaxUniform},
		{"DIRECTIONAL", ExpectimaxWeighted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVariant(tt.name)

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseVariant("mcts")

		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("round trip", func(t *testing.T) {
		for v := Minimax; v <= ExpectimaxWeighted; v++ {
			got, err := ParseVariant(v.String())

			require.NoError(t, err)
			require.Equal(t, v, got)
		}
		require.Equal(t, "Variant(7)", Variant(7).String())
	})
}

func TestSearchOnGrid(t *testing.T) {
	layout, err := game.LoadLayout("minimaxClassic")
	require.NoError(t, err)
	state := game.NewGrid(layout, game.NewStandardRules())

	variants := []struct {
		variant Variant
		options []Option
	}{
		{Minimax, nil},
		{AlphaBeta, nil},
		{ExpectimaxUniform, nil},
		{ExpectimaxWeighted, []Option{WithPolicy(Directional(DefaultDirectional))}},
	}
	for _, v := range variants {
		t.Run(v.variant.String(), func(t *testing.T) {
			s, err := New(v.variant, 2, append(v.options, WithMetrics())...)
			require.NoError(t, err)

			got, err := s.Search(state)

			require.NoError(t, err)
			require.Contains(t, state.LegalActions(0), got.Action)
			require.Equal(t, v.variant.String(), got.Metric.Variant)
			require.Positive(t, got.Metric.Nodes)
			require.Positive(t, got.Metric.Leaves)
		})
	}

	t.Run("alpha-beta agrees with minimax", func(t *testing.T) {
		minimax, err := New(Minimax, 2, WithMetrics())
		require.NoError(t, err)
		alphaBeta, err := New(AlphaBeta, 2, WithMetrics())
		require.NoError(t, err)

		want, err := minimax.Search(state)
		require.NoError(t, err)
		got, err := alphaBeta.Search(state)
		require.NoError(t, err)

		require.Equal(t, want.Action, got.Action)
		require.Equal(t, want.Value, got.Value)
		require.LessOrEqual(t, got.Metric.Nodes, want.Metric.Nodes)
	})
}
