package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	t.Run("first line is the northmost row", func(t *testing.T) {
		l, err := LoadLayout("testClassic")

		require.NoError(t, err)
		require.Equal(t, 5, l.Width)
		require.Equal(t, 10, l.Height)
		require.Equal(t, Position{X: 1, Y: 1}, l.Starts[0])
		require.Equal(t, []Position{{X: 1, Y: 1}, {X: 2, Y: 7}}, l.Starts)
		require.Equal(t, 1, l.NumGhosts())
		require.True(t, l.IsWall(Position{X: 0, Y: 0}))
		require.False(t, l.IsWall(Position{X: 1, Y: 1}))
	})

	t.Run("outside cells are walls", func(t *testing.T) {
		l, err := ParseLayout("P.")

		require.NoError(t, err)
		require.True(t, l.IsWall(Position{X: -1, Y: 0}))
		require.True(t, l.IsWall(Position{X: 2, Y: 0}))
		require.True(t, l.IsWall(Position{X: 0, Y: 1}))
		require.Equal(t, []Position{{X: 1, Y: 0}}, l.Food)
	})

	t.Run("ghosts in reading order", func(t *testing.T) {
		l, err := ParseLayout("%%%%\n%GP%\n%oG%\n%%%%")

		require.NoError(t, err)
		require.Equal(t, []Position{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 1}}, l.Starts)
		require.Equal(t, []Position{{X: 1, Y: 1}}, l.Capsules)
	})

	errorCases := []struct {
		name string
		text string
	}{
		{"empty", "  \n"},
		{"ragged rows", "%%%\n%P\n%%%"},
		{"unknown symbol", "%%%\n%P#\n%%%"},
		{"two controlled agents", "%%%%\n%PP%\n%%%%"},
		{"no controlled agent", "%%%%\n%.G%\n%%%%"},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLayout(tt.text)

			require.Error(t, err)
		})
	}
}

func TestLoadLayout(t *testing.T) {
	names := LayoutNames()
	require.Equal(t, []string{"minimaxClassic", "openClassic", "smallClassic", "testClassic", "trappedClassic"}, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			l, err := LoadLayout(name)
			require.NoError(t, err)
			require.Positive(t, l.NumGhosts())
			require.NotEmpty(t, l.Food)

			// A fresh grid renders back to the layout file
			data, err := layoutFiles.ReadFile("layouts/" + name + ".lay")
			require.NoError(t, err)
			want := strings.TrimSpace(string(data)) + "\nscore: 0"
			require.Equal(t, want, NewGrid(l, NewStandardRules()).String())
		})
	}

	t.Run("unknown layout", func(t *testing.T) {
		_, err := LoadLayout("mediumClassic")

		require.Error(t, err)
	})
}
