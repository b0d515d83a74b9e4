package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
)

// sequence replays fixed draws and counts how many were taken
type sequence struct {
	values []float64
	calls  int
}

func (s *sequence) Float64() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

func newMouthTable(t *testing.T) *traits.Table {
	t.Helper()

	table, err := traits.NewTable([]traits.CategoryOptions{
		{
			Category: traits.CategoryMouth,
			Options: []traits.Option{
				{Name: "Base", Weight: 1},
				{Name: "Black Lipstick", Weight: 1},
				{Name: "Red Lipstick", Weight: 1},
				{Name: "Tongue", Weight: 1},
			},
		},
		{
			Category: traits.CategoryGlasses,
			Options: []traits.Option{
				{Name: "Monocle", Weight: 1},
				{Name: "Eye Patch", Weight: 1},
				{Name: traits.None, Weight: 2},
			},
		},
	})
	require.NoError(t, err)
	return table
}
