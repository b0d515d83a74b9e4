package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/trait-forge/internal/engine/resolver"
	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
	"github.com/KirkDiggler/trait-forge/internal/errors"
)

func TestChooseSpecific_Exclude(t *testing.T) {
	table := newMouthTable(t)
	lipsticks := []string{"Black Lipstick", "Red Lipstick"}

	for _, draw := range []float64{0, 0.3, 0.49, 0.5, 0.7, 0.9999} {
		d := resolver.NewDrawer(table, &sequence{values: []float64{draw}})

		got, err := d.ChooseSpecific(traits.CategoryMouth, lipsticks, false)
		require.NoError(t, err)
		assert.NotContains(t, lipsticks, got)
		assert.Contains(t, []string{"Base", "Tongue"}, got)
	}
}

func TestChooseSpecific_Include(t *testing.T) {
	table := newMouthTable(t)
	allowed := []string{"Monocle", "Eye Patch"}

	for _, draw := range []float64{0, 0.49, 0.5, 0.9999} {
		d := resolver.NewDrawer(table, &sequence{values: []float64{draw}})

		got, err := d.ChooseSpecific(traits.CategoryGlasses, allowed, true)
		require.NoError(t, err)
		assert.Contains(t, allowed, got)
	}
}

func TestChooseSpecific_WithNone(t *testing.T) {
	table := newMouthTable(t)

	t.Run("include mode allows None", func(t *testing.T) {
		d := resolver.NewDrawer(table, &sequence{values: []float64{0.9999}})

		got, err := d.ChooseSpecific(traits.CategoryGlasses, []string{"Monocle"}, true, resolver.WithNone())
		require.NoError(t, err)
		assert.Equal(t, traits.None, got)
	})

	t.Run("exclude mode forbids None", func(t *testing.T) {
		for _, draw := range []float64{0, 0.9999} {
			d := resolver.NewDrawer(table, &sequence{values: []float64{draw}})

			got, err := d.ChooseSpecific(traits.CategoryGlasses, []string{"Monocle"}, false, resolver.WithNone())
			require.NoError(t, err)
			assert.Equal(t, "Eye Patch", got)
		}
	})
}

func TestChooseSpecific_EmptyPool(t *testing.T) {
	table := newMouthTable(t)
	src := &sequence{values: []float64{0.5}}
	d := resolver.NewDrawer(table, src)

	_, err := d.ChooseSpecific(traits.CategoryMouth, []string{"Lollipop"}, true)
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
	assert.Equal(t, string(traits.CategoryMouth), errors.GetMeta(err)["category"])
	assert.Zero(t, src.calls)
}

func TestChooseSpecific_UnknownCategory(t *testing.T) {
	d := resolver.NewDrawer(newMouthTable(t), &sequence{values: []float64{0.5}})

	_, err := d.ChooseSpecific(traits.CategoryHat, nil, false)
	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
}

func TestRestrict(t *testing.T) {
	table := newMouthTable(t)
	filter := resolver.NewFilter([]string{"Black Lipstick", "Red Lipstick"}, false)

	t.Run("allowed value is kept without drawing", func(t *testing.T) {
		src := &sequence{values: []float64{0.5}}
		set := table.NewAttributeSet()
		set.Set(traits.CategoryMouth, "Tongue")

		changed, err := resolver.NewDrawer(table, src).Restrict(set, traits.CategoryMouth, filter)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, "Tongue", set.Get(traits.CategoryMouth))
		assert.Zero(t, src.calls)
	})

	t.Run("violating value is redrawn", func(t *testing.T) {
		src := &sequence{values: []float64{0.9}}
		set := table.NewAttributeSet()
		set.Set(traits.CategoryMouth, "Red Lipstick")

		changed, err := resolver.NewDrawer(table, src).Restrict(set, traits.CategoryMouth, filter)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "Tongue", set.Get(traits.CategoryMouth))
		assert.Equal(t, 1, src.calls)
	})
}

func TestFilter_Allows(t *testing.T) {
	exclude := resolver.NewFilter([]string{"Cross"}, false)
	assert.False(t, exclude.Allows("Cross"))
	assert.True(t, exclude.Allows(traits.None))

	include := resolver.NewFilter([]string{"Gold Hoop"}, true, resolver.WithNone())
	assert.True(t, include.Allows("Gold Hoop"))
	assert.True(t, include.Allows(traits.None))
	assert.False(t, include.Allows("Cross"))
}
