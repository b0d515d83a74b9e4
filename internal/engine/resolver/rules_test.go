package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/trait-forge/internal/engine/resolver"
	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
)

func findRule(t *testing.T, rules []resolver.Rule, name string) resolver.Rule {
	t.Helper()
	for _, r := range rules {
		if r.Name == name {
			return r
		}
	}
	require.Failf(t, "rule not found", "no rule named %s", name)
	return resolver.Rule{}
}

// baseSet is a plain set that no default rule touches
func baseSet() *traits.AttributeSet {
	set := traits.DefaultTable().NewAttributeSet()
	for cat, value := range map[traits.Category]string{
		traits.CategoryAccessory:  traits.None,
		traits.CategoryBackground: "Blue",
		traits.CategoryBeard:      traits.None,
		traits.CategoryClothes:    "Flannel",
		traits.CategoryEyes:       "Base",
		traits.CategoryGlasses:    traits.None,
		traits.CategoryHair:       "Black",
		traits.CategoryHat:        traits.None,
		traits.CategoryBody:       "Base",
		traits.CategoryHead:       "Base",
		traits.CategoryMoon:       "Moon",
		traits.CategoryMouth:      "Base",
	} {
		set.Set(cat, value)
	}
	return set
}

func TestDefaultRules_Names(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range append(resolver.DefaultRules(), resolver.DefaultCleanup()...) {
		assert.NotEmpty(t, r.Name)
		assert.NotNil(t, r.Apply)
		assert.False(t, seen[r.Name], "duplicate rule %s", r.Name)
		seen[r.Name] = true
	}
}

func TestDefaultRules_ConditionFalseIsNoop(t *testing.T) {
	table := traits.DefaultTable()
	for _, r := range resolver.DefaultRules() {
		t.Run(r.Name, func(t *testing.T) {
			src := &sequence{values: []float64{0.5}}
			set := baseSet()
			before := set.Clone()

			require.NoError(t, r.Apply(set, resolver.NewDrawer(table, src)))
			assert.True(t, set.Equal(before), "changes: %v", set.Diff(before))
			assert.Zero(t, src.calls)
		})
	}
}

func TestRule_DroolClosesMouth(t *testing.T) {
	set := baseSet()
	set.Set(traits.CategoryAccessory, "Drool")
	set.Set(traits.CategoryMouth, "Tongue")

	rule := findRule(t, resolver.DefaultRules(), "drool-closes-mouth")
	require.NoError(t, rule.Apply(set, nil))
	assert.Equal(t, "Base", set.Get(traits.CategoryMouth))
}

func TestRule_ShadowForbidsLipstick(t *testing.T) {
	table := traits.DefaultTable()
	rule := findRule(t, resolver.DefaultRules(), "shadow-forbids-lipstick")

	for _, draw := range []float64{0, 0.25, 0.5, 0.75, 0.9999} {
		set := baseSet()
		set.Set(traits.CategoryBody, "Shadow")
		set.Set(traits.CategoryMouth, "Red Lipstick")

		require.NoError(t, rule.Apply(set, resolver.NewDrawer(table, &sequence{values: []float64{draw}})))
		assert.NotContains(t, []string{"Black Lipstick", "Red Lipstick"}, set.Get(traits.CategoryMouth))
	}
}

func TestRule_GlowingEyes(t *testing.T) {
	table := traits.DefaultTable()
	rule := findRule(t, resolver.DefaultRules(), "glowing-eyes")

	t.Run("clears glasses", func(t *testing.T) {
		set := baseSet()
		set.Set(traits.CategoryEyes, "Red Laser")
		set.Set(traits.CategoryGlasses, "Monocle")
		set.Set(traits.CategoryAccessory, "Prison Mask")

		require.NoError(t, rule.Apply(set, resolver.NewDrawer(table, &sequence{values: []float64{0.5}})))
		assert.Equal(t, traits.None, set.Get(traits.CategoryGlasses))
		assert.NotEqual(t, "Prison Mask", set.Get(traits.CategoryAccessory))
	})

	t.Run("third eye keeps glasses", func(t *testing.T) {
		set := baseSet()
		set.Set(traits.CategoryEyes, "Blue Laser")
		set.Set(traits.CategoryHat, "Third Eye")
		set.Set(traits.CategoryGlasses, "Eye Patch")

		require.NoError(t, rule.Apply(set, resolver.NewDrawer(table, &sequence{values: []float64{0.5}})))
		assert.Equal(t, "Eye Patch", set.Get(traits.CategoryGlasses))
	})
}

func TestRule_PrisonMask(t *testing.T) {
	table := traits.DefaultTable()
	rule := findRule(t, resolver.DefaultRules(), "prison-mask")
	allowedHats := []string{"Crossbow Bolt", "Giant Moth", "Halo", "Laser Moth", "Stake", "Third Eye", traits.None}

	for _, draw := range []float64{0, 0.3, 0.6, 0.9999} {
		set := baseSet()
		set.Set(traits.CategoryAccessory, "Prison Mask")
		set.Set(traits.CategoryHat, "Headphones")
		set.Set(traits.CategoryBeard, "Goatee")
		set.Set(traits.CategoryGlasses, "Monocle")
		set.Set(traits.CategoryMouth, "Tongue")

		require.NoError(t, rule.Apply(set, resolver.NewDrawer(table, &sequence{values: []float64{draw}})))
		assert.Contains(t, allowedHats, set.Get(traits.CategoryHat))
		assert.Equal(t, traits.None, set.Get(traits.CategoryBeard))
		assert.NotEqual(t, "Tongue", set.Get(traits.CategoryMouth))
		if !set.Is(traits.CategoryHat, "Third Eye") {
			assert.Equal(t, traits.None, set.Get(traits.CategoryGlasses))
		}
	}
}

func TestRule_OpenMouthAccessories(t *testing.T) {
	table := traits.DefaultTable()
	rule := findRule(t, resolver.DefaultRules(), "open-mouth-accessories")

	for _, draw := range []float64{0, 0.2, 0.4, 0.6, 0.8, 0.9999} {
		set := baseSet()
		set.Set(traits.CategoryMouth, "Pierced Tongue")
		set.Set(traits.CategoryHat, "Headphones")
		set.Set(traits.CategoryAccessory, "Cigar")

		require.NoError(t, rule.Apply(set, resolver.NewDrawer(table, &sequence{values: []float64{draw}})))
		assert.Contains(t,
			[]string{"Diamond Stud", "Gold Hoop", "Gold Stud", "Silver Hoop", "Silver Stud", traits.None},
			set.Get(traits.CategoryAccessory))
	}
}

func TestRule_BaldNoHat(t *testing.T) {
	set := baseSet()
	set.Set(traits.CategoryHair, traits.None)
	set.Set(traits.CategoryHat, "Halo")

	rule := findRule(t, resolver.DefaultRules(), "bald-no-hat")
	require.NoError(t, rule.Apply(set, nil))
	assert.Equal(t, traits.None, set.Get(traits.CategoryHat))
}

func TestRule_ThirdEyeGlasses(t *testing.T) {
	table := traits.DefaultTable()
	rule := findRule(t, resolver.DefaultRules(), "third-eye-glasses")

	for _, draw := range []float64{0, 0.49, 0.5, 0.9999} {
		set := baseSet()
		set.Set(traits.CategoryHat, "Third Eye")

		require.NoError(t, rule.Apply(set, resolver.NewDrawer(table, &sequence{values: []float64{draw}})))
		assert.Contains(t, []string{"Monocle", "Eye Patch"}, set.Get(traits.CategoryGlasses))
	}
}

func TestCleanup(t *testing.T) {
	cleanup := resolver.DefaultCleanup()

	t.Run("single laser eye", func(t *testing.T) {
		set := baseSet()
		set.Set(traits.CategoryGlasses, "Eye Patch")
		set.Set(traits.CategoryEyes, "Red Laser")

		require.NoError(t, findRule(t, cleanup, "single-laser-eye").Apply(set, nil))
		assert.Equal(t, "Single Red Laser Eye", set.Get(traits.CategoryEyes))
	})

	t.Run("bald drops eye patch", func(t *testing.T) {
		set := baseSet()
		set.Set(traits.CategoryHair, traits.None)
		set.Set(traits.CategoryGlasses, "Eye Patch")

		require.NoError(t, findRule(t, cleanup, "bald-drops-eye-patch").Apply(set, nil))
		assert.Equal(t, traits.None, set.Get(traits.CategoryGlasses))
	})

	t.Run("talisman drops accessory", func(t *testing.T) {
		set := baseSet()
		set.Set(traits.CategoryHat, "Jiangshi Black Talisman")
		set.Set(traits.CategoryAccessory, "Cross")

		require.NoError(t, findRule(t, cleanup, "talisman-no-accessory").Apply(set, nil))
		assert.Equal(t, traits.None, set.Get(traits.CategoryAccessory))
	})
}

func TestRule_HeadphonesForbidCross(t *testing.T) {
	table := traits.DefaultTable()
	rule := findRule(t, resolver.DefaultRules(), "headphones-forbid-cross")

	t.Run("redraws cross", func(t *testing.T) {
		for _, draw := range []float64{0, 0.15, 0.5, 0.9999} {
			src := &sequence{values: []float64{draw}}
			set := baseSet()
			set.Set(traits.CategoryHat, "Headphones")
			set.Set(traits.CategoryAccessory, "Cross")

			require.NoError(t, rule.Apply(set, resolver.NewDrawer(table, src)))
			assert.NotEqual(t, "Cross", set.Get(traits.CategoryAccessory))
			assert.Equal(t, 1, src.calls)
		}
	})

	t.Run("keeps allowed accessory", func(t *testing.T) {
		src := &sequence{values: []float64{0.5}}
		set := baseSet()
		set.Set(traits.CategoryHat, "Headphones")
		set.Set(traits.CategoryAccessory, "Cigar")

		require.NoError(t, rule.Apply(set, resolver.NewDrawer(table, src)))
		assert.Equal(t, "Cigar", set.Get(traits.CategoryAccessory))
		assert.Zero(t, src.calls)
	})
}

func TestRule_JiangshiNoGlasses(t *testing.T) {
	rule := findRule(t, resolver.DefaultRules(), "jiangshi-no-glasses")

	for _, hat := range []string{"Jiangshi", "Jiangshi Black", "Jiangshi Talisman"} {
		t.Run(hat, func(t *testing.T) {
			set := baseSet()
			set.Set(traits.CategoryHat, hat)
			set.Set(traits.CategoryGlasses, "Monocle")

			require.NoError(t, rule.Apply(set, nil))
			assert.Equal(t, traits.None, set.Get(traits.CategoryGlasses))
			assert.Equal(t, hat, set.Get(traits.CategoryHat))
		})
	}

	t.Run("other hats keep glasses", func(t *testing.T) {
		set := baseSet()
		set.Set(traits.CategoryHat, "Halo")
		set.Set(traits.CategoryGlasses, "Monocle")

		require.NoError(t, rule.Apply(set, nil))
		assert.Equal(t, "Monocle", set.Get(traits.CategoryGlasses))
	})
}

func TestRule_BurningSun(t *testing.T) {
	rule := findRule(t, resolver.DefaultRules(), "burning-sun")

	set := baseSet()
	set.Set(traits.CategoryHead, "Burning")
	set.Set(traits.CategoryBody, "Burning")
	set.Set(traits.CategoryMoon, "Blood Moon")

	require.NoError(t, rule.Apply(set, nil))
	assert.Equal(t, "Sun", set.Get(traits.CategoryMoon))

	set = baseSet()
	set.Set(traits.CategoryMoon, "Blood Moon")

	require.NoError(t, rule.Apply(set, nil))
	assert.Equal(t, "Blood Moon", set.Get(traits.CategoryMoon))
}

func TestRule_FluMask(t *testing.T) {
	table := traits.DefaultTable()
	rule := findRule(t, resolver.DefaultRules(), "flu-mask")
	allowed := []string{"Holo Shades", "Monocle", "Eye Patch", "Anime Hero Sunglasses", traits.None}

	t.Run("redraws glasses and clears beard", func(t *testing.T) {
		for _, mask := range []string{"Flu Mask", "Flu Mask Bloody"} {
			for _, draw := range []float64{0, 0.3, 0.6, 0.9999} {
				src := &sequence{values: []float64{draw}}
				set := baseSet()
				set.Set(traits.CategoryAccessory, mask)
				set.Set(traits.CategoryGlasses, "VR Headset")
				set.Set(traits.CategoryBeard, "Goatee")

				require.NoError(t, rule.Apply(set, resolver.NewDrawer(table, src)))
				assert.Contains(t, allowed, set.Get(traits.CategoryGlasses))
				assert.Equal(t, traits.None, set.Get(traits.CategoryBeard))
				assert.Equal(t, 1, src.calls)
			}
		}
	})

	t.Run("keeps allowed glasses", func(t *testing.T) {
		src := &sequence{values: []float64{0.5}}
		set := baseSet()
		set.Set(traits.CategoryAccessory, "Flu Mask")
		set.Set(traits.CategoryGlasses, "Monocle")
		set.Set(traits.CategoryBeard, "Goatee")

		require.NoError(t, rule.Apply(set, resolver.NewDrawer(table, src)))
		assert.Equal(t, "Monocle", set.Get(traits.CategoryGlasses))
		assert.Equal(t, traits.None, set.Get(traits.CategoryBeard))
		assert.Zero(t, src.calls)
	})
}

func TestRule_FaceCoveringGlasses(t *testing.T) {
	rule := findRule(t, resolver.DefaultRules(), "face-covering-glasses-no-hat")

	for _, glasses := range []string{"Anime Hero Sunglasses", "VR Headset", "Blindfold"} {
		t.Run(glasses, func(t *testing.T) {
			set := baseSet()
			set.Set(traits.CategoryGlasses, glasses)
			set.Set(traits.CategoryHat, "Halo")

			require.NoError(t, rule.Apply(set, nil))
			assert.Equal(t, traits.None, set.Get(traits.CategoryHat))
		})
	}

	t.Run("other glasses keep hat", func(t *testing.T) {
		set := baseSet()
		set.Set(traits.CategoryGlasses, "Monocle")
		set.Set(traits.CategoryHat, "Halo")

		require.NoError(t, rule.Apply(set, nil))
		assert.Equal(t, "Halo", set.Get(traits.CategoryHat))
	})
}

func TestRule_BlindfoldNeedsHair(t *testing.T) {
	table := traits.DefaultTable()
	rule := findRule(t, resolver.DefaultRules(), "blindfold-needs-hair")

	t.Run("redraws bald", func(t *testing.T) {
		for _, draw := range []float64{0, 0.5, 0.99, 0.9999} {
			src := &sequence{values: []float64{draw}}
			set := baseSet()
			set.Set(traits.CategoryGlasses, "Blindfold")
			set.Set(traits.CategoryHair, traits.None)

			require.NoError(t, rule.Apply(set, resolver.NewDrawer(table, src)))
			assert.NotEqual(t, traits.None, set.Get(traits.CategoryHair))
			assert.Equal(t, 1, src.calls)
		}
	})

	t.Run("keeps hair", func(t *testing.T) {
		src := &sequence{values: []float64{0.5}}
		set := baseSet()
		set.Set(traits.CategoryGlasses, "Blindfold")
		set.Set(traits.CategoryHair, "Platinum")

		require.NoError(t, rule.Apply(set, resolver.NewDrawer(table, src)))
		assert.Equal(t, "Platinum", set.Get(traits.CategoryHair))
		assert.Zero(t, src.calls)
	})
}
