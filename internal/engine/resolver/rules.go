package resolver

import (
	"strings"

	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
)

// Rule is one compatibility constraint. Apply either leaves the set alone or
// overwrites values, possibly by drawing from a restricted pool through the Drawer.
// A rule whose condition does not hold must not consume random values.
type Rule struct {
	Name  string
	Apply func(set *traits.AttributeSet, d *Drawer) error
}

// Option names referenced by the shipped rules
const (
	accessoryCross      = "Cross"
	accessoryDrool      = "Drool"
	accessoryPrisonMask = "Prison Mask"
	accessoryFluMask    = "Flu Mask"
	hatHeadphones       = "Headphones"
	hatThirdEye         = "Third Eye"
	hatJiangshi         = "Jiangshi"
	hatTalisman         = "Talisman"
	glassesEyePatch     = "Eye Patch"
	glassesMonocle      = "Monocle"
	glassesBlindfold    = "Blindfold"
	mouthBase           = "Base"
	mouthTongue         = "Tongue"
	mouthPiercedTongue  = "Pierced Tongue"
	headShadow          = "Shadow"
	headBurning         = "Burning"
	moonSun             = "Sun"
	laserSuffix         = " Laser"
	eyesBlueLaser       = "Blue Laser"
	eyesRedLaser        = "Red Laser"
	eyesBTC             = "BTC"
)

var (
	lipsticks           = []string{"Black Lipstick", "Red Lipstick"}
	prisonMaskHats      = []string{"Crossbow Bolt", "Giant Moth", "Halo", "Laser Moth", "Stake", hatThirdEye}
	openMouths          = []string{"Disgust", "Rotten Teeth", mouthTongue, mouthPiercedTongue}
	piercings           = []string{"Diamond Stud", "Gold Hoop", "Gold Stud", "Silver Hoop", "Silver Stud"}
	thirdEyeGlasses     = []string{glassesMonocle, glassesEyePatch}
	fluMaskGlasses      = []string{"Holo Shades", glassesMonocle, glassesEyePatch, "Anime Hero Sunglasses"}
	faceCoveringGlasses = []string{"Anime Hero Sunglasses", "VR Headset", glassesBlindfold}
	glowingEyes         = []string{eyesBlueLaser, eyesRedLaser, eyesBTC}
	laserEyes           = []string{eyesBlueLaser, eyesRedLaser}
)

// set assigns a constant
func set(s *traits.AttributeSet, category traits.Category, value string) {
	s.Set(category, value)
}

// clearGlassesUnlessThirdEye keeps glasses for the Third Eye, which always wears them
func clearGlassesUnlessThirdEye(s *traits.AttributeSet) {
	if !s.Is(traits.CategoryHat, hatThirdEye) {
		set(s, traits.CategoryGlasses, traits.None)
	}
}

// DefaultRules returns the shipped conflict rules in application order
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "body-mirrors-head",
			Apply: func(s *traits.AttributeSet, _ *Drawer) error {
				set(s, traits.CategoryBody, s.Get(traits.CategoryHead))
				return nil
			},
		},
		{
			Name: "headphones-forbid-cross",
			Apply: func(s *traits.AttributeSet, d *Drawer) error {
				if !s.Is(traits.CategoryHat, hatHeadphones) {
					return nil
				}
				_, err := d.Restrict(s, traits.CategoryAccessory, NewFilter([]string{accessoryCross}, false))
				return err
			},
		},
		{
			Name: "drool-closes-mouth",
			Apply: func(s *traits.AttributeSet, _ *Drawer) error {
				if s.Is(traits.CategoryAccessory, accessoryDrool) {
					set(s, traits.CategoryMouth, mouthBase)
				}
				return nil
			},
		},
		{
			Name: "shadow-forbids-lipstick",
			Apply: func(s *traits.AttributeSet, d *Drawer) error {
				if !s.Is(traits.CategoryBody, headShadow) {
					return nil
				}
				_, err := d.Restrict(s, traits.CategoryMouth, NewFilter(lipsticks, false))
				return err
			},
		},
		{
			Name: "glowing-eyes",
			Apply: func(s *traits.AttributeSet, d *Drawer) error {
				if !s.Is(traits.CategoryEyes, glowingEyes...) {
					return nil
				}
				if _, err := d.Restrict(s, traits.CategoryAccessory, NewFilter([]string{accessoryPrisonMask}, false)); err != nil {
					return err
				}
				clearGlassesUnlessThirdEye(s)
				return nil
			},
		},
		{
			Name: "prison-mask",
			Apply: func(s *traits.AttributeSet, d *Drawer) error {
				if !s.Is(traits.CategoryAccessory, accessoryPrisonMask) {
					return nil
				}
				if _, err := d.Restrict(s, traits.CategoryHat, NewFilter(prisonMaskHats, true, WithNone())); err != nil {
					return err
				}
				set(s, traits.CategoryBeard, traits.None)
				clearGlassesUnlessThirdEye(s)
				_, err := d.Restrict(s, traits.CategoryMouth, NewFilter([]string{mouthTongue}, false))
				return err
			},
		},
		{
			Name: "open-mouth-accessories",
			Apply: func(s *traits.AttributeSet, d *Drawer) error {
				if !s.Is(traits.CategoryMouth, openMouths...) {
					return nil
				}
				allowed := piercings
				if !s.Is(traits.CategoryHat, hatHeadphones) {
					allowed = append([]string{accessoryCross}, piercings...)
				}
				_, err := d.Restrict(s, traits.CategoryAccessory, NewFilter(allowed, true, WithNone()))
				return err
			},
		},
		{
			Name: "bald-no-hat",
			Apply: func(s *traits.AttributeSet, _ *Drawer) error {
				if s.Is(traits.CategoryHair, traits.None) {
					set(s, traits.CategoryHat, traits.None)
				}
				return nil
			},
		},
		{
			Name: "jiangshi-no-glasses",
			Apply: func(s *traits.AttributeSet, _ *Drawer) error {
				if strings.Contains(s.Get(traits.CategoryHat), hatJiangshi) {
					set(s, traits.CategoryGlasses, traits.None)
				}
				return nil
			},
		},
		{
			Name: "third-eye-glasses",
			Apply: func(s *traits.AttributeSet, d *Drawer) error {
				if !s.Is(traits.CategoryHat, hatThirdEye) {
					return nil
				}
				_, err := d.Restrict(s, traits.CategoryGlasses, NewFilter(thirdEyeGlasses, true))
				return err
			},
		},
		{
			Name: "burning-sun",
			Apply: func(s *traits.AttributeSet, _ *Drawer) error {
				if s.Is(traits.CategoryBody, headBurning) {
					set(s, traits.CategoryMoon, moonSun)
				}
				return nil
			},
		},
		{
			Name: "flu-mask",
			Apply: func(s *traits.AttributeSet, d *Drawer) error {
				if !strings.Contains(s.Get(traits.CategoryAccessory), accessoryFluMask) {
					return nil
				}
				if _, err := d.Restrict(s, traits.CategoryGlasses, NewFilter(fluMaskGlasses, true, WithNone())); err != nil {
					return err
				}
				set(s, traits.CategoryBeard, traits.None)
				return nil
			},
		},
		{
			Name: "face-covering-glasses-no-hat",
			Apply: func(s *traits.AttributeSet, _ *Drawer) error {
				if s.Is(traits.CategoryGlasses, faceCoveringGlasses...) {
					set(s, traits.CategoryHat, traits.None)
				}
				return nil
			},
		},
		{
			Name: "blindfold-needs-hair",
			Apply: func(s *traits.AttributeSet, d *Drawer) error {
				if !s.Is(traits.CategoryGlasses, glassesBlindfold) {
					return nil
				}
				_, err := d.Restrict(s, traits.CategoryHair, NewFilter(nil, false, WithNone()))
				return err
			},
		},
	}
}

// DefaultCleanup returns the one-shot rewrites applied after the rules settle.
// They are terminal and never fed back into the rule loop.
func DefaultCleanup() []Rule {
	return []Rule{
		{
			Name: "bald-drops-eye-patch",
			Apply: func(s *traits.AttributeSet, _ *Drawer) error {
				if s.Is(traits.CategoryHair, traits.None) && s.Is(traits.CategoryGlasses, glassesEyePatch) {
					set(s, traits.CategoryGlasses, traits.None)
				}
				return nil
			},
		},
		{
			Name: "single-laser-eye",
			Apply: func(s *traits.AttributeSet, _ *Drawer) error {
				eyes := s.Get(traits.CategoryEyes)
				if s.Is(traits.CategoryGlasses, glassesEyePatch) && s.Is(traits.CategoryEyes, laserEyes...) {
					colour := strings.TrimSuffix(eyes, laserSuffix)
					set(s, traits.CategoryEyes, "Single "+colour+" Laser Eye")
				}
				return nil
			},
		},
		{
			Name: "talisman-no-accessory",
			Apply: func(s *traits.AttributeSet, _ *Drawer) error {
				if strings.Contains(s.Get(traits.CategoryHat), hatTalisman) {
					set(s, traits.CategoryAccessory, traits.None)
				}
				return nil
			},
		},
	}
}
