// Package traits defines the trait categories, weight tables and attribute sets
// that the resolver draws from.
package traits

// Category names one axis of variation, e.g. Eyes or Hat
type Category string

// Categories of the shipped collection, in declaration order
const (
	CategoryAccessory  Category = "Accessory"
	CategoryBackground Category = "Background"
	CategoryBeard      Category = "Beard"
	CategoryClothes    Category = "Clothes"
	CategoryEyes       Category = "Eyes"
	CategoryGlasses    Category = "Glasses"
	CategoryHair       Category = "Hair"
	CategoryHat        Category = "Hat"
	CategoryBody       Category = "Body"
	CategoryHead       Category = "Head"
	CategoryMoon       Category = "Moon"
	CategoryMouth      Category = "Mouth"
)

// None is a regular option value meaning the slot is visually empty.
// It is not the same as a missing value.
const None = "None"

// Option is one weighted value of a category
type Option struct {
	Name   string  `json:"name" yaml:"name"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Attribute is a single category/value pair as it appears in token metadata
type Attribute struct {
	TraitType string `json:"trait_type" yaml:"trait_type"`
	Value     string `json:"value" yaml:"value"`
}

// Predefined pins values for some categories before the random draw fills the rest.
// The first entry for a category wins and empty values count as unset.
type Predefined []Attribute

// Lookup returns the pinned value for a category
func (p Predefined) Lookup(category Category) (string, bool) {
	for _, attr := range p {
		if Category(attr.TraitType) == category && attr.Value != "" {
			return attr.Value, true
		}
	}
	return "", false
}
