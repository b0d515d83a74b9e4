package traits

import "fmt"

// AttributeSet holds exactly one value per category of the table it was made from.
// Iteration always follows the table's declaration order, which is what the
// content hash depends on.
type AttributeSet struct {
	categories []Category
	values     map[Category]string
}

func newAttributeSet(categories []Category) *AttributeSet {
	return &AttributeSet{
		categories: categories,
		values:     make(map[Category]string, len(categories)),
	}
}

// Get returns the value of a category
func (s *AttributeSet) Get(category Category) string {
	return s.values[category]
}

// Is reports whether the category currently holds one of the given values
func (s *AttributeSet) Is(category Category, values ...string) bool {
	current := s.values[category]
	for _, v := range values {
		if current == v {
			return true
		}
	}
	return false
}

// Set overwrites the value of a category. Setting a category outside the table panics
// since rules only ever address known categories.
func (s *AttributeSet) Set(category Category, value string) {
	if !s.has(category) {
		panic(fmt.Sprintf("traits: category %s is not part of this attribute set", category))
	}
	s.values[category] = value
}

// Categories returns the categories in declaration order
func (s *AttributeSet) Categories() []Category {
	return s.categories
}

// Clone returns an independent copy
func (s *AttributeSet) Clone() *AttributeSet {
	out := newAttributeSet(s.categories)
	for k, v := range s.values {
		out.values[k] = v
	}
	return out
}

// Equal compares values category by category
func (s *AttributeSet) Equal(other *AttributeSet) bool {
	if other == nil || len(s.categories) != len(other.categories) {
		return false
	}
	for _, c := range s.categories {
		if s.values[c] != other.values[c] {
			return false
		}
	}
	return true
}

// Change records one category moving from one value to another
type Change struct {
	Category Category
	From     string
	To       string
}

// String renders the change as "Category: from -> to"
func (c Change) String() string {
	return fmt.Sprintf("%s: %s -> %s", c.Category, c.From, c.To)
}

// Diff lists the categories whose values differ from before, in declaration order
func (s *AttributeSet) Diff(before *AttributeSet) []Change {
	var changes []Change
	for _, c := range s.categories {
		if before.values[c] != s.values[c] {
			changes = append(changes, Change{Category: c, From: before.values[c], To: s.values[c]})
		}
	}
	return changes
}

// Attributes returns the ordered category/value list
func (s *AttributeSet) Attributes() []Attribute {
	out := make([]Attribute, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, Attribute{TraitType: string(c), Value: s.values[c]})
	}
	return out
}

func (s *AttributeSet) has(category Category) bool {
	for _, c := range s.categories {
		if c == category {
			return true
		}
	}
	return false
}
