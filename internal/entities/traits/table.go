package traits

import (
	"math"

	"github.com/KirkDiggler/trait-forge/internal/errors"
)

// CategoryOptions is one category and its weighted options in table order
type CategoryOptions struct {
	Category Category `yaml:"category"`
	Options  []Option `yaml:"options"`
}

// Table is the static weight table, loaded once per process
type Table struct {
	categories []Category
	options    map[Category][]Option
}

// NewTable validates the entries and builds a table. Category order is entry order.
func NewTable(entries []CategoryOptions) (*Table, error) {
	if len(entries) == 0 {
		return nil, errors.Configuration("weight table has no categories")
	}

	t := &Table{
		categories: make([]Category, 0, len(entries)),
		options:    make(map[Category][]Option, len(entries)),
	}

	for _, entry := range entries {
		if entry.Category == "" {
			return nil, errors.Configuration("weight table has a category without a name")
		}
		if _, exists := t.options[entry.Category]; exists {
			return nil, errors.Configurationf("duplicate category %s", entry.Category).
				WithMeta("category", string(entry.Category))
		}
		if len(entry.Options) == 0 {
			return nil, errors.Configurationf("category %s has no options", entry.Category).
				WithMeta("category", string(entry.Category))
		}

		seen := make(map[string]struct{}, len(entry.Options))
		opts := make([]Option, 0, len(entry.Options))
		for _, opt := range entry.Options {
			if math.IsNaN(opt.Weight) || math.IsInf(opt.Weight, 0) {
				return nil, errors.Configurationf("option %s in %s has non-finite weight", opt.Name, entry.Category).
					WithMeta("category", string(entry.Category)).
					WithMeta("option", opt.Name)
			}
			if opt.Weight < 0 {
				return nil, errors.Configurationf("option %s in %s has negative weight", opt.Name, entry.Category).
					WithMeta("category", string(entry.Category)).
					WithMeta("option", opt.Name)
			}
			if _, dup := seen[opt.Name]; dup {
				return nil, errors.Configurationf("duplicate option %s in %s", opt.Name, entry.Category).
					WithMeta("category", string(entry.Category)).
					WithMeta("option", opt.Name)
			}
			seen[opt.Name] = struct{}{}
			opts = append(opts, opt)
		}

		t.categories = append(t.categories, entry.Category)
		t.options[entry.Category] = opts
	}

	return t, nil
}

// Categories returns the categories in declaration order
func (t *Table) Categories() []Category {
	out := make([]Category, len(t.categories))
	copy(out, t.categories)
	return out
}

// Has reports whether the category is part of the table
func (t *Table) Has(category Category) bool {
	_, ok := t.options[category]
	return ok
}

// Options returns the options of a category in table order.
// The returned slice must not be modified.
func (t *Table) Options(category Category) []Option {
	return t.options[category]
}

// NewAttributeSet returns an empty set shaped after this table
func (t *Table) NewAttributeSet() *AttributeSet {
	return newAttributeSet(t.categories)
}
