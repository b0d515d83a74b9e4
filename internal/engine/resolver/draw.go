package resolver

import (
	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
	"github.com/KirkDiggler/trait-forge/internal/errors"
	"github.com/KirkDiggler/trait-forge/internal/pkg/random"
)

// Drawer performs weighted draws against one table and one random source
type Drawer struct {
	table  *traits.Table
	source random.Source
}

// NewDrawer binds a table to a random source
func NewDrawer(table *traits.Table, source random.Source) *Drawer {
	return &Drawer{table: table, source: source}
}

// Draw picks from the category's full option list
func (d *Drawer) Draw(category traits.Category) (string, error) {
	if !d.table.Has(category) {
		return "", errors.Configurationf("unknown category %s", category).
			WithMeta("category", string(category))
	}

	name, err := Choose(d.table.Options(category), d.source)
	if err != nil {
		return "", errors.Wrapf(err, "failed to draw %s", category).
			WithMeta("category", string(category))
	}
	return name, nil
}

type filterOptions struct {
	withNone bool
}

// FilterOption adjusts how ChooseSpecific builds its name set
type FilterOption func(*filterOptions)

// WithNone adds "None" to the name set before filtering. In exclude mode this stops
// an excluded value from falling back to None; in include mode it allows None.
func WithNone() FilterOption {
	return func(o *filterOptions) {
		o.withNone = true
	}
}

// Filter describes a membership test against a set of option names
type Filter struct {
	names   map[string]struct{}
	include bool
}

// NewFilter builds the membership test used by ChooseSpecific and Restrict
func NewFilter(names []string, include bool, opts ...FilterOption) Filter {
	o := &filterOptions{}
	for _, opt := range opts {
		opt(o)
	}

	set := make(map[string]struct{}, len(names)+1)
	for _, n := range names {
		set[n] = struct{}{}
	}
	if o.withNone {
		set[traits.None] = struct{}{}
	}
	return Filter{names: set, include: include}
}

// Allows reports whether a value passes the membership test
func (f Filter) Allows(value string) bool {
	_, member := f.names[value]
	return member == f.include
}

// Pool returns the options that pass the test, in table order
func (f Filter) Pool(options []traits.Option) []traits.Option {
	pool := make([]traits.Option, 0, len(options))
	for _, opt := range options {
		if f.Allows(opt.Name) {
			pool = append(pool, opt)
		}
	}
	return pool
}

// ChooseSpecific draws from the category's options whose membership in names matches
// include. An empty filtered pool means the rule table is misconfigured.
func (d *Drawer) ChooseSpecific(
	category traits.Category,
	names []string,
	include bool,
	opts ...FilterOption,
) (string, error) {
	return d.chooseFiltered(category, NewFilter(names, include, opts...))
}

// Restrict leaves the category alone when its current value passes the filter and
// otherwise redraws it from the filtered pool. It reports whether the value changed.
func (d *Drawer) Restrict(set *traits.AttributeSet, category traits.Category, filter Filter) (bool, error) {
	current := set.Get(category)
	if filter.Allows(current) {
		return false, nil
	}

	name, err := d.chooseFiltered(category, filter)
	if err != nil {
		return false, err
	}
	set.Set(category, name)
	return name != current, nil
}

func (d *Drawer) chooseFiltered(category traits.Category, filter Filter) (string, error) {
	if !d.table.Has(category) {
		return "", errors.Configurationf("unknown category %s", category).
			WithMeta("category", string(category))
	}

	pool := filter.Pool(d.table.Options(category))
	if len(pool) == 0 {
		return "", errors.Configurationf("filtered pool for %s is empty", category).
			WithMeta("category", string(category))
	}

	name, err := Choose(pool, d.source)
	if err != nil {
		return "", errors.Wrapf(err, "failed to draw %s from filtered pool", category).
			WithMeta("category", string(category))
	}
	return name, nil
}
