// Package resolver turns a weight table, an ordered rule table and a random source
// into one internally consistent attribute set.
package resolver

import (
	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
	"github.com/KirkDiggler/trait-forge/internal/errors"
	"github.com/KirkDiggler/trait-forge/internal/pkg/random"
)

// DefaultMaxPasses bounds the fixed-point loop
const DefaultMaxPasses = 64

// Config configures a Resolver. Zero fields fall back to the shipped table and rules.
type Config struct {
	Table     *traits.Table
	Rules     []Rule
	Cleanup   []Rule
	MaxPasses int
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateNonNegative("max_passes", c.MaxPasses, vb)
	for i, r := range c.Rules {
		if r.Apply == nil {
			vb.Fieldf("rules", "rule %d (%s) has no apply func", i, r.Name)
		}
	}
	for i, r := range c.Cleanup {
		if r.Apply == nil {
			vb.Fieldf("cleanup", "rule %d (%s) has no apply func", i, r.Name)
		}
	}

	return vb.Build()
}

// Resolver applies a rule table to freshly drawn attribute sets
type Resolver struct {
	table     *traits.Table
	rules     []Rule
	cleanup   []Rule
	maxPasses int
}

// New creates a resolver
func New(cfg *Config) (*Resolver, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid resolver config")
	}

	r := &Resolver{
		table:     cfg.Table,
		rules:     cfg.Rules,
		cleanup:   cfg.Cleanup,
		maxPasses: cfg.MaxPasses,
	}
	if r.table == nil {
		r.table = traits.DefaultTable()
	}
	if r.rules == nil {
		r.rules = DefaultRules()
	}
	if r.cleanup == nil {
		r.cleanup = DefaultCleanup()
	}
	if r.maxPasses == 0 {
		r.maxPasses = DefaultMaxPasses
	}

	return r, nil
}

// Table returns the weight table the resolver draws from
func (r *Resolver) Table() *traits.Table {
	return r.table
}

// Resolve draws every category, pinning predefined values, then applies the rules
// until a full pass changes nothing and finally runs the cleanup rules once.
// Rules take precedence over predefined values.
func (r *Resolver) Resolve(predefined traits.Predefined, src random.Source) (*traits.AttributeSet, error) {
	for _, attr := range predefined {
		if attr.Value == "" {
			continue
		}
		if !r.table.Has(traits.Category(attr.TraitType)) {
			return nil, errors.Configurationf("predefined attribute has unknown category %s", attr.TraitType).
				WithMeta("category", attr.TraitType)
		}
	}

	d := NewDrawer(r.table, src)
	set := r.table.NewAttributeSet()
	for _, category := range r.table.Categories() {
		if value, ok := predefined.Lookup(category); ok {
			set.Set(category, value)
			continue
		}
		value, err := d.Draw(category)
		if err != nil {
			return nil, err
		}
		set.Set(category, value)
	}

	var (
		changes []string
		fired   []string
	)
	for pass := 1; pass <= r.maxPasses; pass++ {
		var err error
		changes, fired, err = r.pass(set, d)
		if err != nil {
			return nil, err
		}
		if len(fired) == 0 {
			if err := r.runCleanup(set, d); err != nil {
				return nil, err
			}
			return set, nil
		}
	}

	return nil, errors.Configurationf("rules did not settle within %d passes", r.maxPasses).
		WithMeta("changes", changes).
		WithMeta("rules", fired)
}

// ApplyRules runs a single pass of the rule table over set and reports whether any
// rule changed a value. A resolved set never changes.
func (r *Resolver) ApplyRules(set *traits.AttributeSet, src random.Source) (bool, error) {
	_, fired, err := r.pass(set, NewDrawer(r.table, src))
	if err != nil {
		return false, err
	}
	return len(fired) > 0, nil
}

// pass applies every rule once, tracking each rule's effect separately so that a
// rule undoing another's change still counts as activity
func (r *Resolver) pass(set *traits.AttributeSet, d *Drawer) ([]string, []string, error) {
	var changes, fired []string
	for _, rule := range r.rules {
		before := set.Clone()
		if err := apply(rule, set, d); err != nil {
			return nil, nil, err
		}
		diff := set.Diff(before)
		if len(diff) == 0 {
			continue
		}
		fired = append(fired, rule.Name)
		for _, c := range diff {
			changes = append(changes, c.String())
		}
	}
	return changes, fired, nil
}

func (r *Resolver) runCleanup(set *traits.AttributeSet, d *Drawer) error {
	for _, rule := range r.cleanup {
		if err := apply(rule, set, d); err != nil {
			return err
		}
	}
	return nil
}

// apply runs one rule and turns a write to a category outside the table into a
// configuration error
func apply(rule Rule, set *traits.AttributeSet, d *Drawer) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Configurationf("rule %s failed: %v", rule.Name, p).
				WithMeta("rule", rule.Name)
		}
	}()

	if err := rule.Apply(set, d); err != nil {
		return errors.Wrapf(err, "rule %s failed", rule.Name).
			WithMeta("rule", rule.Name)
	}
	return nil
}
