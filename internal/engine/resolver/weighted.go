package resolver

import (
	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
	"github.com/KirkDiggler/trait-forge/internal/errors"
	"github.com/KirkDiggler/trait-forge/internal/pkg/random"
)

// Choose draws one option name with probability weight/total, consuming exactly one
// value from src. Boundaries are cumulative in input order and the first option whose
// boundary exceeds the scaled draw wins.
func Choose(options []traits.Option, src random.Source) (string, error) {
	if len(options) == 0 {
		return "", errors.Configuration("cannot draw from an empty pool")
	}

	var total float64
	for _, opt := range options {
		if opt.Weight < 0 {
			return "", errors.Configurationf("option %s has negative weight", opt.Name).
				WithMeta("option", opt.Name)
		}
		total += opt.Weight
	}
	if total <= 0 {
		return "", errors.Configuration("cannot draw from a pool with zero total weight").
			WithMeta("pool_size", len(options))
	}

	scaled := src.Float64() * total

	var cumulative float64
	last := -1
	for i, opt := range options {
		if opt.Weight == 0 {
			continue
		}
		cumulative += opt.Weight
		if scaled < cumulative {
			return opt.Name, nil
		}
		last = i
	}

	// rounding can leave the scaled value on the final boundary
	return options[last].Name, nil
}
