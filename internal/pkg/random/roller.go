package random

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/trait-forge/internal/errors"
)

// Roller rolls dice off a Source so that rolls stay in the same reproducible
// sequence as the attribute draws. Each die consumes exactly one value.
type Roller struct {
	source Source
}

// NewRoller wraps a source as an rpg-toolkit dice roller
func NewRoller(source Source) *Roller {
	return &Roller{source: source}
}

// Ensure Roller implements dice.Roller
var _ dice.Roller = (*Roller)(nil)

// Roll returns a value in [1, size]
func (r *Roller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive: %d", size)
	}
	return int(r.source.Float64()*float64(size)) + 1, nil
}

// RollN rolls count dice of the given size
func (r *Roller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative: %d", count)
	}

	results := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	return results, nil
}
