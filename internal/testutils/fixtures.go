package testutils

import (
	"github.com/KirkDiggler/trait-forge/internal/entities/collection"
	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
)

// TestSeed is the seed of the shipped collection
const TestSeed = "0x5cb3e33c31019c9e5f77f354f150e4d74eb95a029a69738d45c176bc1447e444"

// CreateTestTable returns a two category table with six possible attribute sets
func CreateTestTable() *traits.Table {
	table, err := traits.NewTable([]traits.CategoryOptions{
		{
			Category: traits.CategoryMoon,
			Options: []traits.Option{
				{Name: "Blood Moon", Weight: 1},
				{Name: "Moon", Weight: 1},
				{Name: "Sun", Weight: 1},
			},
		},
		{
			Category: traits.CategoryMouth,
			Options: []traits.Option{
				{Name: "Base", Weight: 1},
				{Name: "Tongue", Weight: 1},
			},
		},
	})
	if err != nil {
		panic(err)
	}
	return table
}

// CreateTestRoster returns one pregenerated unique and one forced Sun token
func CreateTestRoster() []collection.Unique {
	return []collection.Unique{
		{
			Name:       "Nosferatu",
			FileName:   "Nosferatu",
			Amount:     1,
			Attributes: []traits.Attribute{{TraitType: "Unique", Value: "Nosferatu"}},
		},
		{
			Amount:     1,
			Attributes: []traits.Attribute{{TraitType: "Moon", Value: "Sun"}},
		},
	}
}
