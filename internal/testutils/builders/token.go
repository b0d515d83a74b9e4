package builders

import (
	"github.com/KirkDiggler/trait-forge/internal/entities/collection"
	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
)

// TokenBuilder provides a fluent interface for building test Token instances
type TokenBuilder struct {
	token    *collection.Token
	settings collection.Settings
	name     string
	attrs    []traits.Attribute
}

// NewTokenBuilder creates a builder for token tokenID of run runID
func NewTokenBuilder(runID string, tokenID int) *TokenBuilder {
	return &TokenBuilder{
		token:    &collection.Token{RunID: runID, TokenID: tokenID},
		settings: collection.DefaultSettings(),
		attrs:    []traits.Attribute{{TraitType: string(traits.CategoryMoon), Value: "Moon"}},
	}
}

// WithAttributes sets the attribute list
func (b *TokenBuilder) WithAttributes(attrs ...traits.Attribute) *TokenBuilder {
	b.attrs = attrs
	return b
}

// WithSettings sets the settings used to format the record
func (b *TokenBuilder) WithSettings(settings collection.Settings) *TokenBuilder {
	b.settings = settings
	return b
}

// AsUnique marks the token as a hand-authored unique
func (b *TokenBuilder) AsUnique(name, fileName string) *TokenBuilder {
	b.token.Unique = true
	b.token.FileName = fileName
	b.name = name
	return b
}

// Build returns the token with its hash and record filled in
func (b *TokenBuilder) Build() *collection.Token {
	hash, err := collection.Hash(b.attrs)
	if err != nil {
		panic(err)
	}
	b.token.Hash = hash
	b.token.Record = b.settings.Record(b.token.TokenID, b.name, b.attrs)
	return b.token
}
