package collection

import (
	"fmt"

	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
	"github.com/KirkDiggler/trait-forge/internal/errors"
)

// Defaults of the shipped collection
const (
	DefaultNamePrefix = "Sneaky Vampire"
	DefaultImageCID   = "bafybeibltrk5hoi5p3swpiw5wnthqxh7z5xvker6xlqjqjfvqdpgbb4asi"
	DefaultSize       = 8888

	// DefaultMaxSize caps the tokens one run may hold
	DefaultMaxSize = 100000
)

// Record is the metadata document published for one token
type Record struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Attributes  []traits.Attribute `json:"attributes"`
	Image       string             `json:"image"`
}

// Settings controls naming and image links for a collection
type Settings struct {
	NamePrefix string `json:"name_prefix"`
	ImageCID   string `json:"image_cid"`
	Size       int    `json:"size"`
}

// DefaultSettings returns the shipped collection settings
func DefaultSettings() Settings {
	return Settings{
		NamePrefix: DefaultNamePrefix,
		ImageCID:   DefaultImageCID,
		Size:       DefaultSize,
	}
}

// Validate checks the settings
func (s Settings) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name_prefix", s.NamePrefix, vb)
	errors.ValidateRequired("image_cid", s.ImageCID, vb)
	if s.Size < 1 {
		vb.Field("size", "must be at least 1")
	}

	return vb.Build()
}

// Record builds the metadata for a 1-based token ID. An empty name falls back to
// "<prefix> #<id>".
func (s Settings) Record(tokenID int, name string, attrs []traits.Attribute) Record {
	if name == "" {
		name = fmt.Sprintf("%s #%d", s.NamePrefix, tokenID)
	}
	return Record{
		Name: name,
		Description: fmt.Sprintf("[Image without background](https://ipfs.io/ipfs/%s/%d_no_bg.png)",
			s.ImageCID, tokenID),
		Attributes: attrs,
		Image:      fmt.Sprintf("ipfs://%s/%d.png", s.ImageCID, tokenID),
	}
}
