package traits

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/trait-forge/internal/errors"
)

// tableFile is the on-disk layout of a weight table
type tableFile struct {
	Categories []CategoryOptions `yaml:"categories"`
}

// LoadTable reads a YAML weight table. Categories keep file order.
//
//	categories:
//	  - category: Moon
//	    options:
//	      - {name: Blood Moon, weight: 10}
//	      - {name: Moon, weight: 70}
func LoadTable(r io.Reader) (*Table, error) {
	var file tableFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.WrapConfiguration(err, "failed to decode weight table")
	}

	return NewTable(file.Categories)
}
