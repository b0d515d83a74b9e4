package collection

import (
	"bytes"
	"crypto/md5" //nolint:gosec // digest format shared with published collections
	"encoding/hex"
	"encoding/json"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
	"github.com/KirkDiggler/trait-forge/internal/errors"
)

// canonicalJSON encodes without HTML escaping and without the trailing newline
func canonicalJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "failed to encode attributes")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Hash is the dedup key of an ordered attribute list. Two lists hash equal exactly
// when they render to the same canonical JSON.
func Hash(attrs []traits.Attribute) (string, error) {
	data, err := canonicalJSON(attrs)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(xxhash.Sum64(data), 16), nil
}

// Digest is the MD5 hex of the canonical JSON of every attribute list in token
// order, used to compare a run against a published collection
func Digest(all [][]traits.Attribute) (string, error) {
	data, err := canonicalJSON(all)
	if err != nil {
		return "", err
	}
	sum := md5.Sum(data) //nolint:gosec
	return hex.EncodeToString(sum[:]), nil
}
