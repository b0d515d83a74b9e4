package collection

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// rpg-toolkit entity types
const (
	EntityTypeToken = "token"
	EntityTypeRun   = "collection_run"
)

// Token is one generated slot of a run
type Token struct {
	RunID    string `json:"run_id"`
	TokenID  int    `json:"token_id"`
	Hash     string `json:"hash"`
	Unique   bool   `json:"unique,omitempty"`
	FileName string `json:"file_name,omitempty"`
	Record   Record `json:"record"`
}

// GetID implements core.Entity
func (t *Token) GetID() string {
	return fmt.Sprintf("%s/%d", t.RunID, t.TokenID)
}

// GetType implements core.Entity
func (t *Token) GetType() string {
	return EntityTypeToken
}

// Run summarises one generation run
type Run struct {
	ID         string    `json:"id"`
	Seed       string    `json:"seed"`
	Settings   Settings  `json:"settings"`
	Digest     string    `json:"digest"`
	Tokens     int       `json:"tokens"`
	Uniques    int       `json:"uniques"`
	Duplicates int       `json:"duplicates"`
	CreatedAt  time.Time `json:"created_at"`
}

// GetID implements core.Entity
func (r *Run) GetID() string {
	return r.ID
}

// GetType implements core.Entity
func (r *Run) GetType() string {
	return EntityTypeRun
}

var (
	_ core.Entity = (*Token)(nil)
	_ core.Entity = (*Run)(nil)
)
